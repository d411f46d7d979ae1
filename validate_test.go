package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555 010 1234

SUMMARY
Backend engineer with six years building Go services.

EXPERIENCE
Acme Corp - Senior Engineer (2020-2024)
- Built event pipelines handling 2M messages/day

EDUCATION
B.Sc. Computer Science, State University

SKILLS
Go, PostgreSQL, RabbitMQ, AWS`

func TestValidateResumeDocumentAcceptsResume(t *testing.T) {
	require.NoError(t, ValidateResumeDocument(sampleResume))
}

func TestValidateResumeDocumentRejectsProse(t *testing.T) {
	err := ValidateResumeDocument("The quick brown fox jumps over the lazy dog. It was a sunny day.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a resume")
}

func TestValidateResumeDocumentContactCountsAsSignal(t *testing.T) {
	// one section word plus an email address clears the threshold
	text := "skills: cooking, baking\ncontact me at chef@example.com"
	assert.NoError(t, ValidateResumeDocument(text))
}

func TestValidateJobDescription(t *testing.T) {
	assert.Error(t, ValidateJobDescription(""))
	assert.Error(t, ValidateJobDescription("   short jd   "))
	assert.Error(t, ValidateJobDescription(strings.Repeat("x", 49)))
	assert.NoError(t, ValidateJobDescription(strings.Repeat("x", 50)))
}
