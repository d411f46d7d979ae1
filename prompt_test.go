package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackPromptCarriesComplianceZones(t *testing.T) {
	p := feedbackPrompt()
	assert.Contains(t, p, "RED ZONE")
	assert.Contains(t, p, "GREEN ZONE")
	assert.Contains(t, p, "rejection email")
}

func TestCleaningPromptNamesSectionTags(t *testing.T) {
	p := cleaningPrompt()
	for _, tag := range []string{"[SUMMARY]", "[SKILLS]", "[EXPERIENCE]", "[EDUCATION]"} {
		assert.Contains(t, p, tag)
	}
}

func TestAnalyzerPromptDemandsStrictJSON(t *testing.T) {
	p := analyzerPrompt()
	assert.Contains(t, p, "candidate_email")
	assert.Contains(t, p, "missing_skills")
	assert.Contains(t, p, "single JSON object")
}

func TestFeedbackMessagesEmbedInputs(t *testing.T) {
	msg := feedbackMessage("the jd", "the resume")
	assert.Contains(t, msg, "the jd")
	assert.Contains(t, msg, "the resume")

	retry := feedbackRetryMessage("the jd", "the resume", []ComplianceFinding{
		{Rule: "AGE_REFERENCE", Term: "age"},
	})
	assert.Contains(t, retry, `"age"`)
	assert.Contains(t, retry, "AGE_REFERENCE")
}

func TestRewritePromptForbidsFabrication(t *testing.T) {
	assert.Contains(t, rewritePrompt(), "Do NOT invent")
}
