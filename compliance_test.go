package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFeedbackCleanText(t *testing.T) {
	feedback := `Thank you for applying. The role requires demonstrated experience
building data pipelines with Python, and your resume lists Python without
showing pipeline work at production scale. Consider adding metrics showing
throughput improvements from your ETL project.`

	assert.Empty(t, ScanFeedback(feedback))
}

func TestScanFeedbackFlagsSubjectiveTerms(t *testing.T) {
	findings := ScanFeedback("We felt your personality was not a culture fit for the team.")
	require.NotEmpty(t, findings)

	terms := make(map[string]string)
	for _, f := range findings {
		terms[f.Term] = f.Rule
	}
	assert.Equal(t, "SUBJECTIVE_JUDGMENT", terms["personality"])
	assert.Equal(t, "SUBJECTIVE_JUDGMENT", terms["culture fit"])
}

func TestScanFeedbackFlagsToneRemarks(t *testing.T) {
	findings := ScanFeedback("We felt your tone in interviews was too casual for the team.")
	require.NotEmpty(t, findings)
	assert.Equal(t, "SUBJECTIVE_JUDGMENT", findings[0].Rule)
	assert.Equal(t, "tone", findings[0].Term)

	// "tone" must not fire inside larger words
	assert.Empty(t, ScanFeedback("Shipping this milestone under a tight deadline stood out."))
}

func TestScanFeedbackFlagsPassionateVariant(t *testing.T) {
	findings := ScanFeedback("We are looking for someone more passionate about the mission.")
	require.NotEmpty(t, findings)
	assert.Equal(t, "SUBJECTIVE_JUDGMENT", findings[0].Rule)
	assert.Equal(t, "passionate", findings[0].Term)
}

func TestScanFeedbackFlagsProtectedClassTerms(t *testing.T) {
	findings := ScanFeedback("Given your AGE and nationality we went another direction.")
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, "protected_class", f.Category)
		assert.Equal(t, "critical", f.Severity)
	}
}

func TestScanFeedbackWordBoundaries(t *testing.T) {
	// "age" must not fire inside larger words
	assert.Empty(t, ScanFeedback("Your language coverage and ability to manage releases stood out."))
	assert.NotEmpty(t, ScanFeedback("Your age was a factor."))

	// "race" must not fire inside "embrace" or "trace"
	assert.Empty(t, ScanFeedback("You embrace distributed tracing."))
}

func TestScanFeedbackCaseInsensitive(t *testing.T) {
	assert.NotEmpty(t, ScanFeedback("Lacking ENTHUSIASM for the role."))
}
