package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator replays scripted responses and records the messages it was
// given.
type fakeGenerator struct {
	responses []string
	err       error
	calls     []string
	systems   []string
}

func (f *fakeGenerator) Generate(_ context.Context, system, user string, _ float32, _ int32) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.systems = append(f.systems, system)
	f.calls = append(f.calls, user)
	if len(f.responses) == 0 {
		return "", fmt.Errorf("no scripted response")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

const testJD = "We need a Go engineer with production RabbitMQ and PostgreSQL experience, comfortable owning services end to end."

func TestCleanAndStructureResume(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"\n[SUMMARY]\nGo engineer\n[SKILLS]\nGo\n"}}

	cleaned, err := CleanAndStructureResume(context.Background(), gen, "raw noisy text from pdf")
	require.NoError(t, err)
	assert.Equal(t, "[SUMMARY]\nGo engineer\n[SKILLS]\nGo", cleaned)
	require.Len(t, gen.calls, 1)
	assert.Equal(t, "raw noisy text from pdf", gen.calls[0])
}

func TestCleanAndStructureResumeEmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := CleanAndStructureResume(context.Background(), gen, "   \n ")
	require.Error(t, err)
	assert.Empty(t, gen.calls)
}

func TestGenerateRejectionFeedbackCleanFirstDraft(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"Your resume lists Python but lacks demonstrated pipeline automation depth the JD requires.",
	}}

	feedback, findings, err := GenerateRejectionFeedback(context.Background(), gen, testJD, sampleResume)
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Contains(t, feedback, "pipeline automation")
	assert.Len(t, gen.calls, 1)
}

func TestGenerateRejectionFeedbackRegeneratesDirtyDraft(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"We did not feel you were a culture fit.",
		"The JD requires three years of RabbitMQ operations which the resume does not demonstrate.",
	}}

	feedback, findings, err := GenerateRejectionFeedback(context.Background(), gen, testJD, sampleResume)
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Contains(t, feedback, "RabbitMQ")

	// retry message quotes the violation back to the model
	require.Len(t, gen.calls, 2)
	assert.Contains(t, gen.calls[1], "culture fit")
	assert.Contains(t, gen.calls[1], "SUBJECTIVE_JUDGMENT")
}

func TestGenerateRejectionFeedbackStillDirtyAfterRetry(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		"Not a culture fit.",
		"Still not a culture fit, and too old for the team.",
	}}

	feedback, findings, err := GenerateRejectionFeedback(context.Background(), gen, testJD, sampleResume)
	require.NoError(t, err)
	assert.Contains(t, feedback, "Still not")
	assert.NotEmpty(t, findings, "second dirty draft must carry its findings for human review")
}

func TestGenerateRejectionFeedbackEmptyInputs(t *testing.T) {
	gen := &fakeGenerator{}
	_, _, err := GenerateRejectionFeedback(context.Background(), gen, "", sampleResume)
	assert.Error(t, err)
	_, _, err = GenerateRejectionFeedback(context.Background(), gen, testJD, "  ")
	assert.Error(t, err)
}

func TestGenerateImprovementSuggestions(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"1. Add RabbitMQ throughput metrics."}}

	suggestions, err := GenerateImprovementSuggestions(context.Background(), gen, testJD, sampleResume)
	require.NoError(t, err)
	assert.Contains(t, suggestions, "RabbitMQ")
	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0], testJD)
	assert.Contains(t, gen.calls[0], "Jane Doe")
}

func TestRewriteResume(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"\n[SUMMARY]\nGo engineer focused on messaging systems.\n"}}

	rewrite, err := RewriteResume(context.Background(), gen, testJD, sampleResume)
	require.NoError(t, err)
	assert.Equal(t, "[SUMMARY]\nGo engineer focused on messaging systems.", rewrite)
}

func TestGeneratorErrorPropagates(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("rate limited")}

	_, err := GenerateImprovementSuggestions(context.Background(), gen, testJD, sampleResume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
