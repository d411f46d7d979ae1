package main

import (
	"context"
	"fmt"
	"strings"
)

// CleanAndStructureResume runs the LLM cleaning pass over raw extracted
// resume text. Deterministic settings so the same resume always cleans the
// same way.
func CleanAndStructureResume(ctx context.Context, gen TextGenerator, rawText string) (string, error) {
	if strings.TrimSpace(rawText) == "" {
		return "", fmt.Errorf("empty resume text")
	}

	cleaned, err := gen.Generate(ctx, cleaningPrompt(), rawText, 0.0, 2000)
	if err != nil {
		return "", fmt.Errorf("cleaning pass: %w", err)
	}
	return strings.TrimSpace(cleaned), nil
}

// GenerateRejectionFeedback writes a compliant rejection email for one
// candidate, then runs the compliance scanner over it. A dirty draft gets
// one regeneration with the findings quoted back; if the second draft is
// still dirty the findings are returned with the text so a human reviews
// it before it is sent.
func GenerateRejectionFeedback(ctx context.Context, gen TextGenerator, jobDescription, cleanedResume string) (string, []ComplianceFinding, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", nil, fmt.Errorf("empty job description")
	}
	if strings.TrimSpace(cleanedResume) == "" {
		return "", nil, fmt.Errorf("empty candidate resume")
	}

	feedback, err := gen.Generate(ctx, feedbackPrompt(), feedbackMessage(jobDescription, cleanedResume), 0.3, 500)
	if err != nil {
		return "", nil, fmt.Errorf("feedback generation: %w", err)
	}

	findings := ScanFeedback(feedback)
	if len(findings) == 0 {
		return feedback, nil, nil
	}

	retry, err := gen.Generate(ctx, feedbackPrompt(), feedbackRetryMessage(jobDescription, cleanedResume, findings), 0.3, 500)
	if err != nil {
		// keep the first draft, flagged
		return feedback, findings, nil
	}

	retryFindings := ScanFeedback(retry)
	return retry, retryFindings, nil
}

// GenerateImprovementSuggestions produces candidate-facing advice for an
// optimize session.
func GenerateImprovementSuggestions(ctx context.Context, gen TextGenerator, jobDescription, cleanedResume string) (string, error) {
	suggestions, err := gen.Generate(ctx, suggestionsPrompt(), suggestionsMessage(jobDescription, cleanedResume), 0.3, 800)
	if err != nil {
		return "", fmt.Errorf("suggestions generation: %w", err)
	}
	return suggestions, nil
}

// RewriteResume produces a tailored rewrite of the cleaned resume for an
// optimize session.
func RewriteResume(ctx context.Context, gen TextGenerator, jobDescription, cleanedResume string) (string, error) {
	rewrite, err := gen.Generate(ctx, rewritePrompt(), rewriteMessage(jobDescription, cleanedResume), 0.3, 2000)
	if err != nil {
		return "", fmt.Errorf("rewrite generation: %w", err)
	}
	return strings.TrimSpace(rewrite), nil
}
