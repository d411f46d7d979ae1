package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Rizqah/ATS-Prototype/internal/database"
)

// runOptimizeSession handles the candidate flow: score one resume against
// the job description, then generate improvement suggestions and a tailored
// rewrite. Optimize sessions carry exactly one resume; extras are ignored
// with a log line.
func runOptimizeSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	if err := ValidateJobDescription(currentSession.JobDescription); err != nil {
		return err
	}

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}
	if len(resumes) == 0 {
		return fmt.Errorf("optimize session %v has no resume", currentSession.ID)
	}
	if len(resumes) > 1 {
		log.Printf("optimize session %v has %d resumes, using the first", currentSession.ID, len(resumes))
	}
	resume := resumes[0]

	result := OptimizeResult{
		CandidateName: candidateName(resume.OriginalFilename),
	}

	cleaned, err := prepareResumeText(ctx, workerConfig, resume)
	if err != nil {
		return persistOptimizeError(ctx, workerConfig, currentSession, result, err)
	}
	result.CleanedResume = cleaned

	score, err := MatchScore(ctx, workerConfig.Embedder, currentSession.JobDescription, cleaned)
	if err != nil {
		return persistOptimizeError(ctx, workerConfig, currentSession, result, err)
	}
	result.MatchScore = score
	result.Band = ScoreBand(score)

	suggestions, err := GenerateImprovementSuggestions(ctx, workerConfig.Generator, currentSession.JobDescription, cleaned)
	if err != nil {
		return persistOptimizeError(ctx, workerConfig, currentSession, result, err)
	}
	// suggestions go to the candidate, scan them like recruiter feedback
	result.Suggestions = suggestions
	result.ComplianceFindings = ScanFeedback(suggestions)

	rewrite, err := RewriteResume(ctx, workerConfig.Generator, currentSession.JobDescription, cleaned)
	if err != nil {
		return persistOptimizeError(ctx, workerConfig, currentSession, result, err)
	}
	result.Rewrite = rewrite

	return persistOptimizeResult(ctx, workerConfig, currentSession, result)
}

// persistOptimizeError stores whatever partial result exists together with
// the error, then reports the error so the session is marked failed.
func persistOptimizeError(ctx context.Context, workerConfig *WorkerConfig, currentSession Session, result OptimizeResult, cause error) error {
	result.IsErrorResult = true
	result.Error = cause.Error()
	if err := persistOptimizeResult(ctx, workerConfig, currentSession, result); err != nil {
		log.Printf("failed to persist error result for session %v: %v", currentSession.ID, err)
	}
	return cause
}

func persistOptimizeResult(ctx context.Context, workerConfig *WorkerConfig, currentSession Session, result OptimizeResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal optimize result: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateSessionResults(ctx, database.CreateOrUpdateSessionResultsParams{
			Results:   resultJSON,
			SessionID: currentSession.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save optimize result after retries: %w", err)
	}
	return nil
}
