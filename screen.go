package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Rizqah/ATS-Prototype/internal/database"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"google.golang.org/adk/session"
)

// candidateName derives a display name from the uploaded filename.
func candidateName(originalFilename string) string {
	base := filepath.Base(originalFilename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// prepareResumeText downloads one resume, extracts its text, validates it
// and runs the LLM cleaning pass. This is the shared front half of both
// session modes.
func prepareResumeText(ctx context.Context, workerConfig *WorkerConfig, resume database.Resume) (string, error) {
	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	// network failures are transient
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, resume.ObjectKey)
	})
	if err != nil {
		return "", fmt.Errorf("file download error: %w", err)
	}

	rawText, err := ExtractResumeText(resume.Mime, fileBytes)
	if err != nil {
		return "", fmt.Errorf("text extraction error: %w", err)
	}

	if err := ValidateResumeDocument(rawText); err != nil {
		return "", fmt.Errorf("resume validation error: %w", err)
	}

	cleaned, err := retry(2, func() (string, error) {
		return CleanAndStructureResume(ctx, workerConfig.Generator, rawText)
	})
	if err != nil {
		return "", fmt.Errorf("cleaning error: %w", err)
	}
	return cleaned, nil
}

// runScreenSession ranks every resume in a recruiter session against the
// job description and writes the ranked results back to the database.
// A failing candidate becomes an error entry in the results; it never
// aborts the batch.
func runScreenSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	if err := ValidateJobDescription(currentSession.JobDescription); err != nil {
		return err
	}

	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	// embed the job description once for the whole batch
	jdVector, err := retry(3, func() ([]float64, error) {
		return workerConfig.Embedder.Embed(ctx, currentSession.JobDescription)
	})
	if err != nil {
		return fmt.Errorf("failed to embed job description: %w", err)
	}

	// create an agent session for the per-candidate analysis runs
	agentSession, err := workerConfig.AgentSessionService.Create(ctx, &session.CreateRequest{
		AppName:   workerConfig.AgentName,
		UserID:    currentSession.UserID.String(),
		SessionID: currentSession.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to create agent session: %w", err)
	}

	results := &ScreeningResults{
		SessionID: currentSession.ID,
	}

	for _, resume := range resumes {
		name := candidateName(resume.OriginalFilename)

		cleaned, err := prepareResumeText(ctx, workerConfig, resume)
		if err != nil {
			log.Printf("skipping %s: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, CandidateResult{
				CandidateName: name,
				IsErrorResult: true,
				Error:         err.Error(),
			})
			continue
		}

		resumeVector, err := retry(2, func() ([]float64, error) {
			return workerConfig.Embedder.Embed(ctx, cleaned)
		})
		if err != nil {
			log.Printf("could not embed resume %s: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, CandidateResult{
				CandidateName: name,
				IsErrorResult: true,
				Error:         fmt.Sprintf("embedding error: %v", err),
			})
			continue
		}

		score := Cosine(jdVector, resumeVector)

		result := CandidateResult{
			CandidateName: name,
			MatchScore:    score,
			Band:          ScoreBand(score),
		}

		analysis, err := analyzeCandidate(ctx,
			workerConfig,
			agentSession.Session.UserID(),
			agentSession.Session.ID(),
			currentSession.JobTitle,
			currentSession.JobDescription,
			cleaned,
		)
		if err != nil {
			// keep the embedding score even when the analysis fails
			log.Printf("analysis failed for %s: %v", resume.ObjectKey, err)
			result.Error = err.Error()
		} else {
			result.CandidateEmail = analysis.CandidateEmail
			result.RelevantExperiences = analysis.RelevantExperiences
			result.RelevantSkills = analysis.RelevantSkills
			result.MissingSkills = analysis.MissingSkills
			result.Summary = analysis.Summary
			result.Recomendation = analysis.Recomendation
		}

		// kept for the feedback pass below, not persisted
		result.cleanedResume = cleaned

		results.Results = append(results.Results, result)
	}

	rankCandidates(results.Results)

	markShortlist(results.Results, currentSession.ShortlistSize)

	// rejection feedback for everyone outside the shortlist
	for i := range results.Results {
		r := &results.Results[i]
		if r.IsErrorResult || r.Shortlisted {
			continue
		}
		feedback, findings, err := GenerateRejectionFeedback(ctx, workerConfig.Generator, currentSession.JobDescription, r.cleanedResume)
		if err != nil {
			log.Printf("feedback failed for %s: %v", r.CandidateName, err)
			r.Error = err.Error()
			continue
		}
		r.Feedback = feedback
		r.ComplianceFindings = findings
	}

	log.Println("session id: " + agentSession.Session.ID() + " analyzed")
	// Clean up the agent session.
	err = workerConfig.AgentSessionService.Delete(ctx, &session.DeleteRequest{
		AppName:   agentSession.Session.AppName(),
		UserID:    agentSession.Session.UserID(),
		SessionID: agentSession.Session.ID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete agent session: %v", err)
	}

	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal screening results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateSessionResults(ctx, database.CreateOrUpdateSessionResultsParams{
			Results:   resultsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save screening results after retries: %w", err)
	}

	return nil
}

// rankCandidates sorts scored candidates descending; error entries sink to
// the bottom.
func rankCandidates(results []CandidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsErrorResult != results[j].IsErrorResult {
			return !results[i].IsErrorResult
		}
		return results[i].MatchScore > results[j].MatchScore
	})
}

// markShortlist flags the top n scored candidates. n <= 0 shortlists
// nobody, so every candidate gets feedback.
func markShortlist(results []CandidateResult, n int) {
	if n <= 0 {
		return
	}
	for i := range results {
		if i >= n {
			break
		}
		if !results[i].IsErrorResult {
			results[i].Shortlisted = true
		}
	}
}
