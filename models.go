package main

import (
	"time"

	"github.com/Rizqah/ATS-Prototype/internal/database"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

// Session modes. A "screen" session ranks many resumes against one job
// description; an "optimize" session scores a single resume and produces
// improvement output for the candidate.
const (
	ModeScreen   = "screen"
	ModeOptimize = "optimize"
)

// Match score bands shown to users, cut at 0.80 / 0.60 / 0.40.
const (
	BandExcellent = "excellent_match"
	BandGood      = "good_match"
	BandFair      = "fair_match"
	BandNeedsWork = "needs_work"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB                  *database.Queries
	Embedder            Embedder
	Generator           TextGenerator
	R2                  *R2Config
	AwsConfig           *aws.Config
	RabbitConn          *amqp.Connection
	RABBITMQUrl         string
	AgentRunner         *runner.Runner
	AgentSessionService session.Service
	AgentName           string
}

// CandidateAnalysis is the structured JSON the analyzer agent returns for
// one resume.
type CandidateAnalysis struct {
	CandidateEmail      string   `json:"candidate_email"`
	RelevantExperiences []string `json:"relevant_experiences"`
	RelevantSkills      []string `json:"relevant_skills"`
	MissingSkills       []string `json:"missing_skills"`
	Summary             string   `json:"summary"`
	Recomendation       string   `json:"recommendation"`
}

// CandidateResult is one ranked candidate in a screening session.
type CandidateResult struct {
	CandidateName  string  `json:"candidate_name"`
	CandidateEmail string  `json:"candidate_email,omitempty"`
	MatchScore     float64 `json:"match_score"`
	Band           string  `json:"band,omitempty"`
	Shortlisted    bool    `json:"shortlisted"`

	RelevantExperiences []string `json:"relevant_experiences,omitempty"`
	RelevantSkills      []string `json:"relevant_skills,omitempty"`
	MissingSkills       []string `json:"missing_skills,omitempty"`
	Summary             string   `json:"summary,omitempty"`
	Recomendation       string   `json:"recommendation,omitempty"`

	// Rejection feedback for candidates outside the shortlist, plus any
	// compliance findings the scanner raised against it.
	Feedback           string              `json:"feedback,omitempty"`
	ComplianceFindings []ComplianceFinding `json:"compliance_findings,omitempty"`

	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`

	// carried through the pipeline for the feedback pass, never persisted
	cleanedResume string
}

type ScreeningResults struct {
	ID        uuid.UUID         `json:"id"`
	Results   []CandidateResult `json:"results" db:"results"`
	CreatedAt time.Time         `json:"created_at"`
	SessionID uuid.UUID         `json:"session_id"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// OptimizeResult is the payload persisted for a candidate-facing session.
type OptimizeResult struct {
	CandidateName      string              `json:"candidate_name"`
	MatchScore         float64             `json:"match_score"`
	Band               string              `json:"band"`
	CleanedResume      string              `json:"cleaned_resume"`
	Suggestions        string              `json:"suggestions"`
	Rewrite            string              `json:"rewrite"`
	ComplianceFindings []ComplianceFinding `json:"compliance_findings,omitempty"`

	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	Mode           string    `json:"mode"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	// ShortlistSize is how many top candidates skip rejection feedback in
	// screen mode. Zero means everyone gets feedback.
	ShortlistSize int `json:"shortlist_size"`
}
