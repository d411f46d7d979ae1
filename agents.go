package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

func GetAgent(apiKey, agentName string) (agent.Agent, error) {
	ctx := context.Background()
	model, err := gemini.NewModel(ctx, "gemini-2.5-pro", &genai.ClientConfig{
		APIKey: apiKey,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create model: %v", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Analyze Resume",
		Instruction: analyzerPrompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	return customAgent, err
}

// analyzeCandidate runs the analyzer agent for one resume inside an
// existing agent session and parses its JSON output.
func analyzeCandidate(ctx context.Context, workerConfig *WorkerConfig, userID, sessionID, jobTitle, jobDescription, resumeText string) (CandidateAnalysis, error) {
	analysis := CandidateAnalysis{}

	msg := fmt.Sprintf(
		"Job Title:\n%s\n\nJob Description:\n%s\n\nResume:\n%s",
		jobTitle,
		jobDescription,
		resumeText,
	)

	output, err := retry(2, func() (string, error) {
		stream := workerConfig.AgentRunner.Run(ctx, userID, sessionID, &genai.Content{
			Role: "user",
			Parts: []*genai.Part{
				{Text: msg},
			},
		}, agent.RunConfig{})

		var out string
		for event, err := range stream {
			if err != nil {
				return "", err
			}
			if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
				out = event.Content.Parts[0].Text
			}
		}

		if out == "" {
			return "", fmt.Errorf("empty agent response")
		}
		return out, nil
	})
	if err != nil {
		return analysis, fmt.Errorf("agent stream error: %w", err)
	}

	if err := json.Unmarshal([]byte(CleanJson(output)), &analysis); err != nil {
		return analysis, fmt.Errorf("json unmarshal error: %w", err)
	}
	return analysis, nil
}
