package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const generationModel = "gemini-2.5-flash"

// TextGenerator produces a completion for a system prompt + user message
// pair. Implementations can use Gemini, OpenAI, etc.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string, temperature float32, maxTokens int32) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client, model: generationModel}
}

func (g *GeminiGenerator) Generate(ctx context.Context, system, user string, temperature float32, maxTokens int32) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", fmt.Errorf("empty user message")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// CleanJson strips markdown code fences the model sometimes wraps around
// JSON output.
func CleanJson(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n") // remove newline immediately after opening backticks

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	clean = strings.TrimSpace(clean) // final trim

	return clean
}
