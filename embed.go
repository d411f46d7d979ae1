package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

const embeddingModel = "gemini-embedding-001"

// maxEmbeddingRunes keeps inputs under the embedding endpoint token limit.
const maxEmbeddingRunes = 8000

// Embedder generates embedding vectors from text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbedder(client *genai.Client) *GeminiEmbedder {
	return &GeminiEmbedder{client: client, model: embeddingModel}
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	text = normalizeForEmbedding(text)
	if text == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}

	values := resp.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}
	return vector, nil
}

// normalizeForEmbedding flattens newlines and truncates long documents the
// same way for every caller, so scores stay comparable across resumes.
func normalizeForEmbedding(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxEmbeddingRunes {
		text = string(runes[:maxEmbeddingRunes])
	}
	return text
}

// Cosine computes the cosine similarity of two vectors. Mismatched lengths
// or a zero-norm vector score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MatchScore embeds both texts and returns their cosine similarity.
func MatchScore(ctx context.Context, embedder Embedder, jobDescription, resumeText string) (float64, error) {
	jdVector, err := embedder.Embed(ctx, jobDescription)
	if err != nil {
		return 0, fmt.Errorf("embedding job description: %w", err)
	}
	resumeVector, err := embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("embedding resume: %w", err)
	}
	return Cosine(jdVector, resumeVector), nil
}

// ScoreBand maps a cosine match score onto the label shown to users.
func ScoreBand(score float64) string {
	switch {
	case score >= 0.80:
		return BandExcellent
	case score >= 0.60:
		return BandGood
	case score >= 0.40:
		return BandFair
	default:
		return BandNeedsWork
	}
}
