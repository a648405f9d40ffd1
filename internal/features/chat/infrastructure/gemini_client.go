package infrastructure

import (
	"context"
	"fmt"
	"log"
	"strings"

	genai "google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-pro"

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient builds a Gemini API client. An empty apiKey is reported as
// an invalid credential; baseURL is optional.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY environment variable not set", ErrInvalidCredential)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	cfg := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if baseURL != "" {
		cfg.HTTPOptions.BaseURL = baseURL
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// Generate sends the history with the system instruction and returns the
// concatenated text parts of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, req ChatRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	contents := make([]*genai.Content, 0, len(req.History))
	for _, t := range req.History {
		contents = append(contents, genai.NewContentFromText(t.Text, genai.Role(t.Role)))
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		log.Printf("[ERROR] Gemini GenerateContent (%s): %v", model, err)
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response from %s", ErrUnavailable, model)
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: empty response from %s", ErrUnavailable, model)
	}
	return b.String(), nil
}

// classifyGeminiError separates rejected API keys from other failures.
func classifyGeminiError(err error) error {
	msg := err.Error()
	for _, marker := range []string{"API key not valid", "API_KEY_INVALID", "UNAUTHENTICATED"} {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
