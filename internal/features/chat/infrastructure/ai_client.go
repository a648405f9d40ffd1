package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredential means the provider rejected the API key.
	ErrInvalidCredential = errors.New("ai: invalid credential")
	// ErrUnavailable covers every other failure to obtain a reply.
	ErrUnavailable = errors.New("ai: assistant unavailable")
)

// Turn is one message of conversation history. Role is "user" or "model".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is a single, stateless generation request.
type ChatRequest struct {
	Model             string  `json:"model,omitempty"`
	SystemInstruction string  `json:"system_instruction"`
	Temperature       float64 `json:"temperature"`
	MaxTokens         int     `json:"max_tokens,omitempty"`
	History           []Turn  `json:"history"`
}

// AIClient defines a generic interface for AI services
type AIClient interface {
	// Generate sends the request and returns the reply text. Errors wrap
	// ErrInvalidCredential or ErrUnavailable.
	Generate(ctx context.Context, req ChatRequest) (string, error)

	// Name identifies the provider and model, for logs.
	Name() string

	// Close closes the client and cleans up resources
	Close() error
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// AIConfig holds configuration for AI clients
type AIConfig struct {
	Provider string            `json:"provider"` // "gemini", "openai"
	APIKey   string            `json:"api_key"`
	Model    string            `json:"model"`
	Options  map[string]string `json:"options,omitempty"`
}

// AIClientFactory creates AI clients based on configuration
type AIClientFactory interface {
	CreateClient(ctx context.Context, config AIConfig) (AIClient, error)
}

type clientFactory struct{}

// NewAIClientFactory returns the factory for the supported providers.
func NewAIClientFactory() AIClientFactory {
	return clientFactory{}
}

func (clientFactory) CreateClient(ctx context.Context, config AIConfig) (AIClient, error) {
	switch strings.ToLower(config.Provider) {
	case "", ProviderGemini:
		return NewGeminiClient(ctx, config.APIKey, config.Model, config.Options["base_url"])
	case ProviderOpenAI:
		return NewOpenAIClient(config.APIKey, config.Model, config.Options["base_url"])
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", config.Provider)
	}
}

// UnavailableClient stands in when no real client could be built, so the
// rest of the service keeps working and chat requests fail with Err.
type UnavailableClient struct {
	Err error
}

func (u UnavailableClient) Generate(context.Context, ChatRequest) (string, error) {
	if errors.Is(u.Err, ErrInvalidCredential) || errors.Is(u.Err, ErrUnavailable) {
		return "", u.Err
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, u.Err)
}

func (u UnavailableClient) Name() string { return "unavailable" }
func (u UnavailableClient) Close() error { return nil }
