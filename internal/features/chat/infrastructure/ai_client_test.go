package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() ChatRequest {
	return ChatRequest{
		SystemInstruction: "你是一名专业的UI/UX设计专家。",
		Temperature:       0.7,
		History: []Turn{
			{Role: "user", Text: "first"},
			{Role: "model", Text: "reply"},
			{Role: "user", Text: "M"},
		},
	}
}

func TestOpenAIClientGenerate(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"R"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "gpt-test", srv.URL)
	require.NoError(t, err)

	reply, err := c.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "R", reply)

	assert.Equal(t, "gpt-test", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 1e-6)
	var roles []string
	for _, m := range got.Messages {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
	assert.Equal(t, "M", got.Messages[3].Content)
}

func TestOpenAIClientSendsZeroTemperature(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"R"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "m", srv.URL)
	require.NoError(t, err)

	req := sampleRequest()
	req.Temperature = 0
	_, err = c.Generate(context.Background(), req)
	require.NoError(t, err)

	require.Contains(t, got, "temperature")
	assert.InDelta(t, 0, got["temperature"], 1e-6)
}

func TestOpenAIClientInvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-bad", "", srv.URL)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestOpenAIClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"bad","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "", srv.URL)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredential)
}

func TestGeminiClientGenerate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-pro:generateContent")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"R"}]}}]}`)
	}))
	defer srv.Close()

	c, err := NewGeminiClient(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Gemini:gemini-2.5-pro", c.Name())

	reply, err := c.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "R", reply)

	contents, ok := body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 3)
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
	assert.NotNil(t, body["systemInstruction"])
}

func TestGeminiClientInvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	c, err := NewGeminiClient(context.Background(), "bad-key", "", srv.URL)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestClassifyGeminiError(t *testing.T) {
	assert.ErrorIs(t, classifyGeminiError(errors.New("Error 400, Message: API key not valid.")), ErrInvalidCredential)
	assert.ErrorIs(t, classifyGeminiError(errors.New("context deadline exceeded")), ErrUnavailable)
}

func TestFactory(t *testing.T) {
	f := NewAIClientFactory()
	ctx := context.Background()

	_, err := f.CreateClient(ctx, AIConfig{Provider: "gemini"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	c, err := f.CreateClient(ctx, AIConfig{Provider: "OpenAI", APIKey: "sk-test", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "OpenAI:m", c.Name())

	_, err = f.CreateClient(ctx, AIConfig{Provider: "claude"})
	assert.Error(t, err)
}

func TestUnavailableClient(t *testing.T) {
	_, err := UnavailableClient{Err: errors.New("boom")}.Generate(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = UnavailableClient{Err: ErrInvalidCredential}.Generate(context.Background(), ChatRequest{})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
