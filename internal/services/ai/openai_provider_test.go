package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestProvider(t *testing.T, srv *httptest.Server, timeout time.Duration) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider(&Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Timeout: timeout})
	require.NoError(t, err)
	return p
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
}

func writeAPIError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": msg, "type": "error", "code": code},
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeConfig, aiErr.Type)

	cfg.APIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	require.Error(t, cfg.Validate())
}

func TestNewOpenAIProvider_RejectsMissingKey(t *testing.T) {
	_, err := NewOpenAIProvider(&Config{Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestComplete_SendsSystemAndUserMessages(t *testing.T) {
	var got capturedRequest
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeCompletion(w, "  Roll for initiative.  ")
	}))
	defer srv.Close()

	p := newTestProvider(t, srv, 2*time.Second)
	out, err := p.Complete(context.Background(), CompletionRequest{
		Model:        "gpt-3.5-turbo",
		SystemPrompt: "You are a D&D expert.",
		UserMessage:  "hi",
		MaxTokens:    500,
		Temperature:  0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "  Roll for initiative.  ", out, "provider must not trim")
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "You are a D&D expert.", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "hi", got.Messages[1].Content)
}

func TestComplete_OmitsEmptySystemPrompt(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeCompletion(w, "hello")
	}))
	defer srv.Close()

	p := newTestProvider(t, srv, 2*time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "Say hello"})
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestComplete_EmptyModel(t *testing.T) {
	p, err := NewOpenAIProvider(&Config{APIKey: "sk-test", Timeout: time.Second})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), CompletionRequest{UserMessage: "hi"})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeValidation, aiErr.Type)
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv, 2*time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "hi"})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeProvider, aiErr.Type)
	assert.Contains(t, aiErr.Message, "empty completion")
}

func TestComplete_ClassifiesUpstreamErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		want   ErrorType
	}{
		{"unauthorized", http.StatusUnauthorized, "invalid_api_key", ErrTypeAuth},
		{"rate limited", http.StatusTooManyRequests, "rate_limit_exceeded", ErrTypeRateLimit},
		{"quota", http.StatusTooManyRequests, "insufficient_quota", ErrTypeQuota},
		{"server error", http.StatusInternalServerError, "server_error", ErrTypeProvider},
		{"bad model", http.StatusNotFound, "model_not_found", ErrTypeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, tc.status, tc.code, "upstream says no")
			}))
			defer srv.Close()

			p := newTestProvider(t, srv, 2*time.Second)
			_, err := p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "hi"})
			var aiErr *AIError
			require.ErrorAs(t, err, &aiErr)
			assert.Equal(t, tc.want, aiErr.Type)
			assert.Equal(t, tc.status, aiErr.Code)
			assert.Equal(t, "m", aiErr.Model)
		})
	}
}

func TestComplete_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv, 2*time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "hi"})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeProvider, aiErr.Type)
	assert.Equal(t, http.StatusBadGateway, aiErr.Code)
}

func TestComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p := newTestProvider(t, srv, 50*time.Millisecond)
	_, err := p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "hi"})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeTimeout, aiErr.Type)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestComplete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, err := NewOpenAIProvider(&Config{APIKey: "sk-test", BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)
	_, err = p.Complete(context.Background(), CompletionRequest{Model: "m", UserMessage: "hi"})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ErrTypeNetwork, aiErr.Type)
}
