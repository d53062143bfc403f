package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyunix/go-mindmesh/internal/config"
	"github.com/iyunix/go-mindmesh/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		OpenAIModel:              "gpt-3.5-turbo",
		Port:                     "8000",
		Environment:              "test",
		LogLevel:                 "info",
		UpstreamTimeout:          time.Second,
		MaxConcurrentCompletions: 4,
	}
}

func TestInitializeApplication_WithoutKey(t *testing.T) {
	application, err := InitializeApplication(testConfig(), &services.NoOpLogger{})
	require.NoError(t, err)

	assert.False(t, application.Gateway.AIAvailable())
	h := application.Gateway.Health()
	assert.False(t, h.APIKeyConfigured)
	assert.Equal(t, "test", h.Environment)
	assert.Equal(t, Version, h.Version)
}

func TestInitializeApplication_WithKey(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAIAPIKey = "sk-test"
	cfg.OpenAIBaseURL = "http://127.0.0.1:1/v1"

	application, err := InitializeApplication(cfg, &services.NoOpLogger{})
	require.NoError(t, err)

	assert.True(t, application.Gateway.AIAvailable())
	assert.True(t, application.Gateway.Health().APIKeyConfigured)
}

func TestInitializeApplication_ExtraOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.CORSAllowedOrigins = []string{"https://staging.example.com"}

	application, err := InitializeApplication(cfg, &services.NoOpLogger{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://staging.example.com")
	rec := httptest.NewRecorder()
	application.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://staging.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestProvideChatConfig(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAIModel = "gpt-4o-mini"
	cfg.MaxConcurrentCompletions = 0

	chatConfig := ProvideChatConfig(cfg)

	assert.Equal(t, "gpt-4o-mini", chatConfig.Model)
	assert.Equal(t, int64(0), chatConfig.MaxConcurrent)
	assert.Equal(t, 500, chatConfig.MaxTokens)
	assert.NoError(t, chatConfig.Validate())
}
