// File: internal/app/wire.go
package app

import (
	"net/http"

	"github.com/iyunix/go-mindmesh/internal/config"
	"github.com/iyunix/go-mindmesh/internal/handlers"
	"github.com/iyunix/go-mindmesh/internal/middleware"
	"github.com/iyunix/go-mindmesh/internal/services"
	"github.com/iyunix/go-mindmesh/internal/services/ai"
	"github.com/iyunix/go-mindmesh/internal/services/chat"
)

const (
	ServiceName = "mindmesh"
	Version     = "1.0.0"
)

// Application aggregates all services and handlers
type Application struct {
	Config  *config.Config
	Logger  services.Logger
	Gateway *chat.Gateway
	Handler http.Handler
}

// Provider functions

func ProvideLogger(cfg *config.Config) services.Logger {
	return services.NewLogger(ServiceName, cfg.Environment, cfg.LogLevel)
}

func ProvideAIConfig(cfg *config.Config) *ai.Config {
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.OpenAIAPIKey
	aiConfig.BaseURL = cfg.OpenAIBaseURL
	aiConfig.Timeout = cfg.UpstreamTimeout
	return aiConfig
}

// ProvideAIProvider returns nil when no credential is configured or the
// client cannot be built; the gateway then runs in fallback mode.
func ProvideAIProvider(aiConfig *ai.Config, logger services.Logger) ai.CompletionProvider {
	if aiConfig.APIKey == "" {
		logger.Warn("No OpenAI API key found in environment variables; running in fallback mode")
		return nil
	}
	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		logger.Error("OpenAI client failed to initialize; running in fallback mode", "error", err.Error())
		return nil
	}
	logger.Info("OpenAI client initialized successfully", "base_url", aiConfig.BaseURL)
	return provider
}

func ProvideChatConfig(cfg *config.Config) *chat.Config {
	chatConfig := chat.DefaultConfig()
	chatConfig.Model = cfg.OpenAIModel
	chatConfig.Environment = cfg.Environment
	chatConfig.Version = Version
	chatConfig.APIKeyConfigured = cfg.APIKeyConfigured()
	chatConfig.MaxConcurrent = cfg.MaxConcurrentCompletions
	return chatConfig
}

func ProvideAllowedOrigins(cfg *config.Config) []string {
	origins := make([]string, 0, len(middleware.DefaultAllowedOrigins)+len(cfg.CORSAllowedOrigins))
	origins = append(origins, middleware.DefaultAllowedOrigins...)
	return append(origins, cfg.CORSAllowedOrigins...)
}

// InitializeApplication builds the gateway and HTTP handler from cfg.
func InitializeApplication(cfg *config.Config, logger services.Logger) (*Application, error) {
	provider := ProvideAIProvider(ProvideAIConfig(cfg), logger)

	gateway, err := chat.NewGateway(ProvideChatConfig(cfg), provider, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Gateway: gateway,
		Handler: handlers.NewRouter(gateway, logger, ProvideAllowedOrigins(cfg)),
	}, nil
}
