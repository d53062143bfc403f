// File: cmd/diagnostic/llm_diagnostic.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/iyunix/go-mindmesh/internal/app"
	"github.com/iyunix/go-mindmesh/internal/config"
)

// Runs the same connectivity check as GET /test-ai against the configured upstream.
func main() {
	fmt.Println("Testing upstream completion service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.InitializeApplication(cfg, app.ProvideLogger(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	fmt.Printf("Model: %s\n", cfg.OpenAIModel)
	fmt.Printf("API key configured: %t\n", cfg.APIKeyConfigured())
	if cfg.OpenAIBaseURL != "" {
		fmt.Printf("Base URL: %s\n", cfg.OpenAIBaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout+5*time.Second)
	defer cancel()

	result := application.Gateway.TestConnection(ctx)
	if !result.Success {
		fmt.Printf("Test failed: %s\n", result.Error)
		os.Exit(1)
	}

	fmt.Printf("Response: %s\n", result.Response)
}
