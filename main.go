package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/devinsights/linearb-mcp/pkg/config"
	"github.com/devinsights/linearb-mcp/pkg/linearb"
	"github.com/devinsights/linearb-mcp/pkg/tools"
)

func main() {
	// All logging MUST go to stderr — stdout is reserved for MCP JSON-RPC
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	client := linearb.NewClient(logger, &http.Client{Timeout: cfg.Timeout}, cfg.BaseURL, cfg.APIKey)

	// Create MCP server
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "linearb-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	// Register all tools
	tools.RegisterAll(server, client)

	logger.Info("linearb-mcp server starting on stdio",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
	)

	// Run on stdio transport
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
