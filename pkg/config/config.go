package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/devinsights/linearb-mcp/pkg/linearb"
)

// DefaultBaseURL is the public LinearB API endpoint.
const DefaultBaseURL = "https://public-api.linearb.io"

const (
	defaultTimeoutSeconds = 30
	defaultLogLevel       = "info"
)

// Config holds process settings sourced from the environment, layered over
// an optional YAML file. The API key is the only required value.
type Config struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment and, when present, a
// linearb-mcp.yaml in the working directory (or the file named by
// LINEARB_MCP_CONFIG). Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", "")

	// Variable names predate this implementation; keep them stable.
	v.BindEnv("api_key", "LINEARB_API_KEY")
	v.BindEnv("base_url", "LINEARB_BASE_URL")
	v.BindEnv("timeout_seconds", "API_TIMEOUT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_file", "LOG_FILE")

	if path := os.Getenv("LINEARB_MCP_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, linearb.NewConfigError(fmt.Sprintf("reading config file %s: %v", path, err))
		}
	} else {
		v.SetConfigName("linearb-mcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, linearb.NewConfigError(fmt.Sprintf("reading config file: %v", err))
			}
		}
	}

	timeoutSeconds := v.GetFloat64("timeout_seconds")

	cfg := &Config{
		APIKey:   strings.TrimSpace(v.GetString("api_key")),
		BaseURL:  strings.TrimSpace(v.GetString("base_url")),
		Timeout:  time.Duration(timeoutSeconds * float64(time.Second)),
		LogLevel: v.GetString("log_level"),
		LogFile:  v.GetString("log_file"),
	}

	if cfg.APIKey == "" {
		return nil, linearb.NewConfigError("LINEARB_API_KEY is not set")
	}
	if cfg.BaseURL == "" {
		return nil, linearb.NewConfigError("base URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, linearb.NewConfigError("API_TIMEOUT must be a positive number of seconds")
	}

	return cfg, nil
}
