package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when GEMINI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

// Provider values for LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Config holds all configuration values. It is built once at start-up and
// passed by reference to whatever needs it.
type Config struct {
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	Provider     string `mapstructure:"LLM_PROVIDER"`
	BaseURL      string `mapstructure:"LLM_BASE_URL"`

	FlightModel       string `mapstructure:"FLIGHT_MODEL"`
	HotelModel        string `mapstructure:"HOTEL_MODEL"`
	PaymentModel      string `mapstructure:"PAYMENT_MODEL"`
	OrchestratorModel string `mapstructure:"ORCHESTRATOR_MODEL"`
	MaxIterations     int    `mapstructure:"MAX_ITERATIONS"`

	// Tracing is off unless enabled and both cozeloop credentials are present.
	TracingEnabled      bool   `mapstructure:"TRACING_ENABLED"`
	CozeloopAPIToken    string `mapstructure:"COZELOOP_API_TOKEN"`
	CozeloopWorkspaceID string `mapstructure:"COZELOOP_WORKSPACE_ID"`

	// An empty RedisAddr keeps chat transcripts in memory.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	HistoryLimit  int    `mapstructure:"HISTORY_LIMIT"`

	HTTPAddr       string  `mapstructure:"HTTP_ADDR"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`
}

var defaults = map[string]any{
	"GEMINI_API_KEY":        "",
	"LLM_PROVIDER":          ProviderOpenAI,
	"LLM_BASE_URL":          GeminiOpenAIBaseURL,
	"FLIGHT_MODEL":          "gemini-1.5-pro",
	"HOTEL_MODEL":           "gemini-1.5-flash",
	"PAYMENT_MODEL":         "gemini-2.0-flash",
	"ORCHESTRATOR_MODEL":    "gemini-2.0-flash",
	"MAX_ITERATIONS":        20,
	"TRACING_ENABLED":       false,
	"COZELOOP_API_TOKEN":    "",
	"COZELOOP_WORKSPACE_ID": "",
	"REDIS_ADDR":            "",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"HISTORY_LIMIT":         20,
	"HTTP_ADDR":             ":8080",
	"RATE_LIMIT_RPS":        2.0,
	"RATE_LIMIT_BURST":      5,
	"LOG_LEVEL":             "info",
	"LOG_FILE":              "",
}

// Load reads configuration from the environment and, when path is not empty,
// from that config file. Environment variables win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q, want %q or %q", c.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}

// TracingConfigured reports whether cozeloop tracing should be installed.
func (c *Config) TracingConfigured() bool {
	return c.TracingEnabled && c.CozeloopAPIToken != "" && c.CozeloopWorkspaceID != ""
}
