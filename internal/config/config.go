package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Widget WidgetConfig
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	widget, err := loadWidgetConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Widget: widget}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	origins := splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*"))
	return ServerConfig{Addr: addr, AllowedOrigins: origins}, nil
}

// AIConfig describes the upstream completion model. The reference deployment
// talks to an OpenAI-compatible Groq endpoint.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature *float64
	MaxTokens   *int
}

// Enabled reports whether the generative responder can be built.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel creates the model client from this configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("generative responder requires GROQ_API_KEY and GROQ_MODEL")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	cfg := &openai.ChatModelConfig{
		APIKey:      c.APIKey,
		Model:       c.Model,
		BaseURL:     c.BaseURL,
		Temperature: temperature,
		MaxTokens:   c.MaxTokens,
	}

	return openai.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("GROQ_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("GROQ_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Model:       getEnvOrDefault("GROQ_MODEL", "llama3-8b-8192"),
		BaseURL:     getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

// WidgetConfig tunes the session engine behavior.
type WidgetConfig struct {
	// ResponseTimeout bounds each outbound routing call.
	ResponseTimeout time.Duration
	// FeePDFURL is the fee structure document attached to fee replies.
	// Empty selects the default path.
	FeePDFURL string
}

func loadWidgetConfig() (WidgetConfig, error) {
	seconds, err := parseOptionalIntEnv("WIDGET_RESPONSE_TIMEOUT")
	if err != nil {
		return WidgetConfig{}, err
	}

	timeout := 10 * time.Second
	if seconds != nil {
		if *seconds < 1 {
			return WidgetConfig{}, fmt.Errorf("WIDGET_RESPONSE_TIMEOUT must be at least 1 second")
		}
		timeout = time.Duration(*seconds) * time.Second
	}

	return WidgetConfig{
		ResponseTimeout: timeout,
		FeePDFURL:       strings.TrimSpace(os.Getenv("FEE_PDF_URL")),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
