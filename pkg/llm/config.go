package llm

import (
	"fmt"
	"strings"

	"github.com/SanikaPatil0624/ContentMagic/pkg/config"
)

type Config struct {
	Provider  string
	Model     string
	APIKey    string
	APIURL    string
	MaxTokens int
}

// LoadConfig reads provider settings from LLM_* env vars. An empty Provider
// means no AI backend is configured and the caller should fall back to
// template generation.
func LoadConfig() Config {
	return Config{
		Provider:  config.GetEnv("LLM_PROVIDER", ""),
		Model:     config.GetEnv("LLM_MODEL", ""),
		APIKey:    config.GetEnv("LLM_API_KEY", ""),
		APIURL:    config.GetEnv("LLM_API_URL", ""),
		MaxTokens: config.GetEnvInt("LLM_MAX_TOKENS", 0),
	}
}

// Configured reports whether an AI backend has been selected.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.Provider) != ""
}

func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "anthropic":
		return NewAnthropicProvider(cfg), nil
	case "ollama":
		return NewOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
