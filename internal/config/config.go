package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/easyconstruct/chatbot-service/shared/envconfig"
)

// Supported model providers.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

const (
	defaultGroqModel    = "llama-3.3-70b-versatile"
	defaultGroqBaseURL  = "https://api.groq.com/openai/v1/"
	defaultGeminiModel  = "gemini-2.5-flash"
	defaultTemperature  = 0.7
	defaultRequestLimit = 60 * time.Second
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3000",
}

// Config encapsulates the runtime configuration for the chatbot service.
type Config struct {
	Port           string        `validate:"required,numeric"`
	LogLevel       string        `validate:"omitempty,oneof=debug info warn warning error"`
	RequestTimeout time.Duration `validate:"gt=0"`
	CORS           CORSConfig
	LLM            LLMConfig
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `validate:"required,dive,url"`
}

// LLMConfig defines how the chatbot talks to the hosted model.
type LLMConfig struct {
	Provider        string `validate:"oneof=groq gemini"`
	APIKey          string
	APIKeyEnv       string  `validate:"required"`
	Model           string  `validate:"required"`
	BaseURL         string  `validate:"omitempty,url"`
	Temperature     float64 `validate:"gte=0,lte=2"`
	MaxOutputTokens int     `validate:"gte=0"`
}

// Configured reports whether a credential for the selected provider is present.
func (c LLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Load reads environment variables into Config with validation.
// A missing API key is not an error: the service starts and reports itself unconfigured.
func Load() (Config, error) {
	provider := strings.ToLower(strings.TrimSpace(envconfig.Get("LLM_PROVIDER", ProviderGroq)))

	cfg := Config{
		Port:           envconfig.Get("PORT", "5000"),
		LogLevel:       strings.ToLower(envconfig.Get("LOG_LEVEL", "info")),
		RequestTimeout: envconfig.Duration("REQUEST_TIMEOUT", defaultRequestLimit),
		CORS: CORSConfig{
			AllowedOrigins: envconfig.List("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		},
		LLM: loadLLM(provider),
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadLLM(provider string) LLMConfig {
	llm := LLMConfig{
		Provider:        provider,
		Temperature:     envconfig.Float("LLM_TEMPERATURE", defaultTemperature),
		MaxOutputTokens: envconfig.Int("LLM_MAX_OUTPUT_TOKENS", 0),
	}

	switch provider {
	case ProviderGemini:
		llm.APIKeyEnv = "GEMINI_API_KEY"
		llm.APIKey = envconfig.FirstOf("", "GEMINI_API_KEY", "GOOGLE_API_KEY")
		llm.Model = envconfig.Get("GEMINI_MODEL", defaultGeminiModel)
	default:
		llm.APIKeyEnv = "GROQ_API_KEY"
		llm.APIKey = strings.TrimSpace(envconfig.Get("GROQ_API_KEY", ""))
		llm.Model = envconfig.Get("GROQ_MODEL", defaultGroqModel)
		llm.BaseURL = envconfig.Get("GROQ_BASE_URL", defaultGroqBaseURL)
	}

	return llm
}
