package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "LOG_LEVEL", "REQUEST_TIMEOUT", "CORS_ALLOWED_ORIGINS",
		"LLM_PROVIDER", "LLM_TEMPERATURE", "LLM_MAX_OUTPUT_TOKENS",
		"GROQ_API_KEY", "GROQ_MODEL", "GROQ_BASE_URL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, defaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, "GROQ_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.False(t, cfg.LLM.Configured(), "missing key must load as unconfigured, not fail")
}

func TestLoadGroqKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.LLM.Configured())
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1/", cfg.LLM.BaseURL)
}

func TestLoadGeminiFallsBackToGoogleKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "google-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown provider":   {"LLM_PROVIDER": "anthropic"},
		"non numeric port":   {"PORT": "http"},
		"temperature range":  {"LLM_TEMPERATURE": "3.5"},
		"bad origin":         {"CORS_ALLOWED_ORIGINS": "not a url"},
		"unknown log level":  {"LOG_LEVEL": "trace"},
		"negative max token": {"LLM_MAX_OUTPUT_TOKENS": "-1"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
