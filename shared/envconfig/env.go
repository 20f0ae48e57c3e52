package envconfig

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Get returns the value of the requested environment variable or the supplied fallback when empty.
func Get(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

// FirstOf returns the first non-blank variable among names, or fallback.
func FirstOf(fallback string, names ...string) string {
	for _, name := range names {
		if value := strings.TrimSpace(Get(name, "")); value != "" {
			return value
		}
	}
	return fallback
}

// Float parses a float variable, returning fallback when unset or malformed.
func Float(name string, fallback float64) float64 {
	raw := strings.TrimSpace(Get(name, ""))
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return val
}

// Int parses an integer variable, returning fallback when unset or malformed.
func Int(name string, fallback int) int {
	raw := strings.TrimSpace(Get(name, ""))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

// Duration parses a Go duration string, returning fallback when unset or malformed.
func Duration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(Get(name, ""))
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return val
}

// List splits a comma separated variable, dropping blank entries.
func List(name string, fallback []string) []string {
	raw := strings.TrimSpace(Get(name, ""))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Validate validates a struct using validator tags.
func Validate(v any) error {
	return validate.Struct(v)
}
