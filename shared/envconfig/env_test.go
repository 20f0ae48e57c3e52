package envconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFallsBackOnEmpty(t *testing.T) {
	t.Setenv("ENVCONFIG_TEST_VALUE", "")
	assert.Equal(t, "fallback", Get("ENVCONFIG_TEST_VALUE", "fallback"))

	t.Setenv("ENVCONFIG_TEST_VALUE", "set")
	assert.Equal(t, "set", Get("ENVCONFIG_TEST_VALUE", "fallback"))
}

func TestFirstOf(t *testing.T) {
	t.Setenv("ENVCONFIG_A", "  ")
	t.Setenv("ENVCONFIG_B", "second")
	assert.Equal(t, "second", FirstOf("", "ENVCONFIG_A", "ENVCONFIG_B"))
	assert.Equal(t, "none", FirstOf("none", "ENVCONFIG_MISSING"))
}

func TestTypedParsers(t *testing.T) {
	t.Setenv("ENVCONFIG_FLOAT", "0.25")
	t.Setenv("ENVCONFIG_INT", "nope")
	t.Setenv("ENVCONFIG_DURATION", "15s")
	t.Setenv("ENVCONFIG_LIST", " a, ,b ")

	assert.Equal(t, 0.25, Float("ENVCONFIG_FLOAT", 1))
	assert.Equal(t, 7, Int("ENVCONFIG_INT", 7))
	assert.Equal(t, 15*time.Second, Duration("ENVCONFIG_DURATION", time.Second))
	assert.Equal(t, []string{"a", "b"}, List("ENVCONFIG_LIST", nil))
	assert.Equal(t, []string{"x"}, List("ENVCONFIG_LIST_MISSING", []string{"x"}))
}

func TestValidate(t *testing.T) {
	type sample struct {
		Name string `validate:"required"`
	}
	assert.Error(t, Validate(sample{}))
	assert.NoError(t, Validate(sample{Name: "ok"}))
}
