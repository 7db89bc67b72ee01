package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 42},
		{"valid", "100", 100},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"invalid", "not-a-number", 42},
		{"float", "42.5", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", time.Minute},
		{"minutes", "10m", 10 * time.Minute},
		{"compound", "1h30m", 90 * time.Minute},
		{"unitless", "30", time.Minute},
		{"invalid", "soon", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "1")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "FALSE")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_BOOL_VAR", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true), "falls back on garbage")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING_VAR", "")
	assert.Equal(t, "", getEnv("TEST_STRING_VAR", "fallback"), "set but empty is still set")
	assert.Equal(t, "fallback", getEnv("TEST_STRING_VAR_UNSET_"+t.Name(), "fallback"))
}
