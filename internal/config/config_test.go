package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiBaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.RedisURL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ALLOWED_ORIGINS", "https://granger.fit, https://admin.granger.fit")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"https://granger.fit", "https://admin.granger.fit"}, cfg.AllowedOrigins)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{name: "single", origins: "http://localhost:5173", want: []string{"http://localhost:5173"}},
		{name: "multiple with spaces", origins: "a, b ,c", want: []string{"a", "b", "c"}},
		{name: "empty entries dropped", origins: "a,,b,", want: []string{"a", "b"}},
		{name: "empty string", origins: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.origins))
		})
	}
}
