package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"JWT_SECRET":     "secret",
		"GEMINI_API_KEY": "api-key",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(requiredEnv()))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "./travel_assistant.db", cfg.DatabaseURL)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.AskTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestFromEnv_Overrides(t *testing.T) {
	env := requiredEnv()
	env["HTTP_ADDR"] = ":9090"
	env["DATABASE_DRIVER"] = "Postgres"
	env["DATABASE_URL"] = "postgres://u:p@localhost:5432/travel"
	env["JWT_TTL"] = "15"
	env["ASK_TIMEOUT"] = "5s"
	env["BCRYPT_COST"] = "12"
	env["CORS_ORIGINS"] = " https://a.example , ,https://b.example"
	env["LOG_LEVEL"] = "DEBUG"
	env["OTEL_EXPORTER_OTLP_ENDPOINT"] = "otel-collector:4317"

	cfg, err := FromEnv(lookupFrom(env))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://u:p@localhost:5432/travel", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.AskTimeout)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "otel-collector:4317", cfg.OTLPEndpoint)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secrets", env: map[string]string{}},
		{name: "missing api key", env: map[string]string{"JWT_SECRET": "s"}},
		{name: "unknown driver", env: merge(requiredEnv(), map[string]string{"DATABASE_DRIVER": "oracle"})},
		{name: "bad duration", env: merge(requiredEnv(), map[string]string{"ASK_TIMEOUT": "soon"})},
		{name: "negative ttl", env: merge(requiredEnv(), map[string]string{"JWT_TTL": "-5"})},
		{name: "bad cost", env: merge(requiredEnv(), map[string]string{"BCRYPT_COST": "abc"})},
		{name: "cost out of range", env: merge(requiredEnv(), map[string]string{"BCRYPT_COST": "2"})},
		{name: "no origins", env: merge(requiredEnv(), map[string]string{"CORS_ORIGINS": " , "})},
		{name: "bad log level", env: merge(requiredEnv(), map[string]string{"LOG_LEVEL": "verbose"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func merge(base, extra map[string]string) map[string]string {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
