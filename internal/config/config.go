// Package config loads the server configuration from the process environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ctchen222/travel-assistant/internal/validator"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the travel assistant server.
type Config struct {
	HTTPAddr string `validate:"required"`

	DatabaseDriver string `validate:"required,oneof=sqlite postgres"`
	DatabaseURL    string `validate:"required"`

	JWTSecret  string        `validate:"required"`
	TokenTTL   time.Duration `validate:"gt=0"`
	BcryptCost int           `validate:"min=4,max=31"`

	GeminiAPIKey string        `validate:"required"`
	GeminiModel  string        `validate:"required"`
	AskTimeout   time.Duration `validate:"gt=0"`

	CORSOrigins []string `validate:"min=1,dive,required"`

	LogLevel     string `validate:"oneof=debug info warn error"`
	OTLPEndpoint string
	ServiceName  string `validate:"required"`
}

// Defaults returns a Config populated with development defaults. Secrets are left empty.
func Defaults() *Config {
	return &Config{
		HTTPAddr:       ":8080",
		DatabaseDriver: "sqlite",
		DatabaseURL:    "./travel_assistant.db",
		TokenTTL:       60 * time.Minute,
		BcryptCost:     bcrypt.DefaultCost,
		GeminiModel:    "gemini-2.0-flash",
		AskTimeout:     30 * time.Second,
		CORSOrigins:    []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		LogLevel:       "info",
		ServiceName:    "travel-assistant",
	}
}

// Load reads .env (if present) and the environment on top of Defaults, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup as the variable source.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()
	env := envReader{lookup: lookup}

	env.str("HTTP_ADDR", &cfg.HTTPAddr)
	env.str("DATABASE_DRIVER", &cfg.DatabaseDriver)
	env.str("DATABASE_URL", &cfg.DatabaseURL)
	env.str("JWT_SECRET", &cfg.JWTSecret)
	env.duration("JWT_TTL", &cfg.TokenTTL)
	env.integer("BCRYPT_COST", &cfg.BcryptCost)
	env.str("GEMINI_API_KEY", &cfg.GeminiAPIKey)
	env.str("GEMINI_MODEL", &cfg.GeminiModel)
	env.duration("ASK_TIMEOUT", &cfg.AskTimeout)
	env.list("CORS_ORIGINS", &cfg.CORSOrigins)
	env.str("LOG_LEVEL", &cfg.LogLevel)
	env.str("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.OTLPEndpoint)
	env.str("OTEL_SERVICE_NAME", &cfg.ServiceName)

	if env.err != nil {
		return nil, env.err
	}

	cfg.DatabaseDriver = strings.ToLower(cfg.DatabaseDriver)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// envReader overlays set, non-empty variables onto config fields and keeps the first parse error.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) value(key string) (string, bool) {
	v, ok := e.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.value(key); ok {
		*dst = v
	}
}

func (e *envReader) integer(key string, dst *int) {
	v, ok := e.value(key)
	if !ok || e.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = n
}

// duration accepts Go duration strings ("90s", "1h") or a bare number of minutes.
func (e *envReader) duration(key string, dst *time.Duration) {
	v, ok := e.value(key)
	if !ok || e.err != nil {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Minute
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	*dst = d
}

func (e *envReader) list(key string, dst *[]string) {
	v, ok := e.value(key)
	if !ok {
		return
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}
