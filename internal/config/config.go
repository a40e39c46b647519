// Package config handles application configuration via environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configurable values for the storefront service.
type Config struct {
	Env  string
	Port int

	// Mail delivery.
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string
	AdminEmail     string

	// Supabase PostgREST backend. An empty URL puts the catalog into
	// fallback-only mode and disables the web-gen project store.
	SupabaseURL        string
	SupabaseServiceKey string

	CORSAllowedOrigins []string
	RateLimitRPS       int
	RateLimitBurst     int
}

// Load reads environment variables and populates a Config struct. Values that
// fail to parse fall back to their defaults rather than aborting startup.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnvInt("PORT", 8080),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@ventarosales.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "VentaroAI"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "chris.t@ventarosales.com"),
		SupabaseURL:        strings.TrimSuffix(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:       getEnvInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
