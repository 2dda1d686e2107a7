// Package config loads immutable settings from environment variables.
package config

import (
	"os"
	"strconv"
)

// Settings holds all runtime configuration. Construct via Load; do not
// mutate after construction.
type Settings struct {
	// LLM provider
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string

	// Stores
	AuditDBPath   string
	LearnedDBPath string

	// Learning ring governance
	PatternActivationThreshold int
	PatternFalsePositiveLimit  float64

	// Scan cache
	CacheTTLSeconds int
	CacheMaxEntries int
}

// Load reads settings from the environment, applying defaults.
func Load() Settings {
	return Settings{
		LLMProvider:  envStr("TRUTHLENS_LLM_PROVIDER", "gemini"),
		GeminiAPIKey: envStr("GEMINI_API_KEY", ""),
		GeminiModel:  envStr("GEMINI_MODEL", "gemini-2.5-flash"),

		AuditDBPath:   envStr("TRUTHLENS_AUDIT_DB", "truthlens_audit.db"),
		LearnedDBPath: envStr("TRUTHLENS_LEARNED_DB", "truthlens_learned.db"),

		PatternActivationThreshold: envInt("TRUTHLENS_PATTERN_THRESHOLD", 5),
		PatternFalsePositiveLimit:  envFloat("TRUTHLENS_FP_LIMIT", 0.15),

		CacheTTLSeconds: envInt("TRUTHLENS_CACHE_TTL", 3600),
		CacheMaxEntries: envInt("TRUTHLENS_CACHE_MAX", 500),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
