package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	s := Load()

	assert.Equal(t, "gemini", s.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", s.GeminiModel)
	assert.Equal(t, "truthlens_audit.db", s.AuditDBPath)
	assert.Equal(t, "truthlens_learned.db", s.LearnedDBPath)
	assert.Equal(t, 5, s.PatternActivationThreshold)
	assert.Equal(t, 0.15, s.PatternFalsePositiveLimit)
	assert.Equal(t, 3600, s.CacheTTLSeconds)
	assert.Equal(t, 500, s.CacheMaxEntries)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRUTHLENS_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("TRUTHLENS_AUDIT_DB", "/tmp/audit.db")
	t.Setenv("TRUTHLENS_PATTERN_THRESHOLD", "3")
	t.Setenv("TRUTHLENS_FP_LIMIT", "0.25")
	t.Setenv("TRUTHLENS_CACHE_TTL", "60")

	s := Load()

	assert.Equal(t, "gemini-2.5-pro", s.GeminiModel)
	assert.Equal(t, "/tmp/audit.db", s.AuditDBPath)
	assert.Equal(t, 3, s.PatternActivationThreshold)
	assert.Equal(t, 0.25, s.PatternFalsePositiveLimit)
	assert.Equal(t, 60, s.CacheTTLSeconds)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("TRUTHLENS_PATTERN_THRESHOLD", "five")
	t.Setenv("TRUTHLENS_FP_LIMIT", "lots")

	s := Load()

	assert.Equal(t, 5, s.PatternActivationThreshold)
	assert.Equal(t, 0.15, s.PatternFalsePositiveLimit)
}
