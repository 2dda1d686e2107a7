// Package llm provides the narrow LLM surface the detector, corrector and
// proposer depend on: a Client interface, a raw net/http Gemini
// implementation with retry and model fallback, and a circuit breaker
// that turns repeated provider failures into fast local-only fallback.
package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrCircuitOpen is returned without calling the provider when the
// circuit breaker is open. Callers fall back to local-only scanning.
var ErrCircuitOpen = errors.New("llm circuit breaker is open")

// ErrNoAPIKey is returned when a call is attempted without credentials.
// Clients construct lazily so the tool loads without a key and only
// fails on an actual LLM call.
var ErrNoAPIKey = errors.New("llm api key not set")

// Options controls a single completion request.
type Options struct {
	SystemInstruction string
	Temperature       float64
	JSONMode          bool
}

// Client is the minimal completion interface.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// transientMarkers identify provider errors worth retrying.
var transientMarkers = []string{
	"429", "503", "500", "rate", "quota", "timeout",
	"connection", "unavailable", "overloaded",
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// StripCodeFences removes a leading/trailing markdown code fence from a
// model response. Models often wrap JSON in ```json fences even when
// asked for raw output.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
