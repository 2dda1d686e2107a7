package llm

import (
	"sync"
	"time"

	"truthlens/internal/logging"
)

// Circuit breaker defaults.
const (
	defaultFailureThreshold = 3
	defaultRecoveryTimeout  = 60 * time.Second
)

// CircuitBreaker implements closed → open → half-open → closed. When
// open, calls fail immediately with ErrCircuitOpen so the caller can
// fall back to local-only scanning instead of waiting for the provider
// to time out.
type CircuitBreaker struct {
	failureThreshold int
	recoveryTimeout  time.Duration

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	state       string // "closed" | "open" | "half-open"
	now         func() time.Time
}

// NewCircuitBreaker returns a breaker with the default threshold (3
// consecutive failures) and recovery timeout (60s).
func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: defaultFailureThreshold,
		recoveryTimeout:  defaultRecoveryTimeout,
		state:            "closed",
		now:              time.Now,
	}
}

// State returns the current state, transitioning open → half-open once
// the recovery timeout has elapsed.
func (cb *CircuitBreaker) State() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == "open" && cb.now().Sub(cb.lastFailure) >= cb.recoveryTimeout {
		cb.state = "half-open"
	}
	return cb.state
}

// IsOpen reports whether calls should fast-fail.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == "open"
}

// RecordSuccess closes the circuit and resets the failure count.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures = 0
	cb.state = "closed"
}

// RecordFailure counts a consecutive failure, opening the circuit at the
// threshold.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures++
	cb.lastFailure = cb.now()
	if cb.failures >= cb.failureThreshold {
		cb.state = "open"
		logging.Get(logging.CategoryLLM).Warn(
			"circuit breaker OPEN after %d consecutive failures, local-only mode for %v",
			cb.failures, cb.recoveryTimeout)
	}
}
