package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker()

	assert.Equal(t, "closed", cb.State())
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, "closed", cb.State())

	cb.RecordFailure()
	assert.Equal(t, "open", cb.State())
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_SuccessResetsCount(t *testing.T) {
	cb := NewCircuitBreaker()

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()

	// Never three in a row, so still closed.
	assert.Equal(t, "closed", cb.State())
}

func TestCircuitBreaker_HalfOpenAfterRecovery(t *testing.T) {
	now := time.Now()
	cb := NewCircuitBreaker()
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(59 * time.Second)
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Second)
	assert.Equal(t, "half-open", cb.State())
	assert.False(t, cb.IsOpen())

	cb.RecordSuccess()
	assert.Equal(t, "closed", cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Now()
	cb := NewCircuitBreaker()
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordFailure()
	now = now.Add(61 * time.Second)
	assert.Equal(t, "half-open", cb.State())

	cb.RecordFailure()
	assert.Equal(t, "open", cb.State())
}
