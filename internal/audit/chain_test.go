package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChain(t *testing.T) *Chain {
	t.Helper()
	c, err := NewChain(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLog_ChainsFromGenesis(t *testing.T) {
	c := newTestChain(t)

	first, err := c.Log(EventScanLocal, map[string]any{"truth_score": 100}, "1.0.0")
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := c.Log(EventScanFull, map[string]any{"truth_score": 62}, "1.0.0")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	entries, err := c.Recent(10, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, second, entries[0].Hash)
	assert.Equal(t, first, entries[0].PrevHash)
	assert.Equal(t, GenesisHash, entries[1].PrevHash)
	assert.Equal(t, float64(62), entries[0].Data["truth_score"])
}

func TestLog_NilData(t *testing.T) {
	c := newTestChain(t)

	hash, err := c.Log(EventChainVerified, nil, "1.0.0")
	require.NoError(t, err)
	assert.Len(t, hash, 64)

	entries, err := c.Recent(1, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Data)
}

func TestRecent_EventTypeFilter(t *testing.T) {
	c := newTestChain(t)

	_, err := c.Log(EventScanLocal, map[string]any{}, "1.0.0")
	require.NoError(t, err)
	_, err = c.Log(EventCorrection, map[string]any{}, "1.0.0")
	require.NoError(t, err)
	_, err = c.Log(EventScanLocal, map[string]any{}, "1.0.0")
	require.NoError(t, err)

	scans, err := c.Recent(10, EventScanLocal)
	require.NoError(t, err)
	assert.Len(t, scans, 2)
	for _, e := range scans {
		assert.Equal(t, EventScanLocal, e.EventType)
	}

	corrections, err := c.Recent(10, EventCorrection)
	require.NoError(t, err)
	assert.Len(t, corrections, 1)
}

func TestVerify_IntactChain(t *testing.T) {
	c := newTestChain(t)

	for i := 0; i < 5; i++ {
		_, err := c.Log(EventScanLocal, map[string]any{"i": i}, "1.0.0")
		require.NoError(t, err)
	}

	result, err := c.Verify(100)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, 5, result.EntriesChecked)
	assert.Empty(t, result.BrokenLinks)
}

func TestVerify_EmptyChain(t *testing.T) {
	c := newTestChain(t)

	result, err := c.Verify(100)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Zero(t, result.EntriesChecked)
}

func TestVerify_DetectsTamperedData(t *testing.T) {
	c := newTestChain(t)

	_, err := c.Log(EventScanLocal, map[string]any{"truth_score": 40}, "1.0.0")
	require.NoError(t, err)
	_, err = c.Log(EventScanLocal, map[string]any{"truth_score": 55}, "1.0.0")
	require.NoError(t, err)

	// Rewrite history: bump the first entry's score without recomputing
	// its hash.
	_, err = c.db.Exec(`UPDATE audit_chain SET data = '{"truth_score":95}' WHERE id = 1`)
	require.NoError(t, err)

	result, err := c.Verify(100)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	require.NotEmpty(t, result.BrokenLinks)
	assert.Equal(t, "hash_mismatch", result.BrokenLinks[0].Issue)
	assert.Equal(t, int64(1), result.BrokenLinks[0].ID)
}

func TestVerify_DetectsBrokenLink(t *testing.T) {
	c := newTestChain(t)

	_, err := c.Log(EventScanLocal, map[string]any{}, "1.0.0")
	require.NoError(t, err)
	_, err = c.Log(EventScanLocal, map[string]any{}, "1.0.0")
	require.NoError(t, err)

	_, err = c.db.Exec(`UPDATE audit_chain SET prev_hash = ? WHERE id = 2`, GenesisHash)
	require.NoError(t, err)

	result, err := c.Verify(100)
	require.NoError(t, err)
	assert.False(t, result.Verified)

	var issues []string
	for _, bl := range result.BrokenLinks {
		issues = append(issues, bl.Issue)
	}
	// The rewritten prev_hash breaks both the entry's own hash and the
	// link to its predecessor.
	assert.Contains(t, issues, "hash_mismatch")
	assert.Contains(t, issues, "chain_break")
}

func TestCount(t *testing.T) {
	c := newTestChain(t)

	n, err := c.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = c.Log(EventScanLocal, map[string]any{}, "1.0.0")
	require.NoError(t, err)

	n, err = c.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCanonicalJSON_SortsKeys(t *testing.T) {
	a, err := canonicalJSON(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, a)

	b, err := canonicalJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, `{}`, b)
}

func TestNewChain_RequiresPath(t *testing.T) {
	_, err := NewChain("")
	assert.Error(t, err)
}
