package learning

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truthlens/internal/core"
	"truthlens/internal/llm"
)

// clientFunc adapts a function to llm.Client.
type clientFunc func(ctx context.Context, prompt string, opts llm.Options) (string, error)

func (f clientFunc) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return f(ctx, prompt, opts)
}

func staticClient(response string) llm.Client {
	return clientFunc(func(context.Context, string, llm.Options) (string, error) {
		return response, nil
	})
}

func failingClient(t *testing.T) llm.Client {
	return clientFunc(func(context.Context, string, llm.Options) (string, error) {
		t.Fatal("llm should not be called")
		return "", nil
	})
}

const validSpecJSON = `{
	"pattern_id": "HEDGED_AUTHORITY_CLAIM",
	"name": "Hedged Authority Claim",
	"description": "Attributes a claim to unnamed sources with hedging language.",
	"pit_tier": 2,
	"severity": "moderate",
	"principle": "Truth",
	"regex": "\\bsources\\s+suggest\\b"
}`

func deepFindings() DeepFindings {
	return DeepFindings{
		BiasDetected: true,
		BiasTypes:    []string{"appeal_to_authority"},
		Severity:     core.SeverityHigh,
		PITTier:      "tier_2_psychological",
		Explanation:  "Claims rest on unnamed sources.",
	}
}

func newTestProposer(t *testing.T) *Proposer {
	t.Helper()
	ring, err := NewRing(filepath.Join(t.TempDir(), "learned.db"), 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { ring.Close() })
	return NewProposer(ring)
}

func TestExtractAndPropose_StagesPattern(t *testing.T) {
	p := newTestProposer(t)

	results := p.ExtractAndPropose(context.Background(),
		"Sources suggest the policy will fail.", nil, deepFindings(),
		staticClient(validSpecJSON), "scanhash")

	require.Len(t, results, 1)
	assert.True(t, results[0].Accepted)
	assert.Equal(t, "proposed", results[0].Action)

	patterns, err := p.ring.AllPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "scanhash", patterns[0].SourceScanHash)
	assert.Regexp(t, `^L_HEDGED_AUTHORITY_CLAIM_[0-9a-f]{6}$`, patterns[0].ID)
}

func TestExtractAndPropose_ShortCircuits(t *testing.T) {
	p := newTestProposer(t)
	ctx := context.Background()

	t.Run("no bias detected", func(t *testing.T) {
		d := deepFindings()
		d.BiasDetected = false
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, failingClient(t), "h"))
	})

	t.Run("low severity", func(t *testing.T) {
		d := deepFindings()
		d.Severity = core.SeverityLow
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, failingClient(t), "h"))
	})

	t.Run("local already caught it", func(t *testing.T) {
		flags := []core.Flag{{PatternID: "A"}, {PatternID: "B"}, {PatternID: "C"}}
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", flags, deepFindings(), failingClient(t), "h"))
	})

	t.Run("no novel bias types", func(t *testing.T) {
		d := deepFindings()
		d.BiasTypes = []string{"none"}
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, failingClient(t), "h"))
	})

	t.Run("unparseable tier", func(t *testing.T) {
		d := deepFindings()
		d.PITTier = "none"
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, failingClient(t), "h"))
	})
}

func TestExtractAndPropose_BadLLMOutput(t *testing.T) {
	p := newTestProposer(t)
	ctx := context.Background()
	d := deepFindings()

	t.Run("llm error is swallowed", func(t *testing.T) {
		client := clientFunc(func(context.Context, string, llm.Options) (string, error) {
			return "", errors.New("boom")
		})
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, client, "h"))
	})

	t.Run("invalid json", func(t *testing.T) {
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d, staticClient("not json"), "h"))
	})

	t.Run("null pattern id", func(t *testing.T) {
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d,
			staticClient(`{"pattern_id": null, "reason": "too vague"}`), "h"))
	})

	t.Run("degenerate regex", func(t *testing.T) {
		assert.Nil(t, p.ExtractAndPropose(ctx, "t", nil, d,
			staticClient(`{"pattern_id": "X", "pit_tier": 2, "regex": ".*"}`), "h"))
	})

	t.Run("fenced json is accepted", func(t *testing.T) {
		results := p.ExtractAndPropose(ctx, "t", nil, d,
			staticClient("```json\n"+validSpecJSON+"\n```"), "h")
		require.Len(t, results, 1)
		assert.True(t, results[0].Accepted)
	})
}

func TestExtractAndPropose_NormalizesSpecFields(t *testing.T) {
	p := newTestProposer(t)

	spec := `{
		"pattern_id": "odd chars!!",
		"pit_tier": 3,
		"severity": "extreme",
		"principle": "Winning",
		"regex": "\\bper\\s+unnamed\\s+officials\\b"
	}`
	results := p.ExtractAndPropose(context.Background(), "t", nil, deepFindings(),
		staticClient(spec), "h")
	require.Len(t, results, 1)

	patterns, err := p.ring.AllPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "moderate", patterns[0].Severity)
	assert.Equal(t, "Truth", patterns[0].Principle)
	assert.Equal(t, "Unnamed Pattern", patterns[0].Name)
	assert.Regexp(t, `^L_ODDCHARS_[0-9a-f]{6}$`, patterns[0].ID)
}

func TestValidRegex(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"good structural pattern", `\bsources\s+suggest\b`, true},
		{"too short", `\bis`, false},
		{"does not compile", `(?P<bad`, false},
		{"matches empty string", `(?:abc)?`, false},
		{"matches common stopwords", `\b(?:the|is|a|x)\b`, false},
		{"two stopword matches tolerated", `\b(?:the|is|zzz)\b`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validRegex(tc.pattern))
		})
	}
}

func TestGeneratePatternID(t *testing.T) {
	id := generatePatternID("Hedged Authority!", `\bfoo\b`)
	assert.Regexp(t, `^L_HEDGEDAUTHORITY_[0-9a-f]{6}$`, id)

	// Same regex converges on the same ID regardless of base casing.
	assert.Equal(t,
		generatePatternID("ABC", `\bfoo\b`),
		generatePatternID("abc", `\bfoo\b`))

	assert.Regexp(t, `^L_LEARNED_[0-9a-f]{6}$`, generatePatternID("!!!", `\bfoo\b`))
}

func TestParseTier(t *testing.T) {
	n, ok := parseTier("tier_1_ideological")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = parseTier("none")
	assert.False(t, ok)
	_, ok = parseTier("tier_9_unknown")
	assert.False(t, ok)
	_, ok = parseTier("garbage")
	assert.False(t, ok)
}
