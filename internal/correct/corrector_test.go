package correct

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truthlens/internal/core"
	"truthlens/internal/detect"
	"truthlens/internal/llm"
)

// clientFunc adapts a function to llm.Client.
type clientFunc func(ctx context.Context, prompt string, opts llm.Options) (string, error)

func (f clientFunc) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return f(ctx, prompt, opts)
}

const biasedText = "All experts agree that this policy is correct."

func biasedScan(score int, flags ...core.Flag) detect.Result {
	return detect.Result{
		Text:          biasedText,
		TruthScore:    score,
		BiasDetected:  true,
		BiasTypes:     []string{"CONSENSUS_AS_EVIDENCE"},
		KnowledgeType: "sense",
		PITTier:       "tier_1_ideological",
		Explanation:   "Consensus substitutes for evidence.",
		Flags:         flags,
	}
}

func correctionJSON(corrected string) string {
	return `{
		"corrected": ` + jsonString(corrected) + `,
		"changes_made": ["Removed the consensus appeal"],
		"bias_removed": ["CONSENSUS_AS_EVIDENCE"],
		"confidence": 0.9
	}`
}

func jsonString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func TestCorrect_NoBiasPassthrough(t *testing.T) {
	c := New(core.NewEngine(), nil)

	result := c.Correct(context.Background(), "Fine text.", detect.Result{BiasDetected: false}, "general")

	assert.Equal(t, "Fine text.", result.Corrected)
	assert.False(t, result.CorrectionTriggered)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "No bias detected - no correction needed.", result.Note)
	assert.Empty(t, result.DiffSpans)
}

func TestCorrect_BelowThresholdPassthrough(t *testing.T) {
	c := New(core.NewEngine(), nil)

	// Bias detected, but only a low-severity marker at a high score.
	scan := biasedScan(92, core.Flag{
		PatternID: "SK_STUDIES_SHOW", Category: "marker", Severity: core.SeverityLow,
	})
	result := c.Correct(context.Background(), biasedText, scan, "general")

	assert.False(t, result.CorrectionTriggered)
	assert.Equal(t, "Bias below correction threshold - no correction needed.", result.Note)
}

func TestShouldCorrect(t *testing.T) {
	structural := func(sev string) core.Flag {
		return core.Flag{PatternID: "X", Category: "structural", Severity: sev}
	}
	cases := []struct {
		name string
		scan detect.Result
		want bool
	}{
		{"low score alone", biasedScan(80), true},
		{"score just above gate", biasedScan(81), false},
		{"moderate structural at high score", biasedScan(95, structural(core.SeverityModerate)), true},
		{"low structural at high score", biasedScan(95, structural(core.SeverityLow)), false},
		{"marker only at high score", biasedScan(95, core.Flag{
			PatternID: "SK_X", Category: "marker", Severity: core.SeverityHigh}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldCorrect(tc.scan))
		})
	}
}

func TestCorrect_SinglePassConvergence(t *testing.T) {
	corrected := "The policy's supporters have not yet published supporting evidence."
	var prompts []string
	client := clientFunc(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
		prompts = append(prompts, prompt)
		assert.True(t, opts.JSONMode)
		return correctionJSON(corrected), nil
	})
	c := New(core.NewEngine(), client)

	scan := biasedScan(55, core.Flag{
		PatternID:   "CONSENSUS_AS_EVIDENCE",
		Category:    "structural",
		Severity:    core.SeverityHigh,
		MatchedText: "All experts agree",
	})
	result := c.Correct(context.Background(), biasedText, scan, "general")

	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "1. [CONSENSUS_AS_EVIDENCE] (severity: high)")
	assert.Contains(t, prompts[0], `Flagged text: "All experts agree"`)

	assert.True(t, result.CorrectionTriggered)
	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.IterationCount)
	assert.Equal(t, corrected, result.Corrected)
	assert.Equal(t, []string{"Removed the consensus appeal"}, result.ChangesMade)
	assert.Equal(t, []string{"CONSENSUS_AS_EVIDENCE"}, result.BiasRemoved)
	assert.Equal(t, 0.9, result.Confidence)

	require.NotNil(t, result.Verification)
	assert.Equal(t, 100, result.Verification.TruthScoreAfter)
	assert.True(t, result.Verification.Aligned)
	assert.Zero(t, result.Verification.FlagsRemaining)
	assert.NotNil(t, result.Verification.StructuralRemaining)

	require.Len(t, result.Iterations, 1)
	assert.True(t, result.Iterations[0].Passed)
	assert.NotEmpty(t, result.DiffSpans)
}

func TestCorrect_IteratesWhenRewriteStillFlags(t *testing.T) {
	// First rewrite still carries the consensus appeal; the second one is
	// clean. Each iteration feeds the previous rewrite back in.
	stillBiased := "Everyone knows the policy is correct."
	clean := "The policy has not been independently evaluated."
	var calls int
	client := clientFunc(func(_ context.Context, prompt string, _ llm.Options) (string, error) {
		calls++
		if calls == 1 {
			assert.Contains(t, prompt, "## Original Text")
			return correctionJSON(stillBiased), nil
		}
		// The retry is a refinement pass listing the flags that
		// survived the first rewrite's verification.
		assert.Contains(t, prompt, "## Text to Refine")
		assert.Contains(t, prompt, "## Remaining Flags")
		assert.Contains(t, prompt, "1. [CONSENSUS_AS_EVIDENCE] (severity: high)")
		assert.Contains(t, prompt, stillBiased)
		assert.NotContains(t, prompt, biasedText)
		return correctionJSON(clean), nil
	})
	c := New(core.NewEngine(), client)

	// The intermediate rewrite would verify at 70; a 75 baseline forces
	// another pass.
	scan := biasedScan(75, core.Flag{
		PatternID: "CONSENSUS_AS_EVIDENCE", Category: "structural", Severity: core.SeverityHigh,
	})
	result := c.Correct(context.Background(), biasedText, scan, "general")

	assert.Equal(t, 2, calls)
	assert.True(t, result.Converged)
	assert.Equal(t, 2, result.IterationCount)
	assert.Equal(t, clean, result.Corrected)

	require.Len(t, result.Iterations, 2)
	assert.False(t, result.Iterations[0].Passed)
	assert.True(t, result.Iterations[1].Passed)

	// Diff spans compare against the original, not the intermediate.
	var hasDelete bool
	for _, s := range result.DiffSpans {
		if s.Type == "delete" && strings.Contains(s.Text, "experts") {
			hasDelete = true
		}
	}
	assert.True(t, hasDelete)
}

func TestCorrect_GivesUpAfterMaxIterations(t *testing.T) {
	var calls int
	client := clientFunc(func(context.Context, string, llm.Options) (string, error) {
		calls++
		return correctionJSON("Everyone knows the policy is correct."), nil
	})
	c := New(core.NewEngine(), client)

	// Every rewrite verifies at 70, below the 75 baseline, so the loop
	// exhausts its budget.
	scan := biasedScan(75, core.Flag{
		PatternID: "CONSENSUS_AS_EVIDENCE", Category: "structural", Severity: core.SeverityHigh,
	})
	result := c.Correct(context.Background(), biasedText, scan, "general")

	assert.Equal(t, 3, calls)
	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.IterationCount)
	assert.Len(t, result.Iterations, 3)
}

func TestCorrect_LLMFailure(t *testing.T) {
	client := clientFunc(func(context.Context, string, llm.Options) (string, error) {
		return "", errors.New("provider down")
	})
	c := New(core.NewEngine(), client)

	result := c.Correct(context.Background(), biasedText, biasedScan(55), "general")

	assert.True(t, result.CorrectionTriggered)
	assert.Equal(t, biasedText, result.Corrected)
	assert.Equal(t, "provider down", result.Error)
	assert.Zero(t, result.Confidence)
	assert.Nil(t, result.Verification)
}

func TestCorrect_UnparseableResponse(t *testing.T) {
	c := New(core.NewEngine(), clientFunc(func(context.Context, string, llm.Options) (string, error) {
		return "not json", nil
	}))

	result := c.Correct(context.Background(), biasedText, biasedScan(55), "general")
	assert.Contains(t, result.Error, "unparseable correction")
	assert.Equal(t, biasedText, result.Corrected)
}

func TestCorrect_EmptyCorrectedText(t *testing.T) {
	c := New(core.NewEngine(), clientFunc(func(context.Context, string, llm.Options) (string, error) {
		return `{"corrected": "", "confidence": 0.5}`, nil
	}))

	result := c.Correct(context.Background(), biasedText, biasedScan(55), "general")
	assert.Equal(t, "correction returned empty text", result.Error)
}

func TestFlagInstructions(t *testing.T) {
	engine := core.NewEngine()

	t.Run("core flag pulls pattern description", func(t *testing.T) {
		out := flagInstructions(engine, []core.Flag{{
			PatternID:   "CONSENSUS_AS_EVIDENCE",
			Category:    "structural",
			Severity:    core.SeverityHigh,
			MatchedText: "all experts agree",
			Source:      "core",
		}})
		assert.Contains(t, out, "1. [CONSENSUS_AS_EVIDENCE] (severity: high)")
		assert.Contains(t, out, `Flagged text: "all experts agree"`)
		assert.Contains(t, out, "Pattern: ")
		assert.NotContains(t, out, "(source: AI)")
	})

	t.Run("ai flag is marked", func(t *testing.T) {
		out := flagInstructions(engine, []core.Flag{{
			PatternID:   "AI_FRAMING",
			Category:    "structural",
			Severity:    core.SeverityModerate,
			Description: "Framing detected by deep analysis",
			Source:      "ai",
		}})
		assert.Contains(t, out, "(source: AI)")
		assert.Contains(t, out, "Pattern: Framing detected by deep analysis")
	})

	t.Run("markers are skipped", func(t *testing.T) {
		out := flagInstructions(engine, []core.Flag{{
			PatternID: "SK_STUDIES_SHOW", Category: "marker", Severity: core.SeverityLow,
		}})
		assert.Equal(t,
			"No specific structural patterns flagged; address the overall bias described above.",
			out)
	})
}

func TestComputeDiffSpans(t *testing.T) {
	t.Run("identical text is one equal span", func(t *testing.T) {
		spans := ComputeDiffSpans("same text", "same text")
		require.Len(t, spans, 1)
		assert.Equal(t, "equal", spans[0].Type)
		assert.Equal(t, 0, *spans[0].OrigStart)
		assert.Equal(t, 9, *spans[0].OrigEnd)
		assert.Equal(t, 0, *spans[0].CorrStart)
	})

	t.Run("empty inputs", func(t *testing.T) {
		spans := ComputeDiffSpans("", "")
		assert.NotNil(t, spans)
		assert.Empty(t, spans)
	})

	t.Run("delete and insert carry one-sided positions", func(t *testing.T) {
		spans := ComputeDiffSpans("experts agree this works", "evidence suggests this works")

		var sawDelete, sawInsert bool
		for _, s := range spans {
			switch s.Type {
			case "delete":
				sawDelete = true
				assert.NotNil(t, s.OrigStart)
				assert.NotNil(t, s.OrigEnd)
				assert.Nil(t, s.CorrStart)
				assert.Nil(t, s.CorrEnd)
			case "insert":
				sawInsert = true
				assert.Nil(t, s.OrigStart)
				assert.Nil(t, s.OrigEnd)
				assert.NotNil(t, s.CorrStart)
				assert.NotNil(t, s.CorrEnd)
			}
		}
		assert.True(t, sawDelete)
		assert.True(t, sawInsert)
	})

	t.Run("positions are consistent", func(t *testing.T) {
		original := "the quick brown fox"
		corrected := "the slow brown fox"
		spans := ComputeDiffSpans(original, corrected)

		origPos, corrPos := 0, 0
		for _, s := range spans {
			switch s.Type {
			case "equal":
				assert.Equal(t, origPos, *s.OrigStart)
				assert.Equal(t, corrPos, *s.CorrStart)
				origPos = *s.OrigEnd
				corrPos = *s.CorrEnd
			case "delete":
				assert.Equal(t, origPos, *s.OrigStart)
				origPos = *s.OrigEnd
			case "insert":
				assert.Equal(t, corrPos, *s.CorrStart)
				corrPos = *s.CorrEnd
			}
		}
		assert.Equal(t, len(original), origPos)
		assert.Equal(t, len(corrected), corrPos)
	})
}
