package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_CleanText(t *testing.T) {
	engine := NewEngine()

	eval := engine.Evaluate(
		"The committee reviewed the minutes and scheduled the next meeting for March.",
		"general", nil)

	assert.Empty(t, eval.Flags)
	assert.True(t, eval.Aligned)
	assert.Equal(t, "neutral", eval.KnowledgeType)
	assert.Equal(t, "Truth", eval.PrimaryPrinciple)
	assert.Empty(t, eval.PITTierActive)
	assert.Equal(t, "No distortion patterns detected. Text appears neutral.", eval.Summary)
	assert.Equal(t, Version, eval.CoreVersion)
}

func TestEvaluate_ConfidenceWithoutFlags(t *testing.T) {
	engine := NewEngine()

	t.Run("short text is less certain", func(t *testing.T) {
		eval := engine.Evaluate("A short note.", "general", nil)
		assert.Equal(t, 0.6, eval.Confidence)
	})

	t.Run("long text is more certain", func(t *testing.T) {
		long := strings.Repeat("The quarterly report lists revenue by region. ", 5)
		eval := engine.Evaluate(long, "general", nil)
		assert.Equal(t, 0.9, eval.Confidence)
	})
}

func TestEvaluate_ConsensusAsEvidence(t *testing.T) {
	engine := NewEngine()

	eval := engine.Evaluate("All experts agree that this policy is correct.", "general", nil)

	ids := flagIDs(eval.Flags)
	assert.Contains(t, ids, "CONSENSUS_AS_EVIDENCE")
	assert.Contains(t, ids, "CLAIM_WITHOUT_CITATION")
	assert.Equal(t, "sense", eval.KnowledgeType)
	assert.False(t, eval.Aligned)
	assert.Equal(t, "tier_1_ideological", eval.PITTierActive)
}

func TestEvaluate_ConsensusExclusion(t *testing.T) {
	engine := NewEngine()

	// "consensus forecast" is a statistical term, not an appeal to
	// agreement.
	eval := engine.Evaluate("The consensus forecast for Q3 is 2% growth.", "general", nil)

	assert.NotContains(t, flagIDs(eval.Flags), "CONSENSUS_AS_EVIDENCE")
}

func TestEvaluate_CitationSuppression(t *testing.T) {
	engine := NewEngine()

	t.Run("cited claim is suppressed", func(t *testing.T) {
		eval := engine.Evaluate(
			"Studies show (Smith et al., 2024) that exercise improves mood.",
			"general", nil)
		assert.Empty(t, eval.Flags)
		assert.Equal(t, "neutral", eval.KnowledgeType)
	})

	t.Run("uncited claim flags", func(t *testing.T) {
		eval := engine.Evaluate(
			"Studies show that exercise improves mood.",
			"general", nil)

		require.Len(t, eval.Flags, 2)
		assert.Contains(t, flagIDs(eval.Flags), "CLAIM_WITHOUT_CITATION")

		var marker *Flag
		for i := range eval.Flags {
			if eval.Flags[i].Category == "marker" {
				marker = &eval.Flags[i]
			}
		}
		require.NotNil(t, marker)
		assert.Equal(t, "SK_STUDIES_SHOW", marker.PatternID)
		assert.Equal(t, SeverityLow, marker.Severity)
		assert.Equal(t, 1, marker.PITTier)
		assert.Equal(t, "Sense Knowledge marker detected: 'studies show'", marker.Description)

		// One structural + one marker is mixed, still aligned.
		assert.Equal(t, "mixed", eval.KnowledgeType)
		assert.True(t, eval.Aligned)
	})
}

func TestEvaluate_LegalDomain(t *testing.T) {
	engine := NewEngine()
	text := "Plaintiff's argument is plainly meritless, and the law is well-settled on this point."

	t.Run("legal patterns fire in legal domain", func(t *testing.T) {
		eval := engine.Evaluate(text, "legal", nil)
		ids := flagIDs(eval.Flags)
		assert.Contains(t, ids, "LEGAL_MERIT_DISMISSAL")
		assert.Contains(t, ids, "LEGAL_SETTLED_DISMISSAL")
		assert.Equal(t, "sense", eval.KnowledgeType)
		assert.Equal(t, "Justice", eval.PrimaryPrinciple)
	})

	t.Run("legal patterns dormant in general domain", func(t *testing.T) {
		eval := engine.Evaluate(text, "general", nil)
		ids := flagIDs(eval.Flags)
		assert.NotContains(t, ids, "LEGAL_MERIT_DISMISSAL")
		assert.NotContains(t, ids, "LEGAL_SETTLED_DISMISSAL")
	})
}

func TestEvaluate_MultiTierTieBreaksLow(t *testing.T) {
	engine := NewEngine()

	// Tier 1 (consensus) and tier 2 (fear urgency) structural flags tie
	// on weight; the tie breaks to the lowest tier.
	eval := engine.Evaluate(
		"Everyone knows we must act now before it's too late.", "general", nil)

	ids := flagIDs(eval.Flags)
	assert.Contains(t, ids, "CONSENSUS_AS_EVIDENCE")
	assert.Contains(t, ids, "FEAR_URGENCY")
	assert.Equal(t, "tier_1_ideological", eval.PITTierActive)
	assert.Contains(t, eval.Summary, "Ideological (The Source Code)")
}

func TestEvaluate_BuriedQualifier(t *testing.T) {
	engine := NewEngine()
	qualifier := "However, officials later said there is no evidence linking the suspect."
	prefix := strings.Repeat("The report described the incident at the facility in detail. ", 4)
	require.GreaterOrEqual(t, len(prefix), 200)

	t.Run("qualifier after 200 chars flags", func(t *testing.T) {
		eval := engine.Evaluate(prefix+qualifier, "media", nil)

		var flag *Flag
		for i := range eval.Flags {
			if eval.Flags[i].PatternID == "MEDIA_BURIED_QUALIFIER" {
				flag = &eval.Flags[i]
			}
		}
		require.NotNil(t, flag)
		// The capture group reports the qualifier itself, not the
		// 200-char run-up.
		assert.Contains(t, flag.MatchedText, "no evidence")
		assert.NotContains(t, flag.MatchedText, "described the incident")
	})

	t.Run("qualifier near the top does not flag", func(t *testing.T) {
		eval := engine.Evaluate(qualifier, "media", nil)
		assert.NotContains(t, flagIDs(eval.Flags), "MEDIA_BURIED_QUALIFIER")
	})
}

func TestEvaluate_ExternalPatterns(t *testing.T) {
	engine := NewEngine()

	t.Run("learned pattern extends detection", func(t *testing.T) {
		learned := &StructuralPattern{
			ID:         "L_HEDGED_AUTHORITY_abc123",
			Name:       "Hedged Authority",
			PITTier:    2,
			Severity:   SeverityModerate,
			Principle:  "Truth",
			Indicators: []string{`\bsome\s+would\s+argue\b`},
			MinMatches: 1,
		}
		eval := engine.Evaluate("Some would argue the plan is flawed.", "general",
			[]*StructuralPattern{learned})
		assert.Contains(t, flagIDs(eval.Flags), "L_HEDGED_AUTHORITY_abc123")
	})

	t.Run("invalid regex is skipped, not fatal", func(t *testing.T) {
		broken := &StructuralPattern{
			ID:         "L_BROKEN_ffffff",
			Indicators: []string{`(?P<bad`},
			MinMatches: 1,
		}
		eval := engine.Evaluate("Any text at all.", "general",
			[]*StructuralPattern{broken})
		assert.NotContains(t, flagIDs(eval.Flags), "L_BROKEN_ffffff")
	})
}

func TestEvaluate_MinMatches(t *testing.T) {
	engine := NewEngine()

	t.Run("single weasel quantifier stays quiet", func(t *testing.T) {
		eval := engine.Evaluate(
			"Many experts reviewed the filing before submission.", "media", nil)
		assert.NotContains(t, flagIDs(eval.Flags), "MEDIA_WEASEL_QUANTIFIERS")
	})

	t.Run("repeated weasel quantifiers flag", func(t *testing.T) {
		eval := engine.Evaluate(
			"Many experts doubt the plan, and it is widely believed the numbers were inflated.",
			"media", nil)
		assert.Contains(t, flagIDs(eval.Flags), "MEDIA_WEASEL_QUANTIFIERS")
	})
}

func TestPatterns_Listing(t *testing.T) {
	engine := NewEngine()

	general := engine.Patterns("general")
	legal := engine.Patterns("legal")
	all := engine.Patterns("auto")

	assert.Len(t, general, 19)
	assert.Len(t, legal, 19+6)
	assert.Len(t, all, 19+6+9+5)

	for _, p := range legal {
		if strings.HasPrefix(p.ID, "LEGAL_") {
			assert.Equal(t, "legal", p.Domain)
		}
	}
}

func TestAllPatternsCompile(t *testing.T) {
	engine := NewEngine()
	for _, p := range engine.activePatterns("auto") {
		_, _, err := p.regexps()
		assert.NoError(t, err, "pattern %s", p.ID)
	}
}

func TestCitationRegexp(t *testing.T) {
	cited := []string{
		"as shown previously (Smith et al., 2024) in the trial",
		"the results [12] were replicated",
		"See Smith v. Jones for the controlling rule",
		"Id. at 44",
		"summarized in Table 3 below",
		"discussed at pp. 34-56 of the record",
		"per Report No. 2023-47 issued in June",
	}
	for _, s := range cited {
		assert.True(t, citationRegexp.MatchString(s), "expected citation in %q", s)
	}

	uncited := []string{
		"everyone knows this is true",
		"the study was large",
	}
	for _, s := range uncited {
		assert.False(t, citationRegexp.MatchString(s), "unexpected citation in %q", s)
	}
}

func TestPrinciplesAndTiers(t *testing.T) {
	assert.Len(t, Principles, 5)
	assert.Equal(t, "Truth", Principles[0].Name)

	require.NotNil(t, TierByNumber(1))
	assert.Equal(t, "The Source Code", TierByNumber(1).Alias)
	assert.Nil(t, TierByNumber(4))

	prompt := PrinciplesPrompt()
	for _, p := range Principles {
		assert.Contains(t, prompt, p.Name)
	}
}

func flagIDs(flags []Flag) []string {
	ids := make([]string, 0, len(flags))
	for _, f := range flags {
		ids = append(ids, f.PatternID)
	}
	return ids
}
