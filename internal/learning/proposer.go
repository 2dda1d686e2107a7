package learning

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"truthlens/internal/core"
	"truthlens/internal/llm"
	"truthlens/internal/logging"
)

const patternExtractionPrompt = `You are a pattern engineer for a bias detection system.

A deep analysis detected bias in text that the local rule-based detector missed.
Your job: formalize the detected distortion into a regex pattern that would catch
similar language in future text.

## What the deep analysis found
- Bias types: %s
- PIT Tier: %s
- Explanation: %s

## The text that triggered the detection
%s

## Requirements for the regex pattern
1. Must be a valid RE2 regex (no lookahead or lookbehind)
2. Should use word boundaries (\b) to prevent partial matches
3. Should be general enough to catch variations, specific enough to avoid false positives
4. Should use non-capturing groups (?:...) and alternation where appropriate
5. MUST be case-insensitive compatible (will be run with the i flag)
6. Should target the LINGUISTIC STRUCTURE, not specific proper nouns or facts

## Return Format
Return JSON with:
- "pattern_id": short ALL_CAPS identifier (e.g., "HEDGED_AUTHORITY_CLAIM")
- "name": human-readable name (3-6 words)
- "description": one sentence explaining what this pattern detects
- "pit_tier": integer 1, 2, or 3
- "severity": "low" | "moderate" | "high" | "critical"
- "principle": which principle this violates - "Truth" | "Justice" | "Clarity" | "Agency" | "Identity"
- "regex": the regex pattern string

Return ONLY valid JSON. If you cannot formalize a useful pattern, return:
{"pattern_id": null, "reason": "explanation of why"}`

// DeepFindings is the slice of a deep analysis result the proposer
// needs: whether bias was found, what kinds, and how severe.
type DeepFindings struct {
	BiasDetected bool
	BiasTypes    []string
	Severity     string
	PITTier      string // e.g. "tier_1_ideological" or "none"
	Explanation  string
}

// patternSpec is the JSON shape the LLM returns for a formalized
// pattern.
type patternSpec struct {
	PatternID   string `json:"pattern_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PITTier     int    `json:"pit_tier"`
	Severity    string `json:"severity"`
	Principle   string `json:"principle"`
	Regex       string `json:"regex"`
	Reason      string `json:"reason"`
}

// Proposer closes the self-learning loop. When a deep scan detects bias
// the local frozen core missed, it asks the LLM to formalize the gap as
// a regex and proposes the result to the ring.
type Proposer struct {
	ring *Ring
}

// NewProposer creates a proposer bound to a ring.
func NewProposer(ring *Ring) *Proposer {
	return &Proposer{ring: ring}
}

var nonIDChars = regexp.MustCompile(`[^A-Z0-9_]`)

// ExtractAndPropose compares local and deep results. If deep found
// significant bias that local missed, it formalizes the novel pattern
// via the LLM and proposes it to the ring. Returns nil when there is
// nothing to learn; proposal failures are silent because learning is
// best-effort and must never fail a scan.
func (p *Proposer) ExtractAndPropose(
	ctx context.Context,
	text string,
	localFlags []core.Flag,
	deep DeepFindings,
	client llm.Client,
	scanAuditHash string,
) []ProposalResult {
	if !deep.BiasDetected {
		return nil
	}
	// Low-severity findings are not worth learning from.
	if deep.Severity == core.SeverityNone || deep.Severity == core.SeverityLow {
		return nil
	}
	// Local already caught substantial bias; the gap is too small.
	if len(localFlags) >= 3 {
		return nil
	}

	var novelBias []string
	for _, b := range deep.BiasTypes {
		if b != "none" {
			novelBias = append(novelBias, b)
		}
	}
	if len(novelBias) == 0 {
		return nil
	}

	if _, ok := parseTier(deep.PITTier); !ok {
		return nil
	}

	truncated := text
	if len(truncated) > 2000 {
		truncated = truncated[:2000]
	}
	prompt := fmt.Sprintf(patternExtractionPrompt,
		strings.Join(novelBias, ", "), deep.PITTier, deep.Explanation, truncated)

	raw, err := client.Complete(ctx, prompt, llm.Options{Temperature: 0.2, JSONMode: true})
	if err != nil {
		logging.Get(logging.CategoryLearning).Debug("pattern extraction failed: %v", err)
		return nil
	}

	var spec patternSpec
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &spec); err != nil {
		logging.Get(logging.CategoryLearning).Debug("unparseable pattern spec: %v", err)
		return nil
	}
	if spec.PatternID == "" {
		return nil
	}
	if !validRegex(spec.Regex) {
		return nil
	}
	if spec.PITTier < 1 || spec.PITTier > 3 {
		return nil
	}

	severity := spec.Severity
	switch severity {
	case core.SeverityLow, core.SeverityModerate, core.SeverityHigh, core.SeverityCritical:
	default:
		severity = core.SeverityModerate
	}

	principle := spec.Principle
	switch principle {
	case "Truth", "Justice", "Clarity", "Agency", "Identity":
	default:
		principle = "Truth"
	}

	name := spec.Name
	if name == "" {
		name = "Unnamed Pattern"
	}

	// A deterministic ID keyed on the regex lets independently
	// discovered identical patterns converge, which is how
	// confirmations accumulate.
	patternID := generatePatternID(spec.PatternID, spec.Regex)

	result, err := p.ring.Propose(Proposal{
		ID:             patternID,
		Name:           name,
		Description:    spec.Description,
		PITTier:        spec.PITTier,
		Severity:       severity,
		Principle:      principle,
		Regex:          spec.Regex,
		SourceScanHash: scanAuditHash,
	})
	if err != nil {
		logging.Get(logging.CategoryLearning).Warn("proposal failed: %v", err)
		return nil
	}
	return []ProposalResult{result}
}

// parseTier parses tier labels like "tier_1_ideological" to a tier
// number. Returns false for "none" or anything unrecognized.
func parseTier(label string) (int, bool) {
	if label == "none" {
		return 0, false
	}
	parts := strings.Split(label, "_")
	if len(parts) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || core.TierByNumber(n) == nil {
		return 0, false
	}
	return n, true
}

// validRegex rejects regexes that do not compile or are degenerate:
// trivially short, excessively long, matching the empty string, or
// matching common stopwords.
func validRegex(pattern string) bool {
	if len(pattern) < 5 || len(pattern) > 1000 {
		return false
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	if loc := re.FindStringIndex(""); loc != nil {
		return false
	}
	common := []string{"the", "is", "a", "and", "to", "in"}
	matched := 0
	for _, w := range common {
		if re.MatchString(w) {
			matched++
		}
	}
	return matched < 3
}

// generatePatternID builds "L_<BASE>_<md5(regex)[:6]>".
func generatePatternID(baseID, pattern string) string {
	clean := nonIDChars.ReplaceAllString(strings.ToUpper(baseID), "")
	if clean == "" {
		clean = "LEARNED"
	}
	sum := md5.Sum([]byte(pattern))
	return fmt.Sprintf("L_%s_%s", clean, hex.EncodeToString(sum[:])[:6])
}
