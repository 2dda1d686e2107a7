package detect

import (
	"encoding/json"
	"strconv"
	"strings"

	"truthlens/internal/core"
)

// extractAIFlags validates and normalizes the flags the LLM returned,
// dropping anything incomplete or duplicating a local detection.
// Pattern ID comparison is case-insensitive.
func extractAIFlags(deep *deepAnalysis, localFlagIDs []string) []core.Flag {
	if deep == nil {
		return nil
	}

	seen := map[string]bool{}
	for _, id := range localFlagIDs {
		seen[strings.ToLower(id)] = true
	}

	var flags []core.Flag
	for _, raw := range deep.Flags {
		patternID := strings.TrimSpace(raw.PatternID)
		matchedText := strings.TrimSpace(raw.MatchedText)
		if patternID == "" || matchedText == "" {
			continue
		}
		// AI matched text obeys the same bound core flags get.
		if r := []rune(matchedText); len(r) > 120 {
			matchedText = string(r[:120])
		}
		if seen[strings.ToLower(patternID)] {
			continue
		}

		severity := strings.ToLower(raw.Severity)
		switch severity {
		case core.SeverityLow, core.SeverityModerate, core.SeverityHigh, core.SeverityCritical:
		default:
			severity = core.SeverityModerate
		}

		category := raw.Category
		if category == "" {
			category = "structural"
		}

		flags = append(flags, core.Flag{
			Category:    category,
			PatternID:   patternID,
			MatchedText: matchedText,
			PITTier:     normalizeTier(raw.PITTier),
			Severity:    severity,
			Description: raw.Description,
			Source:      "ai",
		})
		seen[strings.ToLower(patternID)] = true
	}
	return flags
}

// normalizeTier coerces whatever JSON type the model used for pit_tier
// into a tier number clamped to 1..3, defaulting to 2.
func normalizeTier(v any) int {
	tier := 2
	switch t := v.(type) {
	case float64:
		tier = int(t)
	case int:
		tier = t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			tier = n
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			tier = int(n)
		}
	}
	if tier < 1 {
		tier = 1
	}
	if tier > 3 {
		tier = 3
	}
	return tier
}
