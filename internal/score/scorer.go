// Package score computes the 0-100 Truth Score from a frozen core
// evaluation plus optional deep-analysis output. Scoring is pure penalty
// accumulation so identical inputs always produce identical scores.
package score

import (
	"strconv"
	"strings"

	"truthlens/internal/core"
)

// DeepSignal carries the scoring-relevant slice of a deep analysis
// result: overall severity and the distinct bias types found.
type DeepSignal struct {
	Severity  string
	BiasTypes []string
}

// StructuralPenalty records one structural flag's contribution.
type StructuralPenalty struct {
	Pattern  string `json:"pattern"`
	Severity string `json:"severity"`
	Penalty  int    `json:"penalty"`
}

// AIFlagPenalty records one AI flag's contribution.
type AIFlagPenalty struct {
	Pattern  string `json:"pattern"`
	Severity string `json:"severity"`
	Penalty  int    `json:"penalty"`
}

// Breakdown shows every penalty applied to reach the final score.
type Breakdown struct {
	StartingScore           int                 `json:"starting_score"`
	CoreStructuralPenalties []StructuralPenalty `json:"core_structural_penalties"`
	CoreMarkerPenalty       int                 `json:"core_marker_penalty"`
	PITTierPenalty          int                 `json:"pit_tier_penalty"`
	MultiTierPenalty        int                 `json:"multi_tier_penalty"`
	AIFlagPenalties         []AIFlagPenalty     `json:"ai_flag_penalties"`
	DeepSeverityPenalty     int                 `json:"deep_severity_penalty"`
	DeepBiasTypePenalty     int                 `json:"deep_bias_type_penalty"`
	FinalScore              int                 `json:"final_score"`
}

var structuralPenalty = map[string]int{
	core.SeverityCritical: 25,
	core.SeverityHigh:     20,
	core.SeverityModerate: 14,
	core.SeverityLow:      8,
}

var tierPenalty = map[int]int{1: 10, 2: 7, 3: 4}

// AI flags weigh lighter than core flags: they are non-deterministic.
var aiPenalty = map[string]int{
	core.SeverityCritical: 14,
	core.SeverityHigh:     10,
	core.SeverityModerate: 6,
	core.SeverityLow:      3,
}

var deepSeverityPenalty = map[string]int{
	core.SeverityCritical: 20,
	core.SeverityHigh:     15,
	core.SeverityModerate: 8,
	core.SeverityLow:      4,
	core.SeverityNone:     0,
}

// Calculate computes the Truth Score.
//
//	Start at 100.
//	Structural flags:  critical -25, high -20, moderate -14, low -8
//	Keyword markers:   -4 each
//	PIT tier penalty:  tier 1 -10, tier 2 -7, tier 3 -4
//	Multi-tier span:   -5 per additional unique tier
//	AI flags:          critical -14, high -10, moderate -6, low -3
//	Deep severity:     critical -20, high -15, moderate -8, low -4
//	Deep bias types:   -4 per unique non-"none" type
//	Clamped to [0, 100].
func Calculate(eval core.Evaluation, deep *DeepSignal, aiFlags []core.Flag) (int, Breakdown) {
	sc := 100
	breakdown := Breakdown{
		StartingScore:           100,
		CoreStructuralPenalties: []StructuralPenalty{},
		AIFlagPenalties:         []AIFlagPenalty{},
	}

	tierSet := map[int]bool{}
	markerCount := 0
	for _, f := range eval.Flags {
		switch f.Category {
		case "structural":
			pen, ok := structuralPenalty[f.Severity]
			if !ok {
				pen = 8
			}
			sc -= pen
			tierSet[f.PITTier] = true
			breakdown.CoreStructuralPenalties = append(breakdown.CoreStructuralPenalties, StructuralPenalty{
				Pattern:  f.PatternID,
				Severity: f.Severity,
				Penalty:  -pen,
			})
		case "marker":
			sc -= 4
			markerCount++
		}
	}
	breakdown.CoreMarkerPenalty = -(markerCount * 4)

	if tier := parseTierLabel(eval.PITTierActive); tier > 0 {
		pen := tierPenalty[tier]
		sc -= pen
		breakdown.PITTierPenalty = -pen
	}

	// Distortions spanning multiple PIT tiers indicate a more embedded
	// bias pattern.
	if len(tierSet) > 1 {
		pen := (len(tierSet) - 1) * 5
		sc -= pen
		breakdown.MultiTierPenalty = -pen
	}

	for _, af := range aiFlags {
		sev := af.Severity
		if sev == "" {
			sev = core.SeverityModerate
		}
		pen, ok := aiPenalty[sev]
		if !ok {
			pen = 6
		}
		sc -= pen
		breakdown.AIFlagPenalties = append(breakdown.AIFlagPenalties, AIFlagPenalty{
			Pattern:  af.PatternID,
			Severity: sev,
			Penalty:  -pen,
		})
	}

	if deep != nil {
		pen := deepSeverityPenalty[deep.Severity]
		sc -= pen
		breakdown.DeepSeverityPenalty = -pen

		unique := map[string]bool{}
		for _, bt := range deep.BiasTypes {
			if bt != "none" {
				unique[bt] = true
			}
		}
		typePen := len(unique) * 4
		sc -= typePen
		breakdown.DeepBiasTypePenalty = -typePen
	}

	final := clamp(sc, 0, 100)
	breakdown.FinalScore = final
	return final, breakdown
}

// parseTierLabel extracts N from "tier_N_name", 0 when absent or
// malformed.
func parseTierLabel(label string) int {
	if label == "" {
		return 0
	}
	parts := strings.Split(label, "_")
	if len(parts) < 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
