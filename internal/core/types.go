// Package core implements the frozen detection engine: deterministic
// structural pattern matching, keyword marker scanning, citation-aware
// suppression and classification. The engine holds no mutable state; its
// patterns are compile-time constants and cannot be changed at runtime.
// The learning ring can extend detection with additional patterns but
// cannot redefine what a distortion is.
package core

import (
	"regexp"
	"sync"
)

// Version is stamped on every evaluation result. It changes only with a
// release that alters pattern definitions or engine behavior.
const Version = "1.2.0"

// Severity levels, ordered. Free-form strings elsewhere normalize to these.
const (
	SeverityNone     = "none"
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityRank returns the ordering of a severity string, -1 for unknown.
func SeverityRank(s string) int {
	switch s {
	case SeverityNone:
		return 0
	case SeverityLow:
		return 1
	case SeverityModerate:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return -1
}

// Flag is a single detection raised during evaluation.
type Flag struct {
	Category    string `json:"category"` // "structural" | "marker" | "ai"
	PatternID   string `json:"pattern_id"`
	MatchedText string `json:"matched_text"`
	PITTier     int    `json:"pit_tier"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"` // "ai" on AI-originated flags
}

// Evaluation is the result of a frozen core pass over a text.
type Evaluation struct {
	Aligned          bool    `json:"aligned"`
	KnowledgeType    string  `json:"knowledge_type"` // "sense" | "mixed" | "neutral"
	Confidence       float64 `json:"confidence"`
	Flags            []Flag  `json:"flags"`
	PrimaryPrinciple string  `json:"primary_principle"`
	PITTierActive    string  `json:"pit_tier_active,omitempty"` // e.g. "tier_1_ideological"
	Summary          string  `json:"summary"`
	CoreVersion      string  `json:"core_version"`
}

// StructuralPattern encodes a relationship between linguistic elements,
// not just a keyword: assertion + authority + no evidence, for example.
// Indicators are OR'd; the pattern triggers when the total number of
// fragments matched across all indicators reaches MinMatches.
type StructuralPattern struct {
	ID          string
	Name        string
	Description string
	PITTier     int
	Severity    string
	Principle   string
	Indicators  []string
	MinMatches  int
	// SuppressIfCited drops the flag when every matched fragment sits
	// within a citation window.
	SuppressIfCited bool
	// Exclusions drop individual fragments that match. Used where the
	// original pattern relied on negative lookahead.
	Exclusions []string

	compileOnce sync.Once
	compiled    []*regexp.Regexp
	excluded    []*regexp.Regexp
	compileErr  error
}

// regexps compiles the indicators once. Indicators compile with (?is):
// case-insensitive, dot matches newline.
func (p *StructuralPattern) regexps() ([]*regexp.Regexp, []*regexp.Regexp, error) {
	p.compileOnce.Do(func() {
		for _, ind := range p.Indicators {
			re, err := regexp.Compile("(?is)" + ind)
			if err != nil {
				p.compileErr = err
				return
			}
			p.compiled = append(p.compiled, re)
		}
		for _, ex := range p.Exclusions {
			re, err := regexp.Compile("(?is)" + ex)
			if err != nil {
				p.compileErr = err
				return
			}
			p.excluded = append(p.excluded, re)
		}
	})
	return p.compiled, p.excluded, p.compileErr
}

// PatternInfo is the external description of an active pattern, exposed
// by the patterns listing surface.
type PatternInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PITTier     int    `json:"pit_tier"`
	Severity    string `json:"severity"`
	Principle   string `json:"principle"`
	Domain      string `json:"domain"`
}
