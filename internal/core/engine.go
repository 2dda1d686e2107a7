package core

import (
	"fmt"
	"regexp"
	"strings"

	"truthlens/internal/logging"
)

// Engine runs the frozen evaluation: structural pattern detection,
// keyword marker scanning and classification. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	base      []*StructuralPattern
	legal     []*StructuralPattern
	media     []*StructuralPattern
	financial []*StructuralPattern
	markers   []string
}

// NewEngine returns the frozen engine. All instances evaluate against the
// same compile-time pattern constants.
func NewEngine() *Engine {
	return &Engine{
		base:      generalPatterns,
		legal:     legalPatterns,
		media:     mediaPatterns,
		financial: financialPatterns,
		markers:   senseKnowledgeMarkers,
	}
}

// activePatterns returns the pattern set for a domain. Unknown domains
// get the general set only. "auto" runs every domain overlay.
func (e *Engine) activePatterns(domain string) []*StructuralPattern {
	patterns := make([]*StructuralPattern, 0, len(e.base)+len(e.legal)+len(e.media)+len(e.financial))
	patterns = append(patterns, e.base...)
	switch domain {
	case "legal":
		patterns = append(patterns, e.legal...)
	case "media":
		patterns = append(patterns, e.media...)
	case "financial":
		patterns = append(patterns, e.financial...)
	case "auto":
		patterns = append(patterns, e.legal...)
		patterns = append(patterns, e.media...)
		patterns = append(patterns, e.financial...)
	}
	return patterns
}

// Evaluate runs the full frozen pass over text.
//
// external patterns (from the learning ring) extend detection but cannot
// override frozen definitions; one that fails to compile is skipped.
func (e *Engine) Evaluate(text, domain string, external []*StructuralPattern) Evaluation {
	var flags []Flag

	active := e.activePatterns(domain)
	active = append(active, external...)

	for _, p := range active {
		matches := matchStructural(text, p)
		if len(matches) == 0 {
			continue
		}
		if p.SuppressIfCited && allCited(text, matches) {
			continue
		}
		flags = append(flags, Flag{
			Category:    "structural",
			PatternID:   p.ID,
			MatchedText: truncate(matches[0], 120),
			PITTier:     p.PITTier,
			Severity:    p.Severity,
			Description: p.Description,
		})
	}

	textLower := strings.ToLower(text)
	for _, marker := range e.markers {
		if !strings.Contains(textLower, marker) {
			continue
		}
		// "Studies show (Smith et al., 2024)" is legitimate citation
		// context, not a Sense Knowledge assertion.
		if hasNearbyCitation(text, marker) {
			continue
		}
		flags = append(flags, Flag{
			Category:    "marker",
			PatternID:   "SK_" + strings.ReplaceAll(strings.ToUpper(marker), " ", "_"),
			MatchedText: marker,
			PITTier:     1,
			Severity:    SeverityLow,
			Description: fmt.Sprintf("Sense Knowledge marker detected: '%s'", marker),
		})
	}

	knowledgeType := classifyKnowledge(flags)
	tierActive := dominantTier(flags)
	principle := e.primaryPrinciple(flags)
	confidence := calculateConfidence(flags, text)
	aligned := knowledgeType == "neutral" || knowledgeType == "mixed" || len(flags) == 0

	logging.Get(logging.CategoryCore).Debug(
		"evaluated %d chars domain=%s flags=%d type=%s", len(text), domain, len(flags), knowledgeType)

	return Evaluation{
		Aligned:          aligned,
		KnowledgeType:    knowledgeType,
		Confidence:       confidence,
		Flags:            flags,
		PrimaryPrinciple: principle,
		PITTierActive:    tierActive,
		Summary:          buildSummary(flags, tierActive),
		CoreVersion:      Version,
	}
}

// matchStructural returns the fragments matched across all indicators, or
// nil when fewer than MinMatches fragments were found.
func matchStructural(text string, p *StructuralPattern) []string {
	res, excl, err := p.regexps()
	if err != nil {
		logging.Get(logging.CategoryCore).Warn("pattern %s failed to compile: %v", p.ID, err)
		return nil
	}
	var matches []string
	for _, re := range res {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			frag := m[0]
			// An indicator with a capture group reports the group.
			for i := 1; i < len(m); i++ {
				if m[i] != "" {
					frag = m[i]
					break
				}
			}
			if excluded(frag, excl) {
				continue
			}
			matches = append(matches, frag)
		}
	}
	if len(matches) < p.MinMatches {
		return nil
	}
	return matches
}

func excluded(frag string, excl []*regexp.Regexp) bool {
	for _, re := range excl {
		if re.MatchString(frag) {
			return true
		}
	}
	return false
}

// allCited reports whether every matched fragment has a citation within
// the suppression window.
func allCited(text string, matches []string) bool {
	for _, m := range matches {
		if !hasNearbyCitation(text, m) {
			return false
		}
	}
	return true
}

// hasNearbyCitation looks for citation evidence within citationWindow
// chars around the first occurrence of fragment.
func hasNearbyCitation(text, fragment string) bool {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(fragment))
	if idx == -1 {
		return false
	}
	start := idx - citationWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(fragment) + citationWindow
	if end > len(text) {
		end = len(text)
	}
	return citationRegexp.MatchString(text[start:end])
}

func classifyKnowledge(flags []Flag) string {
	if len(flags) == 0 {
		return "neutral"
	}
	structural, markers := countCategories(flags)
	total := structural + markers
	switch {
	case structural >= 2 || total >= 4:
		return "sense"
	case total >= 1:
		return "mixed"
	}
	return "neutral"
}

// dominantTier weights structural flags at 3 and markers at 1, returning
// a label like "tier_1_ideological". Ties break to the lowest tier.
func dominantTier(flags []Flag) string {
	if len(flags) == 0 {
		return ""
	}
	counts := map[int]int{1: 0, 2: 0, 3: 0}
	for _, f := range flags {
		weight := 1
		if f.Category == "structural" {
			weight = 3
		}
		counts[f.PITTier] += weight
	}
	dominant, best := 0, -1
	for tier := 1; tier <= 3; tier++ {
		if counts[tier] > best {
			dominant, best = tier, counts[tier]
		}
	}
	if best == 0 {
		return ""
	}
	info := TierByNumber(dominant)
	if info == nil {
		return fmt.Sprintf("tier_%d_unknown", dominant)
	}
	return fmt.Sprintf("tier_%d_%s", dominant, strings.ToLower(info.Name))
}

// primaryPrinciple tallies principle violations from structural flags.
// Marker flags carry no principle; the default is Truth.
func (e *Engine) primaryPrinciple(flags []Flag) string {
	if len(flags) == 0 {
		return "Truth"
	}
	counts := map[string]int{}
	all := e.activePatterns("auto")
	for _, f := range flags {
		if f.Category != "structural" {
			continue
		}
		for _, p := range all {
			if p.ID == f.PatternID {
				counts[p.Principle]++
				break
			}
		}
	}
	best, bestCount := "", 0
	for _, p := range Principles {
		if counts[p.Name] > bestCount {
			best, bestCount = p.Name, counts[p.Name]
		}
	}
	if best == "" {
		return "Truth"
	}
	return best
}

// calculateConfidence: higher when structural patterns match (not just
// keywords), when text is long enough for meaningful analysis, and when
// multiple tiers are involved.
func calculateConfidence(flags []Flag, text string) float64 {
	if len(flags) == 0 {
		if len(text) > 100 {
			return 0.9
		}
		return 0.6
	}
	structural, markers := countCategories(flags)
	tiers := map[int]bool{}
	for _, f := range flags {
		tiers[f.PITTier] = true
	}

	base := 0.5
	base += minF(float64(structural)*0.12, 0.36)
	base += minF(float64(markers)*0.03, 0.09)
	base += minF(float64(len(tiers))*0.05, 0.10)
	return minF(base, 0.95)
}

func buildSummary(flags []Flag, tierActive string) string {
	if len(flags) == 0 {
		return "No distortion patterns detected. Text appears neutral."
	}
	var structural []Flag
	markerCount := 0
	for _, f := range flags {
		switch f.Category {
		case "structural":
			structural = append(structural, f)
		case "marker":
			markerCount++
		}
	}

	var parts []string
	if len(structural) > 0 {
		seen := map[string]bool{}
		var ids []string
		for _, f := range structural {
			if !seen[f.PatternID] {
				seen[f.PatternID] = true
				ids = append(ids, f.PatternID)
			}
		}
		parts = append(parts, fmt.Sprintf(
			"Detected %d structural distortion(s): %s.", len(structural), strings.Join(ids, ", ")))
	}
	if markerCount > 0 {
		parts = append(parts, fmt.Sprintf("Found %d Sense Knowledge marker(s).", markerCount))
	}
	if tierActive != "" {
		var tierNum int
		fmt.Sscanf(tierActive, "tier_%d_", &tierNum)
		if info := TierByNumber(tierNum); info != nil {
			parts = append(parts, fmt.Sprintf(
				"Primary distortion tier: %s (%s).", info.Name, info.Alias))
		}
	}
	return strings.Join(parts, " ")
}

// Patterns lists the active patterns for a domain, for the patterns
// listing surface.
func (e *Engine) Patterns(domain string) []PatternInfo {
	patterns := make([]*StructuralPattern, 0)
	patterns = append(patterns, e.base...)
	if domain == "legal" || domain == "auto" {
		patterns = append(patterns, e.legal...)
	}
	if domain == "media" || domain == "auto" {
		patterns = append(patterns, e.media...)
	}
	if domain == "financial" || domain == "auto" {
		patterns = append(patterns, e.financial...)
	}

	infos := make([]PatternInfo, 0, len(patterns))
	for _, p := range patterns {
		infos = append(infos, PatternInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PITTier:     p.PITTier,
			Severity:    p.Severity,
			Principle:   p.Principle,
			Domain:      patternDomain(p.ID),
		})
	}
	return infos
}

func patternDomain(id string) string {
	switch {
	case strings.HasPrefix(id, "LEGAL_"):
		return "legal"
	case strings.HasPrefix(id, "MEDIA_"):
		return "media"
	case strings.HasPrefix(id, "FIN_"):
		return "financial"
	}
	return "general"
}

func countCategories(flags []Flag) (structural, markers int) {
	for _, f := range flags {
		switch f.Category {
		case "structural":
			structural++
		case "marker":
			markers++
		}
	}
	return structural, markers
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
