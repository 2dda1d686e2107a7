package detect

import (
	"math"
	"sort"

	"truthlens/internal/core"
	"truthlens/internal/learning"
	"truthlens/internal/score"
)

// Scan modes.
const (
	ModeLocal = "local"
	ModeDeep  = "deep"
	ModeFull  = "full"
)

// ImpactPath is one of the two projected futures.
type ImpactPath struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ImpactProjection contrasts accepting the biased framing (path A)
// against seeing through it (path B).
type ImpactProjection struct {
	PathA ImpactPath `json:"path_a"`
	PathB ImpactPath `json:"path_b"`
}

// Result is the unified scan result across all modes.
type Result struct {
	Text               string                    `json:"text"`
	TruthScore         int                       `json:"truth_score"`
	KnowledgeType      string                    `json:"knowledge_type"`
	BiasDetected       bool                      `json:"bias_detected"`
	BiasTypes          []string                  `json:"bias_types"`
	PITTier            string                    `json:"pit_tier"`
	PITDetail          string                    `json:"pit_detail"`
	Severity           string                    `json:"severity"`
	Confidence         float64                   `json:"confidence"`
	Explanation        string                    `json:"explanation"`
	Flags              []core.Flag               `json:"flags"`
	ImpactProjection   *ImpactProjection         `json:"impact_projection"`
	ScanMode           string                    `json:"scan_mode"`
	Source             string                    `json:"source"`
	CoreVersion        string                    `json:"core_version"`
	ScoreBreakdown     *score.Breakdown          `json:"score_breakdown,omitempty"`
	AuditHash          string                    `json:"audit_hash,omitempty"`
	LearningProposals  []learning.ProposalResult `json:"learning_proposals"`
	Degraded           bool                      `json:"_degraded,omitempty"`
	DegradationWarning string                    `json:"_degradation_warning,omitempty"`
	Error              string                    `json:"error,omitempty"`

	// deep carries the raw LLM verdict through to the learning loop.
	deep *deepAnalysis
}

// deepAnalysis is the JSON shape returned by the deep analysis prompt.
type deepAnalysis struct {
	KnowledgeType string      `json:"knowledge_type"`
	BiasDetected  bool        `json:"bias_detected"`
	BiasTypes     []string    `json:"bias_types"`
	PITTier       string      `json:"pit_tier"`
	PITTierDetail string      `json:"pit_tier_detail"`
	Confidence    float64     `json:"confidence"`
	Explanation   string      `json:"explanation"`
	Severity      string      `json:"severity"`
	Flags         []rawAIFlag `json:"flags"`
}

// rawAIFlag is an unvalidated flag from the LLM. PITTier accepts any
// JSON type since models return both numbers and strings.
type rawAIFlag struct {
	Category    string `json:"category"`
	PatternID   string `json:"pattern_id"`
	MatchedText string `json:"matched_text"`
	Severity    string `json:"severity"`
	PITTier     any    `json:"pit_tier"`
	Description string `json:"description"`
}

// impactResponse is the JSON shape returned by the impact prompt.
type impactResponse struct {
	PathATitle string `json:"path_a_title"`
	PathADesc  string `json:"path_a_desc"`
	PathBTitle string `json:"path_b_title"`
	PathBDesc  string `json:"path_b_desc"`
}

func (r impactResponse) projection() *ImpactProjection {
	return &ImpactProjection{
		PathA: ImpactPath{Title: r.PathATitle, Description: r.PathADesc},
		PathB: ImpactPath{Title: r.PathBTitle, Description: r.PathBDesc},
	}
}

// buildResult merges the local evaluation, deep analysis and AI flags
// into a unified result. Deep analysis wins on explanation, tier and
// knowledge type; confidence takes the higher of the two; severity is
// the worst seen anywhere.
func buildResult(
	text string,
	eval core.Evaluation,
	truthScore int,
	scanMode string,
	deep *deepAnalysis,
	impact *ImpactProjection,
	aiFlags []core.Flag,
	breakdown score.Breakdown,
) Result {
	biasTypes := map[string]bool{}
	for _, f := range eval.Flags {
		biasTypes[f.PatternID] = true
	}
	if deep != nil {
		for _, b := range deep.BiasTypes {
			if b != "none" {
				biasTypes[b] = true
			}
		}
	}
	merged := make([]string, 0, len(biasTypes))
	for b := range biasTypes {
		merged = append(merged, b)
	}
	sort.Strings(merged)

	// Worst severity across core flags, AI flags and the deep verdict.
	severity := core.SeverityNone
	worst := func(s string) {
		if core.SeverityRank(s) > core.SeverityRank(severity) {
			severity = s
		}
	}
	for _, f := range eval.Flags {
		worst(f.Severity)
	}
	for _, f := range aiFlags {
		worst(f.Severity)
	}
	if deep != nil && deep.Severity != "" {
		worst(deep.Severity)
	}

	explanation := eval.Summary
	if deep != nil && deep.Explanation != "" {
		explanation = deep.Explanation
	}

	confidence := eval.Confidence
	if deep != nil && deep.Confidence > confidence {
		confidence = deep.Confidence
	}

	pitTier := eval.PITTierActive
	if pitTier == "" {
		pitTier = "none"
	}
	if deep != nil && deep.PITTier != "" {
		pitTier = deep.PITTier
	}
	pitDetail := ""
	if deep != nil {
		pitDetail = deep.PITTierDetail
	}

	knowledgeType := eval.KnowledgeType
	if deep != nil && deep.KnowledgeType != "" {
		knowledgeType = deep.KnowledgeType
	}

	flags := make([]core.Flag, 0, len(eval.Flags)+len(aiFlags))
	for _, f := range eval.Flags {
		f.Source = "core"
		flags = append(flags, f)
	}
	flags = append(flags, aiFlags...)

	source := "local"
	if scanMode != ModeLocal {
		if deep != nil {
			source = "gemini+local"
		} else {
			source = "local_fallback"
		}
	}

	return Result{
		Text:              text,
		TruthScore:        truthScore,
		KnowledgeType:     knowledgeType,
		BiasDetected:      len(flags) > 0 || (deep != nil && deep.BiasDetected),
		BiasTypes:         merged,
		PITTier:           pitTier,
		PITDetail:         pitDetail,
		Severity:          severity,
		Confidence:        math.Round(confidence*1000) / 1000,
		Flags:             flags,
		Explanation:       explanation,
		ImpactProjection:  impact,
		ScanMode:          scanMode,
		Source:            source,
		CoreVersion:       eval.CoreVersion,
		ScoreBreakdown:    &breakdown,
		LearningProposals: []learning.ProposalResult{},
	}
}
