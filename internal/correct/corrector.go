// Package correct rewrites biased text with the distortions removed
// while preserving factual content, then verifies the rewrite through
// the frozen core.
package correct

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"truthlens/internal/core"
	"truthlens/internal/detect"
	"truthlens/internal/llm"
	"truthlens/internal/logging"
	"truthlens/internal/score"
)

const correctionPrompt = `You are TruthLens's Correction Engine.

%s

## Your Task
Rewrite the following text to remove detected distortions while
preserving all factual content and original meaning.

## Detected Bias
- Knowledge Type: %s
- Bias Types: %s
- PIT Tier: %s
- Explanation: %s

## Specific Flags to Address
%s

## Rules
1. Remove appeals to authority/consensus that substitute for evidence
2. Replace distortion packaging with grounded, direct statements
3. Preserve ALL factual claims - only remove the bias framing
4. Do not add information the original didn't contain
5. Produce neutral, clear prose
6. Corrected text should be shorter or equal length

## Original Text
%s

Return JSON with:
- "corrected": the rewritten text
- "changes_made": array of strings describing each change
- "bias_removed": array of bias types addressed
- "confidence": float 0.0 to 1.0`

const refinementPrompt = `You are TruthLens's Correction Engine.

%s

## Your Task
Your previous rewrite still carries structural distortions. Refine the
text below to remove the remaining flags while preserving all factual
content and original meaning.

## Remaining Flags
%s

## Rules
1. Remove appeals to authority/consensus that substitute for evidence
2. Replace distortion packaging with grounded, direct statements
3. Preserve ALL factual claims - only remove the bias framing
4. Do not add information the original didn't contain
5. Produce neutral, clear prose
6. Corrected text should be shorter or equal length

## Text to Refine
%s

Return JSON with:
- "corrected": the rewritten text
- "changes_made": array of strings describing each change
- "bias_removed": array of bias types addressed
- "confidence": float 0.0 to 1.0`

// maxIterations bounds the correct-verify loop.
const maxIterations = 3

// Verification is the frozen core's verdict on a corrected text.
type Verification struct {
	TruthScoreAfter     int         `json:"truth_score_after"`
	Aligned             bool        `json:"aligned"`
	FlagsRemaining      int         `json:"flags_remaining"`
	StructuralRemaining []core.Flag `json:"structural_remaining"`
}

// Iteration records one pass of the correct-verify loop.
type Iteration struct {
	Iteration       int  `json:"iteration"`
	TruthScoreAfter int  `json:"truth_score_after"`
	FlagsRemaining  int  `json:"flags_remaining"`
	Passed          bool `json:"passed"`
}

// Result is the outcome of a correction request.
type Result struct {
	Original            string        `json:"original"`
	Corrected           string        `json:"corrected"`
	ChangesMade         []string      `json:"changes_made"`
	BiasRemoved         []string      `json:"bias_removed"`
	Confidence          float64       `json:"confidence"`
	CorrectionTriggered bool          `json:"correction_triggered"`
	Note                string        `json:"note,omitempty"`
	Error               string        `json:"error,omitempty"`
	DiffSpans           []DiffSpan    `json:"diff_spans"`
	Verification        *Verification `json:"verification,omitempty"`
	IterationCount      int           `json:"iteration_count"`
	Iterations          []Iteration   `json:"iterations"`
	Converged           bool          `json:"converged"`
}

// correctionResponse is the JSON shape the LLM returns.
type correctionResponse struct {
	Corrected   string   `json:"corrected"`
	ChangesMade []string `json:"changes_made"`
	BiasRemoved []string `json:"bias_removed"`
	Confidence  float64  `json:"confidence"`
}

// Corrector runs the iterative correction loop.
type Corrector struct {
	engine *core.Engine
	client llm.Client
}

// New creates a corrector.
func New(engine *core.Engine, client llm.Client) *Corrector {
	return &Corrector{engine: engine, client: client}
}

// Correct rewrites text flagged by a previous scan. It iterates up to
// maxIterations times, re-verifying each rewrite through the frozen
// core, until the score no longer drops and no new structural flags
// appear. LLM failure returns the original text with the error noted.
func (c *Corrector) Correct(ctx context.Context, text string, scan detect.Result, domain string) Result {
	if !scan.BiasDetected {
		return Result{
			Original:    text,
			Corrected:   text,
			ChangesMade: []string{},
			BiasRemoved: []string{},
			Confidence:  1.0,
			Note:        "No bias detected - no correction needed.",
			DiffSpans:   []DiffSpan{},
			Iterations:  []Iteration{},
		}
	}
	if !shouldCorrect(scan) {
		return Result{
			Original:    text,
			Corrected:   text,
			ChangesMade: []string{},
			BiasRemoved: []string{},
			Confidence:  1.0,
			Note:        "Bias below correction threshold - no correction needed.",
			DiffSpans:   []DiffSpan{},
			Iterations:  []Iteration{},
		}
	}

	timer := logging.StartTimer(logging.CategoryCorrect, "correction loop")
	defer timer.Stop()

	scoreBefore := scan.TruthScore
	originalStructural := countStructural(scan.Flags)
	instructions := flagInstructions(c.engine, scan.Flags)

	result := Result{
		Original:            text,
		Corrected:           text,
		ChangesMade:         []string{},
		BiasRemoved:         []string{},
		CorrectionTriggered: true,
		DiffSpans:           []DiffSpan{},
		Iterations:          []Iteration{},
	}

	current := text
	for i := 1; i <= maxIterations; i++ {
		var prompt string
		if i == 1 {
			prompt = fmt.Sprintf(correctionPrompt,
				core.PrinciplesPrompt(),
				scan.KnowledgeType,
				strings.Join(scan.BiasTypes, ", "),
				scan.PITTier,
				scan.Explanation,
				instructions,
				current,
			)
		} else {
			prompt = fmt.Sprintf(refinementPrompt,
				core.PrinciplesPrompt(), instructions, current)
		}

		raw, err := c.client.Complete(ctx, prompt, llm.Options{Temperature: 0.3, JSONMode: true})
		if err != nil {
			result.Error = err.Error()
			result.Confidence = 0.0
			logging.Get(logging.CategoryCorrect).Warn("correction failed at iteration %d: %v", i, err)
			return result
		}

		var resp correctionResponse
		if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &resp); err != nil {
			result.Error = fmt.Sprintf("unparseable correction: %v", err)
			result.Confidence = 0.0
			return result
		}
		if resp.Corrected == "" {
			result.Error = "correction returned empty text"
			result.Confidence = 0.0
			return result
		}

		ver := c.verify(resp.Corrected, domain)
		passed := ver.TruthScoreAfter >= scoreBefore && ver.FlagsRemaining <= originalStructural

		result.Corrected = resp.Corrected
		result.ChangesMade = append(result.ChangesMade, resp.ChangesMade...)
		result.BiasRemoved = mergeUnique(result.BiasRemoved, resp.BiasRemoved)
		result.Confidence = resp.Confidence
		result.Verification = &ver
		result.IterationCount = i
		result.Iterations = append(result.Iterations, Iteration{
			Iteration:       i,
			TruthScoreAfter: ver.TruthScoreAfter,
			FlagsRemaining:  ver.FlagsRemaining,
			Passed:          passed,
		})

		if passed {
			result.Converged = true
			break
		}
		// The next pass refines against what actually survived the
		// rewrite, not the original scan's flags.
		current = resp.Corrected
		instructions = flagInstructions(c.engine, ver.StructuralRemaining)
	}

	result.DiffSpans = ComputeDiffSpans(text, result.Corrected)
	return result
}

// shouldCorrect gates the LLM call: a score at or below 80, or any
// structural flag at moderate severity or worse.
func shouldCorrect(scan detect.Result) bool {
	if scan.TruthScore <= 80 {
		return true
	}
	for _, f := range scan.Flags {
		if f.Category == "structural" && core.SeverityRank(f.Severity) >= core.SeverityRank(core.SeverityModerate) {
			return true
		}
	}
	return false
}

// verify re-scans the corrected text through the frozen core.
func (c *Corrector) verify(corrected, domain string) Verification {
	eval := c.engine.Evaluate(corrected, domain, nil)
	truthScore, _ := score.Calculate(eval, nil, nil)

	var structural []core.Flag
	for _, f := range eval.Flags {
		if f.Category == "structural" {
			structural = append(structural, f)
		}
	}
	if structural == nil {
		structural = []core.Flag{}
	}
	return Verification{
		TruthScoreAfter:     truthScore,
		Aligned:             eval.Aligned,
		FlagsRemaining:      len(eval.Flags),
		StructuralRemaining: structural,
	}
}

// flagInstructions turns the scan's flags into numbered rewrite
// guidance. Known pattern IDs pull in the core's description; AI flags
// are marked as such.
func flagInstructions(engine *core.Engine, flags []core.Flag) string {
	descriptions := map[string]string{}
	for _, p := range engine.Patterns("auto") {
		descriptions[p.ID] = p.Description
	}

	var b strings.Builder
	n := 0
	for _, f := range flags {
		fromAI := f.Source == "ai"
		if f.Category != "structural" && !fromAI {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. [%s] (severity: %s)", n, f.PatternID, f.Severity)
		if fromAI {
			b.WriteString(" (source: AI)")
		}
		b.WriteString("\n")
		if f.MatchedText != "" {
			fmt.Fprintf(&b, "   Flagged text: %q\n", f.MatchedText)
		}
		if desc := descriptions[f.PatternID]; desc != "" {
			fmt.Fprintf(&b, "   Pattern: %s\n", desc)
		} else if f.Description != "" {
			fmt.Fprintf(&b, "   Pattern: %s\n", f.Description)
		}
	}
	if n == 0 {
		return "No specific structural patterns flagged; address the overall bias described above."
	}
	return b.String()
}

func countStructural(flags []core.Flag) int {
	n := 0
	for _, f := range flags {
		if f.Category == "structural" {
			n++
		}
	}
	return n
}

func mergeUnique(existing, extra []string) []string {
	seen := map[string]bool{}
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range extra {
		if !seen[s] {
			existing = append(existing, s)
			seen[s] = true
		}
	}
	return existing
}
