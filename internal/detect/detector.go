// Package detect orchestrates the three scan modes:
//
//	local: frozen core only. Zero API cost. Deterministic.
//	deep:  LLM analysis with the frozen principles as context.
//	full:  both layers merged. The real product.
//
// It coordinates the core engine, the LLM provider, the scorer, the
// scan cache, the audit chain and the learning ring.
package detect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"truthlens/internal/audit"
	"truthlens/internal/cache"
	"truthlens/internal/core"
	"truthlens/internal/learning"
	"truthlens/internal/llm"
	"truthlens/internal/logging"
	"truthlens/internal/score"
)

// maxTextChars bounds a single scan request.
const maxTextChars = 50000

// Local-only results cap the score: the deterministic engine cannot see
// subtle patterns, so a perfect score would overstate confidence.
const degradedScoreCap = 85

const degradationWarning = "LLM circuit breaker is open due to repeated failures. " +
	"Results are from the local deterministic engine only. Some subtle bias " +
	"patterns may not be detected. Truth score has been capped at 85."

// Detector runs scans. All collaborators except the engine are
// optional: a nil client disables deep analysis, a nil ring disables
// learned patterns and proposals, a nil chain disables audit logging,
// a nil cache disables result caching.
type Detector struct {
	engine *core.Engine
	client llm.Client
	ring   *learning.Ring
	chain  *audit.Chain
	cache  *cache.Cache[Result]
}

// New creates a detector.
func New(engine *core.Engine, client llm.Client, ring *learning.Ring, chain *audit.Chain, scanCache *cache.Cache[Result]) *Detector {
	return &Detector{
		engine: engine,
		client: client,
		ring:   ring,
		chain:  chain,
		cache:  scanCache,
	}
}

// Scan analyzes text in the given mode ("local", "deep" or "full").
// Identical scans are served from cache. Deep and full scans degrade to
// local-only when the LLM is unavailable.
func (d *Detector) Scan(ctx context.Context, text, domain, mode string) (Result, error) {
	if text == "" {
		return Result{}, fmt.Errorf("text is required")
	}
	if utf8.RuneCountInString(text) > maxTextChars {
		return Result{}, fmt.Errorf("text exceeds %d characters", maxTextChars)
	}
	if domain == "" {
		domain = "general"
	}

	learned := d.activePatterns()
	// The cache key carries the learned pattern count so activations
	// invalidate stale results.
	lrVersion := strconv.Itoa(len(learned))

	if d.cache != nil {
		if cached, ok := d.cache.Get(text, domain, mode, lrVersion); ok {
			logging.ScanDebug("cache hit: score=%d mode=%s", cached.TruthScore, mode)
			return cached, nil
		}
	}

	var result Result
	switch mode {
	case ModeLocal:
		result = d.scanLocal(text, domain, learned)
	case ModeDeep:
		result = d.scanDeep(ctx, text, domain)
	case ModeFull:
		result = d.scanFull(ctx, text, domain, learned)
	default:
		return Result{}, fmt.Errorf("invalid scan mode: %s", mode)
	}

	// Learned patterns took part in the deterministic pass; their
	// evaluation counts are the denominator of the fp-rate check.
	if d.ring != nil && mode != ModeDeep {
		for _, p := range learned {
			if err := d.ring.RecordEvaluation(p.ID); err != nil {
				logging.Get(logging.CategoryLearning).Warn("failed to record evaluation for %s: %v", p.ID, err)
			}
		}
	}

	d.auditScan(mode, domain, &result)

	// Self-learning loop: propose novel patterns the local engine
	// missed. Best-effort, never fails the scan.
	if result.deep != nil && d.ring != nil && d.chain != nil && d.client != nil {
		proposer := learning.NewProposer(d.ring)
		proposals := proposer.ExtractAndPropose(ctx, text, result.Flags, learning.DeepFindings{
			BiasDetected: result.deep.BiasDetected,
			BiasTypes:    result.deep.BiasTypes,
			Severity:     result.deep.Severity,
			PITTier:      result.deep.PITTier,
			Explanation:  result.deep.Explanation,
		}, d.client, result.AuditHash)
		if proposals != nil {
			result.LearningProposals = proposals
		}
	}

	if d.cache != nil {
		d.cache.Put(text, domain, mode, lrVersion, result)
	}

	logging.Scan("scan complete: score=%d mode=%s flags=%d", result.TruthScore, result.ScanMode, len(result.Flags))
	return result, nil
}

// scanLocal runs the frozen core plus any learned patterns.
func (d *Detector) scanLocal(text, domain string, learned []*core.StructuralPattern) Result {
	eval := d.engine.Evaluate(text, domain, learned)
	truthScore, breakdown := score.Calculate(eval, nil, nil)
	return buildResult(text, eval, truthScore, ModeLocal, nil, nil, nil, breakdown)
}

// scanDeep runs LLM analysis with the frozen principles as context. A
// local pass still runs so the scorer has a deterministic baseline. LLM
// failure degrades to a capped local-only result.
func (d *Detector) scanDeep(ctx context.Context, text, domain string) Result {
	eval := d.engine.Evaluate(text, domain, nil)

	deep, err := d.deepAnalysis(ctx, text, domain, nil)
	if err != nil {
		return d.degrade(text, domain, ModeDeep, err)
	}

	aiFlags := extractAIFlags(deep, nil)
	truthScore, breakdown := score.Calculate(eval, deepSignal(deep), aiFlags)
	r := buildResult(text, eval, truthScore, ModeDeep, deep, nil, aiFlags, breakdown)
	r.deep = deep
	return r
}

// scanFull merges the local engine with LLM co-detection. The local
// flag IDs are passed to the LLM for deduplication. When the score
// lands below 80 an impact projection is added.
func (d *Detector) scanFull(ctx context.Context, text, domain string, learned []*core.StructuralPattern) Result {
	eval := d.engine.Evaluate(text, domain, learned)

	localIDs := make([]string, 0, len(eval.Flags))
	for _, f := range eval.Flags {
		localIDs = append(localIDs, f.PatternID)
	}

	deep, err := d.deepAnalysis(ctx, text, domain, localIDs)
	if err != nil {
		if errors.Is(err, llm.ErrCircuitOpen) {
			return d.degrade(text, domain, ModeFull, err)
		}
		logging.LLMWarn("co-detection failed, continuing local-only: %v", err)
		deep = nil
	}

	aiFlags := extractAIFlags(deep, localIDs)
	truthScore, breakdown := score.Calculate(eval, deepSignal(deep), aiFlags)

	var impact *ImpactProjection
	if truthScore < 80 && deep != nil {
		impact = d.projectImpact(ctx, text, deep)
	}

	r := buildResult(text, eval, truthScore, ModeFull, deep, impact, aiFlags, breakdown)
	r.deep = deep
	return r
}

// degrade falls back to a local-only scan when the LLM is unavailable,
// capping the score and marking the result.
func (d *Detector) degrade(text, domain, requestedMode string, cause error) Result {
	logging.LLMWarn("falling back to local scan (mode %s): %v", requestedMode, cause)

	result := d.scanLocal(text, domain, d.activePatterns())
	result.ScanMode = fmt.Sprintf("local (fallback from %s)", requestedMode)
	result.Source = "local_fallback"
	result.Degraded = true
	result.DegradationWarning = degradationWarning
	if result.TruthScore > degradedScoreCap {
		result.TruthScore = degradedScoreCap
	}
	return result
}

// deepAnalysis sends the deep analysis prompt and parses the response.
func (d *Detector) deepAnalysis(ctx context.Context, text, domain string, localIDs []string) (*deepAnalysis, error) {
	if d.client == nil {
		return nil, llm.ErrCircuitOpen
	}

	localFlags := "(none)"
	if len(localIDs) > 0 {
		localFlags = strings.Join(localIDs, ", ")
	}
	prompt := fmt.Sprintf(deepAnalysisPrompt,
		core.PrinciplesPrompt(), domainContext[domain], localFlags, text)

	raw, err := d.client.Complete(ctx, prompt, llm.Options{Temperature: 0.2, JSONMode: true})
	if err != nil {
		return nil, err
	}

	var deep deepAnalysis
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &deep); err != nil {
		return nil, fmt.Errorf("unparseable deep analysis: %w", err)
	}
	return &deep, nil
}

// projectImpact asks for the trap/leverage projection. Failure drops
// the projection silently; it is decoration, not detection.
func (d *Detector) projectImpact(ctx context.Context, text string, deep *deepAnalysis) *ImpactProjection {
	summary := fmt.Sprintf("Severity: %s, Bias types: %s, PIT Tier: %s, Explanation: %s",
		deep.Severity, strings.Join(deep.BiasTypes, ", "), deep.PITTier, deep.Explanation)

	raw, err := d.client.Complete(ctx,
		fmt.Sprintf(impactProjectionPrompt, text, summary),
		llm.Options{Temperature: 0.7, JSONMode: true})
	if err != nil {
		logging.LLMWarn("impact projection failed: %v", err)
		return nil
	}

	var resp impactResponse
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &resp); err != nil {
		return nil
	}
	return resp.projection()
}

// auditScan appends the scan event to the chain and stamps the result
// with its hash.
func (d *Detector) auditScan(mode, domain string, result *Result) {
	if d.chain == nil {
		return
	}
	hash, err := d.chain.Log("scan_"+mode, map[string]any{
		"truth_score":   result.TruthScore,
		"bias_detected": result.BiasDetected,
		"severity":      result.Severity,
		"pit_tier":      result.PITTier,
		"domain":        domain,
		"flags_count":   len(result.Flags),
	}, core.Version)
	if err != nil {
		logging.Get(logging.CategoryAudit).Warn("failed to log scan: %v", err)
		return
	}
	result.AuditHash = hash
}

func (d *Detector) activePatterns() []*core.StructuralPattern {
	if d.ring == nil {
		return nil
	}
	patterns, err := d.ring.ActivePatterns()
	if err != nil {
		logging.Get(logging.CategoryLearning).Warn("failed to load active patterns: %v", err)
		return nil
	}
	return patterns
}

func deepSignal(deep *deepAnalysis) *score.DeepSignal {
	if deep == nil {
		return nil
	}
	return &score.DeepSignal{Severity: deep.Severity, BiasTypes: deep.BiasTypes}
}
