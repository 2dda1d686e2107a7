// Package learning manages the outer ring of the two-ring architecture:
// patterns proposed by the LLM layer, staged, confirmed, activated and
// monitored for false positives. The frozen core holds the definitions;
// this package holds the expanding detection capability. Patterns can
// only extend detection, never redefine what a distortion is.
package learning

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"truthlens/internal/core"
	"truthlens/internal/logging"
)

// Governance defaults.
const (
	DefaultActivationThreshold = 5
	DefaultFalsePositiveLimit  = 0.15
)

// Pattern statuses.
const (
	StatusStaging     = "staging"
	StatusActive      = "active"
	StatusDeactivated = "deactivated"
)

// AuditFunc appends a learning event to the audit chain and returns the
// entry hash.
type AuditFunc func(eventType string, data map[string]any) (string, error)

// Pattern is a learned pattern with its full governance state.
type Pattern struct {
	ID               string  `json:"pattern_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	PITTier          int     `json:"pit_tier"`
	Severity         string  `json:"severity"`
	Principle        string  `json:"principle"`
	Regex            string  `json:"regex"`
	Status           string  `json:"status"`
	Confirmations    int     `json:"confirmations"`
	FalsePositives   int     `json:"false_positives"`
	TotalEvaluations int     `json:"total_evaluations"`
	ProposedAt       string  `json:"proposed_at"`
	ActivatedAt      *string `json:"activated_at"`
	DeactivatedAt    *string `json:"deactivated_at"`
	SourceScanHash   string  `json:"source_scan_hash"`
}

// Proposal is the input to Propose.
type Proposal struct {
	ID             string
	Name           string
	Description    string
	PITTier        int
	Severity       string
	Principle      string
	Regex          string
	SourceScanHash string
}

// ProposalResult reports what the ring did with a proposal.
type ProposalResult struct {
	Accepted      bool   `json:"accepted"`
	Action        string `json:"action,omitempty"` // "proposed" | "confirmed" | "activated"
	Reason        string `json:"reason,omitempty"`
	PatternID     string `json:"pattern_id,omitempty"`
	Confirmations int    `json:"confirmations,omitempty"`
	Threshold     int    `json:"threshold,omitempty"`
}

// FalsePositiveResult reports the outcome of a false positive report.
type FalsePositiveResult struct {
	Action         string `json:"action"` // "recorded" | "deactivated"
	PatternID      string `json:"pattern_id,omitempty"`
	FalsePositives int    `json:"false_positives,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// Ring manages the pattern lifecycle:
// propose, stage, confirm, activate, monitor, deactivate if bad.
// Every state transition is logged to the audit chain when one is wired.
type Ring struct {
	db                  *sql.DB
	dbPath              string
	activationThreshold int
	fpLimit             float64

	mu      sync.Mutex
	auditFn AuditFunc
}

// NewRing creates or opens the learned pattern database. Non-positive
// threshold or limit select the defaults.
func NewRing(dbPath string, activationThreshold int, fpLimit float64) (*Ring, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path required")
	}
	if activationThreshold <= 0 {
		activationThreshold = DefaultActivationThreshold
	}
	if fpLimit <= 0 {
		fpLimit = DefaultFalsePositiveLimit
	}

	logging.Get(logging.CategoryLearning).Info("opening learning ring at %s", dbPath)

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	r := &Ring{
		db:                  db,
		dbPath:              dbPath,
		activationThreshold: activationThreshold,
		fpLimit:             fpLimit,
	}
	if err := r.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return r, nil
}

func (r *Ring) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS learned_patterns (
		pattern_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		pit_tier INTEGER NOT NULL,
		severity TEXT NOT NULL,
		principle TEXT NOT NULL,
		regex TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'staging',
		confirmations INTEGER NOT NULL DEFAULT 1,
		false_positives INTEGER NOT NULL DEFAULT 0,
		total_evaluations INTEGER NOT NULL DEFAULT 0,
		proposed_at TEXT NOT NULL,
		activated_at TEXT,
		deactivated_at TEXT,
		source_scan_hash TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_learned_status ON learned_patterns(status);
	`
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create learned_patterns table: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (r *Ring) Close() error {
	return r.db.Close()
}

// SetAuditLogger wires in the audit chain. Called once at startup.
func (r *Ring) SetAuditLogger(fn AuditFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auditFn = fn
}

func (r *Ring) audit(eventType string, data map[string]any) {
	if r.auditFn == nil {
		return
	}
	if _, err := r.auditFn(eventType, data); err != nil {
		logging.Get(logging.CategoryLearning).Warn("audit log failed for %s: %v", eventType, err)
	}
}

// Propose submits a pattern discovered by the LLM layer.
//
// Governance: the PIT tier must already exist (1, 2 or 3), the severity
// must be a known level, and resubmitting an existing pattern ID counts
// as an independent confirmation. A staging pattern that reaches the
// activation threshold is activated immediately.
func (r *Ring) Propose(p Proposal) (ProposalResult, error) {
	if core.TierByNumber(p.PITTier) == nil {
		return ProposalResult{
			Accepted: false,
			Reason:   fmt.Sprintf("PIT tier %d does not exist. Cannot create new tiers.", p.PITTier),
		}, nil
	}
	switch p.Severity {
	case core.SeverityLow, core.SeverityModerate, core.SeverityHigh, core.SeverityCritical:
	default:
		return ProposalResult{
			Accepted: false,
			Reason:   fmt.Sprintf("Invalid severity: %s", p.Severity),
		}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	r.mu.Lock()
	defer r.mu.Unlock()

	var status string
	var confirmations int
	row := r.db.QueryRow(
		"SELECT status, confirmations FROM learned_patterns WHERE pattern_id = ?", p.ID)
	switch err := row.Scan(&status, &confirmations); err {
	case nil:
		confirmations++
		if _, err := r.db.Exec(
			"UPDATE learned_patterns SET confirmations = ? WHERE pattern_id = ?",
			confirmations, p.ID); err != nil {
			return ProposalResult{}, fmt.Errorf("failed to record confirmation: %w", err)
		}

		r.audit("pattern_confirmed", map[string]any{
			"pattern_id":       p.ID,
			"confirmations":    confirmations,
			"source_scan_hash": p.SourceScanHash,
		})

		if status == StatusStaging && confirmations >= r.activationThreshold {
			return r.activate(p.ID)
		}
		return ProposalResult{
			Accepted:      true,
			Action:        "confirmed",
			Confirmations: confirmations,
			Threshold:     r.activationThreshold,
		}, nil

	case sql.ErrNoRows:
		if _, err := r.db.Exec(
			`INSERT INTO learned_patterns
			 (pattern_id, name, description, pit_tier, severity, principle, regex,
			  status, confirmations, false_positives, total_evaluations,
			  proposed_at, source_scan_hash)
			 VALUES (?, ?, ?, ?, ?, ?, ?, 'staging', 1, 0, 0, ?, ?)`,
			p.ID, p.Name, p.Description, p.PITTier, p.Severity, p.Principle,
			p.Regex, now, p.SourceScanHash); err != nil {
			return ProposalResult{}, fmt.Errorf("failed to stage pattern: %w", err)
		}

		r.audit("pattern_proposed", map[string]any{
			"pattern_id":       p.ID,
			"name":             p.Name,
			"pit_tier":         p.PITTier,
			"severity":         p.Severity,
			"source_scan_hash": p.SourceScanHash,
		})

		logging.Learning("staged new pattern %s (tier %d, %s)", p.ID, p.PITTier, p.Severity)
		return ProposalResult{
			Accepted:      true,
			Action:        "proposed",
			Confirmations: 1,
			Threshold:     r.activationThreshold,
		}, nil

	default:
		return ProposalResult{}, fmt.Errorf("failed to look up pattern: %w", err)
	}
}

// activate promotes a staging pattern that reached the threshold.
// Caller holds the lock.
func (r *Ring) activate(patternID string) (ProposalResult, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.Exec(
		"UPDATE learned_patterns SET status = 'active', activated_at = ? WHERE pattern_id = ?",
		now, patternID); err != nil {
		return ProposalResult{}, fmt.Errorf("failed to activate pattern: %w", err)
	}

	r.audit("pattern_activated", map[string]any{
		"pattern_id":   patternID,
		"activated_at": now,
	})

	logging.Learning("activated pattern %s", patternID)
	return ProposalResult{
		Accepted:  true,
		Action:    "activated",
		PatternID: patternID,
	}, nil
}

// ReportFalsePositive records a false positive against a learned
// pattern. An active pattern whose FP rate exceeds the limit is
// deactivated.
func (r *Ring) ReportFalsePositive(patternID string) (FalsePositiveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fps, total int
	var status string
	row := r.db.QueryRow(
		"SELECT false_positives, total_evaluations, status FROM learned_patterns WHERE pattern_id = ?",
		patternID)
	if err := row.Scan(&fps, &total, &status); err != nil {
		if err == sql.ErrNoRows {
			return FalsePositiveResult{}, fmt.Errorf("pattern %s not found", patternID)
		}
		return FalsePositiveResult{}, fmt.Errorf("failed to look up pattern: %w", err)
	}

	fps++
	if _, err := r.db.Exec(
		"UPDATE learned_patterns SET false_positives = ? WHERE pattern_id = ?",
		fps, patternID); err != nil {
		return FalsePositiveResult{}, fmt.Errorf("failed to record false positive: %w", err)
	}

	if total > 0 && float64(fps)/float64(total) > r.fpLimit && status == StatusActive {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		if _, err := r.db.Exec(
			"UPDATE learned_patterns SET status = 'deactivated', deactivated_at = ? WHERE pattern_id = ?",
			now, patternID); err != nil {
			return FalsePositiveResult{}, fmt.Errorf("failed to deactivate pattern: %w", err)
		}

		r.audit("pattern_deactivated", map[string]any{
			"pattern_id":     patternID,
			"reason":         "false_positive_threshold_exceeded",
			"fp_rate":        float64(fps) / float64(total),
			"deactivated_at": now,
		})

		logging.Learning("deactivated pattern %s (fp rate %d/%d)", patternID, fps, total)
		return FalsePositiveResult{
			Action:    "deactivated",
			PatternID: patternID,
			Reason:    fmt.Sprintf("FP rate %d/%d exceeds limit %.2f", fps, total, r.fpLimit),
		}, nil
	}

	return FalsePositiveResult{Action: "recorded", FalsePositives: fps}, nil
}

// RecordEvaluation increments the evaluation count for a pattern. The
// count is the denominator of the false positive rate.
func (r *Ring) RecordEvaluation(patternID string) error {
	if _, err := r.db.Exec(
		"UPDATE learned_patterns SET total_evaluations = total_evaluations + 1 WHERE pattern_id = ?",
		patternID); err != nil {
		return fmt.Errorf("failed to record evaluation: %w", err)
	}
	return nil
}

// ActivePatterns returns active learned patterns as StructuralPattern
// values compatible with the frozen core engine. Each learned pattern
// carries a single regex indicator with MinMatches 1.
func (r *Ring) ActivePatterns() ([]*core.StructuralPattern, error) {
	rows, err := r.db.Query(
		`SELECT pattern_id, name, description, pit_tier, severity, principle, regex
		 FROM learned_patterns WHERE status = 'active'`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active patterns: %w", err)
	}
	defer rows.Close()

	var patterns []*core.StructuralPattern
	for rows.Next() {
		var id, name, desc, severity, principle, regex string
		var tier int
		if err := rows.Scan(&id, &name, &desc, &tier, &severity, &principle, &regex); err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		patterns = append(patterns, &core.StructuralPattern{
			ID:          id,
			Name:        name,
			Description: desc,
			PITTier:     tier,
			Severity:    severity,
			Principle:   principle,
			Indicators:  []string{regex},
			MinMatches:  1,
		})
	}
	return patterns, rows.Err()
}

// AllPatterns returns every learned pattern with full governance
// metadata, newest first.
func (r *Ring) AllPatterns() ([]Pattern, error) {
	rows, err := r.db.Query(
		`SELECT pattern_id, name, description, pit_tier, severity, principle,
		        regex, status, confirmations, false_positives, total_evaluations,
		        proposed_at, activated_at, deactivated_at, source_scan_hash
		 FROM learned_patterns ORDER BY proposed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	var patterns []Pattern
	for rows.Next() {
		var p Pattern
		var activatedAt, deactivatedAt sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PITTier, &p.Severity,
			&p.Principle, &p.Regex, &p.Status, &p.Confirmations, &p.FalsePositives,
			&p.TotalEvaluations, &p.ProposedAt, &activatedAt, &deactivatedAt,
			&p.SourceScanHash); err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		if activatedAt.Valid {
			p.ActivatedAt = &activatedAt.String
		}
		if deactivatedAt.Valid {
			p.DeactivatedAt = &deactivatedAt.String
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// StatusCounts returns the number of patterns per status.
func (r *Ring) StatusCounts() (map[string]int, error) {
	rows, err := r.db.Query(
		"SELECT status, COUNT(*) FROM learned_patterns GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count patterns: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
