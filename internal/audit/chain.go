// Package audit implements a SHA-256 hash-chained audit log backed by
// SQLite. Every scan, correction, pattern change and governance decision
// is appended; each entry references the previous entry's hash, so any
// after-the-fact modification is detectable via Verify. This is a local
// chain-of-custody log, not a distributed ledger.
package audit

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"truthlens/internal/logging"
)

// GenesisHash is the prev_hash of the first entry.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Event types appended to the chain.
const (
	EventScanLocal          = "scan_local"
	EventScanDeep           = "scan_deep"
	EventScanFull           = "scan_full"
	EventCorrection         = "correction"
	EventPatternProposed    = "pattern_proposed"
	EventPatternConfirmed   = "pattern_confirmed"
	EventPatternActivated   = "pattern_activated"
	EventPatternDeactivated = "pattern_deactivated"
	EventChainVerified      = "chain_verified"
)

// Entry is one audit chain record.
type Entry struct {
	ID          int64          `json:"id"`
	PrevHash    string         `json:"prev_hash"`
	Hash        string         `json:"hash"`
	EventType   string         `json:"event_type"`
	Data        map[string]any `json:"data"`
	Timestamp   string         `json:"timestamp"`
	CoreVersion string         `json:"core_version"`
}

// BrokenLink describes one integrity failure found during verification.
type BrokenLink struct {
	ID           int64  `json:"id"`
	Issue        string `json:"issue"` // "hash_mismatch" | "chain_break"
	Expected     string `json:"expected,omitempty"`
	Stored       string `json:"stored,omitempty"`
	ExpectedPrev string `json:"expected_prev,omitempty"`
	StoredPrev   string `json:"stored_prev,omitempty"`
}

// VerifyResult is the outcome of a chain integrity check.
type VerifyResult struct {
	Verified       bool         `json:"verified"`
	EntriesChecked int          `json:"entries_checked"`
	BrokenLinks    []BrokenLink `json:"broken_links"`
}

// Chain is the append-only, hash-chained audit logger.
type Chain struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// NewChain creates or opens the audit chain database.
func NewChain(dbPath string) (*Chain, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path required")
	}

	logging.Get(logging.CategoryAudit).Info("opening audit chain at %s", dbPath)

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

	c := &Chain{db: db, dbPath: dbPath}
	if err := c.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return c, nil
}

func (c *Chain) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audit_chain (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prev_hash TEXT NOT NULL,
		hash TEXT NOT NULL,
		event_type TEXT NOT NULL,
		data TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		core_version TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_event_type ON audit_chain(event_type);
	CREATE INDEX IF NOT EXISTS idx_timestamp ON audit_chain(timestamp);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create audit_chain table: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (c *Chain) Close() error {
	return c.db.Close()
}

// canonicalJSON serializes data deterministically. encoding/json writes
// map keys in sorted order, which is the canonical form the hash covers.
func canonicalJSON(data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize audit data: %w", err)
	}
	return string(b), nil
}

func entryHash(prevHash, eventType, dataStr, timestamp, coreVersion string) string {
	sum := sha256.Sum256([]byte(prevHash + eventType + dataStr + timestamp + coreVersion))
	return hex.EncodeToString(sum[:])
}

// Log appends an event to the chain and returns the new entry's hash.
func (c *Chain) Log(eventType string, data map[string]any, coreVersion string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dataStr, err := canonicalJSON(data)
	if err != nil {
		return "", err
	}

	prevHash := GenesisHash
	row := c.db.QueryRow("SELECT hash FROM audit_chain ORDER BY id DESC LIMIT 1")
	var last string
	switch err := row.Scan(&last); err {
	case nil:
		prevHash = last
	case sql.ErrNoRows:
	default:
		return "", fmt.Errorf("failed to read chain head: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	newHash := entryHash(prevHash, eventType, dataStr, timestamp, coreVersion)

	if _, err := c.db.Exec(
		`INSERT INTO audit_chain (prev_hash, hash, event_type, data, timestamp, core_version)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		prevHash, newHash, eventType, dataStr, timestamp, coreVersion,
	); err != nil {
		return "", fmt.Errorf("failed to append audit entry: %w", err)
	}

	logging.Get(logging.CategoryAudit).Debug("appended %s entry %s", eventType, newHash[:12])
	return newHash, nil
}

// Recent returns the newest entries first, optionally filtered by event
// type (empty string means all).
func (c *Chain) Recent(limit int, eventType string) ([]Entry, error) {
	query := `SELECT id, prev_hash, hash, event_type, data, timestamp, core_version
	          FROM audit_chain`
	args := []any{}
	if eventType != "" {
		query += " WHERE event_type = ?"
		args = append(args, eventType)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var dataStr string
		if err := rows.Scan(&e.ID, &e.PrevHash, &e.Hash, &e.EventType, &dataStr, &e.Timestamp, &e.CoreVersion); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if err := json.Unmarshal([]byte(dataStr), &e.Data); err != nil {
			return nil, fmt.Errorf("failed to decode audit data for entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Verify recomputes hashes over the oldest entries (up to limit) and
// checks the prev_hash linkage. Both failure kinds are reported: a
// recomputed hash that no longer matches the stored one, and a prev_hash
// that does not point at the preceding entry.
func (c *Chain) Verify(limit int) (VerifyResult, error) {
	rows, err := c.db.Query(
		`SELECT id, prev_hash, hash, event_type, data, timestamp, core_version
		 FROM audit_chain ORDER BY id ASC LIMIT ?`, limit)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	type rawEntry struct {
		id                                              int64
		prevHash, hash, eventType, dataStr, ts, version string
	}
	var raw []rawEntry
	for rows.Next() {
		var r rawEntry
		if err := rows.Scan(&r.id, &r.prevHash, &r.hash, &r.eventType, &r.dataStr, &r.ts, &r.version); err != nil {
			return VerifyResult{}, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{Verified: true, BrokenLinks: []BrokenLink{}}
	if len(raw) == 0 {
		return result, nil
	}

	for i, r := range raw {
		computed := entryHash(r.prevHash, r.eventType, r.dataStr, r.ts, r.version)
		if computed != r.hash {
			result.BrokenLinks = append(result.BrokenLinks, BrokenLink{
				ID:       r.id,
				Issue:    "hash_mismatch",
				Expected: computed,
				Stored:   r.hash,
			})
		}
		if i > 0 && r.prevHash != raw[i-1].hash {
			result.BrokenLinks = append(result.BrokenLinks, BrokenLink{
				ID:           r.id,
				Issue:        "chain_break",
				ExpectedPrev: raw[i-1].hash,
				StoredPrev:   r.prevHash,
			})
		}
	}
	result.EntriesChecked = len(raw)
	result.Verified = len(result.BrokenLinks) == 0
	return result, nil
}

// Count returns the total number of chain entries.
func (c *Chain) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM audit_chain").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return n, nil
}
