package detect

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"truthlens/internal/core"
	"truthlens/internal/logging"
)

// MaxBatchSize bounds a single batch request.
const MaxBatchSize = 100

// BatchItem is one text to scan within a batch.
type BatchItem struct {
	Text   string `json:"text"`
	Domain string `json:"domain"`
	Mode   string `json:"mode"`
}

// BatchResult holds the outcome of a batch scan. BatchID correlates the
// individual results with the batch's audit entry.
type BatchResult struct {
	BatchID string   `json:"batch_id"`
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Scanned int      `json:"scanned"`
}

// ScanBatch scans up to MaxBatchSize items concurrently, preserving
// input order. A failed item yields a placeholder result with scan
// mode "error" instead of failing the whole batch.
func (d *Detector) ScanBatch(ctx context.Context, items []BatchItem) (BatchResult, error) {
	if len(items) == 0 {
		return BatchResult{BatchID: uuid.NewString(), Results: []Result{}}, nil
	}
	if len(items) > MaxBatchSize {
		return BatchResult{}, fmt.Errorf("batch size %d exceeds limit of %d", len(items), MaxBatchSize)
	}

	batchID := uuid.NewString()
	results := make([]Result, len(items))
	scanned := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxBatchSize)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := d.Scan(gctx, item.Text, item.Domain, item.Mode)
			if err != nil {
				logging.Get(logging.CategoryScan).Warn("batch item %d failed: %v", i, err)
				results[i] = errorResult()
				return nil
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	for _, r := range results {
		if r.ScanMode != "error" {
			scanned++
		}
	}

	if d.chain != nil {
		if _, err := d.chain.Log("scan_batch", map[string]any{
			"batch_id": batchID,
			"total":    len(items),
			"scanned":  scanned,
			"errors":   len(items) - scanned,
		}, core.Version); err != nil {
			logging.Get(logging.CategoryAudit).Warn("failed to log batch: %v", err)
		}
	}

	logging.Scan("batch %s complete: %d/%d scanned", batchID, scanned, len(items))
	return BatchResult{BatchID: batchID, Results: results, Total: len(items), Scanned: scanned}, nil
}

// errorResult is the placeholder for a failed batch item.
func errorResult() Result {
	return Result{
		KnowledgeType:     "unknown",
		BiasTypes:         []string{},
		PITTier:           "none",
		Severity:          core.SeverityNone,
		Explanation:       "Scan failed for this item.",
		Flags:             []core.Flag{},
		ScanMode:          "error",
		Source:            "error",
		CoreVersion:       core.Version,
		LearningProposals: nil,
	}
}
