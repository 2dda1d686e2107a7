package main

import (
	"context"

	"github.com/spf13/cobra"

	"truthlens/internal/audit"
	"truthlens/internal/core"
	"truthlens/internal/correct"
	"truthlens/internal/detect"
	"truthlens/internal/logging"
)

var correctCmd = &cobra.Command{
	Use:   "correct [text]",
	Short: "Rewrite biased text while preserving factual content",
	Long: `Scans the text, then uses iterative LLM correction with
post-correction verification (up to 3 passes) to remove structural
distortion. Prints the corrected text, the changes made, diff spans and
the verification verdict. Reads from stdin when text is "-" or omitted.

The scan runs in full mode unless --mode overrides it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorrect,
}

func runCorrect(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	mode := flagMode
	if !cmd.Flags().Changed("mode") {
		mode = detect.ModeFull
	}

	scan, err := a.detector.Scan(ctx, text, flagDomain, mode)
	if err != nil {
		return err
	}

	corrector := correct.New(a.engine, a.client)
	result := corrector.Correct(ctx, text, scan, flagDomain)

	if _, err := a.chain.Log(audit.EventCorrection, map[string]any{
		"changes_count": len(result.ChangesMade),
		"bias_removed":  result.BiasRemoved,
		"confidence":    result.Confidence,
	}, core.Version); err != nil {
		logging.Get(logging.CategoryAudit).Warn("failed to log correction: %v", err)
	}

	return printJSON(result)
}
