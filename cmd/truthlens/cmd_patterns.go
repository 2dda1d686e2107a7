package main

import (
	"github.com/spf13/cobra"

	"truthlens/internal/core"
)

var flagShowLearned bool

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List active detection patterns for a domain",
	Long: `Lists frozen core patterns (immutable, deterministic) and active
learned patterns (governance-approved expansions). Use --domain auto to
see all patterns across all domains, and --learned to include full
governance metadata for the learning ring.`,
	RunE: runPatterns,
}

var reportFPCmd = &cobra.Command{
	Use:   "report-fp [pattern-id]",
	Short: "Report a false positive against a learned pattern",
	Long: `Records a false positive for a learned pattern. An active pattern
whose false positive rate exceeds the configured limit is deactivated
automatically and the deactivation is logged to the audit chain.`,
	Args: cobra.ExactArgs(1),
	RunE: runReportFP,
}

func init() {
	patternsCmd.Flags().BoolVar(&flagShowLearned, "learned", false,
		"include staging and deactivated learned patterns with governance metadata")
	patternsCmd.AddCommand(reportFPCmd)
}

func runReportFP(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.ring.ReportFalsePositive(args[0])
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if flagShowLearned {
		patterns, err := a.ring.AllPatterns()
		if err != nil {
			return err
		}
		counts, err := a.ring.StatusCounts()
		if err != nil {
			return err
		}
		return printJSON(map[string]any{
			"core_version": core.Version,
			"total":        len(patterns),
			"active":       counts["active"],
			"staging":      counts["staging"],
			"deactivated":  counts["deactivated"],
			"patterns":     patterns,
		})
	}

	frozen := a.engine.Patterns(flagDomain)
	learned, err := a.ring.ActivePatterns()
	if err != nil {
		return err
	}

	all := make([]core.PatternInfo, 0, len(frozen)+len(learned))
	all = append(all, frozen...)
	for _, p := range learned {
		all = append(all, core.PatternInfo{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PITTier:     p.PITTier,
			Severity:    p.Severity,
			Principle:   p.Principle,
			Domain:      "learned",
		})
	}

	return printJSON(map[string]any{
		"domain":           flagDomain,
		"core_version":     core.Version,
		"frozen_patterns":  len(frozen),
		"learned_patterns": len(learned),
		"total_patterns":   len(all),
		"patterns":         all,
	})
}
