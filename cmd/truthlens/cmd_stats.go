package main

import (
	"github.com/spf13/cobra"

	"truthlens/internal/core"
	"truthlens/internal/llm"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engine status, audit chain size and learning ring state",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	auditEntries, err := a.chain.Count()
	if err != nil {
		return err
	}
	counts, err := a.ring.StatusCounts()
	if err != nil {
		return err
	}

	var breakerState string
	if gc, ok := a.client.(*llm.GeminiClient); ok {
		breakerState = gc.Breaker().State()
	}

	return printJSON(map[string]any{
		"status":                   "operational",
		"core_version":             core.Version,
		"llm_provider":             a.settings.LLMProvider,
		"llm_breaker_state":        breakerState,
		"frozen_patterns":          len(a.engine.Patterns("auto")),
		"audit_entries":            auditEntries,
		"learned_patterns_active":  counts["active"],
		"learned_patterns_staging": counts["staging"],
		"learning_enabled":         true,
	})
}
