// truthlens is the command-line surface for the TruthLens bias
// detection engine.
//
//	truthlens scan "text"          - scan for structural distortion
//	truthlens batch items.json     - scan many texts concurrently
//	truthlens correct "text"       - scan then rewrite without the bias
//	truthlens patterns             - list active detection patterns
//	truthlens audit recent|verify  - inspect the audit chain
//	truthlens stats                - engine and learning ring status
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"truthlens/internal/audit"
	"truthlens/internal/cache"
	"truthlens/internal/config"
	"truthlens/internal/core"
	"truthlens/internal/detect"
	"truthlens/internal/learning"
	"truthlens/internal/llm"
	"truthlens/internal/logging"
)

var (
	// Global flags
	flagDomain string
	flagMode   string
)

var rootCmd = &cobra.Command{
	Use:   "truthlens",
	Short: fmt.Sprintf("TruthLens - structural bias detection engine (core %s)", core.Version),
	Long: `TruthLens detects rhetorical manipulation and structural distortion in
text using a frozen deterministic core, optional LLM-powered deep
analysis, and a governed self-learning pattern ring. Every scan is
recorded in a SHA-256 hash-chained audit trail.

Scan modes:
  local  frozen core only (free, instant, deterministic)
  deep   LLM analysis (higher quality, 1 API call)
  full   both layers merged (recommended, enables learning)`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDomain, "domain", "general",
		"detection domain: general, legal, media, financial, auto")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "local",
		"scan mode: local, deep, full")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(statsCmd)
}

// app bundles the wired subsystems for a command invocation.
type app struct {
	settings config.Settings
	engine   *core.Engine
	chain    *audit.Chain
	ring     *learning.Ring
	client   llm.Client
	detector *detect.Detector
}

// newApp wires the engine, stores, LLM client and detector from the
// environment configuration.
func newApp() (*app, error) {
	settings := config.Load()

	chain, err := audit.NewChain(settings.AuditDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit chain: %w", err)
	}

	ring, err := learning.NewRing(settings.LearnedDBPath,
		settings.PatternActivationThreshold, settings.PatternFalsePositiveLimit)
	if err != nil {
		chain.Close()
		return nil, fmt.Errorf("failed to open learning ring: %w", err)
	}
	ring.SetAuditLogger(func(eventType string, data map[string]any) (string, error) {
		return chain.Log(eventType, data, core.Version)
	})

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider: settings.LLMProvider,
		APIKey:   settings.GeminiAPIKey,
		Model:    settings.GeminiModel,
	})
	if err != nil {
		chain.Close()
		ring.Close()
		return nil, err
	}
	if settings.GeminiAPIKey == "" {
		logging.Boot("GEMINI_API_KEY not set; deep and full scans fall back to local-only")
	}

	engine := core.NewEngine()
	scanCache := cache.New[detect.Result](
		secondsToDuration(settings.CacheTTLSeconds), settings.CacheMaxEntries)

	return &app{
		settings: settings,
		engine:   engine,
		chain:    chain,
		ring:     ring,
		client:   client,
		detector: detect.New(engine, client, ring, chain, scanCache),
	}, nil
}

func (a *app) close() {
	a.ring.Close()
	a.chain.Close()
}

// readText returns the first positional argument, or stdin when the
// argument is absent or "-".
func readText(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no text provided")
	}
	return string(data), nil
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
