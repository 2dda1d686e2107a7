package main

import (
	"github.com/spf13/cobra"

	"truthlens/internal/audit"
	"truthlens/internal/core"
	"truthlens/internal/logging"
)

var (
	flagAuditLimit int
	flagEventType  string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the SHA-256 hash-chained audit trail",
}

var auditRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent audit chain entries, newest first",
	RunE:  runAuditRecent,
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify chain integrity by recomputing hash links",
	Long: `Walks the chain oldest-first and confirms each entry's hash matches
its content and links to the previous entry. Reports any broken links.
The verification itself is appended to the chain.`,
	RunE: runAuditVerify,
}

func init() {
	auditRecentCmd.Flags().IntVar(&flagAuditLimit, "limit", 20, "number of entries (1-100)")
	auditRecentCmd.Flags().StringVar(&flagEventType, "event-type", "",
		"filter by event type (e.g. scan_local, correction)")
	auditVerifyCmd.Flags().IntVar(&flagAuditLimit, "limit", 100, "number of entries to verify (1-1000)")

	auditCmd.AddCommand(auditRecentCmd)
	auditCmd.AddCommand(auditVerifyCmd)
}

func runAuditRecent(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	entries, err := a.chain.Recent(flagAuditLimit, flagEventType)
	if err != nil {
		return err
	}
	total, err := a.chain.Count()
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"entries":     entries,
		"total_count": total,
	})
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.chain.Verify(flagAuditLimit)
	if err != nil {
		return err
	}

	if _, err := a.chain.Log(audit.EventChainVerified, map[string]any{
		"verified":        result.Verified,
		"entries_checked": result.EntriesChecked,
		"broken_links":    len(result.BrokenLinks),
	}, core.Version); err != nil {
		logging.Get(logging.CategoryAudit).Warn("failed to log verification: %v", err)
	}

	return printJSON(result)
}
