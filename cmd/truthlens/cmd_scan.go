package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"truthlens/internal/detect"
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Scan text for structural bias and distortion patterns",
	Long: `Scans text through the selected mode and prints the full result as
JSON, including the truth score, flags, PIT tier analysis and score
breakdown. Reads from stdin when text is "-" or omitted.

Examples:
  truthlens scan "All experts agree this is settled."
  truthlens scan --mode full --domain legal "Plainly frivolous claims."
  cat article.txt | truthlens scan --domain media -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.detector.Scan(context.Background(), text, flagDomain, flagMode)
	if err != nil {
		return err
	}
	return printJSON(result)
}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Scan up to 100 texts concurrently",
	Long: `Reads a JSON array of scan items and scans them concurrently,
preserving input order. Failed items yield a placeholder result instead
of failing the batch. Reads from stdin when file is "-" or omitted.

Input format:
  [{"text": "...", "domain": "general", "mode": "local"}, ...]

Items inherit --domain and --mode when their fields are empty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = readBytesFromStdin()
	}
	if err != nil {
		return err
	}

	var items []detect.BatchItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse batch input: %w", err)
	}
	for i := range items {
		if items[i].Domain == "" {
			items[i].Domain = flagDomain
		}
		if items[i].Mode == "" {
			items[i].Mode = flagMode
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.detector.ScanBatch(context.Background(), items)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func readBytesFromStdin() ([]byte, error) {
	text, err := readText(nil)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
