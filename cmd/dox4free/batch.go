// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dox4free/internal/batch"
	"github.com/pdiddy/dox4free/internal/export"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Run a file of conversions",
	Long: `Batch reads conversion requests from a YAML (or JSON) file and converts
each one, printing a converted or failed line per request and a summary.
Requests without a quantity have it inferred from their units:

  requests:
    - {quantity: length, value: "1", from: meter, to: foot}
    - {value: "0", from: celsius, to: fahrenheit}

With --out the full report (run ID, timestamp and every outcome) is written
in --format. The command exits non-zero when any request failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("out", "o", "", "write the batch report to this path")
	batchCmd.Flags().String("format", "yaml", "report format: "+formatHelp())

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	formatName, _ := cmd.Flags().GetString("format")

	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	file, err := batch.ReadFile(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := batch.Run(ctx, engine, file.Requests, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := export.ToFile(outPath, func(w io.Writer) error {
			return export.Report(w, report, f)
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d of %d request(s) failed", report.Failed, report.Total())
	}
	return nil
}
