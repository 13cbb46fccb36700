// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dox4free/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the unit catalog to YAML, JSON, or MessagePack",
	Long: `Export writes the unit catalog, including units added with --catalog,
to stdout or to --out. The YAML form can be edited and passed back with
--catalog as an overlay once the built-in units are removed from it.
An --out path without an extension gets the format's extension.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: "+formatHelp())
	exportCmd.Flags().StringP("out", "o", "", "output path (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if outPath == "" {
		if f.Binary() {
			return fmt.Errorf("refusing to write %s to stdout; use --out", f)
		}
		return export.Catalog(cmd.OutOrStdout(), engine.Catalog(), f)
	}

	if filepath.Ext(outPath) == "" {
		outPath += f.Ext()
	}
	if err := export.ToFile(outPath, func(w io.Writer) error {
		return export.Catalog(w, engine.Catalog(), f)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Catalog written to %s\n", outPath)
	return nil
}

// formatHelp lists the export formats for flag usage.
func formatHelp() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
