// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/dox4free/internal/logger"
	"github.com/pdiddy/dox4free/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive converter",
	Long: `Tui opens a full-screen converter. Tab switches quantity, the arrow
keys change the source unit, ctrl+n and ctrl+p change the target unit and
ctrl+s swaps them. Results update once typing pauses for tui.debounce.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Deps{
			Engine:   engine,
			Debounce: cfg.TUI.Debounce,
			Logger:   logger.L(),
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
