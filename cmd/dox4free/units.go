// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/dox4free/internal/format"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units [QUANTITY]",
	Short: "List the known units",
	Long: `Units lists every quantity and its units, or only the units of
QUANTITY. Each unit is shown with its identifier, display name, symbol
and its value in the quantity's base unit. Units added with --catalog
are included.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func init() {
	unitsCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	quantities := engine.Catalog().Quantities()
	if len(args) == 1 {
		q, err := types.ParseQuantity(args[0])
		if err != nil {
			return err
		}
		quantities = []types.Quantity{q}
	}
	return formatUnitsOutput(cmd.OutOrStdout(), engine.Catalog(), quantities, jsonOutput)
}

func formatUnitsOutput(w io.Writer, catalog *units.Catalog, quantities []types.Quantity, jsonOutput bool) error {
	if jsonOutput {
		spec := catalog.Spec()
		var out units.CatalogSpec
		for _, qs := range spec.Quantities {
			for _, q := range quantities {
				if qs.Quantity == q {
					out.Quantities = append(out.Quantities, qs)
				}
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	heading := lipgloss.NewStyle().Bold(true)
	for i, q := range quantities {
		t, ok := catalog.Table(q)
		if !ok {
			return fmt.Errorf("no units for %s", q)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		base := t.Base()
		fmt.Fprintln(w, heading.Render(fmt.Sprintf("%s (base: %s)", format.Title(string(q)), base.Name)))

		rows := make([][]string, 0, t.Len())
		for _, u := range t.Units() {
			rows = append(rows, []string{u.Name, format.DisplayName(u), u.Symbol, describeRule(u)})
		}
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("UNIT", "NAME", "SYMBOL", "IN "+baseLabel(base)).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().Bold(true).Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		fmt.Fprintln(w, tbl.Render())
	}
	return nil
}

// describeRule shows what one unit is worth in the base unit, or the
// conversion formula for affine scales.
func describeRule(u types.Unit) string {
	switch r := u.Rule.(type) {
	case types.Linear:
		return num(r.Scale())
	case types.Affine:
		return fmt.Sprintf("(x - %s) × %s/%s + %s",
			num(r.Offset), num(r.Num), num(r.Den), num(r.BaseOffset))
	}
	return "?"
}

func baseLabel(base types.Unit) string {
	if base.Symbol != "" {
		return base.Symbol
	}
	return base.Name
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
