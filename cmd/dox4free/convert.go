// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dox4free/internal/format"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert a value from one unit to another",
	Long: `Convert converts VALUE from unit FROM to unit TO. Unit names are the
identifiers listed by the units command (meter, nautical_mile, celsius).

The quantity is inferred from the two units unless --quantity names it.
Put -- before a negative value so it is not read as a flag:

  dox4free convert -- -40 celsius fahrenheit`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("quantity", "q", "", "quantity of the units (length, mass, area, volume, time, energy, temperature)")
	convertCmd.Flags().Bool("symbol", false, "print unit symbols instead of names")
	convertCmd.Flags().Bool("json", false, "output the conversion as JSON")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	quantity, _ := cmd.Flags().GetString("quantity")
	symbol, _ := cmd.Flags().GetBool("symbol")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	req := types.Request{Quantity: types.Quantity(quantity), Value: args[0], From: args[1], To: args[2]}
	c, err := engine.ConvertRequest(req)
	if err != nil {
		return err
	}
	return formatConvertOutput(cmd.OutOrStdout(), engine.Catalog(), c, symbol, jsonOutput)
}

func formatConvertOutput(w io.Writer, catalog *units.Catalog, c types.Conversion, symbol, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	from, _ := catalog.Lookup(c.Quantity, c.From)
	to, _ := catalog.Lookup(c.Quantity, c.To)
	input := strings.TrimSpace(c.Request.Value)

	if symbol {
		fmt.Fprintf(w, "%s = %s\n", format.Symbol(from, input), format.Symbol(to, c.Formatted))
		return nil
	}
	fmt.Fprintf(w, "%s = %s\n", format.Label(from, input), format.Label(to, c.Formatted))
	return nil
}
