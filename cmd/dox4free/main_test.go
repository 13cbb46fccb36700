// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dox4free/internal/batch"
	"github.com/pdiddy/dox4free/internal/convert"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	require.NoError(t, closeLogger())
	resetFlags(rootCmd)
	return out.String(), err
}

// resetFlags restores every flag to its default so that runs do not leak
// into each other through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestFormatConvertOutput(t *testing.T) {
	catalog := units.Builtin()
	c, err := convert.New(catalog).Convert(types.Length, "1", "meter", "foot")
	require.NoError(t, err)

	tests := []struct {
		name   string
		symbol bool
		want   string
	}{
		{name: "names", want: "1 meter = 3.2808399 feet\n"},
		{name: "symbols", symbol: true, want: "1 m = 3.2808399 ft\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, formatConvertOutput(&buf, catalog, c, tt.symbol, false))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, formatConvertOutput(&buf, catalog, c, false, true))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "length", got["quantity"])
	assert.Equal(t, "1", got["value"])
	assert.Equal(t, "3.2808399", got["formatted"])
	assert.InDelta(t, 3.28084, got["result"], 1e-5)
}

func TestFormatUnitsOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatUnitsOutput(&buf, units.Builtin(), []types.Quantity{types.Temperature}, false))

	out := buf.String()
	assert.Contains(t, out, "Temperature (base: kelvin)")
	assert.Contains(t, out, "fahrenheit")
	assert.Contains(t, out, "°F")
	assert.Contains(t, out, "(x - 32) × 5/9 + 273.15")
	assert.NotContains(t, out, "meter")

	buf.Reset()
	require.NoError(t, formatUnitsOutput(&buf, units.Builtin(), []types.Quantity{types.Mass}, true))
	var spec units.CatalogSpec
	require.NoError(t, json.Unmarshal(buf.Bytes(), &spec))
	require.Len(t, spec.Quantities, 1)
	assert.Equal(t, types.Mass, spec.Quantities[0].Quantity)
	assert.Equal(t, "kilogram", spec.Quantities[0].Base)
}

func TestFormatHelp(t *testing.T) {
	assert.Equal(t, "yaml, json, msgpack", formatHelp())
	assert.Contains(t, exportCmd.Flags().Lookup("format").Usage, formatHelp())
	assert.Contains(t, batchCmd.Flags().Lookup("format").Usage, formatHelp())
}

func TestDescribeRule(t *testing.T) {
	assert.Equal(t, "0.3048", describeRule(types.Unit{Rule: types.Linear{Factor: 0.3048}}))
	assert.Equal(t, "0.001", describeRule(types.Unit{Rule: types.Linear{Factor: 1, Divisor: 1000}}))
	assert.Equal(t, "?", describeRule(types.Unit{}))
}

func TestCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Equal(t, "dox4free dev\n", out)
	})

	t.Run("convert with inferred quantity", func(t *testing.T) {
		out, err := execute(t, "convert", "0", "celsius", "fahrenheit")
		require.NoError(t, err)
		assert.Equal(t, "0 degrees Celsius = 32 degrees Fahrenheit\n", out)
	})

	t.Run("convert negative value", func(t *testing.T) {
		out, err := execute(t, "convert", "--quantity", "temp", "--", "-40", "celsius", "fahrenheit")
		require.NoError(t, err)
		assert.Equal(t, "-40 degrees Celsius = -40 degrees Fahrenheit\n", out)
	})

	t.Run("convert error", func(t *testing.T) {
		_, err := execute(t, "convert", "--quantity", "mass", "5", "kilogram", "parsec")
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrUnknownUnit)
	})

	t.Run("catalog overlay", func(t *testing.T) {
		overlay := filepath.Join(t.TempDir(), "extra.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte(`quantities:
  - quantity: length
    units:
      - name: furlong
        factor: 201.168
`), 0o644))

		out, err := execute(t, "convert", "--catalog", overlay, "--quantity", "length", "1", "furlong", "meter")
		require.NoError(t, err)
		assert.Equal(t, "1 furlong = 201.168 meters\n", out)
	})

	t.Run("batch", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "batch.yaml")
		report := filepath.Join(dir, "report.yaml")
		require.NoError(t, batch.WriteFile(in, []types.Request{
			{Quantity: types.Time, Value: "2", From: "hour", To: "minute"},
			{Quantity: types.Time, Value: "2", From: "hour", To: "fortnight"},
		}))

		out, err := execute(t, "batch", in, "--out", report, "--format", "yaml")
		require.Error(t, err, "a failed request fails the command")
		assert.Contains(t, err.Error(), "1 of 2 request(s) failed")
		assert.Contains(t, out, "converted: #1 2 hour = 120 minute")
		assert.Contains(t, out, "Report written to "+report)

		data, err := os.ReadFile(report)
		require.NoError(t, err)
		var got batch.Report
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, 1, got.Converted)
		assert.Equal(t, 1, got.Failed)
		assert.NotEmpty(t, got.RunID)
	})

	t.Run("export refuses binary on stdout", func(t *testing.T) {
		_, err := execute(t, "export", "--format", "msgpack")
		assert.ErrorContains(t, err, "use --out")
	})

	t.Run("export to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		_, err := execute(t, "export", "--format", "json", "--out", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var spec units.CatalogSpec
		require.NoError(t, json.Unmarshal(data, &spec))
		assert.Len(t, spec.Quantities, len(types.Quantities()))
	})

	t.Run("export adds the format extension", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "catalog")
		_, err := execute(t, "export", "--format", "msgpack", "--out", base)
		require.NoError(t, err)
		assert.FileExists(t, base+".mpk")
	})
}
