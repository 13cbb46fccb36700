// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dox4free CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dox4free/internal/convert"
	"github.com/pdiddy/dox4free/internal/logger"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Loaded by the root command before any subcommand runs.
var (
	cfg           types.Config
	engine        *convert.Engine
	closeLogger   = func() error { return nil }
	configMessage string
)

// rootCmd is the base command for the dox4free CLI.
var rootCmd = &cobra.Command{
	Use:   "dox4free",
	Short: "Convert values between units of measurement",
	Long: `dox4free converts magnitudes between units of length, mass, area,
volume, time, energy and temperature.

Convert a single value with convert, list the known units with units,
run a file of conversions with batch, write the unit catalog with export,
or open the interactive converter with tui.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dox4free.yaml or ~/.config/dox4free/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write debug logs (to log.file, or stderr when unset)")
	rootCmd.PersistentFlags().StringSlice("catalog", nil, "YAML catalog overlay adding units (repeatable)")

	_ = viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dox4free")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dox4free"))
		}
	}

	setDefaults(types.DefaultConfig())

	viper.SetEnvPrefix("DOX4FREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configMessage = ""
	if err := viper.ReadInConfig(); err == nil {
		configMessage = viper.ConfigFileUsed()
		fmt.Fprintln(os.Stderr, "Using config file:", configMessage)
	}
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(d types.Config) {
	viper.SetDefault("format.small_threshold", d.Format.SmallThreshold)
	viper.SetDefault("format.large_threshold", d.Format.LargeThreshold)
	viper.SetDefault("format.exponent_digits", d.Format.ExponentDigits)
	viper.SetDefault("format.significant_digits", d.Format.SignificantDigits)
	viper.SetDefault("validation.reject_negative", d.Validation.RejectNegative)
	viper.SetDefault("lookup.fold_case", d.Lookup.FoldCase)
	viper.SetDefault("catalog.files", d.Catalog.Files)
	viper.SetDefault("log.debug", d.Log.Debug)
	viper.SetDefault("log.file", d.Log.File)
	viper.SetDefault("tui.debounce", d.TUI.Debounce)
}

// setup loads the configuration, starts the logger and builds the engine.
func setup(cmd *cobra.Command, args []string) error {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	overlays, _ := cmd.Flags().GetStringSlice("catalog")
	c.Catalog.Files = append(c.Catalog.Files, overlays...)

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cleanup, err := logger.Setup(c.Log)
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	closeLogger = cleanup

	catalog, err := units.Load(c.Catalog.Files, units.WithFoldCase(c.Lookup.FoldCase))
	if err != nil {
		return fmt.Errorf("loading unit catalog: %w", err)
	}

	cfg = c
	engine = convert.NewFromConfig(c, catalog)
	logger.L().Debug("cli.ready",
		"command", cmd.Name(),
		"config", configMessage,
		"log_file", logger.Path(),
		"overlays", c.Catalog.Files,
		"fold_case", c.Lookup.FoldCase,
		"reject_negative", c.Validation.RejectNegative,
	)
	return nil
}

func main() {
	err := rootCmd.Execute()
	if cerr := closeLogger(); cerr != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
