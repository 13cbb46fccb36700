// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// FormatConfig holds the display thresholds shared by every quantity that
// uses exponential notation. Temperature keeps its own rule.
type FormatConfig struct {
	// SmallThreshold: non-zero results below it are shown in exponential
	// notation (default 1e-4).
	SmallThreshold float64 `json:"small_threshold" yaml:"small_threshold" mapstructure:"small_threshold"`

	// LargeThreshold: results above it are shown in exponential notation
	// (default 1e7).
	LargeThreshold float64 `json:"large_threshold" yaml:"large_threshold" mapstructure:"large_threshold"`

	// ExponentDigits is the mantissa precision in exponential notation (default 6).
	ExponentDigits int `json:"exponent_digits" yaml:"exponent_digits" mapstructure:"exponent_digits"`

	// SignificantDigits bounds fractional results (default 8).
	SignificantDigits int `json:"significant_digits" yaml:"significant_digits" mapstructure:"significant_digits"`
}

// Rule returns the general-purpose FormatRule for these settings.
func (c FormatConfig) Rule() FormatRule {
	return FormatRule{
		Scientific:        true,
		SmallThreshold:    c.SmallThreshold,
		LargeThreshold:    c.LargeThreshold,
		ExponentDigits:    c.ExponentDigits,
		SignificantDigits: c.SignificantDigits,
	}
}

// ValidationConfig holds the domain-validity policy.
type ValidationConfig struct {
	// RejectNegative rejects negative magnitudes for every quantity other
	// than temperature, which always uses absolute zero as its floor.
	RejectNegative bool `json:"reject_negative" yaml:"reject_negative" mapstructure:"reject_negative"`
}

// LookupConfig holds unit-lookup settings.
type LookupConfig struct {
	// FoldCase makes unit lookups case-insensitive. Off by default: unit
	// names are matched exactly.
	FoldCase bool `json:"fold_case" yaml:"fold_case" mapstructure:"fold_case"`
}

// CatalogConfig lists YAML overlays that add units to the built-in tables.
type CatalogConfig struct {
	Files []string `json:"files" yaml:"files" mapstructure:"files"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Debug enables debug-level records with source locations.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`

	// File is the log file path. When empty, records go to stderr with
	// Debug set and are discarded otherwise.
	File string `json:"file" yaml:"file" mapstructure:"file"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// Debounce is the quiet period after the last edit before the TUI
	// converts (default 300ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce" mapstructure:"debounce"`
}

// Config groups all settings for the dox4free tool.
type Config struct {
	Format     FormatConfig     `json:"format" yaml:"format" mapstructure:"format"`
	Validation ValidationConfig `json:"validation" yaml:"validation" mapstructure:"validation"`
	Lookup     LookupConfig     `json:"lookup" yaml:"lookup" mapstructure:"lookup"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
	TUI        TUIConfig        `json:"tui" yaml:"tui" mapstructure:"tui"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Format: FormatConfig{
			SmallThreshold:    1e-4,
			LargeThreshold:    1e7,
			ExponentDigits:    6,
			SignificantDigits: 8,
		},
		TUI: TUIConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	f := c.Format
	if f.SmallThreshold <= 0 {
		return fmt.Errorf("format.small_threshold must be positive, got %g", f.SmallThreshold)
	}
	if f.LargeThreshold <= f.SmallThreshold {
		return fmt.Errorf("format.large_threshold (%g) must exceed format.small_threshold (%g)",
			f.LargeThreshold, f.SmallThreshold)
	}
	if f.ExponentDigits < 0 || f.ExponentDigits > 17 {
		return fmt.Errorf("format.exponent_digits must be between 0 and 17, got %d", f.ExponentDigits)
	}
	if f.SignificantDigits < 1 || f.SignificantDigits > 17 {
		return fmt.Errorf("format.significant_digits must be between 1 and 17, got %d", f.SignificantDigits)
	}
	if c.TUI.Debounce < 0 {
		return fmt.Errorf("tui.debounce must not be negative, got %s", c.TUI.Debounce)
	}
	return nil
}
