// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the unit catalog and batch reports as YAML, JSON
// or MessagePack.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dox4free/internal/batch"
	"github.com/pdiddy/dox4free/internal/units"
)

// Format is an export encoding.
type Format string

const (
	YAML    Format = "yaml"
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// Formats returns the supported formats in the order they are listed to
// users.
func Formats() []Format {
	return []Format{YAML, JSON, MsgPack}
}

// ParseFormat resolves a format name. "yml" and "mpk" are accepted as
// aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "msgpack", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want %s)", s, formatList())
}

// formatList joins the format names for messages: "yaml, json or msgpack".
func formatList() string {
	fs := Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// Ext returns the file extension conventionally used for f.
func (f Format) Ext() string {
	switch f {
	case MsgPack:
		return ".mpk"
	default:
		return "." + string(f)
	}
}

// Binary reports whether f should not be written to a terminal.
func (f Format) Binary() bool {
	return f == MsgPack
}

// Catalog writes the serialisable form of c to w.
func Catalog(w io.Writer, c *units.Catalog, f Format) error {
	if err := encode(w, c.Spec(), f); err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}
	return nil
}

// Report writes a batch report to w.
func Report(w io.Writer, r batch.Report, f Format) error {
	if err := encode(w, r, f); err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}
	return nil
}

// ToFile writes through write into path, creating parent directories. The
// file is written to a temporary name and renamed on success.
func ToFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := write(tmp)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	case MsgPack:
		if err := msgpack.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("marshaling msgpack: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported export format %q", f)
}
