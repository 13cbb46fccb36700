// Package main contains Mage build targets for dox4free developer tooling.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dox4free/pkg/types"
)

const (
	binDir     = "bin"
	binName    = "dox4free"
	cmdPkg     = "./cmd/dox4free"
	configFile = "dox4free.yaml"
)

// Init writes a dox4free.yaml holding the default settings. An existing
// file is left alone.
func Init() error {
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("%s already exists\n", configFile)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", configFile, err)
	}
	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	fmt.Printf("Wrote %s\n", configFile)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check lints, tests and builds.
func Check() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints Go production and test lines, Markdown words and the
// number of units defined in YAML catalog overlays.
func Stats() error {
	var st stats
	if err := filepath.WalkDir(".", st.visit); err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", st.prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", st.testLines)
	fmt.Printf("Words (documentation):          %d\n", st.docWords)
	fmt.Printf("Catalog overlays:               %d (%d units)\n", st.catalogs, st.catalogUnits)
	return nil
}

type stats struct {
	prodLines, testLines int
	docWords             int
	catalogs             int
	catalogUnits         int
}

// overlay matches the shape of a catalog overlay file; other YAML files
// decode to an empty list and are not counted.
type overlay struct {
	Quantities []struct {
		Units []yaml.Node `yaml:"units"`
	} `yaml:"quantities"`
}

func (st *stats) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() {
		name := d.Name()
		if path != "." && (name == binDir || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		return nil
	}

	ext := filepath.Ext(path)
	if ext != ".go" && ext != ".md" && ext != ".yaml" && ext != ".yml" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch ext {
	case ".go":
		n := nonBlankLines(data)
		if strings.HasSuffix(path, "_test.go") {
			st.testLines += n
		} else {
			st.prodLines += n
		}
	case ".md":
		st.docWords += len(bytes.Fields(data))
	default:
		var o overlay
		if yaml.Unmarshal(data, &o) != nil || len(o.Quantities) == 0 {
			return nil
		}
		st.catalogs++
		for _, q := range o.Quantities {
			st.catalogUnits += len(q.Units)
		}
	}
	return nil
}

func nonBlankLines(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
