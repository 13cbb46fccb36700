package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsVisit(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go":           "package a\n\nfunc A() {}\n",
		"a_test.go":      "package a\n\n\nfunc TestA() {}\n",
		"README.md":      "Converts units  between\nscales.\n",
		"extra.yaml":     "quantities:\n  - quantity: length\n    units:\n      - {name: furlong, factor: 201.168}\n      - {name: chain, factor: 20.1168}\n",
		"dox4free.yaml":  "format:\n  exponent_digits: 6\n",
		"bin/out.go":     "package skipped\n",
		"_examples/x.md": "not counted\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	var st stats
	require.NoError(t, filepath.WalkDir(dir, st.visit))
	assert.Equal(t, 2, st.prodLines)
	assert.Equal(t, 2, st.testLines)
	assert.Equal(t, 4, st.docWords)
	assert.Equal(t, 1, st.catalogs)
	assert.Equal(t, 2, st.catalogUnits)
}

func TestNonBlankLines(t *testing.T) {
	assert.Equal(t, 0, nonBlankLines(nil))
	assert.Equal(t, 2, nonBlankLines([]byte("a\n \t\r\nb")))
}
