// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dox4free/pkg/types"
)

// File is the on-disk representation of a batch of conversion requests.
// A request without a quantity has it inferred from its unit names.
//
//	requests:
//	  - {quantity: length, value: "1", from: meter, to: foot}
//	  - {value: "0", from: celsius, to: fahrenheit}
type File struct {
	Requests []types.Request `yaml:"requests" json:"requests"`
}

// ReadFile loads a batch file from disk. YAML and JSON are both accepted.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	if len(f.Requests) == 0 {
		return nil, fmt.Errorf("batch file %s has no requests", path)
	}
	return &f, nil
}

// WriteFile saves requests to a YAML batch file.
func WriteFile(path string, requests []types.Request) error {
	data, err := yaml.Marshal(&File{Requests: requests})
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
