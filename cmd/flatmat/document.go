// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flatmat/matrix"
)

const (
	formatJSONC = "jsonc"
	formatYAML  = "yaml"
)

var (
	errUnknownFormat  = errors.New("unknown input format")
	errMissingOperand = errors.New("missing operand")
)

// document is the input file: operands as nested rows.
//
//	{
//	  // left operand
//	  "a": [[1, 2, 3], [4, 5, 6]],
//	  "b": [[1, 0], [0, 1], [1, 1]],
//	}
type document struct {
	A [][]float64 `json:"a" yaml:"a"`
	B [][]float64 `json:"b" yaml:"b"`
}

// formatFromPath picks the format from the file extension; JSONC otherwise.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSONC
	}
}

// parseDocument decodes data as JSONC (JSON with comments and trailing
// commas) or YAML.
func parseDocument(data []byte, format string) (*document, error) {
	var doc document
	switch format {
	case formatJSONC, "json":
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing jsonc: %w", err)
		}
	case formatYAML, "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, errUnknownFormat)
	}

	return &doc, nil
}

// readDocument reads path, or stdin when path is empty. An empty format is
// derived from the extension.
func readDocument(path, format string, stdin io.Reader) (*document, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	if format == "" {
		format = formatFromPath(path)
	}

	doc, err := parseDocument(data, format)
	if err != nil && path != "" {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, err
}

// operand builds the named operand ("a" or "b").
func (d *document) operand(name string) (*matrix.Matrix[float64], error) {
	rows := d.A
	if name == "b" {
		rows = d.B
	}
	if rows == nil {
		return nil, fmt.Errorf("%q: %w", name, errMissingOperand)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", name, err)
	}

	return m, nil
}
