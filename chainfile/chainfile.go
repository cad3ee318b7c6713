// SPDX-License-Identifier: MIT

package chainfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/absorb/chain"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Document is a decoded chain file.
type Document struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	States  []string  `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
	Weights [][]int64 `json:"weights" yaml:"weights" toml:"weights"`
}

// rawDocument defers weight typing so non-integers get a precise error
// instead of a decoder type mismatch.
type rawDocument struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	States  []string `json:"states" yaml:"states" toml:"states"`
	Weights [][]any  `json:"weights" yaml:"weights" toml:"weights"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chainfile: read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Decode parses a document in format f and validates it.
func Decode(r io.Reader, f Format) (*Document, error) {
	var raw rawDocument
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	doc := &Document{Name: raw.Name, States: raw.States, Weights: make([][]int64, len(raw.Weights))}
	for i, row := range raw.Weights {
		doc.Weights[i] = make([]int64, len(row))
		for j, v := range row {
			w, err := toWeight(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %w: W[%d][%d]: %v", chain.ErrInvalidChain, err, i, j, v)
			}
			doc.Weights[i][j] = w
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// toWeight converts one decoded scalar to an int64 weight. Integral floats
// (e.g. 3.0) are accepted; anything else is ErrNonIntegerWeight.
func toWeight(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, chain.ErrNonIntegerWeight
		}
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt64 || x < math.MinInt64 {
			return 0, chain.ErrNonIntegerWeight
		}
		return int64(x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return 0, chain.ErrNonIntegerWeight
		}
		return toWeight(f)
	default:
		return 0, chain.ErrNonIntegerWeight
	}
}

// Validate checks label count and builds the chain to surface weight errors.
func (d *Document) Validate() error {
	if len(d.States) != 0 && len(d.States) != len(d.Weights) {
		return fmt.Errorf("%w: %d labels, %d rows", ErrLabelCount, len(d.States), len(d.Weights))
	}
	_, err := chain.New(d.Weights)

	return err
}

// Chain returns the validated chain.
func (d *Document) Chain() (*chain.Chain, error) {
	if len(d.States) != 0 && len(d.States) != len(d.Weights) {
		return nil, fmt.Errorf("%w: %d labels, %d rows", ErrLabelCount, len(d.States), len(d.Weights))
	}

	return chain.New(d.Weights)
}

// Label returns the label of state i, or its decimal index when unlabelled.
func (d *Document) Label(i int) string {
	if i >= 0 && i < len(d.States) && d.States[i] != "" {
		return d.States[i]
	}

	return strconv.Itoa(i)
}

// Encode writes d in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
