// SPDX-License-Identifier: MIT

package chainfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/absorb/chain"
	"github.com/katalvlaran/absorb/chainfile"
)

var want = [][]int64{
	{0, 2, 1, 0},
	{1, 0, 0, 3},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

const yamlDoc = `name: demo
states: [start, mid, win, lose]
weights:
  - [0, 2, 1, 0]
  - [1, 0, 0, 3]
  - [0, 0, 0, 0]
  - [0, 0, 0, 0]
`

const jsonDoc = `{
  "name": "demo",
  "states": ["start", "mid", "win", "lose"],
  "weights": [[0, 2, 1, 0], [1, 0, 0, 3], [0, 0, 0, 0], [0, 0, 0, 0]]
}`

const tomlDoc = `name = "demo"
states = ["start", "mid", "win", "lose"]
weights = [
  [0, 2, 1, 0],
  [1, 0, 0, 3],
  [0, 0, 0, 0],
  [0, 0, 0, 0],
]
`

func TestDecodeFormats(t *testing.T) {
	cases := map[chainfile.Format]string{
		chainfile.FormatYAML: yamlDoc,
		chainfile.FormatJSON: jsonDoc,
		chainfile.FormatTOML: tomlDoc,
	}
	for f, src := range cases {
		t.Run(string(f), func(t *testing.T) {
			doc, err := chainfile.Decode(strings.NewReader(src), f)
			require.NoError(t, err)
			require.Equal(t, "demo", doc.Name)
			require.Equal(t, want, doc.Weights)
			require.Equal(t, "win", doc.Label(2))

			c, err := doc.Chain()
			require.NoError(t, err)
			require.Equal(t, 4, c.Order())
		})
	}
}

func TestDecodeWeights(t *testing.T) {
	cases := []struct {
		name string
		f    chainfile.Format
		src  string
		err  error
	}{
		{"integral float accepted", chainfile.FormatJSON, `{"weights": [[0, 3.0], [0, 0]]}`, nil},
		{"fraction json", chainfile.FormatJSON, `{"weights": [[0, 1.5], [0, 0]]}`, chain.ErrNonIntegerWeight},
		{"fraction yaml", chainfile.FormatYAML, "weights: [[0, 0.25], [0, 0]]", chain.ErrNonIntegerWeight},
		{"fraction toml", chainfile.FormatTOML, "weights = [[0, 0.5], [0, 0]]", chain.ErrNonIntegerWeight},
		{"string weight", chainfile.FormatJSON, `{"weights": [[0, "1"], [0, 0]]}`, chain.ErrNonIntegerWeight},
		{"negative", chainfile.FormatYAML, "weights: [[0, -1], [0, 0]]", chain.ErrNegativeWeight},
		{"ragged", chainfile.FormatYAML, "weights: [[0, 1], [0]]", chain.ErrNonSquare},
		{"empty", chainfile.FormatJSON, `{"weights": []}`, chain.ErrEmptyChain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chainfile.Decode(strings.NewReader(tc.src), tc.f)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, chain.ErrInvalidChain)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := chainfile.Decode(strings.NewReader("{"), chainfile.FormatJSON)
	require.ErrorIs(t, err, chainfile.ErrDecode)

	_, err = chainfile.Decode(strings.NewReader(""), chainfile.Format("xml"))
	require.ErrorIs(t, err, chainfile.ErrUnknownFormat)

	_, err = chainfile.Decode(strings.NewReader("states: [a]\nweights: [[0, 0], [0, 0]]"), chainfile.FormatYAML)
	require.ErrorIs(t, err, chainfile.ErrLabelCount)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ruin.yml")
	require.NoError(t, os.WriteFile(path, []byte("weights: [[0, 1], [0, 0]]\n"), 0o644))

	doc, err := chainfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "ruin", doc.Name)
	require.Equal(t, "1", doc.Label(1))

	_, err = chainfile.Load(filepath.Join(dir, "ruin.csv"))
	require.ErrorIs(t, err, chainfile.ErrUnknownFormat)

	_, err = chainfile.Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := &chainfile.Document{Name: "demo", States: []string{"a", "b", "c", "d"}, Weights: want}
	for _, f := range []chainfile.Format{chainfile.FormatJSON, chainfile.FormatYAML, chainfile.FormatTOML} {
		var buf bytes.Buffer
		require.NoError(t, chainfile.Encode(&buf, doc, f), f)
		got, err := chainfile.Decode(&buf, f)
		require.NoError(t, err, f)
		require.Equal(t, doc, got, f)
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, f := range map[string]chainfile.Format{
		"a.json": chainfile.FormatJSON,
		"a.YAML": chainfile.FormatYAML,
		"a.yml":  chainfile.FormatYAML,
		"a.toml": chainfile.FormatTOML,
	} {
		got, err := chainfile.FormatFromPath(path)
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
}
