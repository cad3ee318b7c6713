// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/absorb/chain"
	"github.com/katalvlaran/absorb/chainfile"
	"github.com/katalvlaran/absorb/server"
)

func newClassifyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify <chain-file>",
		Short: "List the transient and absorbing states of a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := chainfile.Load(args[0])
			if err != nil {
				return err
			}
			c, err := doc.Chain()
			if err != nil {
				return err
			}
			cl := chain.Classify(c)

			var buf bytes.Buffer
			switch format {
			case "json":
				resp := server.ClassifyResponse{Name: doc.Name}
				for _, i := range cl.Transient {
					resp.Transient = append(resp.Transient, server.State{Index: i, Label: doc.Label(i)})
				}
				for _, i := range cl.Absorbing {
					resp.Absorbing = append(resp.Absorbing, server.State{Index: i, Label: doc.Label(i)})
				}
				enc := json.NewEncoder(&buf)
				enc.SetIndent("", "  ")
				if err := enc.Encode(resp); err != nil {
					return err
				}
			case "text":
				fmt.Fprintf(&buf, "transient: %s\n", labels(doc, cl.Transient))
				fmt.Fprintf(&buf, "absorbing: %s\n", labels(doc, cl.Absorbing))
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
			return emit(cmd, "", &buf)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func labels(doc *chainfile.Document, idx []int) string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = doc.Label(k)
	}
	return strings.Join(out, " ")
}
