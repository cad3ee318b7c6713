// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/absorb/absorption"
	"github.com/katalvlaran/absorb/chain"
	"github.com/katalvlaran/absorb/chainfile"
	"github.com/katalvlaran/absorb/server"
)

type solveOpts struct {
	start  int
	all    bool
	format string
	out    string
	noBFS  bool
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve <chain-file>",
		Short: "Print the exact absorption distribution of a chain",
		Long: `Solve reads a chain file and prints, for the start state, the probability of
ending in each absorbing state as an exact fraction, followed by the flat
sequence n_0 ... n_k-1 D.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", -1, "start state (default: first transient state)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "solve every transient start state")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write output to file (atomically) instead of stdout")
	cmd.Flags().BoolVar(&opts.noBFS, "no-reachability-check", false, "detect unreachable absorption only from a singular system")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	logger := loggerFromContext(cmd.Context())
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	prog := newProgress(logger)
	doc, err := chainfile.Load(path)
	if err != nil {
		return err
	}
	c, err := doc.Chain()
	if err != nil {
		return err
	}
	logger.Debug("loaded chain", "name", doc.Name, "states", c.Order())

	options := []absorption.Option{
		absorption.WithStart(opts.start),
		absorption.WithReachabilityCheck(!opts.noBFS),
	}
	var results []*absorption.Result
	if opts.all {
		results, err = absorption.SolveAll(c, options...)
	} else {
		var res *absorption.Result
		res, err = absorption.Solve(c, options...)
		results = []*absorption.Result{res}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %s", doc.Name))

	var buf bytes.Buffer
	cl := chain.Classify(c)
	if opts.format == "json" {
		err = writeSolveJSON(&buf, doc, cl, results, opts.all)
	} else {
		err = writeSolveText(&buf, doc, cl, results)
	}
	if err != nil {
		return err
	}

	return emit(cmd, opts.out, &buf)
}

// emit writes buf to path atomically, or to the command's stdout when path
// is empty.
func emit(cmd *cobra.Command, path string, buf *bytes.Buffer) error {
	if path == "" {
		_, err := io.Copy(cmd.OutOrStdout(), buf)
		return err
	}
	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	loggerFromContext(cmd.Context()).Info("wrote output", "path", path)
	return nil
}

func writeSolveJSON(w io.Writer, doc *chainfile.Document, cl chain.Classification, results []*absorption.Result, all bool) error {
	resp := server.SolveResponse{Name: doc.Name}
	for _, res := range results {
		d := server.NewDistribution(doc, cl, res.Start, res.Sequence())
		if !all {
			resp.Distribution = &d
			break
		}
		resp.All = append(resp.All, d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func writeSolveText(w io.Writer, doc *chainfile.Document, cl chain.Classification, results []*absorption.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for k, res := range results {
		if k > 0 {
			fmt.Fprintln(tw)
		}
		if res.Trivial() {
			fmt.Fprintln(tw, "no transient states")
		} else {
			fmt.Fprintf(tw, "start\t%s\n", doc.Label(res.Start))
			for i, a := range cl.Absorbing {
				p, _ := res.Probability(a)
				approx, _ := p.Float64()
				fmt.Fprintf(tw, "%s\t%s\t%.6f\n", doc.Label(a), res.Numerators[i].String()+"/"+res.Denominator.String(), approx)
			}
		}
		fmt.Fprintf(tw, "sequence\t%v\n", res.Sequence())
	}
	return tw.Flush()
}
