// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/absorb/builder"
	"github.com/katalvlaran/absorb/chainfile"
)

type generateOptions struct {
	states    int
	seed      int64
	p         float64
	absorbing []int
	minWeight int64
	maxWeight int64
	up, down  int64
	exits     bool
	name      string
	format    string
	out       string
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <ruin|cycle|complete|sparse|dag>",
		Short: "Write a generated chain file",
		Long: `generate writes a chain file built from one of the chain families.

ruin is the gambler's ruin walk with absorbing ends. The other families link
the transient states and, unless --exits=false, add an edge from every
transient state to every absorbing state. sparse and dag draw edges with
probability --p from a source seeded by --seed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{builder.MethodRuin, builder.MethodCycle, builder.MethodComplete, builder.MethodRandomSparse, builder.MethodRandomDAG},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.states, "states", "n", 5, "number of states")
	f.Int64Var(&o.seed, "seed", 1, "random seed")
	f.Float64Var(&o.p, "p", 0.3, "edge probability for sparse and dag")
	f.IntSliceVar(&o.absorbing, "absorbing", nil, "absorbing states (default: the last state; 0 and the last for ruin)")
	f.Int64Var(&o.minWeight, "min-weight", 1, "smallest drawn edge weight")
	f.Int64Var(&o.maxWeight, "max-weight", 1, "largest drawn edge weight")
	f.Int64Var(&o.up, "up", 1, "ruin weight towards the last state")
	f.Int64Var(&o.down, "down", 1, "ruin weight towards state 0")
	f.BoolVar(&o.exits, "exits", true, "link every transient state to every absorbing state")
	f.StringVar(&o.name, "name", "", "document name (default: the family)")
	f.StringVarP(&o.format, "format", "f", "", "json, yaml or toml (default: from --out, else yaml)")
	f.StringVarP(&o.out, "out", "o", "", "write to this file instead of stdout")

	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, kind string) error {
	if o.minWeight < 1 || o.maxWeight < o.minWeight {
		return fmt.Errorf("weights must satisfy 1 <= min-weight <= max-weight, got %d and %d", o.minWeight, o.maxWeight)
	}

	absorbing := o.absorbing
	if kind == builder.MethodRuin && absorbing == nil {
		absorbing = []int{0, o.states - 1}
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithWeightFn(builder.UniformWeightFn(o.minWeight, o.maxWeight)),
	}
	if absorbing != nil {
		opts = append(opts, builder.WithAbsorbing(absorbing...))
	}

	var cons []builder.Constructor
	switch kind {
	case builder.MethodRuin:
		cons = append(cons, builder.Ruin(o.up, o.down))
	case builder.MethodCycle:
		cons = append(cons, builder.Cycle())
	case builder.MethodComplete:
		cons = append(cons, builder.Complete())
	case builder.MethodRandomSparse:
		cons = append(cons, builder.RandomSparse(o.p))
	case builder.MethodRandomDAG:
		cons = append(cons, builder.RandomDAG(o.p))
	default:
		return fmt.Errorf("unknown chain family %q", kind)
	}
	if o.exits && kind != builder.MethodRuin {
		cons = append(cons, builder.Exits())
	}

	c, err := builder.BuildChain(o.states, opts, cons...)
	if err != nil {
		return err
	}

	format := chainfile.Format(o.format)
	if format == "" {
		format = chainfile.FormatYAML
		if o.out != "" {
			if format, err = chainfile.FormatFromPath(o.out); err != nil {
				return err
			}
		}
	}
	name := o.name
	if name == "" {
		name = kind
	}

	var buf bytes.Buffer
	if err := chainfile.Encode(&buf, &chainfile.Document{Name: name, Weights: c.Weights()}, format); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("generated chain", "family", kind, "states", c.Order(), "seed", o.seed)

	return emit(cmd, o.out, &buf)
}
