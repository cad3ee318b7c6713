// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/absorb/batch"
	"github.com/katalvlaran/absorb/cache"
	"github.com/katalvlaran/absorb/chainfile"
)

func newBatchCmd(g *globals) *cobra.Command {
	var (
		workers int
		redis   string
	)

	cmd := &cobra.Command{
		Use:   "batch <chain-file>...",
		Short: "Solve many chain files concurrently",
		Long: `Batch solves every chain file for its first transient state and prints one
line per file. Files that fail to load or solve are reported and the command
exits non-zero after all files are processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := g.cfg
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("redis") {
				cfg.Redis.Addr = redis
			}

			store, err := cfg.openCache(ctx, cache.NewNullCache())
			if err != nil {
				return err
			}
			defer store.Close()

			prog := newProgress(logger)
			var (
				jobs     []batch.Job
				failures = map[string]error{}
			)
			for _, path := range args {
				doc, err := chainfile.Load(path)
				if err == nil {
					c, cerr := doc.Chain()
					if cerr == nil {
						jobs = append(jobs, batch.NewJob(path, c))
						continue
					}
					err = cerr
				}
				failures[path] = err
			}

			runner := batch.NewRunner(
				batch.WithWorkers(cfg.Workers),
				batch.WithCache(store),
				batch.WithLogger(logger),
			)
			outcomes := runner.Run(ctx, jobs)
			byName := make(map[string]batch.Outcome, len(outcomes))
			for _, o := range outcomes {
				byName[o.Name] = o
			}

			var buf bytes.Buffer
			tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
			failed := 0
			for _, path := range args {
				if err, ok := failures[path]; ok {
					fmt.Fprintf(tw, "%s\t%s%v\n", path, styleFailed.Render("error"), err)
					failed++
					continue
				}
				o := byName[path]
				switch {
				case o.Err != nil:
					fmt.Fprintf(tw, "%s\t%s%v\n", path, styleFailed.Render(batch.Label(o.Err)), o.Err)
					failed++
				case o.Cached:
					fmt.Fprintf(tw, "%s\t%s%v\n", path, styleCached.Render("cached"), o.Sequence)
				default:
					fmt.Fprintf(tw, "%s\t%s%v\n", path, styleSolved.Render("ok"), o.Sequence)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if err := emit(cmd, "", &buf); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %d of %d chains", len(args)-failed, len(args)))

			if failed > 0 {
				return fmt.Errorf("%d of %d chains failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solves (default: GOMAXPROCS)")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the shared result cache")
	return cmd
}
