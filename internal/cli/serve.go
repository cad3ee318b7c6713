// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/absorb/batch"
	"github.com/katalvlaran/absorb/cache"
	"github.com/katalvlaran/absorb/server"
)

func newServeCmd(g *globals) *cobra.Command {
	var (
		addr  string
		redis string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solver service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := g.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.Redis.Addr = redis
			}

			store, err := cfg.openCache(ctx, cache.NewMemoryCache())
			if err != nil {
				return err
			}
			defer store.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics, err := batch.NewMetrics(reg)
			if err != nil {
				return err
			}

			runner := batch.NewRunner(
				batch.WithWorkers(cfg.Workers),
				batch.WithCache(store),
				batch.WithLogger(logger),
				batch.WithMetrics(metrics),
			)
			srv := server.New(
				server.WithRunner(runner),
				server.WithLogger(logger),
				server.WithGatherer(reg),
			)
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the shared result cache")
	return cmd
}
