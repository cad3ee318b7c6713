// SPDX-License-Identifier: MIT

// Package batch solves many independent chains concurrently.
//
// A Runner fans jobs out over a bounded worker pool, consults an optional
// cache.Cache before solving and records Prometheus metrics when configured.
// Failures are per job: one unreachable chain never aborts the others, and
// the returned outcomes are in job order.
//
//	r := batch.NewRunner(batch.WithWorkers(4), batch.WithCache(c))
//	for _, out := range r.Run(ctx, jobs) {
//		if out.Err != nil { ... }
//		fmt.Println(out.Name, out.Sequence)
//	}
package batch
