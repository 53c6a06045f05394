// Package batch runs a function over many independent lanes with a
// bounded number of goroutines. Lanes must not share mutable state; each
// call of the function owns lane i exclusively.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the number of workers used when none is
// specified (the number of usable CPUs).
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map calls fn(ctx, i) for every i in [0, n), with at most workers calls
// running concurrently (DefaultWorkers() if workers <= 0). The first
// error returned by fn cancels the context passed to the remaining calls
// and is returned. If the parent context is cancelled, no new lane is
// started and the context error is returned.
func Map(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
