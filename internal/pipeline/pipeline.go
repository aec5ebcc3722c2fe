// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls the fan-out.
type Config struct {
	Threads int // worker goroutines; <= 0 means all CPUs
}

// BatchSize mirrors the split used by the conversion tools: n/threads items
// per batch, at least one.
func BatchSize(n, threads int) int {
	if threads < 1 {
		threads = 1
	}
	return max(1, n/threads)
}

// Map applies fn to every item using cfg.Threads workers. Results keep input
// order. The first error cancels the remaining batches and is returned.
func Map[T, R any](ctx context.Context, cfg Config, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)
	size := BatchSize(len(items), thr)
	for lo := 0; lo < len(items); lo += size {
		hi := min(lo+size, len(items))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := fn(gctx, items[i])
				if err != nil {
					return err
				}
				out[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
