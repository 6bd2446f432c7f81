package eval

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cgraph/core"
)

// Job is one (root, bindings) pair of a batch evaluation.
type Job[T core.Number[T]] struct {
	Root    core.NodeID
	Context Context[T]
}

// EvaluateAll evaluates every job against g concurrently, at most
// GOMAXPROCS at a time, and returns the values in job order.
//
// The graph must not be mutated while the batch runs. The first failing
// job cancels the jobs not yet started and its error is returned, wrapped
// with the job index; no partial results are returned.
func EvaluateAll[T core.Number[T]](ctx context.Context, policy Policy[T], g *core.Graph[T], jobs []Job[T]) ([]T, error) {
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	out := make([]T, len(jobs))
	for i, job := range jobs {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := policy.Evaluate(g, job.Root, job.Context)
			if err != nil {
				return fmt.Errorf("eval: job %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
