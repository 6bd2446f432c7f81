package dual

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/eval"
)

// Result is the value of a root and its partial derivatives.
type Result struct {
	Value    float64
	Partials map[string]float64
}

// Gradient evaluates root at point and differentiates it with respect to
// every name in point.
//
// Each partial derivative needs its own pass with only that input seeded,
// so the passes run concurrently over the shared, read-only graph. An empty
// point still evaluates the value once.
func Gradient(ctx context.Context, policy eval.Policy[Dual], g *core.Graph[Dual], root core.NodeID, point map[string]float64) (Result, error) {
	names := slices.Sorted(maps.Keys(point))
	if len(names) == 0 {
		v, err := policy.Evaluate(g, root, eval.Context[Dual]{})
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v.V, Partials: map[string]float64{}}, nil
	}

	var (
		mu  sync.Mutex
		res = Result{Partials: make(map[string]float64, len(names))}
	)
	grp, gctx := errgroup.WithContext(ctx)
	for i, seed := range names {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bindings := make(eval.Context[Dual], len(point))
			for name, v := range point {
				bindings[name] = Constant(v)
			}
			bindings[seed] = Variable(point[seed])

			v, err := policy.Evaluate(g, root, bindings)
			if err != nil {
				return fmt.Errorf("dual: d/d%s: %w", seed, err)
			}
			mu.Lock()
			res.Partials[seed] = v.D
			if i == 0 {
				res.Value = v.V
			}
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	return res, nil
}
