package eval

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/cgraph/core"
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for per-call debug records.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Evaluator decorates a Policy with structured logging. It is itself a Policy.
type Evaluator[T core.Number[T]] struct {
	policy Policy[T]
	logger *slog.Logger
}

// New wraps policy. Without WithLogger, records are discarded.
func New[T core.Number[T]](policy Policy[T], opts ...Option) *Evaluator[T] {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return &Evaluator[T]{policy: policy, logger: o.logger.With("policy", policy.Name())}
}

// Name returns the wrapped policy's name.
func (e *Evaluator[T]) Name() string { return e.policy.Name() }

// Policy returns the wrapped policy.
func (e *Evaluator[T]) Policy() Policy[T] { return e.policy }

// Evaluate delegates to the wrapped policy and logs the outcome.
func (e *Evaluator[T]) Evaluate(g *core.Graph[T], root core.NodeID, ctx Context[T]) (T, error) {
	start := time.Now()
	v, err := e.policy.Evaluate(g, root, ctx)
	if err != nil {
		e.logger.Debug("Evaluation failed",
			"root", root, "nodes", g.Len(), "bindings", len(ctx),
			"duration", time.Since(start), "error", err)
		return v, err
	}
	e.logger.Debug("Evaluation finished",
		"root", root, "nodes", g.Len(), "bindings", len(ctx),
		"duration", time.Since(start), "value", v.String())

	return v, nil
}
