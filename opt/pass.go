package opt

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/cgraph/core"
)

// Report summarises one pass run.
type Report struct {
	Pass    string // pass name
	Visited int    // nodes examined
	Folded  int    // nodes rewritten
}

// Pass rewrites g in place with respect to root.
type Pass[T core.Number[T]] interface {
	Name() string
	Run(g *core.Graph[T], root core.NodeID) (Report, error)
}

// Option configures a Pipeline.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving one info record per pass.
func WithLogger(l *slog.Logger) Option {
	return func(o *pipelineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Pipeline runs passes in order.
type Pipeline[T core.Number[T]] struct {
	passes []Pass[T]
	logger *slog.Logger
}

// NewPipeline returns a pipeline over passes.
func NewPipeline[T core.Number[T]](passes []Pass[T], opts ...Option) *Pipeline[T] {
	o := pipelineOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline[T]{passes: passes, logger: o.logger}
}

// Run executes every pass and returns their reports. It stops at the first
// failing pass and returns the reports gathered so far with the error.
func (p *Pipeline[T]) Run(g *core.Graph[T], root core.NodeID) ([]Report, error) {
	reports := make([]Report, 0, len(p.passes))
	for _, pass := range p.passes {
		r, err := pass.Run(g, root)
		if err != nil {
			p.logger.Error("Pass failed", "pass", pass.Name(), "error", err)
			return reports, fmt.Errorf("opt: %s: %w", pass.Name(), err)
		}
		p.logger.Info("Pass finished", "pass", r.Pass, "visited", r.Visited, "folded", r.Folded)
		reports = append(reports, r)
	}

	return reports, nil
}
