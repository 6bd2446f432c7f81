// Package metrics exposes cgraph evaluation and optimisation activity as
// Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/eval"
	"github.com/katalvlaran/cgraph/opt"
)

// DefaultListen is the Prometheus default port allocation also used by mgmt.
const DefaultListen = "127.0.0.1:9233"

// Evaluation outcomes used as the "outcome" label.
const (
	OutcomeOK      = "ok"
	OutcomeMissing = "missing_variable"
	OutcomeCycle   = "cycle"
	OutcomeError   = "error"
)

// Collector holds the registered metric vectors.
type Collector struct {
	evaluations *prometheus.CounterVec   // evaluations by policy and outcome
	duration    *prometheus.HistogramVec // evaluation latency by policy
	folded      prometheus.Counter       // nodes rewritten by optimisation passes
	graphNodes  prometheus.Gauge         // size of the last observed graph
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cgraph_evaluations_total",
				Help: "Number of graph evaluations.",
			},
			// policy: eager, lazy
			// outcome: ok, missing_variable, cycle, error
			[]string{"policy", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cgraph_evaluation_duration_seconds",
				Help:    "Duration of graph evaluations.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"policy"},
		),
		folded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cgraph_nodes_folded_total",
			Help: "Number of nodes replaced by constants.",
		}),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cgraph_graph_nodes",
			Help: "Number of nodes in the most recently observed graph.",
		}),
	}
	for _, col := range []prometheus.Collector{c.evaluations, c.duration, c.folded, c.graphNodes} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Outcome classifies an evaluation error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, eval.ErrMissingVariable):
		return OutcomeMissing
	case errors.Is(err, core.ErrCycleDetected):
		return OutcomeCycle
	default:
		return OutcomeError
	}
}

// ObserveEvaluation records one evaluation.
func (c *Collector) ObserveEvaluation(policy string, d time.Duration, err error) {
	c.evaluations.WithLabelValues(policy, Outcome(err)).Inc()
	c.duration.WithLabelValues(policy).Observe(d.Seconds())
}

// ObserveFold adds the nodes folded by one pass run.
func (c *Collector) ObserveFold(r opt.Report) {
	c.folded.Add(float64(r.Folded))
}

// ObserveGraph sets the current graph size.
func (c *Collector) ObserveGraph(n int) {
	c.graphNodes.Set(float64(n))
}

// instrumented decorates a policy with metric recording.
type instrumented[T core.Number[T]] struct {
	eval.Policy[T]
	c *Collector
}

// Instrument returns a policy recording every evaluation on c.
func Instrument[T core.Number[T]](p eval.Policy[T], c *Collector) eval.Policy[T] {
	return instrumented[T]{Policy: p, c: c}
}

func (p instrumented[T]) Evaluate(g *core.Graph[T], root core.NodeID, ctx eval.Context[T]) (T, error) {
	start := time.Now()
	v, err := p.Policy.Evaluate(g, root, ctx)
	p.c.ObserveEvaluation(p.Name(), time.Since(start), err)
	p.c.ObserveGraph(g.Len())

	return v, err
}

// Handler serves the metrics gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve listens on listen and serves /metrics until ctx is done.
func Serve(ctx context.Context, listen string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
