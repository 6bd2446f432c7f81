package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/eval"
	"github.com/katalvlaran/cgraph/metrics"
)

// newReplCmd evaluates one expression repeatedly for new bindings.
func newReplCmd(a *app) *cobra.Command {
	var (
		vars   []string
		policy string
		fold   bool
	)
	cmd := &cobra.Command{
		Use:   "repl EXPR",
		Short: "Evaluate an expression repeatedly, prompting for variables",
		Long: `Compile EXPR once, then loop: prompt for every variable not fixed with
--var, evaluate, print. End input (Ctrl-D) or interrupt to stop.

When metrics are enabled in the configuration (or CGRAPH_METRICS_LISTEN
is set), Prometheus metrics are served on /metrics while the loop runs.

Examples:
  cgraph repl "sin(x) * (y + 2) + 3 * x * x"
  CGRAPH_METRICS_LISTEN=127.0.0.1:9233 cgraph repl "x * y" --var y=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixed, err := parseVars(vars)
			if err != nil {
				return err
			}
			e, reports, err := compile[core.Real](a, args[0], a.foldFlag(cmd.Flags().Changed("fold"), fold))
			if err != nil {
				return err
			}
			p, err := eval.ByName[core.Real](a.policyName(policy))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var evaluator eval.Policy[core.Real] = eval.New(p, eval.WithLogger(a.logger))
			if a.cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				col, err := metrics.New(reg)
				if err != nil {
					return err
				}
				for _, r := range reports {
					col.ObserveFold(r)
				}
				evaluator = metrics.Instrument(evaluator, col)
				go func() {
					if err := metrics.Serve(ctx, a.cfg.Metrics.Listen, reg); err != nil {
						a.logger.Error("Metrics server stopped", "error", err)
					}
				}()
				a.logger.Info("Serving metrics", "listen", a.cfg.Metrics.Listen)
			}

			return repl(ctx, cmd, e.Graph(), e.Root(), evaluator, fixed)
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "fixed variable binding name=value (repeatable)")
	cmd.Flags().StringVar(&policy, "policy", "", "evaluation policy (default from config)")
	cmd.Flags().BoolVar(&fold, "fold", false, "fold constant subexpressions first")

	return cmd
}

// repl runs the prompt/evaluate loop until input ends or ctx is done.
func repl(ctx context.Context, cmd *cobra.Command, g *core.Graph[core.Real], root core.NodeID, p eval.Policy[core.Real], fixed map[string]float64) error {
	out := cmd.OutOrStdout()
	pr := newPrompter(cmd.InOrStdin(), out)
	for ctx.Err() == nil {
		bindings := make(map[string]float64, len(fixed))
		for k, v := range fixed {
			bindings[k] = v
		}
		if err := fill(pr, g.Inputs(), bindings); err != nil {
			if errors.Is(err, errNoInput) || errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(out)
				return nil
			}
			if errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
				fmt.Fprintf(out, "error  = %v\n", err)
				continue
			}
			return err
		}
		c := make(eval.Context[core.Real], len(bindings))
		for k, v := range bindings {
			c[k] = core.Real(v)
		}
		v, err := p.Evaluate(g, root, c)
		if err != nil {
			fmt.Fprintf(out, "error  = %v\n", err)
			continue
		}
		fmt.Fprintf(out, "result = %s\n", v)
		if len(missing(g.Inputs(), fixed)) == 0 {
			// Nothing to prompt for; one evaluation is all there is.
			return nil
		}
	}
	return nil
}
