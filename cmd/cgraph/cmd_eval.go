package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/eval"
)

// newEvalCmd evaluates an expression once.
func newEvalCmd(a *app) *cobra.Command {
	var (
		vars   []string
		policy string
		fold   bool
	)
	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression",
		Long: `Compile EXPR into a computation graph and evaluate it.

Variables not bound with --var are prompted for: an interactive field on
a terminal, one line per value otherwise.

Policies:
  eager (topological, naive)  evaluate every node in topological order
  lazy (memo)                 evaluate only what the result depends on

Examples:
  cgraph eval "sin(x) * (y + 2) + 3 * x * x" --var x=0 --var y=4
  echo "1.5" | cgraph eval "x * x"
  cgraph eval "pow(2, 10) + x" --fold --policy eager`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := parseVars(vars)
			if err != nil {
				return err
			}
			e, _, err := compile[core.Real](a, args[0], a.foldFlag(cmd.Flags().Changed("fold"), fold))
			if err != nil {
				return err
			}
			p, err := eval.ByName[core.Real](a.policyName(policy))
			if err != nil {
				return err
			}

			g := e.Graph()
			if err := fill(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), g.Inputs(), bindings); err != nil {
				return err
			}
			ctx := make(eval.Context[core.Real], len(bindings))
			for k, v := range bindings {
				ctx[k] = core.Real(v)
			}

			v, err := e.Evaluate(eval.New(p, eval.WithLogger(a.logger)), ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "result = %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "nodes  = %d\n", g.Len())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable binding name=value (repeatable)")
	cmd.Flags().StringVar(&policy, "policy", "", "evaluation policy (default from config)")
	cmd.Flags().BoolVar(&fold, "fold", false, "fold constant subexpressions first")

	return cmd
}
