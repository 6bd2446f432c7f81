package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgraph/dual"
	"github.com/katalvlaran/cgraph/eval"
)

// newGradCmd differentiates an expression with dual numbers.
func newGradCmd(a *app) *cobra.Command {
	var (
		vars   []string
		policy string
	)
	cmd := &cobra.Command{
		Use:   "grad EXPR",
		Short: "Evaluate an expression and its partial derivatives",
		Long: `Compile EXPR over dual numbers and compute its value and the partial
derivative with respect to every variable, one seeded pass per variable.

Examples:
  cgraph grad "sin(y) + x * y" --var x=1 --var y=5.25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := parseVars(vars)
			if err != nil {
				return err
			}
			e, _, err := compile[dual.Dual](a, args[0], false)
			if err != nil {
				return err
			}
			p, err := eval.ByName[dual.Dual](a.policyName(policy))
			if err != nil {
				return err
			}
			if err := fill(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), e.Graph().Inputs(), point); err != nil {
				return err
			}

			res, err := dual.Gradient(cmd.Context(), eval.New(p, eval.WithLogger(a.logger)), e.Graph(), e.Root(), point)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value = %s\n", strconv.FormatFloat(res.Value, 'g', -1, 64))
			for _, name := range slices.Sorted(maps.Keys(res.Partials)) {
				fmt.Fprintf(out, "d/d%s = %s\n", name, strconv.FormatFloat(res.Partials[name], 'g', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable binding name=value (repeatable)")
	cmd.Flags().StringVar(&policy, "policy", "", "evaluation policy (default from config)")

	return cmd
}
