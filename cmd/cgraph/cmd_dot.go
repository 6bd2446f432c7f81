package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/viz"
)

// newDotCmd exports an expression graph as DOT.
func newDotCmd(a *app) *cobra.Command {
	var (
		output  string
		render  bool
		fold    bool
		program string
		format  string
		rankDir string
	)
	cmd := &cobra.Command{
		Use:   "dot EXPR",
		Short: "Export the computation graph in Graphviz DOT format",
		Long: `Compile EXPR and write its computation graph as DOT to stdout or -o FILE.

With --render, the Graphviz program (dot, neato, twopi, circo, fdp) turns
FILE into FILE.<format>.

Examples:
  cgraph dot "(x * 3) * (x * 3)"
  cgraph dot "sin(x) * (y + 2)" -o f.dot --render --format svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if render && output == "" {
				return errors.New("--render requires -o FILE")
			}
			e, _, err := compile[core.Real](a, args[0], a.foldFlag(cmd.Flags().Changed("fold"), fold))
			if err != nil {
				return err
			}
			opts := []viz.Option{viz.WithRankDir(rankDir)}

			if output == "" {
				return viz.WriteDOT(cmd.OutOrStdout(), e.Graph(), opts...)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := viz.WriteDOT(f, e.Graph(), opts...); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			if !render {
				return nil
			}

			if program == "" {
				program = a.cfg.Graphviz.Program
			}
			if format == "" {
				format = a.cfg.Graphviz.Format
			}
			image := fmt.Sprintf("%s.%s", output, format)
			if err := viz.Render(cmd.Context(), program, format, output, image); err != nil {
				return err
			}
			a.logger.Info("Graph rendered", "program", program, "file", image)
			fmt.Fprintln(cmd.OutOrStdout(), image)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write DOT to FILE instead of stdout")
	cmd.Flags().BoolVar(&render, "render", false, "render FILE with Graphviz")
	cmd.Flags().BoolVar(&fold, "fold", false, "fold constant subexpressions first")
	cmd.Flags().StringVar(&program, "program", "", "Graphviz program (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "image format (default from config)")
	cmd.Flags().StringVar(&rankDir, "rankdir", "TB", "layout direction: TB, BT, LR, RL")

	return cmd
}
