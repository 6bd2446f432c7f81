package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cgraph/config"
	"github.com/katalvlaran/cgraph/logging"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "cgraph",
		Short: "Build and evaluate deduplicated computation graphs",
		Long: `cgraph compiles arithmetic expressions into a computation graph where
identical subexpressions are stored once, then evaluates, optimises,
differentiates or draws it.

Expression syntax:
  numbers, variables, + - * /, unary -, parentheses,
  sin cos exp log sqrt (1 argument), pow (2), pi() e() (none)

Configuration:
  Defaults, then --config FILE (YAML), then CGRAPH_* environment variables,
  then command-line flags.

Examples:
  cgraph eval "sin(x) * (y + 2) + 3 * x * x" --var x=0 --var y=4
  cgraph grad "sin(y) + x * y" --var x=1 --var y=5.25
  cgraph dot "(x * 3) * (x * 3)" -o graph.dot --render`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newEvalCmd(a),
		newGradCmd(a),
		newDotCmd(a),
		newReplCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	a.logger.Debug("Configuration loaded", "path", a.configPath, "policy", cfg.Evaluation.Policy)

	return nil
}
