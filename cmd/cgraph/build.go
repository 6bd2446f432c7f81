package main

import (
	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/expr"
	"github.com/katalvlaran/cgraph/opt"
	"github.com/katalvlaran/cgraph/parse"
)

// compile parses src into a fresh graph and folds it when requested.
func compile[T core.Number[T]](a *app, src string, fold bool) (expr.Expression[T], []opt.Report, error) {
	g := core.NewGraph[T]()
	e, err := parse.Compile(g, src)
	if err != nil {
		return e, nil, err
	}
	a.logger.Debug("Expression compiled", "nodes", g.Len(), "inputs", g.Inputs())
	if !fold {
		return e, nil, nil
	}

	p := opt.NewPipeline([]opt.Pass[T]{opt.ConstantFolding[T]{}}, opt.WithLogger(a.logger))
	reports, err := p.Run(g, e.Root())

	return e, reports, err
}

// foldFlag returns the --fold flag when set, the configured value otherwise.
func (a *app) foldFlag(changed, flag bool) bool {
	if changed {
		return flag
	}
	return a.cfg.Evaluation.Fold
}

// policyName returns the --policy flag when set, the configured value otherwise.
func (a *app) policyName(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Evaluation.Policy
}
