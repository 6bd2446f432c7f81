package eval

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cgraph/core"
)

// Context binds Input names to values.
type Context[T core.Number[T]] map[string]T

// Policy computes the value of root in g.
//
// Implementations must not mutate g, so one graph can be evaluated from
// several goroutines at once.
type Policy[T core.Number[T]] interface {
	// Name returns the canonical policy name ("eager", "lazy", ...).
	Name() string

	// Evaluate returns the value of root under ctx.
	Evaluate(g *core.Graph[T], root core.NodeID, ctx Context[T]) (T, error)
}

// Canonical policy names.
const (
	NameEager = "eager"
	NameLazy  = "lazy"
)

// Names returns every name ByName accepts.
func Names() []string {
	return []string{NameEager, "topological", "naive", NameLazy, "memo"}
}

// ByName resolves a policy by name, case-insensitively.
// Returns ErrUnknownPolicy for anything else.
func ByName[T core.Number[T]](name string) (Policy[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameEager, "topological", "naive":
		return Eager[T]{}, nil
	case NameLazy, "memo":
		return Lazy[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}
}
