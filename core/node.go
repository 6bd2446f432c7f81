// File: node.go
// Role: The closed node vocabulary (tagged variant) and its capability set.
// Determinism:
//   - Hash depends only on (kind, op, dependency indices, name/value bytes).
// AI-HINT (file):
//   - Node is a small value type; copy it freely. The zero Node is invalid.
//   - Switch on Kind() wherever behavior differs; there is no downcasting.

package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Node is one computation node: Constant, Input, Unary or Binary.
//
// Fields are unexported so that a Node can only be built through the
// constructors below; the Kind tag decides which fields are meaningful:
//
//	KindConstant: value
//	KindInput:    name
//	KindUnary:    op, deps[0]
//	KindBinary:   op, deps[0] (left), deps[1] (right)
type Node[T Number[T]] struct {
	kind  Kind
	op    Op
	value T
	name  string
	deps  [2]NodeID
}

// NewConstant returns a Constant node holding v.
func NewConstant[T Number[T]](v T) Node[T] {
	return Node[T]{kind: KindConstant, value: v}
}

// NewInput returns an Input node named name. Its value is supplied by the
// evaluation context, never by the graph.
func NewInput[T Number[T]](name string) Node[T] {
	return Node[T]{kind: KindInput, name: name}
}

// NewUnary returns a Unary node applying op to dep.
// Arity is checked when the node is added to a Graph.
func NewUnary[T Number[T]](op Op, dep NodeID) Node[T] {
	return Node[T]{kind: KindUnary, op: op, deps: [2]NodeID{dep}}
}

// NewBinary returns a Binary node applying op to (left, right).
func NewBinary[T Number[T]](op Op, left, right NodeID) Node[T] {
	return Node[T]{kind: KindBinary, op: op, deps: [2]NodeID{left, right}}
}

// Kind returns the variant tag.
func (n Node[T]) Kind() Kind { return n.kind }

// Op returns the operation of a Unary/Binary node and OpInvalid for leaves.
func (n Node[T]) Op() Op { return n.op }

// Value returns the value of a Constant node; ok is false for other kinds.
func (n Node[T]) Value() (v T, ok bool) {
	if n.kind != KindConstant {
		return v, false
	}
	return n.value, true
}

// Name returns the name of an Input node and "" for other kinds.
func (n Node[T]) Name() string { return n.name }

// IsZero reports whether n is the zero Node.
func (n Node[T]) IsZero() bool { return n.kind == KindInvalid }

// Dependencies returns the ordered dependency list: empty for leaves,
// one id for Unary, (left, right) for Binary. The slice is a fresh copy.
func (n Node[T]) Dependencies() []NodeID {
	switch n.kind {
	case KindUnary:
		return []NodeID{n.deps[0]}
	case KindBinary:
		return []NodeID{n.deps[0], n.deps[1]}
	default:
		return nil
	}
}

// Evaluate computes the node's value from already-computed dependency values.
// values is a dense array indexed by NodeID.Index().
//
// Errors:
//   - ErrUnevaluableNode for Input nodes.
//   - *InvalidHandleError if a dependency lies outside values.
//   - ErrNilNode for the zero Node.
func (n Node[T]) Evaluate(values []T) (T, error) {
	var zero T
	switch n.kind {
	case KindConstant:
		return n.value, nil
	case KindInput:
		return zero, fmt.Errorf("%w: input %q", ErrUnevaluableNode, n.name)
	case KindUnary:
		if n.deps[0].idx >= len(values) {
			return zero, &InvalidHandleError{ID: n.deps[0], Len: len(values)}
		}
		return applyUnary(n.op, values[n.deps[0].idx]), nil
	case KindBinary:
		l, r := n.deps[0], n.deps[1]
		if l.idx >= len(values) {
			return zero, &InvalidHandleError{ID: l, Len: len(values)}
		}
		if r.idx >= len(values) {
			return zero, &InvalidHandleError{ID: r, Len: len(values)}
		}
		return applyBinary(n.op, values[l.idx], values[r.idx]), nil
	default:
		return zero, ErrNilNode
	}
}

// Hash returns the structural hash: Constant by value, Input by name,
// Unary by (op, dep), Binary by (op, left, right).
func (n Node[T]) Hash() uint64 {
	buf := make([]byte, 0, 32)
	buf = append(buf, byte(n.kind), byte(n.op))
	switch n.kind {
	case KindConstant:
		enc, err := n.value.AppendBinary(buf)
		if err != nil {
			// Equal values format equally, so the fallback keeps hash/== consistent.
			enc = append(buf, n.value.String()...)
		}
		buf = enc
	case KindInput:
		buf = append(buf, n.name...)
	case KindUnary:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.deps[0].idx))
	case KindBinary:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.deps[0].idx))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.deps[1].idx))
	}

	return xxhash.Sum64(buf)
}

// Equivalent reports structural equivalence: same variant and same
// value, name, or (op, dependency ids).
func (n Node[T]) Equivalent(other Node[T]) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindConstant:
		return n.value == other.value
	case KindInput:
		return n.name == other.name
	case KindUnary:
		return n.op == other.op && n.deps[0] == other.deps[0]
	case KindBinary:
		return n.op == other.op && n.deps == other.deps
	default:
		return false
	}
}

// Label returns the display label: the constant's text, the input's name,
// or the operation symbol.
func (n Node[T]) Label() string {
	switch n.kind {
	case KindConstant:
		return n.value.String()
	case KindInput:
		return n.name
	case KindUnary, KindBinary:
		return n.op.Symbol()
	default:
		return "?"
	}
}

// String renders the node for debugging, e.g. "binary(* n0 n1)".
func (n Node[T]) String() string {
	switch n.kind {
	case KindUnary:
		return fmt.Sprintf("unary(%s %s)", n.op.Symbol(), n.deps[0])
	case KindBinary:
		return fmt.Sprintf("binary(%s %s %s)", n.op.Symbol(), n.deps[0], n.deps[1])
	default:
		return fmt.Sprintf("%s(%s)", n.kind, n.Label())
	}
}

// check verifies the node is well formed and that every dependency is
// below limit.
func (n Node[T]) check(limit int) error {
	switch n.kind {
	case KindInvalid:
		return ErrNilNode
	case KindConstant:
		return nil
	case KindInput:
		if n.name == "" {
			return ErrEmptyInputName
		}
		return nil
	case KindUnary, KindBinary:
		want := 1
		if n.kind == KindBinary {
			want = 2
		}
		if !n.op.Valid() || n.op.Arity() != want {
			return fmt.Errorf("%w: %s on %s node", ErrBadOperation, n.op, n.kind)
		}
		for _, d := range n.deps[:want] {
			if d.idx < 0 || d.idx >= limit {
				return &InvalidHandleError{ID: d, Len: limit}
			}
		}
		return nil
	default:
		return ErrNilNode
	}
}
