// File: types.go
// Role: NodeID, Kind, sentinel errors and the typed errors carrying failure context.

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidHandle indicates a NodeID that the graph does not contain.
	ErrInvalidHandle = errors.New("core: invalid node handle")

	// ErrCycleDetected indicates that a topological order does not exist.
	ErrCycleDetected = errors.New("core: cycle detected")

	// ErrUnevaluableNode indicates an Input node was asked to evaluate itself;
	// its value must come from the evaluation context.
	ErrUnevaluableNode = errors.New("core: node cannot self-evaluate")

	// ErrBadOperation indicates an op tag unknown or unfit for the node variant.
	ErrBadOperation = errors.New("core: bad operation for node")

	// ErrEmptyInputName indicates an Input node with an empty name.
	ErrEmptyInputName = errors.New("core: input name is empty")

	// ErrNilNode indicates the zero-value Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")
)

// NodeID is an opaque handle identifying a node inside one Graph.
// It carries no identity beyond its index.
type NodeID struct {
	idx int
}

// Index returns the position of the node in its graph.
func (id NodeID) Index() int { return id.idx }

// Less orders NodeIDs by index.
func (id NodeID) Less(other NodeID) bool { return id.idx < other.idx }

// String renders the handle as "n<index>".
func (id NodeID) String() string { return "n" + strconv.Itoa(id.idx) }

// Kind tags a node variant.
type Kind uint8

// Node variants. KindInvalid is the zero value of an unset Node.
const (
	KindInvalid Kind = iota
	KindConstant
	KindInput
	KindUnary
	KindBinary
)

// String returns the export name of the kind: const, input, unary or binary.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "const"
	case KindInput:
		return "input"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return "invalid"
	}
}

// InvalidHandleError reports a NodeID used against a graph that does not contain it.
type InvalidHandleError struct {
	ID  NodeID
	Len int // size of the graph at the time of the lookup
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("core: invalid node handle %s (graph has %d nodes)", e.ID, e.Len)
}

// Unwrap makes errors.Is(err, ErrInvalidHandle) hold.
func (e *InvalidHandleError) Unwrap() error { return ErrInvalidHandle }

// CycleError reports the nodes a topological sort could not schedule.
type CycleError struct {
	Unscheduled []NodeID
}

func (e *CycleError) Error() string {
	if len(e.Unscheduled) == 0 {
		return ErrCycleDetected.Error()
	}
	parts := make([]string, len(e.Unscheduled))
	for i, id := range e.Unscheduled {
		parts[i] = id.String()
	}

	return fmt.Sprintf("%s: %d node(s) unscheduled [%s]",
		ErrCycleDetected, len(e.Unscheduled), strings.Join(parts, " "))
}

// Unwrap makes errors.Is(err, ErrCycleDetected) hold.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }
