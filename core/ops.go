package core

// Op is the enumerated operation tag carried by Unary and Binary nodes.
// It is plain data: two nodes perform the same operation iff their Ops are equal.
type Op uint8

// Operation vocabulary. OpInvalid is the zero value (leaf nodes carry it).
const (
	OpInvalid Op = iota

	// binary
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow

	// unary
	OpNeg
	OpSin
	OpCos
	OpExp
	OpLog
	OpSqrt
)

var opSymbols = [...]string{
	OpInvalid: "?",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpPow:     "pow",
	OpNeg:     "~",
	OpSin:     "sin",
	OpCos:     "cos",
	OpExp:     "exp",
	OpLog:     "log",
	OpSqrt:    "sqrt",
}

var opNames = [...]string{
	OpInvalid: "Invalid",
	OpAdd:     "Add",
	OpSub:     "Sub",
	OpMul:     "Mul",
	OpDiv:     "Div",
	OpPow:     "Pow",
	OpNeg:     "Neg",
	OpSin:     "Sin",
	OpCos:     "Cos",
	OpExp:     "Exp",
	OpLog:     "Log",
	OpSqrt:    "Sqrt",
}

// Valid reports whether op is a known operation.
func (op Op) Valid() bool { return op > OpInvalid && op <= OpSqrt }

// Arity returns 2 for binary operations, 1 for unary ones and 0 for OpInvalid.
func (op Op) Arity() int {
	switch {
	case op >= OpAdd && op <= OpPow:
		return 2
	case op >= OpNeg && op <= OpSqrt:
		return 1
	default:
		return 0
	}
}

// Symbol returns the display label used in graph exports ("+", "sin", "~", ...).
func (op Op) Symbol() string {
	if int(op) >= len(opSymbols) {
		return opSymbols[OpInvalid]
	}
	return opSymbols[op]
}

// String returns the Go-style name of the operation ("Add", "Sin", ...).
func (op Op) String() string {
	if int(op) >= len(opNames) {
		return opNames[OpInvalid]
	}
	return opNames[op]
}

// applyUnary computes op(x). The caller guarantees op.Arity() == 1.
func applyUnary[T Number[T]](op Op, x T) T {
	switch op {
	case OpNeg:
		return x.Neg()
	case OpSin:
		return x.Sin()
	case OpCos:
		return x.Cos()
	case OpExp:
		return x.Exp()
	case OpLog:
		return x.Log()
	case OpSqrt:
		return x.Sqrt()
	}
	panic("core: applyUnary called with non-unary op " + op.String())
}

// applyBinary computes op(x, y). The caller guarantees op.Arity() == 2.
func applyBinary[T Number[T]](op Op, x, y T) T {
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Div(y)
	case OpPow:
		return x.Pow(y)
	}
	panic("core: applyBinary called with non-binary op " + op.String())
}

// Apply computes op over args, which must hold exactly op.Arity() values.
func Apply[T Number[T]](op Op, args ...T) (T, error) {
	var zero T
	if !op.Valid() || len(args) != op.Arity() {
		return zero, ErrBadOperation
	}
	if op.Arity() == 1 {
		return applyUnary(op, args[0]), nil
	}

	return applyBinary(op, args[0], args[1]), nil
}
