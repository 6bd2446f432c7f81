package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVariable indicates an Input node with no binding in the Context.
	ErrMissingVariable = errors.New("eval: missing variable")

	// ErrUnknownPolicy indicates ByName was given an unrecognised policy name.
	ErrUnknownPolicy = errors.New("eval: unknown policy")
)

// MissingVariableError names the unbound input.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("eval: missing variable %q", e.Name)
}

// Unwrap makes errors.Is(err, ErrMissingVariable) hold.
func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }
