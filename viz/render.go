package viz

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

var (
	// ErrInvalidProgram indicates a program other than the Graphviz filters.
	ErrInvalidProgram = errors.New("viz: invalid graphviz program")

	// ErrInvalidFormat indicates an unsupported output format.
	ErrInvalidFormat = errors.New("viz: invalid output format")

	// ErrProgramMissing indicates the Graphviz program is not on PATH.
	ErrProgramMissing = errors.New("viz: graphviz program is missing")
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Programs lists the accepted Graphviz filters.
func Programs() []string { return []string{"dot", "neato", "twopi", "circo", "fdp"} }

// Formats lists the accepted output formats.
func Formats() []string { return []string{"png", "svg", "pdf", "jpg"} }

// Render runs program over dotFile, writing outFile in format.
// The process is killed when ctx is cancelled.
func Render(ctx context.Context, program, format, dotFile, outFile string) error {
	if !slices.Contains(Programs(), program) {
		return fmt.Errorf("%w: %q", ErrInvalidProgram, program)
	}
	if !slices.Contains(Formats(), format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if dotFile == "" || outFile == "" {
		return errors.New("viz: no filename given")
	}

	path, err := lookPath(program)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProgramMissing, program)
	}

	cmd := exec.CommandContext(ctx, path, "-T"+format, "-o"+outFile, dotFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("viz: %s: %w: %s", program, err, strings.TrimSpace(string(out)))
	}

	return nil
}
