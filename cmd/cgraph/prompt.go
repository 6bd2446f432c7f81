package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// errNoInput indicates the input stream ended before a value was read.
var errNoInput = errors.New("no more input")

// prompter asks the user for one variable value.
type prompter interface {
	Ask(name string) (float64, error)
}

// newPrompter returns an interactive form on a terminal and a line reader
// for piped input.
func newPrompter(in io.Reader, out io.Writer) prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return formPrompter{}
	}
	return &linePrompter{in: bufio.NewScanner(in), out: out}
}

// formPrompter asks through a huh input field.
type formPrompter struct{}

func (formPrompter) Ask(name string) (float64, error) {
	var raw string
	err := huh.NewInput().
		Title(name + " =").
		Value(&raw).
		Validate(func(s string) error {
			_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			return err
		}).
		Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// linePrompter prints "name = " and reads one line per value.
type linePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *linePrompter) Ask(name string) (float64, error) {
	fmt.Fprintf(p.out, "%s = ", name)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, err
		}
		return 0, errNoInput
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.in.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// fill asks for every name missing from vars.
func fill(p prompter, names []string, vars map[string]float64) error {
	for _, n := range missing(names, vars) {
		v, err := p.Ask(n)
		if err != nil {
			return err
		}
		vars[n] = v
	}
	return nil
}
