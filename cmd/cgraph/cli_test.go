package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "", "eval", "sin(x) * (y + 2) + 3 * x * x", "--var", "x=0", "--var", "y=4")
	require.NoError(t, err)
	assert.Equal(t, "result = 0\nnodes  = 10\n", out)
}

func TestEval_Policies(t *testing.T) {
	for _, p := range []string{"eager", "lazy", "memo", "naive"} {
		out, err := run(t, "", "eval", "x / 4", "--var", "x=1", "--policy", p)
		require.NoError(t, err, p)
		assert.Contains(t, out, "result = 0.25", p)
	}
	_, err := run(t, "", "eval", "x", "--var", "x=1", "--policy", "parallel")
	assert.ErrorContains(t, err, "unknown policy")
}

func TestEval_Prompt(t *testing.T) {
	out, err := run(t, "1.5\n", "eval", "x * x")
	require.NoError(t, err)
	assert.Equal(t, "x = result = 2.25\nnodes  = 2\n", out)
}

func TestEval_Fold(t *testing.T) {
	out, err := run(t, "", "eval", "pow(2, 10) + x", "--var", "x=1", "--fold")
	require.NoError(t, err)
	assert.Contains(t, out, "result = 1025")
}

func TestEval_Errors(t *testing.T) {
	_, err := run(t, "", "eval", "tan(x)")
	assert.ErrorContains(t, err, "unknown function")

	_, err = run(t, "", "eval", "x", "--var", "x")
	assert.ErrorContains(t, err, "want name=value")

	_, err = run(t, "", "eval", "x + y", "--var", "x=1")
	assert.Error(t, err, "stdin exhausted before y")
}

func TestGrad(t *testing.T) {
	out, err := run(t, "", "grad", "sin(y) + x * y", "--var", "x=1", "--var", "y=5.25")
	require.NoError(t, err)
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	want := "value = " + f(math.Sin(5.25)+5.25) + "\n" +
		"d/dx = 5.25\n" +
		"d/dy = " + f(math.Cos(5.25)+1) + "\n"
	assert.Equal(t, want, out)
}

func TestDot(t *testing.T) {
	out, err := run(t, "", "dot", "(x * 3) * (x * 3)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `digraph "ComputationGraph" {`))
	assert.Equal(t, 4, strings.Count(out, "->"))

	out, err = run(t, "", "dot", "pow(2, 10)", "--fold", "--rankdir", "LR")
	require.NoError(t, err)
	assert.Contains(t, out, `label="1024"`)
	assert.Contains(t, out, "rankdir=LR;")
}

func TestDot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	out, err := run(t, "", "dot", "x + 1", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `label="x"`)

	_, err = run(t, "", "dot", "x", "--render")
	assert.ErrorContains(t, err, "--render requires -o")
}

func TestRepl(t *testing.T) {
	out, err := run(t, "1\n2\nbad\n3\n", "repl", "x * 10")
	require.NoError(t, err)
	assert.Contains(t, out, "result = 10\n")
	assert.Contains(t, out, "result = 20\n")
	assert.Contains(t, out, "result = 30\n")
	assert.Contains(t, out, "error  = x:")
}

func TestRepl_AllFixed(t *testing.T) {
	out, err := run(t, "", "repl", "x + y", "--var", "x=1", "--var", "y=2")
	require.NoError(t, err)
	assert.Equal(t, "result = 3\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evaluation:\n  policy: bogus\n"), 0o644))
	_, err := run(t, "", "--config", path, "eval", "1")
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = run(t, "", "--log-level", "loud", "eval", "1")
	assert.ErrorContains(t, err, "invalid configuration")
}
