package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const squareTOML = `
[[city]]
name = "A"
x = 0.0
y = 0.0

[[city]]
name = "B"
x = 4.0
y = 4.0

[[city]]
name = "C"
x = 4.0
y = 0.0

[[city]]
name = "D"
x = 0.0
y = 4.0
`

func runSolve(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newSolveCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolveCmd_Cities(t *testing.T) {
	path := writeFile(t, "square.toml", squareTOML)

	out, err := runSolve(t, path)
	require.NoError(t, err)
	require.Contains(t, out, "cost: 16")
	require.Contains(t, out, "tour: A -> C -> B -> D -> A")
}

func TestSolveCmd_MatrixInput(t *testing.T) {
	path := writeFile(t, "ring.txt", "0 1 2 1\n1 0 1 2\n2 1 0 1\n1 2 1 0\n")

	out, err := runSolve(t, "--matrix", "--algo", "memoized", path)
	require.NoError(t, err)
	require.Contains(t, out, "cost: 4")
}

func TestSolveCmd_BadAlgo(t *testing.T) {
	path := writeFile(t, "square.toml", squareTOML)

	_, err := runSolve(t, "--algo", "christofides", path)
	require.ErrorContains(t, err, "unknown algorithm")
}

func TestSolveCmd_MissingFile(t *testing.T) {
	_, err := runSolve(t, "does-not-exist.toml")
	require.Error(t, err)
}
