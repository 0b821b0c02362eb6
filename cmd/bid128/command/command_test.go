package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	td := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "add", "1", "1"}, "+2E+0 [3040000000000000,0000000000000002] none\n"},
		{[]string{"eval", "div", "2", "3"}, "+6666666666666666666666666666666667E-34 [2ffd48b129c9052a,cfb3b442aaaaaaab] inexact\n"},
		{[]string{"eval", "-m", "Zero", "div", "2", "3"}, "+6666666666666666666666666666666666E-34 [2ffd48b129c9052a,cfb3b442aaaaaaaa] inexact\n"},
		{[]string{"eval", "--mode=4", "bid128_div", "1", "0"}, "+Inf [7800000000000000,0000000000000000] divbyzero\n"},
		{[]string{"eval", "--", "fma", "2", "3", "-Inf"}, "-Inf [f800000000000000,0000000000000000] none\n"},
	}
	for _, d := range td {
		out, _, err := execute(t, d.args...)
		require.NoError(t, err, "%v", d.args)
		require.Equal(t, d.want, out, "%v", d.args)
	}
}

func TestEvalErrors(t *testing.T) {
	for _, args := range [][]string{
		{"eval", "add", "1"},
		{"eval", "pow", "1", "2"},
		{"eval", "add", "1", "x"},
		{"eval", "--mode", "sideways", "add", "1", "2"},
		{"eval", "--log-level", "loud", "add", "1", "2"},
	} {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestEnvAndConfig(t *testing.T) {
	t.Setenv("BID128_MODE", "PositiveInf")
	out, _, err := execute(t, "eval", "div", "1", "3")
	require.NoError(t, err)
	require.Contains(t, out, "+3333333333333333333333333333333334E-34")

	// flags override the environment
	out, _, err = execute(t, "eval", "--mode", "0", "div", "1", "3")
	require.NoError(t, err)
	require.Contains(t, out, "+3333333333333333333333333333333333E-34")

	cfg := filepath.Join(t.TempDir(), "bid128.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("mode: NegativeInf\nlog-level: debug\n"), 0o644))
	t.Setenv("BID128_MODE", "")
	out, errOut, err := execute(t, "--config", cfg, "eval", "--", "div", "-1", "3")
	require.NoError(t, err)
	require.Contains(t, out, "-3333333333333333333333333333333334E-34")
	require.Contains(t, errOut, "configuration loaded")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "eval", "add", "1", "1")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("add 0 1 1 2 00\nmul 2 1E-6176 0.1 1E-6176 30\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("add 0 1 1 3\n"), 0o644))

	out, _, err := execute(t, "run", "-j", "1", good)
	require.NoError(t, err)
	require.Equal(t, good+": 2/2 passed\n", out)

	out, _, err = execute(t, "run", good, bad)
	require.Error(t, err)
	require.True(t, Error.Has(err))
	require.Contains(t, out, bad+": 0/1 passed")
	require.Contains(t, out, "got +2E+0")

	_, _, err = execute(t, "run", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
