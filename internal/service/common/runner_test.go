//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

// TestExecRunner_Capture checks stdout and stderr capture and exit codes.
func TestExecRunner_Capture(t *testing.T) {
	t.Parallel()
	requireShell(t)

	result, err := ExecRunner{}.Run(context.Background(), Command{
		Program: "sh",
		Args:    []string{"-c", "echo out; echo err >&2; exit 3"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.ExitCode)
	require.False(t, result.Success())
	require.Equal(t, "out\n", result.Stdout)
	require.Equal(t, "err\n", result.Stderr)
}

// TestExecRunner_Redirect sends stdout to a writer and drops stderr.
func TestExecRunner_Redirect(t *testing.T) {
	t.Parallel()
	requireShell(t)

	var out bytes.Buffer

	dir := t.TempDir()

	result, err := ExecRunner{}.Run(context.Background(), Command{
		Program:       "sh",
		Args:          []string{"-c", "pwd; echo err >&2"},
		Dir:           dir,
		Stdout:        &out,
		DiscardStderr: true,
	})
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Empty(t, result.Stdout)
	require.Empty(t, result.Stderr)
	require.NotEmpty(t, out.String())
}

// TestExecRunner_NotStarted reports programs that cannot be started as errors.
func TestExecRunner_NotStarted(t *testing.T) {
	t.Parallel()

	_, err := ExecRunner{}.Run(context.Background(), Command{Program: "aoc-admin-no-such-program"})
	require.Error(t, err)

	_, err = ExecRunner{}.Run(context.Background(), Command{})
	require.ErrorIs(t, err, ErrProgramRequired)
}

// TestCommand_String renders the command line.
func TestCommand_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cargo new day-05 --vcs none", Command{Program: "cargo", Args: []string{"new", "day-05", "--vcs", "none"}}.String())
	require.Equal(t, "cargo", Command{Program: "cargo"}.String())
}
