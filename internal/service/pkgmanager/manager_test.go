package pkgmanager

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/aoc-admin/internal/service/common"
)

// fakeRunner replays results per subcommand and records every call.
type fakeRunner struct {
	results map[string]common.Result
	errs    map[string]error
	calls   []common.Command
}

func (f *fakeRunner) Run(_ context.Context, cmd common.Command) (common.Result, error) {
	f.calls = append(f.calls, cmd)

	sub := cmd.Args[0]
	if err := f.errs[sub]; err != nil {
		return common.Result{}, err
	}

	return f.results[sub], nil
}

// TestEnsurePackage_Updated stops after a successful update.
func TestEnsurePackage_Updated(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{results: map[string]common.Result{"update": {}}}
	cargo := NewCargo("/ws", WithRunner(runner), WithStdout(nil))

	outcome, err := cargo.EnsurePackage(context.Background(), "day-05")
	require.NoError(t, err)
	require.Equal(t, OutcomeUpdated, outcome.Kind)
	require.True(t, outcome.Ok())

	require.Len(t, runner.calls, 1)
	require.Equal(t, "cargo update day-05", runner.calls[0].String())
	require.Equal(t, "/ws", runner.calls[0].Dir)
	require.True(t, runner.calls[0].DiscardStderr)
}

// TestEnsurePackage_Created falls back to create when update fails.
func TestEnsurePackage_Created(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{results: map[string]common.Result{
		"update": {ExitCode: 101, Stderr: "package ID specification `day-05` did not match"},
		"new":    {},
	}}
	cargo := NewCargo("/ws", WithRunner(runner), WithProgram("/opt/cargo"))

	outcome, err := cargo.EnsurePackage(context.Background(), "day-05")
	require.NoError(t, err)
	require.Equal(t, Outcome{Kind: OutcomeCreated}, outcome)

	require.Len(t, runner.calls, 2)
	require.Equal(t, "/opt/cargo new day-05 --vcs none", runner.calls[1].String())
	require.False(t, runner.calls[1].DiscardStderr)
}

// TestEnsurePackage_Failed reports the create command when both attempts fail.
func TestEnsurePackage_Failed(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{results: map[string]common.Result{
		"update": {ExitCode: 101, Stderr: "update noise"},
		"new":    {ExitCode: 101, Stderr: "error: destination `day-05` already exists"},
	}}
	cargo := NewCargo("/ws", WithRunner(runner))

	outcome, err := cargo.EnsurePackage(context.Background(), "day-05")
	require.NoError(t, err)
	require.False(t, outcome.Ok())
	require.Equal(t, Outcome{
		Kind:     OutcomeFailed,
		Command:  "cargo new day-05 --vcs none",
		ExitCode: 101,
		Stderr:   "error: destination `day-05` already exists",
	}, outcome)
}

// TestEnsurePackage_SpawnFailure returns an error when a command cannot start.
func TestEnsurePackage_SpawnFailure(t *testing.T) {
	t.Parallel()

	spawn := errors.New("executable file not found")

	runner := &fakeRunner{errs: map[string]error{"update": spawn}}
	_, err := NewCargo("/ws", WithRunner(runner)).EnsurePackage(context.Background(), "day-05")
	require.ErrorIs(t, err, ErrCommandExecution)
	require.ErrorIs(t, err, spawn)
	require.Len(t, runner.calls, 1)

	runner = &fakeRunner{
		results: map[string]common.Result{"update": {ExitCode: 1}},
		errs:    map[string]error{"new": spawn},
	}
	_, err = NewCargo("/ws", WithRunner(runner)).EnsurePackage(context.Background(), "day-05")
	require.ErrorIs(t, err, ErrCommandExecution)
	require.Contains(t, err.Error(), "cargo new day-05")
}

// TestEnsurePackage_EmptyName runs nothing.
func TestEnsurePackage_EmptyName(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	_, err := NewCargo("/ws", WithRunner(runner)).EnsurePackage(context.Background(), " ")
	require.Error(t, err)
	require.Empty(t, runner.calls)
}

// TestEnsurePackage_ExecRunner drives a stand-in cargo script through os/exec.
func TestEnsurePackage_ExecRunner(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-cargo")
	body := "#!/bin/sh\n" +
		"case \"$1\" in\n" +
		"update) [ -d \"$2\" ] || { echo 'no such package' >&2; exit 101; } ;;\n" +
		"new) mkdir \"$2\" || exit 101 ;;\n" +
		"esac\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755)) //nolint:gosec // Test script must be executable.

	cargo := NewCargo(dir, WithProgram(script), WithStdout(nil))

	outcome, err := cargo.EnsurePackage(context.Background(), "day-01")
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, outcome.Kind)
	require.DirExists(t, filepath.Join(dir, "day-01"))

	outcome, err = cargo.EnsurePackage(context.Background(), "day-01")
	require.NoError(t, err)
	require.Equal(t, OutcomeUpdated, outcome.Kind)
}

// TestOutcomeKind_String names every kind.
func TestOutcomeKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "updated", OutcomeUpdated.String())
	require.Equal(t, "created", OutcomeCreated.String())
	require.Equal(t, "failed", OutcomeFailed.String())
}
