package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/aoc-admin/internal/domain/aoc"
	"github.com/oshokin/aoc-admin/internal/service/deployer"
)

// TestErrorChain prints the outermost context first and each cause once.
func TestErrorChain(t *testing.T) {
	t.Parallel()

	leaf := errors.New("exec: \"cargo\": executable file not found in $PATH")
	sentinel := errors.New("failed to execute command")

	err := fmt.Errorf("deploy day-05: %w",
		fmt.Errorf("ensure package day-05: %w",
			fmt.Errorf("%w: %q: %w", sentinel, "cargo update day-05", leaf)))

	require.Equal(t, []string{
		"deploy day-05",
		"ensure package day-05",
		`failed to execute command: "cargo update day-05"`,
		leaf.Error(),
	}, errorChain(err))

	var buf bytes.Buffer

	printErrorChain(&buf, fmt.Errorf("validate puzzle: %w", fmt.Errorf("day 60: %w", aoc.ErrDayOutOfRange)))
	require.Equal(t, "error: validate puzzle\n  caused by: day 60\n  caused by: day out of range\n", buf.String())
}

// TestErrorChain_TypedError keeps typed errors that do not wrap.
func TestErrorChain_TypedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("deploy day-05: %w", &deployer.CommandError{Command: "cargo new day-05 --vcs none", ExitCode: 101})

	lines := errorChain(err)
	require.Len(t, lines, 2)
	require.Equal(t, "deploy day-05", lines[0])
	require.Contains(t, lines[1], "exited with status 101")
}

// TestNameCommand runs the name subcommand through the root command.
func TestNameCommand(t *testing.T) {
	cases := []struct {
		args   []string
		expect string
	}{
		{[]string{"name", "-n", "5"}, "day-05\n"},
		{[]string{"name", "job", "-n", "123", "-d", "2"}, "job-123\n"},
		{[]string{"name", "-n", "0", "-d", "0"}, "day-0\n"},
	}

	for _, tc := range cases {
		var out bytes.Buffer

		rootCmd.SetOut(&out)
		rootCmd.SetArgs(tc.args)
		require.NoError(t, rootCmd.Execute())
		require.Equal(t, tc.expect, out.String())
	}
}

// TestDeployOptions only forwards flags that were set.
func TestDeployOptions(t *testing.T) {
	require.NoError(t, deployCmd.ParseFlags([]string{"--day", "7", "--token", "abc", "--strict-token=false"}))

	opts := deployOptions(deployCmd, []string{"puzzle"})
	require.Equal(t, "puzzle", opts.BaseName)
	require.Equal(t, "abc", opts.Token)
	require.NotNil(t, opts.Day)
	require.Equal(t, uint8(7), *opts.Day)
	require.NotNil(t, opts.StrictToken)
	require.False(t, *opts.StrictToken)
	require.Nil(t, opts.Number)
	require.Nil(t, opts.Digits)
	require.Nil(t, opts.Year)
	require.False(t, opts.NoInput)
}

// TestDeployCommand_DayAndNumberConflict refuses an ambiguous package number.
func TestDeployCommand_DayAndNumberConflict(t *testing.T) {
	rootCmd.SetArgs([]string{"deploy", "--day", "3", "--number", "4", "--workspace", t.TempDir()})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "day")
	require.Contains(t, err.Error(), "number")
}
