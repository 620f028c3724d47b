//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrProgramRequired is returned when a command has no program.
var ErrProgramRequired = errors.New("program must be provided")

// Command describes one program invocation.
type Command struct {
	// Program is the executable name or path.
	Program string
	// Args are passed to the program as is.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdout receives the program's standard output instead of the capture buffer.
	Stdout io.Writer
	// DiscardStderr drops standard error instead of capturing it.
	DiscardStderr bool
}

// String renders the command line for messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of a command that was started.
type Result struct {
	// ExitCode is the process exit code.
	ExitCode int
	// Stdout is the captured standard output, empty when Command.Stdout was set.
	Stdout string
	// Stderr is the captured standard error, empty when discarded.
	Stderr string
}

// Success reports whether the program exited with code zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner starts a command and waits for it.
// A non-zero exit is a Result; an error means the command did not run.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Program == "" {
		return Result{}, ErrProgramRequired
	}

	var stdout, stderr bytes.Buffer

	process := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	process.Dir = cmd.Dir

	process.Stdout = &stdout
	if cmd.Stdout != nil {
		process.Stdout = cmd.Stdout
	}

	if !cmd.DiscardStderr {
		process.Stderr = &stderr
	}

	err := process.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if err != nil {
		return result, fmt.Errorf("run %q: %w", cmd.String(), err)
	}

	return result, nil
}
