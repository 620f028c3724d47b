package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/service/common"
)

// DefaultProgram is the package manager executable.
const DefaultProgram = "cargo"

var (
	// ErrCommandExecution is returned when a package manager command could not be started.
	ErrCommandExecution = errors.New("package manager command could not be executed")
	// errNameRequired is returned for an empty package name.
	errNameRequired = errors.New("package name must be provided")
)

// OutcomeKind tells how EnsurePackage ended.
type OutcomeKind int

const (
	// OutcomeFailed means both update and create exited with a non-zero status.
	OutcomeFailed OutcomeKind = iota
	// OutcomeUpdated means the package already existed and was updated.
	OutcomeUpdated
	// OutcomeCreated means the package was created.
	OutcomeCreated
)

// String implements fmt.Stringer.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUpdated:
		return "updated"
	case OutcomeCreated:
		return "created"
	default:
		return "failed"
	}
}

// Outcome is the result of EnsurePackage.
// Command, ExitCode and Stderr describe the create command and are set only when Kind is OutcomeFailed.
type Outcome struct {
	Kind     OutcomeKind
	Command  string
	ExitCode int
	Stderr   string
}

// Ok reports whether the package exists after the call.
func (o Outcome) Ok() bool {
	return o.Kind == OutcomeUpdated || o.Kind == OutcomeCreated
}

// Manager makes sure a package exists.
type Manager interface {
	EnsurePackage(ctx context.Context, name string) (Outcome, error)
}

// Cargo is a Manager driving the cargo command line.
type Cargo struct {
	// program is the executable, "cargo" by default.
	program string
	// dir is the workspace root the commands run in.
	dir string
	// runner starts the commands.
	runner common.Runner
	// stdout receives the update command's output.
	stdout io.Writer
}

// Option configures Cargo.
type Option func(*Cargo)

// WithProgram sets the executable.
func WithProgram(program string) Option {
	return func(c *Cargo) {
		if program != "" {
			c.program = program
		}
	}
}

// WithRunner sets the command runner.
func WithRunner(runner common.Runner) Option {
	return func(c *Cargo) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// WithStdout sets where the update command's output goes.
func WithStdout(w io.Writer) Option {
	return func(c *Cargo) {
		c.stdout = w
	}
}

// NewCargo returns a Cargo manager running commands in dir.
func NewCargo(dir string, opts ...Option) *Cargo {
	c := &Cargo{
		program: DefaultProgram,
		dir:     dir,
		runner:  common.ExecRunner{},
		stdout:  os.Stdout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// EnsurePackage updates the package or, if the update fails, creates it.
// It returns an error only when a command could not be started.
func (c *Cargo) EnsurePackage(ctx context.Context, name string) (Outcome, error) {
	if strings.TrimSpace(name) == "" {
		return Outcome{}, errNameRequired
	}

	update := c.command("update", name)
	update.Stdout = c.stdout
	update.DiscardStderr = true

	logger.DebugKV(ctx, "Updating package", "command", update.String())

	result, err := c.runner.Run(ctx, update)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %q: %w", ErrCommandExecution, update.String(), err)
	}

	if result.Success() {
		return Outcome{Kind: OutcomeUpdated}, nil
	}

	create := c.command("new", name, "--vcs", "none")

	logger.DebugKV(ctx, "Update failed, creating package",
		"update_exit_code", result.ExitCode, "command", create.String())

	result, err = c.runner.Run(ctx, create)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %q: %w", ErrCommandExecution, create.String(), err)
	}

	if result.Success() {
		return Outcome{Kind: OutcomeCreated}, nil
	}

	return Outcome{
		Kind:     OutcomeFailed,
		Command:  create.String(),
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
	}, nil
}

func (c *Cargo) command(args ...string) common.Command {
	return common.Command{
		Program: c.program,
		Args:    args,
		Dir:     c.dir,
	}
}
