package deployer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"

	"github.com/oshokin/aoc-admin/internal/domain/aoc"
	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/service/pkgmanager"
)

const (
	// DirPermissions is used for directories created by Deploy.
	DirPermissions os.FileMode = 0o755
	// FilePermissions is used for the input file.
	FilePermissions os.FileMode = 0o644
)

var (
	// ErrPackageCommandFailed is matched by CommandError.
	ErrPackageCommandFailed = errors.New("package manager command failed")
	// ErrPersist wraps failures to create the assets directory or write the input.
	ErrPersist = errors.New("persist puzzle input")
)

// CommandError reports that both the update and the create command failed.
type CommandError struct {
	// Command is the create command line.
	Command string
	// ExitCode is its exit code.
	ExitCode int
	// Stderr is its standard error output.
	Stderr string
}

// Error implements error.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %q exited with status %d", ErrPackageCommandFailed, e.Command, e.ExitCode)

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\nerror output: " + stderr
	}

	return msg
}

// Is makes errors.Is(err, ErrPackageCommandFailed) match.
func (e *CommandError) Is(target error) bool {
	return target == ErrPackageCommandFailed
}

// InputFetcher downloads the input of a puzzle.
type InputFetcher interface {
	FetchInput(ctx context.Context, spec aoc.Spec) ([]byte, error)
}

// Deployer runs deployments against one workspace.
type Deployer struct {
	// manager makes sure packages exist.
	manager pkgmanager.Manager
	// fetcher downloads puzzle input.
	fetcher InputFetcher
	// fs is rooted at the workspace root.
	fs billy.Filesystem
}

// New returns a Deployer writing through fs, which must be rooted at the workspace root.
func New(manager pkgmanager.Manager, fetcher InputFetcher, fs billy.Filesystem) *Deployer {
	return &Deployer{
		manager: manager,
		fetcher: fetcher,
		fs:      fs,
	}
}

// Deploy validates, ensures the package, fetches and persists the input.
// Without an attached spec only the package is ensured.
func (d *Deployer) Deploy(ctx context.Context, pkg aoc.Package) error {
	name := pkg.FormattedName()
	// deployment_id correlates the log records of one Deploy call.
	ctx = logger.WithKV(ctx, "package", name, "deployment_id", uuid.NewString())

	spec, hasSpec := pkg.Spec()
	if hasSpec {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("validate puzzle: %w", err)
		}
	}

	logger.Info(ctx, "Ensuring package exists")

	outcome, err := d.manager.EnsurePackage(ctx, name)
	if err != nil {
		return fmt.Errorf("ensure package %s: %w", name, err)
	}

	if !outcome.Ok() {
		return &CommandError{
			Command:  outcome.Command,
			ExitCode: outcome.ExitCode,
			Stderr:   outcome.Stderr,
		}
	}

	logger.InfoKV(ctx, "Package ready", "outcome", outcome.Kind.String())

	if !hasSpec {
		return nil
	}

	logger.InfoKV(ctx, "Fetching puzzle input", "year", spec.Year, "day", spec.Day)

	data, err := d.fetcher.FetchInput(ctx, spec)
	if err != nil {
		return fmt.Errorf("fetch input for %s: %w", name, err)
	}

	inputPath := pkg.InputPath()
	if err = d.persist(inputPath, data); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Puzzle input saved", "path", inputPath, "bytes", len(data))

	return nil
}

// persist creates the parent directories of name and writes data to it.
func (d *Deployer) persist(name string, data []byte) error {
	if err := d.fs.MkdirAll(path.Dir(name), DirPermissions); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrPersist, path.Dir(name), err)
	}

	if err := util.WriteFile(d.fs, name, data, FilePermissions); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersist, name, err)
	}

	return nil
}
