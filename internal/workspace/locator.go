package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/oshokin/aoc-admin/internal/config"
	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/service/common"
)

const (
	// WorkspaceKey overrides the workspace root.
	WorkspaceKey = "AOC_WORKSPACE"
	// ManifestDirKey is set by cargo for build scripts and `cargo run`.
	ManifestDirKey = "CARGO_MANIFEST_DIR"
)

var (
	// ErrNotLocated is returned by a Locator that has no answer.
	ErrNotLocated = errors.New("workspace directory not located")
	// errEmptyWorkspaceRoot is returned when cargo metadata has no workspace_root.
	errEmptyWorkspaceRoot = errors.New("cargo metadata has an empty workspace_root")
)

// Locator resolves the workspace root directory.
type Locator interface {
	ResolveRoot(ctx context.Context) (string, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (string, error)

// ResolveRoot implements Locator.
func (f LocatorFunc) ResolveRoot(ctx context.Context) (string, error) {
	return f(ctx)
}

// Chain tries each locator in order and returns the first root found.
// Failures other than ErrNotLocated are logged and the next locator is tried.
type Chain []Locator

// ResolveRoot implements Locator.
func (c Chain) ResolveRoot(ctx context.Context) (string, error) {
	for _, locator := range c {
		root, err := locator.ResolveRoot(ctx)
		if err == nil {
			return root, nil
		}

		if !errors.Is(err, ErrNotLocated) {
			logger.DebugKV(ctx, "Workspace locator failed", "error", err)
		}
	}

	return "", ErrNotLocated
}

// Explicit returns dir when it is set.
func Explicit(dir string) Locator {
	return LocatorFunc(func(context.Context) (string, error) {
		if dir == "" {
			return "", ErrNotLocated
		}

		return filepath.Abs(dir)
	})
}

// FromSource returns the directory stored under key in src.
func FromSource(src config.Source, key string) Locator {
	return LocatorFunc(func(context.Context) (string, error) {
		dir, ok := src.Get(key)
		if !ok || dir == "" {
			return "", ErrNotLocated
		}

		return filepath.Abs(dir)
	})
}

// ManifestParent returns the parent of the package manifest directory found in src.
func ManifestParent(src config.Source) Locator {
	return LocatorFunc(func(context.Context) (string, error) {
		dir, ok := src.Get(ManifestDirKey)
		if !ok || dir == "" {
			return "", ErrNotLocated
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", err
		}

		return filepath.Dir(abs), nil
	})
}

// CargoMetadata asks cargo for the workspace root of dir.
type CargoMetadata struct {
	// Program is the cargo executable.
	Program string
	// Dir is where cargo runs.
	Dir string
	// Runner starts cargo.
	Runner common.Runner
}

type cargoMetadata struct {
	WorkspaceRoot string `json:"workspace_root"`
}

// ResolveRoot implements Locator.
func (m CargoMetadata) ResolveRoot(ctx context.Context) (string, error) {
	runner := m.Runner
	if runner == nil {
		runner = common.ExecRunner{}
	}

	cmd := common.Command{
		Program:       m.Program,
		Args:          []string{"metadata", "--no-deps", "--format-version", "1"},
		Dir:           m.Dir,
		DiscardStderr: true,
	}

	result, err := runner.Run(ctx, cmd)
	if err != nil {
		return "", err
	}

	if !result.Success() {
		return "", fmt.Errorf("%q exited with %d: %w", cmd.String(), result.ExitCode, ErrNotLocated)
	}

	var meta cargoMetadata
	if err = json.Unmarshal([]byte(result.Stdout), &meta); err != nil {
		return "", fmt.Errorf("decode cargo metadata: %w", err)
	}

	if strings.TrimSpace(meta.WorkspaceRoot) == "" {
		return "", errEmptyWorkspaceRoot
	}

	return filepath.Clean(meta.WorkspaceRoot), nil
}

// GitTopLevel returns the worktree root of the git repository enclosing dir.
func GitTopLevel(dir string) Locator {
	return LocatorFunc(func(context.Context) (string, error) {
		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotLocated
		}

		if err != nil {
			return "", fmt.Errorf("open git repository: %w", err)
		}

		worktree, err := repo.Worktree()
		if err != nil {
			return "", fmt.Errorf("git worktree: %w", err)
		}

		return worktree.Filesystem.Root(), nil
	})
}

// WorkingDir returns the current working directory.
func WorkingDir() Locator {
	return LocatorFunc(func(context.Context) (string, error) {
		return os.Getwd()
	})
}
