package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/oshokin/aoc-admin/internal/config"
	"github.com/oshokin/aoc-admin/internal/domain/aoc"
	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/service/common"
)

const (
	// AssetsDirName is the shared assets directory under the AoC home.
	AssetsDirName = "assets"
	// TemplatesDirName is the package templates directory under the workspace root.
	TemplatesDirName = "templates"
)

// ErrSettingsExist is returned by WriteSettings when the file is already there.
var ErrSettingsExist = errors.New("settings file already exists")

// Options controls how the Environment is resolved.
type Options struct {
	// WorkspaceDir is an explicit workspace root; it wins over every other source.
	WorkspaceDir string
	// SettingsPath is the settings file; empty means <root>/aoc-admin.yaml.
	SettingsPath string
	// Program is the cargo executable used for `cargo metadata`.
	Program string
	// Runner starts cargo; nil means os/exec.
	Runner common.Runner
	// Process is the process environment; nil means the real one.
	Process config.Source
	// Locator replaces the default locator chain when set.
	Locator Locator
}

// Environment is the resolved context of one aoc-admin invocation.
// It is built once in the command and passed to the services explicitly.
type Environment struct {
	// Root is the workspace root holding the packages.
	Root string
	// Home is the AoC home, the root's grandparent.
	Home string
	// Source resolves configuration values.
	Source config.Source
	// Settings are the workspace settings.
	Settings *config.Settings
	// SettingsFile is the settings path, whether or not the file exists.
	SettingsFile string
	// EnvFiles are the dotenv files that were loaded.
	EnvFiles []string
}

// Resolve locates the workspace, loads settings and dotenv files and returns the Environment.
func Resolve(ctx context.Context, opts Options) (*Environment, error) {
	process := opts.Process
	if process == nil {
		process = config.ProcessEnv{}
	}

	locator := opts.Locator
	if locator == nil {
		locator = DefaultLocator(opts, process)
	}

	root, err := locator.ResolveRoot(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}

	home := filepath.Dir(filepath.Dir(root))

	settingsFile := opts.SettingsPath
	if settingsFile == "" {
		settingsFile = filepath.Join(root, config.DefaultSettingsFilename)
	}

	settings, found, err := config.Load(settingsFile)
	if err != nil {
		return nil, err
	}

	env, err := config.LoadEnvSource(ctx, osfs.New(home), process)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Environment resolved",
		"workspace", root, "home", home, "settings", settingsFile, "settings_found", found, "env_files", env.Files())

	return &Environment{
		Root:         root,
		Home:         home,
		Source:       withYearFallback(env, settings, root),
		Settings:     settings,
		SettingsFile: settingsFile,
		EnvFiles:     env.Files(),
	}, nil
}

// DefaultLocator returns the locator chain used when Options.Locator is nil.
func DefaultLocator(opts Options, process config.Source) Locator {
	program := opts.Program
	if program == "" {
		program = config.DefaultPackageManager
	}

	return Chain{
		Explicit(opts.WorkspaceDir),
		FromSource(process, WorkspaceKey),
		ManifestParent(process),
		CargoMetadata{Program: program, Runner: opts.Runner},
		GitTopLevel("."),
		WorkingDir(),
	}
}

// WriteSettings saves the current settings to SettingsFile.
// An existing file is kept unless overwrite is set.
func (e *Environment) WriteSettings(overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(e.SettingsFile); err == nil {
			return fmt.Errorf("%s: %w", e.SettingsFile, ErrSettingsExist)
		}
	}

	return config.Save(e.SettingsFile, e.Settings)
}

// AssetsDir returns the shared assets directory.
func (e *Environment) AssetsDir() string {
	return filepath.Join(e.Home, AssetsDirName)
}

// TemplatesDir returns the package templates directory.
func (e *Environment) TemplatesDir() string {
	return filepath.Join(e.Root, TemplatesDirName)
}

// Filesystem returns the workspace root as a billy filesystem.
//
//nolint:ireturn // billy.Filesystem is the abstraction the deployer writes through.
func (e *Environment) Filesystem() billy.Filesystem {
	return osfs.New(e.Root)
}

// Spec returns the puzzle spec defaults for this environment.
func (e *Environment) Spec(now time.Time) aoc.Spec {
	spec := aoc.SpecFromSource(e.Source, now)
	if e.Settings != nil {
		spec = spec.WithStrictToken(e.Settings.StrictToken)
	}

	return spec
}

// withYearFallback puts the settings year and a numeric parent directory name
// behind the environment as year sources.
func withYearFallback(env config.Source, settings *config.Settings, root string) config.Source {
	years := yearSource{env}

	if settings != nil && settings.Year != 0 {
		years = append(years, config.MapSource{aoc.YearKey: strconv.Itoa(int(settings.Year))})
	}

	years = append(years, config.MapSource{aoc.YearKey: filepath.Base(filepath.Dir(root))})

	return config.Chain{years, env}
}

// yearSource answers only for the year key, with the first layer whose value is a number.
type yearSource []config.Source

// Get implements config.Source.
func (y yearSource) Get(key string) (string, bool) {
	if key != aoc.YearKey {
		return "", false
	}

	for _, src := range y {
		value, ok := src.Get(key)
		if !ok {
			continue
		}

		value = strings.TrimSpace(value)
		if _, err := strconv.ParseUint(value, 10, 16); err == nil {
			return value, true
		}
	}

	return "", false
}
