package deployer

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/aoc-admin/internal/domain/aoc"
	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/service/pkgmanager"
	"github.com/oshokin/aoc-admin/internal/service/puzzle"
	"github.com/oshokin/aoc-admin/internal/workspace"
)

// Options are inputs accepted by the deploy entry point.
// Nil pointers and empty strings fall back to the settings file and the environment.
type Options struct {
	// WorkspaceDir overrides the workspace root.
	WorkspaceDir string
	// SettingsPath overrides the settings file location.
	SettingsPath string
	// BaseName is the package family name.
	BaseName string
	// Number is the package sequence number.
	Number *uint8
	// Digits is the zero-padding width.
	Digits *uint8
	// Day is the puzzle day; it also becomes the sequence number.
	Day *uint8
	// Year is the event year.
	Year *uint16
	// Token is the session token.
	Token string
	// StrictToken requires a 128 hex character token.
	StrictToken *bool
	// NoInput only scaffolds the package.
	NoInput bool
}

// Run resolves the environment and deploys the package described by opts.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "deployer")

	env, err := workspace.Resolve(ctx, workspace.Options{
		WorkspaceDir: opts.WorkspaceDir,
		SettingsPath: opts.SettingsPath,
	})
	if err != nil {
		return err
	}

	pkg := BuildPackage(env, opts, time.Now())

	logger.InfoKV(ctx, "Deploying package", "package", pkg.FormattedName(), "workspace", env.Root)

	manager := pkgmanager.NewCargo(env.Root, pkgmanager.WithProgram(env.Settings.PackageManager))
	client := puzzle.NewClient(
		puzzle.WithBaseURL(env.Settings.BaseURL),
		puzzle.WithUserAgent(env.Settings.UserAgent),
	)

	if err = New(manager, client, env.Filesystem()).Deploy(ctx, pkg); err != nil {
		return fmt.Errorf("deploy %s: %w", pkg.FormattedName(), err)
	}

	logger.Info(ctx, "Deployment completed")

	return nil
}

// BuildPackage combines opts with the settings and environment defaults of env.
func BuildPackage(env *workspace.Environment, opts *Options, now time.Time) aoc.Package {
	baseName := opts.BaseName
	digits := env.Settings.Digits

	if baseName == "" {
		baseName = env.Settings.BaseName
	}

	if opts.Digits != nil {
		digits = *opts.Digits
	}

	pkg := aoc.NewPackage(baseName).WithDigits(digits)

	if !opts.NoInput {
		spec := env.Spec(now)

		if opts.Year != nil {
			spec = spec.WithYear(*opts.Year)
		}

		if opts.Token != "" {
			spec = spec.WithToken(opts.Token)
		}

		if opts.StrictToken != nil {
			spec = spec.WithStrictToken(*opts.StrictToken)
		}

		pkg = pkg.WithSpec(spec)
	}

	// The sequence number also sets the day of the attached spec.
	switch {
	case opts.Day != nil:
		pkg = pkg.WithSequenceNumber(*opts.Day)
	case opts.Number != nil:
		pkg = pkg.WithSequenceNumber(*opts.Number)
	}

	return pkg
}
