package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/aoc-admin/internal/service/deployer"
)

var (
	// deployFlags holds the raw flag values; Changed decides which ones override settings.
	deployFlags struct {
		number      uint8
		digits      uint8
		day         uint8
		year        uint16
		token       string
		strictToken bool
		noInput     bool
	}

	// deployCmd makes sure a package exists and stores its puzzle input.
	deployCmd = &cobra.Command{
		Use:   "deploy [base-name]",
		Short: "Create or update a package and download its puzzle input.",
		Long: `Runs "cargo update <name>" and falls back to "cargo new <name> --vcs none" when the package
does not exist yet. The puzzle input is then written to <name>/assets/input.txt.

--day sets both the package number and the puzzle day and cannot be combined with --number.
With --no-input only the package is handled.`,
		Example: `  aoc-admin deploy --day 5
  aoc-admin deploy job -n 3 -d 3 --no-input`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return deployer.Run(ctx, deployOptions(cmd, args))
		},
	}
)

// deployOptions turns the parsed flags into deployer options.
func deployOptions(cmd *cobra.Command, args []string) *deployer.Options {
	flags := cmd.Flags()
	opts := &deployer.Options{
		WorkspaceDir: workspaceDir,
		SettingsPath: settingsPath,
		Token:        deployFlags.token,
		NoInput:      deployFlags.noInput,
	}

	if len(args) > 0 {
		opts.BaseName = args[0]
	}

	if flags.Changed("number") {
		opts.Number = &deployFlags.number
	}

	if flags.Changed("digits") {
		opts.Digits = &deployFlags.digits
	}

	if flags.Changed("day") {
		opts.Day = &deployFlags.day
	}

	if flags.Changed("year") {
		opts.Year = &deployFlags.year
	}

	if flags.Changed("strict-token") {
		opts.StrictToken = &deployFlags.strictToken
	}

	return opts
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := deployCmd.Flags()
	flags.Uint8VarP(&deployFlags.number, "number", "n", 0, "package sequence number")
	flags.Uint8VarP(&deployFlags.digits, "digits", "d", 0, "zero-padding width of the number (default from settings)")
	flags.Uint8Var(&deployFlags.day, "day", 0, "puzzle day, also used as the package number")
	flags.Uint16VarP(&deployFlags.year, "year", "y", 0, "event year (default: AOC_SESSION_YEAR or the current year)")
	flags.StringVar(&deployFlags.token, "token", "", "session token (default: AOC_SESSION_TOKEN)")
	flags.BoolVar(&deployFlags.strictToken, "strict-token", false, "require a 128 character hex session token")
	flags.BoolVar(&deployFlags.noInput, "no-input", false, "only create or update the package")

	deployCmd.MarkFlagsMutuallyExclusive("day", "number")
}
