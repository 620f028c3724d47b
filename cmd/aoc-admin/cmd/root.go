package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/aoc-admin/internal/logger"
	"github.com/oshokin/aoc-admin/internal/version"
)

var (
	// workspaceDir overrides the detected workspace root.
	workspaceDir string
	// settingsPath overrides <root>/aoc-admin.yaml.
	settingsPath string
	// logLevel is the minimum level written to stderr.
	logLevel string

	// rootCmd is the aoc-admin entry point; the work happens in subcommands.
	rootCmd = &cobra.Command{
		Use:   version.Name,
		Short: "Scaffold Advent of Code solution packages.",
		Long: `Creates or updates cargo packages for Advent of Code puzzles and downloads their input.

The workspace root is taken from --workspace, AOC_WORKSPACE, the parent of CARGO_MANIFEST_DIR,
cargo metadata, the enclosing git repository or the working directory, in that order.
Session token and year come from the shell environment or *.env files under the AoC home.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			lvl, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(lvl)

			return nil
		},
	}
)

// Execute runs the aoc-admin CLI and exits with status 1 on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	logger.Sync()

	if err != nil {
		printErrorChain(os.Stderr, err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&workspaceDir, "workspace", "w", "", "workspace root (default: detected)")
	flags.StringVarP(&settingsPath, "config", "c", "", "path to settings file (default: <workspace>/aoc-admin.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(deployCmd, nameCmd, envCmd, initCmd)
}
