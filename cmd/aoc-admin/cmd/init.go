package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/aoc-admin/internal/workspace"
)

var (
	// initForce overwrites an existing settings file.
	initForce bool

	// initCmd writes the effective settings to the workspace settings file.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the workspace settings file with the current values.",
		Long: `Writes aoc-admin.yaml to the workspace root (or --config) with the settings currently in effect,
so they can be edited. An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := workspace.Resolve(cmd.Context(), workspace.Options{
				WorkspaceDir: workspaceDir,
				SettingsPath: settingsPath,
			})
			if err != nil {
				return err
			}

			if err = env.WriteSettings(initForce); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), env.SettingsFile)

			return err
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}
