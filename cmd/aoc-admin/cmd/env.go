package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/aoc-admin/internal/workspace"
)

// envCmd prints the resolved workspace and puzzle defaults.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the resolved workspace, AoC home and session settings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := workspace.Resolve(cmd.Context(), workspace.Options{
			WorkspaceDir: workspaceDir,
			SettingsPath: settingsPath,
		})
		if err != nil {
			return err
		}

		_, err = env.Summary(time.Now()).WriteTo(cmd.OutOrStdout())

		return err
	},
}
