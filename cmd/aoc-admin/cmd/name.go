package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/aoc-admin/internal/config"
	"github.com/oshokin/aoc-admin/internal/domain/aoc"
)

var (
	// nameNumber and nameDigits are the sequence number and padding width.
	nameNumber, nameDigits uint8

	// nameCmd prints a formatted package name without touching the workspace.
	nameCmd = &cobra.Command{
		Use:     "name [base-name]",
		Short:   "Print a formatted package name.",
		Example: "  aoc-admin name -n 5        # day-05\n  aoc-admin name job -n 123  # job-123",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseName := config.DefaultBaseName
			if len(args) > 0 {
				baseName = args[0]
			}

			pkg := aoc.NewPackage(baseName).WithSequenceNumber(nameNumber).WithDigits(nameDigits)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), pkg.FormattedName())

			return err
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	nameCmd.Flags().Uint8VarP(&nameNumber, "number", "n", 0, "package sequence number")
	nameCmd.Flags().Uint8VarP(&nameDigits, "digits", "d", config.DefaultDigits, "zero-padding width of the number")
}
