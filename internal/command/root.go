// Package command implements the behaviorkit command line.
package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command with every subcommand attached.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "behaviorkit",
		Short:         "Run polling behavior trees",
		Long:          `behaviorkit drives a behavior tree once per tick and reports what it did.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newVersionCommand(version))
	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "behaviorkit %s\n", version)
			return err
		},
	}
}
