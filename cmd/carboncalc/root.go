package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the carboncalc command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "carboncalc",
		Short:         "Greenhouse-gas emissions calculator",
		Long:          "carboncalc computes scope 1/2/3 emissions from activity data using the embedded emission factor registry.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(newCalculateCmd())
	cmd.AddCommand(newFactorsCmd())

	return cmd
}
