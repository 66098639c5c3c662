package cmd

import (
	"github.com/spf13/cobra"
)

// frameworksCmd represents the frameworks command.
var frameworksCmd = newFrameworksCmd()

func newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List supported framework selectors",
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Frameworks()
		},
	}
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}
