package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gatehound/internal/domain"
	m "github.com/mouse-blink/gatehound/internal/model"
)

var viewSortFlag string
var viewUnprotectedFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Re-list a previously saved scan",
		Long: `View loads the JSON report written by 'which --output' and lists it
through the same table, without re-reading the source tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{
				Input:           m.Path(args[0]),
				Sort:            viewSortFlag,
				UnprotectedOnly: viewUnprotectedFlag,
			})
		},
	}
	cmd.Flags().StringVar(&viewSortFlag, "sort", domain.SortByPath, "listing order: path or file")
	cmd.Flags().BoolVar(&viewUnprotectedFlag, "unprotected-only", false, "list only UNPROTECTED and AMBIGUOUS routes")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
