package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gatehound/internal/domain"
	m "github.com/mouse-blink/gatehound/internal/model"
)

var whichFrameworkFlags []string
var whichExcludeFlags []string
var whichParallelFlag int
var whichSortFlag string
var whichUnprotectedFlag bool
var whichPatternsFlag string
var whichOutputFlag string

// whichCmd represents the which command.
var whichCmd = newWhichCmd()

func newWhichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "which [paths...]",
		Short: "List routes and their auth coverage",
		Long: `Which scans the given project roots, resolves every route through its
mount prefixes, and lists each one with a verdict: PROTECTED,
INHERITED_PROTECTED, UNPROTECTED or AMBIGUOUS.`,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Which(c.Context(), domain.WhichArgs{
				ScanArgs: domain.ScanArgs{
					Roots:      parsePaths(args),
					Frameworks: parseFrameworks(whichFrameworkFlags),
					Exclude:    whichExcludeFlags,
					Workers:    whichParallelFlag,
					Patterns:   m.Path(whichPatternsFlag),
				},
				Sort:            whichSortFlag,
				UnprotectedOnly: whichUnprotectedFlag,
				Output:          m.Path(whichOutputFlag),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&whichFrameworkFlags, "framework", "f", nil, "restrict to a framework (can be repeated, default autodetect)")
	cmd.Flags().StringArrayVarP(&whichExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&whichParallelFlag, "parallel", "p", 4, "number of files extracted concurrently")
	cmd.Flags().StringVar(&whichSortFlag, "sort", domain.SortByPath, "listing order: path or file")
	cmd.Flags().BoolVar(&whichUnprotectedFlag, "unprotected-only", false, "list only UNPROTECTED and AMBIGUOUS routes")
	cmd.Flags().StringVar(&whichPatternsFlag, "patterns", "", "YAML file extending the guard vocabulary")
	cmd.Flags().StringVarP(&whichOutputFlag, "output", "o", "", "save scan results as JSON to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
