package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gatehound/internal/domain"
	m "github.com/mouse-blink/gatehound/internal/model"
)

var browseFrameworkFlags []string
var browseExcludeFlags []string
var browseParallelFlag int
var browsePatternsFlag string

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [paths...]",
		Short: "Browse routes interactively",
		Long: `Browse scans the given project roots and opens an interactive route
browser. When output is not a terminal it falls back to the plain
listing.`,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Browse(c.Context(), domain.BrowseArgs{
				ScanArgs: domain.ScanArgs{
					Roots:      parsePaths(args),
					Frameworks: parseFrameworks(browseFrameworkFlags),
					Exclude:    browseExcludeFlags,
					Workers:    browseParallelFlag,
					Patterns:   m.Path(browsePatternsFlag),
				},
			})
		},
	}
	cmd.Flags().StringArrayVarP(&browseFrameworkFlags, "framework", "f", nil, "restrict to a framework (can be repeated, default autodetect)")
	cmd.Flags().StringArrayVarP(&browseExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&browseParallelFlag, "parallel", "p", 4, "number of files extracted concurrently")
	cmd.Flags().StringVar(&browsePatternsFlag, "patterns", "", "YAML file extending the guard vocabulary")

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
