package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gatehound/internal/domain"
	m "github.com/mouse-blink/gatehound/internal/model"
)

var vizFrameworkFlags []string
var vizExcludeFlags []string
var vizParallelFlag int
var vizPatternsFlag string

// vizCmd represents the viz command.
var vizCmd = newVizCmd()

func newVizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz [paths...]",
		Short: "Emit the route containment graph as DOT",
		Long: `Viz scans the given project roots and writes one Graphviz digraph per
root: scope nodes for routers, blueprints and namespaces, route nodes
colored by verdict, and edges for containment.`,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Viz(c.Context(), domain.VizArgs{
				ScanArgs: domain.ScanArgs{
					Roots:      parsePaths(args),
					Frameworks: parseFrameworks(vizFrameworkFlags),
					Exclude:    vizExcludeFlags,
					Workers:    vizParallelFlag,
					Patterns:   m.Path(vizPatternsFlag),
				},
			})
		},
	}
	cmd.Flags().StringArrayVarP(&vizFrameworkFlags, "framework", "f", nil, "restrict to a framework (can be repeated, default autodetect)")
	cmd.Flags().StringArrayVarP(&vizExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&vizParallelFlag, "parallel", "p", 4, "number of files extracted concurrently")
	cmd.Flags().StringVar(&vizPatternsFlag, "patterns", "", "YAML file extending the guard vocabulary")

	return cmd
}

func init() {
	rootCmd.AddCommand(vizCmd)
}
