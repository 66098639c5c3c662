// Package cmd provides the root command and CLI setup for gatehound.
package cmd

import (
	"os"

	"github.com/mouse-blink/gatehound/internal/adapter"
	"github.com/mouse-blink/gatehound/internal/controller"
	"github.com/mouse-blink/gatehound/internal/domain"
	m "github.com/mouse-blink/gatehound/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatehound",
		Short: "Static route and auth-coverage scanner",
		Long: `Gatehound statically scans source trees for web route definitions
across common framework families and reports, for every route, whether
an authentication guard covers it.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./api/...      recursively scan api directory
  - ./svc ./web    scan multiple project roots`,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseFrameworks(flags []string) []m.Framework {
	out := make([]m.Framework, 0, len(flags))
	for _, flag := range flags {
		out = append(out, m.Framework(flag))
	}

	return out
}
