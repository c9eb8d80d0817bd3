// Package cli implements the heldkarp command-line interface.
//
// The CLI is a thin demo shell around the tsp package: load an instance
// (TOML city coordinates or a whitespace-separated distance matrix), run the
// selected evaluator, and print the optimal cost and tour. It is built with
// cobra and logs through charmbracelet/log; --verbose (-v) switches to
// debug-level output. Loggers travel through context.Context so commands
// never reach for globals.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the heldkarp CLI and returns an error if any command fails.
//
// The root command wires the solve subcommand, configures logging from the
// --verbose flag, and attaches the logger to the command context. ctx is the
// parent context; cancelling it aborts command execution.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "heldkarp",
		Short:        "Exact TSP solving with the Bellman–Held–Karp dynamic program",
		Long:         `heldkarp solves small Traveling Salesman instances exactly: load cities or a distance matrix, pick an evaluator (naive, memoized, tabulated), and get the optimal cost and tour.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newSolveCmd())

	return root.ExecuteContext(ctx)
}
