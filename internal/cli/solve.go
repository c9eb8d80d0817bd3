package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// newSolveCmd builds the `heldkarp solve` subcommand.
//
// Input is either a TOML file of [[city]] coordinate entries (default) or,
// with --matrix, a whitespace-separated n×n distance matrix. The result is
// printed to stdout; diagnostics go to the context logger on stderr.
func newSolveCmd() *cobra.Command {
	var (
		algoFlag     string
		matrixInput  bool
		costMatching bool
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a TSP instance exactly and print the optimal tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			algo, err := parseAlgo(algoFlag)
			if err != nil {
				return err
			}

			var (
				dist   *matrix.Dense
				cities []City
			)
			if matrixInput {
				dist, err = loadMatrix(args[0])
			} else {
				cities, err = loadCities(args[0])
				if err == nil {
					dist, err = citiesToMatrix(cities)
				}
			}
			if err != nil {
				return err
			}
			logger.Debug("instance loaded", "file", args[0], "cities", dist.Rows())

			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.CostMatching = costMatching

			start := time.Now()
			res, err := tsp.Solve(dist, opts)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			logger.Info("solved",
				"algo", algo.String(),
				"cost", res.Cost,
				"elapsed", time.Since(start).Round(time.Microsecond))

			fmt.Fprintf(cmd.OutOrStdout(), "cost: %g\n", res.Cost)
			fmt.Fprintf(cmd.OutOrStdout(), "tour: %s\n", formatTour(res.Tour, cities))

			return nil
		},
	}

	cmd.Flags().StringVarP(&algoFlag, "algo", "a", "tabulated",
		"evaluator: naive, memoized or tabulated")
	cmd.Flags().BoolVarP(&matrixInput, "matrix", "m", false,
		"treat the input file as a raw distance matrix instead of TOML cities")
	cmd.Flags().BoolVar(&costMatching, "cost-matching", false,
		"tabulated only: reconstruct the tour by cost-matching instead of the choice table")

	return cmd
}

// formatTour renders a tour as "0 -> 2 -> 1 -> 0", substituting city names
// when the instance provided them.
func formatTour(tour []int, cities []City) string {
	parts := make([]string, len(tour))
	for i, c := range tour {
		if c < len(cities) && cities[c].Name != "" {
			parts[i] = cities[c].Name
			continue
		}
		parts[i] = fmt.Sprintf("%d", c)
	}

	return strings.Join(parts, " -> ")
}
