package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// City is one entry of a TOML instance file:
//
//	[[city]]
//	name = "Depot"
//	x = 0.0
//	y = 0.0
//
// Name is optional; unnamed cities are reported by index.
type City struct {
	Name string  `toml:"name"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// instanceFile is the top-level TOML document shape.
type instanceFile struct {
	City []City `toml:"city"`
}

// loadCities decodes a TOML instance file into its city list.
func loadCities(path string) ([]City, error) {
	var doc instanceFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.City) == 0 {
		return nil, fmt.Errorf("parse %s: no [[city]] entries", path)
	}

	return doc.City, nil
}

// citiesToMatrix builds the Euclidean distance matrix of the loaded cities.
func citiesToMatrix(cities []City) (*matrix.Dense, error) {
	pts := make([]matrix.Point, len(cities))
	for i, c := range cities {
		pts[i] = matrix.Point{X: c.X, Y: c.Y}
	}

	return matrix.NewEuclidean(pts)
}

// loadMatrix reads a plain-text distance matrix: one row per line,
// whitespace-separated float64 entries, blank lines ignored. The tsp package
// validates squareness and value constraints; this parser only checks that
// rows are rectangular so error positions stay readable.
func loadMatrix(path string) (*matrix.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	for lineNo, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // blank or whitespace-only line
		}
		row := make([]float64, len(fields))
		for col, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s: line %d, column %d: %w", path, lineNo+1, col+1, err)
			}
			row[col] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("parse %s: line %d has %d entries, want %d", path, lineNo+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse %s: empty matrix", path)
	}

	return matrix.NewDenseFromRows(rows)
}

// parseAlgo maps the --algo flag value to an evaluator.
func parseAlgo(s string) (tsp.Algo, error) {
	switch strings.ToLower(s) {
	case "naive":
		return tsp.NaiveRecursive, nil
	case "memoized", "memo":
		return tsp.TopDownMemo, nil
	case "tabulated", "table":
		return tsp.BottomUpTable, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want naive, memoized or tabulated)", s)
	}
}
