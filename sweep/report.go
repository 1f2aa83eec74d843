package sweep

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Report writes a human-readable summary of a sweep: solve counts, node
// statistics, and an ASCII histogram of nodes per date.
func Report(w io.Writer, results []Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}

	solved := lo.CountBy(results, func(r Result) bool { return r.Solved })
	nodes := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Nodes) })

	mean, std := stat.MeanStdDev(nodes, nil)
	min := lo.MinBy(results, func(a, b Result) bool { return a.Nodes < b.Nodes })
	max := lo.MaxBy(results, func(a, b Result) bool { return a.Nodes > b.Nodes })

	fmt.Fprintf(w, "solved %d of %d dates\n", solved, len(results))
	fmt.Fprintf(w, "nodes per date: mean %.0f, stddev %.0f\n", mean, std)
	fmt.Fprintf(w, "easiest: %s (%d nodes), hardest: %s (%d nodes)\n",
		min.Name, min.Nodes, max.Name, max.Nodes)

	hist := histogram.Hist(9, nodes)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// WriteYAML writes the full per-date results, boards included.
func WriteYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(results)
}
