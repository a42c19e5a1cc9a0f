package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotWorkload draws per-op latency against workload size, one line per
// engine, and saves a PNG next to the CSV.
func plotWorkload(results []BenchResult, wType WorkloadType, outDir string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("B-tree latency, %s", wType)
	p.X.Label.Text = "operations"
	p.Y.Label.Text = "ns/op"
	p.Legend.Top = true

	lines := make(map[string]plotter.XYs)
	for _, res := range results {
		if res.Workload != string(wType) {
			continue
		}
		lines[res.Engine] = append(lines[res.Engine], plotter.XY{
			X: float64(res.Ops),
			Y: float64(res.LatencyNs),
		})
	}

	var args []interface{}
	for engine, pts := range lines {
		args = append(args, engine, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("plot %q: %w", wType, err)
	}

	name := strings.ReplaceAll(strings.Fields(string(wType))[0], "/", "-") + ".png"
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(outDir, name)); err != nil {
		return fmt.Errorf("save plot %q: %w", wType, err)
	}
	return nil
}
