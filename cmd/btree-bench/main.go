// Command btree-bench measures the in-memory B-tree against a Pebble
// baseline across mixed workloads and writes the results as a CSV plus one
// latency plot per workload.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

var (
	maxOps       *int
	branchFactor *int
	withPebble   *bool
	outDir       *string
)

func main() {
	setupFlags()

	if *maxOps < 8 {
		log.Fatal("ops must be at least 8")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	results, err := runAll()
	if err != nil {
		log.Fatal(err)
	}

	if err := writeCSV(results); err != nil {
		log.Fatal(err)
	}
	for _, wType := range workloads {
		if err := plotWorkload(results, wType, *outDir); err != nil {
			log.Fatal(err)
		}
	}
	log.WithField("dir", *outDir).Info("benchmark artifacts written")
}

func runAll() ([]BenchResult, error) {
	var results []BenchResult

	// Four sizes per workload give the latency curves enough points to show
	// the logarithmic growth.
	var sizes []int
	for ops := *maxOps / 8; ops <= *maxOps; ops *= 2 {
		sizes = append(sizes, ops)
	}

	for _, wType := range workloads {
		for _, ops := range sizes {
			idx, err := newBTreeIndex(*branchFactor)
			if err != nil {
				return nil, err
			}
			res, err := runBench(idx, "btree", wType, ops)
			if err != nil {
				return nil, err
			}
			log.WithFields(logrus.Fields{
				"engine": "btree", "workload": wType, "ops": ops, "ns/op": res.LatencyNs,
			}).Info("run complete")
			results = append(results, res)

			if !*withPebble {
				continue
			}
			dir, err := os.MkdirTemp("", "btree_bench_pebble_*")
			if err != nil {
				return nil, err
			}
			pidx, err := openPebbleIndex(dir)
			if err != nil {
				os.RemoveAll(dir)
				return nil, err
			}
			res, err = runBench(pidx, "pebble", wType, ops)
			pidx.Close()
			os.RemoveAll(dir)
			if err != nil {
				return nil, err
			}
			log.WithFields(logrus.Fields{
				"engine": "pebble", "workload": wType, "ops": ops, "ns/op": res.LatencyNs,
			}).Info("run complete")
			results = append(results, res)
		}
	}
	return results, nil
}

func writeCSV(results []BenchResult) error {
	f, err := os.Create(filepath.Join(*outDir, "results.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{"engine", "workload", "ops", "latency_ns", "mem_mb", "heap_objects"})
	for _, res := range results {
		record(w, res)
	}
	return w.Error()
}

func setupFlags() {
	maxOps = flag.Int("ops", 80000, "Largest workload size; smaller sizes are derived by halving.")
	branchFactor = flag.Int("branch-factor", 32, "Branch factor of the B-tree under test.")
	withPebble = flag.Bool("with-pebble", false, "Also run the Pebble baseline (writes to a temp dir).")
	outDir = flag.String("out", "results", "Directory for the CSV and plot output.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree benchmark harness\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
