package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
	"time"
)

type BenchResult struct {
	Engine    string
	Workload  string
	Ops       int
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// getDetailedMem forces a GC first so the numbers reflect live data,
// not garbage waiting to be collected.
func getDetailedMem() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

// runBench executes one workload at one size and reports per-op latency
// along with memory pressure after the run.
func runBench(idx index, engine string, wType WorkloadType, ops int) (BenchResult, error) {
	start := time.Now()
	if err := executeWorkload(idx, wType, ops); err != nil {
		return BenchResult{}, err
	}
	elapsed := time.Since(start)

	mem := getDetailedMem()
	return BenchResult{
		Engine:    engine,
		Workload:  string(wType),
		Ops:       ops,
		LatencyNs: elapsed.Nanoseconds() / int64(ops),
		MemMB:     mem.AllocMB,
		Objects:   mem.HeapObjects,
	}, nil
}

func record(w *csv.Writer, res BenchResult) {
	w.Write([]string{
		res.Engine,
		res.Workload,
		strconv.Itoa(res.Ops),
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}
