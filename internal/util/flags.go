package util

import (
	"flag"
	"runtime"
)

var (
	// Mode selects the bench workload: "seq" runs every lap on one
	// goroutine, "par" fans the laps out across Workers goroutines.
	Mode *string

	// Workers is the number of goroutines sharing the stopwatch in
	// "par" mode.
	Workers *int

	// Laps is how many laps each worker records.
	Laps *int

	// Work is the simulated per-lap work duration, e.g. "1ms".
	Work *string

	// ConfigPath, when non-empty, loads the workload from a YAML file
	// instead of the flags above.
	ConfigPath *string
)

func init() {
	Mode = flag.String("mode", "par", "Workload mode: 'seq' for a single goroutine, 'par' for concurrent workers.")
	Workers = flag.Int("workers", runtime.NumCPU(), "Number of goroutines sharing the stopwatch in 'par' mode. Defaults to number of CPU cores.")
	Laps = flag.Int("laps", 100, "Number of laps each worker records.")
	Work = flag.String("work", "1ms", "Simulated work duration before each lap, in time.ParseDuration syntax.")
	ConfigPath = flag.String("config", "", "Optional YAML config file; overrides the workload flags when set.")
}

// Parse parses the command line. Call once from main.
func Parse() {
	flag.Parse()
}
