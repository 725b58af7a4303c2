package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"stopwatch"
	"stopwatch/internal/config"
	"stopwatch/internal/util"
)

// runLaps drives the shared stopwatch: total laps are split across
// workers goroutines ("par") or recorded one after another on a single
// goroutine ("seq"). Every worker simulates work before each lap.
func runLaps(sw *stopwatch.Stopwatch, workers, lapsPerWorker int, work time.Duration, progress bool) {
	var (
		wg      sync.WaitGroup
		doneMu  sync.Mutex
		done    int
		release = make(chan struct{})
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release

			for j := 0; j < lapsPerWorker; j++ {
				if work > 0 {
					time.Sleep(work)
				}
				if _, err := sw.Lap(); err != nil {
					log.Fatalf("lap failed mid-benchmark: %v", err)
				}
			}

			if progress {
				doneMu.Lock()
				done++
				util.Progress("workers finished", done, workers)
				doneMu.Unlock()
			}
		}()
	}

	close(release) // line all workers up before any lap is taken
	wg.Wait()
}

func main() {
	util.Parse()

	mode := *util.Mode
	workers := *util.Workers
	laps := *util.Laps
	work, err := time.ParseDuration(*util.Work)
	util.Checkf("parse -work", err)

	csv := true
	progress := false

	// A config file, when given, overrides the workload flags.
	if *util.ConfigPath != "" {
		mgr, err := config.NewManager(*util.ConfigPath)
		util.Checkf("load config", err)
		cfg := mgr.Config()
		mode = cfg.Bench.Mode
		workers = cfg.Bench.Workers
		laps = cfg.Bench.Laps
		work = time.Duration(cfg.Bench.Work)
		csv = cfg.Output.CSV
		progress = cfg.Output.Progress
	}

	if workers <= 0 || laps <= 0 {
		log.Fatalf("workers (%d) and laps (%d) must be positive", workers, laps)
	}

	totalLaps := workers * laps
	actualWorkers := workers
	switch mode {
	case "seq":
		// Same number of laps, one goroutine: the contention-free baseline.
		actualWorkers = 1
		laps = totalLaps
	case "par":
	default:
		log.Fatalf("invalid mode: %s. Must be 'seq' or 'par'.", mode)
	}

	sw := stopwatch.New()
	util.Check(sw.Start())

	runLaps(sw, actualWorkers, laps, work, progress)

	total, err := sw.Stop()
	util.Checkf("stop", err)

	// Sanity checks: no lap lost under contention, none negative.
	recorded := sw.Laps()
	if len(recorded) != totalLaps {
		fmt.Fprintf(os.Stderr, "Warning: expected %d laps, recorded %d\n", totalLaps, len(recorded))
	}
	var sum time.Duration
	for _, lap := range recorded {
		if lap < 0 {
			fmt.Fprintf(os.Stderr, "Warning: negative lap recorded: %v\n", lap)
		}
		sum += lap
	}
	if sum > total {
		fmt.Fprintf(os.Stderr, "Warning: lap sum %v exceeds total %v\n", sum, total)
	}

	if csv {
		// Print CSV: mode,workers,laps,time_ms
		fmt.Printf("%s,%d,%d,%.3f\n", mode, actualWorkers, totalLaps, float64(total.Nanoseconds())/1e6)
	} else {
		fmt.Printf("mode=%s workers=%d laps=%d total=%v mean_lap=%v\n",
			mode, actualWorkers, totalLaps, total, sum/time.Duration(totalLaps))
	}
}
