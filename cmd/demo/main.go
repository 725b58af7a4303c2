package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"stopwatch"
)

// Walks through the library surface: basic start/stop, laps,
// pause/resume, scoped measurement, exit callbacks, the timed-call
// wrapper, and a stopwatch shared across goroutines.
func main() {
	basic()
	laps()
	pauseResume()
	scoped()
	exitCallback()
	wrapped()
	sharedAcrossGoroutines()
}

func basic() {
	fmt.Println("--- basic ---")
	sw := stopwatch.New()
	sw.Start()
	time.Sleep(100 * time.Millisecond)
	total, _ := sw.Stop()
	fmt.Printf("elapsed: %.3f seconds\n", total.Seconds())
}

func laps() {
	fmt.Println("--- laps ---")
	sw := stopwatch.New()
	sw.Start()
	for i := 1; i <= 3; i++ {
		time.Sleep(50 * time.Millisecond)
		lap, _ := sw.Lap()
		fmt.Printf("lap %d: %.3f seconds\n", i, lap.Seconds())
	}
	total, _ := sw.Stop()
	fmt.Printf("total: %.3f seconds\n", total.Seconds())
}

func pauseResume() {
	fmt.Println("--- pause/resume ---")
	sw := stopwatch.New()
	sw.Start()
	time.Sleep(50 * time.Millisecond)
	sw.Pause()
	time.Sleep(100 * time.Millisecond) // not counted
	sw.Resume()
	time.Sleep(50 * time.Millisecond)
	total, _ := sw.Stop()
	fmt.Printf("total excluding the pause: %.3f seconds\n", total.Seconds())
}

func scoped() {
	fmt.Println("--- scoped ---")
	sw := stopwatch.New()
	total, _ := sw.Measure(func() {
		time.Sleep(75 * time.Millisecond)
		fmt.Printf("still running inside the scope: %s\n", sw)
	})
	fmt.Printf("scope finished in %.3f seconds\n", total.Seconds())
}

func exitCallback() {
	fmt.Println("--- exit callback ---")
	sw := stopwatch.New(stopwatch.WithExitCallback(func(sw *stopwatch.Stopwatch) {
		fmt.Printf("stopped automatically: %s\n", sw)
	}))
	sw.Start()
	time.Sleep(50 * time.Millisecond)
	sw.Stop() // fires the callback
}

func wrapped() {
	fmt.Println("--- wrapped ---")

	fetch := stopwatch.WrapFunc(func() (string, error) {
		time.Sleep(60 * time.Millisecond)
		return "data retrieved", nil
	}, func(sw *stopwatch.Stopwatch) {
		fmt.Printf("call took %.3f seconds\n", sw.Elapsed().Seconds())
	})
	result, _ := fetch()
	fmt.Printf("result: %s\n", result)

	// Failures propagate unchanged and skip the completion callback.
	failing := stopwatch.Wrap(func() error {
		return errors.New("backend unavailable")
	}, nil)
	if err := failing(); err != nil {
		fmt.Printf("propagated: %v\n", err)
	}
}

func sharedAcrossGoroutines() {
	fmt.Println("--- shared across goroutines ---")
	sw := stopwatch.New()
	sw.Start()

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			time.Sleep(time.Duration(10*id) * time.Millisecond)
			lap, _ := sw.Lap() // internally synchronized, no external lock
			fmt.Printf("task %d recorded lap %.3f seconds\n", id, lap.Seconds())
		}(i)
	}
	wg.Wait()

	total, _ := sw.Stop()
	fmt.Printf("all tasks done in %.3f seconds, %d laps recorded\n", total.Seconds(), len(sw.Laps()))
}
