package stopwatch

import "fmt"

// PrintElapsed is the default completion callback: it prints the elapsed
// time in seconds with fixed precision to standard output.
func PrintElapsed(sw *Stopwatch) {
	fmt.Printf("elapsed time: %.6f seconds\n", sw.Elapsed().Seconds())
}

// Wrap returns a callable with the same signature as fn that times each
// invocation with a fresh Stopwatch. On success, onComplete (nil selects
// PrintElapsed) is invoked synchronously with the stopped stopwatch
// before the result is returned. On failure — a non-nil error or a panic
// from fn — the stopwatch is still stopped, the failure propagates
// unchanged, and onComplete is not invoked.
func Wrap(fn func() error, onComplete func(*Stopwatch)) func() error {
	return func() error {
		_, err := timeCall(func() (struct{}, error) {
			return struct{}{}, fn()
		}, onComplete)
		return err
	}
}

// WrapFunc is Wrap for a unit of work that returns a value. The wrapped
// callable has an identical signature and return value to fn.
func WrapFunc[T any](fn func() (T, error), onComplete func(*Stopwatch)) func() (T, error) {
	return func() (T, error) {
		return timeCall(fn, onComplete)
	}
}

func timeCall[T any](fn func() (T, error), onComplete func(*Stopwatch)) (T, error) {
	if onComplete == nil {
		onComplete = PrintElapsed
	}
	sw := New()
	sw.Start() // a fresh stopwatch is idle, so this cannot fail

	stopped := false
	defer func() {
		if !stopped {
			sw.Stop()
		}
	}()
	out, err := fn()
	stopped = true
	sw.Stop()

	if err != nil {
		return out, err
	}
	onComplete(sw)
	return out, nil
}
