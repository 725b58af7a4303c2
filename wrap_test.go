package stopwatch

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func TestWrapSuccessInvokesCallback(t *testing.T) {
	var seen []*Stopwatch
	wrapped := Wrap(func() error {
		time.Sleep(10 * time.Millisecond)
		return nil
	}, func(sw *Stopwatch) {
		seen = append(seen, sw)
	})

	if err := wrapped(); err != nil {
		t.Fatalf("wrapped call: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("callback calls: got %d, want 1", len(seen))
	}

	sw := seen[0]
	if sw.IsRunning() {
		t.Error("stopwatch handed to callback is still running")
	}
	if sw.Elapsed() < 10*time.Millisecond {
		t.Errorf("elapsed: got %v, want at least 10ms", sw.Elapsed())
	}
}

func TestWrapErrorSkipsCallback(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	wrapped := Wrap(func() error { return errBoom }, func(*Stopwatch) { calls++ })

	err := wrapped()
	if err != errBoom {
		t.Errorf("error: got %v, want it propagated unchanged", err)
	}
	if calls != 0 {
		t.Errorf("callback invoked %d times on failure, want 0", calls)
	}
}

func TestWrapPanicSkipsCallback(t *testing.T) {
	calls := 0
	wrapped := Wrap(func() error { panic("boom") }, func(*Stopwatch) { calls++ })

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic did not propagate")
			}
		}()
		wrapped()
	}()

	if calls != 0 {
		t.Errorf("callback invoked %d times on panic, want 0", calls)
	}
}

func TestWrapFreshStopwatchPerCall(t *testing.T) {
	var seen []*Stopwatch
	wrapped := Wrap(func() error { return nil }, func(sw *Stopwatch) {
		seen = append(seen, sw)
	})

	wrapped()
	wrapped()

	if len(seen) != 2 {
		t.Fatalf("callback calls: got %d, want 2", len(seen))
	}
	if seen[0] == seen[1] {
		t.Error("both calls shared one stopwatch, want a fresh one per call")
	}
}

func TestWrapFuncReturnsValue(t *testing.T) {
	calls := 0
	wrapped := WrapFunc(func() (int, error) {
		return 42, nil
	}, func(*Stopwatch) { calls++ })

	got, err := wrapped()
	if err != nil {
		t.Fatalf("wrapped call: %v", err)
	}
	if got != 42 {
		t.Errorf("result: got %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("callback calls: got %d, want 1", calls)
	}
}

func TestWrapFuncErrorKeepsValueAndError(t *testing.T) {
	errBoom := errors.New("boom")
	wrapped := WrapFunc(func() (string, error) {
		return "partial", errBoom
	}, func(*Stopwatch) { t.Error("callback invoked on failure") })

	got, err := wrapped()
	if err != errBoom {
		t.Errorf("error: got %v, want it propagated unchanged", err)
	}
	if got != "partial" {
		t.Errorf("result: got %q, want %q", got, "partial")
	}
}

// Nil callback selects the default printer. Redirect stdout to verify
// the formatted line actually gets emitted.
func TestWrapDefaultCallbackPrints(t *testing.T) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	wrapped := Wrap(func() error { return nil }, nil)
	callErr := wrapped()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	if callErr != nil {
		t.Fatalf("wrapped call: %v", callErr)
	}
	if !strings.Contains(string(out), "elapsed time:") || !strings.Contains(string(out), "seconds") {
		t.Errorf("default callback output: got %q", string(out))
	}
}
