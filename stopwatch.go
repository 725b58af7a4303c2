// Package stopwatch measures elapsed wall-clock time in concurrent
// programs. A Stopwatch is a small state machine (idle, running, paused,
// stopped) guarded by a single mutex: any number of goroutines may share
// one instance and every operation is atomic with respect to the others.
// No external locking is required by callers.
package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// Stopwatch accumulates elapsed time across one or more running
// intervals and records lap sub-intervals on demand. The zero value is
// not usable; construct instances with New.
type Stopwatch struct {
	mu sync.Mutex

	clock  Clock
	onStop func(*Stopwatch)

	state         State
	accumulated   time.Duration // time folded in from closed intervals
	intervalStart time.Time     // set iff state == StateRunning
	lapMark       time.Duration // elapsed total at the last lap
	laps          []time.Duration
	lastLap       time.Duration
}

// Option configures a Stopwatch at construction time.
type Option func(*Stopwatch)

// WithClock substitutes the time source. Useful for deterministic tests.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) { s.clock = c }
}

// WithExitCallback registers fn to be invoked synchronously each time
// the stopwatch is stopped, after the state transition completes.
func WithExitCallback(fn func(*Stopwatch)) Option {
	return func(s *Stopwatch) { s.onStop = fn }
}

// New creates an idle Stopwatch backed by the system monotonic clock.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{clock: systemClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins (or, after Stop, continues) a measurement. Accumulated
// time and recorded laps from a previous run survive a Stop/Start cycle;
// use Reset to discard them. Returns *InvalidStateError if the stopwatch
// is already running or paused.
func (s *Stopwatch) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning || s.state == StatePaused {
		return &InvalidStateError{Op: "start", State: s.state}
	}
	s.intervalStart = s.clock.Now()
	s.state = StateRunning
	return nil
}

// Stop finalizes the measurement and returns the total elapsed time.
// Valid while running or paused; otherwise returns *InvalidStateError.
// The exit callback, if any, runs synchronously before Stop returns.
func (s *Stopwatch) Stop() (time.Duration, error) {
	s.mu.Lock()
	if s.state != StateRunning && s.state != StatePaused {
		err := &InvalidStateError{Op: "stop", State: s.state}
		s.mu.Unlock()
		return 0, err
	}
	if s.state == StateRunning {
		s.accumulated += s.clock.Now().Sub(s.intervalStart)
		s.intervalStart = time.Time{}
	}
	s.state = StateStopped
	total := s.accumulated
	cb := s.onStop
	s.mu.Unlock()

	// Invoked outside the lock so the callback may query the stopwatch.
	if cb != nil {
		cb(s)
	}
	return total, nil
}

// Pause halts timing without finalizing the measurement. Only valid
// while running.
func (s *Stopwatch) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return &InvalidStateError{Op: "pause", State: s.state}
	}
	s.accumulated += s.clock.Now().Sub(s.intervalStart)
	s.intervalStart = time.Time{}
	s.state = StatePaused
	return nil
}

// Resume continues timing after a Pause. Only valid while paused.
func (s *Stopwatch) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return &InvalidStateError{Op: "resume", State: s.state}
	}
	s.intervalStart = s.clock.Now()
	s.state = StateRunning
	return nil
}

// Lap records and returns the time elapsed since the later of Start and
// the previous Lap, excluding any paused intervals. Laps are append-only
// and never reordered. Only valid while running.
func (s *Stopwatch) Lap() (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return 0, &InvalidStateError{Op: "lap", State: s.state}
	}
	elapsed := s.accumulated + s.clock.Now().Sub(s.intervalStart)
	lap := elapsed - s.lapMark
	s.lapMark = elapsed
	s.laps = append(s.laps, lap)
	s.lastLap = lap
	return lap, nil
}

// Reset returns the stopwatch to idle from any state, discarding the
// accumulated time and all recorded laps. Never fails.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.accumulated = 0
	s.intervalStart = time.Time{}
	s.lapMark = 0
	s.laps = nil
	s.lastLap = 0
}

// IsRunning reports whether the stopwatch is currently accumulating time.
func (s *Stopwatch) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateRunning
}

// State returns the current lifecycle state.
func (s *Stopwatch) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the total time spent running since the last Reset,
// excluding paused intervals. While running it includes the open
// interval, so successive calls are monotonically non-decreasing; while
// not running it is constant. Never negative, never fails.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedLocked()
}

// LastLap returns the most recently recorded lap, or zero if no lap has
// been taken since the last Reset. Zero is the documented sentinel; a
// genuine zero-length lap is indistinguishable from it.
func (s *Stopwatch) LastLap() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLap
}

// Laps returns a copy of every lap recorded since the last Reset, in
// the order they were taken.
func (s *Stopwatch) Laps() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]time.Duration, len(s.laps))
	copy(out, s.laps)
	return out
}

// String renders the state and elapsed time for human consumption.
func (s *Stopwatch) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return "Stopwatch(idle)"
	}
	return fmt.Sprintf("Stopwatch(%s, elapsed=%.6fs)", s.state, s.elapsedLocked().Seconds())
}

// Measure starts the stopwatch, runs fn, and stops it exactly once on
// every exit path: if fn panics the stopwatch is stopped before the
// panic propagates. On normal return it reports the total elapsed time.
func (s *Stopwatch) Measure(fn func()) (time.Duration, error) {
	if err := s.Start(); err != nil {
		return 0, err
	}
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()
	fn()
	stopped = true
	return s.Stop()
}

// elapsedLocked computes the elapsed total; callers must hold s.mu.
func (s *Stopwatch) elapsedLocked() time.Duration {
	if s.state == StateRunning {
		return s.accumulated + s.clock.Now().Sub(s.intervalStart)
	}
	return s.accumulated
}
