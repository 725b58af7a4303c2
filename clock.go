package stopwatch

import "time"

// Clock abstracts the time source so callers (and tests) can substitute
// their own. The default system clock uses time.Now, whose readings carry
// a monotonic component, so elapsed time is immune to wall-clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
