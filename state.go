package stopwatch

// State identifies where a Stopwatch is in its lifecycle.
type State int

const (
	// StateIdle means the stopwatch has never been started (or was reset).
	StateIdle State = iota
	// StateRunning means an interval is currently being accumulated.
	StateRunning
	// StatePaused means timing is temporarily halted; Resume continues it.
	StatePaused
	// StateStopped means the measurement was finalized by Stop.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
