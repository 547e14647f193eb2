package engine

// Status is the lifecycle state of an engine.
type Status int

const (
	Idle Status = iota
	Running
	Paused
	Completed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// State is a point-in-time copy of the engine's timing state.
type State struct {
	Status    Status
	Index     int // segment being timed
	Remaining int // seconds left in the current segment
	Elapsed   int // seconds timed across the workout
}
