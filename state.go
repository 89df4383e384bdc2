package fiberz

// State is the lifecycle state of a fiber.
type State uint8

const (
	// StateReady is a fiber that has not been started.
	StateReady State = iota
	// StateYielded is a fiber whose body is paused in Context.Yield.
	StateYielded
	// StateFinished is a fiber whose body returned, panicked or was
	// canceled. It is terminal.
	StateFinished

	// stateRunning is held only while a drive operation executes the
	// body. Drivers never observe it.
	stateRunning
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateYielded:
		return "yielded"
	case StateFinished:
		return "finished"
	case stateRunning:
		return "running"
	default:
		return "unknown"
	}
}
