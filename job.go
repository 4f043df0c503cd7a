package qtable

import "time"

// Job is the simulation of one enumerated input state.
type Job struct {
	ID        int
	Input     State
	StartTime time.Time
}
