// Package game simulates a player session against a generated level.
//
// A run walks the level's targets, raises the collection events a live
// runtime would, tracks combo and elapsed time, and settles every pickup and
// the final payout through the yield engine.
package game

// State represents the phase a run is in.
type State int

const (
	// StateWalking is travel between targets.
	StateWalking State = iota
	// StateSolving is interaction with a puzzle node.
	StateSolving
	// StateCollecting is an artifact pickup.
	StateCollecting
	// StateFinished is set once the run reaches the exit and is settled.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateSolving:
		return "solving"
	case StateCollecting:
		return "collecting"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// EventKind classifies run events.
type EventKind string

const (
	EventSolve     EventKind = "solve"
	EventCollect   EventKind = "collect"
	EventObstacle  EventKind = "obstacle"
	EventMilestone EventKind = "milestone"
	EventExit      EventKind = "exit"
)
