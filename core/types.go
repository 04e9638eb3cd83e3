// This file declares Activity, Node, Network, sentinel errors, and the
// read-only accessors the later pipeline stages rely on.
package core

import "errors"

// Sentinel errors for network construction.
var (
	// ErrTooFewActivities indicates that fewer than two activities survived
	// validation, so no schedule computation is attempted.
	ErrTooFewActivities = errors.New("core: fewer than two valid activities")
)

// Activity is one raw schedulable unit of work as supplied by the caller.
//
// ID must be unique among valid activities; Name must be non-blank;
// Duration must be a finite number greater than zero. Predecessors lists
// the IDs of activities that must finish before this one starts.
// The engine never mutates an Activity or the slice it arrived in.
type Activity struct {
	// ID uniquely identifies this activity within one input list.
	ID string

	// Name is the human-readable label carried through to the report.
	Name string

	// Duration is the fixed working time of the activity. Must be > 0 and finite.
	Duration float64

	// Predecessors holds the IDs of activities this one depends on.
	Predecessors []string
}

// Node is one validated activity inside a Network arena.
//
// Preds and Succs are arena indices into Network.Nodes: Preds in
// declaration order (after pruning), Succs in the order the referencing
// activities appeared in the input.
type Node struct {
	// ID is the validated activity ID.
	ID string

	// Name is the validated activity name.
	Name string

	// Duration is the validated, strictly positive duration.
	Duration float64

	// Preds are arena indices of this node's predecessors.
	Preds []int

	// Succs are arena indices of this node's successors (derived reverse edges).
	Succs []int
}

// Network is the validated activity graph for exactly one computation.
//
// It is built fresh per call, owned exclusively by that call, and holds
// no state shared with any other invocation.
type Network struct {
	// Nodes is the arena of validated activities, in input order.
	Nodes []Node

	index    map[string]int // id → arena index
	warnings []string       // pruning notices, arena order
	edges    int            // surviving predecessor references
}

// Len returns the number of validated activities in the arena.
func (n *Network) Len() int { return len(n.Nodes) }

// EdgeCount returns the number of surviving predecessor→successor edges.
func (n *Network) EdgeCount() int { return n.edges }

// IndexOf returns the arena index of id and whether it is present.
func (n *Network) IndexOf(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Warnings returns a copy of the pruning notices recorded during Build.
// The copy keeps callers from aliasing the network's internal state.
func (n *Network) Warnings() []string {
	out := make([]string, len(n.warnings))
	copy(out, n.warnings)

	return out
}
