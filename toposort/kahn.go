package toposort

import (
	"errors"

	"github.com/katalvlaran/critpath/core"
)

// Sentinel errors returned by Sort.
var (
	// ErrNilNetwork indicates that a nil *core.Network was passed to Sort.
	ErrNilNetwork = errors.New("toposort: network is nil")

	// ErrCycleDetected indicates the dependency graph contains at least one
	// directed cycle, so no topological order exists.
	ErrCycleDetected = errors.New("toposort: network contains a cycle")
)

// Sort computes a topological ordering of net's arena indices using
// Kahn's algorithm. The ordering is deterministic: zero-in-degree nodes
// are seeded in arena order, and successors are enqueued in declaration
// order as their in-degree reaches zero.
//
// Returns ErrNilNetwork for a nil network and ErrCycleDetected when the
// graph is not acyclic; the partial order is discarded in that case.
func Sort(net *core.Network) ([]int, error) {
	// 1. Validate the network pointer.
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	// 2. Compute the in-degree of every node from its predecessor list.
	inDegree := make([]int, n)
	for i := range net.Nodes {
		inDegree[i] = len(net.Nodes[i].Preds)
	}
	// 3. Seed the FIFO with zero-in-degree nodes in arena order.
	//    The queue is a slice with a moving head; nothing is ever removed,
	//    so order doubles as the result once the walk completes.
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			order = append(order, i)
		}
	}
	// 4. Dequeue, then relax each outgoing edge; successors are stored in
	//    declaration order, so ties enqueue deterministically.
	for head := 0; head < len(order); head++ {
		for _, s := range net.Nodes[order[head]].Succs {
			inDegree[s]--
			if inDegree[s] == 0 {
				order = append(order, s)
			}
		}
	}
	// 5. A short order means the leftover nodes all sit on cycles.
	if len(order) < n {
		return nil, ErrCycleDetected
	}

	return order, nil
}
