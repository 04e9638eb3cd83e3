// Package toposort orders an activity network so that every predecessor
// appears before all of its successors, and detects dependency cycles.
//
// What:
//
//   - Sort runs Kahn's algorithm over a core.Network arena: compute the
//     in-degree of every node, seed a FIFO queue with the zero-in-degree
//     nodes in arena (input) order, then repeatedly dequeue, append to the
//     order, and enqueue successors whose in-degree drops to zero — in the
//     order those successors were declared.
//   - If the produced order is shorter than the arena, the remaining nodes
//     form at least one cycle and ErrCycleDetected is returned.
//
// Why Kahn instead of DFS:
//
//   - The FIFO seeded in input order gives one well-defined ordering for
//     any input, which the downstream passes and the report rely on.
//     A recursive DFS post-order would be equally correct but ties its
//     output to visitation order rather than declaration order.
//
// Complexity:
//
//   - Time:   O(V + E) (each node enqueued once, each edge relaxed once)
//   - Memory: O(V)     (in-degree slice and queue)
//
// Errors:
//
//   - ErrNilNetwork:    the provided network pointer is nil.
//   - ErrCycleDetected: the dependency graph is not acyclic.
package toposort
