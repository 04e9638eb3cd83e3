// Package cpm computes Critical Path Method schedule metrics over a
// validated activity network: earliest/latest start and finish, total and
// free float, criticality, project duration, and one deterministic
// critical path.
//
// What:
//
//   - Compute is the single entry point. It builds the network (core),
//     orders it (toposort), then runs the forward pass, the backward
//     pass, the float calculation, and the critical path walk, and
//     assembles everything into a Result.
//   - The forward pass processes nodes in topological order:
//     ES(n) = max EF over predecessors (0 for sources), EF(n) = ES(n) + duration.
//     Project duration is the maximum EF over all nodes.
//   - The backward pass processes nodes in reverse topological order:
//     LF(n) = project duration for sinks, else min LS over successors;
//     LS(n) = LF(n) − duration.
//   - Total float is LF − EF; free float is the slack before the earliest
//     successor start (or before project end for sinks), floored at zero.
//     A node is critical when |total float| < ε.
//
// Critical path convention:
//
//	A network may hold several parallel critical paths; exactly one is
//	surfaced, chosen by a documented convention rather than any claim of
//	uniqueness: start at the critical node with ES ≈ 0 whose EF is
//	smallest (ties: input order), then repeatedly step to the critical
//	successor whose ES matches the current EF within ε and whose EF is
//	smallest (ties: declaration order), stopping when none qualifies.
//
// Failure semantics:
//
//   - Compute never panics and, outside the opt-in MaxActivities guard,
//     never returns an error. A dependency cycle yields an empty numeric
//     result plus a single cycle warning; fewer than two valid activities
//     yield an empty result with no warnings at all.
//
// Determinism:
//
//   - Identical input produces bit-identical output. The engine holds no
//     state across calls, so concurrent computations over independent
//     inputs need no coordination.
//
// Complexity:
//
//   - Time:   O(V + E) (topological sort plus two linear passes)
//   - Memory: O(V + E)
//
// Options:
//
//   - Epsilon:       float-zero tolerance for criticality and path matching
//     (default 1e-9; widen it if durations are very large).
//   - MaxActivities: optional cap on input size; 0 means unlimited. This is
//     a guard against adversarial inputs, not part of the scheduling
//     contract, and it is the only error path Compute has.
//
// Errors (sentinel):
//
//   - ErrTooManyActivities: input length exceeds Options.MaxActivities.
package cpm
