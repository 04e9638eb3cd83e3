// Package critpath is an in-memory engine for Critical Path Method (CPM)
// schedule analysis: earliest/latest start and finish times, total and
// free float, and one deterministic critical path per activity network.
//
// 🚀 What is critpath?
//
//	A small, deterministic library that takes an ordered list of
//	activities (id, name, duration, predecessors) and computes:
//		• Validated activity network: arena of nodes + derived successor edges
//		• Topological order: Kahn's algorithm with deterministic FIFO seeding
//		• Forward pass: earliest start / earliest finish per activity
//		• Backward pass: latest start / latest finish per activity
//		• Floats: total float, free float, criticality (ε-tolerant)
//		• Critical path: one stable path through the zero-float subgraph
//
// ✨ Why choose critpath?
//
//   - Pure function – identical input always yields bit-identical output
//   - Never fails – malformed input degrades to warnings, never a panic
//   - Pure Go – no cgo, no hidden deps
//   - Linear cost – O(V + E): one sort plus two passes over the network
//
// Everything is organized under three subpackages:
//
//	core/     — Activity input record, validated node arena, network builder
//	toposort/ — Kahn's algorithm over the arena, cycle detection
//	cpm/      — forward/backward passes, floats, critical path, final report
//
// Quick ASCII example:
//
//	    [A:4]──▶[B:2]──▶[D:1]
//	       │               ▲
//	       └────▶[C:6]─────┘
//
//	A feeds B and C; D waits on both. The longest chain A→C→D (duration 11)
//	is the critical path; B carries 4 units of float.
//
// Dive into cpm/doc.go for the full computation contract and into
// examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/critpath
package critpath
