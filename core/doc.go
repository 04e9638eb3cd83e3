// Package core defines the activity data model and the network builder
// that every other critpath package consumes.
//
// What:
//
//   - Activity is the caller-supplied input record: id, name, duration,
//     predecessor ids. The caller owns the slice; Build never mutates it.
//   - Node is a validated arena entry. Predecessor and successor relations
//     are stored as arena indices, not object pointers, so the network is
//     trivially rebuildable per call and carries no ownership cycles.
//   - Network is the arena plus an id→index lookup and the warnings
//     accumulated while normalizing predecessor references.
//
// Validation (Build):
//
//   - Activities with a blank id or name, a non-finite duration, or a
//     non-positive duration are dropped silently — no error, no warning.
//   - A later activity reusing an already-seen id is dropped silently.
//   - Self-referencing predecessor entries and duplicate predecessor
//     entries are removed silently.
//   - Predecessor references to ids absent from the surviving set are
//     pruned, and one warning naming the affected activity is recorded.
//   - Fewer than two surviving activities yields ErrTooFewActivities;
//     a network that small has no schedule worth computing.
//
// Determinism:
//
//   - Arena order is input order. Predecessor lists keep declaration
//     order; successor lists are derived in the order referencing
//     activities appear in the input. Warnings follow arena order.
//
// Complexity:
//
//   - Build: O(V + E) time, O(V + E) memory.
//
// Errors:
//
//   - ErrTooFewActivities: fewer than two activities survived validation.
package core
