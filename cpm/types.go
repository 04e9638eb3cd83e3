// This file declares the Options, per-activity metrics, and Result types,
// plus the sentinel errors and warning text shared by the cpm pipeline.
package cpm

import "errors"

// DefaultEpsilon is the float-zero tolerance applied when Options.Epsilon
// is unset: total float within this distance of zero marks an activity
// critical, and path reconstruction matches starts to finishes within it.
const DefaultEpsilon = 1e-9

// CycleWarning is the single warning emitted when the dependency graph is
// not acyclic and the numeric result is abandoned.
const CycleWarning = "network contains a cycle"

// ErrTooManyActivities indicates the input exceeded Options.MaxActivities.
// It is the only error Compute can return.
var ErrTooManyActivities = errors.New("cpm: activity count exceeds MaxActivities")

// Options configures Compute.
//
//   - Epsilon:       tolerance for treating float noise as exact zero.
//     Values ≤ 0 fall back to DefaultEpsilon.
//   - MaxActivities: reject inputs longer than this before any work is
//     done; 0 (the default) disables the guard.
type Options struct {
	Epsilon       float64
	MaxActivities int
}

// DefaultOptions returns Options with DefaultEpsilon and no activity cap.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// ActivityMetrics carries the computed schedule values for one activity.
type ActivityMetrics struct {
	// ID is the activity's unique identifier.
	ID string

	// Name is the activity's human-readable label.
	Name string

	// Duration is the activity's fixed working time.
	Duration float64

	// EarliestStart is the soonest the activity can begin.
	EarliestStart float64

	// EarliestFinish is the soonest the activity can complete.
	EarliestFinish float64

	// LatestStart is the latest begin time that keeps the project on schedule.
	LatestStart float64

	// LatestFinish is the latest completion time that keeps the project on schedule.
	LatestFinish float64

	// TotalFloat is the slack available without delaying the project.
	TotalFloat float64

	// FreeFloat is the slack available without delaying any immediate successor.
	FreeFloat float64

	// Critical reports whether TotalFloat is zero within epsilon.
	Critical bool
}

// Result is the full schedule report for one Compute invocation.
//
// All slices are non-nil on every code path, so results compare and
// serialize identically across repeated runs on the same input.
type Result struct {
	// Activities holds per-activity metrics in topological order.
	Activities []ActivityMetrics

	// CriticalPath is the ordered id sequence of the surfaced critical path.
	CriticalPath []string

	// ProjectDuration is the maximum earliest finish over all activities.
	ProjectDuration float64

	// Warnings lists predecessor-pruning notices and, when applicable,
	// the single cycle notice.
	Warnings []string
}

// emptyResult returns a Result with allocated, empty slices.
func emptyResult() Result {
	return Result{
		Activities:   []ActivityMetrics{},
		CriticalPath: []string{},
		Warnings:     []string{},
	}
}
