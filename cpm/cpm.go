package cpm

import (
	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/toposort"
)

// Compute runs the full CPM pipeline over activities and returns the
// schedule report. The caller keeps ownership of the input slice; it is
// never mutated.
//
// Every input shape yields a well-formed Result:
//
//   - fewer than two valid activities → empty Result, no warnings;
//   - a dependency cycle → empty numeric result, pruning warnings (if
//     any) followed by exactly one CycleWarning;
//   - otherwise → per-activity metrics in topological order, the
//     critical path id sequence, the project duration, and any pruning
//     warnings.
//
// The only error path is the opt-in size guard: when
// Options.MaxActivities is positive and the input is longer, Compute
// returns ErrTooManyActivities before any work is done.
func Compute(activities []core.Activity, opts Options) (Result, error) {
	// 1. Normalize options; a zero Options value behaves like DefaultOptions.
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultEpsilon
	}
	// 2. Size guard, checked against the raw input before validation.
	if opts.MaxActivities > 0 && len(activities) > opts.MaxActivities {
		return emptyResult(), ErrTooManyActivities
	}
	// 3. Build the validated network. Too few survivors means nothing to
	//    schedule: empty result, and any pruning warnings are discarded
	//    with the network.
	net, err := core.Build(activities)
	if err != nil {
		return emptyResult(), nil
	}
	// 4. Topological order. Build never returns a nil network, so the only
	//    possible failure here is a cycle: abandon the numeric result and
	//    surface the single cycle notice after any pruning warnings.
	order, err := toposort.Sort(net)
	if err != nil {
		res := emptyResult()
		res.Warnings = append(res.Warnings, net.Warnings()...)
		res.Warnings = append(res.Warnings, CycleWarning)

		return res, nil
	}
	// 5. Forward pass, backward pass, floats, critical path.
	sched := newSchedule(net, order)
	sched.forward()
	sched.backward()
	sched.floats(opts.Epsilon)
	path := sched.criticalPath(opts.Epsilon)

	// 6. Assemble the report in topological order.
	return sched.report(path), nil
}

// report assembles the final Result from the computed schedule.
// Activities are listed in topological order, not input order.
func (s *schedule) report(path []string) Result {
	res := Result{
		Activities:      make([]ActivityMetrics, 0, s.net.Len()),
		CriticalPath:    path,
		ProjectDuration: s.projectDuration,
		Warnings:        s.net.Warnings(),
	}
	for _, i := range s.order {
		node := &s.net.Nodes[i]
		res.Activities = append(res.Activities, ActivityMetrics{
			ID:             node.ID,
			Name:           node.Name,
			Duration:       node.Duration,
			EarliestStart:  s.es[i],
			EarliestFinish: s.ef[i],
			LatestStart:    s.ls[i],
			LatestFinish:   s.lf[i],
			TotalFloat:     s.tf[i],
			FreeFloat:      s.ff[i],
			Critical:       s.critical[i],
		})
	}

	return res
}
