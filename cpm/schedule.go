package cpm

import (
	"math"

	"github.com/katalvlaran/critpath/core"
)

// schedule holds the per-node working values for one computation.
// Slices are indexed by arena index; order is the topological order the
// passes walk. The whole struct is discarded when Compute returns.
type schedule struct {
	net   *core.Network
	order []int

	es, ef   []float64 // earliest start / finish
	ls, lf   []float64 // latest start / finish
	tf, ff   []float64 // total / free float
	critical []bool

	projectDuration float64
}

// newSchedule allocates working storage for net in topological order.
func newSchedule(net *core.Network, order []int) *schedule {
	n := net.Len()

	return &schedule{
		net:      net,
		order:    order,
		es:       make([]float64, n),
		ef:       make([]float64, n),
		ls:       make([]float64, n),
		lf:       make([]float64, n),
		tf:       make([]float64, n),
		ff:       make([]float64, n),
		critical: make([]bool, n),
	}
}

// forward runs the forward pass: earliest start is the max earliest
// finish over predecessors (0 for sources), earliest finish adds the
// duration. Project duration is the running max earliest finish.
func (s *schedule) forward() {
	for _, i := range s.order {
		node := &s.net.Nodes[i]
		start := 0.0
		for _, p := range node.Preds {
			start = math.Max(start, s.ef[p])
		}
		s.es[i] = start
		s.ef[i] = start + node.Duration
		s.projectDuration = math.Max(s.projectDuration, s.ef[i])
	}
}

// backward runs the backward pass in reverse topological order: sinks
// finish at the project duration, every other node must finish before
// its earliest-starting successor begins.
func (s *schedule) backward() {
	for k := len(s.order) - 1; k >= 0; k-- {
		i := s.order[k]
		node := &s.net.Nodes[i]
		finish := s.projectDuration
		for _, succ := range node.Succs {
			finish = math.Min(finish, s.ls[succ])
		}
		s.lf[i] = finish
		s.ls[i] = finish - node.Duration
	}
}

// floats derives total float, free float, and criticality. Free float is
// floored at zero so rounding noise never reports negative slack.
func (s *schedule) floats(epsilon float64) {
	for i := range s.net.Nodes {
		node := &s.net.Nodes[i]
		s.tf[i] = s.lf[i] - s.ef[i]

		if len(node.Succs) > 0 {
			next := math.Inf(1)
			for _, succ := range node.Succs {
				next = math.Min(next, s.es[succ])
			}
			s.ff[i] = math.Max(0, next-s.ef[i])
		} else {
			s.ff[i] = math.Max(0, s.projectDuration-s.ef[i])
		}

		s.critical[i] = math.Abs(s.tf[i]) < epsilon
	}
}
