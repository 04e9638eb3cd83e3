package cpm

import "math"

// criticalPath walks the zero-float subgraph and returns one critical
// path as an ordered id sequence.
//
// Several parallel critical paths may exist; exactly one is surfaced
// using a stable convention: among the critical nodes that start at time
// zero, pick the one with the smallest earliest finish (ties resolved by
// arena order), then repeatedly step to the critical successor whose
// earliest start matches the current node's earliest finish within
// epsilon, again preferring the smallest earliest finish (ties resolved
// by declaration order). The walk stops when no successor qualifies.
func (s *schedule) criticalPath(epsilon float64) []string {
	// 1. Pick the start: critical, ES ≈ 0, smallest EF. Scanning the arena
	//    in ascending index order with a strict comparison keeps the first
	//    declared candidate on ties.
	start := -1
	for i := range s.net.Nodes {
		if !s.critical[i] || s.es[i] >= epsilon {
			continue
		}
		if start == -1 || s.ef[i] < s.ef[start] {
			start = i
		}
	}
	if start == -1 {
		return []string{}
	}
	// 2. Walk forward through qualifying critical successors.
	path := []string{s.net.Nodes[start].ID}
	for cur := start; ; {
		next := -1
		for _, succ := range s.net.Nodes[cur].Succs {
			if !s.critical[succ] || math.Abs(s.es[succ]-s.ef[cur]) >= epsilon {
				continue
			}
			if next == -1 || s.ef[succ] < s.ef[next] {
				next = succ
			}
		}
		if next == -1 {
			break
		}
		path = append(path, s.net.Nodes[next].ID)
		cur = next
	}

	return path
}
