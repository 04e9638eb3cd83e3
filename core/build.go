package core

import (
	"fmt"
	"math"
	"strings"
)

// minActivities is the smallest network worth scheduling; below it Build
// returns ErrTooFewActivities.
const minActivities = 2

// Build validates and normalizes raw activities into a Network.
//
// Invalid activities (blank id or name, non-finite or non-positive
// duration, duplicate id) are excluded silently. Self-referencing and
// duplicate predecessor entries are removed silently. References to ids
// not present among the surviving activities are pruned, and one warning
// per affected activity is recorded on the Network.
//
// If fewer than two activities survive, Build returns ErrTooFewActivities
// and a nil Network; callers treat that as "nothing to schedule", not as
// a failure.
//
// Complexity: O(V + E) time and memory.
func Build(activities []Activity) (*Network, error) {
	// 1. Keep only structurally valid activities, first id occurrence wins.
	kept := make([]Activity, 0, len(activities))
	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		if !valid(a) || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		kept = append(kept, a)
	}
	// 2. A schedule needs at least two activities.
	if len(kept) < minActivities {
		return nil, ErrTooFewActivities
	}
	// 3. Allocate the arena and the id→index lookup in input order.
	net := &Network{
		Nodes: make([]Node, len(kept)),
		index: make(map[string]int, len(kept)),
	}
	for i, a := range kept {
		net.Nodes[i] = Node{ID: a.ID, Name: a.Name, Duration: a.Duration}
		net.index[a.ID] = i
	}
	// 4. Normalize predecessor lists: drop self-references and duplicates
	//    silently, prune unknown ids with one warning per affected activity.
	for i, a := range kept {
		var pruned []string
		inList := make(map[int]bool, len(a.Predecessors))
		for _, pid := range a.Predecessors {
			if pid == a.ID {
				continue
			}
			p, ok := net.index[pid]
			if !ok {
				pruned = append(pruned, pid)

				continue
			}
			if inList[p] {
				continue
			}
			inList[p] = true
			net.Nodes[i].Preds = append(net.Nodes[i].Preds, p)
		}
		if len(pruned) > 0 {
			net.warnings = append(net.warnings, fmt.Sprintf(
				"activity %q: ignored unknown predecessor(s) %s",
				a.ID, strings.Join(pruned, ", ")))
		}
	}
	// 5. Derive successor lists from the surviving predecessor references.
	//    Iterating the arena in input order keeps Succs in the order the
	//    referencing activities were declared.
	for i := range net.Nodes {
		for _, p := range net.Nodes[i].Preds {
			net.Nodes[p].Succs = append(net.Nodes[p].Succs, i)
			net.edges++
		}
	}

	return net, nil
}

// valid reports whether a raw activity passes basic validity: non-blank
// id and name, finite duration strictly greater than zero.
func valid(a Activity) bool {
	if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Name) == "" {
		return false
	}
	if math.IsNaN(a.Duration) || math.IsInf(a.Duration, 0) {
		return false
	}

	return a.Duration > 0
}
