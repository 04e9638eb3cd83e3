package cpm_test

import (
	"fmt"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/cpm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A four-activity diamond: excavation feeds wiring and concrete in
//	parallel, and sealing waits on both.
//
//	    [A:4]──▶[B:2]──▶[D:1]
//	       │               ▲
//	       └────▶[C:6]─────┘
//
// The concrete branch A→C→D is the longest chain, so it is critical and
// the wiring activity B carries 4 units of float.
//
// Complexity: O(V + E) time, O(V + E) memory.
func ExampleCompute() {
	activities := []core.Activity{
		{ID: "A", Name: "Excavate", Duration: 4},
		{ID: "B", Name: "Wiring", Duration: 2, Predecessors: []string{"A"}},
		{ID: "C", Name: "Concrete", Duration: 6, Predecessors: []string{"A"}},
		{ID: "D", Name: "Sealing", Duration: 1, Predecessors: []string{"B", "C"}},
	}

	res, err := cpm.Compute(activities, cpm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("duration=%.0f path=%v\n", res.ProjectDuration, res.CriticalPath)
	for _, m := range res.Activities {
		fmt.Printf("%s es=%.0f ef=%.0f float=%.0f critical=%t\n",
			m.ID, m.EarliestStart, m.EarliestFinish, m.TotalFloat, m.Critical)
	}
	// Output:
	// duration=11 path=[A C D]
	// A es=0 ef=4 float=0 critical=true
	// B es=4 ef=6 float=4 critical=false
	// C es=4 ef=10 float=0 critical=true
	// D es=10 ef=11 float=0 critical=true
}

// ExampleCompute_cycle shows how a dependency cycle degrades to a single
// warning instead of an error.
func ExampleCompute_cycle() {
	activities := []core.Activity{
		{ID: "A", Name: "First", Duration: 1, Predecessors: []string{"B"}},
		{ID: "B", Name: "Second", Duration: 1, Predecessors: []string{"A"}},
	}

	res, err := cpm.Compute(activities, cpm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("activities=%d duration=%.0f warnings=%v\n",
		len(res.Activities), res.ProjectDuration, res.Warnings)
	// Output:
	// activities=0 duration=0 warnings=[network contains a cycle]
}
