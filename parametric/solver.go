package parametric

import (
	"github.com/luk036/netoptim-go/digraph"
	"github.com/luk036/netoptim-go/negcycle"
)

// Run drives Lawler's iteration: starting from r0 = *r and the
// given potentials dist, it repeatedly asks negcycle.Finder.Howard for a
// negative cycle under the current ratio, and whenever the discovered
// cycle's own ZeroCancel ratio is the tightest seen yet, remembers it as a
// candidate. Each time that candidate is strictly better than the current
// ratio, *r is lowered to it and the witness cycle is snapshotted; the
// loop then runs again against the new ratio. It stops and returns the
// last snapshotted witness (empty if none ever improved) once the best
// candidate this round is no longer strictly better than *r.
//
// On return, *r holds the minimum cycle ratio proved reachable from r0,
// and dist is a feasible potential for w_r* (the reweighting Distance
// computes at that final ratio). If no cycle with ratio strictly less
// than r0 exists, Run returns an empty Cycle and leaves *r == r0.
//
// The loop always executes its first Howard call even
// when it is certain to find nothing better (r_min starts equal to *r) —
// this mirrors the reference implementation's shape and keeps the
// feasibility side effect on dist (Howard's relaxation passes) consistent
// whether or not an improving cycle exists.
//
// Complexity: O(iterations * Howard), where iterations is bounded by the
// number of distinct cycle ratios reachable in the graph for rational R.
func (s *Solver[E, R]) Run(dist []R, r *R) negcycle.Cycle[E] {
	rMin := *r
	var cMin negcycle.Cycle[E]
	var witness negcycle.Cycle[E]

	for {
		if cycle, ok := s.finder.Howard(dist, func(e digraph.Edge[E]) R {
			return s.api.Distance(*r, e)
		}); ok {
			ri := s.api.ZeroCancel(cycle)
			if ri.Less(rMin) {
				rMin = ri
				cMin = cycle
			}
		}

		if !rMin.Less(*r) { // rMin >= *r: no further improvement possible
			return witness
		}

		witness = cMin
		*r = rMin
	}
}
