// Package negcycle implements Howard's policy-iteration algorithm for
// negative-cycle detection on a weighted directed multigraph.
//
// A Finder alternates two passes over a digraph.DiGraph: a relaxation pass
// that updates a caller-owned potential vector dist[] and records, for
// each vertex whose distance improved, the edge that improved it (the
// predecessor policy); and a policy-graph cycle search over that
// predecessor map. If the search ever finds a cycle in the predecessor
// map, that cycle is returned as a certificate that dist is not a valid
// potential for the supplied weight function — a negative cycle. If a
// relaxation pass completes with no change, dist is already a feasible
// potential and no negative cycle is reachable from it.
//
// Complexity: each relaxation pass is O(V+E); the policy-graph search is
// O(V) per call (each FindCycle call starts from fresh stamps and stamps
// each vertex at most once). Termination for rational/integer weights follows from dist
// being drawn from a finite lattice of reachable potentials; see
// WithMaxPasses for the floating-point safety valve.
package negcycle

import "github.com/luk036/netoptim-go/digraph"

// Cycle is an ordered, contiguous sequence of edges e_1..e_k with
// tgt(e_i) == src(e_i+1) and tgt(e_k) == src(e_1): a simple directed cycle
// in forward-traversal order.
type Cycle[E any] []digraph.Edge[E]

// predEntry records, for one vertex v, the edge that most recently lowered
// dist[v] and the vertex it came from. A zero predEntry (has == false)
// means v has no recorded predecessor yet.
type predEntry struct {
	has  bool
	from digraph.VertexID
	edge digraph.EdgeID
}

// Option configures a Finder at construction time.
type Option func(*config)

type config struct {
	maxPasses int // 0 means "compute |V|*|E| on each Howard call"
}

// WithMaxPasses bounds the total number of relaxation passes Howard will
// run before giving up and reporting no cycle found, guarding against
// non-termination on pathological floating-point input. n must be
// positive; WithMaxPasses panics otherwise.
//
// Without this option, Howard uses |V|*|E| as the bound.
func WithMaxPasses(n int) Option {
	if n <= 0 {
		panic("negcycle: WithMaxPasses requires a positive n")
	}
	return func(c *config) { c.maxPasses = n }
}
