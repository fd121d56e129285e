package negcycle

import (
	"github.com/luk036/netoptim-go/digraph"
	"github.com/luk036/netoptim-go/numeric"
)

// Finder runs Howard's algorithm against a fixed digraph.DiGraph. It owns
// the predecessor policy pred, cleared at the start of every Howard call;
// the graph itself is borrowed and never mutated.
type Finder[E any, R numeric.Number[R]] struct {
	g      *digraph.DiGraph[E]
	pred   []predEntry
	config config
}

// New returns a Finder over g with an empty predecessor policy.
//
// Complexity: O(V)
func New[E any, R numeric.Number[R]](g *digraph.DiGraph[E], opts ...Option) *Finder[E, R] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder[E, R]{
		g:      g,
		pred:   make([]predEntry, g.NumVertices()),
		config: cfg,
	}
}

// Relax performs one relaxation pass: for every edge e = (u, v) in
// deterministic (vertex-then-insertion) order, if dist[u] + w(e) <
// dist[v], it lowers dist[v] to that value, records e as v's predecessor,
// and reports the pass as changed.
//
// Exposed for white-box testing; Howard is the entry point ordinary
// callers should use.
//
// Complexity: O(V+E)
func (f *Finder[E, R]) Relax(dist []R, w func(digraph.Edge[E]) R) bool {
	changed := false
	for _, u := range f.g.Vertices() {
		outs, _ := f.g.OutEdges(u) // u is always in range: it came from Vertices()
		for _, eid := range outs {
			e, _ := f.g.Edge(eid) // eid is always in range: it came from OutEdges(u)
			d := dist[u].Add(w(e))
			if d.Less(dist[e.To]) {
				dist[e.To] = d
				f.pred[e.To] = predEntry{has: true, from: u, edge: eid}
				changed = true
			}
		}
	}

	return changed
}

// FindCycle searches the predecessor policy for a cycle, using two-color
// stamping: each vertex visited while exploring from a given root is
// stamped with that root; walking into an already-stamped vertex whose
// stamp matches the current root closes a cycle. It returns the vertex at which the
// cycle was detected, and whether any cycle was found at all.
//
// Exposed for white-box testing; Howard is the entry point ordinary
// callers should use.
//
// Complexity: O(V) per call.
func (f *Finder[E, R]) FindCycle() (digraph.VertexID, bool) {
	n := f.g.NumVertices()
	stamp := make([]digraph.VertexID, n)
	stamped := make([]bool, n)

	for _, root := range f.g.Vertices() {
		if stamped[root] {
			continue
		}

		u := root
		for !stamped[u] {
			stamped[u] = true
			stamp[u] = root

			p := f.pred[u]
			if !p.has {
				break // dead end: no cycle reachable from root through u
			}

			u = p.from
			if stamped[u] {
				if stamp[u] == root {
					return u, true // closed a cycle within this exploration
				}
				break // previously explored region, no fresh cycle here
			}
		}
	}

	return 0, false
}

// cycleList reconstructs the cycle known to pass through handle by walking
// pred backward from handle until handle is seen again, then reversing the
// collected edges into forward-traversal order.
//
// Complexity: O(cycle length)
func (f *Finder[E, R]) cycleList(handle digraph.VertexID) Cycle[E] {
	var reverse []digraph.Edge[E]

	v := handle
	for {
		p := f.pred[v]
		e, _ := f.g.Edge(p.edge)
		reverse = append(reverse, e)
		v = p.from
		if v == handle {
			break
		}
	}

	cycle := make(Cycle[E], len(reverse))
	for i, e := range reverse {
		cycle[len(reverse)-1-i] = e
	}

	return cycle
}

// Howard runs the full algorithm: it clears the predecessor
// policy, then alternates Relax and FindCycle until either a relaxation
// pass makes no change (dist is now a feasible potential for w: returns
// (nil, false)) or the policy graph reveals a cycle (returns the cycle and
// true). The total number of relaxation passes is bounded — by
// WithMaxPasses if supplied, otherwise by |V|*|E| — as a safety valve
// against non-termination on pathological floating-point input; hitting
// the bound returns (nil, false), meaning "no proof of a negative cycle
// within the budget".
//
// Complexity: O((V+E) * passes), passes bounded as above.
func (f *Finder[E, R]) Howard(dist []R, w func(digraph.Edge[E]) R) (Cycle[E], bool) {
	for i := range f.pred {
		f.pred[i] = predEntry{}
	}

	maxPasses := f.config.maxPasses
	if maxPasses == 0 {
		maxPasses = f.g.NumVertices() * f.g.NumEdges()
		if maxPasses == 0 {
			maxPasses = 1
		}
	}

	for passes := 0; f.Relax(dist, w); passes++ {
		if v, ok := f.FindCycle(); ok {
			return f.cycleList(v), true
		}
		if passes+1 >= maxPasses {
			return nil, false
		}
	}

	return nil, false
}
