// Package parametric implements Lawler's parametric method for minimum
// parametric cycle ratio: given a digraph whose edges
// carry an opaque payload E, and a client-supplied projection of (ratio,
// edge) pairs to a real weight, find the cycle minimizing the ratio the
// client's ZeroCancel assigns it, by repeatedly invoking negcycle.Finder
// on the reweighted graph and tightening the ratio toward the cycle it
// finds.
//
// The client binds its own domain (for example, a cost/time edge schema
// whose minimized ratio is Σcost/Σtime) to the solver entirely through the
// API contract below; the solver itself never inspects E.
package parametric

import (
	"github.com/luk036/netoptim-go/digraph"
	"github.com/luk036/netoptim-go/negcycle"
	"github.com/luk036/netoptim-go/numeric"
)

// API binds a client's domain to Solver. Distance computes the weight of
// one edge under ratio r — for a cost/time ratio problem,
// cost(e) - r*time(e), so that a cycle's reweighted sum is negative
// exactly when the cycle's own ratio is less than r. ZeroCancel takes a
// non-empty cycle and returns the ratio that makes its reweighted sum
// exactly zero — for the cost/time problem, Σcost/Σtime.
//
// Conformance invariant the solver's convergence depends on: for every
// non-empty cycle C, substituting r = ZeroCancel(C) into Distance(r, ·)
// must yield a reweighted sum of exactly zero across C.
//
// ZeroCancel is never called on an empty cycle; Solver.Run only invokes it
// on cycles negcycle.Finder.Howard actually returned.
type API[E any, R numeric.Number[R]] interface {
	// Distance returns the weight of e when the current ratio is r.
	Distance(r R, e digraph.Edge[E]) R
	// ZeroCancel returns the ratio that zeroes cycle's reweighted sum.
	// Never called with an empty cycle.
	ZeroCancel(cycle negcycle.Cycle[E]) R
}

// Solver drives Lawler's parametric iteration over a fixed digraph and a
// client-supplied API implementation.
type Solver[E any, R numeric.Number[R]] struct {
	finder *negcycle.Finder[E, R]
	api    API[E, R]
}

// New returns a Solver over g, bound to the given API implementation.
//
// Complexity: O(V)
func New[E any, R numeric.Number[R]](g *digraph.DiGraph[E], api API[E, R], opts ...negcycle.Option) *Solver[E, R] {
	return &Solver[E, R]{
		finder: negcycle.New[E, R](g, opts...),
		api:    api,
	}
}
