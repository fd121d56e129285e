// Package netoptim detects negative cycles and minimizes parametric cycle
// ratios on weighted directed graphs.
//
// It is organized as four subpackages:
//
//	digraph/    — a generic, thread-safe directed multigraph with a dense
//	              0..N-1 vertex space and caller-defined edge payloads
//	numeric/    — the Number[T] weight constraint (Add, Less) and its
//	              concrete implementations: Int64, Float64, and an exact
//	              Rat backed by math/big
//	negcycle/   — Howard's policy-iteration algorithm: find a negative
//	              cycle reachable from a potential vector, or prove none
//	              exists
//	parametric/ — Lawler's parametric method built on negcycle: minimize
//	              the cycle ratio a client's API assigns to every cycle,
//	              for example Σcost/Σtime
//
// A typical client defines an edge payload type and a parametric.API
// implementation for it, builds a digraph.DiGraph, and calls
// parametric.Solver.Run to find the minimum ratio cycle. Clients who only
// need negative-cycle detection use negcycle.Finder directly with a plain
// weight function.
package netoptim
