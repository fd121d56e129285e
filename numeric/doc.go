// Package numeric defines the generic numeric weight type used by negcycle
// and parametric, plus a small set of concrete implementations.
//
// Go has no operator overloading, so the weight type is constrained by a
// method interface rather than by arithmetic operators:
//
//	type Number[T any] interface {
//	    Add(T) T
//	    Less(T) bool
//	}
//
// Add and Less are exactly the two operations the core loops need: edge
// relaxation computes dist[u] + w(e) and compares it against dist[v];
// Lawler's parametric iteration compares candidate ratios. Anything a
// client's own ParametricAPI implementation needs beyond that (subtraction,
// multiplication, division to build a cost-minus-ratio-times-time weight,
// say) is the client's concern, built on whichever concrete Number it
// chooses — see Rat below for a type that supplies the extra arithmetic.
//
// Three concrete types are provided: Float64 and Int64 wrap the built-in
// kinds directly, and Rat wraps math/big.Rat for exact rational arithmetic,
// the reference numeric type for testing Howard's algorithm and Lawler's
// method without floating-point termination caveats.
package numeric

// Number is the constraint negcycle.Finder and parametric.Solver require
// of their weight type R: a commutative-enough addition and a total order.
type Number[T any] interface {
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Less reports whether the receiver is strictly less than other.
	Less(other T) bool
}
