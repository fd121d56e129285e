package numeric

// Float64 is an IEEE-754 double-precision weight: exact up to the
// precision of float64, and not guaranteed to terminate Howard's
// relaxation loop on pathological input (see negcycle.WithMaxPasses).
type Float64 float64

// Add returns f + other.
func (f Float64) Add(other Float64) Float64 { return f + other }

// Less reports whether f < other.
func (f Float64) Less(other Float64) bool { return f < other }

// Sub returns f - other. Not part of Number; provided for client
// ParametricAPI implementations that need it to build a reweighting.
func (f Float64) Sub(other Float64) Float64 { return f - other }

// Mul returns f * other.
func (f Float64) Mul(other Float64) Float64 { return f * other }

// Div returns f / other.
func (f Float64) Div(other Float64) Float64 { return f / other }
