package numeric

// Int64 is an exact, bounded-range integer weight. It is the simplest
// reference type for graphs whose cycle weights never need a fraction,
// such as a plain negative-cycle search over integer edge weights.
type Int64 int64

// Add returns i + other.
func (i Int64) Add(other Int64) Int64 { return i + other }

// Less reports whether i < other.
func (i Int64) Less(other Int64) bool { return i < other }

// Sub returns i - other.
func (i Int64) Sub(other Int64) Int64 { return i - other }

// Mul returns i * other.
func (i Int64) Mul(other Int64) Int64 { return i * other }
