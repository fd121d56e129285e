package numeric

import (
	"math/big"
)

// Rat is an exact rational weight backed by math/big.Rat. It is the
// reference numeric type for testing Howard's algorithm and Lawler's
// parametric method: unlike Float64, a ratio such as -1/3 is represented
// exactly, so tests can assert equality instead of comparing within an
// epsilon.
//
// The zero value of Rat behaves as 0 in every method; NewRat, NewRatInt
// and ZeroRat construct explicit values.
type Rat struct {
	r *big.Rat
}

// NewRat returns the rational num/den, reduced to lowest terms. It panics
// if den is zero, matching math/big.Rat.SetFrac's own behavior.
func NewRat(num, den int64) Rat {
	return Rat{r: big.NewRat(num, den)}
}

// NewRatInt returns the rational n/1.
func NewRatInt(n int64) Rat {
	return Rat{r: big.NewRat(n, 1)}
}

// ZeroRat returns the rational 0/1.
func ZeroRat() Rat {
	return NewRatInt(0)
}

func (a Rat) big() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Add returns a + b.
func (a Rat) Add(b Rat) Rat {
	return Rat{r: new(big.Rat).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Rat) Sub(b Rat) Rat {
	return Rat{r: new(big.Rat).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Rat) Mul(b Rat) Rat {
	return Rat{r: new(big.Rat).Mul(a.big(), b.big())}
}

// Div returns a / b. It panics if b is zero, matching big.Rat.Quo.
func (a Rat) Div(b Rat) Rat {
	return Rat{r: new(big.Rat).Quo(a.big(), b.big())}
}

// Neg returns -a.
func (a Rat) Neg() Rat {
	return Rat{r: new(big.Rat).Neg(a.big())}
}

// Less reports whether a < b.
func (a Rat) Less(b Rat) bool {
	return a.big().Cmp(b.big()) < 0
}

// Equal reports whether a == b.
func (a Rat) Equal(b Rat) bool {
	return a.big().Cmp(b.big()) == 0
}

// IsZero reports whether a == 0.
func (a Rat) IsZero() bool {
	return a.big().Sign() == 0
}

// Float64 returns the nearest float64 approximation of a.
func (a Rat) Float64() float64 {
	f, _ := a.big().Float64()
	return f
}

// String returns a's "num/den" representation in lowest terms ("num" if
// the denominator is 1).
func (a Rat) String() string {
	return a.big().RatString()
}
