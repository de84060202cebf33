// Package weight defines the numeric domain the tallying core is generic
// over. Every arithmetic operation the Schulze STV pipeline performs goes
// through this contract, so a caller can swap exact rationals for a
// hardware-float or arbitrary-precision decimal backend without touching
// the pipeline itself.
package weight

// Value is the arithmetic contract a numeric backend must satisfy. T is
// always the backend's own concrete type (e.g. Value[Rational]), so the
// interface is self-referential: operations take and return T, never
// Value[T] itself.
//
// The zero value of a conforming T must represent the additive identity.
// All three backends in this module satisfy that (big.Rat, float64 and
// shopspring/decimal all define a meaningful zero value), so Value has no
// separate Zero method; Backend.Zero carries the same value under an
// explicit name, and the pipeline starts its running sums from it.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T

	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other T) int

	// FuzzyEq reports whether the receiver and other should be treated as
	// equal for the purpose of grouping defeat strengths: exact equality
	// for rationals, a fixed tolerance for hardware floats.
	FuzzyEq(other T) bool

	IsZero() bool

	String() string
}

// Backend bundles the handful of operations a numeric domain needs that
// cannot be expressed as methods on the zero value: injection from an
// integer and parsing from the ballot file's textual weight form. Name is
// the string the CLI's --calc flag matches against.
type Backend[T Value[T]] struct {
	Name    string
	Zero    T
	One     T
	FromInt func(int64) T
	Parse   func(string) (T, error)
}
