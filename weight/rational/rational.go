// Package rational implements the exact-rational weight.Value backend used
// as the default numeric domain for Schulze STV tallying, backed by
// math/big.Rat.
package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/andersk/elect/weight"
)

// Rational wraps big.Rat by value rather than by pointer so that the Go
// zero value (an unexported, empty big.Rat) is itself a valid 0/1, which
// every weight.Value backend is required to provide.
type Rational struct {
	r big.Rat
}

// FromInt64 returns the rational value n/1.
func FromInt64(n int64) Rational {
	var r Rational
	r.r.SetInt64(n)
	return r
}

// FromFraction returns the rational value num/den.
func FromFraction(num, den int64) Rational {
	var r Rational
	r.r.SetFrac64(num, den)
	return r
}

// Parse accepts the ballot weight grammar's "integer" or "integer/integer"
// forms. Parse itself does not enforce positivity; that is the ballot
// parser's job.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	var r Rational
	if _, ok := r.r.SetString(s); ok {
		return r, nil
	}
	return Rational{}, fmt.Errorf("rational: invalid weight %q", s)
}

// Backend returns the weight.Backend dictionary for the exact-rational
// domain, registered under the CLI name "rational".
func Backend() weight.Backend[Rational] {
	return weight.Backend[Rational]{
		Name:    "rational",
		Zero:    Rational{},
		One:     FromInt64(1),
		FromInt: FromInt64,
		Parse:   Parse,
	}
}

func (a Rational) Add(b Rational) Rational {
	var out Rational
	out.r.Add(&a.r, &b.r)
	return out
}

func (a Rational) Sub(b Rational) Rational {
	var out Rational
	out.r.Sub(&a.r, &b.r)
	return out
}

func (a Rational) Mul(b Rational) Rational {
	var out Rational
	out.r.Mul(&a.r, &b.r)
	return out
}

// Div panics if b is zero; the caller is responsible for never dividing by
// a zero weight, which cannot arise from valid ballot input.
func (a Rational) Div(b Rational) Rational {
	var out Rational
	out.r.Quo(&a.r, &b.r)
	return out
}

func (a Rational) Cmp(b Rational) int {
	return a.r.Cmp(&b.r)
}

// FuzzyEq is exact equality for the rational backend.
func (a Rational) FuzzyEq(b Rational) bool {
	return a.r.Cmp(&b.r) == 0
}

func (a Rational) IsZero() bool {
	return a.r.Sign() == 0
}

func (a Rational) String() string {
	return a.r.RatString()
}
