// Package decimalw implements an arbitrary-precision decimal weight.Value
// backend on top of github.com/shopspring/decimal, grounded on
// other_examples' OpenSlides Scottish-STV vote tally (which uses the same
// library for the same purpose: ranked-ballot weight arithmetic).
package decimalw

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andersk/elect/weight"
)

// fuzzyPlaces is the number of decimal places at which two strengths are
// considered equal for defeat-grouping purposes, expressed in decimal
// places rather than an absolute epsilon since the backend already carries
// decimal scale.
const fuzzyPlaces = 8

// DecimalWeight is a decimal.Decimal under the weight.Value contract.
type DecimalWeight struct {
	d decimal.Decimal
}

// Parse accepts a plain decimal literal or the ballot grammar's
// "integer/integer" fraction form.
func Parse(s string) (DecimalWeight, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := decimal.NewFromString(strings.TrimSpace(num))
		if err != nil {
			return DecimalWeight{}, fmt.Errorf("decimal: invalid weight %q: %w", s, err)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(den))
		if err != nil {
			return DecimalWeight{}, fmt.Errorf("decimal: invalid weight %q: %w", s, err)
		}
		return DecimalWeight{d: n.DivRound(d, decimal.DivisionPrecision)}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return DecimalWeight{}, fmt.Errorf("decimal: invalid weight %q: %w", s, err)
	}
	return DecimalWeight{d: d}, nil
}

// Backend returns the weight.Backend dictionary for the decimal domain,
// registered under the CLI name "decimal".
func Backend() weight.Backend[DecimalWeight] {
	return weight.Backend[DecimalWeight]{
		Name:    "decimal",
		Zero:    DecimalWeight{},
		One:     DecimalWeight{d: decimal.NewFromInt(1)},
		FromInt: func(n int64) DecimalWeight { return DecimalWeight{d: decimal.NewFromInt(n)} },
		Parse:   Parse,
	}
}

func (a DecimalWeight) Add(b DecimalWeight) DecimalWeight {
	return DecimalWeight{d: a.d.Add(b.d)}
}

func (a DecimalWeight) Sub(b DecimalWeight) DecimalWeight {
	return DecimalWeight{d: a.d.Sub(b.d)}
}

func (a DecimalWeight) Mul(b DecimalWeight) DecimalWeight {
	return DecimalWeight{d: a.d.Mul(b.d)}
}

// Div panics (via shopspring/decimal) if b is zero; the caller is
// responsible for never dividing by a zero weight, which cannot arise from
// valid ballot input.
func (a DecimalWeight) Div(b DecimalWeight) DecimalWeight {
	return DecimalWeight{d: a.d.DivRound(b.d, decimal.DivisionPrecision)}
}

func (a DecimalWeight) Cmp(b DecimalWeight) int {
	return a.d.Cmp(b.d)
}

func (a DecimalWeight) FuzzyEq(b DecimalWeight) bool {
	return a.d.Sub(b.d).Abs().LessThan(decimal.New(1, -fuzzyPlaces))
}

func (a DecimalWeight) IsZero() bool {
	return a.d.IsZero()
}

func (a DecimalWeight) String() string {
	return a.d.String()
}
