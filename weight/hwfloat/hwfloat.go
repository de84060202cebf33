// Package hwfloat implements the hardware-double weight.Value backend,
// grounded on original_source/vote/src/hw_float.rs. It trades exactness for
// speed and uses a fixed absolute tolerance for defeat-strength grouping.
package hwfloat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/andersk/elect/weight"
)

// fuzzyTolerance is the absolute tolerance used to treat two
// hardware-float strengths as equal when grouping defeats.
const fuzzyTolerance = 1e-8

// HWFloat is an IEEE double under the weight.Value contract.
type HWFloat float64

// Parse accepts a plain float literal or the ballot grammar's
// "integer/integer" fraction form.
func Parse(s string) (HWFloat, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("hwfloat: invalid weight %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("hwfloat: invalid weight %q: %w", s, err)
		}
		return HWFloat(n / d), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("hwfloat: invalid weight %q: %w", s, err)
	}
	return HWFloat(f), nil
}

// Backend returns the weight.Backend dictionary for the hardware-float
// domain, registered under the CLI name "hwfloat".
func Backend() weight.Backend[HWFloat] {
	return weight.Backend[HWFloat]{
		Name:    "hwfloat",
		Zero:    0,
		One:     1,
		FromInt: func(n int64) HWFloat { return HWFloat(n) },
		Parse:   Parse,
	}
}

func (a HWFloat) Add(b HWFloat) HWFloat { return a + b }
func (a HWFloat) Sub(b HWFloat) HWFloat { return a - b }
func (a HWFloat) Mul(b HWFloat) HWFloat { return a * b }

// Div panics if b is zero, matching the other backends: the caller is
// responsible for never dividing by a zero weight, which cannot arise from
// valid ballot input. Plain float64 division would instead silently
// produce +Inf, -Inf or NaN, so the zero check is explicit here.
func (a HWFloat) Div(b HWFloat) HWFloat {
	if b == 0 {
		panic("hwfloat: division by zero")
	}
	return a / b
}

func (a HWFloat) Cmp(b HWFloat) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a HWFloat) FuzzyEq(b HWFloat) bool {
	return math.Abs(float64(a-b)) < fuzzyTolerance
}

func (a HWFloat) IsZero() bool {
	return a == 0
}

func (a HWFloat) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}
