// Package completion implements proportional completion: folding a
// distribution over per-dimension orderings (each dimension independently
// greater/equal/less) down to a distribution over pure greater/less
// outcomes, by recursively splitting the most-tied group's weight
// proportionally across the less-tied groups below it. Grounded on
// original_source/vote/src/proportional_completion.rs.
package completion

import (
	"math/bits"

	"github.com/andersk/elect/weight"
)

// Ordering is the per-dimension comparison result for one ballot pattern.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Pattern is one input row: a per-dimension ordering vector and its
// aggregate weight.
type Pattern[T weight.Value[T]] struct {
	Orders []Ordering
	Weight T
}

// Result is one fully-resolved output row: the set of dimensions that
// ended up "greater" (every other dimension is "less") and its weight.
type Result[T weight.Value[T]] struct {
	Greater []int
	Weight  T
}

// patternKey packs a pattern's equal-mask and greater-mask into a map key;
// dimension i contributes bit i to whichever mask its ordering set.
type patternKey struct {
	eq, gt int
}

func encodePattern(a []Ordering) patternKey {
	var k patternKey
	for i, o := range a {
		switch o {
		case Equal:
			k.eq |= 1 << i
		case Greater:
			k.gt |= 1 << i
		}
	}
	return k
}

func decodeBits(gt int) []int {
	var cs []int
	for gt != 0 {
		i := bits.TrailingZeros(uint(gt))
		cs = append(cs, i)
		gt &^= 1 << i
	}
	return cs
}

func maxEq(m map[patternKey]struct{}) int {
	max := -1
	for k := range m {
		if k.eq > max {
			max = k.eq
		}
	}
	return max
}

// Complete resolves a weighted set of patterns into a weighted set of
// fully-resolved outcomes. Zero-weight patterns are discarded on input.
func Complete[T weight.Value[T]](backend weight.Backend[T], patterns []Pattern[T]) []Result[T] {
	pmap := make(map[patternKey]T)
	total := backend.Zero
	for _, p := range patterns {
		if p.Weight.IsZero() {
			continue
		}
		k := encodePattern(p.Orders)
		if w, ok := pmap[k]; ok {
			pmap[k] = w.Add(p.Weight)
		} else {
			pmap[k] = p.Weight
		}
		total = total.Add(p.Weight)
	}

	for {
		keys := make(map[patternKey]struct{}, len(pmap))
		for k := range pmap {
			keys[k] = struct{}{}
		}
		eq := maxEq(keys)

		if eq == 0 {
			out := make([]Result[T], 0, len(pmap))
			for k, w := range pmap {
				out = append(out, Result[T]{Greater: decodeBits(k.gt), Weight: w})
			}
			return out
		}

		m := make(map[patternKey]T)
		for k, w := range pmap {
			if k.eq == eq {
				m[k] = w
				delete(pmap, k)
			}
		}

		if len(pmap) == 0 {
			// No less-tied group remains to redistribute against: split
			// each tied pattern's weight evenly between its as-is
			// resolution and the resolution where its tied dimensions
			// count as wins.
			out := make([]Result[T], 0, 2*len(m))
			for k, w := range m {
				half := w.Div(backend.FromInt(2))
				out = append(out, Result[T]{Greater: decodeBits(k.gt), Weight: half})
				out = append(out, Result[T]{Greater: decodeBits(k.gt | k.eq), Weight: half})
			}
			return out
		}

		scale := total
		for _, w := range m {
			scale = scale.Sub(w)
		}

		h := make(map[patternKey]T)
		for k1, w1 := range pmap {
			hk := patternKey{eq: eq & k1.eq, gt: eq & k1.gt}
			if w, ok := h[hk]; ok {
				h[hk] = w.Add(w1)
			} else {
				h[hk] = w1
			}
		}

		for k, w := range m {
			wScaled := w.Div(scale)
			for hk, w1 := range h {
				newKey := patternKey{eq: hk.eq, gt: k.gt | hk.gt}
				contrib := w1.Mul(wScaled)
				if v, ok := pmap[newKey]; ok {
					pmap[newKey] = v.Add(contrib)
				} else {
					pmap[newKey] = contrib
				}
			}
		}
	}
}
