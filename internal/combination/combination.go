// Package combination implements the binomial table and the
// combinatorial-number-system bijection between a sorted k-combination and
// its rank in [0, C(n,k)), grounded on
// original_source/vote/src/combination.rs.
package combination

import "sort"

// Table holds C(n, j) for 0 <= n <= N, 0 <= j <= K, built once and shared
// by every combination encode/decode call for a given (N, K).
type Table struct {
	k    int
	rows [][]int
}

// NewTable builds the binomial table for 0..maxN choose 0..maxK using the
// standard Pascal's-triangle recurrence; row 0 is (1, 0, 0, ...).
func NewTable(maxN, maxK int) *Table {
	rows := make([][]int, maxN+1)
	for n := range rows {
		rows[n] = make([]int, maxK+1)
	}
	rows[0][0] = 1
	for n := 0; n < maxN; n++ {
		rows[n+1][0] = 1
		for k := 0; k < maxK; k++ {
			rows[n+1][k+1] = rows[n][k] + rows[n][k+1]
		}
	}
	return &Table{k: maxK, rows: rows}
}

// At returns C(n, k).
func (t *Table) At(n, k int) int {
	return t.rows[n][k]
}

// Encode returns the colex rank of the strictly increasing combination c.
// c must be sorted ascending with no duplicates.
func (t *Table) Encode(c []int) int {
	m := 0
	for i, a := range c {
		m += t.rows[a][i+1]
	}
	return m
}

// Decode recovers the sorted k-combination with colex rank m.
func (t *Table) Decode(k, m int) []int {
	c := make([]int, k)
	mm := m
	n := len(t.rows)
	for i := k - 1; i >= 0; i-- {
		// c[i] is always >= i. Search rows i+1..n for the largest v with
		// rows[v][i+1] <= mm; if none qualifies, c[i] falls back to i
		// (where rows[i][i+1] == C(i, i+1) == 0, trivially <= mm).
		col := i + 1
		lo := i + 1
		count := n - lo
		p := sort.Search(count, func(j int) bool {
			v := lo + j
			return t.rows[v][col] > mm
		})
		v := i + p
		c[i] = v
		mm -= t.rows[v][col]
		n = v
	}
	return c
}
