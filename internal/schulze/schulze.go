// Package schulze reduces a candidate set to its final Schulze winners by
// repeatedly taking Schwartz sets while peeling defeat edges off from
// weakest group to strongest, grounded on
// original_source/vote/src/schulze.rs.
package schulze

import "github.com/andersk/elect/internal/schwartz"

// Edge is a single defeat: A defeats B.
type Edge struct {
	A, B int
}

// Graph reduces the candidate set {0, ..., numCandidates-1} to its Schulze
// winners. defeatGroups must be ordered from the strongest defeat group to
// the weakest; ties that are fuzzy-equal in strength belong in the same
// group. The returned slice is unordered.
func Graph(numCandidates int, defeatGroups [][]Edge) []int {
	defeaters := make([][]int, numCandidates)
	for _, group := range defeatGroups {
		for _, e := range group {
			defeaters[e.B] = append(defeaters[e.B], e.A)
		}
	}

	candidates := make([]int, numCandidates)
	for i := range candidates {
		candidates[i] = i
	}

	for i := len(defeatGroups) - 1; i >= 0; i-- {
		if len(candidates) <= 1 {
			break
		}
		candidates = schwartz.Set(candidates, defeaters)

		group := defeatGroups[i]
		for j := len(group) - 1; j >= 0; j-- {
			e := group[j]
			last := len(defeaters[e.B]) - 1
			defeaters[e.B] = defeaters[e.B][:last]
		}
	}

	return candidates
}
