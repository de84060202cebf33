// Package stv assembles the defeat-strength table over every committee of
// size numSeats and runs the Schulze method over it to find the winning
// committees. Grounded on original_source/vote/src/schulze_stv.rs.
package stv

import (
	"sort"

	"github.com/andersk/elect/internal/combination"
	"github.com/andersk/elect/internal/completion"
	"github.com/andersk/elect/internal/schulze"
	"github.com/andersk/elect/internal/votemgmt"
	"github.com/andersk/elect/weight"
)

// Ballot is one ranked ballot: Groups lists candidate indices in
// preference order, a group may name more than one candidate to express a
// tie between them, and any candidate absent from every group is ranked
// last (and tied with any other absent candidate).
type Ballot[T weight.Value[T]] struct {
	Groups [][]int
	Weight T
}

// preferred classifies every seat in the candidate set seti against a
// single opponent, from the point of view of one ballot: a seat is
// Greater if this ballot ranks its candidate strictly ahead of opponent,
// Equal if tied with opponent, and Less if ranked strictly below opponent.
// When the ballot does not rank opponent at all, every seat not ranked
// ahead of it is Equal, since unranked candidates tie for last.
func preferred(numSeats int, seti []int, opponent int, groups [][]int) []completion.Ordering {
	v := make([]completion.Ordering, numSeats)
	for i := range v {
		v[i] = completion.Less
	}

	for _, group := range groups {
		opponentHere := false
		for _, c := range group {
			if c == opponent {
				opponentHere = true
				break
			}
		}
		if opponentHere {
			for _, c := range group {
				if seti[c] != -1 {
					v[seti[c]] = completion.Equal
				}
			}
			return v
		}
		for _, c := range group {
			if seti[c] != -1 {
				v[seti[c]] = completion.Greater
			}
		}
	}

	for i, o := range v {
		if o == completion.Less {
			v[i] = completion.Equal
		}
	}
	return v
}

// replacements enumerates every committee formed by swapping exactly one
// member of set for opponent, keeping the result sorted ascending.
func replacements(set []int, opponent int) [][]int {
	k := sort.Search(len(set), func(i int) bool { return set[i] > opponent })

	out := make([][]int, 0, len(set))
	for i := 0; i < k; i++ {
		s := make([]int, 0, len(set))
		s = append(s, set[:i]...)
		s = append(s, set[i+1:k]...)
		s = append(s, opponent)
		s = append(s, set[k:]...)
		out = append(out, s)
	}
	for i := k; i < len(set); i++ {
		s := make([]int, 0, len(set))
		s = append(s, set[:k]...)
		s = append(s, opponent)
		s = append(s, set[k:i]...)
		s = append(s, set[i+1:]...)
		out = append(out, s)
	}
	return out
}

// AllStrengths computes, for every committee of size numSeats, the
// vote-management strength with which the ballots support the committee's
// members against each non-member opponent; Run uses it as the strength
// of the committee's defeat of every committee formed by swapping that
// opponent in for one member. The result is
// indexed by the committee's combinatorial-number-system rank; row m,
// column opponent is zero when opponent already belongs to committee m.
func AllStrengths[T weight.Value[T]](backend weight.Backend[T], numCandidates, numSeats int, ballots []Ballot[T]) [][]T {
	binomial := combination.NewTable(numCandidates, numSeats)
	numCombinations := binomial.At(numCandidates, numSeats)

	strengths := make([][]T, numCombinations)
	for m := 0; m < numCombinations; m++ {
		set := binomial.Decode(numSeats, m)
		seti := make([]int, numCandidates)
		for i := range seti {
			seti[i] = -1
		}
		for i, c := range set {
			seti[c] = i
		}

		row := make([]T, numCandidates)
		for opponent := 0; opponent < numCandidates; opponent++ {
			if seti[opponent] != -1 {
				row[opponent] = backend.Zero
				continue
			}

			patterns := make([]completion.Pattern[T], len(ballots))
			for bi, ballot := range ballots {
				patterns[bi] = completion.Pattern[T]{
					Orders: preferred(numSeats, seti, opponent, ballot.Groups),
					Weight: ballot.Weight,
				}
			}
			completed := completion.Complete(backend, patterns)

			vmBallots := make([]votemgmt.Ballot[T], len(completed))
			for ci, r := range completed {
				choices := make([]bool, numSeats)
				for _, g := range r.Greater {
					choices[g] = true
				}
				vmBallots[ci] = votemgmt.Ballot[T]{Choices: choices, Weight: r.Weight}
			}
			row[opponent] = votemgmt.Strength(backend, numSeats, vmBallots)
		}
		strengths[m] = row
	}
	return strengths
}

type defeat[T weight.Value[T]] struct {
	strength T
	m, m1    int
}

// Run finds every winning committee of size numSeats among numCandidates
// candidates under the given ranked ballots, via the full Schulze STV
// procedure: assemble the strength table, turn it into replacement-edge
// defeats between committees, group defeats of fuzzy-equal strength from
// strongest to weakest, and reduce via the Schulze method. A result with
// more than one committee indicates an unresolved tie.
func Run[T weight.Value[T]](backend weight.Backend[T], numCandidates, numSeats int, ballots []Ballot[T]) [][]int {
	binomial := combination.NewTable(numCandidates, numSeats)
	strengths := AllStrengths(backend, numCandidates, numSeats, ballots)

	var defeats []defeat[T]
	for m, row := range strengths {
		set := binomial.Decode(numSeats, m)
		setv := make([]bool, numCandidates)
		for _, i := range set {
			setv[i] = true
		}
		for opponent := 0; opponent < numCandidates; opponent++ {
			if setv[opponent] {
				continue
			}
			for _, set1 := range replacements(set, opponent) {
				m1 := binomial.Encode(set1)
				defeats = append(defeats, defeat[T]{strength: row[opponent], m: m, m1: m1})
			}
		}
	}

	sort.Slice(defeats, func(i, j int) bool {
		return defeats[i].strength.Cmp(defeats[j].strength) > 0
	})

	var defeatGroups [][]schulze.Edge
	for i := 0; i < len(defeats); {
		j := i + 1
		for j < len(defeats) && defeats[i].strength.FuzzyEq(defeats[j].strength) {
			j++
		}
		group := make([]schulze.Edge, j-i)
		for k := i; k < j; k++ {
			group[k-i] = schulze.Edge{A: defeats[k].m, B: defeats[k].m1}
		}
		defeatGroups = append(defeatGroups, group)
		i = j
	}

	winners := schulze.Graph(len(strengths), defeatGroups)
	out := make([][]int, len(winners))
	for i, c := range winners {
		out[i] = binomial.Decode(numSeats, c)
	}
	return out
}
