// Package votemgmt computes the vote-management strength of a defeat:
// the largest weight that can be routed, one unit of flow per candidate,
// from ballots through a two-layer ballot-to-candidate-to-sink network
// built from ballot approval sets, via repeated shortest-augmenting-path
// search. Grounded on original_source/vote/src/vote_management.rs.
package votemgmt

import "github.com/andersk/elect/weight"

// Ballot is one weighted approval ballot: Choices[c] reports whether
// candidate c is acceptable to this ballot.
type Ballot[T weight.Value[T]] struct {
	Choices []bool
	Weight  T
}

type ballotState[T weight.Value[T]] struct {
	visited  bool
	prev     int // candidate index, or -1 if queued for its own unused weight (sinkFlow)
	edgeFlow []T // per-candidate flow already routed through this ballot
	sinkFlow T
	count    int32
}

type candidateState struct {
	prev  int // ballot index, or -1 if unassigned this round
	count int32
}

// queue is a minimal FIFO of int, reused across augmenting-path rounds.
type queue struct {
	items []int
	head  int
}

func (q *queue) push(v int) { q.items = append(q.items, v) }

func (q *queue) pop() (int, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	v := q.items[q.head]
	q.head++
	return v, true
}

func (q *queue) reset() {
	q.items = q.items[:0]
	q.head = 0
}

// Strength computes the vote-management strength of a set of candidates
// against a set of weighted approval ballots: the largest amount t such
// that the ballots' weight can be split, respecting each ballot's
// approvals, so that every candidate receives t at the same time. It is
// computed by repeated augmenting-path search over a flow network from
// ballots to candidates to a sink.
func Strength[T weight.Value[T]](backend weight.Backend[T], numCandidates int, ballots []Ballot[T]) T {
	candidateBallots := make([][]int, numCandidates)
	for b, ballot := range ballots {
		for c, ok := range ballot.Choices {
			if ok {
				candidateBallots[c] = append(candidateBallots[c], b)
			}
		}
	}

	ballotStates := make([]ballotState[T], len(ballots))
	for b, ballot := range ballots {
		ballotStates[b] = ballotState[T]{
			prev:     -1,
			edgeFlow: make([]T, numCandidates),
			sinkFlow: ballot.Weight,
		}
	}
	candidateStates := make([]candidateState, numCandidates)
	for c := range candidateStates {
		candidateStates[c].prev = -1
	}

	totalFlow := backend.Zero
	var q queue

	for {
		for b, bs := range ballotStates {
			if !bs.sinkFlow.IsZero() {
				ballotStates[b].visited = true
				q.push(b)
			}
		}

		var found []int
	search:
		for {
			b, ok := q.pop()
			if !ok {
				return totalFlow
			}
			for c, accepted := range ballots[b].Choices {
				if !accepted || candidateStates[c].prev != -1 {
					continue
				}
				candidateStates[c].prev = b
				found = append(found, c)
				if len(found) == numCandidates {
					break search
				}
				for _, b1 := range candidateBallots[c] {
					if ballotStates[b1].edgeFlow[c].IsZero() || ballotStates[b1].visited {
						continue
					}
					ballotStates[b1].visited = true
					ballotStates[b1].prev = c
					q.push(b1)
				}
			}
		}

		for i := len(found) - 1; i >= 0; i-- {
			c := found[i]
			b := candidateStates[c].prev
			count := candidateStates[c].count + 1
			ballotStates[b].count += count
			c1 := ballotStates[b].prev
			if c1 == -1 {
				// queued for its own unused weight; nothing further to propagate.
			} else {
				candidateStates[c1].count += count
			}
		}

		var flow T
		haveFlow := false
		for _, c := range found {
			b := candidateStates[c].prev
			c1 := ballotStates[b].prev
			var capacity T
			if c1 == -1 {
				capacity = ballotStates[b].sinkFlow
			} else {
				capacity = ballotStates[b].edgeFlow[c1]
			}
			val := capacity.Div(backend.FromInt(int64(ballotStates[b].count)))
			if !haveFlow || val.Cmp(flow) < 0 {
				flow = val
				haveFlow = true
			}
		}
		totalFlow = totalFlow.Add(flow)

		for _, c := range found {
			b := candidateStates[c].prev
			c1 := ballotStates[b].prev
			ballotStates[b].edgeFlow[c] = ballotStates[b].edgeFlow[c].Add(
				flow.Mul(backend.FromInt(int64(candidateStates[c].count + 1))))
			if ballotStates[b].count != 0 {
				amt := flow.Mul(backend.FromInt(int64(ballotStates[b].count)))
				if c1 == -1 {
					ballotStates[b].sinkFlow = ballotStates[b].sinkFlow.Sub(amt)
				} else {
					ballotStates[b].edgeFlow[c1] = ballotStates[b].edgeFlow[c1].Sub(amt)
				}
				ballotStates[b].count = 0
			}
			candidateStates[c].prev = -1
			candidateStates[c].count = 0
		}

		for b := range ballotStates {
			ballotStates[b].visited = false
			ballotStates[b].prev = -1
		}
		q.reset()
	}
}
