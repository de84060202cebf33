package stv

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/andersk/elect/internal/combination"
	"github.com/andersk/elect/weight/rational"
)

func q(n int64) rational.Rational {
	return rational.FromFraction(n, 1)
}

func qf(n, d int64) rational.Rational {
	return rational.FromFraction(n, d)
}

func TestReplacements(t *testing.T) {
	set := []int{2, 4, 6, 8, 10, 12}
	opponent := 9
	want := [][]int{
		{4, 6, 8, 9, 10, 12},
		{2, 6, 8, 9, 10, 12},
		{2, 4, 8, 9, 10, 12},
		{2, 4, 6, 9, 10, 12},
		{2, 4, 6, 8, 9, 12},
		{2, 4, 6, 8, 9, 10},
	}
	got := replacements(set, opponent)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("replacements(%v, %d) = %v, want %v", set, opponent, got, want)
	}
}

func one(c int) []int { return []int{c} }

func TestSchulzeSTVFiveChooseThree(t *testing.T) {
	backend := rational.Backend()
	const a, b, c, d, e = 0, 1, 2, 3, 4

	ballots := []Ballot[rational.Rational]{
		{Groups: [][]int{one(a), one(b), one(c), one(d), one(e)}, Weight: q(60)},
		{Groups: [][]int{one(a), one(c), one(e), one(b), one(d)}, Weight: q(45)},
		{Groups: [][]int{one(a), one(d), one(b), one(e), one(c)}, Weight: q(30)},
		{Groups: [][]int{one(a), one(e), one(d), one(c), one(b)}, Weight: q(15)},
		{Groups: [][]int{one(b), one(a), one(e), one(d), one(c)}, Weight: q(12)},
		{Groups: [][]int{one(b), one(c), one(d), one(e), one(a)}, Weight: q(48)},
		{Groups: [][]int{one(b), one(d), one(a), one(c), one(e)}, Weight: q(39)},
		{Groups: [][]int{one(b), one(e), one(c), one(a), one(d)}, Weight: q(21)},
		{Groups: [][]int{one(c), one(a), one(d), one(b), one(e)}, Weight: q(27)},
		{Groups: [][]int{one(c), one(b), one(a), one(e), one(d)}, Weight: q(9)},
		{Groups: [][]int{one(c), one(d), one(e), one(a), one(b)}, Weight: q(51)},
		{Groups: [][]int{one(c), one(e), one(b), one(d), one(a)}, Weight: q(33)},
		{Groups: [][]int{one(d), one(a), one(c), one(e), one(b)}, Weight: q(42)},
		{Groups: [][]int{one(d), one(b), one(e), one(c), one(a)}, Weight: q(18)},
		{Groups: [][]int{one(d), one(c), one(b), one(a), one(e)}, Weight: q(6)},
		{Groups: [][]int{one(d), one(e), one(a), one(b), one(c)}, Weight: q(54)},
		{Groups: [][]int{one(e), one(a), one(b), one(c), one(d)}, Weight: q(57)},
		{Groups: [][]int{one(e), one(b), one(d), one(a), one(c)}, Weight: q(36)},
		{Groups: [][]int{one(e), one(c), one(a), one(d), one(b)}, Weight: q(24)},
		{Groups: [][]int{one(e), one(d), one(c), one(b), one(a)}, Weight: q(3)},
	}

	binomial := combination.NewTable(5, 3)
	type expectedRow struct {
		set []int
		row []rational.Rational
	}
	zero := rational.FromInt64(0)
	expected := []expectedRow{
		{[]int{a, b, c}, []rational.Rational{zero, zero, zero, q(169), q(152)}},
		{[]int{a, b, d}, []rational.Rational{zero, zero, q(162), zero, q(159)}},
		{[]int{a, b, e}, []rational.Rational{zero, zero, q(168), q(153), zero}},
		{[]int{a, c, d}, []rational.Rational{zero, q(158), zero, zero, q(163)}},
		{[]int{a, c, e}, []rational.Rational{zero, q(164), zero, q(157), zero}},
		{[]int{a, d, e}, []rational.Rational{zero, q(167), q(154), zero, zero}},
		{[]int{b, c, d}, []rational.Rational{q(141), zero, zero, zero, q(165)}},
		{[]int{b, c, e}, []rational.Rational{q(146), zero, zero, q(160), zero}},
		{[]int{b, d, e}, []rational.Rational{q(151), zero, q(155), zero, zero}},
		{[]int{c, d, e}, []rational.Rational{q(156), q(150), zero, zero, zero}},
	}

	got := AllStrengths(backend, 5, 3, ballots)
	for _, er := range expected {
		m := binomial.Encode(er.set)
		for opponent, want := range er.row {
			if got[m][opponent].Cmp(want) != 0 {
				t.Errorf("strength(%v, opponent=%d) = %s, want %s", er.set, opponent, got[m][opponent], want)
			}
		}
	}

	winners := Run(backend, 5, 3, ballots)
	if len(winners) != 1 {
		t.Fatalf("got %d winning committees, want 1: %v", len(winners), winners)
	}
	w := append([]int(nil), winners[0]...)
	sort.Ints(w)
	if !reflect.DeepEqual(w, []int{a, d, e}) {
		t.Errorf("winner = %v, want [%d %d %d]", w, a, d, e)
	}
}

func TestSchulzeSTVThreeChooseTwoWithTruncation(t *testing.T) {
	backend := rational.Backend()
	ballots := []Ballot[rational.Rational]{
		{Groups: [][]int{one(0), one(1), one(2)}, Weight: q(12)},
		{Groups: [][]int{one(0), one(2), one(1)}, Weight: q(26)},
		{Groups: [][]int{one(0), one(2), one(1)}, Weight: q(12)},
		{Groups: [][]int{one(2), one(0), one(1)}, Weight: q(13)},
		{Groups: [][]int{one(1)}, Weight: q(27)},
	}

	binomial := combination.NewTable(3, 2)
	zero := rational.FromInt64(0)
	expected := map[string][]rational.Rational{
		"[0 1]": {zero, zero, qf(77, 2)},
		"[0 2]": {zero, qf(63, 2), zero},
		"[1 2]": {qf(130, 7), zero, zero},
	}

	got := AllStrengths(backend, 3, 2, ballots)
	for _, set := range [][]int{{0, 1}, {0, 2}, {1, 2}} {
		m := binomial.Encode(set)
		want := expected[fmt.Sprint(set)]
		for opponent, w := range want {
			if got[m][opponent].Cmp(w) != 0 {
				t.Errorf("strength(%v, opponent=%d) = %s, want %s", set, opponent, got[m][opponent], w)
			}
		}
	}

	winners := Run(backend, 3, 2, ballots)
	if len(winners) != 1 {
		t.Fatalf("got %d winning committees, want 1: %v", len(winners), winners)
	}
	w := append([]int(nil), winners[0]...)
	sort.Ints(w)
	if !reflect.DeepEqual(w, []int{0, 1}) {
		t.Errorf("winner = %v, want [0 1]", w)
	}
}
