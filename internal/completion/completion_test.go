package completion

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/andersk/elect/weight/rational"
)

func q(n, d int64) rational.Rational {
	return rational.FromFraction(n, d)
}

func TestCompleteNoTiesIsIdentity(t *testing.T) {
	backend := rational.Backend()
	patterns := []Pattern[rational.Rational]{
		{Orders: []Ordering{Greater, Greater}, Weight: q(5, 1)},
		{Orders: []Ordering{Greater, Less}, Weight: q(3, 1)},
		{Orders: []Ordering{Less, Greater}, Weight: q(2, 1)},
		{Orders: []Ordering{Less, Less}, Weight: q(1, 1)},
	}
	got := Complete(backend, patterns)

	want := map[string]rational.Rational{
		"[0 1]": q(5, 1),
		"[0]":   q(3, 1),
		"[1]":   q(2, 1),
		"[]":    q(1, 1),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for _, r := range got {
		sort.Ints(r.Greater)
		key := fmt.Sprint(r.Greater)
		w, ok := want[key]
		if !ok {
			t.Fatalf("unexpected result set %v", r.Greater)
		}
		if r.Weight.Cmp(w) != 0 {
			t.Errorf("weight for %v = %s, want %s", r.Greater, r.Weight, w)
		}
	}
}

func TestCompleteCascadesThroughSoleNonTiedPattern(t *testing.T) {
	backend := rational.Backend()
	patterns := []Pattern[rational.Rational]{
		{Orders: []Ordering{Greater, Greater}, Weight: q(2, 1)},
		{Orders: []Ordering{Equal, Greater}, Weight: q(3, 1)},
		{Orders: []Ordering{Equal, Equal}, Weight: q(1, 1)},
	}
	got := Complete(backend, patterns)

	if len(got) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(got), got)
	}
	sort.Ints(got[0].Greater)
	if !reflect.DeepEqual(got[0].Greater, []int{0, 1}) {
		t.Fatalf("got Greater=%v, want [0 1]", got[0].Greater)
	}
	want := q(6, 1)
	if got[0].Weight.Cmp(want) != 0 {
		t.Errorf("got weight %s, want %s", got[0].Weight, want)
	}
}
