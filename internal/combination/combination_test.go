package combination

import (
	"reflect"
	"testing"
)

func TestBinomial(t *testing.T) {
	tbl := NewTable(10, 5)
	expected := [][]int{
		{1, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 0},
		{1, 2, 1, 0, 0, 0},
		{1, 3, 3, 1, 0, 0},
		{1, 4, 6, 4, 1, 0},
		{1, 5, 10, 10, 5, 1},
		{1, 6, 15, 20, 15, 6},
		{1, 7, 21, 35, 35, 21},
		{1, 8, 28, 56, 70, 56},
		{1, 9, 36, 84, 126, 126},
		{1, 10, 45, 120, 210, 252},
	}
	if !reflect.DeepEqual(tbl.rows, expected) {
		t.Fatalf("binomial table mismatch:\ngot  %v\nwant %v", tbl.rows, expected)
	}
}

func TestEncodeCombination(t *testing.T) {
	tbl := NewTable(5, 3)
	cases := []struct {
		c    []int
		want int
	}{
		{[]int{0, 1, 2}, 0},
		{[]int{0, 1, 3}, 1},
		{[]int{0, 2, 3}, 2},
		{[]int{1, 2, 3}, 3},
		{[]int{0, 1, 4}, 4},
		{[]int{0, 2, 4}, 5},
		{[]int{1, 2, 4}, 6},
		{[]int{0, 3, 4}, 7},
		{[]int{1, 3, 4}, 8},
		{[]int{2, 3, 4}, 9},
		{[]int{0, 1, 5}, 10},
	}
	for _, tc := range cases {
		if got := tbl.Encode(tc.c); got != tc.want {
			t.Errorf("Encode(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestDecodeCombination(t *testing.T) {
	tbl := NewTable(5, 3)
	cases := []struct {
		m    int
		want []int
	}{
		{0, []int{0, 1, 2}},
		{1, []int{0, 1, 3}},
		{2, []int{0, 2, 3}},
		{3, []int{1, 2, 3}},
		{4, []int{0, 1, 4}},
		{5, []int{0, 2, 4}},
		{6, []int{1, 2, 4}},
		{7, []int{0, 3, 4}},
		{8, []int{1, 3, 4}},
		{9, []int{2, 3, 4}},
		{10, []int{0, 1, 5}},
	}
	for _, tc := range cases {
		got := tbl.Decode(3, tc.m)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Decode(3, %d) = %v, want %v", tc.m, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const n, k = 8, 4
	tbl := NewTable(n, k)
	total := tbl.At(n, k)
	for m := 0; m < total; m++ {
		c := tbl.Decode(k, m)
		if got := tbl.Encode(c); got != m {
			t.Errorf("encode(decode(%d)) = %d, want %d (decode = %v)", m, got, m, c)
		}
	}
}
