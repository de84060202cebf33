// Package report renders a tally to an io.Writer: the calc backend in use,
// the candidate list, the ballot list, and the elected committee(s).
// Grounded on original_source/src/main.rs's println sequence.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andersk/elect/internal/stv"
	"github.com/andersk/elect/weight"
)

// Print writes the full tally report for the given candidate names,
// parsed ballots, and winning committees (as raw candidate indices, any
// order) to w.
func Print[T weight.Value[T]](w io.Writer, backend weight.Backend[T], names []string, ballots []stv.Ballot[T], numSeats int, winners [][]int) {
	fmt.Fprintf(w, "Tallying Schulze STV election using the %s backend.\n\n", backend.Name)

	fmt.Fprintf(w, "Candidates (%d):\n", len(names))
	sortedNames := append([]string(nil), names...)
	sort.Strings(sortedNames)
	for _, n := range sortedNames {
		fmt.Fprintf(w, "  %s\n", n)
	}
	fmt.Fprintln(w)

	total := backend.Zero
	for _, b := range ballots {
		total = total.Add(b.Weight)
	}
	fmt.Fprintf(w, "Ballots (%s):\n", total.String())
	for _, b := range ballots {
		groupTexts := make([]string, len(b.Groups))
		for i, g := range b.Groups {
			memberNames := make([]string, len(g))
			for j, c := range g {
				memberNames[j] = names[c]
			}
			groupTexts[i] = strings.Join(memberNames, " = ")
		}
		fmt.Fprintf(w, "  %s: %s\n", b.Weight.String(), strings.Join(groupTexts, " > "))
	}
	fmt.Fprintln(w)

	winnerNames := make([][]string, len(winners))
	for i, set := range winners {
		setNames := make([]string, len(set))
		for j, c := range set {
			setNames[j] = names[c]
		}
		sort.Strings(setNames)
		winnerNames[i] = setNames
	}
	sort.Slice(winnerNames, func(i, j int) bool {
		a, b := winnerNames[i], winnerNames[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})

	if len(winnerNames) == 1 {
		setSuffix := ""
		if numSeats != 1 {
			setSuffix = " set"
		}
		fmt.Fprintf(w, "Winner%s:\n", setSuffix)
	} else {
		fmt.Fprint(w, "Tied winner set(s):\n")
	}
	for _, set := range winnerNames {
		fmt.Fprintf(w, "  %s\n", strings.Join(set, ", "))
	}
}
