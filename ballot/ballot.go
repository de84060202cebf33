// Package ballot parses the ballot text format: one ranked ballot per
// line, an optional leading weight, and groups of candidate names
// separated by ">" (strict preference) and "=" (ties). Grounded on
// FabianWe-sturavoting's votings.go ParseVoters, which drives the same
// bufio.Scanner-plus-SyntaxError idiom over a simpler voter-list format.
package ballot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andersk/elect/internal/stv"
	"github.com/andersk/elect/weight"
)

// SyntaxError reports a malformed ballot line, tagged with the file and
// 1-based line number it came from.
type SyntaxError struct {
	File    string
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// Table interns candidate names into the dense indices the core operates
// on, in first-seen order.
type Table struct {
	names []string
	index map[string]int
}

// NewTable returns an empty candidate table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

func (t *Table) intern(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.names)
	t.names = append(t.names, name)
	t.index[name] = i
	return i
}

// Names returns the candidate names in first-seen index order.
func (t *Table) Names() []string {
	return t.names
}

// Len returns the number of distinct candidates seen so far.
func (t *Table) Len() int {
	return len(t.names)
}

// Parse reads ballots from r, interning candidate names into table and
// parsing weights with backend. filename is used only to tag error
// messages.
func Parse[T weight.Value[T]](backend weight.Backend[T], table *Table, filename string, r io.Reader) ([]stv.Ballot[T], error) {
	var ballots []stv.Ballot[T]

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rest := line
		w := backend.One
		if i := strings.Index(line, ":"); i >= 0 {
			weightText := strings.TrimSpace(line[:i])
			rest = line[i+1:]
			parsed, err := backend.Parse(weightText)
			if err != nil {
				return nil, &SyntaxError{File: filename, Line: lineNum, Message: fmt.Sprintf("invalid weight %q: %v", weightText, err)}
			}
			if parsed.Cmp(backend.Zero) <= 0 {
				return nil, &SyntaxError{File: filename, Line: lineNum, Message: fmt.Sprintf("weight %q must be positive", weightText)}
			}
			w = parsed
		}

		seen := make(map[int]bool)
		var groups [][]int
		for _, groupText := range strings.Split(rest, ">") {
			var group []int
			for _, nameText := range strings.Split(groupText, "=") {
				name := strings.TrimSpace(nameText)
				if name == "" {
					return nil, &SyntaxError{File: filename, Line: lineNum, Message: "empty candidate name"}
				}
				c := table.intern(name)
				if seen[c] {
					return nil, &SyntaxError{File: filename, Line: lineNum, Message: fmt.Sprintf("duplicate candidate %q", name)}
				}
				seen[c] = true
				group = append(group, c)
			}
			groups = append(groups, group)
		}

		ballots = append(ballots, stv.Ballot[T]{Groups: groups, Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return ballots, nil
}
