// Package schwartz computes the Schwartz set of a directed defeat graph:
// the union of the minimal non-empty sets of candidates such that no
// candidate inside a set is defeated by a candidate outside it. It is
// grounded on original_source/vote/src/schwartz_set.rs, which collects
// every strongly connected component that a Tarjan-style DFS over the
// defeat graph (traversed along defeaters, not defeats) closes without
// first reaching an already-finished candidate.
//
// The Rust original recurses one stack frame per graph edge. Committee
// graphs can be large enough that unbounded recursion risks overflow, so
// Set computes the same strongly-connected-component closure using an
// explicit frame stack that mirrors the recursive control flow frame for
// frame.
package schwartz

// nodeKind is the traversal state of a single candidate, matching the
// Rust Node enum (Unvisited / OnStack(index) / Done).
type nodeKind int8

const (
	unvisited nodeKind = iota
	onStack
	done
)

type nodeState struct {
	kind  nodeKind
	index int
}

// frame is one level of the explicit work stack, standing in for one
// activation of the recursive search(defeaters, state, c) call.
type frame struct {
	c       int
	lowlink int
	idx     int
}

// Set returns the Schwartz set of candidates, restricted to the given
// candidate list, under the defeat graph where defeaters[c] lists every
// candidate that defeats c. The result is unordered.
func Set(candidates []int, defeaters [][]int) []int {
	nodes := make([]nodeState, len(defeaters))
	var tstack []int // the Tarjan stack shared across the whole traversal
	var out []int

	for _, c0 := range candidates {
		if nodes[c0].kind != unvisited {
			continue
		}

		var calls []*frame
		nodes[c0] = nodeState{kind: onStack, index: len(tstack)}
		tstack = append(tstack, c0)
		calls = append(calls, &frame{c: c0, lowlink: len(tstack) - 1})

		for len(calls) > 0 {
			top := calls[len(calls)-1]

			if top.idx < len(defeaters[top.c]) {
				c1 := defeaters[top.c][top.idx]
				top.idx++

				switch st := nodes[c1]; st.kind {
				case unvisited:
					nodes[c1] = nodeState{kind: onStack, index: len(tstack)}
					tstack = append(tstack, c1)
					calls = append(calls, &frame{c: c1, lowlink: len(tstack) - 1})
				case onStack:
					if st.index < top.lowlink {
						top.lowlink = st.index
					}
				case done:
					for _, c2 := range tstack {
						nodes[c2] = nodeState{kind: done}
					}
					tstack = tstack[:0]
				}
				continue
			}

			// top's defeaters are all processed; close out this frame.
			var retOK bool
			var retVal int
			switch st := nodes[top.c]; st.kind {
			case onStack:
				if st.index == top.lowlink {
					out = append(out, tstack[st.index:]...)
					for _, c2 := range tstack {
						nodes[c2] = nodeState{kind: done}
					}
					tstack = tstack[:0]
				} else {
					retOK = true
					retVal = top.lowlink
				}
			case done:
				// left done by a sibling's discovery; nothing to propagate.
			default:
				retOK = true
				retVal = top.lowlink
			}

			calls = calls[:len(calls)-1]
			if retOK && len(calls) > 0 {
				parent := calls[len(calls)-1]
				if retVal < parent.lowlink {
					parent.lowlink = retVal
				}
			}
		}
	}

	return out
}
