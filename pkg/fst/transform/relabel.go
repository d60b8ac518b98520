package transform

import (
	"slices"
	"strconv"

	"github.com/fstkit/fstkit/pkg/fst"
)

// Relabel returns a new graph identical to f except that all state and arc
// labels are replaced by consecutive integers starting at zero.
//
// States are numbered in depth-first preorder from the initial state,
// visiting each state's outgoing arcs in input-string order. For
// subsequential graphs this numbering is canonical: two structurally
// identical graphs relabel to identical label sets. States the traversal
// never reaches (including all states when there is no initial state) are
// appended afterward in insertion order. Arcs are numbered by sorting on
// the tuple (source, destination, input string, output string).
func Relabel(f *fst.FST) (*fst.FST, error) {
	stateIDs, err := numberStates(f)
	if err != nil {
		return nil, err
	}

	out := fst.New(f.Label() + " (relabeled)")

	// Add states in numeric order so label order matches insertion order.
	byID := make([]string, len(stateIDs))
	for label, id := range stateIDs {
		byID[id] = label
	}
	for id, label := range byID {
		final, err := f.IsFinal(label)
		if err != nil {
			return nil, err
		}
		finalizing, err := f.FinalizingString(label)
		if err != nil {
			return nil, err
		}
		descr, err := f.Description(label)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddState(fst.State{
			Label:      strconv.Itoa(id),
			Final:      final,
			Finalizing: finalizing,
			Descr:      descr,
		}); err != nil {
			return nil, err
		}
	}
	if initial, ok := f.Initial(); ok {
		if err := out.SetInitial(strconv.Itoa(stateIDs[initial])); err != nil {
			return nil, err
		}
	}

	// Number arcs on (src, dst, in, out) of the relabeled endpoints.
	type arcKey struct {
		src, dst int
		a        fst.Arc
	}
	arcs := make([]arcKey, 0, f.ArcCount())
	for _, label := range f.Arcs() {
		a, err := f.ArcInfo(label)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, arcKey{src: stateIDs[a.Src], dst: stateIDs[a.Dst], a: a})
	}
	slices.SortStableFunc(arcs, func(x, y arcKey) int {
		if c := x.src - y.src; c != 0 {
			return c
		}
		if c := x.dst - y.dst; c != 0 {
			return c
		}
		if c := slices.Compare(x.a.In, y.a.In); c != 0 {
			return c
		}
		return slices.Compare(x.a.Out, y.a.Out)
	})

	for id, k := range arcs {
		if _, err := out.AddArc(fst.Arc{
			Label: strconv.Itoa(id),
			Src:   strconv.Itoa(k.src),
			Dst:   strconv.Itoa(k.dst),
			In:    k.a.In,
			Out:   k.a.Out,
			Descr: k.a.Descr,
		}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// numberStates assigns each state its canonical integer id: depth-first
// preorder from the initial state with outgoing arcs visited in input-string
// order, then unreached states in insertion order. The traversal uses an
// explicit stack so call depth is independent of graph size.
func numberStates(f *fst.FST) (map[string]int, error) {
	ids := make(map[string]int, f.StateCount())

	if initial, ok := f.Initial(); ok {
		stack := []string{initial}
		for len(stack) > 0 {
			state := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := ids[state]; seen {
				continue
			}
			ids[state] = len(ids)

			arcs, err := f.Outgoing(state)
			if err != nil {
				return nil, err
			}
			type child struct {
				in  []string
				dst string
			}
			children := make([]child, 0, len(arcs))
			for _, arc := range arcs {
				in, err := f.InString(arc)
				if err != nil {
					return nil, err
				}
				dst, err := f.Dst(arc)
				if err != nil {
					return nil, err
				}
				children = append(children, child{in: in, dst: dst})
			}
			slices.SortStableFunc(children, func(a, b child) int {
				return slices.Compare(a.in, b.in)
			})
			// Push in reverse so the smallest input string is numbered first.
			for i := len(children) - 1; i >= 0; i-- {
				if _, seen := ids[children[i].dst]; !seen {
					stack = append(stack, children[i].dst)
				}
			}
		}
	}

	for _, state := range f.States() {
		if _, seen := ids[state]; !seen {
			ids[state] = len(ids)
		}
	}
	return ids, nil
}
