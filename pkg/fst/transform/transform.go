package transform

import (
	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// requireInitial returns the graph's initial state label or a
// NO_INITIAL_STATE error.
func requireInitial(f *fst.FST) (string, error) {
	initial, ok := f.Initial()
	if !ok {
		return "", errors.New(errors.ErrCodeNoInitialState, "graph %q has no initial state", f.Label())
	}
	return initial, nil
}

// Invert returns a new graph with the input and output strings swapped on
// every arc. State finality and finalizing strings are preserved as-is.
func Invert(f *fst.FST) (*fst.FST, error) {
	out := fst.New(f.Label() + " (inverted)")
	if err := copyStates(f, out); err != nil {
		return nil, err
	}
	for _, label := range f.Arcs() {
		a, err := f.ArcInfo(label)
		if err != nil {
			return nil, err
		}
		a.In, a.Out = a.Out, a.In
		if _, err := out.AddArc(a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Reverse returns a new graph with every arc's source and destination
// swapped, which also swaps each state's incoming and outgoing adjacency.
// It is a structural flip only: the initial state, finality, and finalizing
// strings are carried over unchanged, and callers must re-validate
// reachability and finality semantics afterward.
func Reverse(f *fst.FST) (*fst.FST, error) {
	out := fst.New(f.Label() + " (reversed)")
	if err := copyStates(f, out); err != nil {
		return nil, err
	}
	for _, label := range f.Arcs() {
		a, err := f.ArcInfo(label)
		if err != nil {
			return nil, err
		}
		a.Src, a.Dst = a.Dst, a.Src
		if _, err := out.AddArc(a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Trim returns a copy of the graph containing only states that are both
// reachable from the initial state and able to reach some final state;
// everything else is deleted along with its incident arcs. Fails with
// errors.ErrCodeNoInitialState when the graph has no initial state.
func Trim(f *fst.FST) (*fst.FST, error) {
	out := f.Copy(f.Label() + " (trimmed)")
	initial, err := requireInitial(out)
	if err != nil {
		return nil, err
	}

	// Forward sweep from the initial state over outgoing arcs.
	fromInit := map[string]bool{initial: true}
	queue := []string{initial}
	for len(queue) > 0 {
		state := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		arcs, err := out.Outgoing(state)
		if err != nil {
			return nil, err
		}
		for _, arc := range arcs {
			dst, err := out.Dst(arc)
			if err != nil {
				return nil, err
			}
			if !fromInit[dst] {
				fromInit[dst] = true
				queue = append(queue, dst)
			}
		}
	}

	// Backward sweep from every final state over incoming arcs.
	toFinal := make(map[string]bool)
	for _, state := range out.States() {
		final, err := out.IsFinal(state)
		if err != nil {
			return nil, err
		}
		if final {
			toFinal[state] = true
			queue = append(queue, state)
		}
	}
	for len(queue) > 0 {
		state := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		arcs, err := out.Incoming(state)
		if err != nil {
			return nil, err
		}
		for _, arc := range arcs {
			src, err := out.Src(arc)
			if err != nil {
				return nil, err
			}
			if !toFinal[src] {
				toFinal[src] = true
				queue = append(queue, src)
			}
		}
	}

	for _, state := range out.States() {
		if !(fromInit[state] && toFinal[state]) {
			if err := out.DelState(state); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// copyStates adds every state of src to dst under the same label, carrying
// finality, finalizing string, and description, and mirrors the
// initial-state reference.
func copyStates(src, dst *fst.FST) error {
	for _, label := range src.States() {
		final, err := src.IsFinal(label)
		if err != nil {
			return err
		}
		finalizing, err := src.FinalizingString(label)
		if err != nil {
			return err
		}
		descr, err := src.Description(label)
		if err != nil {
			return err
		}
		if _, err := dst.AddState(fst.State{
			Label:      label,
			Final:      final,
			Finalizing: finalizing,
			Descr:      descr,
		}); err != nil {
			return err
		}
	}
	if initial, ok := src.Initial(); ok {
		if err := dst.SetInitial(initial); err != nil {
			return err
		}
	}
	return nil
}
