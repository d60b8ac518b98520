package transduce

import (
	"slices"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// Step records one transition of a transduction: the arc taken, the input
// position before the arc consumed anything, and the output accumulated so
// far (before the arc's own output is appended).
type Step struct {
	Arc    string
	InPos  int
	Output []string
}

// tableKey indexes the subsequential transition table.
type tableKey struct {
	state string
	sym   string
}

// tableEntry is the action taken for a (state, symbol) pair.
type tableEntry struct {
	dst string
	out []string
	arc string
}

// Fast transduces input through a subsequential graph and returns the output
// string.
//
// The graph must satisfy f.IsSubsequential (errors.ErrCodeNotSubsequential
// otherwise) and have an initial state (errors.ErrCodeNoInitialState). A
// missing (state, symbol) transition or a non-final end state fails with
// errors.ErrCodeTransductionFailure.
func Fast(f *fst.FST, input []string) ([]string, error) {
	_, output, err := fastWalk(f, input, false)
	return output, err
}

// FastSteps is [Fast] plus the sequence of transitions taken. On failure
// the steps taken before the dead end are still returned.
func FastSteps(f *fst.FST, input []string) ([]Step, []string, error) {
	return fastWalk(f, input, true)
}

func fastWalk(f *fst.FST, input []string, record bool) ([]Step, []string, error) {
	if !f.IsSubsequential() {
		return nil, nil, errors.New(errors.ErrCodeNotSubsequential, "graph %q is not subsequential", f.Label())
	}
	state, ok := f.Initial()
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeNoInitialState, "graph %q has no initial state", f.Label())
	}

	// One action per (state, input symbol); subsequentiality guarantees
	// no two arcs compete for the same key.
	table := make(map[tableKey]tableEntry, f.ArcCount())
	for _, arc := range f.Arcs() {
		a, err := f.ArcInfo(arc)
		if err != nil {
			return nil, nil, err
		}
		table[tableKey{state: a.Src, sym: a.In[0]}] = tableEntry{dst: a.Dst, out: a.Out, arc: arc}
	}

	var steps []Step
	var output []string
	for pos, sym := range input {
		entry, ok := table[tableKey{state: state, sym: sym}]
		if !ok {
			return steps, nil, errors.New(errors.ErrCodeTransductionFailure,
				"no transition from state %q on symbol %q", state, sym)
		}
		if record {
			steps = append(steps, Step{Arc: entry.arc, InPos: pos, Output: slices.Clone(output)})
		}
		output = append(output, entry.out...)
		state = entry.dst
	}

	final, err := f.IsFinal(state)
	if err != nil {
		return steps, nil, err
	}
	if !final {
		return steps, nil, errors.New(errors.ErrCodeTransductionFailure,
			"input exhausted in non-final state %q", state)
	}
	finalizing, err := f.FinalizingString(state)
	if err != nil {
		return steps, nil, err
	}
	return steps, append(output, finalizing...), nil
}
