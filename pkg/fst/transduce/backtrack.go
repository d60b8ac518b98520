package transduce

import (
	"slices"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// frontierEntry is a deferred choice: apply arc after rolling the input
// position back to inPos and truncating the output back to outLen symbols.
// Truncation matters - abandoning a branch discards its speculative output.
type frontierEntry struct {
	arc    string
	inPos  int
	outLen int
}

// General transduces input through an arbitrary graph via backtracking
// search and returns the output string.
//
// There is no subsequentiality precondition: arcs may carry multi-symbol or
// empty input strings, and several arcs of one state may match the same
// input prefix. When more than one accepting path exists, the returned
// output is fixed by LIFO exploration order: at each choice point the most
// recently declared matching arc is tried first. Fails with
// errors.ErrCodeNoInitialState when the graph has no initial state and with
// errors.ErrCodeTransductionFailure when no accepting path matches the
// input.
//
// A graph with cycles of empty-input arcs can make the search run
// unboundedly; bounding that is the caller's responsibility.
func General(f *fst.FST, input []string) ([]string, error) {
	_, output, err := backtrack(f, input, false)
	return output, err
}

// GeneralSteps is [General] plus the sequence of transitions taken,
// including entering and leaving abandoned branches. On failure the steps
// explored before exhaustion are still returned.
func GeneralSteps(f *fst.FST, input []string) ([]Step, []string, error) {
	return backtrack(f, input, true)
}

func backtrack(f *fst.FST, input []string, record bool) ([]Step, []string, error) {
	state, ok := f.Initial()
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeNoInitialState, "graph %q has no initial state", f.Label())
	}

	var steps []Step
	var output []string
	var frontier []frontierEntry
	inPos := 0

	for {
		final, err := f.IsFinal(state)
		if err != nil {
			return steps, nil, err
		}
		if inPos == len(input) && final {
			break
		}

		// Push every outgoing arc whose input string matches here, in
		// declared order; the last-declared match is popped first.
		arcs, err := f.Outgoing(state)
		if err != nil {
			return steps, nil, err
		}
		for _, arc := range arcs {
			in, err := f.InString(arc)
			if err != nil {
				return steps, nil, err
			}
			if matchesAt(input, inPos, in) {
				frontier = append(frontier, frontierEntry{arc: arc, inPos: inPos, outLen: len(output)})
			}
		}

		if len(frontier) == 0 {
			return steps, nil, errors.New(errors.ErrCodeTransductionFailure,
				"no accepting path for input %v", input)
		}

		entry := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		a, err := f.ArcInfo(entry.arc)
		if err != nil {
			return steps, nil, err
		}
		// Roll back to the saved point, then apply the arc.
		output = output[:entry.outLen]
		if record {
			steps = append(steps, Step{Arc: entry.arc, InPos: entry.inPos, Output: slices.Clone(output)})
		}
		output = append(output, a.Out...)
		state = a.Dst
		inPos = entry.inPos + len(a.In)
	}

	finalizing, err := f.FinalizingString(state)
	if err != nil {
		return steps, nil, err
	}
	return steps, append(output, finalizing...), nil
}

// matchesAt reports whether want is exactly the next symbols of input
// starting at pos.
func matchesAt(input []string, pos int, want []string) bool {
	if pos+len(want) > len(input) {
		return false
	}
	return slices.Equal(input[pos:pos+len(want)], want)
}
