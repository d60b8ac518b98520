package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// pair couples an original state with its pending output residual: symbols
// already owed to the output but not yet emitted by the determinized graph.
type pair struct {
	state    string
	residual []string
}

// composite is a determinization state: a set of pairs kept sorted so that
// identity is order-independent. Two composites with equal pair sets must
// compare equal, which key guarantees.
type composite struct {
	pairs []pair
}

// Field and record separators for composite keys. Symbols and labels are
// caller-supplied, so units outside the printable range keep keys collision-free
// for any realistic alphabet.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

func newComposite(pairs []pair) composite {
	slices.SortFunc(pairs, func(a, b pair) int {
		if c := strings.Compare(a.state, b.state); c != 0 {
			return c
		}
		return slices.Compare(a.residual, b.residual)
	})
	return composite{pairs: pairs}
}

// key returns the canonical identity of the composite's pair set.
func (c composite) key() string {
	parts := make([]string, len(c.pairs))
	for i, p := range c.pairs {
		parts[i] = p.state + fieldSep + strings.Join(p.residual, fieldSep)
	}
	return strings.Join(parts, recordSep)
}

// Determinize returns a subsequential graph encoding the same mapping as f,
// built by a breadth-first powerset construction over (state, residual)
// pairs.
//
// Preconditions: every arc must carry exactly one input symbol
// (errors.ErrCodeNotSubsequential otherwise) and the graph must have an
// initial state (errors.ErrCodeNoInitialState). When the source mapping is
// genuinely ambiguous - two merged states are final with different
// finalizing strings, or one (symbol, destination) group accumulates two
// distinct residuals - Determinize fails with
// errors.ErrCodeDeterminizationConflict; that signals a modeling error in
// the source graph, not an engine bug.
//
// The result is deterministic: symbols and pair sets are processed in
// sorted order, so repeated runs produce identical graphs with identical
// q0, q1, ... labels in discovery order.
func Determinize(f *fst.FST) (*fst.FST, error) {
	for _, arc := range f.Arcs() {
		in, err := f.InString(arc)
		if err != nil {
			return nil, err
		}
		if len(in) != 1 {
			return nil, errors.New(errors.ErrCodeNotSubsequential,
				"arc %q carries %d input symbols, want exactly 1", arc, len(in))
		}
	}
	initial, err := requireInitial(f)
	if err != nil {
		return nil, err
	}

	out := fst.New(f.Label() + " (determinized)")
	labels := make(map[string]string) // composite key -> new state label

	register := func(c composite) (string, bool, error) {
		if label, seen := labels[c.key()]; seen {
			return label, false, nil
		}
		label := fmt.Sprintf("q%d", len(labels))
		if _, err := out.AddState(fst.State{Label: label}); err != nil {
			return "", false, err
		}
		labels[c.key()] = label
		return label, true, nil
	}

	start := newComposite([]pair{{state: initial}})
	startLabel, _, err := register(start)
	if err != nil {
		return nil, err
	}
	if err := out.SetInitial(startLabel); err != nil {
		return nil, err
	}

	queue := []composite{start}
	for len(queue) > 0 {
		comp := queue[0]
		queue = queue[1:]
		compLabel := labels[comp.key()]

		if err := finalizeComposite(f, out, comp, compLabel); err != nil {
			return nil, err
		}

		// Group outgoing arcs by (input symbol, destination), accumulating
		// residual + arc output per group.
		table := make(map[string]map[string][][]string)
		for _, p := range comp.pairs {
			arcs, err := f.Outgoing(p.state)
			if err != nil {
				return nil, err
			}
			for _, arc := range arcs {
				a, err := f.ArcInfo(arc)
				if err != nil {
					return nil, err
				}
				sym := a.In[0]
				residual := slices.Concat(p.residual, a.Out)
				if table[sym] == nil {
					table[sym] = make(map[string][][]string)
				}
				group := table[sym][a.Dst]
				if !containsString(group, residual) {
					table[sym][a.Dst] = append(group, residual)
				}
			}
		}

		for _, sym := range sortedKeys(table) {
			var residuals [][]string
			var pairs []pair
			for _, dst := range sortedKeys(table[sym]) {
				group := table[sym][dst]
				if len(group) > 1 {
					return nil, errors.New(errors.ErrCodeDeterminizationConflict,
						"state %s: symbol %q reaches %s with %d distinct residuals",
						compLabel, sym, dst, len(group))
				}
				residuals = append(residuals, group[0])
				pairs = append(pairs, pair{state: dst, residual: group[0]})
			}

			prefix := commonPrefix(residuals)
			for i := range pairs {
				pairs[i].residual = slices.Clone(pairs[i].residual[len(prefix):])
			}

			target := newComposite(pairs)
			targetLabel, fresh, err := register(target)
			if err != nil {
				return nil, err
			}
			if fresh {
				queue = append(queue, target)
			}
			if _, err := out.AddArc(fst.Arc{
				Src: compLabel,
				Dst: targetLabel,
				In:  []string{sym},
				Out: prefix,
			}); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// finalizeComposite marks the composite state final when any member pair's
// original state is final. All members must then agree on the string
// residual + finalizing-string; disagreement means the source mapping is
// nondeterministic.
func finalizeComposite(f, out *fst.FST, comp composite, compLabel string) error {
	var finalizing [][]string
	for _, p := range comp.pairs {
		final, err := f.IsFinal(p.state)
		if err != nil {
			return err
		}
		if !final {
			continue
		}
		tail, err := f.FinalizingString(p.state)
		if err != nil {
			return err
		}
		finalizing = append(finalizing, slices.Concat(p.residual, tail))
	}
	if len(finalizing) == 0 {
		return nil
	}
	for _, s := range finalizing[1:] {
		if !slices.Equal(s, finalizing[0]) {
			return errors.New(errors.ErrCodeDeterminizationConflict,
				"state %s merges final states with conflicting finalizing strings %v and %v",
				compLabel, finalizing[0], s)
		}
	}
	if err := out.SetFinal(compLabel, true); err != nil {
		return err
	}
	return out.SetFinalizingString(compLabel, finalizing[0])
}

// commonPrefix returns the longest sequence that is a prefix of every given
// sequence.
func commonPrefix(seqs [][]string) []string {
	if len(seqs) == 0 {
		return nil
	}
	prefix := seqs[0]
	for _, seq := range seqs[1:] {
		if len(seq) < len(prefix) {
			prefix = prefix[:len(seq)]
		}
		for i := range prefix {
			if seq[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
	}
	return slices.Clone(prefix)
}

func containsString(group [][]string, s []string) bool {
	for _, g := range group {
		if slices.Equal(g, s) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
