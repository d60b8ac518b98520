package fst

import (
	"fmt"
	"slices"

	"github.com/fstkit/fstkit/pkg/errors"
)

// State describes a state passed to [FST.AddState].
// A zero Label requests an auto-generated one.
type State struct {
	Label      string   // Unique identifier; auto-assigned when empty
	Final      bool     // Whether a transduction may terminate here
	Finalizing []string // Output emitted on termination; final states only
	Descr      string   // Optional human-readable description
}

// Arc describes a transition arc passed to [FST.AddArc].
// A zero Label requests an auto-generated one.
type Arc struct {
	Label string   // Unique identifier; auto-assigned when empty
	Src   string   // Source state label
	Dst   string   // Destination state label
	In    []string // Input string (possibly empty)
	Out   []string // Output string (possibly empty)
	Descr string   // Optional human-readable description
}

// stateEntry is an arena slot for a state. Deleted slots are tombstoned
// rather than compacted so arc entries can keep stable integer references.
type stateEntry struct {
	label      string
	final      bool
	finalizing []string
	descr      string
	incoming   []int // arc arena indices, in insertion order
	outgoing   []int
	dead       bool
}

type arcEntry struct {
	label string
	src   int // state arena index
	dst   int
	in    []string
	out   []string
	descr string
	dead  bool
}

// FST is a finite-state transducer graph. States and arcs are identified by
// string labels, unique within their own namespace. The graph owns all of
// its states and arcs outright; slices returned by query methods are copies.
//
// The zero value is not usable - use [New].
type FST struct {
	label      string
	initial    int // state arena index, or -1 when unset
	states     []stateEntry
	arcs       []arcEntry
	stateIndex map[string]int
	arcIndex   map[string]int
}

// New creates an empty FST with the given display label.
// The label identifies the graph in serialized and rendered output only.
func New(label string) *FST {
	return &FST{
		label:      label,
		initial:    -1,
		stateIndex: make(map[string]int),
		arcIndex:   make(map[string]int),
	}
}

// Label returns the graph's display label.
func (f *FST) Label() string { return f.label }

// SetLabel changes the graph's display label.
func (f *FST) SetLabel(label string) { f.label = label }

// =============================================================================
// States
// =============================================================================

// AddState adds a state and returns its label.
//
// When s.Label is empty, the smallest unused synthetic label (s1, s2, ...)
// is chosen, so an identical sequence of operations always yields identical
// labels. Returns ErrCodeDuplicateLabel if an explicit label is already in
// use, and ErrCodeNotFinal if a finalizing string is supplied for a
// non-final state.
func (f *FST) AddState(s State) (string, error) {
	label, err := f.pickLabel(s.Label, "s", f.stateIndex)
	if err != nil {
		return "", err
	}
	if len(s.Finalizing) > 0 && !s.Final {
		return "", errors.New(errors.ErrCodeNotFinal, "state %q is not final", label)
	}
	f.states = append(f.states, stateEntry{
		label:      label,
		final:      s.Final,
		finalizing: slices.Clone(s.Finalizing),
		descr:      s.Descr,
	})
	f.stateIndex[label] = len(f.states) - 1
	return label, nil
}

// DelState deletes a state along with every arc that touches it.
// Deleting the current initial state clears the initial-state reference.
func (f *FST) DelState(label string) error {
	idx, ok := f.stateIndex[label]
	if !ok {
		return unknownState(label)
	}
	st := &f.states[idx]

	// Incident arcs; self-loops appear in both adjacency lists once each.
	incident := make(map[int]struct{}, len(st.incoming)+len(st.outgoing))
	for _, a := range st.incoming {
		incident[a] = struct{}{}
	}
	for _, a := range st.outgoing {
		incident[a] = struct{}{}
	}
	for a := range incident {
		f.removeArc(a)
	}

	if f.initial == idx {
		f.initial = -1
	}
	st.dead = true
	st.incoming, st.outgoing = nil, nil
	delete(f.stateIndex, label)
	return nil
}

// SetInitial sets the initial state.
func (f *FST) SetInitial(label string) error {
	idx, ok := f.stateIndex[label]
	if !ok {
		return unknownState(label)
	}
	f.initial = idx
	return nil
}

// ClearInitial removes the initial-state reference, turning the graph into
// one that encodes the empty mapping.
func (f *FST) ClearInitial() { f.initial = -1 }

// Initial returns the initial state's label, and false when unset.
func (f *FST) Initial() (string, bool) {
	if f.initial < 0 {
		return "", false
	}
	return f.states[f.initial].label, true
}

// HasState reports whether a state with the given label exists.
func (f *FST) HasState(label string) bool {
	_, ok := f.stateIndex[label]
	return ok
}

// States returns the labels of all states in insertion order.
func (f *FST) States() []string {
	labels := make([]string, 0, len(f.stateIndex))
	for i := range f.states {
		if !f.states[i].dead {
			labels = append(labels, f.states[i].label)
		}
	}
	return labels
}

// StateCount returns the number of states.
func (f *FST) StateCount() int { return len(f.stateIndex) }

// IsFinal reports whether the state is final.
func (f *FST) IsFinal(label string) (bool, error) {
	idx, ok := f.stateIndex[label]
	if !ok {
		return false, unknownState(label)
	}
	return f.states[idx].final, nil
}

// SetFinal marks the state as final or non-final.
func (f *FST) SetFinal(label string, final bool) error {
	idx, ok := f.stateIndex[label]
	if !ok {
		return unknownState(label)
	}
	f.states[idx].final = final
	if !final {
		f.states[idx].finalizing = nil
	}
	return nil
}

// FinalizingString returns the output string emitted when a transduction
// terminates at the state. Non-final states return an empty string.
func (f *FST) FinalizingString(label string) ([]string, error) {
	idx, ok := f.stateIndex[label]
	if !ok {
		return nil, unknownState(label)
	}
	return slices.Clone(f.states[idx].finalizing), nil
}

// SetFinalizingString sets the state's finalizing string.
// Returns ErrCodeNotFinal if the state is not final.
func (f *FST) SetFinalizingString(label string, finalizing []string) error {
	idx, ok := f.stateIndex[label]
	if !ok {
		return unknownState(label)
	}
	if !f.states[idx].final {
		return errors.New(errors.ErrCodeNotFinal, "state %q is not final", label)
	}
	f.states[idx].finalizing = slices.Clone(finalizing)
	return nil
}

// Description returns the state's description, or "" if it has none.
func (f *FST) Description(label string) (string, error) {
	idx, ok := f.stateIndex[label]
	if !ok {
		return "", unknownState(label)
	}
	return f.states[idx].descr, nil
}

// SetDescription attaches a human-readable description to the state.
func (f *FST) SetDescription(label, descr string) error {
	idx, ok := f.stateIndex[label]
	if !ok {
		return unknownState(label)
	}
	f.states[idx].descr = descr
	return nil
}

// Incoming returns the labels of the state's incoming arcs in insertion order.
func (f *FST) Incoming(label string) ([]string, error) {
	idx, ok := f.stateIndex[label]
	if !ok {
		return nil, unknownState(label)
	}
	return f.arcLabels(f.states[idx].incoming), nil
}

// Outgoing returns the labels of the state's outgoing arcs in insertion
// order. The declared order matters: the backtracking transduction search
// pushes candidate arcs in exactly this order.
func (f *FST) Outgoing(label string) ([]string, error) {
	idx, ok := f.stateIndex[label]
	if !ok {
		return nil, unknownState(label)
	}
	return f.arcLabels(f.states[idx].outgoing), nil
}

// DupState duplicates a state: the new state copies the original's finality
// and finalizing string, plus one outgoing arc per original outgoing arc,
// pointing at the original destinations. Self-loops on the original become
// arcs from the duplicate back to the original state, not new self-loops.
// The description is not copied.
func (f *FST) DupState(orig, label string) (string, error) {
	idx, ok := f.stateIndex[orig]
	if !ok {
		return "", unknownState(orig)
	}

	src := f.states[idx]
	dup, err := f.AddState(State{Label: label, Final: src.final, Finalizing: src.finalizing})
	if err != nil {
		return "", err
	}

	// Snapshot before appending: AddArc may grow the arcs arena.
	outgoing := slices.Clone(f.states[idx].outgoing)
	for _, a := range outgoing {
		arc := f.arcs[a]
		if _, err := f.AddArc(Arc{
			Src: dup,
			Dst: f.states[arc.dst].label,
			In:  arc.in,
			Out: arc.out,
		}); err != nil {
			return "", err
		}
	}
	return dup, nil
}

// =============================================================================
// Arcs
// =============================================================================

// AddArc adds a transition arc and returns its label.
//
// When a.Label is empty, the smallest unused synthetic label (a1, a2, ...)
// is chosen. Returns ErrCodeDuplicateLabel for an explicit label collision
// and ErrCodeInvalidLabel when either endpoint does not exist.
func (f *FST) AddArc(a Arc) (string, error) {
	label, err := f.pickLabel(a.Label, "a", f.arcIndex)
	if err != nil {
		return "", err
	}
	src, ok := f.stateIndex[a.Src]
	if !ok {
		return "", unknownState(a.Src)
	}
	dst, ok := f.stateIndex[a.Dst]
	if !ok {
		return "", unknownState(a.Dst)
	}

	f.arcs = append(f.arcs, arcEntry{
		label: label,
		src:   src,
		dst:   dst,
		in:    slices.Clone(a.In),
		out:   slices.Clone(a.Out),
		descr: a.Descr,
	})
	idx := len(f.arcs) - 1
	f.arcIndex[label] = idx
	f.states[src].outgoing = append(f.states[src].outgoing, idx)
	f.states[dst].incoming = append(f.states[dst].incoming, idx)
	return label, nil
}

// DelArc deletes a transition arc and detaches it from both endpoints.
func (f *FST) DelArc(label string) error {
	idx, ok := f.arcIndex[label]
	if !ok {
		return unknownArc(label)
	}
	f.removeArc(idx)
	return nil
}

// HasArc reports whether an arc with the given label exists.
func (f *FST) HasArc(label string) bool {
	_, ok := f.arcIndex[label]
	return ok
}

// Arcs returns the labels of all arcs in insertion order.
func (f *FST) Arcs() []string {
	labels := make([]string, 0, len(f.arcIndex))
	for i := range f.arcs {
		if !f.arcs[i].dead {
			labels = append(labels, f.arcs[i].label)
		}
	}
	return labels
}

// ArcCount returns the number of arcs.
func (f *FST) ArcCount() int { return len(f.arcIndex) }

// ArcInfo returns the full description of an arc.
// The returned slices are copies.
func (f *FST) ArcInfo(label string) (Arc, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return Arc{}, unknownArc(label)
	}
	a := f.arcs[idx]
	return Arc{
		Label: a.label,
		Src:   f.states[a.src].label,
		Dst:   f.states[a.dst].label,
		In:    slices.Clone(a.in),
		Out:   slices.Clone(a.out),
		Descr: a.descr,
	}, nil
}

// Src returns the label of the arc's source state.
func (f *FST) Src(label string) (string, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return "", unknownArc(label)
	}
	return f.states[f.arcs[idx].src].label, nil
}

// Dst returns the label of the arc's destination state.
func (f *FST) Dst(label string) (string, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return "", unknownArc(label)
	}
	return f.states[f.arcs[idx].dst].label, nil
}

// InString returns the arc's input string.
func (f *FST) InString(label string) ([]string, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return nil, unknownArc(label)
	}
	return slices.Clone(f.arcs[idx].in), nil
}

// OutString returns the arc's output string.
func (f *FST) OutString(label string) ([]string, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return nil, unknownArc(label)
	}
	return slices.Clone(f.arcs[idx].out), nil
}

// ArcDescription returns the arc's description, or "" if it has none.
func (f *FST) ArcDescription(label string) (string, error) {
	idx, ok := f.arcIndex[label]
	if !ok {
		return "", unknownArc(label)
	}
	return f.arcs[idx].descr, nil
}

// SetArcDescription attaches a human-readable description to the arc.
func (f *FST) SetArcDescription(label, descr string) error {
	idx, ok := f.arcIndex[label]
	if !ok {
		return unknownArc(label)
	}
	f.arcs[idx].descr = descr
	return nil
}

// =============================================================================
// Copying
// =============================================================================

// Copy returns a deep copy of the graph under a new display label.
// No adjacency storage is shared between the copy and the original.
func (f *FST) Copy(label string) *FST {
	if label == "" {
		label = f.label + "-copy"
	}
	c := &FST{
		label:      label,
		initial:    f.initial,
		states:     make([]stateEntry, len(f.states)),
		arcs:       make([]arcEntry, len(f.arcs)),
		stateIndex: make(map[string]int, len(f.stateIndex)),
		arcIndex:   make(map[string]int, len(f.arcIndex)),
	}
	for i, s := range f.states {
		s.finalizing = slices.Clone(s.finalizing)
		s.incoming = slices.Clone(s.incoming)
		s.outgoing = slices.Clone(s.outgoing)
		c.states[i] = s
	}
	for i, a := range f.arcs {
		a.in = slices.Clone(a.in)
		a.out = slices.Clone(a.out)
		c.arcs[i] = a
	}
	for k, v := range f.stateIndex {
		c.stateIndex[k] = v
	}
	for k, v := range f.arcIndex {
		c.arcIndex[k] = v
	}
	return c
}

// =============================================================================
// Internal helpers
// =============================================================================

// removeArc detaches and tombstones the arc at arena index idx.
func (f *FST) removeArc(idx int) {
	a := &f.arcs[idx]
	if a.dead {
		return
	}
	src, dst := &f.states[a.src], &f.states[a.dst]
	src.outgoing = slices.DeleteFunc(src.outgoing, func(i int) bool { return i == idx })
	dst.incoming = slices.DeleteFunc(dst.incoming, func(i int) bool { return i == idx })
	delete(f.arcIndex, a.label)
	a.dead = true
}

func (f *FST) arcLabels(indices []int) []string {
	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = f.arcs[idx].label
	}
	return labels
}

// pickLabel validates an explicit label or picks the smallest unused
// synthetic one with the given prefix.
func (f *FST) pickLabel(label, prefix string, used map[string]int) (string, error) {
	if label != "" {
		if _, exists := used[label]; exists {
			return "", errors.New(errors.ErrCodeDuplicateLabel, "label %q already exists", label)
		}
		return label, nil
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s%d", prefix, n)
		if _, exists := used[candidate]; !exists {
			return candidate, nil
		}
	}
}

func unknownState(label string) error {
	return errors.New(errors.ErrCodeInvalidLabel, "unknown state label %q", label)
}

func unknownArc(label string) error {
	return errors.New(errors.ErrCodeInvalidLabel, "unknown arc label %q", label)
}
