package transform

import (
	"slices"
	"testing"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// buildChain returns a -> b -> c with b also carrying a dead branch to d.
// a is initial, c is final with finalizing string ["!"].
func buildChain(t *testing.T) *fst.FST {
	t.Helper()
	f := fst.New("chain")
	for _, s := range []string{"a", "b", "c", "d"} {
		if _, err := f.AddState(fst.State{Label: s}); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetFinal("c", true); err != nil {
		t.Fatal(err)
	}
	if err := f.SetFinalizingString("c", []string{"!"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetInitial("a"); err != nil {
		t.Fatal(err)
	}
	mustArc(t, f, "a", "b", []string{"x"}, []string{"X"})
	mustArc(t, f, "b", "c", []string{"y"}, []string{"Y"})
	mustArc(t, f, "b", "d", []string{"z"}, []string{"Z"})
	return f
}

func mustArc(t *testing.T, f *fst.FST, src, dst string, in, out []string) string {
	t.Helper()
	label, err := f.AddArc(fst.Arc{Src: src, Dst: dst, In: in, Out: out})
	if err != nil {
		t.Fatal(err)
	}
	return label
}

func TestInvert(t *testing.T) {
	f := buildChain(t)
	inv, err := Invert(f)
	if err != nil {
		t.Fatal(err)
	}

	for _, arc := range inv.Arcs() {
		a, err := inv.ArcInfo(arc)
		if err != nil {
			t.Fatal(err)
		}
		orig, err := f.ArcInfo(arc)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(a.In, orig.Out) || !slices.Equal(a.Out, orig.In) {
			t.Errorf("arc %s: got in=%v out=%v, want swapped from in=%v out=%v",
				arc, a.In, a.Out, orig.In, orig.Out)
		}
	}

	// Structure is untouched: same states, initial, finality.
	if !slices.Equal(inv.States(), f.States()) {
		t.Errorf("states changed: %v", inv.States())
	}
	if initial, ok := inv.Initial(); !ok || initial != "a" {
		t.Errorf("initial = %q, %v", initial, ok)
	}
	fin, err := inv.FinalizingString("c")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(fin, []string{"!"}) {
		t.Errorf("finalizing string = %v", fin)
	}
}

func TestReverse(t *testing.T) {
	f := buildChain(t)
	rev, err := Reverse(f)
	if err != nil {
		t.Fatal(err)
	}

	for _, arc := range rev.Arcs() {
		a, err := rev.ArcInfo(arc)
		if err != nil {
			t.Fatal(err)
		}
		orig, err := f.ArcInfo(arc)
		if err != nil {
			t.Fatal(err)
		}
		if a.Src != orig.Dst || a.Dst != orig.Src {
			t.Errorf("arc %s: got %s -> %s, want %s -> %s",
				arc, a.Src, a.Dst, orig.Dst, orig.Src)
		}
		if !slices.Equal(a.In, orig.In) || !slices.Equal(a.Out, orig.Out) {
			t.Errorf("arc %s: symbols changed", arc)
		}
	}

	// The flip shows up in adjacency: a had one outgoing arc, now it has
	// one incoming arc instead.
	out, err := rev.Outgoing("a")
	if err != nil {
		t.Fatal(err)
	}
	in, err := rev.Incoming("a")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 || len(in) != 1 {
		t.Errorf("state a: outgoing %d, incoming %d, want 0 and 1", len(out), len(in))
	}
}

func TestTrim(t *testing.T) {
	f := buildChain(t)
	// e is unreachable, d (from the chain) cannot reach a final state.
	if _, err := f.AddState(fst.State{Label: "e", Final: true}); err != nil {
		t.Fatal(err)
	}

	trimmed, err := Trim(f)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "b", "c"}
	if got := trimmed.States(); !slices.Equal(got, want) {
		t.Errorf("States() = %v, want %v", got, want)
	}
	if trimmed.ArcCount() != 2 {
		t.Errorf("ArcCount() = %d, want 2", trimmed.ArcCount())
	}
	// Source graph untouched.
	if f.StateCount() != 5 {
		t.Errorf("source graph mutated: %d states", f.StateCount())
	}
}

func TestTrimNoInitial(t *testing.T) {
	f := fst.New("bare")
	if _, err := f.AddState(fst.State{Label: "a", Final: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := Trim(f); !errors.Is(err, errors.ErrCodeNoInitialState) {
		t.Errorf("Trim without initial = %v, want NO_INITIAL_STATE", err)
	}
}

func TestRelabel(t *testing.T) {
	f := fst.New("maze")
	for _, s := range []string{"start", "left", "right", "island"} {
		if _, err := f.AddState(fst.State{Label: s}); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetInitial("start"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetFinal("right", true); err != nil {
		t.Fatal(err)
	}
	// Declared out of input order: "b" sorts before "q", so left gets
	// visited second despite its arc being added later.
	mustArc(t, f, "start", "right", []string{"q"}, nil)
	mustArc(t, f, "start", "left", []string{"b"}, nil)

	got, err := Relabel(f)
	if err != nil {
		t.Fatal(err)
	}

	// Preorder: start=0, left=1 (smaller input string), right=2,
	// unreached island appended last.
	want := []string{"0", "1", "2", "3"}
	if states := got.States(); !slices.Equal(states, want) {
		t.Errorf("States() = %v, want %v", states, want)
	}
	if initial, ok := got.Initial(); !ok || initial != "0" {
		t.Errorf("initial = %q, %v", initial, ok)
	}
	final, err := got.IsFinal("2")
	if err != nil {
		t.Fatal(err)
	}
	if !final {
		t.Error("state 2 should be final")
	}

	// Arc labels are integers ordered by (src, dst, in, out).
	arcs := got.Arcs()
	if !slices.Equal(arcs, []string{"0", "1"}) {
		t.Errorf("Arcs() = %v", arcs)
	}
	a, err := got.ArcInfo("0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Src != "0" || a.Dst != "1" || !slices.Equal(a.In, []string{"b"}) {
		t.Errorf("arc 0 = %+v", a)
	}
}

func TestRelabelDeterministic(t *testing.T) {
	f := buildChain(t)
	first, err := Relabel(f)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Relabel(f)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.States(), second.States()) {
		t.Errorf("relabeling not stable: %v vs %v", first.States(), second.States())
	}
}
