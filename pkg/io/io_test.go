package io

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

const sampleText = `
# Single digit speller.
-> start
done -> [.]
descr start: Waits for a digit,
    then hands off.
start -> done [5 : five]
-> done [6 : six]          # sticky source: still start
lonely
`

func TestReadText(t *testing.T) {
	f, err := ReadText("digits", strings.NewReader(sampleText))
	if err != nil {
		t.Fatal(err)
	}

	if initial, ok := f.Initial(); !ok || initial != "start" {
		t.Errorf("initial = %q, %v", initial, ok)
	}
	final, err := f.IsFinal("done")
	if err != nil {
		t.Fatal(err)
	}
	if !final {
		t.Error("done should be final")
	}
	fin, err := f.FinalizingString("done")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(fin, []string{"."}) {
		t.Errorf("finalizing string = %v", fin)
	}

	descr, err := f.Description("start")
	if err != nil {
		t.Fatal(err)
	}
	if descr != "Waits for a digit, then hands off." {
		t.Errorf("description = %q", descr)
	}

	if !f.HasState("lonely") {
		t.Error("bare state line was dropped")
	}

	if f.ArcCount() != 2 {
		t.Fatalf("ArcCount() = %d, want 2", f.ArcCount())
	}
	// The sourceless arc inherits the previous arc's source.
	for _, arc := range f.Arcs() {
		src, err := f.Src(arc)
		if err != nil {
			t.Fatal(err)
		}
		if src != "start" {
			t.Errorf("arc %s source = %q, want start", arc, src)
		}
	}
}

func TestReadTextEmptyFinalizing(t *testing.T) {
	f, err := ReadText("plain", strings.NewReader("-> a\na ->\n"))
	if err != nil {
		t.Fatal(err)
	}
	final, err := f.IsFinal("a")
	if err != nil {
		t.Fatal(err)
	}
	if !final {
		t.Error("a should be final")
	}
	fin, err := f.FinalizingString("a")
	if err != nil {
		t.Fatal(err)
	}
	if len(fin) != 0 {
		t.Errorf("finalizing string = %v, want empty", fin)
	}
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Garbage", input: "-> a\nnot a valid ( line\n"},
		{name: "ArcWithoutAnySource", input: "-> b [x : y]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText("bad", strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Fatalf("ReadText() = %v, want PARSE_ERROR", err)
			}
			if !strings.Contains(err.Error(), "line 2") && !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q does not name the line", err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	f, err := ReadText("digits", strings.NewReader(sampleText))
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := WriteText(f, &buf); err != nil {
		t.Fatal(err)
	}
	back, err := ReadText("digits", strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-parsing serialized output: %v\n%s", err, buf.String())
	}

	if back.StateCount() != f.StateCount() {
		t.Errorf("StateCount() = %d, want %d", back.StateCount(), f.StateCount())
	}
	if back.ArcCount() != f.ArcCount() {
		t.Errorf("ArcCount() = %d, want %d", back.ArcCount(), f.ArcCount())
	}
	if initial, ok := back.Initial(); !ok || initial != "start" {
		t.Errorf("initial = %q, %v", initial, ok)
	}
	descr, err := back.Description("start")
	if err != nil {
		t.Fatal(err)
	}
	if descr != "Waits for a digit, then hands off." {
		t.Errorf("description lost in round trip: %q", descr)
	}
	fin, err := back.FinalizingString("done")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(fin, []string{"."}) {
		t.Errorf("finalizing string lost in round trip: %v", fin)
	}
}

func TestWriteTextLayout(t *testing.T) {
	f := fst.New("tiny")
	if _, err := f.AddState(fst.State{Label: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddState(fst.State{Label: "b", Final: true, Finalizing: []string{"!"}}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetInitial("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddArc(fst.Arc{Src: "a", Dst: "b", In: []string{"x"}, Out: []string{"X"}}); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := WriteText(f, &buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"-> a", "b -> [!]", "a -> b [x:X]", "# Initial state", "# Final state", "# Arc"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestImportExport(t *testing.T) {
	f, err := ReadText("digits", strings.NewReader(sampleText))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "digits.fst")
	if err := Export(f, path); err != nil {
		t.Fatal(err)
	}
	back, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Label() != "digits.fst" {
		t.Errorf("Label() = %q, want file base name", back.Label())
	}
	if back.StateCount() != f.StateCount() {
		t.Errorf("StateCount() = %d, want %d", back.StateCount(), f.StateCount())
	}
}
