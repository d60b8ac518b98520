package render

import (
	"strings"
	"testing"

	"github.com/fstkit/fstkit/pkg/fst"
)

func TestToDOT(t *testing.T) {
	f := fst.New("digits")
	if _, err := f.AddState(fst.State{Label: "start"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddState(fst.State{Label: "done", Final: true, Finalizing: []string{"."}}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetInitial("start"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddArc(fst.Arc{Src: "start", Dst: "done", In: []string{"5"}, Out: []string{"five"}}); err != nil {
		t.Fatal(err)
	}

	dot, err := ToDOT(f)
	if err != nil {
		t.Fatal(err)
	}

	wants := []string{
		`digraph "digits" {`,
		`init [shape=plaintext, label=""];`,
		`init -> 0;`,
		`0 [label="start"];`,
		`1 [label="done\n.", shape=doublecircle];`,
		`0 -> 1 [label="5:five"];`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTEscapes(t *testing.T) {
	f := fst.New(`he said "hi"`)
	if _, err := f.AddState(fst.State{Label: `a"b`}); err != nil {
		t.Fatal(err)
	}

	dot, err := ToDOT(f)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, `digraph "he said \"hi\"" {`) {
		t.Errorf("graph label not escaped:\n%s", dot)
	}
	if !strings.Contains(dot, `0 [label="a\"b"];`) {
		t.Errorf("state label not escaped:\n%s", dot)
	}
}

func TestToDOTNoInitial(t *testing.T) {
	f := fst.New("bare")
	if _, err := f.AddState(fst.State{Label: "a"}); err != nil {
		t.Fatal(err)
	}

	dot, err := ToDOT(f)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(dot, "init") {
		t.Errorf("entry arrow emitted without an initial state:\n%s", dot)
	}
}
