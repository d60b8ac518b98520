package transduce

import (
	"slices"
	"strings"
	"testing"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst"
)

// singleArc returns a one-arc transducer mapping in to out.
func singleArc(t *testing.T, label string, in, out []string) *fst.FST {
	t.Helper()
	f := fst.New(label)
	if _, err := f.AddState(fst.State{Label: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.AddState(fst.State{Label: "b", Final: true}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetInitial("a"); err != nil {
		t.Fatal(err)
	}
	mustArc(t, f, "a", "b", in, out)
	return f
}

func TestCompose(t *testing.T) {
	letters := singleArc(t, "letters", []string{"A"}, []string{"1"})
	numbers := singleArc(t, "numbers", []string{"1"}, []string{"X"})

	got, err := Compose([]string{"A"}, letters, numbers)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"X"}) {
		t.Errorf("Compose() = %v, want [X]", got)
	}
}

func TestComposeStageFailure(t *testing.T) {
	letters := singleArc(t, "letters", []string{"A"}, []string{"1"})
	numbers := singleArc(t, "numbers", []string{"2"}, []string{"X"})

	_, err := Compose([]string{"A"}, letters, numbers)
	if !errors.Is(err, errors.ErrCodeTransductionFailure) {
		t.Fatalf("Compose() = %v, want TRANSDUCTION_FAILURE", err)
	}
	// The failing stage is named so chain misconfigurations are findable.
	if !strings.Contains(err.Error(), "stage 1 (numbers)") {
		t.Errorf("error %q does not name the failing stage", err)
	}
}

func TestComposeNoStages(t *testing.T) {
	got, err := Compose([]string{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"A"}) {
		t.Errorf("Compose() = %v, want input unchanged", got)
	}
}

func TestComposeChars(t *testing.T) {
	// Stage one rewrites the symbol "a" to "bc"; stage two consumes the
	// re-split characters "b" and "c" one at a time.
	first := singleArc(t, "expand", []string{"a"}, []string{"bc"})

	second := fst.New("upper")
	for _, s := range []string{"0", "1", "2"} {
		if _, err := second.AddState(fst.State{Label: s}); err != nil {
			t.Fatal(err)
		}
	}
	if err := second.SetInitial("0"); err != nil {
		t.Fatal(err)
	}
	if err := second.SetFinal("2", true); err != nil {
		t.Fatal(err)
	}
	mustArc(t, second, "0", "1", []string{"b"}, []string{"B"})
	mustArc(t, second, "1", "2", []string{"c"}, []string{"C"})

	got, err := ComposeChars("a", first, second)
	if err != nil {
		t.Fatal(err)
	}
	if got != "BC" {
		t.Errorf("ComposeChars() = %q, want BC", got)
	}
}

func TestTrace(t *testing.T) {
	f := singleArc(t, "pair", []string{"A"}, []string{"1"})

	var buf strings.Builder
	output, err := Trace(&buf, f, []string{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(output, []string{"1"}) {
		t.Errorf("output = %v", output)
	}
	want := "a -> b ( A : 1 )\n"
	if buf.String() != want {
		t.Errorf("trace = %q, want %q", buf.String(), want)
	}
}
