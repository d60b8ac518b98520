package transduce

import (
	"fmt"
	"io"
	"strings"

	"github.com/fstkit/fstkit/pkg/fst"
)

// Compose chains transducers: the input is transduced through the first
// graph, its output becomes the next graph's input, and so on. The general
// backtracking path is used throughout so non-subsequential stages stay
// correct. Fails as soon as any stage fails, wrapping the stage's error
// with its position in the chain.
func Compose(input []string, fsts ...*fst.FST) ([]string, error) {
	for i, f := range fsts {
		output, err := General(f, input)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, f.Label(), err)
		}
		input = output
	}
	return input, nil
}

// ComposeChars is [Compose] for transducers whose symbols are single
// characters: the input string is split into one symbol per rune and each
// stage's output symbols are joined into the next stage's input characters.
func ComposeChars(input string, fsts ...*fst.FST) (string, error) {
	for i, f := range fsts {
		symbols := make([]string, 0, len(input))
		for _, r := range input {
			symbols = append(symbols, string(r))
		}
		output, err := General(f, symbols)
		if err != nil {
			return "", fmt.Errorf("stage %d (%s): %w", i, f.Label(), err)
		}
		input = strings.Join(output, "")
	}
	return input, nil
}

// Trace transduces input through f on the general path and writes one line
// per transition to w, in the form "src -> dst ( in : out )". The final
// output string is returned alongside any transduction error; steps taken
// before a failure are still printed.
func Trace(w io.Writer, f *fst.FST, input []string) ([]string, error) {
	steps, output, err := GeneralSteps(f, input)
	for _, step := range steps {
		a, infoErr := f.ArcInfo(step.Arc)
		if infoErr != nil {
			return nil, infoErr
		}
		in := strings.Join(a.In, " ")
		if in == "" {
			in = " "
		}
		out := strings.Join(a.Out, " ")
		if out == "" {
			out = " "
		}
		fmt.Fprintf(w, "%s -> %s ( %s : %s )\n", a.Src, a.Dst, in, out)
	}
	return output, err
}
