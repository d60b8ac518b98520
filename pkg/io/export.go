package io

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fstkit/fstkit/pkg/fst"
)

// WriteText prints the graph in the textual format accepted by [ReadText].
// States appear in sorted label order, then descriptions, then arcs, each
// line annotated with a trailing comment.
func WriteText(f *fst.FST, w io.Writer) error {
	initial, hasInitial := f.Initial()

	states := f.States()
	sort.Strings(states)

	for _, state := range states {
		final, err := f.IsFinal(state)
		if err != nil {
			return err
		}
		if hasInitial && state == initial {
			if err := writeLine(w, "-> "+state, "Initial state"); err != nil {
				return err
			}
		}
		if final {
			line := state + " ->"
			finalizing, err := f.FinalizingString(state)
			if err != nil {
				return err
			}
			if len(finalizing) > 0 {
				line += " [" + strings.Join(finalizing, " ") + "]"
			}
			if err := writeLine(w, line, "Final state"); err != nil {
				return err
			}
		}
		// States no other line would mention still need a declaration.
		incoming, err := f.Incoming(state)
		if err != nil {
			return err
		}
		outgoing, err := f.Outgoing(state)
		if err != nil {
			return err
		}
		isolated := !final && len(incoming) == 0 && len(outgoing) == 0 &&
			!(hasInitial && state == initial)
		if isolated {
			if err := writeLine(w, state, "State"); err != nil {
				return err
			}
		}
	}

	for _, state := range states {
		descr, err := f.Description(state)
		if err != nil {
			return err
		}
		if descr != "" {
			if _, err := fmt.Fprintf(w, "descr %s: %s\n", state, descr); err != nil {
				return err
			}
		}
	}

	arcs := f.Arcs()
	sort.Strings(arcs)
	for _, arc := range arcs {
		a, err := f.ArcInfo(arc)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s -> %s [%s:%s]",
			a.Src, a.Dst, strings.Join(a.In, " "), strings.Join(a.Out, " "))
		if err := writeLine(w, line, "Arc"); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, line, comment string) error {
	_, err := fmt.Fprintf(w, "%-40s # %s\n", line, comment)
	return err
}

// Export writes the graph to a textual file at path.
// This is a convenience wrapper around [WriteText] for file-based output.
func Export(f *fst.FST, path string) error {
	f2, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f2.Close()
	return WriteText(f, f2)
}
