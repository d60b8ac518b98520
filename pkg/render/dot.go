// Package render exports FST graphs as node/edge diagrams.
//
// [ToDOT] produces a Graphviz DOT description: final states are drawn as
// double circles annotated with their finalizing string, the initial state
// is marked with a plaintext entry arrow, and every arc is labeled with its
// input and output strings as "in:out". [RenderSVG] rasterizes a DOT string
// to SVG with Graphviz.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fstkit/fstkit/pkg/fst"
)

// quoteDOT escapes a string for use inside a double-quoted DOT value.
var quoteDOT = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace

// ToDOT converts a graph to Graphviz DOT format.
// States are emitted in insertion order under numeric node ids, so the
// output is deterministic for a given graph.
func ToDOT(f *fst.FST) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph \"%s\" {\n", quoteDOT(f.Label()))
	buf.WriteString("  node [shape=ellipse];\n")

	states := f.States()
	ids := make(map[string]int, len(states))
	for i, state := range states {
		ids[state] = i
	}

	if initial, ok := f.Initial(); ok {
		buf.WriteString("  init [shape=plaintext, label=\"\"];\n")
		fmt.Fprintf(&buf, "  init -> %d;\n", ids[initial])
	}

	for _, state := range states {
		final, err := f.IsFinal(state)
		if err != nil {
			return "", err
		}
		if !final {
			fmt.Fprintf(&buf, "  %d [label=\"%s\"];\n", ids[state], quoteDOT(state))
			continue
		}
		finalizing, err := f.FinalizingString(state)
		if err != nil {
			return "", err
		}
		label := quoteDOT(state)
		if len(finalizing) > 0 {
			label += `\n` + quoteDOT(strings.Join(finalizing, " "))
		}
		fmt.Fprintf(&buf, "  %d [label=\"%s\", shape=doublecircle];\n", ids[state], label)
	}

	for _, arc := range f.Arcs() {
		a, err := f.ArcInfo(arc)
		if err != nil {
			return "", err
		}
		label := quoteDOT(strings.Join(a.In, " ") + ":" + strings.Join(a.Out, " "))
		fmt.Fprintf(&buf, "  %d -> %d [label=\"%s\"];\n", ids[a.Src], ids[a.Dst], label)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}
