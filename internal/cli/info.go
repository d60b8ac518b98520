package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/io"
)

// newInfoCmd creates the info command for summarizing a graph file.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show summary statistics for a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := io.Import(args[0])
			if err != nil {
				return err
			}

			printKeyValue("graph", f.Label())
			printKeyValue("states", fmt.Sprintf("%d", f.StateCount()))
			printKeyValue("arcs", fmt.Sprintf("%d", f.ArcCount()))

			initial, ok := f.Initial()
			if !ok {
				initial = "(none)"
			}
			printKeyValue("initial", initial)

			var finals []string
			for _, state := range f.States() {
				final, err := f.IsFinal(state)
				if err != nil {
					return err
				}
				if final {
					finals = append(finals, state)
				}
			}
			printKeyValue("final", strings.Join(finals, ", "))

			class := "nondeterministic"
			if f.IsSequential() {
				class = "sequential"
			} else if f.IsSubsequential() {
				class = "subsequential"
			}
			printKeyValue("class", class)
			return nil
		},
	}
}
