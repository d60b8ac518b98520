package cli

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/fst/transduce"
	"github.com/fstkit/fstkit/pkg/io"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	chars       bool // split the input into one symbol per character
	interactive bool // step through the trace in a TUI
}

// newTraceCmd creates the trace command for showing every transition a
// transduction takes, including branches the backtracking search abandoned.
func newTraceCmd() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace [file] [symbols...]",
		Short: "Show every transition of a transduction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := io.Import(args[0])
			if err != nil {
				return err
			}
			input := inputSymbols(args[1:], opts.chars)

			if opts.interactive {
				steps, output, stepErr := transduce.GeneralSteps(f, input)
				model, err := newTraceModel(f, input, steps, output, stepErr)
				if err != nil {
					return err
				}
				if _, err := tea.NewProgram(model).Run(); err != nil {
					return err
				}
				return stepErr
			}

			output, err := transduce.Trace(os.Stdout, f, input)
			if err != nil {
				printError("%s", err)
				return err
			}
			printSuccess("%s", strings.Join(output, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.chars, "chars", false, "split arguments into one symbol per character")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "step through the trace in a TUI")

	return cmd
}
