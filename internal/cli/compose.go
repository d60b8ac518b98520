package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/fst"
	"github.com/fstkit/fstkit/pkg/fst/transduce"
	"github.com/fstkit/fstkit/pkg/io"
)

// composeOpts holds the command-line flags for the compose command.
type composeOpts struct {
	input string // input string fed to the first graph
	chars bool   // split the input into one symbol per character
}

// newComposeCmd creates the compose command for chaining an input through
// several graphs: the output of each graph becomes the input of the next.
func newComposeCmd() *cobra.Command {
	var opts composeOpts

	cmd := &cobra.Command{
		Use:   "compose [files...]",
		Short: "Chain an input through several graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			fsts := make([]*fst.FST, 0, len(args))
			for _, path := range args {
				f, err := io.Import(path)
				if err != nil {
					return err
				}
				fsts = append(fsts, f)
			}
			logger.Debugf("Composing %d graphs", len(fsts))

			if opts.chars {
				output, err := transduce.ComposeChars(opts.input, fsts...)
				if err != nil {
					printError("%s", err)
					return err
				}
				printSuccess("%s", output)
				return nil
			}

			output, err := transduce.Compose(strings.Fields(opts.input), fsts...)
			if err != nil {
				printError("%s", err)
				return err
			}
			printSuccess("%s", strings.Join(output, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "input string (symbols separated by spaces)")
	cmd.Flags().BoolVar(&opts.chars, "chars", false, "treat every character of the input as its own symbol")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
