package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/errors"
	"github.com/fstkit/fstkit/pkg/fst/transduce"
	"github.com/fstkit/fstkit/pkg/io"
	"github.com/fstkit/fstkit/pkg/observability"
)

// transduceOpts holds the command-line flags for the transduce command.
type transduceOpts struct {
	fast  bool // require the table-driven subsequential path
	chars bool // split the input into one symbol per character
}

// newTransduceCmd creates the transduce command for running an input string
// through a graph.
//
// By default the general backtracking engine is used, which accepts any
// graph. With --fast the table-driven engine is used instead; it is faster
// but requires a subsequential graph.
func newTransduceCmd() *cobra.Command {
	var opts transduceOpts

	cmd := &cobra.Command{
		Use:   "transduce [file] [symbols...]",
		Short: "Run an input string through a graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := io.Import(args[0])
			if err != nil {
				return err
			}
			input := inputSymbols(args[1:], opts.chars)
			logger.Debugf("Transducing %d symbols through %s", len(input), f.Label())

			ctx := cmd.Context()
			observability.Engine().OnTransduceStart(ctx, f.Label(), len(input))
			start := time.Now()
			var output []string
			if opts.fast {
				output, err = transduce.Fast(f, input)
			} else {
				output, err = transduce.General(f, input)
			}
			observability.Engine().OnTransduceComplete(ctx, f.Label(), len(input), time.Since(start), err)
			if err != nil {
				if errors.Is(err, errors.ErrCodeTransductionFailure) {
					printError("%s", errors.UserMessage(err))
					return err
				}
				return err
			}

			printSuccess("%s", strings.Join(output, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.fast, "fast", false, "use the table-driven engine (requires a subsequential graph)")
	cmd.Flags().BoolVar(&opts.chars, "chars", false, "split arguments into one symbol per character")

	return cmd
}

// inputSymbols turns command-line arguments into the input symbol string.
// With chars set, every character of every argument becomes its own symbol.
func inputSymbols(args []string, chars bool) []string {
	if !chars {
		return args
	}
	var symbols []string
	for _, arg := range args {
		for _, r := range arg {
			symbols = append(symbols, string(r))
		}
	}
	return symbols
}
