package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/fst"
	"github.com/fstkit/fstkit/pkg/fst/transform"
	"github.com/fstkit/fstkit/pkg/io"
)

// Transformation names accepted by --op.
const (
	opInvert  = "invert"
	opReverse = "reverse"
	opTrim    = "trim"
	opRelabel = "relabel"
)

// transformOpts holds the command-line flags for the transform command.
type transformOpts struct {
	op     string // transformation to apply
	output string // output file; stdout when empty
}

// newTransformCmd creates the transform command for applying a structural
// transformation to a graph.
func newTransformCmd() *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Apply a structural transformation to a graph",
		Long: `Transform applies a structural transformation to a graph and writes the result.

Operations:
  invert   swap input and output strings on every arc
  reverse  swap source and destination of every arc
  trim     drop states not on any path from the initial state to a final state
  relabel  rename all states and arcs to canonical integer labels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := io.Import(args[0])
			if err != nil {
				return err
			}

			result, err := applyTransform(f, opts.op)
			if err != nil {
				return err
			}
			logger.Infof("Applied %s: %d states, %d arcs", opts.op, result.StateCount(), result.ArcCount())

			if opts.output == "" {
				return io.WriteText(result, os.Stdout)
			}
			if err := io.Export(result, opts.output); err != nil {
				return err
			}
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.op, "op", "", "transformation: invert, reverse, trim, relabel")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

// applyTransform dispatches to the transformation selected by op.
func applyTransform(f *fst.FST, op string) (*fst.FST, error) {
	switch op {
	case opInvert:
		return transform.Invert(f)
	case opReverse:
		return transform.Reverse(f)
	case opTrim:
		return transform.Trim(f)
	case opRelabel:
		return transform.Relabel(f)
	default:
		return nil, fmt.Errorf("unknown transformation: %s (must be 'invert', 'reverse', 'trim', or 'relabel')", op)
	}
}
