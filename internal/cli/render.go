package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fstkit/fstkit/pkg/io"
	"github.com/fstkit/fstkit/pkg/render"
)

// Output formats supported by the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from the input when empty
	format string // output format: "dot" or "svg"
}

// newRenderCmd creates the render command for generating graph diagrams.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as a DOT or SVG diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")

	return cmd
}

// validateFormat checks that the format is either "dot" or "svg".
func validateFormat(f string) error {
	if f != formatDOT && f != formatSVG {
		return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", f)
	}
	return nil
}

// outputPath derives the output file path from the flags and input file,
// replacing the input's extension with the format.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender loads the graph from input and writes the requested diagram.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	f, err := io.Import(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d states, %d arcs", f.StateCount(), f.ArcCount())

	dot, err := render.ToDOT(f)
	if err != nil {
		return err
	}

	data := []byte(dot)
	if opts.format == formatSVG {
		logger.Debug("Rendering SVG with graphviz")
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	path := outputPath(opts.output, input, opts.format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	logger.Infof("Generated %s", path)
	printFile(path)
	return nil
}
