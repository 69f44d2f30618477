package cli

import (
	"github.com/spf13/cobra"

	"qtexcirq"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; empty means stdout
	layout string // layout mode: "serial" or "packed"
	term   bool   // emit the box-drawing terminal diagram instead of LaTeX
}

// newRenderCmd creates the render command: load a circuit file, lay it out,
// and print the quantikz block (or the terminal preview with --term).
func newRenderCmd() *cobra.Command {
	opts := renderOpts{layout: "packed"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a circuit file as a quantikz LaTeX block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			mode, err := qtexcirq.ParseLayoutMode(opts.layout)
			if err != nil {
				return err
			}
			circ, err := LoadCircuit(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded circuit", "wires", circ.Wires(), "gates", len(circ.Gates()))

			var out string
			if opts.term {
				out, err = qtexcirq.RenderTerm(circ, mode)
			} else {
				out, err = qtexcirq.Render(circ, mode)
			}
			if err != nil {
				return err
			}
			return writeOutput(opts.output, out)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "column layout: packed (default), serial")
	cmd.Flags().BoolVar(&opts.term, "term", false, "render a box-drawing terminal diagram")

	return cmd
}
