package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output path, "-" or "" for stdout
	dot    bool    // emit DOT instead of SVG
	scale  float64 // points per coordinate unit
	labels bool    // draw vertex indices
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Draw the graph at its own coordinates as SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := configFromContext(cmd.Context()).Layout
			if !cmd.Flags().Changed("scale") {
				opts.scale = layout.Scale
			}
			if !cmd.Flags().Changed("labels") {
				opts.labels = layout.Labels
			}
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT instead of SVG")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "points per coordinate unit")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw vertex indices")

	return cmd
}

func runRender(cmd *cobra.Command, in string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGraph(cmd, in)
	if err != nil {
		return err
	}
	ro := render.Options{Scale: opts.scale, Labels: opts.labels}
	dot := render.ToDOT(g, ro)
	bounds := render.Bounds(g, ro)
	logger.Debug("drawing", "width", bounds.Width(), "height", bounds.Height())

	data := []byte(dot)
	format := "DOT"
	if !opts.dot {
		if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
			return err
		}
		format = "SVG"
	}

	wrote, err := writeBytes(cmd, opts.output, data)
	if err != nil {
		return err
	}
	w := summary(cmd, wrote)
	printSuccess(w, "Rendered %s", format)
	printKeyValue(w, "size", fmt.Sprintf("%.0f × %.0f pt", bounds.Width(), bounds.Height()))
	if wrote {
		printFile(w, opts.output)
	}
	return nil
}
