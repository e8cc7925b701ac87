package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/builder"
)

const (
	kindGrid         = "grid"
	kindPolygon      = "polygon"
	kindTriangulated = "triangulated"
	kindWheel        = "wheel"
	kindRandom       = "random"
)

var generateKinds = []string{kindGrid, kindPolygon, kindTriangulated, kindWheel, kindRandom}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	n          int     // vertex count, or side length for grid
	output     string  // output path, "-" or "" for stdout
	seed       int64   // RNG seed for random
	radius     float64 // circle radius for polygon, triangulated, wheel
	triangular bool    // random: fixed enclosing triangle as outer face
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:       "generate <grid|polygon|triangulated|wheel|random>",
		Short:     "Generate a plane straight-line graph",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Seed
			}
			if !cmd.Flags().Changed("radius") {
				opts.radius = cfg.Radius
			}
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "vertices", "n", 10, "number of vertices (grid: side length)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default from config, 42)")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "circle radius (default from config, 100)")
	cmd.Flags().BoolVar(&opts.triangular, "triangular", false, "random: use a triangular outer face")

	return cmd
}

// constructorFor maps a kind name to its builder.
func constructorFor(kind string, opts generateOpts) (builder.Constructor, error) {
	switch kind {
	case kindGrid:
		return builder.Grid(opts.n), nil
	case kindPolygon:
		return builder.ConvexPolygon(opts.n), nil
	case kindTriangulated:
		return builder.TriangulatedPolygon(opts.n), nil
	case kindWheel:
		return builder.Wheel(opts.n), nil
	case kindRandom:
		return builder.RandomTriangulation(opts.n, opts.triangular), nil
	}
	return nil, fmt.Errorf("unknown kind %q (want one of %v)", kind, generateKinds)
}

func runGenerate(cmd *cobra.Command, kind string, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	if opts.radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", opts.radius)
	}
	con, err := constructorFor(kind, opts)
	if err != nil {
		return err
	}
	g, err := builder.Build(con, builder.WithSeed(opts.seed), builder.WithRadius(opts.radius))
	if err != nil {
		return err
	}
	logger.Debug("generated", "kind", kind, "n", opts.n, "seed", opts.seed)

	wrote, err := writeGraph(cmd, opts.output, g)
	if err != nil {
		return err
	}
	w := summary(cmd, wrote)
	printSuccess(w, "Generated %s", kind)
	printStats(w, g.VertexCount(), g.EdgeCount(), -1)
	if wrote {
		printFile(w, opts.output)
	}
	return nil
}
