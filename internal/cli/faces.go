package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/dcel"
	"github.com/mangara/graphcore/graph"
)

// embedOpts holds the flags shared by commands that build an embedding.
type embedOpts struct {
	checkCrossings bool
	components     bool
}

func (o embedOpts) register(cmd *cobra.Command) *embedOpts {
	cmd.Flags().BoolVar(&o.checkCrossings, "check-crossings", o.checkCrossings, "reject drawings with crossing edges")
	cmd.Flags().BoolVar(&o.components, "components", o.components, "mark one outer face per connected component")
	return &o
}

// embed builds the embedding of g with the command's logger.
func embed(cmd *cobra.Command, g *graph.Graph, o *embedOpts) (*dcel.Embedding, error) {
	opts := []dcel.Option{dcel.WithLogger(loggerFromContext(cmd.Context()))}
	if o.checkCrossings {
		opts = append(opts, dcel.WithCrossingCheck())
	}
	if o.components {
		opts = append(opts, dcel.WithComponentOuterFaces())
	}
	return dcel.Build(g, opts...)
}

func newFacesCmd() *cobra.Command {
	var eo *embedOpts

	cmd := &cobra.Command{
		Use:   "faces <file|->",
		Short: "List the faces of the embedding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}
			em, err := embed(cmd, g, eo)
			if err != nil {
				return err
			}
			printFaces(cmd, em)
			return nil
		},
	}
	eo = embedOpts{}.register(cmd)

	return cmd
}

func printFaces(cmd *cobra.Command, em *dcel.Embedding) {
	w := cmd.OutOrStdout()
	printTitle(w, "Faces")
	printStats(w, em.VertexCount(), em.EdgeCount(), em.FaceCount())
	for f := 0; f < em.FaceCount(); f++ {
		id := dcel.FaceID(f)
		kind := "inner"
		if em.IsOuter(id) {
			kind = "outer"
		}
		c := em.Centroid(id)
		printKeyValue(w, fmt.Sprintf("face %d", f),
			fmt.Sprintf("%s size=%d area=%.4g centroid=(%.4g, %.4g)", kind, em.FaceSize(id), em.SignedArea(id), c.X, c.Y))
	}
}
