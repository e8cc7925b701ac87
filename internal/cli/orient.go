package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/dfs"
	"github.com/mangara/graphcore/orient"
)

func newOrientCmd() *cobra.Command {
	var (
		output     string
		degeneracy int
	)

	cmd := &cobra.Command{
		Use:   "orient <file|->",
		Short: "Direct every edge so that no vertex has more than k outgoing edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("degeneracy") {
				degeneracy = configFromContext(cmd.Context()).Degeneracy
			}
			return runOrient(cmd, args[0], output, degeneracy)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&degeneracy, "degeneracy", "k", orient.DefaultDegeneracy, "out-degree bound k")

	return cmd
}

func runOrient(cmd *cobra.Command, in, output string, k int) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGraph(cmd, in)
	if err != nil {
		return err
	}
	out, res, err := orient.OrientGraph(g,
		orient.WithDegeneracy(k),
		orient.WithLogger(logger),
	)
	if errors.Is(err, orient.ErrNotDegenerate) {
		printError(cmd.ErrOrStderr(), "Only %d of %d vertices could be processed with k=%d",
			len(res.Order), g.VertexCount(), k)
	}
	if err != nil {
		return err
	}

	if _, err := dfs.TopologicalSort(out, dfs.WithCancelContext(cmd.Context())); err != nil {
		return fmt.Errorf("orientation is not acyclic: %w", err)
	}

	wrote, err := writeGraph(cmd, output, out)
	if err != nil {
		return err
	}
	w := summary(cmd, wrote)
	printSuccess(w, "Oriented %d edges", out.EdgeCount())
	printKeyValue(w, "bound", k)
	printKeyValue(w, "max out", slices.Max(append(orient.OutDegrees(out), 0)))
	printKeyValue(w, "enqueued", res.Enqueued)
	printKeyValue(w, "acyclic", "yes")
	if wrote {
		printFile(w, output)
	}
	return nil
}
