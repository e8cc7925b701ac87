package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/bfs"
	"github.com/mangara/graphcore/dcel"
)

func newVerifyCmd() *cobra.Command {
	var eo *embedOpts

	cmd := &cobra.Command{
		Use:   "verify <file|->",
		Short: "Build the embedding and check its structural invariants",
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
			return runVerify(cmd, em)
		},
	}
	eo = embedOpts{checkCrossings: true}.register(cmd)

	return cmd
}

func runVerify(cmd *cobra.Command, em *dcel.Embedding) error {
	w := cmd.OutOrStdout()
	if err := em.Verify(); err != nil {
		printError(w, "Embedding is inconsistent")
		return err
	}
	printSuccess(w, "Embedding is consistent")
	printStats(w, em.VertexCount(), em.EdgeCount(), em.FaceCount())
	comps, err := bfs.Components(em.Source())
	if err != nil {
		return err
	}
	printKeyValue(w, "components", len(comps))
	printKeyValue(w, "outer faces", len(em.OuterFaces()))
	printKeyValue(w, "V - E + F", fmt.Sprint(em.VertexCount()-em.EdgeCount()+em.FaceCount()))
	return nil
}
