package cli

import (
	"github.com/spf13/cobra"
)

func newDualCmd() *cobra.Command {
	var (
		output string
		eo     *embedOpts
	)

	cmd := &cobra.Command{
		Use:   "dual <file|->",
		Short: "Write the dual graph: one vertex per face at its centroid",
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
			dual, _ := em.DualGraph()

			wrote, err := writeGraph(cmd, output, dual)
			if err != nil {
				return err
			}
			w := summary(cmd, wrote)
			printSuccess(w, "Dual of %d faces", em.FaceCount())
			printStats(w, dual.VertexCount(), dual.EdgeCount(), -1)
			if wrote {
				printFile(w, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	eo = embedOpts{}.register(cmd)

	return cmd
}
