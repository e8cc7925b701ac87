package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mangara/graphcore/graph"
	"github.com/mangara/graphcore/graphio"
)

// stdio is the path that selects the command's standard streams.
const stdio = "-"

// readGraph reads path, or standard input for "-".
func readGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == stdio {
		return graphio.Read(cmd.InOrStdin())
	}
	return graphio.ReadFile(path)
}

// writeGraph writes g to path, or to standard output for "" and "-".
// It reports whether a file was written.
func writeGraph(cmd *cobra.Command, path string, g *graph.Graph) (bool, error) {
	if path == "" || path == stdio {
		return false, graphio.Write(cmd.OutOrStdout(), g)
	}
	return true, graphio.WriteFile(path, g)
}

// writeBytes writes data to path, or to standard output for "" and "-".
func writeBytes(cmd *cobra.Command, path string, data []byte) (bool, error) {
	if path == "" || path == stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// summary returns where summaries go: the output stream when a file was
// written, the error stream when the output stream carries data.
func summary(cmd *cobra.Command, wroteFile bool) io.Writer {
	if wroteFile {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}
