package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/linarr-project/linarr/pkg/errors"
	"github.com/linarr-project/linarr/pkg/graph"
)

// newGraphCmd creates the graph command for generating standard families.
func newGraphCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph [path|cycle|star|complete] [n]",
		Short: "Generate a standard graph family as JSON",
		Long: `Generate a graph document for one of the standard families:

  path      n vertices in a chain
  cycle     n vertices in a ring
  star      center vertex connected to n-1 leaves
  complete  every pair of vertices connected

The document is written to stdout or to --output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "invalid vertex count: %q", args[1])
			}

			var g graph.Graph
			switch args[0] {
			case "path":
				g = graph.Path(n)
			case "cycle":
				g = graph.Cycle(n)
			case "star":
				g = graph.Star(n)
			case "complete":
				g = graph.Complete(n)
			default:
				return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown family: %q", args[0])
			}

			if output == "" {
				return graph.WriteGraph(g, os.Stdout)
			}
			if err := apperrors.ValidatePath(output); err != nil {
				return err
			}
			if err := graph.WriteGraphFile(g, output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Generated %s graph: %d vertices, %d edges", args[0], g.NumVertices(), g.NumEdges())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
