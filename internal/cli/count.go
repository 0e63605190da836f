package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/linarr-project/linarr/pkg/errors"
	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// countOpts holds the command-line flags for the count command.
type countOpts struct {
	arrangement string // comma-separated vertex order; empty means identity
	algorithm   string // evaluator: "dynprog" (default), "brute-force", "pairs"
	bound       int64  // early-exit bound; negative means exact count
}

// newCountCmd creates the count command for evaluating a fixed arrangement.
func newCountCmd() *cobra.Command {
	var opts countOpts

	cmd := &cobra.Command{
		Use:   "count [graph.json]",
		Short: "Count edge crossings under a fixed arrangement",
		Long: `Count the edge crossings of a graph laid out along a line.

The arrangement is given as a comma-separated vertex order via --arrangement
("2,0,1,3" places vertex 2 at position 0). Without it the identity
arrangement is evaluated.

With --bound the evaluation stops as soon as the running count exceeds the
bound and reports only that it was exceeded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.arrangement, "arrangement", "a", "", "vertex order, e.g. \"2,0,1,3\" (default identity)")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "dynprog", "evaluator: dynprog, brute-force, pairs")
	cmd.Flags().Int64VarP(&opts.bound, "bound", "b", -1, "stop once the count exceeds this bound")

	return cmd
}

func runCount(cmd *cobra.Command, input string, opts *countOpts) error {
	logger := loggerFromContext(cmd.Context())

	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	arr := linarr.Identity(g.NumVertices())
	if opts.arrangement != "" {
		arr, err = parseArrangement(opts.arrangement, g.NumVertices())
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidArrangement, err, "parse --arrangement")
		}
	}

	logger.Debugf("Evaluating %d vertices, %d edges with %s", g.NumVertices(), g.NumEdges(), opts.algorithm)

	if opts.bound >= 0 {
		dec, err := boundedCount(g, arr, uint64(opts.bound), opts.algorithm)
		if err != nil {
			return err
		}
		if !dec.LessEq() {
			printInfo("More than %d crossings", opts.bound)
			return nil
		}
		printSuccess("%s crossings (within bound %d)", StyleNumber.Render(fmt.Sprintf("%d", dec.Value)), opts.bound)
		return nil
	}

	var c uint64
	switch opts.algorithm {
	case "dynprog":
		c = linarr.Count(g, arr)
	case "brute-force":
		c = linarr.CountBruteForce(g, arr)
	case "pairs":
		c = linarr.CountPairs(g, arr)
	default:
		return apperrors.New(apperrors.ErrCodeInvalidAlgorithm, "unknown evaluator: %q", opts.algorithm)
	}

	printSuccess("%s crossings", StyleNumber.Render(fmt.Sprintf("%d", c)))
	printStats(g.NumVertices(), g.NumEdges(), false)
	return nil
}

// boundedCount runs the bounded form of the selected evaluator.
func boundedCount(g graph.Graph, arr *linarr.Arrangement, bound uint64, algorithm string) (linarr.Decision, error) {
	switch algorithm {
	case "dynprog", "pairs":
		// the pairwise evaluator has no bounded form; dynprog answers the
		// same question faster anyway
		return linarr.IsCountLessEq(g, arr, bound), nil
	case "brute-force":
		return linarr.IsCountLessEqBruteForce(g, arr, bound), nil
	default:
		return linarr.Decision{}, apperrors.New(apperrors.ErrCodeInvalidAlgorithm, "unknown evaluator: %q", algorithm)
	}
}
