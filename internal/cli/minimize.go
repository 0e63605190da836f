package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/linarr-project/linarr/pkg/cache"
	apperrors "github.com/linarr-project/linarr/pkg/errors"
	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// solveResult is the serialized form of a minimization, used both for the
// result cache and for --format json output.
type solveResult struct {
	Crossings uint64 `json:"crossings"`
	Order     []int  `json:"order"`
	Algorithm string `json:"algorithm"`
	RunID     string `json:"run_id,omitempty"`
}

// minimizeOpts holds the command-line flags for the minimize command.
type minimizeOpts struct {
	algorithm string // "auto", "brute-force", "subset"
	noCache   bool
	jsonOut   bool
}

// newMinimizeCmd creates the minimize command for exact crossing minimization.
func newMinimizeCmd() *cobra.Command {
	var opts minimizeOpts

	cmd := &cobra.Command{
		Use:   "minimize [graph.json]",
		Short: "Find an arrangement with the minimum number of crossings",
		Long: `Find the minimum number of edge crossings over all linear arrangements
of the graph, together with an arrangement attaining it.

The problem is NP-hard, so expect exponential runtimes on larger inputs.
Solved instances are cached by graph hash; use --no-cache to force a
recomputation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.algorithm != "" {
				if err := apperrors.ValidateAlgorithm(opts.algorithm); err != nil {
					return err
				}
			}
			return runMinimize(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "solver: auto (default), brute-force, subset")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")

	return cmd
}

func runMinimize(ctx context.Context, input string, opts *minimizeOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	g, err := loadGraph(input)
	if err != nil {
		return err
	}

	algorithm := opts.algorithm
	if algorithm == "" {
		algorithm = cfg.Solver.Algorithm
	}

	runID := uuid.NewString()
	logger.Debugf("Run %s: %d vertices, %d edges, algorithm=%s", runID, g.NumVertices(), g.NumEdges(), algorithm)

	store, err := newResultCache(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	graphHash, err := cache.HashGraph(g)
	if err != nil {
		return fmt.Errorf("hash graph: %w", err)
	}
	key := keyer.ResultKey(graphHash, cache.ResultKeyOpts{Algorithm: algorithm})

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		var res solveResult
		if err := json.Unmarshal(data, &res); err == nil {
			return reportResult(g, &res, true, opts.jsonOut)
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Minimizing %d vertices...", g.NumVertices()))
	spinner.Start()

	crossings, arr, err := runSolver(logger, g, algorithm, cfg, spinner)
	if err != nil {
		spinner.StopWithError("Minimization failed")
		if errors.Is(err, linarr.ErrTooManyVertices) {
			return apperrors.Wrap(apperrors.ErrCodeTooManyVertices, err, "graph too large for exact search")
		}
		return err
	}
	spinner.Stop()

	res := &solveResult{
		Crossings: crossings,
		Order:     arr.Order(),
		Algorithm: algorithm,
		RunID:     runID,
	}

	if data, err := json.Marshal(res); err == nil {
		if err := store.Set(ctx, key, data, cacheTTL(cfg)); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	return reportResult(g, res, false, opts.jsonOut)
}

// runSolver picks the solver, wires progress logging, and runs it. A nil
// spinner disables the live status line.
func runSolver(logger *log.Logger, g graph.Graph, algorithm string, cfg *Config, spinner *Spinner) (uint64, *linarr.Arrangement, error) {
	prog := newProgress(logger)
	improvements := newImprovementLog(logger)
	improvements.spinner = spinner

	var (
		crossings uint64
		arr       *linarr.Arrangement
		err       error
	)
	switch algorithm {
	case "brute-force":
		s := &linarr.BruteForce{OnImprove: improvements.record}
		crossings, arr, err = s.Minimize(g)
	case "subset":
		s := &linarr.SubsetSolver{
			MemoWidth: cfg.Solver.MemoWidth,
			OnImprove: improvements.record,
		}
		crossings, arr, err = s.Minimize(g)
	default:
		crossings, arr, err = linarr.Minimize(g)
	}
	if err != nil {
		return 0, nil, err
	}

	prog.done(fmt.Sprintf("Search complete: %d crossings", crossings))
	return crossings, arr, nil
}

// improvementLog tracks incumbent improvements during a solver run: the
// initial solution and every strict improvement after it are logged, and
// the spinner status line, when present, follows the incumbent.
type improvementLog struct {
	logger   *log.Logger
	spinner  *Spinner
	lastBest int64
}

func newImprovementLog(l *log.Logger) *improvementLog {
	return &improvementLog{logger: l, lastBest: -1}
}

func (il *improvementLog) record(crossings uint64, order []int) {
	switch {
	case il.lastBest < 0:
		il.logger.Infof("Initial: %d crossings", crossings)
	case int64(crossings) < il.lastBest:
		il.logger.Infof("Improved: %d crossings (↓%d)", crossings, il.lastBest-int64(crossings))
	}
	il.lastBest = int64(crossings)
	if il.spinner != nil {
		il.spinner.UpdateMessage(fmt.Sprintf("Searching... best so far: %d crossings", crossings))
	}
}

// reportResult prints a minimization result.
func reportResult(g graph.Graph, res *solveResult, cached, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printSuccess("Minimum: %s crossings", StyleNumber.Render(fmt.Sprintf("%d", res.Crossings)))
	printDetail("order: %v", res.Order)
	printStats(g.NumVertices(), g.NumEdges(), cached)
	if res.Crossings > 0 {
		printNextStep("Render the arrangement", fmt.Sprintf("linarr render --arrangement %s <graph>", orderFlag(res.Order)))
	}
	return nil
}

// orderFlag formats a vertex order for reuse on the command line.
func orderFlag(order []int) string {
	out := ""
	for i, v := range order {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
