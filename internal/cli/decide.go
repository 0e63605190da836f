package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linarr-project/linarr/pkg/cache"
	apperrors "github.com/linarr-project/linarr/pkg/errors"
	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// decideResult is the serialized form of a bounded decision.
type decideResult struct {
	Bound     uint64  `json:"bound"`
	Within    bool    `json:"within"`
	Crossings *uint64 `json:"crossings,omitempty"` // witness count when within
	Algorithm string  `json:"algorithm"`
}

// decideOpts holds the command-line flags for the decide command.
type decideOpts struct {
	bound     uint64
	algorithm string
	noCache   bool
	jsonOut   bool
}

// newDecideCmd creates the decide command for the bounded variant of
// minimization.
func newDecideCmd() *cobra.Command {
	var opts decideOpts

	cmd := &cobra.Command{
		Use:   "decide [graph.json]",
		Short: "Decide whether some arrangement stays within a crossing bound",
		Long: `Decide whether the graph admits a linear arrangement with at most --bound
edge crossings.

This is usually much cheaper than a full minimization: the search stops at
the first arrangement within the bound, and branches that cannot get under
it are cut immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.algorithm != "" {
				if err := apperrors.ValidateAlgorithm(opts.algorithm); err != nil {
					return err
				}
			}
			return runDecide(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().Uint64VarP(&opts.bound, "bound", "b", 0, "crossing bound to decide against")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "solver: auto (default), brute-force, subset")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("bound")

	return cmd
}

func runDecide(ctx context.Context, input string, opts *decideOpts) error {
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
	logger.Debugf("Deciding bound %d: %d vertices, %d edges", opts.bound, g.NumVertices(), g.NumEdges())

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
	key := keyer.ResultKey(graphHash, cache.ResultKeyOpts{
		Algorithm: algorithm,
		Bounded:   true,
		Bound:     opts.bound,
	})

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		var res decideResult
		if err := json.Unmarshal(data, &res); err == nil {
			return reportDecision(&res, true, opts.jsonOut)
		}
	}

	dec, err := decideWithAlgorithm(g, opts.bound, algorithm, cfg)
	if err != nil {
		if errors.Is(err, linarr.ErrTooManyVertices) {
			return apperrors.Wrap(apperrors.ErrCodeTooManyVertices, err, "graph too large for exact search")
		}
		return err
	}

	res := &decideResult{Bound: opts.bound, Within: dec.LessEq(), Algorithm: algorithm}
	if dec.LessEq() {
		v := dec.Value
		res.Crossings = &v
	}

	if data, err := json.Marshal(res); err == nil {
		if err := store.Set(ctx, key, data, cacheTTL(cfg)); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}
	return reportDecision(res, false, opts.jsonOut)
}

func decideWithAlgorithm(g graph.Graph, bound uint64, algorithm string, cfg *Config) (linarr.Decision, error) {
	switch algorithm {
	case "brute-force":
		s := &linarr.BruteForce{}
		return s.MinimizeWithBound(g, bound)
	case "subset":
		s := &linarr.SubsetSolver{MemoWidth: cfg.Solver.MemoWidth}
		return s.MinimizeWithBound(g, bound)
	default:
		return linarr.MinimizeWithBound(g, bound)
	}
}

// reportDecision prints a decision result.
func reportDecision(res *decideResult, cached, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if !res.Within {
		printInfo("No arrangement with at most %d crossings", res.Bound)
		return nil
	}
	suffix := ""
	if cached {
		suffix = " " + StyleDim.Render("(cached)")
	}
	printSuccess("Within bound: found %s crossings ≤ %d%s", StyleNumber.Render(fmt.Sprintf("%d", *res.Crossings)), res.Bound, suffix)
	return nil
}
