package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linarr-project/linarr/internal/server"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// newServeCmd creates the serve command for the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string
	var maxVertices int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Long: `Serve a JSON API exposing the solvers:

  POST /v1/count      evaluate a fixed arrangement
  POST /v1/minimize   exact crossing minimization
  POST /v1/decide     bounded decision variant
  GET  /healthz       liveness probe

Results are cached through the backend configured in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if addr == "" {
				addr = cfg.Serve.Addr
			}

			store, err := newResultCache(ctx, cfg, false)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}

			srv := server.New(server.Config{
				Addr:        addr,
				MaxVertices: maxVertices,
				MemoWidth:   cfg.Solver.MemoWidth,
			}, logger, store)
			defer srv.Close()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().IntVar(&maxVertices, "max-vertices", linarr.MaxSubsetVertices, "reject solve requests above this size")

	return cmd
}
