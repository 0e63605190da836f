package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-31T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configKey is the context key for storing the loaded configuration.
const configKey ctxKey = 1

// withConfig returns a new context with the configuration attached.
func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, falling back to
// defaults when command setup did not attach one.
func configFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return DefaultConfig()
}

// Execute runs the linarr CLI and returns an error if any command fails.
// This is the main entry point for the CLI application. The context carries
// signal cancellation so a Ctrl-C interrupts long solver runs and the HTTP
// server cleanly.
//
// The function sets up the root command with all subcommands (count,
// minimize, decide, graph, render, serve, cache, completion), configures
// logging based on the --verbose flag, loads the optional TOML config, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and config are attached to the context and accessible to all
// commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          "linarr",
		Short:        "linarr computes edge crossings of graphs on a line",
		Long:         `linarr places graph vertices along a line and computes edge crossings: exact counts for fixed arrangements and exact minima over all arrangements, with caching, rendering, and an HTTP API.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("linarr %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/linarr/config.toml)")

	root.AddCommand(newCountCmd())
	root.AddCommand(newMinimizeCmd())
	root.AddCommand(newDecideCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
