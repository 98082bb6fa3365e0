package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/entitlement/internal/metrics"
	"github.com/ppiankov/entitlement/internal/pipeline"
	"github.com/ppiankov/entitlement/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the decision checks over HTTP",
	Long: `Serve starts an HTTP API:

  POST /v1/evaluate           evaluate a case (application/json or application/yaml)
  GET  /v1/catalogs/{benefit} list the conditions for UC or ESA
  GET  /healthz               liveness
  GET  /metrics               Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.

Example:
  entitlement serve
  entitlement serve --addr 127.0.0.1:9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default: server.addr)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)
	m := metrics.New()

	p, err := pipeline.NewPipeline(cfg, pipeline.WithLogger(logger), pipeline.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "✓ Serving on %s (cache: %v)\n", cfg.Server.Addr, cfg.Cache.Enabled)

	srv := server.New(cfg.Server, p, m, logger)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Server stopped\n")
	return nil
}
