package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/internal/cli"
	httpAdapter "github.com/aretw0/agrocalc/pkg/adapters/http"
	"github.com/aretw0/agrocalc/pkg/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Exposes the catalog as a JSON API. The server keeps no session: clients
send their state with every /dispatch request. See /openapi.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var metrics *observability.Metrics
		if cfg.HTTP.Metrics {
			metrics = observability.NewMetrics()
		}
		engine, err := newEngine(metrics)
		if err != nil {
			return err
		}

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithVersion(agrocalc.Version),
		}
		if metrics != nil {
			opts = append(opts, httpAdapter.WithMetrics(metrics))
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           httpAdapter.NewHandler(engine, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			cli.PrintSystemMessage(cmd.ErrOrStderr(), "agrocalc listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("shutting down HTTP server")
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP port")
	serveCmd.Flags().Bool("metrics", true, "expose Prometheus metrics on /metrics")
	_ = v.BindPFlag("http.port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("http.metrics", serveCmd.Flags().Lookup("metrics"))
	rootCmd.AddCommand(serveCmd)
}
