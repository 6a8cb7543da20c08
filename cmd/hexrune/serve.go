package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/hexrune/internal/adapters/http"
	"github.com/aretw0/hexrune/internal/cli"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP script API",
	Long: `Serves the configured script store over a JSON API: list, describe, upload,
delete, graph and play scripts. Prometheus metrics are exposed on /metrics, or on
their own listener when metrics.addr is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector, err := metrics.New(reg)
		if err != nil {
			return err
		}

		e, err := setup(cmd, collector)
		if err != nil {
			return err
		}
		defer e.close()

		addr := e.cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		opts := []httpAdapter.Option{httpAdapter.WithLogger(e.logger)}
		servers := []*http.Server{}
		if e.cfg.Metrics.Addr == "" {
			opts = append(opts, httpAdapter.WithMetricsHandler(metricsHandler))
		} else {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metricsHandler)
			servers = append(servers, &http.Server{Addr: e.cfg.Metrics.Addr, Handler: mux})
		}
		servers = append([]*http.Server{{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(e.engine, opts...),
		}}, servers...)

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		// Channel to listen for errors coming from the listeners.
		serverErrors := make(chan error, len(servers))
		for _, srv := range servers {
			go func(srv *http.Server) {
				e.logger.Info("listening", "addr", srv.Addr, "store", e.cfg.Store.Backend)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErrors <- err
				}
			}(srv)
		}

		var serveErr error
		select {
		case serveErr = <-serverErrors:
			e.logger.Error("server error", "error", serveErr)
		case <-sc.Done():
			e.logger.Info("shutting down", "signal", sc.Signal())
		}

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(ctx); err != nil {
				e.logger.Warn("graceful shutdown did not complete", "addr", srv.Addr, "error", err)
				_ = srv.Close()
			}
		}
		return serveErr
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
