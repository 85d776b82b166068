package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/viewstream/pkg/markup"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a demo HTTP server backed by the renderer",
		Long: `Run a small chi-routed HTTP server that streams the demo
document through RenderResponse, one page per request.

Examples:
  markupctl serve
  markupctl serve --port=8080
  markupctl serve --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, metrics)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	cmd.Flags().StringVarP(&host, "host", "H", "127.0.0.1", "Host to bind to")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics and tracing spans for each render")

	return cmd
}

func runServe(host string, port int, withMetrics bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var observer markup.Observer = markup.NewNoopObserver()
	if withMetrics {
		observer = markup.NewPromOtelObserver(prometheus.DefaultRegisterer, "markupctl")
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if withMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := markup.RenderResponse(w, demoPage("markupctl demo"),
			markup.WithLogger(logger),
			markup.WithObserver(observer),
		)
		if err != nil {
			logger.Error("render failed", "err", err)
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		info("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	success("listening on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
