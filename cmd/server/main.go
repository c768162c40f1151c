package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"residents/internal/health"
	"residents/internal/platform/config"
	"residents/internal/platform/httpserver"
	"residents/internal/platform/logger"
	"residents/internal/platform/metrics"
	"residents/internal/platform/tracing"
	residenthandler "residents/internal/resident/handler"
	"residents/internal/resident/service"
	"residents/internal/resident/store"
	httptransport "residents/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	var (
		m              *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	tp, err := tracing.New(context.Background(), tracing.Config{
		Enabled:     cfg.TracingEnabled,
		ServiceName: "residents",
		Endpoint:    cfg.TracingEndpoint,
		SampleRatio: cfg.TracingSampleRatio,
		Environment: cfg.Environment,
	})
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("failed to flush traces", "error", err)
		}
	}()

	var storeOpts []store.Option
	if m != nil {
		storeOpts = append(storeOpts, store.WithSizeObserver(m.SetRegistrySize))
	}

	// The registry lives for the whole process; restarting discards it.
	residents := service.New(store.NewInMemory(storeOpts...),
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithTracer(tp.Tracer("residents/internal/resident/service")),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Metrics:        m,
		MetricsHandler: metricsHandler,
		Tracer:         tp.Tracer("residents/internal/transport/http"),
		RequestTimeout: cfg.RequestTimeout,
	},
		health.New(cfg.Environment),
		residenthandler.New(residents, log, m),
	)

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting residents service",
			"addr", cfg.Addr,
			"environment", cfg.Environment,
			"tracing", cfg.TracingEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down residents service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
