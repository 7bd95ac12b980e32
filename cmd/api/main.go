package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"nobelproxy/internal/config"
	"nobelproxy/internal/logging"
	"nobelproxy/internal/nobelapi"
	"nobelproxy/internal/otel"
	"nobelproxy/internal/server"
	"nobelproxy/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Nobel Prize Proxy API
// @version 1.0
// @description Read-only façade over the Nobel Prize API v2.1.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.Stderr(cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("tracing_init_failed", slog.Any("error", err))
		os.Exit(1)
	}

	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	// A nil Registerer must stay untyped nil, not a nil *Registry.
	var clientReg prometheus.Registerer
	if reg != nil {
		clientReg = reg
	}
	api, err := nobelapi.New(cfg.NobelAPI, clientReg)
	if err != nil {
		log.Error("nobelapi_init_failed", slog.Any("error", err))
		os.Exit(1)
	}

	app, err := server.New(server.Options{
		Config:   cfg,
		Service:  service.NewNobelService(api, log),
		Registry: reg,
	})
	if err != nil {
		log.Error("server_init_failed", slog.Any("error", err))
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("server_shutdown_failed", slog.Any("error", err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_started",
		slog.String("addr", addr),
		slog.String("api_prefix", cfg.APIPrefix),
		slog.String("upstream", cfg.NobelAPI.BaseURL),
		slog.Duration("upstream_timeout", cfg.NobelAPI.Timeout()),
	)

	if err := app.Listen(addr); err != nil {
		log.Error("server_listen_failed", slog.Any("error", err))
		os.Exit(1)
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(sctx); err != nil {
		log.Error("tracing_shutdown_failed", slog.Any("error", err))
	}
	log.Info("server_stopped")
}
