package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"household-tasks/adapters/memory"
	"household-tasks/adapters/rest"
	"household-tasks/adapters/rest/handlers"
	"household-tasks/adapters/rest/middleware"
	"household-tasks/config"
	"household-tasks/core"
	"household-tasks/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	seed, err := memory.LoadSeed(cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	accounts := memory.NewAccounts(log, seed.Accounts)
	tasks := memory.NewTasks(seed.TaskCounter, seed.Tasks)
	log.Info("stores seeded", "accounts", accounts.Len(), "tasks", tasks.Len())

	static, err := web.FS(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("static files: %w", err)
	}

	mux := http.NewServeMux()
	var opts []core.Option
	var mws []func(http.Handler) http.Handler

	mws = append(mws,
		middleware.RequestID,
		middleware.AccessLog(log),
		middleware.CORS(cfg.HTTP.CORSOrigins, rest.HeaderUser, rest.HeaderAdminUser),
	)

	if !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := middleware.NewMetrics(reg)
		opts = append(opts, core.WithRecorder(metrics))
		mws = append(mws, metrics.Instrument(mux))
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	svc := core.NewService(log, accounts, tasks, opts...)

	handlers.Register(mux, log, handlers.Deps{
		Service: svc,
		Pingers: map[string]core.Pinger{"accounts": accounts, "tasks": tasks},
		Static:  static,
	}, cfg.HTTP.Timeout)

	server := http.Server{
		Addr:              cfg.HTTP.Address(),
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           middleware.Chain(mux, mws...),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("household tasks http server", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
