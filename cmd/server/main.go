package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchstats/internal/config"
	"launchstats/internal/db"
	"launchstats/internal/jobs"
	"launchstats/internal/metrics"
	"launchstats/internal/server"
	"launchstats/internal/spacex"
	"launchstats/internal/tasks"
	"launchstats/internal/tracing"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if err := yamlCfg.Apply(cfg); err != nil {
		log.Fatalf("Invalid config file: %v", err)
	}

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
		Environment: cfg.Env,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	client, err := spacex.NewClient(cfg.SpaceXBaseURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatalf("Invalid SPACEX_BASE_URL: %v", err)
	}
	log.Printf("Using SpaceX API at %s", client.BaseURL())

	deps := server.Deps{}

	// Run history is optional. Interfaces stay nil when it is disabled.
	var recorder tasks.RunRecorder
	var runCounter metrics.RunCounter
	if cfg.HistoryEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		recorder = database
		runCounter = database
		deps.Runs = database
		deps.Database = database
	} else {
		log.Println("Run history disabled. Set DATABASE_URL to enable.")
	}

	metrics.Init(runCounter)

	deps.Tasks = tasks.NewService(client, cfg.UpstreamMaxConcurrency, recorder)

	if cfg.UpstreamProbeInterval > 0 {
		probe := jobs.NewUpstreamProbe(client, cfg.UpstreamProbeInterval, cfg.UpstreamTimeout)
		go probe.Start(ctx)
		deps.Upstream = probe
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()

	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}

	log.Println("Server exited")
}
