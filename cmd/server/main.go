// Command main is the entry point for The Emerging Icons API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/bootstrap"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/config"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/middleware"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/observability"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	middleware.InitMiddleware(cfg)

	ctx := context.Background()

	var tracingShutdown func(context.Context) error
	if cfg.TracingEnabled {
		tracingShutdown, err = observability.InitTracing(observability.TracingConfig{
			ServiceName:    "emerging-icons-api",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Env,
			Enabled:        true,
			Exporter:       cfg.TracingExport,
			OTLPEndpoint:   cfg.OTLPEndpoint,
		})
		if err != nil {
			log.Fatalf("Failed to initialize tracing: %v", err)
		}
	}

	db, redisClient, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	srv, err := server.NewServerWithDeps(cfg, db, redisClient)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if tracingShutdown != nil {
			if err := tracingShutdown(shutdownCtx); err != nil {
				log.Printf("Tracing shutdown error: %v", err)
			}
		}
	}()

	log.Fatal(srv.Start())
}
