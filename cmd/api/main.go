package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/config"
	"github.com/sammytumzy/TunmzyTech/internal/logger"
	"github.com/sammytumzy/TunmzyTech/internal/repository"
	"github.com/sammytumzy/TunmzyTech/internal/server"
	"github.com/sammytumzy/TunmzyTech/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// amounts serialize as JSON numbers, matching the Pi frontend SDK
	decimal.MarshalJSONWithoutQuotes = true

	db, err := client.InitDBClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	piClient := client.NewPiClient(&cfg.Pi)

	statusRepo := repository.NewStatusCheckRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	statusService := service.NewStatusService(statusRepo)
	authService := service.NewAuthService(piClient, userRepo, &cfg.Session, log)
	paymentService := service.NewPaymentService(piClient, paymentRepo, cfg.Pi.AllowDegraded, log)

	srv := server.NewServer(cfg, log, statusService, authService, paymentService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info().Str("addr", serverAddr).Bool("degraded_mode", cfg.Pi.AllowDegraded).
		Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
