package main

import (
	"fmt"
	"os"

	"github.com/JustJay7/jagriti-case-api/internal/config"
	"github.com/JustJay7/jagriti-case-api/internal/server"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	srv := server.New(cfg, log)

	log.Info("Starting Jagriti Consumer Court API",
		"host", cfg.Host,
		"port", cfg.Port,
		"upstream", cfg.JagritiBaseURL,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
