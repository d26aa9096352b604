package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"sudoku-graph/internal/metrics"
	"sudoku-graph/internal/puzzlebank"
	httpTransport "sudoku-graph/internal/transport/http"
	"sudoku-graph/pkg/config"
	"sudoku-graph/pkg/constants"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.PuzzleBankFile != "" {
		if err := puzzlebank.LoadGlobal(cfg.PuzzleBankFile); err != nil {
			log.Printf("Warning: could not load puzzle bank from %s: %v", cfg.PuzzleBankFile, err)
		} else {
			log.Printf("Loaded puzzle bank from %s", cfg.PuzzleBankFile)
		}
	}

	obs := metrics.NewObserver(prometheus.DefaultRegisterer)

	r := gin.Default()
	httpTransport.RegisterRoutes(r, cfg, obs)

	port := cfg.Port
	if port == "" {
		port = constants.DefaultPort
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
