package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackmap/hackmap/config"
	"hackmap/hackmap/controllers"
	"hackmap/hackmap/middlewares"
	"hackmap/hackmap/routes"
	"hackmap/hackmap/services/github"
	"hackmap/hackmap/services/llm"
	"hackmap/hackmap/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	if cfg.WalletConnectProjectID == "" {
		logging.AppLogger.Warn("WALLETCONNECT_PROJECT_ID is not set, frontend wallet flows will not work")
	}

	groq := llm.NewGroqClient(cfg)
	fetcher := github.NewFetcher(cfg)
	hackCtrl := controllers.NewHackathonController(groq)
	subCtrl := controllers.NewSubmissionController(groq, fetcher)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", healthCtrl.Greeting)
	r.Mount("/hackthons", routes.HackathonRoutes(hackCtrl))
	r.Mount("/submissions", routes.SubmissionRoutes(subCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
