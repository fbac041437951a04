package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"creativestyle/config"
	"creativestyle/internal/app"
	"creativestyle/internal/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file loaded, using process environment", "error", envErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	a, err := app.New(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting",
			"port", cfg.Port,
			"store", cfg.Store.Driver,
			"events", a.Publisher.Enabled(),
		)
		log.Info("endpoints",
			"public", "GET /api/questions, POST /api/start, POST /api/submit-response, POST /api/complete/{id}, GET /api/results/{id}",
			"admin", "POST /api/admin/auth/login, GET /api/admin/submissions, GET /api/admin/stats, POST /api/admin/simulate, WS /api/admin/ws",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	a.Close(shutdownCtx)

	log.Info("server exited")
}
