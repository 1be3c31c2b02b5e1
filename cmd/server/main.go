package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/teachthetutor/backend/internal/api"
	"github.com/teachthetutor/backend/internal/content"
	"github.com/teachthetutor/backend/internal/infrastructure/config"
	"github.com/teachthetutor/backend/internal/notify"
	"github.com/teachthetutor/backend/internal/store"
	"github.com/teachthetutor/backend/internal/tutor"

	_ "github.com/teachthetutor/backend/docs" // generated swagger docs
)

// @title           Teach-the-Tutor API
// @version         1.0
// @description     Adaptive tutoring engine — learn, quiz, and teach-back modes with per-concept mastery tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		// A missing or corrupt content file degrades to an empty catalog;
		// the agent can still hold a conversation and report progress.
		logger.Error("content load failed, starting with an empty catalog", "error", err)
		catalog, _ = content.New(nil)
	}

	db, err := store.NewSQLite(cfg.MasteryDBPath)
	if err != nil {
		logger.Error("failed to open mastery database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var notifier tutor.Notifier = notify.NewLog(logger)
	if cfg.VoiceWebhookURL != "" {
		wh := notify.NewWebhook(cfg.VoiceWebhookURL, logger)
		defer wh.Close()
		notifier = wh
	}

	handler := api.NewHandler(catalog, db, notifier, cfg.Curriculum, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "concepts", catalog.Len())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
