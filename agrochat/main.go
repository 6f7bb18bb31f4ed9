package main

import (
	"agrochat/agrochat/config"
	"agrochat/agrochat/controllers"
	"agrochat/agrochat/middlewares"
	"agrochat/agrochat/routes"
	"agrochat/agrochat/services/sarvam"
	"agrochat/agrochat/sources/sqlite"
	"agrochat/agrochat/sources/sqlite/dao"
	"agrochat/agrochat/sources/storage"
	"agrochat/agrochat/utils/logging"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := sqlite.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	chatDAO := dao.NewChatDAO(db.DB)
	client := sarvam.NewClient(cfg)
	translateCtrl := controllers.NewTranslateController(client)
	chatCtrl := controllers.NewChatController(chatDAO, client, translateCtrl, cfg)

	// Audio archival is optional; without an endpoint the transcribe
	// flow simply skips it.
	var audioStore *storage.MinIOClient
	if cfg.MinIOEndpoint != "" {
		audioStore, err = storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
	}
	transcribeCtrl := controllers.NewTranscribeController(client, audioStore)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
	}))

	r.Mount("/api/v1", routes.APIRoutes(chatCtrl, translateCtrl, transcribeCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server starting", zap.String("addr", srv.Addr))
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
