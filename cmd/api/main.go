package main

import (
	"context"
	"doclib/internal/adapters/handlers/http/chi"
	"doclib/internal/adapters/handlers/http/chi/v1/importwiz"
	"doclib/internal/adapters/handlers/http/chi/v1/view"
	"doclib/internal/adapters/repository/postgres"
	"doclib/internal/adapters/storage/minio"
	"doclib/internal/adapters/video"
	"doclib/internal/config"
	"doclib/internal/core/port"
	"doclib/internal/core/service/cleanup"
	"doclib/internal/core/service/favorite"
	"doclib/internal/core/service/metadata"
	"doclib/internal/core/service/wizard"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	unitOfWork := postgres.NewUnitOfWork(db)

	//services
	metadataService := metadata.NewMetadataService(unitOfWork, cfg.Favorite, logger)
	resolver := video.NewOEmbedResolver(cfg.Video, logger)
	views := favorite.NewViews(metadataService, cfg.Favorite, logger)
	imports := wizard.NewRegistry(minioAdapter, unitOfWork, resolver, metadataService, cfg.Upload, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, minioAdapter, imports, cfg.Upload, logger)

	//http
	viewHandler := view.NewViewHandlerV1(views, metadataService, logger)
	importHandler := importwiz.NewImportHandlerV1(imports, logger)

	router := chi.NewRouter(logger, viewHandler, importHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	// abandoned imports delete their uncommitted objects, views drop their pending writes
	imports.CloseAll()
	views.CloseAll()

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.UploadConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.CleanupEvery)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.CleanupEvery, "ttl", cfg.ProvisionalTTL)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.CleanupOrphanedUploads(ctx, time.Now().Add(-cfg.ProvisionalTTL))
			if err != nil {
				logger.Error("failed to cleanup orphaned uploads", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
