package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxguide/api/internal/app"
	"taxguide/api/internal/archive"
	"taxguide/api/internal/cache"
	"taxguide/api/internal/config"
	"taxguide/api/internal/content"
	"taxguide/api/internal/export"
	"taxguide/api/internal/gitlog"
	"taxguide/api/internal/search"
	"taxguide/api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	pgStore := store.NewPostgresStore(db)
	tree := content.NewManager()

	opts := app.Options{
		Exporter: export.NewService(pgStore, tree),
	}

	if cfg.MeiliURL != "" {
		meili := search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
		defer meili.Close()
		searchSvc := search.NewService(meili, tree)
		meili.OnRecover(searchSvc.SyncTree)
		opts.Search = searchSvc
	}

	if cfg.RedisURL != "" {
		comparisonCache, err := cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Printf("redis unavailable, comparison caching disabled: %v", err)
		} else {
			defer comparisonCache.Close()
			opts.Cache = comparisonCache
		}
	}

	if cfg.GuideLogDir != "" {
		opts.AuditLog = gitlog.New(cfg.GuideLogDir)
	}

	if cfg.MinioEndpoint != "" {
		uploader, err := archive.New(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Printf("object store unavailable, export archiving disabled: %v", err)
		} else {
			opts.Archive = uploader
		}
	}

	service := app.New(pgStore, tree, opts)
	if err := service.Bootstrap(ctx); err != nil {
		log.Printf("bootstrap: %v", err)
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
