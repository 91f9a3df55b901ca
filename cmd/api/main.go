package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petcare-landing/internal/adapters/auth/odin"
	"petcare-landing/internal/adapters/auth/stub"
	"petcare-landing/internal/adapters/content/supabase"
	mem "petcare-landing/internal/adapters/storage/memory"
	pg "petcare-landing/internal/adapters/storage/postgres"
	"petcare-landing/internal/platform/config"
	"petcare-landing/internal/platform/logger"
	"petcare-landing/internal/platform/metrics"
	"petcare-landing/internal/ports/auth"
	"petcare-landing/internal/ports/kv"
	"petcare-landing/internal/router"
)

// @title PetCare Landing API
// @version 1.0
// @description Landing de PetCare: contenido con fallback, usuario actual y mascotas.
// @BasePath /
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Slots: Postgres si hay DSN, si no in-memory
	var slots kv.Store
	if cfg.DBDSN != "" {
		pool, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer pool.Close()

		store := pg.NewKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		slots = store
		log.Info("using postgres slot store", nil)
	} else {
		slots = mem.NewKV()
		log.Info("using in-memory slot store", nil)
	}

	// Verificador: Odin si está configurado, si no login stub con latencia simulada
	var verifier auth.CredentialVerifier = stub.NewVerifier(cfg.AuthDelay)
	if cfg.OdinConfigured() {
		verifier = odin.NewVerifier(odin.NewClient(odin.Config{
			BaseURL: cfg.OdinBaseURL,
			APIKey:  cfg.OdinAPIKey,
		}))
		log.Info("using odin credential verifier", nil)
	}

	source := supabase.NewClient(supabase.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseAnonKey,
		Timeout: cfg.ContentTimeout,
	})
	switch {
	case !cfg.SupabaseConfigured():
		log.Warn("supabase not configured, landing will use fallback content", nil)
	case !source.IsConfigured():
		log.Warn("invalid supabase url, landing will use fallback content", map[string]any{"url": cfg.SupabaseURL})
	}

	r := router.NewRouter(router.Options{
		KV:              slots,
		Verifier:        verifier,
		ContentSource:   source,
		ContentTimeout:  cfg.ContentTimeout,
		ContentCacheTTL: cfg.ContentCacheTTL,
		Logger:          log,
		Metrics:         metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}
