package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/nlitvin/pytrail/internal/api"
	"github.com/nlitvin/pytrail/internal/catalog"
	"github.com/nlitvin/pytrail/internal/config"
	dbstore "github.com/nlitvin/pytrail/internal/db"
	"github.com/nlitvin/pytrail/internal/middleware"
	"github.com/nlitvin/pytrail/internal/services"
	"github.com/nlitvin/pytrail/internal/session"
)

func main() {
	cfg := config.MustLoad()
	setupLogging(cfg)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("create database dir", "dir", dir, "err", err)
			os.Exit(1)
		}
	}
	sqlDB, err := sql.Open("sqlite3", dbstore.OpenDSN(cfg.DatabasePath))
	if err != nil {
		slog.Error("open database", "path", cfg.DatabasePath, "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := dbstore.RunMigrations(sqlDB, os.Getenv("PYTRAIL_MIGRATIONS_DIR")); err != nil {
		slog.Error("run migrations", "err", err)
		os.Exit(1)
	}
	store, err := dbstore.NewSQLiteStore(sqlDB)
	if err != nil {
		slog.Error("init sqlite store", "err", err)
		os.Exit(1)
	}

	sessStore, err := newSessionStore(cfg)
	if err != nil {
		slog.Error("init session store", "kind", cfg.SessionStoreKind, "err", err)
		os.Exit(1)
	}
	defer sessStore.Close()

	sessions := session.NewManager(sessStore, session.Options{
		TTL:          cfg.SessionTTL,
		SigningKey:   []byte(cfg.SessionSigningKey),
		CookieSecure: cfg.CookieSecure,
		CookieDomain: cfg.CookieDomain,
		SameSite:     cfg.SameSite(),
	})

	cat := catalog.Builtin()
	router := api.NewRouter(
		services.NewAuthService(store),
		services.NewCatalogService(cat),
		services.NewProgressService(store, cat),
		sessions,
		store,
		cfg.Environment,
	)

	mux := http.NewServeMux()
	router.Register(mux)
	if cfg.StaticDir != "" {
		mux.Handle("/", api.SPAHandler(cfg.StaticDir))
	}

	handler := middleware.CORS(cfg.AllowedOrigins)(
		middleware.SecureHeaders(middleware.NoStoreAPI(mux)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment,
			"session_store", cfg.SessionStoreKind, "modules", cat.Len())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-done
	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		slog.Error("shutdown", "err", err)
	}
}

func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionStoreKind == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return session.NewRedisStore(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return session.NewMemoryStore(session.DefaultMaxSessions)
}
