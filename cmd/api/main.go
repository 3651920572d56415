package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wishlane-app/wishlane-backend/api/routes"
	"github.com/wishlane-app/wishlane-backend/internal/auth"
	"github.com/wishlane-app/wishlane-backend/internal/catalog"
	"github.com/wishlane-app/wishlane-backend/internal/social"
	"github.com/wishlane-app/wishlane-backend/internal/users"
	"github.com/wishlane-app/wishlane-backend/internal/wishlists"
	"github.com/wishlane-app/wishlane-backend/pkg/auth/session"
	"github.com/wishlane-app/wishlane-backend/pkg/config"
	"github.com/wishlane-app/wishlane-backend/pkg/db"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
	"github.com/wishlane-app/wishlane-backend/pkg/metrics"
	"github.com/wishlane-app/wishlane-backend/pkg/migrate"
	"github.com/wishlane-app/wishlane-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT.AccessTokenTTL())
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	wishlistRepo := wishlists.NewRepository(dbClient.DB())
	socialRepo := social.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		ProfileRepo:    userRepo,
		Invites:        wishlistRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlists.NewService(wishlists.ServiceParams{
		Repo:     wishlistRepo,
		Profiles: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlists service", err)
		os.Exit(1)
	}

	socialService, err := social.NewService(social.ServiceParams{
		Repo:     socialRepo,
		Items:    wishlistRepo,
		Profiles: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create social service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Config: cfg.Catalog,
		Cache:  redisClient,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:          cfg,
			Logger:          logg,
			DBPinger:        dbClient,
			RedisPinger:     redisClient,
			Sessions:        sessionManager,
			AuthService:     authService,
			WishlistService: wishlistService,
			CatalogService:  catalogService,
			SocialService:   socialService,
			Metrics:         httpMetrics,
			MetricsGatherer: registry,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
