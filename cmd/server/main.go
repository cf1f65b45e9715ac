// @title                       Hospital API
// @version                     1.0
// @description                 Hospital administration API: accounts, sessions and the department/doctor/operation registry.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/api"
	"github.com/ligonine/hospital-system/internal/api/handler"
	"github.com/ligonine/hospital-system/internal/core/service"
	"github.com/ligonine/hospital-system/internal/infrastructure/config"
	"github.com/ligonine/hospital-system/internal/infrastructure/db/mongo"
	"github.com/ligonine/hospital-system/internal/infrastructure/db/postgres"
	"github.com/ligonine/hospital-system/internal/infrastructure/db/redis"
	"github.com/ligonine/hospital-system/internal/infrastructure/security"
	"github.com/ligonine/hospital-system/internal/infrastructure/worker"
	"github.com/ligonine/hospital-system/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "hospital-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// 1. Storage
	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		return err
	}
	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxOpenConns: cfg.Postgres.MaxOpenConns})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Msg("postgres connection established")

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = mongo.Disconnect(mongoClient) }()

	departments := mongo.NewDepartmentRepository(mongoDB)
	doctors := mongo.NewDoctorRepository(mongoDB)
	operations := mongo.NewOperationRepository(mongoDB)
	if err := departments.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := doctors.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := operations.EnsureIndexes(ctx); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connection established")

	redisClient, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connection established")

	// 2. Repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	sessionCache := redis.NewSessionCache(redisClient, sessionRepo, cfg.Sessions.CacheTTL, log)

	// 3. Services
	tokens := security.NewTokenService(security.TokenConfig{
		Secret:    cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
		Audience:  cfg.Auth.Audience,
		AccessTTL: cfg.Auth.AccessTokenTTL,
	})
	hasher := security.NewHasher(0)

	if err := service.SeedAdmin(ctx, userRepo, hasher, service.AdminSeed{
		UserName: cfg.Admin.UserName,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,

		GeneratedPasswordOut: os.Stderr,
	}, log); err != nil {
		return err
	}

	authService := service.NewAuthService(userRepo, service.NewSessionStore(sessionCache), tokens, hasher, service.AuthConfig{
		RefreshTTL:         cfg.Auth.RefreshTokenTTL,
		UniformLoginErrors: cfg.Auth.UniformLoginErrors,
	}, log)
	hospitalService := service.NewHospitalService(departments, doctors, operations, log)

	// 4. Background work
	cleanup := worker.NewSessionCleanup(sessionRepo, cfg.Sessions.CleanupInterval, cfg.Sessions.Retention, log)
	cleanupDone := cleanup.Start(ctx)

	// 5. HTTP
	e := api.NewRouter(api.RouterDeps{
		Auth:     authService,
		Hospital: hospitalService,
		Health: map[string]handler.DependencyCheck{
			"postgres": db.PingContext,
			"mongodb":  mongo.Pinger(mongoClient),
			"redis":    redis.Pinger(redisClient),
		},
		Cookie:       handler.CookieConfig{Secure: cfg.Auth.CookieSecure, Domain: cfg.Auth.CookieDomain},
		AllowOrigins: cfg.CORSAllowedOrigins,
		Logger:       log,
	})
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("API server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}
	log.Info().Msg("shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-cleanupDone

	log.Info().Msg("server stopped gracefully")
	return nil
}
