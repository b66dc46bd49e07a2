package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-leaderboard/internal/adapter"
	"github.com/feral-file/ff-leaderboard/internal/api/rest"
	"github.com/feral-file/ff-leaderboard/internal/api/server"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/auth"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/executor"
	"github.com/feral-file/ff-leaderboard/internal/cache"
	"github.com/feral-file/ff-leaderboard/internal/config"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/ratelimit"
	"github.com/feral-file/ff-leaderboard/internal/requestlog"
	"github.com/feral-file/ff-leaderboard/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Leaderboard API")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database.DSN(), cfg.Database.ConnectTimeout)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err),
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Redis backs the response cache and the shared login limiter. Without it the
	// API serves uncached responses and limits logins per process.
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.WarnCtx(ctx, "Redis unavailable, running without response cache", zap.Error(err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("Failed to close redis client", zap.Error(err))
				}
			}()
			logger.InfoCtx(ctx, "Connected to redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	var responseCache cache.Cache
	var distributedLimiter adapter.RedisRateLimiter
	if redisClient != nil {
		if cfg.Cache.Enabled {
			responseCache = cache.New(redisClient, clock, cfg.Cache)
		}
		distributedLimiter = redisClient.NewRateLimiter()
	}

	loginLimiter, err := ratelimit.NewLimiter(cfg.RateLimit.LoginPerMinute, distributedLimiter, clock)
	if err != nil {
		logger.Fatal("Failed to create login rate limiter", zap.Error(err))
	}

	// Cohort comparison anchors used when the event calendar is incomplete
	valueFactorAnchors, err := executor.NewAnchorPair(cfg.Analytics.ValueFactorBaseDate, cfg.Analytics.ValueFactorTargetDate)
	if err != nil {
		logger.Fatal("Invalid value factor anchor dates", zap.Error(err))
	}
	combinedAnchors, err := executor.NewAnchorPair(cfg.Analytics.CombinedBaseDate, cfg.Analytics.CombinedTargetDate)
	if err != nil {
		logger.Fatal("Invalid combined performance anchor dates", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	exec := executor.NewExecutor(dataStore, tokens, executor.Options{
		ValueFactorAnchors:      valueFactorAnchors,
		CombinedAnchors:         combinedAnchors,
		BootstrapFromConsultant: cfg.Auth.BootstrapFromConsultant,
	})

	var recorder requestlog.Recorder
	if cfg.RequestLog.Enabled {
		recorder = requestlog.NewRecorder(dataStore, cfg.RequestLog)
	}

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	srv := server.New(serverConfig, exec, rest.RouteConfig{
		Tokens:       tokens,
		Users:        exec,
		Cache:        responseCache,
		LoginLimiter: loginLimiter,
	}, recorder, clock)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	// Drain pending request log rows after the server stops accepting requests
	if recorder != nil {
		recorder.Close()
	}

	logger.Info("API server stopped")
}

// connectRedis pings redis with a short exponential backoff
func connectRedis(ctx context.Context, cfg config.RedisConfig) (adapter.RedisClient, error) {
	client := adapter.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second

	operation := func() error {
		return client.Ping(ctx)
	}
	notifyOnError := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Redis not reachable, retrying",
			zap.Error(err),
			zap.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
