package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sTrAy74/swi-web/internal/adapters/cache"
	"github.com/sTrAy74/swi-web/internal/api/handlers"
	"github.com/sTrAy74/swi-web/internal/api/middleware"
	"github.com/sTrAy74/swi-web/internal/api/routes"
	"github.com/sTrAy74/swi-web/internal/domain/ports"
	"github.com/sTrAy74/swi-web/internal/gateway"
	redisclient "github.com/sTrAy74/swi-web/internal/infrastructure/clients/redis"
	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
	"github.com/sTrAy74/swi-web/pkg/config"
	"github.com/sTrAy74/swi-web/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	if cfg.Gateway.BaseURL == "" {
		logger.Fatal().Msg("GATEWAY_BASE_URL is required")
	}

	gw := gateway.NewClient(gateway.Config{
		BaseURL:    cfg.Gateway.BaseURL,
		Timeout:    cfg.Gateway.Timeout,
		Production: cfg.IsProduction(),
		Metrics:    metrics,
	})

	// Probe the gateway with backoff so a slow upstream start doesn't kill us.
	err = retry.Do(ctx, retry.DefaultConfig(), func() error {
		probeCtx, probeCancel := context.WithTimeout(ctx, cfg.Gateway.Timeout)
		defer probeCancel()
		return gw.Ping(probeCtx)
	}, func(attempt int, err error, nextDelay time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).Msg("gateway not reachable yet")
	})
	if err != nil {
		// Start anyway; requests will surface gateway errors to the client.
		logger.Error().Err(err).Msg("gateway unreachable at startup")
	} else {
		logger.Info().Str("base_url", cfg.Gateway.BaseURL).Msg("gateway reachable")
	}

	// Redis is optional: without it the app runs uncached.
	var cacheProvider ports.CacheProvider
	redisClient, err := redisclient.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("running without response cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis connected")
	}

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(
			cacheProvider,
			metrics,
			cfg.Search.ListCacheTTLSec,
			cfg.Search.ItemCacheTTLSec,
		)
	}

	router := routes.NewRouter(
		handlers.NewProviderHandler(gw, metrics),
		handlers.NewAuthHandler(gw),
		handlers.NewBookingHandler(gw),
		handlers.NewProfileHandler(gw),
		handlers.NewCalculatorHandler(),
		handlers.NewSearchStreamHandler(gw, metrics, cfg.Search.Debounce()),
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE streams stay open indefinitely
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
