package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcserver "lolscope/api/grpc"
	"lolscope/api/middleware"
	"lolscope/api/modules"
	"lolscope/api/routes"
	"lolscope/fetcher/data"
	"lolscope/fetcher/requests"
	"lolscope/pkg/config"
	"lolscope/pkg/kvstore"
	"lolscope/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const (
	serviceName       = "api"
	shutdownTimeout   = 15 * time.Second
	logUploadInterval = time.Hour
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api stopped: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := logger.New(cfg.Server.LogLevel, os.Stdout)
	if err != nil {
		return err
	}
	defer appLogger.Close()

	if cfg.Bucket.LogUploadEnabled() {
		appLogger.WithBucket(cfg.Bucket)
	}
	log := appLogger.Logger

	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("couldn't open the store: %w", err)
	}
	defer store.Close()

	fetcher, err := data.NewMainFetcher(cfg.Riot, requests.NewClient(cfg.Riot, log))
	if err != nil {
		return err
	}

	module, err := modules.NewModule(ctx, &modules.ModuleDependencies{
		Config: cfg,
		Store:  store,
		Client: fetcher,
		Logger: log,
	})
	if err != nil {
		return err
	}

	limiter := middleware.NewClientLimiter(cfg.Server.ClientRateLimit, cfg.Server.ClientRateBurst)
	limiter.StartCleanup(time.Minute, ctx.Done())

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router, middleware.RequestID(log), middleware.RateLimit(limiter))
	router.SetupRoutes(
		module.PlayerHandler,
		module.FavoritesHandler,
		module.CacheHandler,
		module.HealthHandler,
	)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcListener, err := net.Listen("tcp", ":"+cfg.Server.GrpcPort)
	if err != nil {
		return fmt.Errorf("couldn't start the grpc listener: %w", err)
	}
	healthServer := grpcserver.NewHealthServer(log)

	serveErr := make(chan error, 2)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	go func() {
		if err := healthServer.Serve(grpcListener); err != nil {
			serveErr <- err
		}
	}()

	if cfg.Bucket.LogUploadEnabled() {
		go uploadLogs(ctx, appLogger)
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err = <-serveErr:
		log.Error().Err(err).Msg("server failed")
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	if cfg.Bucket.LogUploadEnabled() {
		if err := appLogger.UploadToS3Bucket(shutdownCtx, logger.ObjectKey(serviceName, time.Now())); err != nil {
			log.Error().Err(err).Msg("final log upload failed")
		}
	}

	return err
}

// uploadLogs archives the log file periodically.
func uploadLogs(ctx context.Context, appLogger *logger.Logger) {
	ticker := time.NewTicker(logUploadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			if err := appLogger.UploadToS3Bucket(ctx, logger.ObjectKey(serviceName, at)); err != nil {
				appLogger.Error().Err(err).Msg("log upload failed")
			}
		}
	}
}
