package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civicreporter/config"
	"civicreporter/geo"
	"civicreporter/logger"
	"civicreporter/middlewares"
	"civicreporter/models"
	"civicreporter/photos"
	"civicreporter/reporter"
	"civicreporter/routes"
	"civicreporter/session"
	"civicreporter/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg)
	ctx := context.Background()

	var counter middlewares.Counter = middlewares.NewMemoryCounter()
	redisClient, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		counter = middlewares.RedisCounter{Client: redisClient}
		slog.InfoContext(ctx, "issue rate limiter backed by redis", "address", cfg.Redis.Address)
	}

	verifier, err := session.NewBuiltinVerifier()
	if err != nil {
		slog.ErrorContext(ctx, "failed to prepare admin credentials", "error", err)
		os.Exit(1)
	}

	location := geo.NewRandomProvider(models.DefaultCenter, cfg.LocationDetectDelay)
	opts := []store.Option{store.WithCoordinates(location)}
	if cfg.SeedSampleData {
		opts = append(opts, store.WithIssues(store.SampleIssues()))
	}
	issues := store.NewIssueStore(opts...)
	slog.InfoContext(ctx, "issue store ready", "issues", issues.Len())

	app := reporter.New(issues, session.NewAdminSession(verifier), location)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, routes.Dependencies{
		Config:      cfg,
		Reporter:    app,
		Photos:      photos.NewStore(),
		RateCounter: counter,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, deps routes.Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(cors.New(corsConfig(cfg)))

	routes.Setup(router, deps)

	return router
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middlewares.RequestIDHeader)
	c.ExposeHeaders = []string{middlewares.RequestIDHeader}

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
		c.AllowCredentials = true
	}
	return c
}
