package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"rozgaar-gb-server/config"
	"rozgaar-gb-server/database"
	"rozgaar-gb-server/i18n"
	"rozgaar-gb-server/jobs"
	"rozgaar-gb-server/logger"
	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/monitoring"
	"rozgaar-gb-server/routes"
	"rozgaar-gb-server/services"
	ws "rozgaar-gb-server/websocket"
)

const (
	shutdownTimeout      = 10 * time.Second
	tokenCleanupInterval = time.Hour
	limiterCleanupPeriod = 10 * time.Minute
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.GinMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg, zlog)
	if err != nil {
		return err
	}

	cache := newCache(ctx, cfg, zlog)
	monitoring.Init()

	// Repositories
	profiles := database.NewProfileRepository(db)
	reviews := database.NewReviewRepository(db)
	users := database.NewUserRepository(db)

	// Live review feed
	hub := ws.NewHub(zlog, cfg.Server.AllowedOrigins)
	go hub.Run(ctx)

	// Services
	gate := services.NewAdminGate(cfg.Admin.Email)
	jwtService := services.NewJWTService(cfg.JWT, users, zlog)
	authService := services.NewAuthService(users, jwtService, gate, zlog)

	var uploader services.Uploader
	if cfg.CloudinaryConfigured() {
		cld, err := services.NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			return err
		}
		uploader = cld
	} else {
		zlog.Warn("Cloudinary is not configured; photo uploads are disabled")
	}

	handler := &routes.Handler{
		Workers: services.NewWorkerService(profiles, reviews, cache, zlog),
		Reviews: services.NewReviewService(reviews, profiles, cache, hub, zlog),
		Auth:    authService,
		Blogs:   services.NewBlogService(database.NewBlogRepository(db), zlog),
		Contact: services.NewContactService(database.NewContactRepository(db), zlog),
		Media:   services.NewMediaService(uploader, zlog),
		Hub:     hub,
		Admin:   gate,
		Limiter: middleware.NewRateLimiter(),
	}
	handler.Limiter.StartCleanup(ctx, limiterCleanupPeriod)

	if err := seedAdmin(authService, cfg.Admin, zlog); err != nil {
		return err
	}

	cleanup := jobs.NewTokenCleanupJob(jwtService, tokenCleanupInterval, zlog)
	cleanup.Start()
	defer cleanup.Stop()

	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	defaultLang, ok := i18n.Parse(cfg.Locale.DefaultLanguage)
	if !ok {
		defaultLang = i18n.English
	}

	router := gin.New()
	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(
		middleware.Language(defaultLang),
		middleware.Recovery(zlog),
		middleware.RequestLogger(zlog),
		monitoring.MetricsMiddleware(),
		middleware.SecurityHeadersMiddleware(),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.InputValidationMiddleware(),
	)

	routes.SetupRoutes(router, handler, zlog)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache connects to Redis when REDIS_URL is set. A failed connection
// falls back to no caching so the API stays up.
func newCache(ctx context.Context, cfg *config.Config, zlog *zap.Logger) services.Cache {
	if cfg.Cache.RedisURL == "" {
		zlog.Info("REDIS_URL is not set; caching disabled")
		return services.NoopCache{}
	}

	client, err := database.NewRedisClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		zlog.Warn("redis unavailable; caching disabled", zap.Error(err))
		return services.NoopCache{}
	}
	return services.NewRedisCache(client, cfg.Cache.TTL)
}
