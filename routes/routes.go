package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/monitoring"
	"rozgaar-gb-server/services"
	"rozgaar-gb-server/websocket"
)

// Handler holds the services behind the HTTP API
type Handler struct {
	Workers *services.WorkerService
	Reviews *services.ReviewService
	Auth    *services.AuthService
	Blogs   *services.BlogService
	Contact *services.ContactService
	Media   *services.MediaService
	Hub     *websocket.Hub

	// Authenticator defaults to Auth when nil
	Authenticator middleware.Authenticator
	Admin         middleware.AdminChecker
	Limiter       *middleware.RateLimiter

	log *zap.Logger
}

// SetupRoutes registers all API routes on router
func SetupRoutes(router *gin.Engine, h *Handler, log *zap.Logger) {
	h.log = log.Named("routes")
	if h.Authenticator == nil && h.Auth != nil {
		h.Authenticator = h.Auth
	}
	if h.Limiter == nil {
		h.Limiter = middleware.NewRateLimiter()
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", monitoring.GinHandler())

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.RateLimitMiddleware(h.Limiter))
	{
		RegisterWorkerRoutes(apiV1, h)
		RegisterReviewRoutes(apiV1, h)
		RegisterAuthRoutes(apiV1, h)
		RegisterProfileRoutes(apiV1, h)
		RegisterBlogRoutes(apiV1, h)
		RegisterAdminRoutes(apiV1, h)
		RegisterContactRoutes(apiV1, h)
		RegisterCatalogRoutes(apiV1, h)
		RegisterReviewFeedRoutes(apiV1, h)
	}
}
