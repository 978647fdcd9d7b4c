package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zerozero/zerozero/internal/domain/auth"
	"github.com/zerozero/zerozero/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		public := api.Group("", optionalAuthMiddleware(authSvc))
		{
			public.GET("/zone", handler.Zone)
			public.GET("/impact", handler.Impact)
			public.GET("/impact/:journey", handler.JourneyImpact)
			public.POST("/events", handler.CaptureEvent)
		}
		api.POST("/zone/preview", handler.ZonePreview)
		api.POST("/impact/preview", handler.ImpactPreview)
		api.GET("/events/trending", handler.TrendingEvents)

		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/refresh", handler.Refresh)
		api.GET("/auth/google", handler.GoogleLogin)
		api.GET("/auth/google/callback", handler.GoogleCallback)

		authed := api.Group("", authMiddleware(authSvc))
		{
			authed.GET("/me", handler.Profile)
			authed.PATCH("/me", handler.UpdateProfile)
			authed.POST("/auth/logout", handler.Logout)

			authed.GET("/answers", handler.AllAnswers)
			authed.GET("/answers/:journey", handler.JourneyAnswers)
			authed.PUT("/answers/:journey", handler.SaveAnswers)
			authed.DELETE("/answers/:journey", handler.ResetJourney)

			authed.GET("/likes", handler.Likes)
			authed.PUT("/likes/:cardId", handler.Like)
			authed.DELETE("/likes/:cardId", handler.Unlike)
		}
	}

	internal := router.Group("/internal", ingestTokenMiddleware(cfg.Scraped.IngestToken))
	{
		internal.POST("/scraped/:journey", handler.IngestScraped)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

// ingestTokenMiddleware guards the scraper endpoints with a shared token.
// When no token is configured the endpoints are disabled outright.
func ingestTokenMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "ingest_disabled", "scraped ingest is not configured", nil))
			return
		}
		supplied := c.GetHeader("X-Ingest-Token")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "invalid ingest token", nil))
			return
		}
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
