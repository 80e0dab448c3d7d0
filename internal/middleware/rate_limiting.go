package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/config"
)

// RateLimitMiddleware limits request rate per client IP. Health and metrics
// probes are never limited.
func RateLimitMiddleware(cfg *config.Config, manager *RateLimitManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil || shouldBypassRateLimit(c.Request.URL.Path) {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(
			c.ClientIP(),
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			cfg.RateLimitBurst,
		)
		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func shouldBypassRateLimit(path string) bool {
	switch path {
	case "/health", "/metrics":
		return true
	}
	return false
}
