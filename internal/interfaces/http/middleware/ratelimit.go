package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediticket/internal/infrastructure/ratelimit"
)

// RateLimit throttles requests per client IP. Redis being unavailable
// fails open rather than taking the service down with it.
func RateLimit(limiter *ratelimit.RedisRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			abortWithError(c, http.StatusTooManyRequests, "te veel verzoeken, probeer het later opnieuw")
			return
		}

		c.Next()
	}
}
