package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"mediticket/internal/domain/audit"
	"mediticket/internal/shared/goroutine"
	"mediticket/internal/shared/logger"
)

const auditWriteTimeout = 5 * time.Second

// Audit writes one audit row per completed request. The write runs off
// the request goroutine and its failure is logged at debug and
// dropped; auditing never fails or delays a response.
func Audit(repo audit.Repository, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := audit.NewEntry(
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			c.Request.UserAgent(),
		)

		goroutine.SafeGo(log, "audit-write", func() {
			ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
			defer cancel()

			if err := repo.Save(ctx, entry); err != nil {
				log.Debugw("audit write failed", "path", entry.Path(), "error", err)
			}
		})
	}
}
