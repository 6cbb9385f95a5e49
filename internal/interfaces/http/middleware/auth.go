package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mediticket/internal/infrastructure/auth"
	"mediticket/internal/shared/logger"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireStaff gates a route behind the staff bearer token. A missing
// or malformed header is 401; a well-formed token that fails
// verification for any reason other than an unknown subject is also
// 401. An unknown subject is 403: the caller proved possession of a
// signed token that simply is not the staff principal.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "missing authorization token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			if errors.Is(err, auth.ErrUnknownSubject) {
				abortWithError(c, http.StatusForbidden, "token subject is not permitted")
				return
			}
			abortWithError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set("staff_username", claims.Subject)
		c.Next()
	}
}
