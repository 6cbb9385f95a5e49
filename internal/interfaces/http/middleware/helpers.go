package middleware

import (
	"github.com/gin-gonic/gin"

	"mediticket/internal/shared/utils"
)

func abortWithError(c *gin.Context, statusCode int, message string) {
	utils.ErrorResponse(c, statusCode, message)
	c.Abort()
}
