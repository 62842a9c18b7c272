package middleware

import (
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors pushed onto the Gin context and returns a
// standardized response. Handlers that shape their own responses bypass it.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			appErr := apperrors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				RequestIDFromContext(c),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
		}
	}
}
