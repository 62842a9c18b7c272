package middleware

import (
	"net/http"

	"house-hunter-server/internal/auth"
	apperrors "house-hunter-server/internal/errors"

	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie carries the signed session token.
	AccessTokenCookie = "accessToken"

	claimsContextKey = "claims"
)

// AuthMiddleware is the access guard: it verifies the session-token cookie
// and puts the decoded identity claims into the request context. Every
// mutating route and every owner/renter-scoped read runs behind it.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified identity claims set by the guard.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
