package middleware

import (
	"strings"

	"github.com/estateops/estate-api/internal/auth/jwt"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key the validated claims are stored under.
const ClaimsKey = "claims"

func unauthorized(c *gin.Context) {
	i18n.Unauthorized("ErrorUnauthorized").Send(c)
	c.Abort()
}

// JWTAuthMiddleware creates a middleware that validates JWT access tokens
func JWTAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		// Check if the header has the Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		// Refresh tokens are not accepted here, only at the refresh endpoint
		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		// Add the claims to the context
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the JWT claims the auth middleware stored, or
// nil when the request was not authenticated.
func ClaimsFromContext(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}
