package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"filedrop-api/internal/infrastructure/jwt"
)

const (
	CtxAdminRole = "adminRole"
	CtxAdminID   = "adminID"

	roleAdmin = "admin"
)

// AdminAuth admits only bearers of a session token carrying the admin role.
func AdminAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		if claims.Role != roleAdmin {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "admin role required"},
			)
			return
		}

		c.Set(CtxAdminRole, claims.Role)
		c.Set(CtxAdminID, claims.AdminID)

		c.Next()
	}
}
