package middleware

import (
	"net/http"
	"strings"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the admin JWT from cookie or Authorization header
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := services.GetJWTService().VerifyAdminJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminUsername", claims.Username)

		c.Next()
	}
}

func GetAdminIDFromContext(c *gin.Context) (int64, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return 0, false
	}
	id, ok := adminID.(int64)
	return id, ok
}

func GetAdminUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("adminUsername")
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}
