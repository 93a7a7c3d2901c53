package middleware

import (
	"net/http"
	"strings"
	"time"

	"workhub-api/internal/auth"
	"workhub-api/internal/cache"
	"workhub-api/internal/database"
	"workhub-api/internal/models"

	"github.com/gin-gonic/gin"
)

// claimsCache memoizes validated bearer tokens until they expire. It holds
// identity claims only, never store rows.
var claimsCache = cache.New[string, *auth.Claims]()

// JWTAuthMiddleware validates the bearer token, resolves the current user row
// and injects it into the request context. Handlers thread the user through
// service calls explicitly; there is no ambient current-user state.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set: allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			c.Abort()
			return
		}

		claims, ok := claimsCache.Get(tokenString)
		if !ok {
			var err error
			claims, err = auth.ValidateToken(tokenString)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			if claims.ExpiresAt != nil {
				if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
					claimsCache.Set(tokenString, claims, ttl)
				}
			}
		}

		// Resolve the current user row; a token for a deleted user is rejected
		var user models.User
		if err := database.GetDB().Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User not found",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("currentUser", user)

		c.Next()
	}
}

// CurrentUser returns the authenticated user injected by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
