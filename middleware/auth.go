package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"taxi-analytics-api/models"
	"taxi-analytics-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserContextKey is where RequireAuth stores the resolved user.
const UserContextKey = "user"

const userCacheTTL = 30 * time.Second

// RequireAuth resolves the current active user from the Bearer token and
// aborts with 401 when the token is missing, invalid, revoked, or belongs
// to a missing/inactive account. User lookups are cached briefly in redis;
// a redis failure falls back to the database rather than locking users out.
func RequireAuth(authService *services.AuthService, db *gorm.DB, cache *services.CacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		ctx := c.Request.Context()

		revoked, err := cache.Exists(ctx, services.RevocationKey(tokenStr))
		if err != nil {
			log.Printf("revocation check failed: %v", err)
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}

		user, err := resolveUser(ctx, db, cache, claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account deactivated"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func resolveUser(ctx context.Context, db *gorm.DB, cache *services.CacheService, id uint) (models.User, error) {
	key := fmt.Sprintf("auth:user:%d", id)

	var user models.User
	if err := cache.Get(ctx, key, &user); err == nil && user.ID == id {
		return user, nil
	}

	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	go cache.Set(context.Background(), key, user, userCacheTTL)
	return user, nil
}
