package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/rolecache"
)

const roleTTL = 5 * time.Minute

// RequireRole gates a route group on the user's stored role. The role in
// the token is a snapshot from login time, so the guard checks the
// database — through the role cache, so it is not a read per request.
func RequireRole(db *gorm.DB, cache rolecache.Cache, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uint)
		key := fmt.Sprintf("role:%d", userID)

		role, ok := cache.Get(key)
		if !ok {
			var user models.User
			if err := db.First(&user, userID).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
				return
			}
			role = user.Role
			cache.Set(key, role, roleTTL)
		}

		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}

		c.Set(ContextUserRole, role)
		c.Next()
	}
}
