package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloggy-app/bloggy-backend/internal/response"
	"github.com/bloggy-app/bloggy-backend/internal/user"
	"github.com/bloggy-app/bloggy-backend/internal/utils"
)

// AuthRequired validates the session token (Bearer header first, cookie as
// fallback), loads the matching user and attaches it to the context.
func AuthRequired(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(utils.AuthCookieName); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		userID, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		var u user.User
		if err := db.First(&u, userID).Error; err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		c.Set("user_id", u.ID)
		c.Set("user", &u)
		c.Next()
	}
}
