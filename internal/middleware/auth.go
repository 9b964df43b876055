package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-api/internal/auth"
	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/store"
)

const ContextUser = "currentUser"

// Identity resolves the caller from the session cookie (or a Bearer token)
// and loads the matching user row into the request context. It never aborts:
// public procedures run fine with an anonymous caller.
func Identity(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
			tokenString = cookie
		} else if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.Next()
			return
		}

		openID, err := auth.ParseSessionToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.Next()
			return
		}

		user, err := st.GetUserByOpenID(c.Request.Context(), openID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireRole is the single authorization guard applied in front of every
// admin procedure.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Abort()
			httperr.Unauthorized(c, "unauthorized", "Unauthorized: sign-in required")
			return
		}
		if user.Role != role {
			c.Abort()
			httperr.Forbidden(c, "unauthorized", "Unauthorized: "+role+" access required")
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
