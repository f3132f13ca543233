package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/users"
)

// AuthMiddleware resolves the session cookie to a user and stores it in the
// request context. Unauthenticated requests get a JSON 401.
func AuthMiddleware(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("session_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		user, err := users.GetUserBySessionToken(context.Background(), db, token)
		if err != nil || user == nil {
			c.SetCookie("session_token", "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser reads the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) *users.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*users.User); ok {
			return u
		}
	}
	return nil
}
