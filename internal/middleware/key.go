package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeyAuth guards the scheduled-job endpoint with a shared secret passed as
// the key query parameter. A missing or mismatched key gets 401 and no
// processing happens.
func KeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
