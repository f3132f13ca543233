package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/catchers-sc/teamapp/internal/notification"
)

// MatchNotificationsHandler runs the reminder sweep. With apply=true it sends
// and records; otherwise it is a dry run returning the mails that would go
// out. The route is guarded by middleware.KeyAuth.
func MatchNotificationsHandler(sweeper *notification.Sweeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		apply := c.Query("apply") == "true"
		result, err := sweeper.Run(context.Background(), time.Now(), apply)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
