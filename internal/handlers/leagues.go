package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catchers-sc/teamapp/internal/psmf"
)

// LeaguesHandler scrapes the league search page live and returns the leagues
// the team appears in.
func LeaguesHandler(client *psmf.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		leagues, err := client.FetchLeagues(context.Background())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, leagues)
	}
}

// TeamNameHandler resolves a team code to its display name, going through
// the persistent cache.
func TeamNameHandler(resolver *psmf.TeamNameResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := resolver.TeamName(context.Background(), psmf.TeamNameOptions{
			Tournament: c.Query("tournament"),
			Group:      c.Query("group"),
			Code:       c.Param("code"),
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": c.Param("code"), "name": name})
	}
}
