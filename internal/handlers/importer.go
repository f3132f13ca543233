package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/matches"
	"github.com/catchers-sc/teamapp/internal/psmf"
)

// ImportMatchesHandler runs one fixture import: scrape the league site, diff
// against stored matches and create/update as needed.
func ImportMatchesHandler(db *pgxpool.Pool, client *psmf.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		teamPagePath, err := client.FetchTeamPagePath(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		fixtures, err := client.FetchTeamFixtures(ctx, teamPagePath)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		existing, err := matches.GetAllMatches(ctx, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		classified := matches.Classify(existing, fixtures)
		added, updated, err := matches.Synchronize(ctx, db, classified)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(), "added": added, "updated": updated,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"added":     added,
			"updated":   updated,
			"unchanged": len(classified.Unchanged),
		})
	}
}
