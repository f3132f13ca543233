package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/matches"
	"github.com/catchers-sc/teamapp/internal/middleware"
	"github.com/catchers-sc/teamapp/internal/users"
)

func ListMatchesHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := matches.GetAllMatches(context.Background(), db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func UpcomingMatchesHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		upcoming, err := matches.GetUpcomingMatches(context.Background(), db, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, upcoming)
	}
}

func GetMatchHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		match, err := matches.GetMatch(context.Background(), db, c.Param("id"))
		if err != nil {
			status := http.StatusInternalServerError
			if strings.Contains(err.Error(), "was not found") {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, match)
	}
}

type respondRequest struct {
	Kind string `json:"kind" binding:"required,oneof=attendee nonAttendee maybeAttendee"`
	Note string `json:"note"`
}

// RespondHandler files the logged-in user's attendance answer for a match.
func RespondHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		var req respondRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := matches.Respond(context.Background(), db, c.Param("id"), *user, req.Note, matches.AttendeeType(req.Kind))
		if err != nil {
			status := http.StatusInternalServerError
			if strings.Contains(err.Error(), "was not found") {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "response recorded"})
	}
}

type attendanceStatus struct {
	User users.User `json:"user"`
	Late bool       `json:"late"`
}

// AttendanceHandler reports the deadline and, per roster user, whether they
// have responded yet and whether their response was (or would be) late.
func AttendanceHandler(db *pgxpool.Pool, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		match, err := matches.GetMatch(ctx, db, c.Param("id"))
		if err != nil {
			status := http.StatusInternalServerError
			if strings.Contains(err.Error(), "was not found") {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		roster, err := users.GetRoster(ctx, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		unresponded := make([]attendanceStatus, 0)
		for _, user := range matches.Unresponded(match, roster) {
			unresponded = append(unresponded, attendanceStatus{
				User: user,
				Late: matches.IsLate(match, user.ID, now, loc),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"deadline":    matches.ComputeDeadline(match, loc),
			"unresponded": unresponded,
		})
	}
}
