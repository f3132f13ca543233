package main

import (
	"context"
	"log"
	"time"

	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/catchers-sc/teamapp/internal/cache"
	"github.com/catchers-sc/teamapp/internal/config"
	"github.com/catchers-sc/teamapp/internal/db"
	"github.com/catchers-sc/teamapp/internal/handlers"
	"github.com/catchers-sc/teamapp/internal/middleware"
	"github.com/catchers-sc/teamapp/internal/notification"
	"github.com/catchers-sc/teamapp/internal/psmf"
	"github.com/catchers-sc/teamapp/internal/worker"
)

func main() {
	cfg := config.Load()
	loc := cfg.Location()

	database := db.InitDB(cfg.DatabaseURL)
	defer database.Close()
	if err := db.EnsureSchema(context.Background(), database); err != nil {
		log.Fatalf("schema: %v", err)
	}

	mailer := notification.NewSMTPMailerFromEnv()

	var teamNameCache cache.Cache = cache.NoopCache{}
	if cfg.RedisAddr != "" {
		teamNameCache = cache.NewRedisCache(cfg.RedisAddr)
	}

	client := psmf.NewClient(cfg.LeagueBaseURL, cfg.CORSProxy, cfg.TeamQuery, cfg.TeamCode, loc)
	resolver := psmf.NewTeamNameResolver(client, teamNameCache)

	store := notification.PoolStore{DB: database}
	sweeper := &notification.Sweeper{
		Store:    store,
		Roster:   store,
		Mailer:   mailer,
		BaseURL:  cfg.BaseURL,
		LeadTime: cfg.LeadTime,
		Location: loc,
	}
	worker.StartReminderWorker(sweeper)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- PUBLIC ROUTES ---
	public := r.Group("/")
	{
		public.POST("/register", middleware.RateLimit(5, time.Minute), handlers.RegisterHandler(database))
		public.POST("/login", middleware.RateLimit(10, time.Minute), handlers.LoginHandler(database))
		public.GET("/logout", handlers.LogoutHandler(database))

		public.GET("/api/matches", handlers.ListMatchesHandler(database))
		public.GET("/api/matches/upcoming", handlers.UpcomingMatchesHandler(database))
		public.GET("/api/matches/:id", handlers.GetMatchHandler(database))
		public.GET("/api/matches/:id/attendance", handlers.AttendanceHandler(database, loc))
		public.GET("/api/fines", handlers.FinesHandler())
		public.GET("/api/leagues", handlers.LeaguesHandler(client))
		public.GET("/api/teams/:code/name", handlers.TeamNameHandler(resolver))
	}

	// Scheduled job endpoint, shared-secret guarded
	r.GET("/api/match-notifications",
		middleware.KeyAuth(cfg.NotificationsKey),
		handlers.MatchNotificationsHandler(sweeper))

	// --- PROTECTED ROUTES ---
	authorized := r.Group("/")
	authorized.Use(middleware.AuthMiddleware(database))
	{
		authorized.POST("/api/matches/:id/respond", handlers.RespondHandler(database))
		authorized.POST("/api/import", handlers.ImportMatchesHandler(database, client))
	}

	log.Printf("Listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
