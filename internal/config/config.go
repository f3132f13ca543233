package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Everything is env-driven so the same
// binary works locally and on the server.
type Config struct {
	DatabaseURL      string
	RedisAddr        string
	Addr             string
	CORSOrigin       string
	BaseURL          string
	NotificationsKey string

	Timezone      string
	LeagueBaseURL string
	CORSProxy     string
	TeamQuery     string
	TeamCode      string

	LeadTime time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("CORS_ORIGIN", "https://tym.catchers-sc.cz")
	v.SetDefault("BASE_URL", "https://tym.catchers-sc.cz")
	v.SetDefault("TIMEZONE", "Europe/Prague")
	v.SetDefault("LEAGUE_BASE_URL", "https://www.psmf.cz")
	v.SetDefault("CORS_PROXY", "")
	v.SetDefault("TEAM_QUERY", "Catchers+SC")
	v.SetDefault("TEAM_CODE", "catchers-sc")
	v.SetDefault("NOTIFICATION_LEAD_DAYS", 3)

	return &Config{
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		Addr:             v.GetString("ADDR"),
		CORSOrigin:       v.GetString("CORS_ORIGIN"),
		BaseURL:          v.GetString("BASE_URL"),
		NotificationsKey: v.GetString("NOTIFICATIONS_KEY"),
		Timezone:         v.GetString("TIMEZONE"),
		LeagueBaseURL:    v.GetString("LEAGUE_BASE_URL"),
		CORSProxy:        v.GetString("CORS_PROXY"),
		TeamQuery:        v.GetString("TEAM_QUERY"),
		TeamCode:         v.GetString("TEAM_CODE"),
		LeadTime:         time.Duration(v.GetInt("NOTIFICATION_LEAD_DAYS")) * 24 * time.Hour,
	}
}

// Location resolves the configured team timezone. Attendance deadlines and
// scraped kickoff times are always anchored to this zone, never to the host's
// local offset.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Fatalf("invalid TIMEZONE %q: %v", c.Timezone, err)
	}
	return loc
}
