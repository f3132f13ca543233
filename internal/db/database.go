package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDB(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("Unable to parse DATABASE_URL: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	fmt.Println("Connected to Database")
	return pool
}

// EnsureSchema creates the tables the app needs if they do not exist yet.
// Attendance lists, the response log and the notification map are stored as
// JSONB documents on the match row.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			starts_at TIMESTAMPTZ NOT NULL,
			opponent TEXT NOT NULL,
			tournament TEXT NOT NULL DEFAULT '',
			group_name TEXT NOT NULL DEFAULT '',
			field TEXT NOT NULL DEFAULT '',
			referees JSONB NOT NULL DEFAULT '[]',
			attendees JSONB NOT NULL DEFAULT '[]',
			non_attendees JSONB NOT NULL DEFAULT '[]',
			maybe_attendees JSONB NOT NULL DEFAULT '[]',
			result_log JSONB NOT NULL DEFAULT '[]',
			notifications_sent JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			player BOOLEAN NOT NULL DEFAULT FALSE,
			password_hash TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
