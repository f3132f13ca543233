package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a team member. Player marks roster members eligible to respond to
// match attendance.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Player bool   `json:"player"`
}

// GetRoster returns the players eligible to respond, in a stable order.
func GetRoster(ctx context.Context, db *pgxpool.Pool) ([]User, error) {
	rows, err := db.Query(ctx, `
		SELECT id, email, name, player FROM users
		WHERE player = TRUE ORDER BY name, email
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Player); err != nil {
			return nil, err
		}
		roster = append(roster, u)
	}
	return roster, rows.Err()
}

// GetUserByEmail returns the user with the stored password hash, or nil when
// the email is unknown.
func GetUserByEmail(ctx context.Context, db *pgxpool.Pool, email string) (*User, string, error) {
	var u User
	var hash string
	err := db.QueryRow(ctx, `
		SELECT id, email, name, player, password_hash FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.Player, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &u, hash, nil
}

func CreateUser(ctx context.Context, db *pgxpool.Pool, email, name, passwordHash string, player bool) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, email, name, player, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, id, email, name, player, passwordHash)
	if err != nil {
		return "", fmt.Errorf("create user %s: %w", email, err)
	}
	return id, nil
}

func CreateSession(ctx context.Context, db *pgxpool.Pool, token, userID string) error {
	_, err := db.Exec(ctx, `INSERT INTO sessions (token, user_id) VALUES ($1, $2)`, token, userID)
	return err
}

func DeleteSession(ctx context.Context, db *pgxpool.Pool, token string) error {
	_, err := db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// GetUserBySessionToken resolves a session cookie to its user, or nil when
// the session does not exist.
func GetUserBySessionToken(ctx context.Context, db *pgxpool.Pool, token string) (*User, error) {
	var u User
	err := db.QueryRow(ctx, `
		SELECT u.id, u.email, u.name, u.player FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`, token).Scan(&u.ID, &u.Email, &u.Name, &u.Player)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
