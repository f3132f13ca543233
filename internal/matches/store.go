package matches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/psmf"
)

const matchColumns = `id, starts_at, opponent, tournament, group_name, field,
	referees, attendees, non_attendees, maybe_attendees, result_log, notifications_sent`

// GetAllMatches returns every stored match ordered by kickoff.
func GetAllMatches(ctx context.Context, db *pgxpool.Pool) ([]Match, error) {
	rows, err := db.Query(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY starts_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMatches(rows)
}

// GetUpcomingMatches returns matches starting after now, soonest first.
func GetUpcomingMatches(ctx context.Context, db *pgxpool.Pool, now time.Time) ([]Match, error) {
	rows, err := db.Query(ctx, `SELECT `+matchColumns+` FROM matches WHERE starts_at > $1 ORDER BY starts_at ASC`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMatches(rows)
}

// GetMatch loads one match by id. A missing id is an error: callers always
// reference matches they just read.
func GetMatch(ctx context.Context, db *pgxpool.Pool, id string) (*Match, error) {
	row := db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("match %s was not found", id)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMatch inserts a new match seeded from a scraped fixture. Attendance
// fields start empty.
func CreateMatch(ctx context.Context, db *pgxpool.Pool, f psmf.Fixture) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(ctx, `
		INSERT INTO matches (id, starts_at, opponent, tournament, group_name, field)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, f.StartsAt, f.Opponent, f.Tournament, f.Group, f.Field)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateMatchSchedule patches only the scheduling fields of an existing
// match. Attendance lists and the response log are never touched here.
func UpdateMatchSchedule(ctx context.Context, db *pgxpool.Pool, id string, f psmf.Fixture) error {
	tag, err := db.Exec(ctx, `
		UPDATE matches SET starts_at = $2, tournament = $3, group_name = $4, field = $5
		WHERE id = $1
	`, id, f.StartsAt, f.Tournament, f.Group, f.Field)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s was not found", id)
	}
	return nil
}

// ReplaceAttendance overwrites the three current-state lists and the response
// log in one statement.
func ReplaceAttendance(ctx context.Context, db *pgxpool.Pool, id string, attendees, nonAttendees, maybeAttendees []PersonResult, log []LogEntry) error {
	attJSON, err := marshalList(attendees)
	if err != nil {
		return err
	}
	nonJSON, err := marshalList(nonAttendees)
	if err != nil {
		return err
	}
	maybeJSON, err := marshalList(maybeAttendees)
	if err != nil {
		return err
	}
	logJSON, err := json.Marshal(log)
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, `
		UPDATE matches SET attendees = $2, non_attendees = $3, maybe_attendees = $4, result_log = $5
		WHERE id = $1
	`, id, attJSON, nonJSON, maybeJSON, logJSON)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s was not found", id)
	}
	return nil
}

// MarkNotificationSent records that a reminder went out for (match, user).
// The entry merges into the notifications map and is never cleared.
func MarkNotificationSent(ctx context.Context, db *pgxpool.Pool, id, userID string, n Notification) error {
	fragment, err := json.Marshal(map[string]Notification{userID: n})
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, `
		UPDATE matches SET notifications_sent = notifications_sent || $2::jsonb
		WHERE id = $1
	`, id, fragment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s was not found", id)
	}
	return nil
}

func marshalList(list []PersonResult) ([]byte, error) {
	if list == nil {
		list = []PersonResult{}
	}
	return json.Marshal(list)
}

func collectMatches(rows pgx.Rows) ([]Match, error) {
	var out []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func scanMatch(row pgx.Row) (*Match, error) {
	var m Match
	var referees, attendees, nonAttendees, maybeAttendees, resultLog, notificationsSent []byte
	err := row.Scan(&m.ID, &m.StartsAt, &m.Opponent, &m.Tournament, &m.Group, &m.Field,
		&referees, &attendees, &nonAttendees, &maybeAttendees, &resultLog, &notificationsSent)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(referees, &m.Referees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attendees, &m.Attendees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(nonAttendees, &m.NonAttendees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(maybeAttendees, &m.MaybeAttendees); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resultLog, &m.ResultLog); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(notificationsSent, &m.NotificationsSent); err != nil {
		return nil, err
	}
	return &m, nil
}
