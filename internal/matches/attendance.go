package matches

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/users"
)

// ComputeDeadline returns the response cutoff for a match: 23:59:59 on the
// Sunday on or before the match date, in the team timezone. The weekday
// anchor is a team policy constant.
func ComputeDeadline(m *Match, loc *time.Location) time.Time {
	kickoff := m.StartsAt.In(loc)
	sunday := kickoff.AddDate(0, 0, -int(kickoff.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, loc)
}

// Unresponded returns the roster users who appear in none of the three
// current-state lists, in roster order.
func Unresponded(m *Match, roster []users.User) []users.User {
	responded := make(map[string]bool)
	for _, lists := range [][]PersonResult{m.Attendees, m.NonAttendees, m.MaybeAttendees} {
		for _, person := range lists {
			responded[person.UserID] = true
		}
	}
	var out []users.User
	for _, user := range roster {
		if !responded[user.ID] {
			out = append(out, user)
		}
	}
	return out
}

// FirstResponseLog returns the user's earliest response-log entry, or nil if
// they never responded. The log, not the current lists, is canonical for
// lateness: a user who answered late once stays late even after changing
// their answer.
func FirstResponseLog(m *Match, userID string) *LogEntry {
	var first *LogEntry
	for i := range m.ResultLog {
		entry := &m.ResultLog[i]
		if entry.UserID != userID {
			continue
		}
		if first == nil || entry.ResultAt.Before(first.ResultAt) {
			first = entry
		}
	}
	return first
}

// IsLate reports whether the user's first response came after the match
// deadline. A user who never responded is evaluated against now, so the UI
// can flag still-pending users as overdue once the deadline passes.
func IsLate(m *Match, userID string, now time.Time, loc *time.Location) bool {
	deadline := ComputeDeadline(m, loc)
	if first := FirstResponseLog(m, userID); first != nil {
		return first.ResultAt.After(deadline)
	}
	return now.After(deadline)
}

// Respond files an attendance answer. The match is re-fetched immediately
// before mutating to reduce clobbering of concurrent responses; the last
// write wins. The user is removed from all current-state lists, added to the
// list matching kind, and the same payload is appended to the response log.
func Respond(ctx context.Context, db *pgxpool.Pool, matchID string, user users.User, note string, kind AttendeeType) error {
	m, err := GetMatch(ctx, db, matchID)
	if err != nil {
		return err
	}

	attendees := withoutUser(m.Attendees, user.ID)
	nonAttendees := withoutUser(m.NonAttendees, user.ID)
	maybeAttendees := withoutUser(m.MaybeAttendees, user.ID)

	result := PersonResult{UserID: user.ID, ResultAt: time.Now(), Note: note}
	switch kind {
	case Attendee:
		attendees = append(attendees, result)
	case NonAttendee:
		nonAttendees = append(nonAttendees, result)
	case MaybeAttendee:
		maybeAttendees = append(maybeAttendees, result)
	}

	log := append(m.ResultLog, LogEntry{PersonResult: result, Type: kind})
	return ReplaceAttendance(ctx, db, matchID, attendees, nonAttendees, maybeAttendees, log)
}

func withoutUser(list []PersonResult, userID string) []PersonResult {
	out := make([]PersonResult, 0, len(list))
	for _, person := range list {
		if person.UserID != userID {
			out = append(out, person)
		}
	}
	return out
}
