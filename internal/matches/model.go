package matches

import "time"

type AttendeeType string

const (
	Attendee      AttendeeType = "attendee"
	NonAttendee   AttendeeType = "nonAttendee"
	MaybeAttendee AttendeeType = "maybeAttendee"
)

// PersonResult is one user's current attendance answer. A user appears in at
// most one of the three current-state lists at a time.
type PersonResult struct {
	UserID   string    `json:"userId"`
	ResultAt time.Time `json:"resultAt"`
	Note     string    `json:"note,omitempty"`
}

// LogEntry is one entry of the append-only response log. Unlike the current
// lists, the log keeps every answer a user ever filed; it is the sole
// authoritative source for first-response times.
type LogEntry struct {
	PersonResult
	Type AttendeeType `json:"type"`
}

// Notification records that a reminder went out for a (match, user) pair.
// Entries are never cleared, which guarantees at-most-once delivery.
type Notification struct {
	NotifiedAt time.Time `json:"notifiedAt"`
	Email      string    `json:"email"`
}

type Match struct {
	ID                string                  `json:"id"`
	StartsAt          time.Time               `json:"startsAt"`
	Opponent          string                  `json:"opponent"`
	Tournament        string                  `json:"tournament,omitempty"`
	Group             string                  `json:"group,omitempty"`
	Field             string                  `json:"field"`
	Referees          []string                `json:"referees,omitempty"`
	Attendees         []PersonResult          `json:"attendees"`
	NonAttendees      []PersonResult          `json:"nonAttendees"`
	MaybeAttendees    []PersonResult          `json:"maybeAttendees"`
	ResultLog         []LogEntry              `json:"attendeesResultLog"`
	NotificationsSent map[string]Notification `json:"notificationsSent,omitempty"`
}
