package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/catchers-sc/teamapp/internal/fines"
	"github.com/catchers-sc/teamapp/internal/matches"
	"github.com/catchers-sc/teamapp/internal/users"
)

// MatchStore is the slice of the match store the sweep needs.
type MatchStore interface {
	GetUpcoming(ctx context.Context, now time.Time) ([]matches.Match, error)
	MarkNotificationSent(ctx context.Context, matchID, userID string, n matches.Notification) error
}

// RosterStore supplies the users eligible to respond.
type RosterStore interface {
	GetRoster(ctx context.Context) ([]users.User, error)
}

// Sweeper runs the reminder sweep: find matches inside the lead window, find
// roster users who have not responded and were not reminded yet, compose and
// (when applying) send one mail per (match, user) pair.
type Sweeper struct {
	Store    MatchStore
	Roster   RosterStore
	Mailer   Sender
	BaseURL  string
	LeadTime time.Duration
	Location *time.Location
}

// SweepResult is the JSON body of the scheduled endpoint.
type SweepResult struct {
	Message string `json:"message"`
	Mails   []Mail `json:"mails"`
}

// MatchesDueForReminder filters to matches starting within lead of now.
func MatchesDueForReminder(upcoming []matches.Match, now time.Time, lead time.Duration) []matches.Match {
	var due []matches.Match
	for _, m := range upcoming {
		if m.StartsAt.Sub(now) < lead {
			due = append(due, m)
		}
	}
	return due
}

// RecipientsFor returns the unresponded roster users who have not been
// notified for this match yet.
func RecipientsFor(m *matches.Match, roster []users.User) []users.User {
	var recipients []users.User
	for _, user := range matches.Unresponded(m, roster) {
		if _, notified := m.NotificationsSent[user.ID]; !notified {
			recipients = append(recipients, user)
		}
	}
	return recipients
}

// Run executes one sweep. Matches and users are processed strictly
// sequentially; a failing send fails the run and the next run picks up where
// this one stopped, since notifications are recorded per pair only after a
// confirmed send.
func (s *Sweeper) Run(ctx context.Context, now time.Time, apply bool) (*SweepResult, error) {
	result := &SweepResult{Mails: []Mail{}}

	upcoming, err := s.Store.GetUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	roster, err := s.Roster.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	for _, match := range MatchesDueForReminder(upcoming, now, s.LeadTime) {
		for _, user := range RecipientsFor(&match, roster) {
			mail, err := s.sendAndRecord(ctx, &match, user, now, apply)
			if err != nil {
				return nil, err
			}
			result.Mails = append(result.Mails, mail)
		}
	}

	if apply {
		result.Message = "Match notifications have been updated"
	} else {
		result.Message = "Match notifications would have been updated if this was not a dry run. Add query param &apply=true to apply the changes."
	}
	return result, nil
}

// sendAndRecord composes the reminder and, when applying, sends it and marks
// the (match, user) pair as notified. The mark happens only after a
// successful send so a transient mail failure does not starve the user of a
// retry on the next run.
func (s *Sweeper) sendAndRecord(ctx context.Context, m *matches.Match, user users.User, now time.Time, apply bool) (Mail, error) {
	mail := s.ComposeReminder(m, user)
	if !apply {
		return mail, nil
	}
	if err := s.Mailer.Send(mail); err != nil {
		return mail, err
	}
	err := s.Store.MarkNotificationSent(ctx, m.ID, user.ID, matches.Notification{
		NotifiedAt: now,
		Email:      user.Email,
	})
	return mail, err
}

const buttonStyle = "display: inline-block;" +
	"padding: 0.5rem 1rem;" +
	"text-decoration: none;" +
	"background: #28a745;" +
	"color: white;" +
	"border-bottom: solid 1px #28a745;" +
	"border-radius: 0.3rem;"

// ComposeReminder builds the reminder mail for one unresponded user. Pure
// string templating, no I/O.
func (s *Sweeper) ComposeReminder(m *matches.Match, user users.User) Mail {
	deadline := matches.ComputeDeadline(m, s.Location)
	matchURL := fmt.Sprintf("%s/zapas/%s", s.BaseURL, m.ID)
	subject := fmt.Sprintf("Nevyjádřil ses k zápasu %s - %s - %s",
		formatDateTimeHumanized(m.StartsAt, s.Location), m.Opponent, m.Field)

	messageHTML := fmt.Sprintf(`Ahoj,<br/>
<br/>
<p>
	ještě ses nevyjádřil k zápasu, který se odehrává <strong>%s</strong><br/>
	a hraje se na hřišti <strong>%s</strong>.
</p>

<p>
	Hrajeme s týmem <strong>%s</strong>, tak nezapomeň, jinak dostaneš pokutu <em>%s</em>.
	Učiň tak nejpozději do půlnoci <strong>%s</strong>.
</p>
`,
		formatDateTimeHumanized(m.StartsAt, s.Location),
		m.Field,
		m.Opponent,
		fines.FormatAmount(fines.LateResponseFine),
		formatDateTimeHumanized(deadline, s.Location),
	)

	html := fmt.Sprintf(`%s
<a href="%s" style="%s" class="button">Vyjádřit se k zápasu</a>`, messageHTML, matchURL, buttonStyle)

	text := stripTags(messageHTML) + fmt.Sprintf("\n\nVyjádřit se k zápasu kliknutím na odkaz: %s", matchURL)

	return Mail{
		To:      []string{user.Email},
		Subject: subject,
		Text:    text,
		HTML:    html,
	}
}

var czechWeekdays = [...]string{"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota"}
var czechMonths = [...]string{"ledna", "února", "března", "dubna", "května", "června",
	"července", "srpna", "září", "října", "listopadu", "prosince"}

func formatDateTimeHumanized(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%s %d. %s %d %d:%02d",
		czechWeekdays[int(t.Weekday())], t.Day(), czechMonths[int(t.Month())-1], t.Year(), t.Hour(), t.Minute())
}

// stripTags flattens the HTML body into the plain-text alternative.
func stripTags(html string) string {
	replacer := strings.NewReplacer("<br/>", "\n", "</p>", "\n", "&nbsp;", " ")
	out := replacer.Replace(html)
	var b strings.Builder
	inTag := false
	for _, r := range out {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
