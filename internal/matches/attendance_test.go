package matches

import (
	"testing"
	"time"

	"github.com/catchers-sc/teamapp/internal/users"
)

func TestComputeDeadline(t *testing.T) {
	loc := praha(t)

	// Wednesday kickoff -> previous Sunday 23:59:59
	m := &Match{StartsAt: time.Date(2023, 3, 8, 18, 0, 0, 0, loc)}
	want := time.Date(2023, 3, 5, 23, 59, 59, 0, loc)
	if got := ComputeDeadline(m, loc); !got.Equal(want) {
		t.Errorf("deadline = %v, want %v", got, want)
	}

	// Sunday kickoff -> same day
	m = &Match{StartsAt: time.Date(2023, 3, 5, 10, 0, 0, 0, loc)}
	if got := ComputeDeadline(m, loc); !got.Equal(want) {
		t.Errorf("deadline for Sunday kickoff = %v, want %v", got, want)
	}

	// summer-time kickoff keeps the CEST offset
	m = &Match{StartsAt: time.Date(2023, 7, 12, 19, 0, 0, 0, loc)}
	want = time.Date(2023, 7, 9, 23, 59, 59, 0, loc)
	got := ComputeDeadline(m, loc)
	if !got.Equal(want) {
		t.Errorf("deadline = %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != 7200 {
		t.Errorf("July deadline offset = %d, want 7200", offset)
	}
}

func TestUnresponded_RosterOrder(t *testing.T) {
	loc := praha(t)
	roster := []users.User{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := &Match{
		StartsAt:  time.Date(2023, 3, 8, 18, 0, 0, 0, loc),
		Attendees: []PersonResult{{UserID: "a"}},
	}

	got := Unresponded(m, roster)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("unresponded = %+v", got)
	}
}

func TestUnresponded_AllListsCount(t *testing.T) {
	roster := []users.User{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := &Match{
		Attendees:      []PersonResult{{UserID: "a"}},
		NonAttendees:   []PersonResult{{UserID: "b"}},
		MaybeAttendees: []PersonResult{{UserID: "c"}},
	}
	if got := Unresponded(m, roster); len(got) != 0 {
		t.Errorf("unresponded = %+v", got)
	}
}

func TestIsLate_Monotonicity(t *testing.T) {
	loc := praha(t)
	m := &Match{StartsAt: time.Date(2023, 3, 8, 18, 0, 0, 0, loc)}
	deadline := ComputeDeadline(m, loc)

	m.ResultLog = []LogEntry{{
		PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(-time.Hour)},
		Type:         Attendee,
	}}
	if IsLate(m, "a", time.Now(), loc) {
		t.Error("response before the deadline must not be late")
	}

	m.ResultLog = []LogEntry{{
		PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(time.Second)},
		Type:         Attendee,
	}}
	if !IsLate(m, "a", time.Now(), loc) {
		t.Error("response after the deadline must be late")
	}
}

func TestIsLate_FirstResponseWins(t *testing.T) {
	loc := praha(t)
	m := &Match{StartsAt: time.Date(2023, 3, 8, 18, 0, 0, 0, loc)}
	deadline := ComputeDeadline(m, loc)

	// responded late first, then changed the answer in time for a later
	// edit; the first entry stays canonical
	m.ResultLog = []LogEntry{
		{PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(2 * time.Hour)}, Type: NonAttendee},
		{PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(-time.Hour)}, Type: Attendee},
	}
	first := FirstResponseLog(m, "a")
	if first == nil || first.Type != Attendee {
		t.Fatalf("first = %+v", first)
	}
	if IsLate(m, "a", time.Now(), loc) {
		t.Error("earliest entry is before the deadline, must not be late")
	}

	m.ResultLog = []LogEntry{
		{PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(time.Hour)}, Type: NonAttendee},
		{PersonResult: PersonResult{UserID: "a", ResultAt: deadline.Add(2 * time.Hour)}, Type: Attendee},
	}
	if !IsLate(m, "a", time.Now(), loc) {
		t.Error("earliest entry is after the deadline, must stay late")
	}
}

func TestIsLate_NeverResponded(t *testing.T) {
	loc := praha(t)
	m := &Match{StartsAt: time.Date(2023, 3, 8, 18, 0, 0, 0, loc)}
	deadline := ComputeDeadline(m, loc)

	if IsLate(m, "ghost", deadline.Add(-time.Hour), loc) {
		t.Error("pending user before the deadline is not late yet")
	}
	if !IsLate(m, "ghost", deadline.Add(time.Minute), loc) {
		t.Error("pending user after the deadline is overdue")
	}
}

func TestFirstResponseLog_NoEntry(t *testing.T) {
	m := &Match{ResultLog: []LogEntry{{PersonResult: PersonResult{UserID: "b"}}}}
	if got := FirstResponseLog(m, "a"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestWithoutUser(t *testing.T) {
	list := []PersonResult{{UserID: "a"}, {UserID: "b"}, {UserID: "a"}}
	got := withoutUser(list, "a")
	if len(got) != 1 || got[0].UserID != "b" {
		t.Errorf("got %+v", got)
	}
}
