package matches

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/psmf"
)

// FixtureUpdate pairs a scraped fixture with the stored match it supersedes.
type FixtureUpdate struct {
	MatchID string
	Fixture psmf.Fixture
}

// Classified partitions one scrape run against the stored matches.
type Classified struct {
	ToAdd     []psmf.Fixture
	ToUpdate  []FixtureUpdate
	Unchanged []psmf.Fixture
}

// SameFixture reports whether a stored match and a scraped fixture describe
// the same scheduling. Timestamps compare exactly; even one second of drift
// counts as changed.
func SameFixture(existing Match, scraped psmf.Fixture) bool {
	return existing.Field == scraped.Field &&
		existing.StartsAt.Equal(scraped.StartsAt) &&
		existing.Opponent == scraped.Opponent &&
		existing.Tournament == scraped.Tournament &&
		existing.Group == scraped.Group
}

// Classify matches each scraped fixture to a stored match by opponent code.
// Precondition: at most one currently-relevant stored match exists per
// opponent; the first stored match with a matching opponent wins.
func Classify(existing []Match, scraped []psmf.Fixture) Classified {
	var c Classified
	for _, fixture := range scraped {
		match := findByOpponent(existing, fixture.Opponent)
		switch {
		case match == nil:
			c.ToAdd = append(c.ToAdd, fixture)
		case SameFixture(*match, fixture):
			c.Unchanged = append(c.Unchanged, fixture)
		default:
			c.ToUpdate = append(c.ToUpdate, FixtureUpdate{MatchID: match.ID, Fixture: fixture})
		}
	}
	return c
}

// Synchronize applies a classification to the store, one fixture at a time.
// There is no transaction across fixtures: a failure partway leaves earlier
// fixtures committed, and the next run reclassifies them as unchanged.
func Synchronize(ctx context.Context, db *pgxpool.Pool, c Classified) (added, updated int, err error) {
	for _, fixture := range c.ToAdd {
		if _, err := CreateMatch(ctx, db, fixture); err != nil {
			return added, updated, fmt.Errorf("create match against %s: %w", fixture.Opponent, err)
		}
		added++
	}
	for _, update := range c.ToUpdate {
		if err := UpdateMatchSchedule(ctx, db, update.MatchID, update.Fixture); err != nil {
			return added, updated, fmt.Errorf("update match against %s: %w", update.Fixture.Opponent, err)
		}
		updated++
	}
	return added, updated, nil
}

func findByOpponent(existing []Match, opponent string) *Match {
	for i := range existing {
		if existing[i].Opponent == opponent {
			return &existing[i]
		}
	}
	return nil
}
