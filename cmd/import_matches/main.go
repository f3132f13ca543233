package main

import (
	"context"
	"fmt"
	"log"

	_ "time/tzdata"

	"github.com/catchers-sc/teamapp/internal/config"
	"github.com/catchers-sc/teamapp/internal/db"
	"github.com/catchers-sc/teamapp/internal/matches"
	"github.com/catchers-sc/teamapp/internal/psmf"
)

// One-shot fixture import: scrape the league site, diff against stored
// matches by opponent and create/update as needed. Safe to rerun; unchanged
// fixtures are skipped.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	database := db.InitDB(cfg.DatabaseURL)
	defer database.Close()
	if err := db.EnsureSchema(ctx, database); err != nil {
		log.Fatalf("schema: %v", err)
	}

	client := psmf.NewClient(cfg.LeagueBaseURL, cfg.CORSProxy, cfg.TeamQuery, cfg.TeamCode, cfg.Location())

	teamPagePath, err := client.FetchTeamPagePath(ctx)
	if err != nil {
		log.Fatalf("resolve team page: %v", err)
	}
	fmt.Println("Team page path:", teamPagePath)

	fixtures, err := client.FetchTeamFixtures(ctx, teamPagePath)
	if err != nil {
		log.Fatalf("fetch fixtures: %v", err)
	}
	fmt.Printf("Scraped %d fixture(s)\n", len(fixtures))

	existing, err := matches.GetAllMatches(ctx, database)
	if err != nil {
		log.Fatalf("load matches: %v", err)
	}

	classified := matches.Classify(existing, fixtures)
	for _, f := range classified.ToAdd {
		fmt.Printf("  new:       %s %s (%s)\n", f.Opponent, f.StartsAt.Format("2.1.2006 15:04"), f.Field)
	}
	for _, u := range classified.ToUpdate {
		fmt.Printf("  changed:   %s %s (%s)\n", u.Fixture.Opponent, u.Fixture.StartsAt.Format("2.1.2006 15:04"), u.Fixture.Field)
	}
	for _, f := range classified.Unchanged {
		fmt.Printf("  unchanged: %s\n", f.Opponent)
	}

	added, updated, err := matches.Synchronize(ctx, database, classified)
	if err != nil {
		log.Fatalf("synchronize: %v", err)
	}
	fmt.Printf("Import complete: %d added, %d updated, %d unchanged\n", added, updated, len(classified.Unchanged))
}
