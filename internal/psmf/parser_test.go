package psmf

import (
	"testing"
	"time"
)

const searchPageHTML = `<html><body>
<section class="component--content">
  <div class="container">
    <div class="component__wrap">
      <div class="component__text">
        <div class="search-content">
          <ul>
            <li><a href="https://www.psmf.cz/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/">Hanspaulská liga jaro 2023</a></li>
            <li><a href="/souteze/2022-hanspaulska-liga-podzim/6-f/tymy/catchers-sc/">Hanspaulská liga podzim 2022</a></li>
          </ul>
        </div>
      </div>
    </div>
  </div>
</section>
</body></html>`

func TestParseLeagueSearchResults(t *testing.T) {
	leagues := ParseLeagueSearchResults(searchPageHTML)
	if len(leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(leagues))
	}
	assertEq(t, leagues[0].Name, "Hanspaulská liga jaro 2023")
	assertEq(t, leagues[0].URI, "https://www.psmf.cz/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/")
	assertEq(t, leagues[0].Path, "/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/")
	assertEq(t, leagues[1].Path, "/souteze/2022-hanspaulska-liga-podzim/6-f/tymy/catchers-sc/")
}

func TestParseLeagueSearchResults_NoResults(t *testing.T) {
	if got := ParseLeagueSearchResults("<html><body><p>nothing</p></body></html>"); len(got) != 0 {
		t.Fatalf("expected no leagues, got %d", len(got))
	}
	if got := ParseLeagueSearchResults(""); len(got) != 0 {
		t.Fatalf("expected no leagues for empty input, got %d", len(got))
	}
}

const teamPagePath = "/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/"

const fixturePageHTML = `<html><body>
<section class="component--opener">
<table class="games-new-table">
<tr>
  <td>Po&nbsp;5.3.23</td>
  <td>9:30</td>
  <td><a href="/hriste/#a">A</a></td>
  <td><a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/">Catchers SC</a> <a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/fc-x/">FC X</a></td>
</tr>
<tr>
  <td>St&nbsp;14.6.23</td>
  <td>18:00</td>
  <td><a href="/hriste/#b">B</a></td>
  <td><a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/fc-y/">FC Y</a> <a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/">Catchers SC</a></td>
</tr>
<tr>
  <td>Ne&nbsp;25.6.23</td>
  <td>10:00</td>
  <td></td>
  <td><a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/">Catchers SC</a> <a href="/souteze/2023-hanspaulska-liga-jaro/6-e/tymy/fc-z/">FC Z</a></td>
</tr>
</table>
</section>
</body></html>`

func praha(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestParseTeamFixturePage(t *testing.T) {
	loc := praha(t)
	fixtures := ParseTeamFixturePage(teamPagePath, fixturePageHTML, "catchers-sc", loc)

	// the third row has no field anchor and must be dropped
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}

	first := fixtures[0]
	assertEq(t, first.Opponent, "fc-x")
	assertEq(t, first.Field, "A")
	assertEq(t, first.Tournament, "2023-hanspaulska-liga-jaro")
	assertEq(t, first.Group, "6-e")
	want := time.Date(2023, 3, 5, 9, 30, 0, 0, loc)
	if !first.StartsAt.Equal(want) {
		t.Errorf("startsAt = %v, want %v", first.StartsAt, want)
	}
	// March is CET in Prague
	if _, offset := first.StartsAt.Zone(); offset != 3600 {
		t.Errorf("March offset = %d, want 3600", offset)
	}

	second := fixtures[1]
	assertEq(t, second.Opponent, "fc-y")
	assertEq(t, second.Field, "B")
	// June is CEST
	if _, offset := second.StartsAt.Zone(); offset != 7200 {
		t.Errorf("June offset = %d, want 7200", offset)
	}
	if got := second.StartsAt.In(loc).Format("2006-01-02 15:04"); got != "2023-06-14 18:00" {
		t.Errorf("second startsAt = %s", got)
	}
}

func TestParseTeamFixturePage_OpponentResolution(t *testing.T) {
	loc := praha(t)
	fixtures := ParseTeamFixturePage(teamPagePath, fixturePageHTML, "catchers-sc", loc)
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	// home == own team -> opponent is the guest code
	assertEq(t, fixtures[0].Opponent, "fc-x")
	// guest == own team -> opponent is the home code
	assertEq(t, fixtures[1].Opponent, "fc-y")
}

func TestParseTeamFixturePage_EmptyPage(t *testing.T) {
	if got := ParseTeamFixturePage(teamPagePath, "<html></html>", "catchers-sc", praha(t)); len(got) != 0 {
		t.Fatalf("expected no fixtures, got %d", len(got))
	}
}

func TestParseKickoff_PadsDateAndTime(t *testing.T) {
	loc := praha(t)
	got, ok := parseKickoff("Po\u00a05.3.23", "9:30", loc)
	if !ok {
		t.Fatal("parseKickoff failed")
	}
	assertEq(t, got.Format("2006-01-02"), "2023-03-05")
	assertEq(t, got.Format("15:04"), "09:30")
}

func TestParseKickoff_Malformed(t *testing.T) {
	loc := praha(t)
	if _, ok := parseKickoff("garbage", "9:30", loc); ok {
		t.Error("expected failure for garbage date")
	}
	if _, ok := parseKickoff("Po\u00a05.3.23", "soon", loc); ok {
		t.Error("expected failure for garbage time")
	}
}

func TestParseTeamName(t *testing.T) {
	html := `<section class="component--title"><h1 class="component__title"> Catchers SC </h1></section>`
	assertEq(t, ParseTeamName(html), "Catchers SC")
	assertEq(t, ParseTeamName("<html></html>"), "")
}

func TestParseTournamentGroupFromPath(t *testing.T) {
	tournament, group := parseTournamentGroupFromPath(teamPagePath)
	assertEq(t, tournament, "2023-hanspaulska-liga-jaro")
	assertEq(t, group, "6-e")

	tournament, group = parseTournamentGroupFromPath("")
	assertEq(t, tournament, "")
	assertEq(t, group, "")
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
