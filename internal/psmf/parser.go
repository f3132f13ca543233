package psmf

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// League is one search result on the league site. Path is the relative URL of
// the team page within that league, used to fetch fixtures.
type League struct {
	Name string `json:"name"`
	URI  string `json:"uri,omitempty"`
	Path string `json:"path,omitempty"`
}

// Fixture is a single scraped match row, not yet persisted.
type Fixture struct {
	Opponent   string    `json:"opponent"`
	StartsAt   time.Time `json:"startsAt"`
	Field      string    `json:"field"`
	Tournament string    `json:"tournament"`
	Group      string    `json:"group"`
}

const (
	searchResultsSelector = "section.component--content .container .component__wrap .component__text .search-content ul li"
	fixtureRowsSelector   = "section.component--opener table.games-new-table tr"
	teamTitleSelector     = ".component--title .component__title"
)

// ParseLeagueSearchResults extracts the league list from a search results
// page. Markup that does not match the selectors yields an empty list, never
// an error.
func ParseLeagueSearchResults(html string) []League {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var leagues []League
	doc.Find(searchResultsSelector).Each(func(_ int, item *goquery.Selection) {
		league := League{Name: strings.TrimSpace(item.Text())}
		if href, ok := item.Find("a").First().Attr("href"); ok {
			league.URI = href
			if parsed, err := url.Parse(href); err == nil && parsed.Path != "" {
				league.Path = parsed.Path
			}
		}
		leagues = append(leagues, league)
	})
	return leagues
}

// ParseTeamFixturePage extracts fixtures from a team page. teamPagePath is
// the relative URL the page was fetched from, e.g.
// /souteze/2023-hanspaulska-liga-jaro/6-e/tymy/catchers-sc/; its second and
// third segments carry the tournament and group identifiers. Rows missing an
// opponent or a field are dropped.
func ParseTeamFixturePage(teamPagePath, html, ownTeamCode string, loc *time.Location) []Fixture {
	tournament, group := parseTournamentGroupFromPath(teamPagePath)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var fixtures []Fixture
	doc.Find(fixtureRowsSelector).Each(func(_ int, row *goquery.Selection) {
		field := strings.TrimSpace(row.Find("td:nth-child(3) a").First().Text())

		startsAt, ok := parseKickoff(
			row.Find("td:nth-child(1)").First().Text(),
			row.Find("td:nth-child(2)").First().Text(),
			loc,
		)

		homeCode := teamCodeFromHref(row.Find("td:nth-child(4) a:nth-child(1)").First())
		guestCode := teamCodeFromHref(row.Find("td:nth-child(4) a:nth-child(2)").First())
		opponent := guestCode
		if homeCode != ownTeamCode {
			opponent = homeCode
		}

		if opponent == "" || field == "" || !ok {
			return
		}
		fixtures = append(fixtures, Fixture{
			Opponent:   opponent,
			StartsAt:   startsAt,
			Field:      field,
			Tournament: tournament,
			Group:      group,
		})
	})
	return fixtures
}

// ParseTeamName extracts the human-readable team name from a team page
// heading. Returns "" when the heading is missing.
func ParseTeamName(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find(teamTitleSelector).First().Text())
}

// parseKickoff rebuilds a timezone-correct instant from the two schedule
// cells. The date cell holds a weekday prefix joined by a non-breaking space
// to a D.M.YY date; the date must be flipped into ISO order and zero-padded.
// The result is anchored to the named team timezone, not a numeric offset,
// so DST transitions resolve correctly.
func parseKickoff(dateCell, timeCell string, loc *time.Location) (time.Time, bool) {
	dateParts := strings.Split(dateCell, "\u00a0")
	datePart := strings.TrimSpace(dateParts[len(dateParts)-1])
	dmy := strings.Split(datePart, ".")
	if len(dmy) != 3 {
		return time.Time{}, false
	}
	isoDate := "20" + pad2(dmy[2]) + "-" + pad2(dmy[1]) + "-" + pad2(dmy[0])
	isoTime := strings.TrimSpace(timeCell)
	if len(isoTime) == 4 {
		isoTime = "0" + isoTime
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", isoDate+" "+isoTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// teamCodeFromHref pulls the team code out of a team page link, the last path
// segment of e.g. /souteze/{tournament}/{group}/tymy/{code}/.
func teamCodeFromHref(anchor *goquery.Selection) string {
	href, ok := anchor.Attr("href")
	if !ok {
		return ""
	}
	trimmed := strings.TrimSuffix(href, "/")
	parts := strings.Split(trimmed, "/")
	return parts[len(parts)-1]
}

func parseTournamentGroupFromPath(teamPagePath string) (tournament, group string) {
	parts := strings.Split(teamPagePath, "/")
	if len(parts) > 2 {
		tournament = parts[2]
	}
	if len(parts) > 3 {
		group = parts[3]
	}
	return tournament, group
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
