package psmf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches pages from the league site. Proxy, when set, is a CORS-relay
// prefix prepended to every outbound URL.
type Client struct {
	BaseURL   string
	Proxy     string
	TeamQuery string
	TeamCode  string
	Location  *time.Location

	HTTP *http.Client
}

func NewClient(baseURL, proxy, teamQuery, teamCode string, loc *time.Location) *Client {
	return &Client{
		BaseURL:   baseURL,
		Proxy:     proxy,
		TeamQuery: teamQuery,
		TeamCode:  teamCode,
		Location:  loc,
		HTTP:      http.DefaultClient,
	}
}

// FetchLeagues runs the team-name search and returns the leagues the team
// currently appears in.
func (c *Client) FetchLeagues(ctx context.Context) ([]League, error) {
	url := fmt.Sprintf("%s/vyhledavani/?query=%s", c.BaseURL, c.TeamQuery)
	html, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseLeagueSearchResults(html), nil
}

// FetchTeamPagePath resolves the relative team page path from the first
// search result.
func (c *Client) FetchTeamPagePath(ctx context.Context) (string, error) {
	leagues, err := c.FetchLeagues(ctx)
	if err != nil {
		return "", err
	}
	for _, league := range leagues {
		if league.Path != "" {
			return league.Path, nil
		}
	}
	return "", fmt.Errorf("no league with a team page path found for %q", c.TeamQuery)
}

// FetchTeamFixtures downloads and parses the fixture table of the team page
// at the given relative path.
func (c *Client) FetchTeamFixtures(ctx context.Context, teamPagePath string) ([]Fixture, error) {
	html, err := c.fetch(ctx, c.BaseURL+teamPagePath)
	if err != nil {
		return nil, err
	}
	return ParseTeamFixturePage(teamPagePath, html, c.TeamCode, c.Location), nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Proxy+url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return string(body), nil
}
