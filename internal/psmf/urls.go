package psmf

import "fmt"

func (c *Client) TournamentURL(tournament string) string {
	return fmt.Sprintf("%s/souteze/%s", c.BaseURL, tournament)
}

func (c *Client) GroupURL(tournament, group string) string {
	return fmt.Sprintf("%s/souteze/%s/%s", c.BaseURL, tournament, group)
}

func (c *Client) TeamURL(tournament, group, team string) string {
	return fmt.Sprintf("%s/souteze/%s/%s/tymy/%s/", c.BaseURL, tournament, group, team)
}

func (c *Client) FieldURL(field string) string {
	return fmt.Sprintf("%s/hriste/#%s", c.BaseURL, field)
}
