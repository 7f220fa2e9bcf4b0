// Package nba is the basketball client: one method per upstream operation,
// each a single GET plus a declarative projection of the response.
package nba

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"espn-sports-client/espn"
)

// Client fetches NBA data from the provider's CDN and site API hosts.
type Client struct {
	core *espn.Client
}

// NewClient constructs an NBA client. The zero Config targets the real
// upstream hosts.
func NewClient(cfg espn.Config) *Client {
	return &Client{core: espn.NewClient(cfg)}
}

// PlayByPlay returns the projected play-by-play view of a game.
func (c *Client) PlayByPlay(ctx context.Context, gameID int) (espn.Document, error) {
	doc, err := c.core.Fetch(ctx, endpoints[opPlayByPlay], gameParams(gameID))
	if err != nil {
		return nil, err
	}
	return espn.Project(doc, playByPlayMapping), nil
}

// BoxScore returns the full upstream box-score document with the requested
// game id injected.
func (c *Client) BoxScore(ctx context.Context, gameID int) (espn.Document, error) {
	doc, err := c.core.Fetch(ctx, endpoints[opBoxScore], gameParams(gameID))
	if err != nil {
		return nil, err
	}
	box, ok := espn.SubDocument(doc, "gamepackageJSON", "boxscore")
	if !ok {
		box = espn.Document{}
	}
	box["id"] = gameID
	return box, nil
}

// Summary returns the projected game summary.
func (c *Client) Summary(ctx context.Context, gameID int) (espn.Document, error) {
	doc, err := c.core.Fetch(ctx, endpoints[opSummary], eventParams(gameID))
	if err != nil {
		return nil, err
	}
	return espn.Project(doc, summaryMapping), nil
}

// Picks returns the betting-oriented subset of the summary document.
func (c *Client) Picks(ctx context.Context, gameID int) (espn.Document, error) {
	doc, err := c.core.Fetch(ctx, endpoints[opPicks], eventParams(gameID))
	if err != nil {
		return nil, err
	}
	return espn.Project(doc, picksMapping), nil
}

// Schedule returns the provider's schedule content for the given date, or
// for the provider's current date when date is zero.
func (c *Client) Schedule(ctx context.Context, date espn.Date) (espn.Document, error) {
	params, err := dateParams(date)
	if err != nil {
		return nil, err
	}
	doc, err := c.core.Fetch(ctx, endpoints[opSchedule], params)
	if err != nil {
		return nil, err
	}
	sched, ok := espn.SubDocument(doc, "content", "schedule")
	if !ok {
		return espn.Document{}, nil
	}
	return sched, nil
}

// Scoreboard returns the full scoreboard document. A limit <= 0 uses the
// provider default of 300 games.
func (c *Client) Scoreboard(ctx context.Context, date espn.Date, limit int) (espn.Document, error) {
	params, err := dateParams(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultScoreboardLimit
	}
	params.Set("limit", strconv.Itoa(limit))
	return c.core.Fetch(ctx, endpoints[opScoreboard], params)
}

// Standings returns the provider's standings document. A year <= 0 means the
// current calendar year; an empty group means league-level standings.
func (c *Client) Standings(ctx context.Context, year int, group string) (espn.Document, error) {
	if year <= 0 {
		year = c.core.Now().Year()
	}
	params := url.Values{
		"season": {strconv.Itoa(year)},
		"group":  {resolveGroup(group)},
	}
	doc, err := c.core.Fetch(ctx, endpoints[opStandings], params)
	if err != nil {
		return nil, err
	}
	standings, ok := espn.SubDocument(doc, "content", "standings")
	if !ok {
		return espn.Document{}, nil
	}
	return standings, nil
}

// Teams returns the full teams document.
func (c *Client) Teams(ctx context.Context) (espn.Document, error) {
	params := url.Values{"limit": {strconv.Itoa(defaultTeamsLimit)}}
	return c.core.Fetch(ctx, endpoints[opTeams], params)
}

// TeamInfo returns the full document for one team.
func (c *Client) TeamInfo(ctx context.Context, teamID int) (espn.Document, error) {
	ep := endpoints[opTeamInfo]
	ep.Path = fmt.Sprintf(ep.Path, teamID)
	return c.core.Fetch(ctx, ep, nil)
}

// TeamRoster returns the team document with the roster enabled.
func (c *Client) TeamRoster(ctx context.Context, teamID int) (espn.Document, error) {
	ep := endpoints[opTeamRoster]
	ep.Path = fmt.Sprintf(ep.Path, teamID)
	return c.core.Fetch(ctx, ep, nil)
}

func gameParams(gameID int) url.Values {
	return url.Values{"gameId": {strconv.Itoa(gameID)}}
}

func eventParams(gameID int) url.Values {
	return url.Values{"event": {strconv.Itoa(gameID)}}
}

func dateParams(date espn.Date) (url.Values, error) {
	params := url.Values{}
	rendered, ok, err := date.Param()
	if err != nil {
		return nil, err
	}
	if ok {
		params.Set("dates", rendered)
	}
	return params, nil
}
