package nhl

import (
	"net/url"

	"espn-sports-client/espn"
)

// Operation names, used as metric and log labels.
const (
	opPlayByPlay = "nhl.playbyplay"
	opBoxScore   = "nhl.boxscore"
	opSummary    = "nhl.summary"
	opPicks      = "nhl.picks"
	opSchedule   = "nhl.schedule"
	opScoreboard = "nhl.scoreboard"
	opStandings  = "nhl.standings"
	opTeams      = "nhl.teams"
	opTeamInfo   = "nhl.team"
	opTeamRoster = "nhl.roster"
)

const (
	apiPrefix = "/apis/site/v2/sports/hockey/nhl"

	defaultScoreboardLimit = 300
	defaultTeamsLimit      = 1000
)

// endpoints is the static registry binding each operation to its host, path
// and invariant query parameters.
var endpoints = map[string]espn.Endpoint{
	opPlayByPlay: {
		Operation: opPlayByPlay,
		Host:      espn.HostCDN,
		Path:      "/core/nhl/playbyplay",
		Fixed:     url.Values{"xhr": {"1"}, "render": {"false"}, "userab": {"18"}},
	},
	opBoxScore: {
		Operation: opBoxScore,
		Host:      espn.HostCDN,
		Path:      "/core/nhl/boxscore",
		Fixed:     url.Values{"xhr": {"1"}, "render": {"false"}, "userab": {"18"}},
	},
	opSummary: {
		Operation: opSummary,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/summary",
	},
	opPicks: {
		Operation: opPicks,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/summary",
	},
	opSchedule: {
		Operation: opSchedule,
		Host:      espn.HostCDN,
		Path:      "/core/nhl/schedule",
		Fixed:     url.Values{"xhr": {"1"}},
	},
	opScoreboard: {
		Operation: opScoreboard,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/scoreboard",
	},
	opStandings: {
		Operation: opStandings,
		Host:      espn.HostCDN,
		Path:      "/core/nhl/standings",
		Fixed:     url.Values{"xhr": {"1"}},
	},
	opTeams: {
		Operation: opTeams,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/teams",
	},
	opTeamInfo: {
		Operation: opTeamInfo,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/teams/%d",
	},
	opTeamRoster: {
		Operation: opTeamRoster,
		Host:      espn.HostAPI,
		Path:      apiPrefix + "/teams/%d",
		Fixed:     url.Values{"enable": {"roster"}},
	},
}

// Hockey standings levels are numeric on the wire.
const (
	levelLeague     = "1"
	levelConference = "2"
	levelDivision   = "3"
)

// resolveLevel maps the shared group names onto the provider's numeric
// levels, falling back to the division level for unrecognized values.
func resolveLevel(group string) string {
	switch group {
	case "", espn.GroupLeague:
		return levelLeague
	case espn.GroupConference:
		return levelConference
	case espn.GroupDivision:
		return levelDivision
	default:
		return levelDivision
	}
}
