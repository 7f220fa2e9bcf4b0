package nba

import (
	"net/url"

	"espn-sports-client/espn"
)

// Operation names, used as metric and log labels.
const (
	opPlayByPlay = "nba.playbyplay"
	opBoxScore   = "nba.boxscore"
	opSummary    = "nba.summary"
	opPicks      = "nba.picks"
	opSchedule   = "nba.schedule"
	opScoreboard = "nba.scoreboard"
	opStandings  = "nba.standings"
	opTeams      = "nba.teams"
	opTeamInfo   = "nba.team"
	opTeamRoster = "nba.roster"
)

const (
	apiPrefix = "/apis/site/v2/sports/basketball/nba"

	defaultScoreboardLimit = 300
	defaultTeamsLimit      = 1000
)

// endpoints is the static registry binding each operation to its host, path
// and invariant query parameters. CDN endpoints are xhr page payloads;
// summary and picks read the same upstream document through different
// mapping tables.
var endpoints = map[string]espn.Endpoint{
	opPlayByPlay: {
		Operation: opPlayByPlay,
		Host:      espn.HostCDN,
		Path:      "/core/nba/playbyplay",
		Fixed:     url.Values{"xhr": {"1"}, "render": {"false"}, "userab": {"18"}},
	},
	opBoxScore: {
		Operation: opBoxScore,
		Host:      espn.HostCDN,
		Path:      "/core/nba/boxscore",
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
		Path:      "/core/nba/schedule",
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
		Path:      "/core/nba/standings",
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

// resolveGroup passes the provider-native group name through, falling back
// to the division level for unrecognized values.
func resolveGroup(group string) string {
	switch group {
	case "", espn.GroupLeague:
		return espn.GroupLeague
	case espn.GroupConference:
		return espn.GroupConference
	case espn.GroupDivision:
		return espn.GroupDivision
	default:
		return espn.GroupDivision
	}
}
