package nba

import "espn-sports-client/espn"

// Mapping tables are each operation's output contract: output key, source
// path in the raw document, optional coercion. Summary and Picks stay
// separate tables on purpose so either contract can drift without touching
// the other.

var playByPlayMapping = espn.Mapping{
	{Out: "teams", Path: []string{"gamepackageJSON", "boxscore", "teams"}},
	{Out: "id", Path: []string{"gamepackageJSON", "header", "id"}, Coerce: espn.CoerceInt},
	{Out: "plays", Path: []string{"gamepackageJSON", "plays"}},
	{Out: "competitions", Path: []string{"gamepackageJSON", "header", "competitions"}},
	{Out: "season", Path: []string{"gamepackageJSON", "header", "season"}},
	{Out: "boxScore", Path: []string{"gamepackageJSON", "boxscore"}},
	{Out: "seasonSeries", Path: []string{"gamepackageJSON", "seasonseries"}},
	{Out: "standings", Path: []string{"gamepackageJSON", "standings"}},
}

var summaryMapping = espn.Mapping{
	{Out: "boxScore", Path: []string{"boxscore"}},
	{Out: "gameInfo", Path: []string{"gameInfo"}},
	{Out: "header", Path: []string{"header"}},
	{Out: "teams", Path: []string{"rosters"}},
	{Out: "id", Path: []string{"header", "id"}, Coerce: espn.CoerceInt},
	{Out: "plays", Path: []string{"plays"}},
	{Out: "winProbability", Path: []string{"winprobability"}},
	{Out: "leaders", Path: []string{"leaders"}},
	{Out: "competitions", Path: []string{"header", "competitions"}},
	{Out: "season", Path: []string{"header", "season"}},
	{Out: "seasonSeries", Path: []string{"seasonseries"}},
	{Out: "standings", Path: []string{"standings"}},
}

var picksMapping = espn.Mapping{
	{Out: "id", Path: []string{"header", "id"}, Coerce: espn.CoerceInt},
	{Out: "gameInfo", Path: []string{"gameInfo"}},
	{Out: "leaders", Path: []string{"leaders"}},
	{Out: "header", Path: []string{"header"}},
	{Out: "teams", Path: []string{"rosters"}},
	{Out: "competitions", Path: []string{"header", "competitions"}},
	{Out: "winProbability", Path: []string{"winprobability"}},
	{Out: "pickcenter", Path: []string{"pickcenter"}},
	{Out: "againstTheSpread", Path: []string{"againstTheSpread"}},
	{Out: "odds", Path: []string{"odds"}},
	{Out: "seasonSeries", Path: []string{"seasonseries"}},
	{Out: "season", Path: []string{"header", "season"}},
	{Out: "standings", Path: []string{"standings"}},
}
