package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"espn-sports-client/espn"
	"espn-sports-client/espn/nba"
	"espn-sports-client/espn/nhl"
	"espn-sports-client/internal/config"
	"espn-sports-client/pkg/metrics"
)

// sportClient is the operation surface both sport clients satisfy.
type sportClient interface {
	PlayByPlay(ctx context.Context, gameID int) (espn.Document, error)
	BoxScore(ctx context.Context, gameID int) (espn.Document, error)
	Summary(ctx context.Context, gameID int) (espn.Document, error)
	Picks(ctx context.Context, gameID int) (espn.Document, error)
	Schedule(ctx context.Context, date espn.Date) (espn.Document, error)
	Scoreboard(ctx context.Context, date espn.Date, limit int) (espn.Document, error)
	Standings(ctx context.Context, year int, group string) (espn.Document, error)
	Teams(ctx context.Context) (espn.Document, error)
	TeamInfo(ctx context.Context, teamID int) (espn.Document, error)
	TeamRoster(ctx context.Context, teamID int) (espn.Document, error)
}

func clientConfig(cfg config.Config, logger *zerolog.Logger, rec *metrics.Recorder) espn.Config {
	return espn.Config{
		CDNBaseURL: cfg.ESPN.CDNBaseURL,
		APIBaseURL: cfg.ESPN.APIBaseURL,
		UserAgent:  cfg.ESPN.UserAgent,
		HTTPClient: &http.Client{Timeout: cfg.ESPN.Timeout},
		Logger:     logger,
		Metrics:    rec,
	}
}

func nbaClient(cfg espn.Config) sportClient {
	return nba.NewClient(cfg)
}

func nhlClient(cfg espn.Config) sportClient {
	return nhl.NewClient(cfg)
}
