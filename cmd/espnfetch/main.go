// Command espnfetch runs one client operation against the live provider and
// prints the projected result as JSON. It exists as the module's smoke-test
// harness; applications are expected to import the sport packages directly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"espn-sports-client/espn"
	"espn-sports-client/internal/config"
	"espn-sports-client/internal/logging"
	"espn-sports-client/pkg/metrics"
)

func main() {
	opts := parseFlags(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "espnfetch:", err)
		os.Exit(1)
	}
}

type options struct {
	sport      string
	op         string
	gameID     int
	teamID     int
	year       int
	month      int
	day        int
	group      string
	limit      int
	configPath string
}

func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("espnfetch", flag.ExitOnError)
	fs.StringVar(&opts.sport, "sport", "nba", "sport to query (nba or nhl)")
	fs.StringVar(&opts.op, "op", "scoreboard", "operation: playbyplay, boxscore, summary, picks, schedule, scoreboard, standings, teams, team, roster")
	fs.IntVar(&opts.gameID, "game", 0, "game id for game operations")
	fs.IntVar(&opts.teamID, "team", 0, "team id for team/roster")
	fs.IntVar(&opts.year, "year", 0, "year for schedule/scoreboard/standings")
	fs.IntVar(&opts.month, "month", 0, "month for schedule/scoreboard")
	fs.IntVar(&opts.day, "day", 0, "day for schedule/scoreboard")
	fs.StringVar(&opts.group, "group", "", "standings group: league, conference or division")
	fs.IntVar(&opts.limit, "limit", 0, "scoreboard game limit")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	_ = fs.Parse(args)
	return opts
}

func run(ctx context.Context, opts options, out *os.File) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)

	rec, _, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("metrics shutdown")
		}
	}()

	client, err := newSportClient(opts.sport, cfg, &logger, rec)
	if err != nil {
		return err
	}

	logger.Debug().
		Str(logging.FieldSport, opts.sport).
		Str(logging.FieldOperation, opts.op).
		Msg("dispatching operation")

	doc, err := dispatch(ctx, client, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(), nil
}

func newSportClient(sport string, cfg config.Config, logger *zerolog.Logger, rec *metrics.Recorder) (sportClient, error) {
	espnCfg := clientConfig(cfg, logger, rec)
	switch sport {
	case "nba":
		return nbaClient(espnCfg), nil
	case "nhl":
		return nhlClient(espnCfg), nil
	default:
		return nil, fmt.Errorf("unknown sport %q (want nba or nhl)", sport)
	}
}

func dispatch(ctx context.Context, client sportClient, opts options) (espn.Document, error) {
	date := espn.Date{Year: opts.year, Month: opts.month, Day: opts.day}
	switch opts.op {
	case "playbyplay":
		return client.PlayByPlay(ctx, opts.gameID)
	case "boxscore":
		return client.BoxScore(ctx, opts.gameID)
	case "summary":
		return client.Summary(ctx, opts.gameID)
	case "picks":
		return client.Picks(ctx, opts.gameID)
	case "schedule":
		return client.Schedule(ctx, date)
	case "scoreboard":
		return client.Scoreboard(ctx, date, opts.limit)
	case "standings":
		return client.Standings(ctx, opts.year, opts.group)
	case "teams":
		return client.Teams(ctx)
	case "team":
		return client.TeamInfo(ctx, opts.teamID)
	case "roster":
		return client.TeamRoster(ctx, opts.teamID)
	default:
		return nil, fmt.Errorf("unknown operation %q", opts.op)
	}
}
