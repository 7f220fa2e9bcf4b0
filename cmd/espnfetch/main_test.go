package main

import (
	"context"
	"errors"
	"testing"

	"espn-sports-client/espn"
	"espn-sports-client/internal/config"
)

type stubClient struct {
	calls []string
	date  espn.Date
	limit int
	year  int
	group string
}

func (s *stubClient) record(op string) (espn.Document, error) {
	s.calls = append(s.calls, op)
	return espn.Document{"op": op}, nil
}

func (s *stubClient) PlayByPlay(ctx context.Context, gameID int) (espn.Document, error) {
	return s.record("playbyplay")
}
func (s *stubClient) BoxScore(ctx context.Context, gameID int) (espn.Document, error) {
	return s.record("boxscore")
}
func (s *stubClient) Summary(ctx context.Context, gameID int) (espn.Document, error) {
	return s.record("summary")
}
func (s *stubClient) Picks(ctx context.Context, gameID int) (espn.Document, error) {
	return s.record("picks")
}
func (s *stubClient) Schedule(ctx context.Context, date espn.Date) (espn.Document, error) {
	s.date = date
	return s.record("schedule")
}
func (s *stubClient) Scoreboard(ctx context.Context, date espn.Date, limit int) (espn.Document, error) {
	s.date = date
	s.limit = limit
	return s.record("scoreboard")
}
func (s *stubClient) Standings(ctx context.Context, year int, group string) (espn.Document, error) {
	s.year = year
	s.group = group
	return s.record("standings")
}
func (s *stubClient) Teams(ctx context.Context) (espn.Document, error) {
	return s.record("teams")
}
func (s *stubClient) TeamInfo(ctx context.Context, teamID int) (espn.Document, error) {
	return s.record("team")
}
func (s *stubClient) TeamRoster(ctx context.Context, teamID int) (espn.Document, error) {
	return s.record("roster")
}

func TestDispatchRoutesOperations(t *testing.T) {
	ops := []string{"playbyplay", "boxscore", "summary", "picks", "schedule", "scoreboard", "standings", "teams", "team", "roster"}
	stub := &stubClient{}

	for _, op := range ops {
		doc, err := dispatch(context.Background(), stub, options{op: op})
		if err != nil {
			t.Fatalf("dispatch(%s) returned %v", op, err)
		}
		if doc["op"] != op {
			t.Fatalf("dispatch(%s) hit %v", op, doc["op"])
		}
	}
	if len(stub.calls) != len(ops) {
		t.Fatalf("expected %d calls, got %d", len(ops), len(stub.calls))
	}
}

func TestDispatchPassesDateAndStandingsArguments(t *testing.T) {
	stub := &stubClient{}

	if _, err := dispatch(context.Background(), stub, options{op: "scoreboard", year: 2016, month: 4, day: 15, limit: 25}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stub.date != (espn.Date{Year: 2016, Month: 4, Day: 15}) || stub.limit != 25 {
		t.Fatalf("unexpected scoreboard arguments %+v limit=%d", stub.date, stub.limit)
	}

	if _, err := dispatch(context.Background(), stub, options{op: "standings", year: 2019, group: "conference"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stub.year != 2019 || stub.group != "conference" {
		t.Fatalf("unexpected standings arguments year=%d group=%s", stub.year, stub.group)
	}
}

func TestDispatchRejectsUnknownOperation(t *testing.T) {
	if _, err := dispatch(context.Background(), &stubClient{}, options{op: "dunk-contest"}); err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
}

func TestNewSportClientRejectsUnknownSport(t *testing.T) {
	if _, err := newSportClient("curling", config.Load(), nil, nil); err == nil {
		t.Fatal("expected an error for an unknown sport")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	opts := parseFlags(nil)
	if opts.sport != "nba" || opts.op != "scoreboard" {
		t.Fatalf("unexpected defaults %+v", opts)
	}

	opts = parseFlags([]string{"-sport", "nhl", "-op", "standings", "-year", "2016", "-group", "division"})
	if opts.sport != "nhl" || opts.op != "standings" || opts.year != 2016 || opts.group != "division" {
		t.Fatalf("unexpected parsed options %+v", opts)
	}
}

func TestDispatchPropagatesClientErrors(t *testing.T) {
	boom := errors.New("upstream down")
	failing := failingClient{err: boom}
	if _, err := dispatch(context.Background(), failing, options{op: "teams"}); !errors.Is(err, boom) {
		t.Fatalf("expected client error, got %v", err)
	}
}

type failingClient struct {
	err error
}

func (f failingClient) PlayByPlay(context.Context, int) (espn.Document, error) { return nil, f.err }
func (f failingClient) BoxScore(context.Context, int) (espn.Document, error)   { return nil, f.err }
func (f failingClient) Summary(context.Context, int) (espn.Document, error)    { return nil, f.err }
func (f failingClient) Picks(context.Context, int) (espn.Document, error)      { return nil, f.err }
func (f failingClient) Schedule(context.Context, espn.Date) (espn.Document, error) {
	return nil, f.err
}
func (f failingClient) Scoreboard(context.Context, espn.Date, int) (espn.Document, error) {
	return nil, f.err
}
func (f failingClient) Standings(context.Context, int, string) (espn.Document, error) {
	return nil, f.err
}
func (f failingClient) Teams(context.Context) (espn.Document, error)         { return nil, f.err }
func (f failingClient) TeamInfo(context.Context, int) (espn.Document, error) { return nil, f.err }
func (f failingClient) TeamRoster(context.Context, int) (espn.Document, error) {
	return nil, f.err
}
