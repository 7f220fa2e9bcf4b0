package nhl

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"espn-sports-client/espn"
	"espn-sports-client/internal/testutil"
)

func parseQuery(raw string) (url.Values, error) {
	return url.ParseQuery(raw)
}

func newTestClient(t *testing.T, fn testutil.RoundTripperFunc) *Client {
	t.Helper()
	return NewClient(espn.Config{
		CDNBaseURL: "http://cdn.test",
		APIBaseURL: "http://api.test",
		HTTPClient: testutil.StubClient(fn),
	})
}

func capture(t *testing.T, body string) (*Client, *[]*http.Request) {
	t.Helper()
	var reqs []*http.Request
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		reqs = append(reqs, req)
		return testutil.JSONResponse(http.StatusOK, body), nil
	})
	return client, &reqs
}

func TestPlayByPlayIncludesOnIce(t *testing.T) {
	body := `{
		"gamepackageJSON": {
			"header": {"id": "401559593", "competitions": [], "season": {"year": 2024}},
			"plays": [{"text": "Faceoff"}],
			"onIce": [{"athlete": {"id": "3899937"}}],
			"boxscore": {"teams": []},
			"seasonseries": [],
			"standings": {}
		}
	}`
	client, reqs := capture(t, body)

	got, err := client.PlayByPlay(context.Background(), 401559593)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	req := (*reqs)[0]
	if req.URL.Path != "/core/nhl/playbyplay" {
		t.Fatalf("unexpected path %s", req.URL.Path)
	}
	if req.URL.Query().Get("gameId") != "401559593" {
		t.Fatalf("unexpected query %s", req.URL.RawQuery)
	}

	if got["id"] != 401559593 {
		t.Fatalf("expected coerced id, got %v", got["id"])
	}
	if _, ok := got["onIce"]; !ok {
		t.Fatalf("expected onIce in hockey play-by-play, got %v", got)
	}
	if len(got) != 9 {
		t.Fatalf("expected exactly the documented fields, got %v", got)
	}
}

func TestPlayByPlayOmitsOnIceWhenAbsent(t *testing.T) {
	client, _ := capture(t, `{"gamepackageJSON": {"header": {"id": "1"}}}`)

	got, err := client.PlayByPlay(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := got["onIce"]; ok {
		t.Fatal("expected onIce to be absent")
	}
}

func TestStandingsUsesNumericLevels(t *testing.T) {
	levels := make(map[string]bool)
	client := NewClient(espn.Config{
		CDNBaseURL: "http://cdn.test",
		HTTPClient: testutil.StubClient(func(req *http.Request) (*http.Response, error) {
			levels[req.URL.Query().Get("level")] = true
			return testutil.JSONResponse(http.StatusOK, `{"content": {"standings": {}}}`), nil
		}),
	})

	cases := map[string]string{
		espn.GroupLeague:     "1",
		espn.GroupConference: "2",
		espn.GroupDivision:   "3",
	}
	for group := range cases {
		if _, err := client.Standings(context.Background(), 2016, group); err != nil {
			t.Fatalf("expected no error for %s, got %v", group, err)
		}
	}
	for group, level := range cases {
		if !levels[level] {
			t.Fatalf("expected level %s for group %s, saw %v", level, group, levels)
		}
	}
}

func TestStandingsDefaultsAndFallback(t *testing.T) {
	var queries []string
	client := NewClient(espn.Config{
		CDNBaseURL: "http://cdn.test",
		HTTPClient: testutil.StubClient(func(req *http.Request) (*http.Response, error) {
			queries = append(queries, req.URL.RawQuery)
			return testutil.JSONResponse(http.StatusOK, `{"content": {"standings": {}}}`), nil
		}),
		Clock: testutil.ClockAt(testutil.MustParseRFC3339("2022-11-05T00:00:00Z")),
	})

	if _, err := client.Standings(context.Background(), 0, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := client.Standings(context.Background(), 2016, "intergalactic"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first, err := parseQuery(queries[0])
	if err != nil {
		t.Fatal(err)
	}
	if first.Get("season") != "2022" || first.Get("level") != "1" {
		t.Fatalf("expected clock-year league defaults, got %s", queries[0])
	}
	second, err := parseQuery(queries[1])
	if err != nil {
		t.Fatal(err)
	}
	if second.Get("level") != "3" {
		t.Fatalf("expected division fallback level 3, got %s", queries[1])
	}
}

func TestSummaryUsesHockeyAPIPath(t *testing.T) {
	client, reqs := capture(t, `{"header": {"id": "401559593"}}`)

	got, err := client.Summary(context.Background(), 401559593)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req := (*reqs)[0]
	if req.URL.Host != "api.test" || req.URL.Path != "/apis/site/v2/sports/hockey/nhl/summary" {
		t.Fatalf("unexpected URL %s", req.URL)
	}
	if req.URL.Query().Get("event") != "401559593" {
		t.Fatalf("unexpected query %s", req.URL.RawQuery)
	}
	if got["id"] != 401559593 {
		t.Fatalf("expected coerced id, got %v", got["id"])
	}
}

func TestBoxScoreInjectsRequestedID(t *testing.T) {
	client, reqs := capture(t, `{"gamepackageJSON": {"boxscore": {"teams": []}}}`)

	got, err := client.BoxScore(context.Background(), 401559593)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if (*reqs)[0].URL.Path != "/core/nhl/boxscore" {
		t.Fatalf("unexpected path %s", (*reqs)[0].URL.Path)
	}
	if got["id"] != 401559593 {
		t.Fatalf("expected injected id, got %v", got["id"])
	}
}

func TestScheduleRendersDateParameter(t *testing.T) {
	client, reqs := capture(t, `{"content": {"schedule": {}}}`)

	if _, err := client.Schedule(context.Background(), espn.Date{Year: 2016, Month: 4, Day: 5}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := (*reqs)[0].URL.Query().Get("dates"); got != "20160405" {
		t.Fatalf("expected dates=20160405, got %s", got)
	}
}

func TestScoreboardAndTeamsDefaults(t *testing.T) {
	client, reqs := capture(t, `{}`)

	if _, err := client.Scoreboard(context.Background(), espn.Date{}, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := client.Teams(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := (*reqs)[0].URL.Query().Get("limit"); got != "300" {
		t.Fatalf("expected scoreboard limit 300, got %s", got)
	}
	if got := (*reqs)[1].URL.Query().Get("limit"); got != "1000" {
		t.Fatalf("expected teams limit 1000, got %s", got)
	}
}

func TestRosterPathAndFlag(t *testing.T) {
	client, reqs := capture(t, `{"team": {}}`)

	if _, err := client.TeamRoster(context.Background(), 16); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req := (*reqs)[0]
	if req.URL.Path != "/apis/site/v2/sports/hockey/nhl/teams/16" {
		t.Fatalf("unexpected path %s", req.URL.Path)
	}
	if req.URL.Query().Get("enable") != "roster" {
		t.Fatalf("expected enable=roster, got %s", req.URL.RawQuery)
	}
}

func TestTransportFailurePreventsProjection(t *testing.T) {
	boom := errors.New("connection reset")
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	got, err := client.PlayByPlay(context.Background(), 1)
	if got != nil {
		t.Fatalf("expected no partial projection, got %v", got)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
