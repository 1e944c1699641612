package feed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/venue-tv-service/internal/domain/games"
	"github.com/preston-bernstein/venue-tv-service/internal/providers"
)

func TestFetchGamesHitsFeedAndMapsResponse(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC) // still 2024-01-01 in America/New_York
	var capturedAuth string
	var capturedQueries []string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/games" {
			t.Fatalf("expected /games path, got %s", req.URL.Path)
		}
		capturedQueries = append(capturedQueries, req.URL.RawQuery)
		capturedAuth = req.Header.Get("Authorization")

		body := `{
			"data": [
				{
					"id": "nba-100",
					"league": "nba",
					"home_team": { "id": "nba-bos" },
					"away_team": { "id": "nba-lal", "name": "LA Lakers" },
					"channel": "ESPN",
					"start_time": "2024-01-02T00:30:00Z",
					"status": "In Progress",
					"score_diff": 4,
					"time_remaining": 95
				}
			],
			"meta": { "total_pages": 2 }
		}`
		if len(capturedQueries) == 2 {
			body = `{
				"data": [
					{
						"id": "mlb-7",
						"league": "MLB",
						"home_team": { "id": "stl", "name": "St. Louis", "market_id": "us-stl" },
						"away_team": { "id": "mlb-chc" },
						"start_time": "2024-01-02T01:00:00Z",
						"status": "live",
						"current_inning": 9,
						"walk_off": true
					},
					{ "id": "", "league": "NFL" }
				],
				"meta": { "total_pages": 2 }
			}`
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
		Timezone:   "America/New_York",
		MaxPages:   3,
	})
	client.now = func() time.Time { return fixed }

	list, err := client.FetchGames(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedAuth != "Bearer secret" {
		t.Fatalf("expected authorization header, got %s", capturedAuth)
	}
	if len(capturedQueries) != 2 {
		t.Fatalf("expected 2 requests (pagination), got %d", len(capturedQueries))
	}
	q, err := url.ParseQuery(capturedQueries[0])
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQueries[0], err)
	}
	if q.Get("date") != "2024-01-01" || q.Get("per_page") != "100" || q.Get("page") != "1" {
		t.Fatalf("unexpected query %v", q)
	}
	if len(list) != 2 {
		t.Fatalf("expected games without blank ids, got %d", len(list))
	}

	nba := list[0]
	if nba.League != games.LeagueNBA || nba.Status != games.StatusLive {
		t.Fatalf("unexpected league/status %+v", nba)
	}
	if nba.HomeTeam.Name != "Boston Celtics" || nba.HomeTeam.MarketID != "us-boston" {
		t.Fatalf("expected catalog enrichment, got %+v", nba.HomeTeam)
	}
	if nba.AwayTeam.Name != "LA Lakers" {
		t.Fatalf("expected feed name to win, got %s", nba.AwayTeam.Name)
	}
	if nba.Title != "LA Lakers at Boston Celtics" {
		t.Fatalf("expected derived title, got %q", nba.Title)
	}
	if nba.Live.ScoreDiff == nil || *nba.Live.ScoreDiff != 4 || nba.Live.TimeRemaining == nil || *nba.Live.TimeRemaining != 95 {
		t.Fatalf("unexpected live state %+v", nba.Live)
	}

	mlb := list[1]
	if !mlb.Live.IsWalkOffPotential || mlb.Live.CurrentInning == nil || *mlb.Live.CurrentInning != 9 {
		t.Fatalf("unexpected mlb live state %+v", mlb.Live)
	}
	if mlb.HomeTeam.MarketID != "us-stl" {
		t.Fatalf("expected feed market for unknown team, got %+v", mlb.HomeTeam)
	}
}

func TestFetchGamesMapsRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchGames(context.Background(), "2024-01-01", "")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.Remaining != "0" || rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected rate limit details %+v", rl)
	}
}

func TestFetchGamesHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchGames(context.Background(), "", ""); err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchGamesHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchGames(context.Background(), "", ""); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchGamesRespectsMaxPagesCap(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		body := `{"data": [{"id": "g", "league": "NHL", "status": "final"}], "meta": {"total_pages": 10}}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		MaxPages:   1,
	})

	list, err := client.FetchGames(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].Status != games.StatusFinal {
		t.Fatalf("expected 1 final game, got %+v", list)
	}
	if calls != 1 {
		t.Fatalf("expected to stop after max pages, got %d calls", calls)
	}
}

func TestFetchGamesRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}).FetchGames(context.Background(), "", ""); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{Timeout: 3 * time.Second})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", httpClient.Timeout)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
