package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup_pitcher/httputil"
)

const organicFixture = `{
  "search_metadata": {"status": "Success"},
  "organic_results": [
    {"position": 1, "title": "Uber Pitch Deck", "link": "https://example.com/uber", "snippet": "The 2008 deck.", "source": "Example"},
    {"position": 2, "title": "No link here"},
    {"position": 3, "title": "YC Seed Deck Template", "link": "https://example.com/yc", "snippet": "Template."},
    {"title": "Unranked", "link": "https://example.com/unranked"}
  ]
}`

func newTestClient(t *testing.T, h http.Handler, num int) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(Config{APIKey: "serp-key", BaseURL: srv.URL, NumResults: num, HTTPClient: srv.Client()})
	require.NoError(t, err)
	return c
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestSearchSendsParamsAndParsesOrganic(t *testing.T) {
	var query map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query = map[string]string{"engine": q.Get("engine"), "q": q.Get("q"), "num": q.Get("num"), "api_key": q.Get("api_key")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(organicFixture))
	}), 0)

	results, err := c.Search(context.Background(), "  ride sharing pitch deck ")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"engine":  "google",
		"q":       "ride sharing pitch deck",
		"num":     "10",
		"api_key": "serp-key",
	}, query)

	require.Len(t, results, 3)
	assert.Equal(t, Result{Position: 1, Title: "Uber Pitch Deck", Link: "https://example.com/uber", Snippet: "The 2008 deck.", Source: "Example"}, results[0])
	assert.Equal(t, 3, results[1].Position)
	assert.Equal(t, "https://example.com/unranked", results[2].Link)
	assert.Equal(t, 3, results[2].Position)
}

func TestSearchLimitsResults(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(organicFixture))
	}), 1)

	results, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Uber Pitch Deck", results[0].Title)
}

func TestSearchNoOrganicResults(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"search_metadata":{"status":"Success"}}`))
	}), 0)

	results, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error field", http.StatusUnauthorized, `{"error":"Invalid API key."}`, "serpapi: Invalid API key."},
		{"http status", http.StatusBadGateway, `oops`, "serpapi returned HTTP 502"},
		{"invalid json", http.StatusOK, `{"organic_results": [`, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}), 0)
			_, err := c.Search(context.Background(), "q")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), 0)
	_, err := c.Search(context.Background(), "   ")
	assert.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestSearchRetriesRateLimit(t *testing.T) {
	prev := httputil.RetryBaseDelay
	httputil.RetryBaseDelay = time.Millisecond
	t.Cleanup(func() { httputil.RetryBaseDelay = prev })

	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(organicFixture))
	}), 0)

	results, err := c.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStaticReturnsCopy(t *testing.T) {
	got, err := SampleResults.Search(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, got, len(SampleResults))
	got[0].Title = "changed"
	assert.NotEqual(t, "changed", SampleResults[0].Title)
}
