// Package search queries SerpAPI's Google engine for the research step.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"startup_pitcher/httputil"
)

// DefaultBaseURL is SerpAPI's JSON search endpoint.
const DefaultBaseURL = "https://serpapi.com/search.json"

const (
	defaultNumResults = 10
	defaultTimeout    = 30 * time.Second
)

// Result is one organic search hit.
type Result struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Config holds SerpAPI client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	NumResults int
	MaxRetries int
	HTTPClient *http.Client
}

// Client searches Google through SerpAPI.
type Client struct {
	apiKey     string
	baseURL    string
	num        int
	maxRetries int
	http       *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("serpapi api key missing")
	}
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		num:        cfg.NumResults,
		maxRetries: cfg.MaxRetries,
		http:       cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.num <= 0 {
		c.num = defaultNumResults
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	return c, nil
}

// Search runs one Google query and returns its organic results in rank order.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is empty")
	}

	params := url.Values{
		"engine":  {"google"},
		"q":       {query},
		"num":     {strconv.Itoa(c.num)},
		"api_key": {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading serpapi response: %w", err)
	}
	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return nil, fmt.Errorf("serpapi: %s", msg.String())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned HTTP %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("serpapi returned invalid JSON")
	}
	return parseOrganic(body, c.num), nil
}

func parseOrganic(body []byte, limit int) []Result {
	var results []Result
	gjson.GetBytes(body, "organic_results").ForEach(func(_, item gjson.Result) bool {
		link := item.Get("link").String()
		if link == "" {
			return true
		}
		pos := int(item.Get("position").Int())
		if pos == 0 {
			pos = len(results) + 1
		}
		results = append(results, Result{
			Position: pos,
			Title:    item.Get("title").String(),
			Link:     link,
			Snippet:  item.Get("snippet").String(),
			Source:   item.Get("source").String(),
		})
		return limit <= 0 || len(results) < limit
	})
	return results
}
