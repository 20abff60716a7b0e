package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"startup_pitcher/search"
)

// Tool is a function the model may call during Complete. A returned error
// aborts the completion; a refusal the model should see goes in the string.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any
	Call(ctx context.Context, arguments string) (string, error)
}

// Searcher is the web-search capability behind the research tool.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// SearchFactory builds a Searcher from a session's search API key.
type SearchFactory func(apiKey string) (Searcher, error)

// SearchToolName is the function name the research agent is told to call.
const SearchToolName = "search_google"

// SearchTool exposes a Searcher to the model and allows one search per run.
type SearchTool struct {
	searcher Searcher

	mu    sync.Mutex
	query string
	calls int
}

// NewSearchTool wraps s as the research agent's search function.
func NewSearchTool(s Searcher) *SearchTool {
	return &SearchTool{searcher: s}
}

func (t *SearchTool) Name() string { return SearchToolName }

func (t *SearchTool) Description() string {
	return "Search Google for a query and return the top organic results (title, link, snippet)."
}

func (t *SearchTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "One focused search query.",
			},
		},
		"required": []string{"query"},
	}
}

type searchArgs struct {
	Query string `json:"query"`
}

type searchOutput struct {
	Query         string          `json:"query"`
	SearchResults []search.Result `json:"search_results"`
}

func (t *SearchTool) Call(ctx context.Context, arguments string) (string, error) {
	var args searchArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return fmt.Sprintf("invalid arguments: %v", err), nil
	}
	args.Query = strings.TrimSpace(args.Query)
	if args.Query == "" {
		return "invalid arguments: query is empty", nil
	}

	t.mu.Lock()
	if t.calls > 0 {
		prev := t.query
		t.mu.Unlock()
		return fmt.Sprintf("search already performed for %q; use those results", prev), nil
	}
	t.calls++
	t.query = args.Query
	t.mu.Unlock()

	results, err := t.searcher.Search(ctx, args.Query)
	if err != nil {
		return "", fmt.Errorf("%s: %w", SearchToolName, err)
	}
	out, err := json.Marshal(searchOutput{Query: args.Query, SearchResults: results})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Query returns the query that was searched, or "" if none was.
func (t *SearchTool) Query() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query
}
