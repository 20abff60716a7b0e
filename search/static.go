package search

import "context"

// Static returns the same results for every query. It backs offline runs.
type Static []Result

func (s Static) Search(_ context.Context, _ string) ([]Result, error) {
	out := make([]Result, len(s))
	copy(out, s)
	return out, nil
}

// SampleResults are canned pitch-deck references for offline runs.
var SampleResults = Static{
	{Position: 1, Title: "Airbnb Pitch Deck Breakdown", Link: "https://www.example.com/airbnb-pitch-deck", Snippet: "Slide-by-slide analysis of the seed deck that raised $600K."},
	{Position: 2, Title: "How to Write a Startup Pitch Deck", Link: "https://www.example.com/pitch-deck-guide", Snippet: "Problem, solution, market, traction and ask explained with examples."},
	{Position: 3, Title: "Demo Day Pitch Templates", Link: "https://www.example.com/demo-day-templates", Snippet: "Templates used by accelerator founders for two-minute pitches."},
}
