package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// MockLLM is an offline stand-in that never calls an external model.
// With tools in the prompt it calls the first one once with a query built
// from the brief; otherwise it echoes the required outline as a deck.
type MockLLM struct{}

var outlineHeaderRe = regexp.MustCompile(`(?m)^### Slide (\d+): (.+)$`)

func (m MockLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if len(prompt.Tools) > 0 {
		query := mockQuery(prompt.User)
		args, err := json.Marshal(searchArgs{Query: query})
		if err != nil {
			return "", err
		}
		out, err := prompt.Tools[0].Call(ctx, string(args))
		if err != nil {
			return "", err
		}
		return "Research findings for " + query + ":\n" + out, nil
	}

	var sb strings.Builder
	for _, h := range outlineHeaderRe.FindAllStringSubmatch(prompt.System, -1) {
		sb.WriteString(fmt.Sprintf("### Slide %s: %s\n", h[1], strings.TrimSpace(h[2])))
		sb.WriteString(fmt.Sprintf("- %s for the startup described below.\n", strings.TrimSpace(h[2])))
		sb.WriteString("- Drafted offline without a language model.\n\n")
	}
	return sb.String(), nil
}

// mockQuery picks the one-liner out of a brief, falling back to a generic query.
func mockQuery(brief string) string {
	for _, line := range strings.Split(brief, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "- One-liner:"); ok && strings.TrimSpace(v) != "" {
			return "startup pitch deck examples " + strings.TrimSpace(v)
		}
	}
	return "startup pitch deck examples"
}
