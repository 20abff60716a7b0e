package generator

import (
	"fmt"
	"strings"
	"time"
)

// Prompt is one system + user exchange, with the tools the model may call.
type Prompt struct {
	System string
	User   string
	Tools  []Tool
}

// BuildSystemPrompt renders an agent's description, role and instructions.
func BuildSystemPrompt(a Agent, now time.Time) string {
	var sb strings.Builder
	if desc := strings.TrimSpace(a.Description); desc != "" {
		sb.WriteString(desc)
		sb.WriteString("\n\n")
	}
	if a.Role != "" {
		sb.WriteString(fmt.Sprintf("Your role: %s\n\n", a.Role))
	}
	if len(a.Instructions) > 0 {
		sb.WriteString("Instructions:\n")
		for _, in := range a.Instructions {
			if in == "" {
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s\n", in))
		}
	}
	if ctx := strings.TrimSpace(a.Context); ctx != "" {
		sb.WriteString("\n")
		sb.WriteString(ctx)
		sb.WriteString("\n")
	}
	if a.AddDatetime {
		sb.WriteString(fmt.Sprintf("\nThe current time is %s.\n", now.Format(time.RFC1123)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BuildPitchInput merges the brief with the research findings for the pitch agent.
func BuildPitchInput(brief, research string) string {
	var sb strings.Builder
	sb.WriteString("Startup Pitch Preferences:\n")
	sb.WriteString(strings.TrimSpace(brief))
	sb.WriteString("\n\nResearch Results:\n")
	sb.WriteString(strings.TrimSpace(research))
	sb.WriteString("\n")
	return sb.String()
}
