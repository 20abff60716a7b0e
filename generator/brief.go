package generator

import (
	"fmt"
	"strings"
)

// BuildBrief renders the preferences into the three-section brief consumed by
// both agents. Values are substituted verbatim; empty fields stay empty.
func BuildBrief(p Preferences) string {
	var sb strings.Builder
	sb.WriteString("**Startup Overview:**\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", p.Name))
	sb.WriteString(fmt.Sprintf("- One-liner: %s\n", p.OneLiner))
	sb.WriteString(fmt.Sprintf("- Stage: %s\n", p.Stage))
	sb.WriteString("\n**Market & Product:**\n")
	sb.WriteString(fmt.Sprintf("- Problem: %s\n", p.Problem))
	sb.WriteString(fmt.Sprintf("- Solution: %s\n", p.Solution))
	sb.WriteString(fmt.Sprintf("- Target Market: %s\n", p.TargetMarket))
	sb.WriteString("\n**Business & Pitch Goals:**\n")
	sb.WriteString(fmt.Sprintf("- Unique Selling Point: %s\n", p.Differentiator))
	sb.WriteString(fmt.Sprintf("- Business Model: %s\n", p.BusinessModel))
	sb.WriteString(fmt.Sprintf("- Pitch Purpose: %s\n", p.PitchPurpose))
	sb.WriteString(fmt.Sprintf("- Pitch Length: %s\n", p.PitchLength))
	return sb.String()
}
