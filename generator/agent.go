package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Agent is a role-based configuration for one LLM call. It carries no
// behavior of its own; Invoke turns it into a Prompt.
type Agent struct {
	Name         string
	Role         string
	Description  string
	Instructions []string
	// Context is appended verbatim after the instructions.
	Context     string
	Model       string
	AddDatetime bool
	Tools       []Tool
}

// Invoke runs agent against input on llm and returns the model's final text.
func Invoke(ctx context.Context, llm LLMClient, agent Agent, input string, now time.Time) (string, error) {
	if llm == nil {
		return "", errors.New("llm client is required")
	}
	prompt := Prompt{
		System: BuildSystemPrompt(agent, now),
		User:   input,
		Tools:  agent.Tools,
	}
	out, err := llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ResearchAgent configures the web-research step around a single search tool.
func ResearchAgent(model string, search Tool) Agent {
	return Agent{
		Name:  "Startup Researcher",
		Role:  "Finds real-world startup pitch examples, market trends, and positioning strategies based on user-defined startup requirements.",
		Model: model,
		Description: "You are a startup pitch research expert. Given a user's detailed startup preferences, your job is to search the web " +
			"and extract relevant pitch strategies, successful examples, or domain-specific positioning ideas that can inspire a compelling pitch.",
		Instructions: []string{
			"Carefully analyze the user's startup pitch preferences including problem, solution, target market, and pitch purpose.",
			"Generate ONE clear, concise search query (e.g., 'MVP pitch deck for water-saving IoT startup' or 'successful elevator pitch examples in healthtech').",
			"Avoid adding too many terms in the search query. Keep it focused on one intent.",
			fmt.Sprintf("Use `%s` with this generated query. Call it exactly once.", SearchToolName),
			"From the search results, extract 8-10 of the most relevant URLs or summaries that contain useful pitch examples, formats, or strategic messaging.",
			"Prefer pages with actual pitch decks, pitch breakdowns, founder stories, or VC-backed pitch templates.",
			"Do not generate or invent sample content. Rely only on real content from the search results.",
		},
		AddDatetime: true,
		Tools:       []Tool{search},
	}
}

// PitchAgent configures the generation step for the given outline.
func PitchAgent(model string, outline Outline) Agent {
	instructions := []string{
		"Carefully read the startup's structured input: problem, solution, audience, USP, business model, and pitch purpose.",
		"Also review the research results and extract useful pitch tactics, templates, or real-world phrasing aligned to the startup domain.",
		"Use the user's selected pitch length to determine how many slides to generate. Follow this mapping:",
	}
	for _, o := range outlines {
		instructions = append(instructions, fmt.Sprintf("  %d-slide: %s", o.Slides, o.Guidance))
	}
	instructions = append(instructions,
		"",
		"Generate the output using markdown formatting:",
		"### Slide X: [Slide Title]",
		"Followed by bullets or 2-3 sentence paragraph(s).",
		"Use real ideas or examples from research when relevant (do NOT fabricate).",
		"Maintain clarity, confidence, and alignment with pitch tone and purpose.",
		"",
		"Do not make your slides too verbose or complex. Use short sentences for individual bullet points.",
		"Do not include an intro. Start directly with Slide 1.",
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required outline for this pitch (%s, %d slides), in this exact order:\n", outline.Label, len(outline.Titles)))
	sb.WriteString(outline.Headers())
	if outline.Slides == 1 {
		sb.WriteString("The single slide is one consolidated paragraph covering all essentials.\n")
	}

	return Agent{
		Name:  "Startup Pitcher",
		Role:  "Generates a tailored startup pitch deck using user input and real-world examples from research results.",
		Model: model,
		Description: "You are a senior pitch strategist. You help early-stage startups craft compelling, clear, and persuasive pitch decks.\n" +
			"You are provided:\n" +
			"1. A structured summary of the startup's details (problem, solution, audience, USP, etc.)\n" +
			"2. A list of URLs or research insights from the web that contain pitch examples, strategies, or relevant inspiration\n" +
			"3. The user's preferred pitch length (1-slide, 3-slide, 5-slide, 7-slide, 10-slide, 15-slide, or 20-slide)\n\n" +
			"Your job is to extract relevant guidance from those sources and turn the startup's idea into a properly structured pitch.",
		Instructions: instructions,
		Context:      sb.String(),
		AddDatetime:  true,
	}
}
