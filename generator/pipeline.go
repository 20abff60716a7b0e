package generator

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

// Default models for the two steps.
const (
	DefaultResearchModel = "gpt-4o"
	DefaultPitchModel    = "o3-mini"
)

// PipelineOptions tunes a Pipeline. Zero values select the defaults.
type PipelineOptions struct {
	ResearchModel string
	PitchModel    string
	Logger        *log.Logger
	Verbose       bool
	Now           func() time.Time
}

// Pipeline runs the research step and then the generation step.
type Pipeline struct {
	newLLM        LLMFactory
	newSearch     SearchFactory
	researchModel string
	pitchModel    string
	logger        *log.Logger
	verbose       bool
	now           func() time.Time
}

func NewPipeline(newLLM LLMFactory, newSearch SearchFactory, opts PipelineOptions) (*Pipeline, error) {
	if newLLM == nil {
		return nil, errors.New("llm factory is required")
	}
	if newSearch == nil {
		return nil, errors.New("search factory is required")
	}
	p := &Pipeline{
		newLLM:        newLLM,
		newSearch:     newSearch,
		researchModel: opts.ResearchModel,
		pitchModel:    opts.PitchModel,
		logger:        opts.Logger,
		verbose:       opts.Verbose,
		now:           opts.Now,
	}
	if p.researchModel == "" {
		p.researchModel = DefaultResearchModel
	}
	if p.pitchModel == "" {
		p.pitchModel = DefaultPitchModel
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p, nil
}

func (p *Pipeline) infof(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.logger.Printf("[INFO] "+format, args...)
}

// Run builds the brief, researches it and generates the pitch document.
// Credentials are checked before any capability is constructed or called.
// On failure no partial Pitch is returned.
func (p *Pipeline) Run(ctx context.Context, creds Credentials, prefs Preferences) (Pitch, error) {
	if err := creds.Validate(); err != nil {
		return Pitch{}, err
	}

	length, err := ParsePitchLength(prefs.PitchLength)
	if err != nil {
		p.logger.Printf("[WARN] %v; using %d slides", err, DefaultPitchLength)
		length = DefaultPitchLength
	}
	outline, _ := OutlineFor(length)
	brief := BuildBrief(prefs)

	research, query, err := p.research(ctx, creds, brief)
	if err != nil {
		return Pitch{}, &StepError{Step: StepResearch, Err: err}
	}
	p.infof("research done query=%q bytes=%d", query, len(research))

	doc, err := p.generate(ctx, creds, outline, brief, research)
	if err != nil {
		return Pitch{}, &StepError{Step: StepGeneration, Err: err}
	}
	p.infof("pitch generated slides=%d bytes=%d", len(ParseSlides(doc)), len(doc))

	warnings := p.check(outline, doc)
	for _, w := range warnings {
		p.logger.Printf("[WARN] pitch: %s", w)
	}

	return Pitch{
		Preferences: prefs,
		Length:      length,
		Brief:       brief,
		Query:       query,
		Research:    research,
		Document:    doc,
		Warnings:    warnings,
		CreatedAt:   p.now(),
	}, nil
}

func (p *Pipeline) research(ctx context.Context, creds Credentials, brief string) (string, string, error) {
	searcher, err := p.newSearch(creds.SerpAPIKey)
	if err != nil {
		return "", "", err
	}
	llm, err := p.newLLM(creds.OpenAIKey, p.researchModel)
	if err != nil {
		return "", "", err
	}
	tool := NewSearchTool(searcher)
	out, err := Invoke(ctx, llm, ResearchAgent(p.researchModel, tool), brief, p.now())
	if err != nil {
		return "", "", err
	}
	return out, tool.Query(), nil
}

func (p *Pipeline) generate(ctx context.Context, creds Credentials, outline Outline, brief, research string) (string, error) {
	llm, err := p.newLLM(creds.OpenAIKey, p.pitchModel)
	if err != nil {
		return "", err
	}
	out, err := Invoke(ctx, llm, PitchAgent(p.pitchModel, outline), BuildPitchInput(brief, research), p.now())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", errors.New("model returned an empty pitch")
	}
	return out, nil
}

func (p *Pipeline) check(outline Outline, doc string) []string {
	var warnings []string
	for _, w := range LintSlides(doc) {
		warnings = append(warnings, w.String())
	}
	return append(warnings, outline.Check(ParseSlides(doc))...)
}
