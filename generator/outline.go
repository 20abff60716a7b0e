package generator

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed outlines.yaml
var outlinesYAML []byte

// PitchLength is the number of slides requested for a deck.
type PitchLength int

// DefaultPitchLength is preselected by the form.
const DefaultPitchLength PitchLength = 10

// Outline is the fixed slide-title sequence required for one pitch length.
type Outline struct {
	Slides   PitchLength `yaml:"slides" json:"slides"`
	Label    string      `yaml:"label" json:"label"`
	Guidance string      `yaml:"guidance" json:"guidance"`
	Titles   []string    `yaml:"titles" json:"titles"`
}

var outlines = mustLoadOutlines(outlinesYAML)

func mustLoadOutlines(data []byte) []Outline {
	var out []Outline
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("generator: parsing outlines.yaml: %v", err))
	}
	for _, o := range out {
		if int(o.Slides) != len(o.Titles) {
			panic(fmt.Sprintf("generator: outline %q lists %d titles", o.Label, len(o.Titles)))
		}
	}
	return out
}

// Outlines returns every supported outline in ascending slide count.
func Outlines() []Outline {
	cp := make([]Outline, len(outlines))
	copy(cp, outlines)
	return cp
}

// OutlineFor returns the outline for n slides.
func OutlineFor(n PitchLength) (Outline, bool) {
	for _, o := range outlines {
		if o.Slides == n {
			return o, true
		}
	}
	return Outline{}, false
}

// PitchLengthLabels lists the form labels, e.g. "7-slide concise deck".
func PitchLengthLabels() []string {
	labels := make([]string, 0, len(outlines))
	for _, o := range outlines {
		labels = append(labels, o.Label)
	}
	return labels
}

// ParsePitchLength accepts a form label ("7-slide concise deck"), a short
// form ("7-slide") or a bare number ("7").
func ParsePitchLength(s string) (PitchLength, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("pitch length is empty")
	}
	head := s
	if i := strings.IndexAny(head, "- "); i > 0 {
		head = head[:i]
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("pitch length %q: expected a slide count", s)
	}
	if _, ok := OutlineFor(PitchLength(n)); !ok {
		return 0, fmt.Errorf("pitch length %q: unsupported slide count %d", s, n)
	}
	return PitchLength(n), nil
}

// Headers renders the outline as the slide header lines the pitch agent must emit.
func (o Outline) Headers() string {
	var sb strings.Builder
	for i, t := range o.Titles {
		sb.WriteString(fmt.Sprintf("### Slide %d: %s\n", i+1, t))
	}
	return sb.String()
}

// Check compares parsed slides against the outline and describes every
// deviation. An empty result means the deck conforms.
func (o Outline) Check(slides []Slide) []string {
	var problems []string
	if len(slides) != len(o.Titles) {
		problems = append(problems, fmt.Sprintf("expected %d slides for %q, got %d", len(o.Titles), o.Label, len(slides)))
	}
	for i, s := range slides {
		if s.Index != i+1 {
			problems = append(problems, fmt.Sprintf("slide %d is numbered %d", i+1, s.Index))
		}
		if i < len(o.Titles) && !strings.EqualFold(strings.TrimSpace(s.Title), o.Titles[i]) {
			problems = append(problems, fmt.Sprintf("slide %d titled %q, outline expects %q", i+1, s.Title, o.Titles[i]))
		}
	}
	return problems
}
