package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Slide is one "### Slide N: Title" block of a pitch document.
type Slide struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Markdown reconstructs the slide block as it appears in a pitch document.
func (s Slide) Markdown() string {
	header := fmt.Sprintf("### Slide %d: %s", s.Index, s.Title)
	if s.Body == "" {
		return header
	}
	return header + "\n" + s.Body
}

// ParseWarning flags a line that looks like a slide header but does not parse.
type ParseWarning struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}

const headerPrefix = "### Slide"

var headerRe = regexp.MustCompile(`^### Slide (\d+): (.+)$`)

// ParseSlides splits a pitch document at its "### Slide N: Title" header
// lines. Text before the first header is dropped. A line that resembles a
// header but does not match stays in the body of the slide it falls in.
// A document without headers yields no slides.
func ParseSlides(doc string) []Slide {
	slides, _ := tokenize(doc)
	return slides
}

// LintSlides reports malformed header lines that ParseSlides absorbed into a body.
func LintSlides(doc string) []ParseWarning {
	_, warnings := tokenize(doc)
	return warnings
}

// JoinSlides is the inverse of ParseSlides for well-formed slides.
func JoinSlides(slides []Slide) string {
	blocks := make([]string, 0, len(slides))
	for _, s := range slides {
		blocks = append(blocks, s.Markdown())
	}
	return strings.Join(blocks, "\n")
}

func tokenize(doc string) ([]Slide, []ParseWarning) {
	var (
		slides   []Slide
		warnings []ParseWarning
		cur      *Slide
		body     []string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Body = trimBody(body)
		slides = append(slides, *cur)
	}

	for i, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if idx, title, ok := parseHeader(trimmed); ok {
			flush()
			cur = &Slide{Index: idx, Title: title}
			body = body[:0]
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(trimmed), headerPrefix) {
			warnings = append(warnings, ParseWarning{
				Line:   i + 1,
				Text:   strings.TrimSpace(trimmed),
				Reason: headerProblem(trimmed),
			})
		}
		if cur != nil {
			body = append(body, strings.TrimRight(line, "\r"))
		}
	}
	flush()
	return slides, warnings
}

// trimBody drops blank lines around a body and trailing whitespace. The
// first line keeps its indentation so an absorbed indented header is not
// promoted to a real header when the slide is written back out.
func trimBody(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.TrimRight(strings.Join(lines[start:end], "\n"), " \t")
}

func parseHeader(line string) (int, string, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, title, true
}

func headerProblem(line string) string {
	if line != strings.TrimLeft(line, " \t") {
		return "indented slide header"
	}
	rest, ok := strings.CutPrefix(line, headerPrefix+" ")
	if !ok {
		return "malformed \"### Slide\" prefix"
	}
	num, title, hasColon := strings.Cut(rest, ":")
	if !hasColon {
		return "missing colon after slide number"
	}
	if strings.TrimSpace(num) == "" {
		return "missing slide number"
	}
	if _, err := strconv.Atoi(strings.TrimSpace(num)); err != nil {
		return "slide number is not an integer"
	}
	if num != strings.TrimSpace(num) {
		return "unexpected spacing around slide number"
	}
	if strings.TrimSpace(title) == "" {
		return "missing slide title"
	}
	return "missing space after colon"
}
