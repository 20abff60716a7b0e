package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"startup_pitcher/generator"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// Card is one slide ready for the web page.
type Card struct {
	Index int           `json:"index"`
	Title string        `json:"title"`
	HTML  template.HTML `json:"html"`
}

// Deck is the two-column card layout of a pitch.
type Deck struct {
	Left  []Card `json:"left"`
	Right []Card `json:"right"`
}

// NewDeck converts slides to cards and deals them into two columns.
func NewDeck(slides []generator.Slide) (Deck, error) {
	left, right := Columns(slides)
	var d Deck
	var err error
	if d.Left, err = cards(left); err != nil {
		return Deck{}, err
	}
	if d.Right, err = cards(right); err != nil {
		return Deck{}, err
	}
	return d, nil
}

func cards(slides []generator.Slide) ([]Card, error) {
	out := make([]Card, 0, len(slides))
	for _, s := range slides {
		h, err := HTML(s)
		if err != nil {
			return nil, fmt.Errorf("rendering slide %d: %w", s.Index, err)
		}
		out = append(out, Card{Index: s.Index, Title: s.Title, HTML: h})
	}
	return out, nil
}

// HTML renders a slide (header included) from markdown. Raw HTML in the
// model output is escaped by goldmark's default renderer.
func HTML(s generator.Slide) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s.Markdown()), &buf); err != nil {
		return "", err
	}
	return template.HTML(flattenHeadings(buf.String())), nil
}

var headingRe = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)

// flattenHeadings turns headings into card-title paragraphs so every card
// uses the same title size regardless of the heading level the model chose.
func flattenHeadings(html string) string {
	return headingRe.ReplaceAllStringFunc(html, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		if len(parts) != 3 {
			return block
		}
		return fmt.Sprintf(`<p class="card-title">%s</p>`, strings.TrimSpace(parts[2]))
	})
}
