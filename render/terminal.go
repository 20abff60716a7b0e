package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"startup_pitcher/generator"
)

const (
	minTerminalWidth = 40
	columnGap        = 2
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	emptyStyle     = lipgloss.NewStyle().Faint(true)
)

// Terminal lays slides out as bordered cards in two columns of the given
// total width.
func Terminal(slides []generator.Slide, width int) string {
	if len(slides) == 0 {
		return emptyStyle.Render("No slides found in the pitch document.")
	}
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	colWidth := (width - columnGap) / 2
	left, right := Columns(slides)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column(left, colWidth),
		strings.Repeat(" ", columnGap),
		column(right, colWidth),
	)
}

func column(slides []generator.Slide, width int) string {
	cards := make([]string, 0, len(slides))
	// border takes 2 cells, padding another 2
	inner := width - 4
	for _, s := range slides {
		title := cardTitleStyle.Render(wordwrap.String(fmt.Sprintf("Slide %d: %s", s.Index, s.Title), inner))
		body := wordwrap.String(s.Body, inner)
		cards = append(cards, cardStyle.Width(width-2).Render(title+"\n"+body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
