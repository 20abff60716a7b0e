package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup_pitcher/generator"
)

func deck(n int) []generator.Slide {
	titles := []string{"Problem", "Solution", "Market", "Model", "Traction", "Vision", "Ask"}
	var out []generator.Slide
	for i := 0; i < n; i++ {
		out = append(out, generator.Slide{Index: i + 1, Title: titles[i%len(titles)], Body: "- point for " + titles[i%len(titles)]})
	}
	return out
}

func indexes(slides []generator.Slide) []int {
	var out []int
	for _, s := range slides {
		out = append(out, s.Index)
	}
	return out
}

func TestColumnsAlternate(t *testing.T) {
	left, right := Columns(deck(7))
	assert.Equal(t, []int{1, 3, 5, 7}, indexes(left))
	assert.Equal(t, []int{2, 4, 6}, indexes(right))

	left, right = Columns(deck(1))
	assert.Equal(t, []int{1}, indexes(left))
	assert.Empty(t, right)

	left, right = Columns(nil)
	assert.Empty(t, left)
	assert.Empty(t, right)
}

func TestHTMLFlattensHeader(t *testing.T) {
	h, err := HTML(generator.Slide{Index: 2, Title: "Solution", Body: "- **Cold** process\n- 30% cheaper"})
	require.NoError(t, err)
	s := string(h)
	assert.Contains(t, s, `<p class="card-title">Slide 2: Solution</p>`)
	assert.NotContains(t, s, "<h3")
	assert.Contains(t, s, "<li><strong>Cold</strong> process</li>")
}

func TestHTMLOmitsRawHTML(t *testing.T) {
	h, err := HTML(generator.Slide{Index: 1, Title: "Idea", Body: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, string(h), "<script>")
}

func TestFlattenHeadings(t *testing.T) {
	in := "<h1 id=\"x\">Top</h1>\n<p>text</p>\n<h4> Deep </h4>"
	assert.Equal(t, "<p class=\"card-title\">Top</p>\n<p>text</p>\n<p class=\"card-title\">Deep</p>", flattenHeadings(in))
}

func TestNewDeck(t *testing.T) {
	d, err := NewDeck(deck(5))
	require.NoError(t, err)
	require.Len(t, d.Left, 3)
	require.Len(t, d.Right, 2)
	assert.Equal(t, 1, d.Left[0].Index)
	assert.Equal(t, "Problem", d.Left[0].Title)
	assert.Equal(t, 2, d.Right[0].Index)
	assert.Contains(t, string(d.Right[1].HTML), "Slide 4: Model")

	empty, err := NewDeck(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Left)
	assert.Empty(t, empty.Right)
}

func TestTerminalLayout(t *testing.T) {
	out := Terminal(deck(4), 100)
	for _, want := range []string{"Slide 1: Problem", "Slide 2: Solution", "Slide 3: Market", "Slide 4: Model", "point for Market"} {
		assert.Contains(t, out, want)
	}

	// slides 1 and 2 sit side by side on the first title row
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Slide 1: Problem") {
			assert.Contains(t, line, "Slide 2: Solution")
		}
	}
}

func TestTerminalEmpty(t *testing.T) {
	assert.Contains(t, Terminal(nil, 80), "No slides found in the pitch document.")
}

func TestTerminalNarrowWidth(t *testing.T) {
	out := Terminal(deck(2), 10)
	assert.Contains(t, out, "Problem")
	assert.Contains(t, out, "Solution")
}
