package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swipedeck/internal/domain"
)

// DeckRenderer draws a horizontal strip of panes seen through a window one
// pane wide.
type DeckRenderer struct {
	styles *Styles
}

// NewDeckRenderer creates a new deck renderer
func NewDeckRenderer(styles *Styles) *DeckRenderer {
	return &DeckRenderer{styles: styles}
}

// RenderPane draws a single pane box exactly width x height cells. scroll
// skips that many body lines.
func (r *DeckRenderer) RenderPane(p domain.Pane, width, height, scroll int) []string {
	innerW := max(width-4, 1) // border + padding
	innerH := max(height-2, 1)

	body := strings.Split(p.Body, "\n")
	if scroll > 0 {
		if scroll >= len(body) {
			scroll = len(body) - 1
		}
		body = body[scroll:]
	}
	lines := append([]string{r.styles.PaneTitle.Render(p.Title), ""}, body...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerW, "…")
	}

	box := r.styles.Pane.
		Width(width - 2).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
	return fit(strings.Split(box, "\n"), width, height)
}

// RenderWindow shows the strip starting at column pos. Panes are laid out
// back to back, pane i occupying [i*width, (i+1)*width). Columns outside
// every pane are blank.
func (r *DeckRenderer) RenderWindow(panes []domain.Pane, pos float64, width, height int, scrollOf func(int) int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	left := int(math.Round(pos))

	cache := make(map[int][]string, 2)
	paneLines := func(i int) []string {
		if lines, ok := cache[i]; ok {
			return lines
		}
		scroll := 0
		if scrollOf != nil {
			scroll = scrollOf(i)
		}
		lines := r.RenderPane(panes[i], width, height, scroll)
		cache[i] = lines
		return lines
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		col := left
		remaining := width
		for remaining > 0 {
			pi := floorDiv(col, width)
			off := col - pi*width
			take := min(width-off, remaining)
			if pi >= 0 && pi < len(panes) {
				b.WriteString(ansi.Cut(paneLines(pi)[row], off, off+take))
			} else {
				b.WriteString(strings.Repeat(" ", take))
			}
			col += take
			remaining -= take
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// fit pads or trims lines to exactly width x height cells
func fit(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		w := lipgloss.Width(line)
		switch {
		case w > width:
			line = ansi.Truncate(line, width, "")
		case w < width:
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
