package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/stickercube"
)

var emptyCell = "   "

func facetStyle(c stickercube.Color) lipgloss.Style {
	fg := lipgloss.Color("#000000")
	if isDark(c) {
		fg = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(Hex(c))).
		Foreground(fg).
		Bold(true)
}

// Net draws the layout as a text net. The plain form uses letters only;
// the styled form paints each facet with its color using lipgloss.
func Net(l stickercube.Layout, styled bool) string {
	if !styled {
		return l.Net()
	}

	var b strings.Builder
	g := grid(l)
	for _, row := range g {
		last := len(row) - 1
		for last >= 0 && row[last] == nil {
			last--
		}
		for col := 0; col <= last; col++ {
			if row[col] == nil {
				b.WriteString(emptyCell)
				continue
			}
			c := *row[col]
			b.WriteString(facetStyle(c).Render(" " + c.String() + " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
