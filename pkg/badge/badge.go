// Package badge renders transit line labels as colored terminal badges.
package badge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors is the foreground/background pair of a badge segment.
type Colors struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

const white = lipgloss.Color("255")

func onWhite(bg string) Colors {
	return Colors{Foreground: white, Background: lipgloss.Color(bg)}
}

// uniform holds lines drawn with one color pair across the whole badge.
var uniform = map[string]Colors{
	"U1": onWhite("22"),
	"U2": onWhite("124"),
	"U3": onWhite("166"),
	"U4": onWhite("30"),
	"U5": onWhite("94"),
	"U6": onWhite("20"),

	"S1":  onWhite("73"),
	"S2":  onWhite("34"),
	"S3":  onWhite("53"),
	"S4":  onWhite("196"),
	"S6":  onWhite("29"),
	"S7":  onWhite("204"),
	"S8":  {Foreground: lipgloss.Color("226"), Background: lipgloss.Color("233")},
	"S20": onWhite("203"),
}

// twoTone holds lines sharing the corridor of two others. The first character
// takes the first pair and the second character the second pair.
var twoTone = map[string][2]Colors{
	"U7": {onWhite("22"), onWhite("124")},
	"U8": {onWhite("124"), onWhite("166")},
}

// styledPrefixes are the label prefixes that have color tables.
var styledPrefixes = []string{"U", "S"}

// Renderer styles line labels. It holds no state besides the lipgloss renderer.
type Renderer struct {
	r *lipgloss.Renderer
}

// New returns a Renderer drawing through r.
func New(r *lipgloss.Renderer) *Renderer {
	return &Renderer{r: r}
}

// Default returns a Renderer for standard output.
func Default() *Renderer {
	return New(lipgloss.DefaultRenderer())
}

// Render returns the badge for label. Labels without a color entry, including
// bus, tram and night lines, are returned unchanged.
func (b *Renderer) Render(label string) string {
	if !hasStyledPrefix(label) {
		return label
	}

	if pair, ok := twoTone[label]; ok && len(label) == 2 {
		return b.style(pair[0]).Render(" "+label[:1]) + b.style(pair[1]).Render(label[1:]+" ")
	}

	if colors, ok := uniform[label]; ok {
		return b.style(colors).Render(" " + label + " ")
	}

	return label
}

// RenderAll renders every label and joins the badges with ", ".
func (b *Renderer) RenderAll(labels []string) string {
	badges := make([]string, len(labels))
	for i, l := range labels {
		badges[i] = b.Render(l)
	}
	return strings.Join(badges, ", ")
}

func (b *Renderer) style(c Colors) lipgloss.Style {
	return b.r.NewStyle().Foreground(c.Foreground).Background(c.Background)
}

func hasStyledPrefix(label string) bool {
	for _, p := range styledPrefixes {
		if strings.HasPrefix(label, p) {
			return true
		}
	}
	return false
}
