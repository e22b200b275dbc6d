// Package styles provides color helpers for the demo UI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient between two
// hex colors, blending in HCL space for a perceptually even ramp.
// Grapheme clusters are colored as units so emoji and combining marks
// stay intact.
func Gradient(text, fromHex, toHex string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	from := parseHex(fromHex)
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(from.Hex())).Render(text)
	}
	to := parseHex(toHex)

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		c := from.BlendHcl(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// Palette returns n visually distinct colors as hex strings, evenly
// spaced around the hue wheel. Used to color demo panes that carry no
// configured color.
func Palette(n int) []string {
	colors := make([]string, n)
	for i := range n {
		hue := float64(i) * 360.0 / float64(max(n, 1))
		colors[i] = colorful.Hsv(hue, 0.55, 0.85).Hex()
	}
	return colors
}

func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		// Unparseable configs degrade to gray rather than failing
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}
