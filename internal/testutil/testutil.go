// Package testutil provides helpers for asserting on rendered row views.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI style codes so tests can compare visible text.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, wide characters
// included, style codes excluded.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// LineWidths returns the visual width of every line in the output.
// Layout tests use it to check that a rendered row is a proper
// rectangle of the expected width.
func LineWidths(output string) []int {
	lines := strings.Split(output, "\n")
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = MeasureWidth(line)
	}
	return widths
}

// MaxLineWidth returns the widest line in the output.
func MaxLineWidth(output string) int {
	maxWidth := 0
	for _, w := range LineWidths(output) {
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// ContainsLine reports whether any line of the output contains substr.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
