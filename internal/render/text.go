// Package render provides ANSI-aware text shaping for fixed-width pane blocks.
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Line shapes a single line to exactly width columns: styled text is
// truncated without breaking escape sequences, then padded with spaces.
// A negative width is treated as zero.
func Line(line string, width int) string {
	if width <= 0 {
		return ""
	}
	line = ansi.Truncate(line, width, "")
	if gap := width - ansi.StringWidth(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// Block shapes a multi-line string into a box of exactly width columns.
// When height is positive the block is cut or padded with empty lines to
// exactly that many lines; otherwise the natural line count is kept.
func Block(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = Line(line, width)
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// Fit shapes a plain (unstyled) string to exactly width columns, ending
// in an ellipsis when it had to be cut. Uses runewidth so CJK and emoji
// keep their double-cell width.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// EmptyLine is a line of spaces of the given width.
func EmptyLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
