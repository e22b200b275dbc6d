package tuirow

import (
	"strings"
	"testing"

	"github.com/llehouerou/fracrow"
	"github.com/llehouerou/fracrow/internal/testutil"
)

func TestView_EmptyRow(t *testing.T) {
	m := New()
	m.SetSize(80, 24)

	if got := m.View(); got != "" {
		t.Errorf("empty row rendered %q", got)
	}
}

func TestView_NoWidthYet(t *testing.T) {
	m := newTestRow(fracrow.Unspecified)

	if got := m.View(); got != "" {
		t.Errorf("unsized row rendered %q", got)
	}
}

func TestView_SplitsWidthBetweenPanes(t *testing.T) {
	m := New(
		NewPane(fill{ch: "a", lines: 1}),
		NewPane(fill{ch: "b", lines: 1}),
	)
	m.SetSize(20, 0)
	m.SetSpacing(0)

	got := testutil.StripANSI(m.View())
	want := strings.Repeat("a", 10) + strings.Repeat("b", 10)
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestView_GapBetweenPanes(t *testing.T) {
	m := New(
		NewPane(fill{ch: "a", lines: 1}),
		NewPane(fill{ch: "b", lines: 1}),
	)
	m.SetSize(22, 0)
	m.SetSpacing(2)

	got := testutil.StripANSI(m.View())
	want := strings.Repeat("a", 10) + "  " + strings.Repeat("b", 10)
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestView_IsRectangular(t *testing.T) {
	// Panes of different heights: shorter ones get padded, every line
	// of the joined view spans the full row.
	m := New(
		NewPane(fill{ch: "a", lines: 3}),
		NewPane(fill{ch: "b", lines: 1}),
	)
	m.SetSize(30, 0)
	m.SetSpacing(0)

	view := m.View()
	for i, w := range testutil.LineWidths(view) {
		if w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	if lines := strings.Split(view, "\n"); len(lines) != 3 {
		t.Errorf("view has %d lines, want 3", len(lines))
	}
}

func TestView_ClipsToHeight(t *testing.T) {
	m := New(NewPane(fill{ch: "a", lines: 6}))
	m.SetSize(10, 4)
	m.SetSpacing(0)

	if lines := strings.Split(m.View(), "\n"); len(lines) != 4 {
		t.Errorf("view has %d lines, want 4", len(lines))
	}
}

func TestView_FractionedPaneWidths(t *testing.T) {
	m := New(
		NewPane(fill{ch: "a", lines: 1}).WithFraction(0.25),
		NewPane(fill{ch: "b", lines: 1}),
	)
	m.SetSize(40, 0)
	m.SetSpacing(0)

	got := testutil.StripANSI(m.View())
	want := strings.Repeat("a", 10) + strings.Repeat("b", 30)
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestView_NegativeWidthPaneDrawsNothing(t *testing.T) {
	m := New(
		NewPane(fill{ch: "a", lines: 1}).WithFraction(0.7),
		NewPane(fill{ch: "b", lines: 1}).WithFraction(0.7),
		NewPane(fill{ch: "c", lines: 1}),
	)
	m.SetSize(100, 0)
	m.SetSpacing(0)

	got := testutil.StripANSI(m.View())
	if strings.Contains(got, "c") {
		t.Errorf("negative-width pane rendered content: %q", got)
	}
	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("declared panes missing from view: %q", got)
	}
}

func TestView_TruncatesOverflowingContent(t *testing.T) {
	// A view that ignores its proposed width still gets cut to its
	// allocated columns.
	wide := viewFunc(func(int) string { return strings.Repeat("w", 50) })
	m := New(NewPane(wide), NewPane(fill{ch: "b", lines: 1}))
	m.SetSize(20, 0)
	m.SetSpacing(0)

	got := testutil.StripANSI(m.View())
	want := strings.Repeat("w", 10) + strings.Repeat("b", 10)
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestText_WrapsToWidth(t *testing.T) {
	v := Text("lorem ipsum dolor sit amet")
	out := v.Render(11)

	if w := testutil.MaxLineWidth(out); w > 11 {
		t.Errorf("wrapped text is %d columns wide, want <= 11", w)
	}
	if !testutil.ContainsLine(out, "lorem") {
		t.Errorf("wrapped text lost content: %q", out)
	}
}

func TestText_ZeroWidth(t *testing.T) {
	if got := Text("abc").Render(0); got != "" {
		t.Errorf("Render(0) = %q, want empty", got)
	}
}

// viewFunc adapts a function to the View interface.
type viewFunc func(width int) string

func (f viewFunc) Render(width int) string {
	return f(width)
}
