// Package tuirow provides a bubbletea container that lays child views
// side by side, splitting the terminal width according to per-pane
// width fractions.
//
// Width allocation is delegated to the fracrow core; this package only
// translates between terminal cells and the core's geometry and renders
// the result.
package tuirow

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fracrow"
)

// View is the contract for pane content: render at a proposed width.
// A pane is as tall as the number of lines its view returns, which is
// how the core's height measurement maps onto terminal content.
type View interface {
	Render(width int) string
}

// Text returns a View that word-wraps a plain string to the proposed
// width.
func Text(s string) View {
	return textView(s)
}

type textView string

func (t textView) Render(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Render(string(t))
}

// Pane couples a child view with its width-fraction attribute. A pane
// built by NewPane declares no fraction and shares whatever width its
// declared siblings leave over.
type Pane struct {
	view     View
	fraction float64
}

// NewPane wraps a view with no declared fraction.
func NewPane(view View) Pane {
	return Pane{view: view, fraction: fracrow.Unspecified}
}

// WithFraction returns a copy of the pane declaring a share of the
// row's usable width. Any value >= 1 means "share the remainder".
func (p Pane) WithFraction(f float64) Pane {
	p.fraction = f
	return p
}

// Fraction returns the pane's declared fraction; values >= 1 mean the
// pane declared none.
func (p Pane) Fraction() float64 {
	return p.fraction
}

// Model is a bubbletea component that lays out panes horizontally.
type Model struct {
	panes   []Pane
	spacing int
	width   int
	height  int
	focus   int
}

// New returns a row over the given panes with a one-cell gap between
// them.
func New(panes ...Pane) Model {
	return Model{panes: panes, spacing: 1}
}

// SetSize sets the terminal area available to the row. Height 0 means
// unconstrained.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Size returns the area last given to SetSize.
func (m Model) Size() (width, height int) {
	return m.width, m.height
}

// SetSpacing sets the gap between consecutive panes, in cells.
// Negative values are treated as zero.
func (m *Model) SetSpacing(spacing int) {
	if spacing < 0 {
		spacing = 0
	}
	m.spacing = spacing
}

// Spacing returns the gap between consecutive panes.
func (m Model) Spacing() int {
	return m.spacing
}

// Panes returns the panes in layout order.
func (m Model) Panes() []Pane {
	return m.panes
}

// AddPane appends a pane to the right end of the row.
func (m *Model) AddPane(p Pane) {
	m.panes = append(m.panes, p)
}

// RemovePane removes the pane at index i. Out-of-range indexes are
// ignored.
func (m *Model) RemovePane(i int) {
	if i < 0 || i >= len(m.panes) {
		return
	}
	m.panes = append(m.panes[:i], m.panes[i+1:]...)
	if m.focus >= len(m.panes) && m.focus > 0 {
		m.focus = len(m.panes) - 1
	}
}

// SetFraction declares the width fraction of the pane at index i.
func (m *Model) SetFraction(i int, f float64) {
	if i < 0 || i >= len(m.panes) {
		return
	}
	m.panes[i].fraction = f
}

// ClearFraction reverts the pane at index i to sharing the remainder.
func (m *Model) ClearFraction(i int) {
	m.SetFraction(i, fracrow.Unspecified)
}

// Focus moves focus to the pane at index i. Out-of-range indexes are
// ignored.
func (m *Model) Focus(i int) {
	if i < 0 || i >= len(m.panes) {
		return
	}
	m.focus = i
}

// Focused returns the index of the focused pane, or -1 for an empty
// row.
func (m Model) Focused() int {
	if len(m.panes) == 0 {
		return -1
	}
	return m.focus
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update resizes the row on window changes and moves focus to the pane
// under a left click.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.PaneAt(msg.X); i >= 0 {
				m.focus = i
			}
		}
	}
	return m, nil
}

// row builds the core row for the current panes. Measurement callbacks
// are omitted; width-only queries never render.
func (m Model) row() fracrow.Row {
	items := make([]fracrow.Item, len(m.panes))
	for i, p := range m.panes {
		items[i] = fracrow.Item{Fraction: p.fraction}
	}
	return fracrow.Row{
		Items:   items,
		Spacing: float64(m.spacing),
		Width:   fracrow.Proposed(float64(m.width)),
	}
}

// measuredRow is row with each pane's height measurement attached:
// render at the proposed width, count lines.
func (m Model) measuredRow() fracrow.Row {
	row := m.row()
	for i, p := range m.panes {
		view := p.view
		row.Items[i].Measure = func(width float64) float64 {
			w := cells(width)
			if w <= 0 {
				return 0
			}
			return float64(lipgloss.Height(view.Render(w)))
		}
	}
	return row
}

// Widths returns the allocated width of every pane in cells. Values
// are the core's raw allocation rounded to cells; over-committed
// fractions can make them negative. Rendering clamps, this does not.
func (m Model) Widths() []int {
	sizes := fracrow.ComputeSizes(m.row())
	widths := make([]int, len(sizes))
	for i, s := range sizes {
		widths[i] = cells(s.Width)
	}
	return widths
}

// Positions returns the x offset of every pane within the row.
func (m Model) Positions() []int {
	points := fracrow.PlaceItems(m.row(), fracrow.Point{})
	xs := make([]int, len(points))
	for i, p := range points {
		xs[i] = cells(p.X)
	}
	return xs
}

// PaneAt returns the index of the pane covering column x, or -1 when x
// falls in a gap or outside the row.
func (m Model) PaneAt(x int) int {
	positions := m.Positions()
	for i, w := range m.Widths() {
		if w < 0 {
			w = 0
		}
		if x >= positions[i] && x < positions[i]+w {
			return i
		}
	}
	return -1
}

// Measure reports the size the row would occupy at the proposed width:
// the proposal itself and the tallest pane.
func (m Model) Measure(proposedWidth int) (width, height int) {
	size := fracrow.MeasureRow(m.measuredRow(), fracrow.Proposed(float64(proposedWidth)))
	return cells(size.Width), cells(size.Height)
}

// cells rounds core geometry to terminal cells.
func cells(v float64) int {
	return int(math.Round(v))
}
