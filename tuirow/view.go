package tuirow

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fracrow/internal/render"
)

// View renders every pane at its allocated width and joins the blocks
// at the row's top edge. Panes keep their natural heights; shorter
// panes are padded, not stretched. When the model has a height, the
// joined result is cut to it.
func (m Model) View() string {
	if len(m.panes) == 0 || m.width <= 0 {
		return ""
	}

	widths := m.Widths()
	gap := strings.Repeat(" ", m.spacing)

	blocks := make([]string, 0, 2*len(m.panes)-1)
	for i, p := range m.panes {
		w := widths[i]
		if w < 0 {
			// Over-committed fractions; nothing to draw for this pane.
			w = 0
		}
		if i > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, render.Block(p.view.Render(w), w, 0))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if m.height > 0 {
		if lines := strings.Split(view, "\n"); len(lines) > m.height {
			view = strings.Join(lines[:m.height], "\n")
		}
	}
	return view
}
