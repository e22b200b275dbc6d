// rowdemo is an interactive playground for the fracrow layout: a row of
// colored panels whose width fractions can be edited live.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fracrow/internal/config"
	"github.com/llehouerou/fracrow/internal/render"
	"github.com/llehouerou/fracrow/internal/state"
	"github.com/llehouerou/fracrow/internal/styles"
	"github.com/llehouerou/fracrow/tuirow"
)

const (
	headerHeight = 1
	statusHeight = 1
	fractionStep = 0.05
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	panelStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())
	focusStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder())
)

// paneDef is the demo's own record of a pane; the tuirow panes are
// rebuilt from these whenever something changes.
type paneDef struct {
	title    string
	color    string
	fraction *float64 // nil means share the remainder
}

// panel renders one pane: a bordered box showing the pane's title,
// declared share, and the width it actually got.
type panel struct {
	title    string
	color    string
	fraction *float64
	focused  bool
}

func (p panel) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if width < 4 {
		// Too narrow for a border
		return render.Fit(p.title, width)
	}

	share := "auto"
	if p.fraction != nil {
		share = fmt.Sprintf("%.2f", *p.fraction)
	}

	inner := width - 2
	content := strings.Join([]string{
		render.Fit(p.title, inner),
		render.Fit("share "+share, inner),
		render.Fit(fmt.Sprintf("%d cols", width), inner),
	}, "\n")

	style := panelStyle
	if p.focused {
		style = focusStyle
	}
	return style.BorderForeground(lipgloss.Color(p.color)).Render(content)
}

type model struct {
	row      tuirow.Model
	panes    []paneDef
	stateMgr *state.Manager
	input    textinput.Model
	editing  bool
	width    int
	height   int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	panes := panesFromConfig(cfg)
	spacing := cfg.EffectiveSpacing()

	// Saved layout wins over config defaults
	if saved, err := stateMgr.GetLayout(); err == nil && saved != nil && len(saved.Panes) > 0 {
		panes = panesFromState(saved)
		spacing = saved.Spacing
	}

	ti := textinput.New()
	ti.Placeholder = "fraction, e.g. 0.25"
	ti.CharLimit = 8
	ti.Width = 20

	m := model{
		panes:    panes,
		stateMgr: stateMgr,
		input:    ti,
	}
	m.row = tuirow.New()
	m.row.SetSpacing(spacing)
	m.syncRow()
	return m, nil
}

func panesFromConfig(cfg *config.Config) []paneDef {
	palette := styles.Palette(len(cfg.Panes))
	panes := make([]paneDef, len(cfg.Panes))
	for i, pc := range cfg.Panes {
		def := paneDef{title: pc.Title, color: pc.Color}
		if def.color == "" {
			def.color = palette[i]
		}
		if pc.Fraction != nil && *pc.Fraction < 1 {
			f := *pc.Fraction
			def.fraction = &f
		}
		panes[i] = def
	}
	return panes
}

func panesFromState(saved *state.LayoutState) []paneDef {
	panes := make([]paneDef, len(saved.Panes))
	for i, ps := range saved.Panes {
		panes[i] = paneDef{title: ps.Title, color: ps.Color, fraction: ps.Fraction}
	}
	return panes
}

// syncRow rebuilds the tuirow panes from the pane definitions, keeping
// size, spacing and focus.
func (m *model) syncRow() {
	focused := m.row.Focused()
	if focused < 0 {
		focused = 0
	}

	panes := make([]tuirow.Pane, len(m.panes))
	for i, def := range m.panes {
		view := panel{
			title:    def.title,
			color:    def.color,
			fraction: def.fraction,
			focused:  i == focused,
		}
		pane := tuirow.NewPane(view)
		if def.fraction != nil {
			pane = pane.WithFraction(*def.fraction)
		}
		panes[i] = pane
	}

	spacing := m.row.Spacing()
	row := tuirow.New(panes...)
	row.SetSpacing(spacing)
	row.SetSize(m.width, m.rowHeight())
	row.Focus(focused)
	m.row = row
}

func (m model) rowHeight() int {
	h := m.height - headerHeight - statusHeight
	if m.editing {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (m *model) save() {
	panes := make([]state.PaneState, len(m.panes))
	for i, def := range m.panes {
		panes[i] = state.PaneState{Title: def.title, Fraction: def.fraction, Color: def.color}
	}
	m.stateMgr.SaveLayout(state.LayoutState{Spacing: m.row.Spacing(), Panes: panes})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.row.SetSize(m.width, m.rowHeight())
		return m, nil

	case tea.MouseMsg:
		before := m.row.Focused()
		m.row, _ = m.row.Update(msg)
		if m.row.Focused() != before {
			m.syncRow()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.row.Focused()

	switch msg.String() {
	case "q", "ctrl+c":
		m.stateMgr.Close()
		return m, tea.Quit

	case "tab":
		if n := len(m.panes); n > 0 {
			m.row.Focus((focused + 1) % n)
			m.syncRow()
		}

	case "shift+tab":
		if n := len(m.panes); n > 0 {
			m.row.Focus((focused - 1 + n) % n)
			m.syncRow()
		}

	case "+", "=":
		m.nudgeFraction(focused, fractionStep)

	case "-":
		m.nudgeFraction(focused, -fractionStep)

	case "u":
		if focused >= 0 && focused < len(m.panes) {
			m.panes[focused].fraction = nil
			m.syncRow()
			m.save()
		}

	case "a":
		palette := styles.Palette(len(m.panes) + 1)
		m.panes = append(m.panes, paneDef{
			title: fmt.Sprintf("pane %d", len(m.panes)+1),
			color: palette[len(m.panes)],
		})
		m.syncRow()
		m.save()

	case "d":
		if focused >= 0 && focused < len(m.panes) {
			m.panes = append(m.panes[:focused], m.panes[focused+1:]...)
			m.row.RemovePane(focused)
			m.syncRow()
			m.save()
		}

	case "s":
		m.row.SetSpacing(m.row.Spacing() + 1)
		m.syncRow()
		m.save()

	case "S":
		m.row.SetSpacing(m.row.Spacing() - 1)
		m.syncRow()
		m.save()

	case "e":
		if focused >= 0 && focused < len(m.panes) {
			m.editing = true
			m.input.SetValue("")
			m.row.SetSize(m.width, m.rowHeight())
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if f, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64); err == nil {
			focused := m.row.Focused()
			if focused >= 0 && focused < len(m.panes) {
				if f < 1 {
					m.panes[focused].fraction = &f
				} else {
					// >= 1 means "share the remainder", like the attribute
					m.panes[focused].fraction = nil
				}
			}
		}
		m.editing = false
		m.input.Blur()
		m.syncRow()
		m.save()
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		m.row.SetSize(m.width, m.rowHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) nudgeFraction(i int, delta float64) {
	if i < 0 || i >= len(m.panes) {
		return
	}
	f := 1.0 / float64(len(m.panes)) // start a nudge from the even share
	if m.panes[i].fraction != nil {
		f = *m.panes[i].fraction
	}
	f += delta
	if f < 0 {
		f = 0
	}
	if f > 0.95 {
		f = 0.95
	}
	m.panes[i].fraction = &f
	m.syncRow()
	m.save()
}

func (m model) View() string {
	if m.width <= 0 {
		return ""
	}

	header := styles.Gradient("fracrow demo", "#00b4d8", "#ff6b6b")
	if pad := (m.width - lipgloss.Width(header)) / 2; pad > 0 {
		header = strings.Repeat(" ", pad) + header
	}

	widths := make([]string, 0, len(m.panes))
	for _, w := range m.row.Widths() {
		widths = append(widths, strconv.Itoa(w))
	}
	status := fmt.Sprintf(" widths %s · gap %d · tab focus · +/- share · e edit · u auto · a/d panes · s/S gap · q quit",
		strings.Join(widths, "+"), m.row.Spacing())

	parts := []string{
		header,
		m.row.View(),
		statusStyle.Render(render.Fit(status, m.width)),
	}
	if m.editing {
		parts = append(parts, "fraction: "+m.input.View())
	}
	return strings.Join(parts, "\n")
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
