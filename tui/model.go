package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/slide"
)

// frameInterval is how often the model advances the host's timers.
const frameInterval = time.Second / 30

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
)

// tickMsg advances the host's timers.
type tickMsg time.Time

// Model is a bubbletea model hosting one widget. Terminal mouse events are
// converted to host pixels at the center of the cell under the pointer and
// fed to the host as pointer 0.
type Model struct {
	host    *slide.Host
	widget  *slide.Widget
	surface *Surface

	pressed  bool
	status   string
	last     time.Time
	quitting bool
}

// New attaches w to h and returns a model driving them. The surface should
// be the one w renders to.
func New(h *slide.Host, w *slide.Widget, s *Surface) *Model {
	m := &Model{host: h, widget: w, surface: s}
	h.OnAccepted(func(sig slide.Signal) {
		m.status = fmt.Sprintf("accepted (widget %d)", sig.WidgetID)
	})
	h.OnReset(func(sig slide.Signal) {
		m.status = fmt.Sprintf("reset (widget %d)", sig.WidgetID)
	})
	w.Attach(h)
	return m
}

// Status returns the last signal description.
func (m *Model) Status() string { return m.status }

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.last = time.Now()
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.widget.ProgrammaticReset()
		case "c":
			m.widget.ProgrammaticComplete()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.host.SetSize(float64(msg.Width)*CellWidth, float64(msg.Height)*CellHeight)
		m.widget.Reconfigure(m.widget.Config())
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.host.Advance(now.Sub(m.last).Seconds())
		}
		m.last = now
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := CellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.host.Feed(0, x, y, true)
	case tea.MouseActionMotion:
		m.host.Feed(0, x, y, m.pressed)
	case tea.MouseActionRelease:
		m.pressed = false
		m.host.Feed(0, x, y, false)
	}
}

// CellCenter returns the host position of the center of a terminal cell.
func CellCenter(col, row int) (x, y float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + CellHeight/2
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	col := int(m.widget.X / CellWidth)
	row := int(m.widget.Y / CellHeight)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", row))
	pad := strings.Repeat(" ", col)
	for _, line := range strings.Split(m.surface.View(), "\n") {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("drag the handle · c complete · r reset · q quit"))
	return b.String()
}

// Run starts a full-screen program with mouse motion reporting.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
