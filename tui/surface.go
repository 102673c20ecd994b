// Package tui renders slide widgets in a terminal with lipgloss and drives
// them from bubbletea mouse events.
package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/slide"
)

// Terminal cells map to host pixels at a fixed scale.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

type cellKind uint8

const (
	cellTrack cellKind = iota
	cellFill
	cellHandle
)

var (
	trackStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#e0e0e0")).Foreground(lipgloss.Color("#333333"))
	buttonStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#666666")).Foreground(lipgloss.Color("#ffffff"))
	successStyle = lipgloss.NewStyle().Bold(true)
)

// Surface renders a widget as rows of terminal cells. Positions are kept in
// host pixels and snapped to cells when drawn, so the same gesture math
// applies as in a window.
type Surface struct {
	host *slide.Host
	cfg  slide.Config

	offset       float64
	fill         float64
	completed    bool
	successShown bool
}

// NewSurface creates a terminal surface resolving relative widths against
// h's size.
func NewSurface(h *slide.Host) *Surface {
	return &Surface{host: h, cfg: slide.DefaultConfig()}
}

func (s *Surface) Render(cfg slide.Config) { s.cfg = cfg.Normalize() }
func (s *Surface) SetHandleOffset(offset float64) { s.offset = offset }
func (s *Surface) SetFillLength(length float64) { s.fill = length }
func (s *Surface) SetCompleted(completed bool) { s.completed = completed }
func (s *Surface) SetSuccessShown(shown bool) { s.successShown = shown }
func (s *Surface) SetTransitions(bool) {}

// Measure implements slide.Surface.
func (s *Surface) Measure() slide.Extent {
	if s.host == nil {
		return slide.Extent{}
	}
	return slide.MeasureLength(s.cfg.Width, s.host.Width)
}

// View returns the widget as newline-separated rows: the track, then the
// success message and reset button once completed.
func (s *Surface) View() string {
	snap := slide.ComputeSnapshot(s.cfg, slide.AvailableLength(s.cfg.Width, s.Measure()))
	cols := int(math.Round(snap.Available / CellWidth))
	trackRows := max(int(math.Round(s.cfg.Height/CellHeight)), 1)

	fillStyle := lipgloss.NewStyle().Background(hexColor(s.cfg.TrackColor)).Foreground(lipgloss.Color("#ffffff"))
	handleStyle := lipgloss.NewStyle().Background(hexColor(s.cfg.HandleColor)).Foreground(hexColor(s.cfg.TrackColor))

	kinds := make([]cellKind, cols)
	for c := range kinds {
		x := float64(c)*CellWidth + CellWidth/2
		switch {
		case x >= slide.Inset+s.offset && x < slide.Inset+s.offset+snap.HandleDiameter:
			kinds[c] = cellHandle
		case x >= slide.Inset && x < slide.Inset+s.fill:
			kinds[c] = cellFill
		default:
			kinds[c] = cellTrack
		}
	}

	var lines []string
	mid := trackRows / 2
	for r := 0; r < trackRows; r++ {
		text := make([]rune, cols)
		for i := range text {
			text[i] = ' '
		}
		if r == mid {
			if !s.completed {
				overlay(text, s.cfg.Text)
			}
			if hc := handleCenter(kinds); hc >= 0 {
				text[hc] = '>'
			}
		}
		lines = append(lines, styleRuns(kinds, text, [3]lipgloss.Style{trackStyle, fillStyle, handleStyle}))
	}

	if !s.completed {
		return strings.Join(lines, "\n")
	}

	successRow := int(snap.SuccessOrigin(s.cfg.Height).Y / CellHeight)
	b := snap.ResetButtonRect(s.cfg.Height)
	buttonRow := int((b.Y + b.Height/2) / CellHeight)
	for len(lines) <= buttonRow {
		lines = append(lines, "")
	}
	if s.successShown {
		row := make([]rune, cols)
		for i := range row {
			row[i] = ' '
		}
		overlay(row, s.cfg.SuccessText)
		lines[successRow] = successStyle.Foreground(hexColor(s.cfg.TrackColor)).Render(strings.TrimRight(string(row), " "))
	}
	bcol := int(b.X / CellWidth)
	bcols := int(b.Width / CellWidth)
	label := []rune(strings.Repeat(" ", bcols))
	overlay(label, "Reset")
	lines[buttonRow] = strings.Repeat(" ", bcol) + buttonStyle.Render(string(label))
	return strings.Join(lines, "\n")
}

// overlay writes s centered into row, clipped to its length.
func overlay(row []rune, s string) {
	rs := []rune(s)
	start := (len(row) - len(rs)) / 2
	for i, r := range rs {
		if p := start + i; p >= 0 && p < len(row) {
			row[p] = r
		}
	}
}

// handleCenter returns the middle column of the handle, or -1.
func handleCenter(kinds []cellKind) int {
	first, last := -1, -1
	for i, k := range kinds {
		if k == cellHandle {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return -1
	}
	return (first + last) / 2
}

// styleRuns renders consecutive cells of the same kind with one style.
func styleRuns(kinds []cellKind, text []rune, styles [3]lipgloss.Style) string {
	var b strings.Builder
	for i := 0; i < len(kinds); {
		j := i
		for j < len(kinds) && kinds[j] == kinds[i] {
			j++
		}
		b.WriteString(styles[kinds[i]].Render(string(text[i:j])))
		i = j
	}
	return b.String()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
