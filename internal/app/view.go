package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dendrite/internal/render"
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(sidebarWidth - 2)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)

	statusPaused    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusRunning   = lipgloss.NewStyle().Foreground(lipgloss.Color("83"))
	statusRecording = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	toastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(0, 1)
)

// View renders the current frame.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		box := helpStyle.Render(titleStyle.Render("Help (esc to close, j/k to scroll)") + "\n" + m.help.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	if m.exportOpen {
		return m.popupView("Export configuration", m.exportInput.View())
	}
	if m.recordOpen {
		return m.popupView("Record AVI", m.recordInput.View())
	}

	canvas := canvasStyle.Render(m.canvasView())
	if m.Fullscreen {
		return canvas
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.sidebarView())
}

func (m Model) popupView(title, input string) string {
	box := popupStyle.Render(
		titleStyle.Render(title) + "\n\n" + input + "\n\n" +
			labelStyle.Render("enter to confirm, esc to cancel"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// canvasView paints the braille cells into a fixed character rectangle,
// batching runs of equally colored glyphs into one styled span.
func (m Model) canvasView() string {
	cells := render.Render(
		m.Sim, m.canvasW, m.canvasH,
		m.LUT, m.ColorByAge,
		m.Sim.Settings.ColorMode,
		m.Sim.Settings.HighlightRecent,
		m.Sim.Settings.InvertColors,
	)

	type slot struct {
		glyph rune
		color color.RGBA
		set   bool
	}
	grid := make([]slot, m.canvasW*m.canvasH)
	for _, c := range cells {
		if c.X < 0 || c.X >= m.canvasW || c.Y < 0 || c.Y >= m.canvasH {
			continue
		}
		grid[c.Y*m.canvasW+c.X] = slot{glyph: c.Glyph, color: c.Color, set: true}
	}

	var b strings.Builder
	var run strings.Builder
	for y := 0; y < m.canvasH; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var runColor color.RGBA
		runActive := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runActive {
				hex := fmt.Sprintf("#%02x%02x%02x", runColor.R, runColor.G, runColor.B)
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < m.canvasW; x++ {
			s := grid[y*m.canvasW+x]
			if !s.set {
				if runActive {
					flush()
					runActive = false
				}
				run.WriteByte(' ')
				continue
			}
			if !runActive || s.color != runColor {
				flush()
				runActive = true
				runColor = s.color
			}
			run.WriteRune(s.glyph)
		}
		flush()
	}
	return b.String()
}

func (m Model) sidebarView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dendrite"))
	b.WriteByte('\n')

	switch {
	case m.Sim.IsComplete():
		b.WriteString(statusRunning.Render("complete"))
	case m.Sim.Paused:
		b.WriteString(statusPaused.Render("paused"))
	default:
		b.WriteString(statusRunning.Render("growing"))
	}
	if m.Recorder.Recording() {
		b.WriteString("  " + statusRecording.Render(fmt.Sprintf("REC %d", m.Recorder.Frames())))
	}
	b.WriteByte('\n')

	b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d  (%.0f%%)",
		m.Sim.ParticlesStuck, m.Sim.NumParticles, m.Sim.Progress()*100)))
	b.WriteString("\n\n")

	for i, p := range paramTable {
		label := fmt.Sprintf("%-17s", p.label)
		if i == m.focus {
			b.WriteString(focusedStyle.Render("> " + label + " " + p.value(&m)))
		} else {
			b.WriteString("  " + labelStyle.Render(label) + " " + valueStyle.Render(p.value(&m)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("tab focus  up/dn adjust  h help"))

	if m.exportResult != "" {
		b.WriteByte('\n')
		b.WriteString(toastStyle.Render(m.exportResult))
	}
	if m.recordResult != "" {
		b.WriteByte('\n')
		b.WriteString(toastStyle.Render(m.recordResult))
	}

	return sidebarStyle.Render(b.String())
}

const helpText = `Simulation
  space      pause / resume
  r          restart with the current seed pattern
  1-0        seed: point line cross circle ring block
             multi-point starburst noise-patch scatter
  +/-        steps per frame
  p          cycle presets

Appearance
  c          cycle color scheme
  a          toggle value coloring
  m          cycle color mode (age/distance/density/direction)
  i          invert colors
  [/]        recent-particle highlight window
  v          fullscreen canvas

Physics
  w/e        walk step size
  n          neighborhood (von Neumann / Moore / extended)
  b          boundary (clamp / wrap / bounce / stick / absorb)
  s          spawn mode
  tab        focus next parameter, up/down to adjust

Files
  x          export configuration to JSON
  g          start / stop AVI recording

q or ctrl+c quits.`
