// Package app implements the interactive terminal shell around the
// simulation: key dispatch, the parameter sidebar, popups and the frame
// loop. It is a bubbletea program; all state lives in Model and mutates
// only inside Update.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dendrite/internal/config"
	"dendrite/internal/presets"
	"dendrite/internal/record"
	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// sidebarWidth is the character width reserved for the controls panel.
const sidebarWidth = 34

// frameInterval targets roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

// tickMsg drives the simulation between input events.
type tickMsg time.Time

// Model is the complete TUI state.
type Model struct {
	Sim *sim.Simulation

	Scheme     render.Scheme
	LUT        *render.LUT
	ColorByAge bool

	StepsPerFrame int
	Fullscreen    bool

	Presets   *presets.Manager
	presetIdx int

	Recorder *record.Recorder

	focus int

	canvasW, canvasH int
	width, height    int
	ready            bool

	showHelp bool
	help     viewport.Model

	exportOpen   bool
	exportInput  textinput.Model
	exportResult string

	recordOpen      bool
	recordInput     textinput.Model
	recordResult    string
	recordWasPaused bool

	quitting bool
}

// New builds a model for the given initial canvas size in character cells.
func New(canvasWidth, canvasHeight int) Model {
	simW, simH := render.CalculateSimulationSize(canvasWidth, canvasHeight)
	scheme := render.SchemeRainbow

	exportInput := textinput.New()
	exportInput.SetValue("dla-config.json")
	recordInput := textinput.New()
	recordInput.SetValue("dla_recording.avi")

	return Model{
		Sim:           sim.New(simW, simH),
		Scheme:        scheme,
		LUT:           scheme.BuildLUT(),
		ColorByAge:    true,
		StepsPerFrame: 5,
		Presets:       presets.NewManager(),
		presetIdx:     -1,
		Recorder:      record.New(),
		canvasW:       canvasWidth,
		canvasH:       canvasHeight,
		exportInput:   exportInput,
		recordInput:   recordInput,
	}
}

// ApplyConfig loads a saved configuration into the model and reseeds the
// simulation.
func (m *Model) ApplyConfig(c config.AppConfig) {
	m.Sim.Settings = c.Settings
	m.Sim.Stickiness = c.Stickiness
	m.Sim.NumParticles = min(max(c.NumParticles, 100), m.Sim.MaxParticles())
	m.Scheme = c.ColorScheme
	m.LUT = m.Scheme.BuildLUT()
	m.StepsPerFrame = min(max(c.StepsPerFrame, 1), 50)
	m.ColorByAge = c.ColorByAge
	m.Sim.ResetWithSeed(c.SeedPattern)
}

// CurrentConfig snapshots the model as an exportable configuration.
func (m *Model) CurrentConfig() config.AppConfig {
	return config.AppConfig{
		Version:       config.Version,
		Settings:      m.Sim.Settings,
		SeedPattern:   m.Sim.Pattern,
		Stickiness:    m.Sim.Stickiness,
		NumParticles:  m.Sim.NumParticles,
		ColorScheme:   m.Scheme,
		StepsPerFrame: m.StepsPerFrame,
		ColorByAge:    m.ColorByAge,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is the single event handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, tea.Quit
		}
		m.advance()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyCanvasSize()
		m.help = viewport.New(max(msg.Width-8, 10), max(msg.Height-6, 3))
		m.help.SetContent(helpText)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// advance runs the per-frame simulation steps and feeds the recorder.
func (m *Model) advance() {
	if !m.Sim.Paused {
		for i := 0; i < m.StepsPerFrame; i++ {
			if !m.Sim.Step() {
				break
			}
		}
	}
	if m.Recorder.Recording() && m.Recorder.ShouldCapture() {
		err := m.Recorder.CaptureFrame(m.Sim, m.LUT, m.ColorByAge, m.Sim.Settings.ColorMode, m.Sim.Settings.InvertColors)
		if err != nil {
			// A capture failure ends the recording, never the simulation.
			m.recordResult = "Recording failed: " + err.Error()
			m.Recorder.Stop()
		}
	}
}

func (m *Model) applyCanvasSize() {
	w, h := m.width, m.height
	if m.Fullscreen {
		m.canvasW = max(w-2, 1)
		m.canvasH = max(h-2, 1)
	} else {
		m.canvasW = max(w-sidebarWidth-2, 1)
		m.canvasH = max(h-2, 1)
	}
	simW, simH := render.CalculateSimulationSize(m.canvasW, m.canvasH)
	m.Sim.Resize(simW, simH)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Open popups swallow every key.
	if m.exportOpen {
		return m.handleExportKey(msg)
	}
	if m.recordOpen {
		return m.handleRecordKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "esc", "h", "?", "q":
			m.showHelp = false
		case "j", "down":
			m.help.LineDown(1)
		case "k", "up":
			m.help.LineUp(1)
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.Recorder.Recording() {
			m.Recorder.Stop()
		}
		m.quitting = true
		return m, tea.Quit
	case " ":
		m.Sim.TogglePause()
	case "r":
		m.Sim.Reset()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		m.Sim.ResetWithSeed(patternForDigit(msg.String()))
	case "c":
		m.Scheme = m.Scheme.Next()
		m.LUT = m.Scheme.BuildLUT()
	case "a":
		m.ColorByAge = !m.ColorByAge
	case "v":
		m.Fullscreen = !m.Fullscreen
		m.applyCanvasSize()
	case "h", "?":
		m.showHelp = true
		m.help.GotoTop()
	case "m":
		m.Sim.Settings.ColorMode = m.Sim.Settings.ColorMode.Next()
	case "i":
		m.Sim.Settings.InvertColors = !m.Sim.Settings.InvertColors
	case "n":
		m.Sim.Settings.Neighborhood = m.Sim.Settings.Neighborhood.Next()
	case "b":
		m.Sim.Settings.BoundaryBehavior = m.Sim.Settings.BoundaryBehavior.Next()
	case "s":
		m.Sim.Settings.SpawnMode = m.Sim.Settings.SpawnMode.Next()
	case "w":
		m.Sim.Settings.AdjustWalkStepSize(0.5)
	case "e":
		m.Sim.Settings.AdjustWalkStepSize(-0.5)
	case "[":
		m.Sim.Settings.AdjustHighlightRecent(-5)
	case "]":
		m.Sim.Settings.AdjustHighlightRecent(5)
	case "p":
		m.applyNextPreset()
	case "tab":
		m.focus = (m.focus + 1) % len(paramTable)
	case "shift+tab":
		m.focus = (m.focus + len(paramTable) - 1) % len(paramTable)
	case "up":
		paramTable[m.focus].up(&m)
	case "down":
		paramTable[m.focus].down(&m)
	case "+", "=":
		m.StepsPerFrame = min(m.StepsPerFrame+1, 50)
	case "-", "_":
		m.StepsPerFrame = max(m.StepsPerFrame-1, 1)
	case "x":
		m.exportOpen = true
		m.exportResult = ""
		m.exportInput.Focus()
	case "g":
		if m.Recorder.Recording() {
			path, err := m.Recorder.Stop()
			if err != nil {
				m.recordResult = "Recording failed: " + err.Error()
			} else {
				m.recordResult = "Saved " + path
			}
		} else {
			m.recordOpen = true
			m.recordResult = ""
			m.recordWasPaused = m.Sim.Paused
			m.Sim.Paused = true
			m.recordInput.Focus()
		}
	}

	return m, nil
}

func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exportOpen = false
		m.exportInput.Blur()
		return m, nil
	case "enter":
		path := m.exportInput.Value()
		if err := m.CurrentConfig().Save(path); err != nil {
			m.exportResult = "Export failed: " + err.Error()
		} else {
			m.exportResult = "Exported " + path
		}
		m.exportOpen = false
		m.exportInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	return m, cmd
}

func (m Model) handleRecordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.recordOpen = false
		m.recordInput.Blur()
		m.Sim.Paused = m.recordWasPaused
		return m, nil
	case "enter":
		path := m.recordInput.Value()
		if err := m.Recorder.Start(path, m.Sim.Width(), m.Sim.Height()); err != nil {
			m.recordResult = "Recording failed: " + err.Error()
		} else {
			m.recordResult = "Recording to " + path
		}
		m.recordOpen = false
		m.recordInput.Blur()
		m.Sim.Paused = m.recordWasPaused
		return m, nil
	}
	var cmd tea.Cmd
	m.recordInput, cmd = m.recordInput.Update(msg)
	return m, cmd
}

func (m *Model) applyNextPreset() {
	all := m.Presets.All()
	if len(all) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(all)
	p := all[m.presetIdx]
	m.Sim.Settings = p.Settings
	m.Sim.Stickiness = p.BaseStickiness
	m.Sim.NumParticles = min(max(p.NumParticles, 100), m.Sim.MaxParticles())
	m.Sim.ResetWithSeed(p.SeedPattern)
}

func patternForDigit(d string) sim.SeedPattern {
	switch d {
	case "2":
		return sim.SeedLine
	case "3":
		return sim.SeedCross
	case "4":
		return sim.SeedCircle
	case "5":
		return sim.SeedRing
	case "6":
		return sim.SeedBlock
	case "7":
		return sim.SeedMultiPoint
	case "8":
		return sim.SeedStarburst
	case "9":
		return sim.SeedNoisePatch
	case "0":
		return sim.SeedScatter
	default:
		return sim.SeedPoint
	}
}
