//go:build ebiten

// Package gl hosts the optional windowed viewer. It only builds with the
// ebiten tag; the headless build ships a stub so the rest of the module
// never links a GPU backend.
package gl

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim     *sim.Simulation
	painter *gridPainter
	hud     *hud

	scheme       render.Scheme
	lut          *render.LUT
	colorByValue bool

	scale         int
	stepsPerFrame int
	stepOnce      bool
}

// New constructs a Game around an already seeded simulation.
func New(s *sim.Simulation, scheme render.Scheme, scale, stepsPerFrame int) *Game {
	return &Game{
		sim:           s,
		painter:       newGridPainter(s.Width(), s.Height()),
		hud:           newHUD(),
		scheme:        scheme,
		lut:           scheme.BuildLUT(),
		colorByValue:  true,
		scale:         scale,
		stepsPerFrame: stepsPerFrame,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.scheme = g.scheme.Next()
		g.lut = g.scheme.BuildLUT()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.colorByValue = !g.colorByValue
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sim.Settings.ColorMode = g.sim.Settings.ColorMode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.sim.Settings.InvertColors = !g.sim.Settings.InvertColors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.toggle()
	}

	if g.stepOnce {
		g.sim.Step()
		g.stepOnce = false
		return nil
	}
	if !g.sim.Paused {
		for i := 0; i < g.stepsPerFrame; i++ {
			if !g.sim.Step() {
				break
			}
		}
	}
	return nil
}

// Draw renders the aggregate and the stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.blit(screen, g.sim, g.lut, g.colorByValue, g.scale)
	g.hud.draw(screen, g.sim, g.scheme.Name())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Width() * g.scale, g.sim.Height() * g.scale
}
