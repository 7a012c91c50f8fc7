//go:build !ebiten

// Package gl hosts the optional windowed viewer. It only builds with the
// ebiten tag; this headless stub keeps the package importable without a GPU
// backend.
package gl

import (
	"fmt"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*sim.Simulation, render.Scheme, int, int) *Game {
	panic("gl.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("gl.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
