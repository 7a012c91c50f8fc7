// Package render samples the simulation grid into colored braille glyphs.
// Each braille character covers a 2x4 block of sub-positions, giving the
// terminal eight "pixels" per character cell.
package render

import (
	"image/color"
	"math"

	"dendrite/internal/sim"
)

// brailleBase is the first codepoint of the Unicode braille block
// (U+2800..U+28FF, one character per 8-bit dot pattern).
const brailleBase = 0x2800

// brailleDots maps a sub-position (column, row) to its dot bit:
//
//	(0,0)=0x01  (1,0)=0x08
//	(0,1)=0x02  (1,1)=0x10
//	(0,2)=0x04  (1,2)=0x20
//	(0,3)=0x40  (1,3)=0x80
var brailleDots = [2][4]byte{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// highlightColor overrides the gradient for recently stuck particles.
var highlightColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Cell is one rendered glyph: a braille character at a canvas position with
// its resolved color.
type Cell struct {
	X, Y  int
	Glyph rune
	Color color.RGBA
}

// Render samples the grid into braille cells for a canvas of the given
// character dimensions. Cells whose 2x4 block holds no particle are
// omitted, so every emitted pattern byte is nonzero. The result is
// row-major and stable for an unchanged grid; Render performs no mutation.
//
// When the grid is larger than the oversampled canvas the nearest-neighbor
// sampling is lossy and isolated particles can be skipped. That is an
// accepted display approximation, not a simulation defect.
func Render(s *sim.Simulation, canvasWidth, canvasHeight int, lut *LUT, colorByValue bool, mode sim.ColorMode, highlightRecent int, invert bool) []Cell {
	brailleWidth := canvasWidth * 2
	brailleHeight := canvasHeight * 4
	if brailleWidth <= 0 || brailleHeight <= 0 {
		return nil
	}

	scaleX := float64(s.Width()) / float64(brailleWidth)
	scaleY := float64(s.Height()) / float64(brailleHeight)

	invNumParticles := 1.0 / float64(max(s.NumParticles, 1))
	maxRadius := math.Max(s.MaxRadius, 1.0)
	particlesStuck := s.ParticlesStuck

	cells := make([]Cell, 0, canvasWidth*canvasHeight)

	for cy := 0; cy < canvasHeight; cy++ {
		for cx := 0; cx < canvasWidth; cx++ {
			var pattern byte
			totalValue := 0.0
			dotCount := 0
			recent := false

			baseBX := cx * 2
			baseBY := cy * 4

			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					simX := int(float64(baseBX+dx) * scaleX)
					simY := int(float64(baseBY+dy) * scaleY)

					p, ok := s.GetParticle(simX, simY)
					if !ok {
						continue
					}
					pattern |= brailleDots[dx][dy]
					dotCount++

					if highlightRecent > 0 && p.Age+highlightRecent >= particlesStuck {
						recent = true
					}

					var value float64
					switch mode {
					case sim.ColorByDistance:
						value = p.Distance / maxRadius
					case sim.ColorByDensity:
						value = float64(p.NeighborCount) / 8.0
					case sim.ColorByDirection:
						// Map (-π, π] to [0, 1).
						value = (p.Direction + math.Pi) / (2 * math.Pi)
					default: // sim.ColorByAge
						value = float64(p.Age) * invNumParticles
					}
					totalValue += value
				}
			}

			if pattern == 0 {
				continue
			}

			var c color.RGBA
			switch {
			case recent:
				c = highlightColor
			case colorByValue && dotCount > 0:
				t := totalValue / float64(dotCount)
				if invert {
					t = 1 - t
				}
				c = lut.At(t)
			default:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}

			cells = append(cells, Cell{
				X:     cx,
				Y:     cy,
				Glyph: rune(brailleBase + int(pattern)),
				Color: c,
			})
		}
	}

	return cells
}

// CalculateSimulationSize returns grid dimensions matched to a canvas so
// that braille sub-positions and grid cells line up near 1:1, with a 64-cell
// floor on both axes.
func CalculateSimulationSize(canvasWidth, canvasHeight int) (int, int) {
	return max(canvasWidth*2, 64), max(canvasHeight*4, 64)
}
