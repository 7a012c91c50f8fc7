//go:build ebiten

package gl

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// gridPainter uploads the aggregate into a single RGBA image, one pixel per
// grid cell, and draws it scaled.
type gridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func newGridPainter(w, h int) *gridPainter {
	gp := &gridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// blit fills the pixel buffer from the simulation grid through the color LUT
// and draws the result onto dst.
func (gp *gridPainter) blit(dst *ebiten.Image, s *sim.Simulation, lut *render.LUT, colorByValue bool, scale int) {
	if s.Width() != gp.w || s.Height() != gp.h {
		return
	}

	invNumParticles := 1.0 / float64(max(s.NumParticles, 1))
	maxRadius := math.Max(s.MaxRadius, 1.0)
	mode := s.Settings.ColorMode
	invert := s.Settings.InvertColors
	highlight := s.Settings.HighlightRecent
	stuck := s.ParticlesStuck

	for y := 0; y < gp.h; y++ {
		for x := 0; x < gp.w; x++ {
			base := (y*gp.w + x) * 4

			p, ok := s.GetParticle(x, y)
			if !ok {
				gp.buf[base+0] = 0
				gp.buf[base+1] = 0
				gp.buf[base+2] = 0
				gp.buf[base+3] = 255
				continue
			}

			var c color.RGBA
			switch {
			case highlight > 0 && p.Age+highlight >= stuck:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			case colorByValue:
				var value float64
				switch mode {
				case sim.ColorByDistance:
					value = p.Distance / maxRadius
				case sim.ColorByDensity:
					value = float64(p.NeighborCount) / 8.0
				case sim.ColorByDirection:
					value = (p.Direction + math.Pi) / (2 * math.Pi)
				default:
					value = float64(p.Age) * invNumParticles
				}
				if invert {
					value = 1 - value
				}
				c = lut.At(value)
			default:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}

			gp.buf[base+0] = c.R
			gp.buf[base+1] = c.G
			gp.buf[base+2] = c.B
			gp.buf[base+3] = 255
		}
	}

	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
