//go:build ebiten

package gl

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"dendrite/internal/sim"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

// hud paints a small stats panel in the top-left corner of the viewer.
type hud struct {
	visible bool
	pixel   *ebiten.Image
}

func newHUD() *hud {
	h := &hud{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

func (h *hud) toggle() { h.visible = !h.visible }

func (h *hud) draw(screen *ebiten.Image, s *sim.Simulation, schemeName string) {
	if !h.visible {
		return
	}

	status := "growing"
	switch {
	case s.IsComplete():
		status = "complete"
	case s.Paused:
		status = "paused"
	}

	lines := []string{
		fmt.Sprintf("dendrite  [%s]", status),
		fmt.Sprintf("particles  %d / %d (%.0f%%)", s.ParticlesStuck, s.NumParticles, s.Progress()*100),
		fmt.Sprintf("stickiness %.2f", s.Stickiness),
		fmt.Sprintf("seed       %s", s.Pattern.Name()),
		fmt.Sprintf("scheme     %s  mode %s", schemeName, s.Settings.ColorMode.Name()),
		fmt.Sprintf("radius     %.1f", s.MaxRadius),
	}

	width := 0
	face := basicfont.Face7x13
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudPadding), float64(len(lines)*hudLineHeight+2*hudPadding))
	op.ColorM.Scale(0, 0, 0, 0.65)
	screen.DrawImage(h.pixel, op)

	for i, l := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, l, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
