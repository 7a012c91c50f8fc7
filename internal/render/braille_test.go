package render

import (
	"testing"

	"dendrite/internal/sim"
)

func TestDotBitsCoverTheFullPattern(t *testing.T) {
	var all byte
	seen := map[byte]bool{}
	for _, col := range brailleDots {
		for _, bit := range col {
			if seen[bit] {
				t.Fatalf("dot bit %#02x appears twice", bit)
			}
			seen[bit] = true
			all |= bit
		}
	}
	if all != 0xFF {
		t.Fatalf("dot bits cover %#02x, expected 0xFF", all)
	}
}

func TestCalculateSimulationSize(t *testing.T) {
	cases := []struct {
		cw, ch, w, h int
	}{
		{40, 20, 80, 80},
		{100, 40, 200, 160},
		{10, 5, 64, 64},
		{0, 0, 64, 64},
	}
	for _, c := range cases {
		w, h := CalculateSimulationSize(c.cw, c.ch)
		if w != c.w || h != c.h {
			t.Fatalf("CalculateSimulationSize(%d, %d) = (%d, %d), expected (%d, %d)",
				c.cw, c.ch, w, h, c.w, c.h)
		}
	}
}

func TestRenderEmitsOnlyOccupiedCells(t *testing.T) {
	s := sim.NewSeeded(128, 128, 1)
	s.ResetWithSeed(sim.SeedBlock)
	lut := SchemeRainbow.BuildLUT()

	cells := Render(s, 64, 32, lut, true, sim.ColorByAge, 0, false)
	if len(cells) == 0 {
		t.Fatal("no cells rendered for a seeded block")
	}
	for _, c := range cells {
		if c.Glyph == rune(brailleBase) {
			t.Fatalf("cell (%d,%d) rendered with an empty pattern", c.X, c.Y)
		}
		if c.Glyph < rune(brailleBase) || c.Glyph > rune(brailleBase+0xFF) {
			t.Fatalf("cell (%d,%d) glyph %q outside the braille block", c.X, c.Y, c.Glyph)
		}
		if c.X < 0 || c.X >= 64 || c.Y < 0 || c.Y >= 32 {
			t.Fatalf("cell outside the canvas at (%d,%d)", c.X, c.Y)
		}
	}
}

func TestRenderMonochromeWithoutValueColoring(t *testing.T) {
	s := sim.NewSeeded(128, 128, 1)
	s.ResetWithSeed(sim.SeedBlock)
	lut := SchemeFire.BuildLUT()

	for _, c := range Render(s, 64, 32, lut, false, sim.ColorByAge, 0, false) {
		if c.Color.R != 255 || c.Color.G != 255 || c.Color.B != 255 {
			t.Fatalf("cell (%d,%d) colored %v with value coloring off", c.X, c.Y, c.Color)
		}
	}
}

func TestRenderHighlightsRecentParticles(t *testing.T) {
	s := sim.NewSeeded(128, 128, 1)
	s.NumParticles = 120
	for i := 0; i < 30000 && !s.IsComplete(); i++ {
		s.Step()
	}
	lut := SchemeFire.BuildLUT()

	// A window covering every particle forces the highlight color everywhere.
	cells := Render(s, 64, 32, lut, true, sim.ColorByAge, s.ParticlesStuck+1, false)
	if len(cells) == 0 {
		t.Fatal("no cells rendered")
	}
	for _, c := range cells {
		if c.Color != highlightColor {
			t.Fatalf("cell (%d,%d) colored %v, expected highlight", c.X, c.Y, c.Color)
		}
	}
}

func TestRenderZeroCanvas(t *testing.T) {
	s := sim.NewSeeded(64, 64, 1)
	lut := SchemeRainbow.BuildLUT()
	if cells := Render(s, 0, 0, lut, true, sim.ColorByAge, 0, false); cells != nil {
		t.Fatalf("zero canvas rendered %d cells", len(cells))
	}
}
