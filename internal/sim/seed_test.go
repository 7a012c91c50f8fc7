package sim

import "testing"

var allPatterns = []SeedPattern{
	SeedPoint, SeedLine, SeedCross, SeedCircle, SeedRing,
	SeedBlock, SeedNoisePatch, SeedScatter, SeedMultiPoint, SeedStarburst,
}

func TestSeedCountsMatchOccupiedCells(t *testing.T) {
	s := NewSeeded(128, 128, 1)
	for _, p := range allPatterns {
		s.ResetWithSeed(p)
		occupied := s.Grid().CountOccupied()
		if s.ParticlesStuck != occupied {
			t.Fatalf("%s: ParticlesStuck=%d but grid holds %d particles",
				p.Name(), s.ParticlesStuck, occupied)
		}
		if s.ParticlesStuck == 0 {
			t.Fatalf("%s seeded nothing", p.Name())
		}
	}
}

func TestSeedPatternsFitSmallGrids(t *testing.T) {
	s := NewSeeded(64, 64, 7)
	for _, p := range allPatterns {
		s.ResetWithSeed(p)
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if _, ok := s.GetParticle(x, y); ok {
					if x == 0 || y == 0 || x == s.Width()-1 || y == s.Height()-1 {
						t.Fatalf("%s seeded the border cell (%d,%d)", p.Name(), x, y)
					}
				}
			}
		}
	}
}

func TestSeedMaxRadiusCoversSeeds(t *testing.T) {
	s := NewSeeded(128, 128, 3)
	cx, cy := s.center()
	for _, p := range allPatterns {
		s.ResetWithSeed(p)
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if _, ok := s.GetParticle(x, y); !ok {
					continue
				}
				dx := float64(x) - cx
				dy := float64(y) - cy
				// Allow one cell of slack for integer placement.
				if dx*dx+dy*dy > (s.MaxRadius+1.5)*(s.MaxRadius+1.5) {
					t.Fatalf("%s: seed at (%d,%d) lies outside MaxRadius %v",
						p.Name(), x, y, s.MaxRadius)
				}
			}
		}
	}
}

func TestResetClearsPreviousPattern(t *testing.T) {
	s := NewSeeded(96, 96, 11)
	s.ResetWithSeed(SeedBlock)
	blockCount := s.ParticlesStuck

	s.ResetWithSeed(SeedPoint)
	if s.ParticlesStuck != 1 {
		t.Fatalf("point reseed left %d particles", s.ParticlesStuck)
	}
	if got := s.Grid().CountOccupied(); got != 1 {
		t.Fatalf("point reseed left %d occupied cells (block had %d)", got, blockCount)
	}
	if s.MaxRadius != 1.0 {
		t.Fatalf("point seed MaxRadius = %v, expected 1.0", s.MaxRadius)
	}
}

func TestParseSeedPatternSpellings(t *testing.T) {
	cases := map[string]SeedPattern{
		"point":       SeedPoint,
		"line":        SeedLine,
		"cross":       SeedCross,
		"circle":      SeedCircle,
		"ring":        SeedRing,
		"block":       SeedBlock,
		"filled":      SeedBlock,
		"noise-patch": SeedNoisePatch,
		"noise":       SeedNoisePatch,
		"scatter":     SeedScatter,
		"multi-point": SeedMultiPoint,
		"starburst":   SeedStarburst,
		"star":        SeedStarburst,
		"gibberish":   SeedPoint,
	}
	for in, want := range cases {
		if got := ParseSeedPattern(in); got != want {
			t.Fatalf("ParseSeedPattern(%q) = %s, expected %s", in, got.Name(), want.Name())
		}
	}
}
