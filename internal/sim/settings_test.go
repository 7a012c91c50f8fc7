package sim

import (
	"math"
	"testing"
)

func TestAdjustClampsToRange(t *testing.T) {
	s := DefaultSettings()

	for i := 0; i < 20; i++ {
		s.AdjustWalkStepSize(1.0)
	}
	if s.WalkStepSize != 5.0 {
		t.Fatalf("walk step size clamped to %v, expected 5.0", s.WalkStepSize)
	}
	for i := 0; i < 20; i++ {
		s.AdjustWalkStepSize(-1.0)
	}
	if s.WalkStepSize != 0.5 {
		t.Fatalf("walk step size clamped to %v, expected 0.5", s.WalkStepSize)
	}

	for i := 0; i < 10; i++ {
		s.AdjustMultiContactMin(1)
	}
	if s.MultiContactMin != 4 {
		t.Fatalf("multi-contact min clamped to %d, expected 4", s.MultiContactMin)
	}

	for i := 0; i < 100; i++ {
		s.AdjustMaxWalkIterations(10000)
	}
	if s.MaxWalkIterations != 50000 {
		t.Fatalf("max walk iterations clamped to %d, expected 50000", s.MaxWalkIterations)
	}
	for i := 0; i < 100; i++ {
		s.AdjustMaxWalkIterations(-10000)
	}
	if s.MaxWalkIterations != 1000 {
		t.Fatalf("max walk iterations clamped to %d, expected 1000", s.MaxWalkIterations)
	}
}

func TestBiasAngleWrapsAt360(t *testing.T) {
	s := DefaultSettings()
	s.AdjustWalkBiasAngle(350)
	s.AdjustWalkBiasAngle(20)
	if s.WalkBiasAngle < 0 || s.WalkBiasAngle >= 360 {
		t.Fatalf("bias angle %v outside [0, 360)", s.WalkBiasAngle)
	}
	if math.Abs(s.WalkBiasAngle-10) > 1e-9 {
		t.Fatalf("bias angle = %v, expected 10", s.WalkBiasAngle)
	}

	s.AdjustWalkBiasAngle(-30)
	if s.WalkBiasAngle < 0 || s.WalkBiasAngle >= 360 {
		t.Fatalf("negative wrap left bias angle at %v", s.WalkBiasAngle)
	}
}

func TestEffectiveStickinessStaysAProbability(t *testing.T) {
	s := DefaultSettings()
	s.TipStickiness = 1.0
	s.SideStickiness = 0.1
	s.StickinessGradient = 0.5
	s.Neighborhood = Moore

	for n := 0; n <= s.Neighborhood.MaxNeighbors(); n++ {
		for _, dist := range []float64{0, 10, 100, 500} {
			p := s.EffectiveStickiness(n, dist, 1.0)
			if p < 0 || p > 1 {
				t.Fatalf("stickiness(%d, %v) = %v outside [0, 1]", n, dist, p)
			}
		}
	}
}

func TestEffectiveStickinessTipVsSide(t *testing.T) {
	s := DefaultSettings()
	s.TipStickiness = 1.0
	s.SideStickiness = 0.2

	tip := s.EffectiveStickiness(0, 0, 0.8)
	side := s.EffectiveStickiness(s.Neighborhood.MaxNeighbors(), 0, 0.8)
	if tip <= side {
		t.Fatalf("tip stickiness %v should exceed side stickiness %v", tip, side)
	}
}

func TestEffectiveStickinessGradientGrowsWithDistance(t *testing.T) {
	s := DefaultSettings()
	s.StickinessGradient = 0.5

	near := s.EffectiveStickiness(1, 0, 0.5)
	far := s.EffectiveStickiness(1, 100, 0.5)
	if far <= near {
		t.Fatalf("positive gradient: far %v should exceed near %v", far, near)
	}
}
