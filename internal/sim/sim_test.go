package sim

import "testing"

func TestStepCommitsAtMostOneParticle(t *testing.T) {
	s := NewSeeded(96, 96, 42)
	s.NumParticles = 200

	for i := 0; i < 2000 && !s.IsComplete(); i++ {
		before := s.ParticlesStuck
		s.Step()
		delta := s.ParticlesStuck - before
		if delta < 0 || delta > 1 {
			t.Fatalf("step %d committed %d particles", i, delta)
		}
		if s.ParticlesStuck != s.Grid().CountOccupied() {
			t.Fatalf("step %d: counter %d disagrees with grid %d",
				i, s.ParticlesStuck, s.Grid().CountOccupied())
		}
	}
}

func TestStepReturnsFalseWhenPaused(t *testing.T) {
	s := NewSeeded(64, 64, 1)
	s.TogglePause()
	if s.Step() {
		t.Fatal("paused Step returned true")
	}
	if s.ParticlesStuck != 1 {
		t.Fatalf("paused Step changed the grid: %d particles", s.ParticlesStuck)
	}
}

func TestStepReturnsFalseWhenComplete(t *testing.T) {
	s := NewSeeded(64, 64, 1)
	s.NumParticles = s.ParticlesStuck
	if !s.IsComplete() {
		t.Fatal("simulation should report complete at the target count")
	}
	if s.Step() {
		t.Fatal("complete Step returned true")
	}
}

func TestTinyTargetCompletesAtReset(t *testing.T) {
	s := NewSeeded(64, 64, 1)
	s.NumParticles = 1
	if !s.IsComplete() {
		t.Fatal("a point seed already satisfies a target of 1")
	}
	if s.Progress() != 1.0 {
		t.Fatalf("Progress() = %v, expected 1.0", s.Progress())
	}
}

func TestDiscardedWalkersLeaveTheGridUntouched(t *testing.T) {
	s := NewSeeded(64, 64, 9)
	s.NumParticles = 50
	// A lone point can never satisfy four simultaneous contacts, so every
	// walker is eventually discarded by escape or timeout.
	s.Settings.MultiContactMin = 4
	s.Settings.Neighborhood = VonNeumann
	s.Settings.MaxWalkIterations = 1000

	before := make([]cell, len(s.grid.cells))
	copy(before, s.grid.cells)

	for i := 0; i < 200; i++ {
		if !s.Step() {
			t.Fatalf("step %d reported completion", i)
		}
	}

	if s.ParticlesStuck != 1 {
		t.Fatalf("discarded walkers committed particles: %d stuck", s.ParticlesStuck)
	}
	for i := range before {
		if before[i] != s.grid.cells[i] {
			t.Fatalf("grid cell %d changed without a commit", i)
		}
	}
}

func TestGrowthReachesTarget(t *testing.T) {
	s := NewSeeded(96, 96, 7)
	s.NumParticles = 150
	s.Stickiness = 1.0

	// Full stickiness with a circle spawn converges quickly.
	for i := 0; i < 50000 && !s.IsComplete(); i++ {
		s.Step()
	}
	if !s.IsComplete() {
		t.Fatalf("aggregate stalled at %d of %d particles", s.ParticlesStuck, s.NumParticles)
	}
	if s.Progress() < 1.0 {
		t.Fatalf("Progress() = %v after completion", s.Progress())
	}
}

func TestDeterministicGivenSeed(t *testing.T) {
	run := func() (int, float64) {
		s := NewSeeded(96, 96, 99)
		s.NumParticles = 120
		for i := 0; i < 30000 && !s.IsComplete(); i++ {
			s.Step()
		}
		return s.ParticlesStuck, s.MaxRadius
	}

	n1, r1 := run()
	n2, r2 := run()
	if n1 != n2 || r1 != r2 {
		t.Fatalf("identical seeds diverged: (%d, %v) vs (%d, %v)", n1, r1, n2, r2)
	}
}

func TestMaxRadiusOnlyGrows(t *testing.T) {
	s := NewSeeded(96, 96, 5)
	s.NumParticles = 150
	prev := s.MaxRadius
	for i := 0; i < 20000 && !s.IsComplete(); i++ {
		s.Step()
		if s.MaxRadius < prev {
			t.Fatalf("MaxRadius shrank from %v to %v", prev, s.MaxRadius)
		}
		prev = s.MaxRadius
	}
}

func TestResizeReseedsAndCapsTarget(t *testing.T) {
	s := NewSeeded(128, 128, 3)
	s.NumParticles = s.MaxParticles()

	s.Resize(64, 64)
	if s.Width() != 64 || s.Height() != 64 {
		t.Fatalf("resize produced %dx%d", s.Width(), s.Height())
	}
	if s.NumParticles > s.MaxParticles() {
		t.Fatalf("target %d exceeds cap %d after shrink", s.NumParticles, s.MaxParticles())
	}
	if s.ParticlesStuck != s.Grid().CountOccupied() {
		t.Fatal("resize left counter and grid out of sync")
	}

	// Same dimensions must not disturb the grid.
	stuck := s.ParticlesStuck
	s.Resize(64, 64)
	if s.ParticlesStuck != stuck {
		t.Fatal("no-op resize reseeded the grid")
	}
}

func TestAdjustParticlesAndStickinessClamp(t *testing.T) {
	s := NewSeeded(64, 64, 1)

	s.AdjustParticles(-1000000)
	if s.NumParticles != 100 {
		t.Fatalf("particle floor = %d, expected 100", s.NumParticles)
	}
	s.AdjustParticles(1 << 30)
	if s.NumParticles != s.MaxParticles() {
		t.Fatalf("particle ceiling = %d, expected %d", s.NumParticles, s.MaxParticles())
	}

	s.AdjustStickiness(-5)
	if s.Stickiness != 0.1 {
		t.Fatalf("stickiness floor = %v, expected 0.1", s.Stickiness)
	}
	s.AdjustStickiness(5)
	if s.Stickiness != 1.0 {
		t.Fatalf("stickiness ceiling = %v, expected 1.0", s.Stickiness)
	}
}

func TestWalkersStayInteriorUnderEveryBoundary(t *testing.T) {
	for _, b := range []BoundaryBehavior{
		BoundaryClamp, BoundaryWrap, BoundaryBounce, BoundaryStick, BoundaryAbsorb,
	} {
		s := NewSeeded(64, 64, 13)
		s.NumParticles = 80
		s.Settings.BoundaryBehavior = b
		s.Settings.SpawnMode = SpawnEdges

		for i := 0; i < 20000 && !s.IsComplete(); i++ {
			s.Step()
		}
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if _, ok := s.GetParticle(x, y); ok {
					if x == 0 || y == 0 || x == s.Width()-1 || y == s.Height()-1 {
						t.Fatalf("%s: particle stuck on the border at (%d,%d)", b.Name(), x, y)
					}
				}
			}
		}
	}
}

func TestParticleDataRecordedOnStick(t *testing.T) {
	s := NewSeeded(96, 96, 17)
	s.NumParticles = 50
	for i := 0; i < 20000 && !s.IsComplete(); i++ {
		s.Step()
	}

	seen := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			p, ok := s.GetParticle(x, y)
			if !ok {
				continue
			}
			seen++
			if p.Age < 0 || p.Age >= s.ParticlesStuck {
				t.Fatalf("particle at (%d,%d) has age %d of %d", x, y, p.Age, s.ParticlesStuck)
			}
			if p.Distance < 0 || p.Distance > s.MaxRadius+0.001 {
				t.Fatalf("particle at (%d,%d) has distance %v beyond radius %v",
					x, y, p.Distance, s.MaxRadius)
			}
		}
	}
	if seen != s.ParticlesStuck {
		t.Fatalf("found %d particles, counter says %d", seen, s.ParticlesStuck)
	}
}
