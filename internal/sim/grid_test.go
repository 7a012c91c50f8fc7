package sim

import "testing"

func TestGridSetGetClear(t *testing.T) {
	g := newGrid(16, 8)
	if g.Width() != 16 || g.Height() != 8 {
		t.Fatalf("grid reports %dx%d", g.Width(), g.Height())
	}

	if _, ok := g.Get(3, 4); ok {
		t.Fatal("fresh grid reported an occupied cell")
	}

	g.set(3, 4, ParticleData{Age: 7, Distance: 2.5, NeighborCount: 3})
	p, ok := g.Get(3, 4)
	if !ok {
		t.Fatal("set cell not readable")
	}
	if p.Age != 7 || p.Distance != 2.5 || p.NeighborCount != 3 {
		t.Fatalf("cell data mangled: %+v", p)
	}
	if !g.Occupied(3, 4) {
		t.Fatal("Occupied disagrees with Get")
	}
	if g.CountOccupied() != 1 {
		t.Fatalf("CountOccupied = %d, expected 1", g.CountOccupied())
	}

	g.clear()
	if g.CountOccupied() != 0 {
		t.Fatal("clear left occupied cells behind")
	}
}

func TestGridOutOfRangeAccess(t *testing.T) {
	g := newGrid(8, 8)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if _, ok := g.Get(c[0], c[1]); ok {
			t.Fatalf("Get(%d,%d) reported a particle outside the grid", c[0], c[1])
		}
		if g.Occupied(c[0], c[1]) {
			t.Fatalf("Occupied(%d,%d) true outside the grid", c[0], c[1])
		}
	}
}

func TestRNGRanges(t *testing.T) {
	rng := NewRNG(5)
	for i := 0; i < 1000; i++ {
		if a := rng.Angle(); a < 0 || a >= 6.2832 {
			t.Fatalf("angle %v outside [0, 2π)", a)
		}
		if v := rng.Range(3, 7); v < 3 || v >= 7 {
			t.Fatalf("Range(3,7) produced %v", v)
		}
		if n := rng.IntRange(-2, 2); n < -2 || n > 2 {
			t.Fatalf("IntRange(-2,2) produced %d", n)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same-seed generators diverged at draw %d", i)
		}
	}
}
