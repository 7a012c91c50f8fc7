package sim

import "testing"

func TestNeighborhoodOffsetCounts(t *testing.T) {
	cases := []struct {
		n    Neighborhood
		want int
	}{
		{VonNeumann, 4},
		{Moore, 8},
		{Extended, 24},
	}
	for _, c := range cases {
		if got := c.n.MaxNeighbors(); got != c.want {
			t.Fatalf("%s has %d offsets, expected %d", c.n.Name(), got, c.want)
		}
	}
}

func TestNeighborhoodOffsetsExcludeOrigin(t *testing.T) {
	for _, n := range []Neighborhood{VonNeumann, Moore, Extended} {
		seen := map[[2]int]bool{}
		for _, off := range n.Offsets() {
			if off == [2]int{0, 0} {
				t.Fatalf("%s contains the origin offset", n.Name())
			}
			if seen[off] {
				t.Fatalf("%s contains duplicate offset %v", n.Name(), off)
			}
			seen[off] = true
		}
	}
}

func TestEnumCyclesVisitEveryVariant(t *testing.T) {
	n := VonNeumann
	for i := 0; i < 3; i++ {
		n = n.Next()
	}
	if n != VonNeumann {
		t.Fatalf("neighborhood cycle of 3 ended at %s", n.Name())
	}

	m := SpawnCircle
	for i := 0; i < 8; i++ {
		m = m.Next()
	}
	if m != SpawnCircle {
		t.Fatalf("spawn mode cycle of 8 ended at %s", m.Name())
	}

	b := BoundaryClamp
	for i := 0; i < 5; i++ {
		b = b.Next()
	}
	if b != BoundaryClamp {
		t.Fatalf("boundary cycle of 5 ended at %s", b.Name())
	}

	c := ColorByAge
	for i := 0; i < 4; i++ {
		c = c.Next()
	}
	if c != ColorByAge {
		t.Fatalf("color mode cycle of 4 ended at %s", c.Name())
	}
}

func TestPrevUndoesNext(t *testing.T) {
	for _, m := range []SpawnMode{SpawnCircle, SpawnEdges, SpawnRandom, SpawnRight} {
		if got := m.Next().Prev(); got != m {
			t.Fatalf("spawn mode %s: Next().Prev() = %s", m.Name(), got.Name())
		}
	}
	for _, b := range []BoundaryBehavior{BoundaryClamp, BoundaryWrap, BoundaryAbsorb} {
		if got := b.Next().Prev(); got != b {
			t.Fatalf("boundary %s: Next().Prev() = %s", b.Name(), got.Name())
		}
	}
}

func TestPolicyTextRoundTrips(t *testing.T) {
	for _, n := range []Neighborhood{VonNeumann, Moore, Extended} {
		text, err := n.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", n.Name(), err)
		}
		var back Neighborhood
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != n {
			t.Fatalf("round trip %s became %s", n.Name(), back.Name())
		}
	}

	var b BoundaryBehavior
	if err := b.UnmarshalText([]byte("Sideways")); err == nil {
		t.Fatal("unknown boundary name should fail to unmarshal")
	}
}
