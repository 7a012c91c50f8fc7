package sim

import (
	"fmt"
	"math"
)

// SeedPattern selects the initial structure the aggregate grows from.
type SeedPattern uint8

const (
	// SeedPoint is a single cell at the grid center.
	SeedPoint SeedPattern = iota
	// SeedLine is a horizontal line through the center.
	SeedLine
	// SeedCross is two perpendicular arms through the center.
	SeedCross
	// SeedCircle is a circle outline around the center.
	SeedCircle
	// SeedRing is a thick annulus with a hollow core.
	SeedRing
	// SeedBlock is a solid square that forces surface roughening.
	SeedBlock
	// SeedNoisePatch is a stochastic off-center blob with a dense core.
	SeedNoisePatch
	// SeedScatter is random points in the center region.
	SeedScatter
	// SeedMultiPoint is five points spread across the grid.
	SeedMultiPoint
	// SeedStarburst is a hub with 8 radial spokes and a thin rim.
	SeedStarburst
)

var seedPatternNames = [...]string{
	SeedPoint:      "Point",
	SeedLine:       "Line",
	SeedCross:      "Cross",
	SeedCircle:     "Circle",
	SeedRing:       "Ring",
	SeedBlock:      "Block",
	SeedNoisePatch: "Noise Patch",
	SeedScatter:    "Scatter",
	SeedMultiPoint: "Multi-Point",
	SeedStarburst:  "Starburst",
}

// Name returns the display name.
func (p SeedPattern) Name() string {
	if int(p) < len(seedPatternNames) {
		return seedPatternNames[p]
	}
	return "Point"
}

// Next cycles to the following pattern.
func (p SeedPattern) Next() SeedPattern {
	return SeedPattern((int(p) + 1) % len(seedPatternNames))
}

// Prev cycles to the preceding pattern.
func (p SeedPattern) Prev() SeedPattern {
	return SeedPattern((int(p) + len(seedPatternNames) - 1) % len(seedPatternNames))
}

// MarshalText encodes the pattern by name for JSON round-trips.
func (p SeedPattern) MarshalText() ([]byte, error) { return []byte(p.Name()), nil }

// UnmarshalText decodes a pattern from its name.
func (p *SeedPattern) UnmarshalText(text []byte) error {
	for i, name := range seedPatternNames {
		if name == string(text) {
			*p = SeedPattern(i)
			return nil
		}
	}
	return fmt.Errorf("unknown seed pattern %q", text)
}

// ParseSeedPattern maps the loose CLI spellings to a pattern. Unrecognized
// input falls back to Point.
func ParseSeedPattern(s string) SeedPattern {
	switch s {
	case "line":
		return SeedLine
	case "cross":
		return SeedCross
	case "circle":
		return SeedCircle
	case "ring":
		return SeedRing
	case "block", "filled":
		return SeedBlock
	case "noise", "noise-patch":
		return SeedNoisePatch
	case "scatter":
		return SeedScatter
	case "multipoint", "multi-point":
		return SeedMultiPoint
	case "starburst", "spokes", "star":
		return SeedStarburst
	default:
		return SeedPoint
	}
}

// seedData is the particle written for every seeded cell.
func seedData() ParticleData {
	return ParticleData{}
}

func (s *Simulation) seedPoint() {
	s.grid.set(s.grid.w/2, s.grid.h/2, seedData())
	s.ParticlesStuck = 1
	// A lone point has distance 0, but the spawn radius math wants a
	// positive structure radius from the first step.
	s.MaxRadius = 1.0
}

func (s *Simulation) seedLine() {
	cy := s.grid.h / 2
	halfLen := min(20, s.grid.w/4)
	startX := s.grid.w/2 - halfLen
	endX := s.grid.w/2 + halfLen
	for x := startX; x < endX; x++ {
		s.grid.set(x, cy, seedData())
	}
	s.ParticlesStuck = endX - startX
	s.MaxRadius = float64(halfLen)
}

func (s *Simulation) seedCross() {
	cx := s.grid.w / 2
	cy := s.grid.h / 2
	armLen := min(10, s.grid.w/8, s.grid.h/8)
	count := 0
	if armLen > 0 {
		s.grid.set(cx, cy, seedData())
		count = 1
	}
	for i := 1; i < armLen; i++ {
		if cx >= i && cy >= i {
			s.grid.set(cx-i, cy, seedData())
			s.grid.set(cx+i, cy, seedData())
			s.grid.set(cx, cy-i, seedData())
			s.grid.set(cx, cy+i, seedData())
			count += 4
		}
	}
	s.ParticlesStuck = count
	s.MaxRadius = float64(armLen)
}

func (s *Simulation) seedCircle() {
	cx, cy := s.center()
	radius := math.Min(15.0, math.Min(float64(s.grid.w/8), float64(s.grid.h/8)))
	count := 0
	for deg := 0; deg < 360; deg++ {
		angle := float64(deg) * math.Pi / 180
		x := int(cx + radius*math.Cos(angle))
		y := int(cy + radius*math.Sin(angle))
		if x >= 0 && x < s.grid.w && y >= 0 && y < s.grid.h && !s.grid.Occupied(x, y) {
			s.grid.set(x, y, seedData())
			count++
		}
	}
	s.ParticlesStuck = count
	s.MaxRadius = radius
}

func (s *Simulation) seedRing() {
	cx, cy := s.center()
	minDim := float64(min(s.grid.w, s.grid.h))
	radius := clampF(minDim*0.30, 6.0, minDim*0.45)
	const thickness = 2.5
	count := 0

	for y := 0; y < s.grid.h; y++ {
		for x := 0; x < s.grid.w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= radius-thickness && dist <= radius+thickness && !s.grid.Occupied(x, y) {
				s.grid.set(x, y, seedData())
				count++
			}
		}
	}

	s.ParticlesStuck = count
	s.MaxRadius = radius + thickness
}

func (s *Simulation) seedBlock() {
	cx := s.grid.w / 2
	cy := s.grid.h / 2
	halfSize := max(min(s.grid.w, s.grid.h)/8, 4)
	startX := max(cx-halfSize, 0)
	endX := min(cx+halfSize, s.grid.w-1)
	startY := max(cy-halfSize, 0)
	endY := min(cy+halfSize, s.grid.h-1)
	count := 0

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			if !s.grid.Occupied(x, y) {
				s.grid.set(x, y, seedData())
				count++
			}
		}
	}

	s.ParticlesStuck = count
	s.MaxRadius = float64(halfSize) * 1.414
}

func (s *Simulation) seedNoisePatch() {
	gridCX, gridCY := s.center()
	minDim := float64(min(s.grid.w, s.grid.h))
	radius := clampF(minDim*0.22, 6.0, 30.0)
	radiusI := int(radius)
	jitter := max(radiusI/3, 1)
	patchCX := clampI(s.grid.w/3+s.rng.IntRange(-jitter, jitter), 1, s.grid.w-2)
	patchCY := clampI(s.grid.h/3+s.rng.IntRange(-jitter, jitter), 1, s.grid.h-2)

	count := 0
	maxDist := 1.0

	for y := max(patchCY-radiusI, 1); y <= min(patchCY+radiusI, s.grid.h-2); y++ {
		for x := max(patchCX-radiusI, 1); x <= min(patchCX+radiusI, s.grid.w-2); x++ {
			dx := x - patchCX
			dy := y - patchCY
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > radius {
				continue
			}
			// Dense core, noisy edges.
			falloff := 1.0 - dist/radius
			stickProb := 0.35 + falloff*0.65
			if s.rng.Float64() < stickProb && !s.grid.Occupied(x, y) {
				s.grid.set(x, y, seedData())
				count++

				gdx := float64(x) - gridCX
				gdy := float64(y) - gridCY
				maxDist = math.Max(maxDist, math.Sqrt(gdx*gdx+gdy*gdy))
			}
		}
	}

	if count == 0 {
		// Guarantee at least one seed.
		s.grid.set(patchCX, patchCY, seedData())
		count = 1
		gdx := float64(patchCX) - gridCX
		gdy := float64(patchCY) - gridCY
		maxDist = math.Sqrt(gdx*gdx + gdy*gdy)
	}

	s.ParticlesStuck = count
	s.MaxRadius = maxDist
}

func (s *Simulation) seedScatter() {
	cx := s.grid.w / 2
	cy := s.grid.h / 2
	scatterRadius := min(20, s.grid.w/6, s.grid.h/6)
	const numSeeds = 15
	count := 0

	for i := 0; i < numSeeds; i++ {
		angle := s.rng.Angle()
		r := s.rng.Range(0, float64(scatterRadius))
		x := int(float64(cx) + r*math.Cos(angle))
		y := int(float64(cy) + r*math.Sin(angle))
		if x >= 0 && x < s.grid.w && y >= 0 && y < s.grid.h && !s.grid.Occupied(x, y) {
			s.grid.set(x, y, seedData())
			count++
		}
	}
	s.ParticlesStuck = count
	s.MaxRadius = float64(scatterRadius)
}

func (s *Simulation) seedMultiPoint() {
	cx := s.grid.w / 2
	cy := s.grid.h / 2
	spread := min(25, s.grid.w/5, s.grid.h/5)
	count := 0

	points := [5][2]int{
		{cx, cy},
		{cx - spread, cy},
		{cx + spread, cy},
		{cx, cy - spread},
		{cx, cy + spread},
	}

	for _, p := range points {
		x, y := p[0], p[1]
		if x >= 0 && x < s.grid.w && y >= 0 && y < s.grid.h && !s.grid.Occupied(x, y) {
			s.grid.set(x, y, seedData())
			count++
		}
	}
	s.ParticlesStuck = count
	s.MaxRadius = float64(spread)
}

func (s *Simulation) seedStarburst() {
	cx, cy := s.center()
	minDim := float64(min(s.grid.w, s.grid.h))
	spokeLen := clampF(minDim*0.35, 8.0, 40.0)
	const spokes = 8
	count := 0

	// Central hub.
	hubX, hubY := int(cx), int(cy)
	if !s.grid.Occupied(hubX, hubY) {
		s.grid.set(hubX, hubY, seedData())
		count++
	}

	for sp := 0; sp < spokes; sp++ {
		angle := float64(sp) * (2 * math.Pi / spokes)
		for step := 1; step <= int(spokeLen); step++ {
			x := int(math.Round(cx + float64(step)*math.Cos(angle)))
			y := int(math.Round(cy + float64(step)*math.Sin(angle)))
			if x > 0 && x < s.grid.w-1 && y > 0 && y < s.grid.h-1 && !s.grid.Occupied(x, y) {
				s.grid.set(x, y, seedData())
				count++
			}
		}
	}

	// Thin rim connecting the spokes, sampled every 4 degrees.
	rimRadius := spokeLen
	for deg := 0; deg < 360; deg += 4 {
		angle := float64(deg) * math.Pi / 180
		x := int(cx + rimRadius*math.Cos(angle))
		y := int(cy + rimRadius*math.Sin(angle))
		if x > 0 && x < s.grid.w-1 && y > 0 && y < s.grid.h-1 && !s.grid.Occupied(x, y) {
			s.grid.set(x, y, seedData())
			count++
		}
	}

	s.ParticlesStuck = count
	s.MaxRadius = rimRadius
}
