// Package sim implements diffusion-limited aggregation on a dense 2D grid.
// A simulation owns its grid, its tunable settings and a seeded random
// source; Step releases one walker and commits at most one particle.
package sim

import (
	"math"
	"time"
)

// boundaryMargin keeps walkers off the outermost cell ring so neighbor
// lookups in the walk loop stay interior.
const boundaryMargin = 1.0

// Simulation is the complete growth state. It is single-threaded by design:
// Step is the only mutator and renderers read the grid between steps.
type Simulation struct {
	grid *Grid

	// NumParticles is the target aggregate size.
	NumParticles int
	// Stickiness is the base attachment probability, scaled by Settings.
	Stickiness float64
	// ParticlesStuck counts committed particles; it equals the number of
	// occupied grid cells at all times.
	ParticlesStuck int
	// MaxRadius is the largest center distance of any seeded or committed
	// particle so far. It only grows between resets.
	MaxRadius float64
	// Paused suspends Step entirely.
	Paused bool
	// Pattern is the seed pattern the last reset used.
	Pattern SeedPattern
	// Settings holds all movement/sticking/spawn/boundary/visual tunables.
	Settings Settings

	rng *RNG
}

// New creates a simulation sized for the given grid dimensions, seeded from
// the wall clock, and resets it with the Point pattern.
func New(width, height int) *Simulation {
	return NewSeeded(width, height, time.Now().UnixNano())
}

// NewSeeded creates a simulation with a deterministic random source.
func NewSeeded(width, height int, seed int64) *Simulation {
	s := &Simulation{
		grid:         newGrid(width, height),
		NumParticles: 5000,
		Stickiness:   1.0,
		MaxRadius:    1.0,
		Pattern:      SeedPoint,
		Settings:     DefaultSettings(),
		rng:          NewRNG(seed),
	}
	s.Reset()
	return s
}

// Width returns the grid width in cells.
func (s *Simulation) Width() int { return s.grid.w }

// Height returns the grid height in cells.
func (s *Simulation) Height() int { return s.grid.h }

// Grid exposes the particle grid for read-only sampling.
func (s *Simulation) Grid() *Grid { return s.grid }

func (s *Simulation) center() (float64, float64) {
	return float64(s.grid.w) / 2, float64(s.grid.h) / 2
}

// Step releases one walker and runs it until it sticks, escapes, or exhausts
// the iteration budget. It returns false once the simulation is paused or
// the target particle count is reached, true otherwise. Escape and timeout
// leave the grid untouched; the walker is simply discarded and the next
// Step spawns a fresh one.
func (s *Simulation) Step() bool {
	if s.Paused || s.ParticlesStuck >= s.NumParticles {
		return false
	}

	centerX, centerY := s.center()
	set := &s.Settings

	spawnRadius := math.Max(s.MaxRadius+set.SpawnRadiusOffset, set.MinSpawnRadius)
	// Squared escape distance avoids a sqrt per iteration.
	escapeDistSq := spawnRadius * spawnRadius * set.EscapeMultiplier * set.EscapeMultiplier

	xMax := float64(s.grid.w) - boundaryMargin - 1
	yMax := float64(s.grid.h) - boundaryMargin - 1

	x, y := s.spawnParticle(centerX, centerY, spawnRadius)

	// Approach direction for the Direction color mode.
	lastDX := x - centerX
	lastDY := y - centerY

	for i := 0; i < set.MaxWalkIterations; i++ {
		dx := x - centerX
		dy := y - centerY
		distSq := dx*dx + dy*dy

		if distSq > escapeDistSq {
			return true // escaped; discard and respawn next step
		}

		ix := int(x)
		iy := int(y)

		if ix > 0 && ix < s.grid.w-1 && iy > 0 && iy < s.grid.h-1 {
			neighborCount, hasNeighbor := s.countNeighbors(ix, iy)

			if hasNeighbor && neighborCount >= set.MultiContactMin {
				distance := math.Sqrt(distSq)
				stickiness := set.EffectiveStickiness(neighborCount, distance, s.Stickiness)

				if s.rng.Float64() < stickiness {
					// Only stick if the cell is empty; a walker over an
					// occupied cell keeps walking.
					if !s.grid.Occupied(ix, iy) {
						s.grid.set(ix, iy, ParticleData{
							Age:           s.ParticlesStuck,
							Distance:      distance,
							Direction:     math.Atan2(lastDY, lastDX),
							NeighborCount: uint8(neighborCount),
						})
						s.ParticlesStuck++
						s.MaxRadius = math.Max(s.MaxRadius, distance)
						return true
					}
				}
			}
		}

		lastDX = x - centerX
		lastDY = y - centerY

		angle := s.applyWalkBias(s.rng.Angle(), x, y, centerX, centerY)
		x += set.WalkStepSize * math.Cos(angle)
		y += set.WalkStepSize * math.Sin(angle)

		x, y = s.applyBoundary(x, y, xMax, yMax)

		// Absorbing edges discard the walker so a fresh one respawns.
		if set.BoundaryBehavior == BoundaryAbsorb {
			if x <= boundaryMargin || x >= xMax || y <= boundaryMargin || y >= yMax {
				return true
			}
		}
	}

	return true // iteration budget exhausted; discard silently
}

// spawnParticle picks a walker start position for the active spawn mode.
func (s *Simulation) spawnParticle(centerX, centerY, spawnRadius float64) (float64, float64) {
	w := float64(s.grid.w)
	h := float64(s.grid.h)

	switch s.Settings.SpawnMode {
	case SpawnEdges:
		switch s.rng.IntN(4) {
		case 0:
			return s.rng.Range(1, w-1), 1 // top
		case 1:
			return s.rng.Range(1, w-1), h - 2 // bottom
		case 2:
			return 1, s.rng.Range(1, h-1) // left
		default:
			return w - 2, s.rng.Range(1, h-1) // right
		}
	case SpawnCorners:
		switch s.rng.IntN(4) {
		case 0:
			return 1, 1
		case 1:
			return w - 2, 1
		case 2:
			return 1, h - 2
		default:
			return w - 2, h - 2
		}
	case SpawnRandom:
		// Rejection-sample until well outside the structure.
		for {
			x := s.rng.Range(1, w-1)
			y := s.rng.Range(1, h-1)
			dx := x - centerX
			dy := y - centerY
			if dx*dx+dy*dy > spawnRadius*spawnRadius*0.5 {
				return x, y
			}
		}
	case SpawnTop:
		return s.rng.Range(1, w-1), 1
	case SpawnBottom:
		return s.rng.Range(1, w-1), h - 2
	case SpawnLeft:
		return 1, s.rng.Range(1, h-1)
	case SpawnRight:
		return w - 2, s.rng.Range(1, h-1)
	default: // SpawnCircle
		angle := s.rng.Angle()
		return clampF(centerX+spawnRadius*math.Cos(angle), 1, w-2),
			clampF(centerY+spawnRadius*math.Sin(angle), 1, h-2)
	}
}

// countNeighbors tests the active neighborhood's offsets around (ix, iy).
func (s *Simulation) countNeighbors(ix, iy int) (int, bool) {
	offsets := s.Settings.Neighborhood.Offsets()
	count := 0
	hasAny := false

	for _, off := range offsets {
		nx := ix + off[0]
		ny := iy + off[1]
		if nx >= 0 && nx < s.grid.w && ny >= 0 && ny < s.grid.h {
			if s.grid.occupiedIndex(ny*s.grid.w + nx) {
				count++
				hasAny = true
			}
		}
	}

	return count, hasAny
}

// applyWalkBias nudges a uniform walk angle toward the configured
// directional and radial targets. Both biases steer the draw; neither
// replaces it.
func (s *Simulation) applyWalkBias(baseAngle, x, y, centerX, centerY float64) float64 {
	angle := baseAngle
	set := &s.Settings

	if set.WalkBiasStrength > 0 {
		biasAngle := set.WalkBiasAngle * math.Pi / 180
		angle += set.WalkBiasStrength * math.Sin(biasAngle-baseAngle)
	}

	if math.Abs(set.RadialBias) > 0.001 {
		dx := x - centerX
		dy := y - centerY
		radialAngle := math.Atan2(dy, dx)

		// Positive bias pulls toward the center, negative pushes away.
		targetAngle := radialAngle
		if set.RadialBias > 0 {
			targetAngle = radialAngle + math.Pi
		}

		angle += math.Abs(set.RadialBias) * math.Sin(targetAngle-angle)
	}

	return angle
}

// applyBoundary transforms a post-move position according to the active
// boundary behavior. Stick and Absorb clamp exactly like Clamp here;
// Absorb's respawn is decided in the walk loop after this transform.
func (s *Simulation) applyBoundary(x, y, xMax, yMax float64) (float64, float64) {
	switch s.Settings.BoundaryBehavior {
	case BoundaryWrap:
		width := xMax - boundaryMargin
		height := yMax - boundaryMargin
		if x < boundaryMargin {
			x += width
		} else if x > xMax {
			x -= width
		}
		if y < boundaryMargin {
			y += height
		} else if y > yMax {
			y -= height
		}
	case BoundaryBounce:
		if x < boundaryMargin {
			x = boundaryMargin + (boundaryMargin - x)
		} else if x > xMax {
			x = xMax - (x - xMax)
		}
		if y < boundaryMargin {
			y = boundaryMargin + (boundaryMargin - y)
		} else if y > yMax {
			y = yMax - (y - yMax)
		}
	default: // Clamp, Stick, Absorb
		x = clampF(x, boundaryMargin, xMax)
		y = clampF(y, boundaryMargin, yMax)
	}
	return x, y
}

// Reset clears the grid and reseeds it with the current pattern.
func (s *Simulation) Reset() {
	s.ResetWithSeed(s.Pattern)
}

// ResetWithSeed clears the grid, reseeds it with the given pattern, and
// unpauses the simulation.
func (s *Simulation) ResetWithSeed(pattern SeedPattern) {
	s.grid.clear()

	s.Pattern = pattern
	s.ParticlesStuck = 0
	s.MaxRadius = 0

	switch pattern {
	case SeedLine:
		s.seedLine()
	case SeedCross:
		s.seedCross()
	case SeedCircle:
		s.seedCircle()
	case SeedRing:
		s.seedRing()
	case SeedBlock:
		s.seedBlock()
	case SeedNoisePatch:
		s.seedNoisePatch()
	case SeedScatter:
		s.seedScatter()
	case SeedMultiPoint:
		s.seedMultiPoint()
	case SeedStarburst:
		s.seedStarburst()
	default:
		s.seedPoint()
	}

	s.Paused = false
}

// GetParticle returns the particle at (x, y), if any. Out-of-range
// coordinates return false.
func (s *Simulation) GetParticle(x, y int) (ParticleData, bool) {
	return s.grid.Get(x, y)
}

// Progress returns completion as a ratio in [0, 1].
func (s *Simulation) Progress() float64 {
	return float64(s.ParticlesStuck) / float64(s.NumParticles)
}

// IsComplete reports whether the target particle count has been reached.
func (s *Simulation) IsComplete() bool {
	return s.ParticlesStuck >= s.NumParticles
}

// TogglePause flips the pause flag checked at the top of Step.
func (s *Simulation) TogglePause() {
	s.Paused = !s.Paused
}

// Resize reallocates the grid for new dimensions and reseeds. Unchanged
// dimensions are a no-op.
func (s *Simulation) Resize(width, height int) {
	if width == s.grid.w && height == s.grid.h {
		return
	}
	s.grid = newGrid(width, height)
	if maxP := s.MaxParticles(); s.NumParticles > maxP {
		s.NumParticles = maxP
	}
	s.Reset()
}

// MaxParticles returns the particle cap for the current grid: 75% of the
// cell count, but never below 100.
func (s *Simulation) MaxParticles() int {
	return max(s.grid.w*s.grid.h*3/4, 100)
}

// AdjustParticles shifts the particle target, clamped to [100, MaxParticles].
func (s *Simulation) AdjustParticles(delta int) {
	s.NumParticles = clampI(s.NumParticles+delta, 100, s.MaxParticles())
}

// AdjustStickiness shifts base stickiness within 0.1-1.0.
func (s *Simulation) AdjustStickiness(delta float64) {
	s.Stickiness = clampF(s.Stickiness+delta, 0.1, 1.0)
}
