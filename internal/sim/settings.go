package sim

import "math"

// Settings holds every movement, sticking, spawn, boundary and visual
// tunable. It is a plain value object: fields are independent and each is
// clamped to its range only by the corresponding Adjust helper. The walk
// engine reads it every step, so replacing it wholesale takes effect
// immediately.
type Settings struct {
	// Movement.
	WalkStepSize     float64 `json:"walk_step_size"`     // 0.5-5.0
	WalkBiasAngle    float64 `json:"walk_bias_angle"`    // degrees, wraps at 360
	WalkBiasStrength float64 `json:"walk_bias_strength"` // 0-0.5, 0 = isotropic
	RadialBias       float64 `json:"radial_bias"`        // -0.3-0.3, positive = inward
	AdaptiveStep     bool    `json:"adaptive_step"`
	AdaptiveFactor   float64 `json:"adaptive_step_factor"` // 1-10
	LatticeWalk      bool    `json:"lattice_walk"`

	// Sticking.
	Neighborhood       Neighborhood `json:"neighborhood"`
	MultiContactMin    int          `json:"multi_contact_min"`   // 1-4
	TipStickiness      float64      `json:"tip_stickiness"`      // 0.1-1.0
	SideStickiness     float64      `json:"side_stickiness"`     // 0.1-1.0
	StickinessGradient float64      `json:"stickiness_gradient"` // -0.5-0.5 per 100 cells

	// Spawn and boundary.
	SpawnMode         SpawnMode        `json:"spawn_mode"`
	BoundaryBehavior  BoundaryBehavior `json:"boundary_behavior"`
	SpawnRadiusOffset float64          `json:"spawn_radius_offset"` // 5-50
	EscapeMultiplier  float64          `json:"escape_multiplier"`   // 2-6
	MinSpawnRadius    float64          `json:"min_spawn_radius"`    // 20-100
	MaxWalkIterations int              `json:"max_walk_iterations"` // 1000-50000

	// Visual.
	ColorMode       ColorMode `json:"color_mode"`
	HighlightRecent int       `json:"highlight_recent"` // 0-50
	InvertColors    bool      `json:"invert_colors"`
}

// DefaultSettings returns canonical-DLA defaults: unit lattice steps, no
// bias, single-contact sticking, circle spawn with absorbing edges.
func DefaultSettings() Settings {
	return Settings{
		WalkStepSize:     1.0,
		WalkBiasAngle:    0.0,
		WalkBiasStrength: 0.0,
		RadialBias:       0.0,
		AdaptiveStep:     false,
		AdaptiveFactor:   3.0,
		LatticeWalk:      true,

		Neighborhood:       VonNeumann,
		MultiContactMin:    1,
		TipStickiness:      1.0,
		SideStickiness:     1.0,
		StickinessGradient: 0.0,

		SpawnMode:         SpawnCircle,
		BoundaryBehavior:  BoundaryAbsorb,
		SpawnRadiusOffset: 10.0,
		EscapeMultiplier:  3.0,
		MinSpawnRadius:    15.0,
		MaxWalkIterations: 10000,

		ColorMode:       ColorByAge,
		HighlightRecent: 0,
		InvertColors:    false,
	}
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AdjustWalkStepSize shifts the step size within 0.5-5.0.
func (s *Settings) AdjustWalkStepSize(delta float64) {
	s.WalkStepSize = clampF(s.WalkStepSize+delta, 0.5, 5.0)
}

// AdjustWalkBiasAngle shifts the bias angle, wrapping at 360 degrees.
func (s *Settings) AdjustWalkBiasAngle(delta float64) {
	a := math.Mod(s.WalkBiasAngle+delta, 360.0)
	if a < 0 {
		a += 360.0
	}
	s.WalkBiasAngle = a
}

// AdjustWalkBiasStrength shifts the bias strength within 0-0.5.
func (s *Settings) AdjustWalkBiasStrength(delta float64) {
	s.WalkBiasStrength = clampF(s.WalkBiasStrength+delta, 0.0, 0.5)
}

// AdjustRadialBias shifts the radial bias within -0.3-0.3.
func (s *Settings) AdjustRadialBias(delta float64) {
	s.RadialBias = clampF(s.RadialBias+delta, -0.3, 0.3)
}

// AdjustAdaptiveFactor shifts the adaptive step factor within 1-10.
func (s *Settings) AdjustAdaptiveFactor(delta float64) {
	s.AdaptiveFactor = clampF(s.AdaptiveFactor+delta, 1.0, 10.0)
}

// ToggleAdaptiveStep flips adaptive stepping.
func (s *Settings) ToggleAdaptiveStep() { s.AdaptiveStep = !s.AdaptiveStep }

// ToggleLatticeWalk flips lattice walking.
func (s *Settings) ToggleLatticeWalk() { s.LatticeWalk = !s.LatticeWalk }

// AdjustMultiContactMin shifts the contact requirement within 1-4.
func (s *Settings) AdjustMultiContactMin(delta int) {
	s.MultiContactMin = clampI(s.MultiContactMin+delta, 1, 4)
}

// AdjustTipStickiness shifts tip stickiness within 0.1-1.0.
func (s *Settings) AdjustTipStickiness(delta float64) {
	s.TipStickiness = clampF(s.TipStickiness+delta, 0.1, 1.0)
}

// AdjustSideStickiness shifts side stickiness within 0.1-1.0.
func (s *Settings) AdjustSideStickiness(delta float64) {
	s.SideStickiness = clampF(s.SideStickiness+delta, 0.1, 1.0)
}

// AdjustStickinessGradient shifts the gradient within -0.5-0.5.
func (s *Settings) AdjustStickinessGradient(delta float64) {
	s.StickinessGradient = clampF(s.StickinessGradient+delta, -0.5, 0.5)
}

// AdjustSpawnRadiusOffset shifts the spawn offset within 5-50.
func (s *Settings) AdjustSpawnRadiusOffset(delta float64) {
	s.SpawnRadiusOffset = clampF(s.SpawnRadiusOffset+delta, 5.0, 50.0)
}

// AdjustEscapeMultiplier shifts the escape multiplier within 2-6.
func (s *Settings) AdjustEscapeMultiplier(delta float64) {
	s.EscapeMultiplier = clampF(s.EscapeMultiplier+delta, 2.0, 6.0)
}

// AdjustMinSpawnRadius shifts the minimum spawn radius within 20-100.
func (s *Settings) AdjustMinSpawnRadius(delta float64) {
	s.MinSpawnRadius = clampF(s.MinSpawnRadius+delta, 20.0, 100.0)
}

// AdjustMaxWalkIterations shifts the iteration budget within 1000-50000.
func (s *Settings) AdjustMaxWalkIterations(delta int) {
	s.MaxWalkIterations = clampI(s.MaxWalkIterations+delta, 1000, 50000)
}

// AdjustHighlightRecent shifts the recent-particle highlight window within 0-50.
func (s *Settings) AdjustHighlightRecent(delta int) {
	s.HighlightRecent = clampI(s.HighlightRecent+delta, 0, 50)
}

// EffectiveStickiness combines base stickiness with the tip/side
// interpolation and the distance gradient. Few neighbors means the walker
// touched a branch tip, many neighbors a branch side; the ratio interpolates
// between the two stickiness values. The gradient scales by distance from
// center in units of 100 cells. The result is always in [0, 1].
func (s *Settings) EffectiveStickiness(neighborCount int, distanceFromCenter, baseStickiness float64) float64 {
	maxNeighbors := s.Neighborhood.MaxNeighbors()

	ratio := float64(neighborCount) / float64(maxNeighbors)
	directional := s.TipStickiness*(1-ratio) + s.SideStickiness*ratio
	gradient := 1 + (distanceFromCenter/100.0)*s.StickinessGradient

	return clampF(baseStickiness*directional*gradient, 0.0, 1.0)
}
