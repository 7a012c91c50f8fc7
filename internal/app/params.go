package app

import "fmt"

// param is one row of the sidebar: a label, a value formatter and the
// up/down actions used when the row is focused.
type param struct {
	label string
	value func(m *Model) string
	up    func(m *Model)
	down  func(m *Model)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// paramTable lists every tunable in sidebar order. Tab moves the focus,
// up/down invoke the focused row's actions.
var paramTable = []param{
	{
		label: "Color by value",
		value: func(m *Model) string { return onOff(m.ColorByAge) },
		up:    func(m *Model) { m.ColorByAge = !m.ColorByAge },
		down:  func(m *Model) { m.ColorByAge = !m.ColorByAge },
	},
	{
		label: "Stickiness",
		value: func(m *Model) string { return fmt.Sprintf("%.2f", m.Sim.Stickiness) },
		up:    func(m *Model) { m.Sim.AdjustStickiness(0.05) },
		down:  func(m *Model) { m.Sim.AdjustStickiness(-0.05) },
	},
	{
		label: "Particles",
		value: func(m *Model) string { return fmt.Sprintf("%d", m.Sim.NumParticles) },
		up:    func(m *Model) { m.Sim.AdjustParticles(500) },
		down:  func(m *Model) { m.Sim.AdjustParticles(-500) },
	},
	{
		label: "Seed pattern",
		value: func(m *Model) string { return m.Sim.Pattern.Name() },
		up:    func(m *Model) { m.Sim.ResetWithSeed(m.Sim.Pattern.Next()) },
		down:  func(m *Model) { m.Sim.ResetWithSeed(m.Sim.Pattern.Prev()) },
	},
	{
		label: "Color scheme",
		value: func(m *Model) string { return m.Scheme.Name() },
		up: func(m *Model) {
			m.Scheme = m.Scheme.Next()
			m.LUT = m.Scheme.BuildLUT()
		},
		down: func(m *Model) {
			m.Scheme = m.Scheme.Prev()
			m.LUT = m.Scheme.BuildLUT()
		},
	},
	{
		label: "Speed",
		value: func(m *Model) string { return fmt.Sprintf("%d steps/frame", m.StepsPerFrame) },
		up:    func(m *Model) { m.StepsPerFrame = min(m.StepsPerFrame+1, 50) },
		down:  func(m *Model) { m.StepsPerFrame = max(m.StepsPerFrame-1, 1) },
	},
	{
		label: "Color mode",
		value: func(m *Model) string { return m.Sim.Settings.ColorMode.Name() },
		up:    func(m *Model) { m.Sim.Settings.ColorMode = m.Sim.Settings.ColorMode.Next() },
		down:  func(m *Model) { m.Sim.Settings.ColorMode = m.Sim.Settings.ColorMode.Prev() },
	},
	{
		label: "Highlight recent",
		value: func(m *Model) string { return fmt.Sprintf("%d", m.Sim.Settings.HighlightRecent) },
		up:    func(m *Model) { m.Sim.Settings.AdjustHighlightRecent(5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustHighlightRecent(-5) },
	},
	{
		label: "Invert colors",
		value: func(m *Model) string { return onOff(m.Sim.Settings.InvertColors) },
		up:    func(m *Model) { m.Sim.Settings.InvertColors = !m.Sim.Settings.InvertColors },
		down:  func(m *Model) { m.Sim.Settings.InvertColors = !m.Sim.Settings.InvertColors },
	},
	{
		label: "Walk step",
		value: func(m *Model) string { return fmt.Sprintf("%.1f", m.Sim.Settings.WalkStepSize) },
		up:    func(m *Model) { m.Sim.Settings.AdjustWalkStepSize(0.5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustWalkStepSize(-0.5) },
	},
	{
		label: "Bias angle",
		value: func(m *Model) string { return fmt.Sprintf("%.0f deg", m.Sim.Settings.WalkBiasAngle) },
		up:    func(m *Model) { m.Sim.Settings.AdjustWalkBiasAngle(15) },
		down:  func(m *Model) { m.Sim.Settings.AdjustWalkBiasAngle(-15) },
	},
	{
		label: "Bias strength",
		value: func(m *Model) string { return fmt.Sprintf("%.2f", m.Sim.Settings.WalkBiasStrength) },
		up:    func(m *Model) { m.Sim.Settings.AdjustWalkBiasStrength(0.05) },
		down:  func(m *Model) { m.Sim.Settings.AdjustWalkBiasStrength(-0.05) },
	},
	{
		label: "Radial bias",
		value: func(m *Model) string { return fmt.Sprintf("%+.2f", m.Sim.Settings.RadialBias) },
		up:    func(m *Model) { m.Sim.Settings.AdjustRadialBias(0.05) },
		down:  func(m *Model) { m.Sim.Settings.AdjustRadialBias(-0.05) },
	},
	{
		label: "Adaptive step",
		value: func(m *Model) string { return onOff(m.Sim.Settings.AdaptiveStep) },
		up:    func(m *Model) { m.Sim.Settings.ToggleAdaptiveStep() },
		down:  func(m *Model) { m.Sim.Settings.ToggleAdaptiveStep() },
	},
	{
		label: "Adaptive factor",
		value: func(m *Model) string { return fmt.Sprintf("%.1f", m.Sim.Settings.AdaptiveFactor) },
		up:    func(m *Model) { m.Sim.Settings.AdjustAdaptiveFactor(0.5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustAdaptiveFactor(-0.5) },
	},
	{
		label: "Lattice walk",
		value: func(m *Model) string { return onOff(m.Sim.Settings.LatticeWalk) },
		up:    func(m *Model) { m.Sim.Settings.ToggleLatticeWalk() },
		down:  func(m *Model) { m.Sim.Settings.ToggleLatticeWalk() },
	},
	{
		label: "Neighborhood",
		value: func(m *Model) string { return m.Sim.Settings.Neighborhood.Name() },
		up:    func(m *Model) { m.Sim.Settings.Neighborhood = m.Sim.Settings.Neighborhood.Next() },
		down:  func(m *Model) { m.Sim.Settings.Neighborhood = m.Sim.Settings.Neighborhood.Prev() },
	},
	{
		label: "Multi-contact min",
		value: func(m *Model) string { return fmt.Sprintf("%d", m.Sim.Settings.MultiContactMin) },
		up:    func(m *Model) { m.Sim.Settings.AdjustMultiContactMin(1) },
		down:  func(m *Model) { m.Sim.Settings.AdjustMultiContactMin(-1) },
	},
	{
		label: "Tip stickiness",
		value: func(m *Model) string { return fmt.Sprintf("%.2f", m.Sim.Settings.TipStickiness) },
		up:    func(m *Model) { m.Sim.Settings.AdjustTipStickiness(0.05) },
		down:  func(m *Model) { m.Sim.Settings.AdjustTipStickiness(-0.05) },
	},
	{
		label: "Side stickiness",
		value: func(m *Model) string { return fmt.Sprintf("%.2f", m.Sim.Settings.SideStickiness) },
		up:    func(m *Model) { m.Sim.Settings.AdjustSideStickiness(0.05) },
		down:  func(m *Model) { m.Sim.Settings.AdjustSideStickiness(-0.05) },
	},
	{
		label: "Sticky gradient",
		value: func(m *Model) string { return fmt.Sprintf("%+.2f", m.Sim.Settings.StickinessGradient) },
		up:    func(m *Model) { m.Sim.Settings.AdjustStickinessGradient(0.05) },
		down:  func(m *Model) { m.Sim.Settings.AdjustStickinessGradient(-0.05) },
	},
	{
		label: "Spawn mode",
		value: func(m *Model) string { return m.Sim.Settings.SpawnMode.Name() },
		up:    func(m *Model) { m.Sim.Settings.SpawnMode = m.Sim.Settings.SpawnMode.Next() },
		down:  func(m *Model) { m.Sim.Settings.SpawnMode = m.Sim.Settings.SpawnMode.Prev() },
	},
	{
		label: "Boundary",
		value: func(m *Model) string { return m.Sim.Settings.BoundaryBehavior.Name() },
		up:    func(m *Model) { m.Sim.Settings.BoundaryBehavior = m.Sim.Settings.BoundaryBehavior.Next() },
		down:  func(m *Model) { m.Sim.Settings.BoundaryBehavior = m.Sim.Settings.BoundaryBehavior.Prev() },
	},
	{
		label: "Spawn offset",
		value: func(m *Model) string { return fmt.Sprintf("%.0f", m.Sim.Settings.SpawnRadiusOffset) },
		up:    func(m *Model) { m.Sim.Settings.AdjustSpawnRadiusOffset(5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustSpawnRadiusOffset(-5) },
	},
	{
		label: "Escape multiplier",
		value: func(m *Model) string { return fmt.Sprintf("%.1f", m.Sim.Settings.EscapeMultiplier) },
		up:    func(m *Model) { m.Sim.Settings.AdjustEscapeMultiplier(0.5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustEscapeMultiplier(-0.5) },
	},
	{
		label: "Min spawn radius",
		value: func(m *Model) string { return fmt.Sprintf("%.0f", m.Sim.Settings.MinSpawnRadius) },
		up:    func(m *Model) { m.Sim.Settings.AdjustMinSpawnRadius(5) },
		down:  func(m *Model) { m.Sim.Settings.AdjustMinSpawnRadius(-5) },
	},
	{
		label: "Max walk iters",
		value: func(m *Model) string { return fmt.Sprintf("%d", m.Sim.Settings.MaxWalkIterations) },
		up:    func(m *Model) { m.Sim.Settings.AdjustMaxWalkIterations(1000) },
		down:  func(m *Model) { m.Sim.Settings.AdjustMaxWalkIterations(-1000) },
	},
}
