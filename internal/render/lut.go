package render

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// lutSize is the number of discrete gradient entries. Renders index the
// table with a normalized scalar instead of blending per cell.
const lutSize = 256

// LUT is a precomputed color gradient keyed by t in [0, 1].
type LUT [lutSize]color.RGBA

// At maps a normalized value to its gradient color. Out-of-range values are
// clamped to the endpoints.
func (l *LUT) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return l[int(t*float64(lutSize-1))]
}

// Scheme names a color gradient for the aggregate.
type Scheme uint8

const (
	// SchemeRainbow sweeps the full hue circle.
	SchemeRainbow Scheme = iota
	// SchemeFire runs dark red through orange to white heat.
	SchemeFire
	// SchemeOcean runs deep blue through cyan to foam.
	SchemeOcean
	// SchemeNeon runs magenta through electric blue to green.
	SchemeNeon
	// SchemeMono runs dark gray to white.
	SchemeMono
	// SchemePlasma runs indigo through magenta to yellow.
	SchemePlasma
)

var schemeNames = [...]string{
	SchemeRainbow: "Rainbow",
	SchemeFire:    "Fire",
	SchemeOcean:   "Ocean",
	SchemeNeon:    "Neon",
	SchemeMono:    "Mono",
	SchemePlasma:  "Plasma",
}

// Name returns the display name.
func (s Scheme) Name() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "Rainbow"
}

// Next cycles to the following scheme.
func (s Scheme) Next() Scheme {
	return Scheme((int(s) + 1) % len(schemeNames))
}

// Prev cycles to the preceding scheme.
func (s Scheme) Prev() Scheme {
	return Scheme((int(s) + len(schemeNames) - 1) % len(schemeNames))
}

// MarshalText encodes the scheme by name for JSON round-trips.
func (s Scheme) MarshalText() ([]byte, error) { return []byte(s.Name()), nil }

// UnmarshalText decodes a scheme from its name.
func (s *Scheme) UnmarshalText(text []byte) error {
	for i, name := range schemeNames {
		if name == string(text) {
			*s = Scheme(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color scheme %q", text)
}

var schemeStops = map[Scheme][]colorful.Color{
	SchemeFire: {
		{R: 0.20, G: 0.00, B: 0.00},
		{R: 0.70, G: 0.10, B: 0.00},
		{R: 1.00, G: 0.50, B: 0.00},
		{R: 1.00, G: 0.85, B: 0.30},
		{R: 1.00, G: 1.00, B: 0.90},
	},
	SchemeOcean: {
		{R: 0.00, G: 0.05, B: 0.25},
		{R: 0.00, G: 0.30, B: 0.60},
		{R: 0.00, G: 0.65, B: 0.80},
		{R: 0.45, G: 0.90, B: 0.95},
		{R: 0.95, G: 1.00, B: 1.00},
	},
	SchemeNeon: {
		{R: 1.00, G: 0.00, B: 0.80},
		{R: 0.60, G: 0.10, B: 1.00},
		{R: 0.00, G: 0.50, B: 1.00},
		{R: 0.00, G: 1.00, B: 0.80},
		{R: 0.40, G: 1.00, B: 0.20},
	},
	SchemeMono: {
		{R: 0.15, G: 0.15, B: 0.15},
		{R: 1.00, G: 1.00, B: 1.00},
	},
	SchemePlasma: {
		{R: 0.05, G: 0.03, B: 0.53},
		{R: 0.49, G: 0.01, B: 0.66},
		{R: 0.80, G: 0.27, B: 0.47},
		{R: 0.97, G: 0.58, B: 0.25},
		{R: 0.94, G: 0.97, B: 0.13},
	},
}

// BuildLUT precomputes the discretized gradient for this scheme. Stops are
// blended in Luv space so the ramp stays perceptually even.
func (s Scheme) BuildLUT() *LUT {
	lut := &LUT{}

	if s == SchemeRainbow {
		for i := range lut {
			t := float64(i) / float64(lutSize-1)
			lut[i] = toRGBA(colorful.Hsv(t*300, 0.95, 1.0))
		}
		return lut
	}

	stops, ok := schemeStops[s]
	if !ok {
		stops = schemeStops[SchemeFire]
	}

	segments := len(stops) - 1
	for i := range lut {
		t := float64(i) / float64(lutSize-1)
		pos := t * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		frac := pos - float64(seg)
		lut[i] = toRGBA(stops[seg].BlendLuv(stops[seg+1], frac).Clamped())
	}
	return lut
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
