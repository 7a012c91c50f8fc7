package sim

import "fmt"

// Neighborhood selects which cells around a walker count as contact.
type Neighborhood uint8

const (
	// VonNeumann checks the 4 orthogonal neighbors. Classic DLA, angular growth.
	VonNeumann Neighborhood = iota
	// Moore checks all 8 cells of the 3x3 block.
	Moore
	// Extended checks the full 5x5 block (24 cells). Dense, blob-like growth.
	Extended
)

var vonNeumannOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var mooreOffsets = [][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var extendedOffsets = [][2]int{
	{-2, -2}, {-1, -2}, {0, -2}, {1, -2}, {2, -2},
	{-2, -1}, {-1, -1}, {0, -1}, {1, -1}, {2, -1},
	{-2, 0}, {-1, 0}, {1, 0}, {2, 0},
	{-2, 1}, {-1, 1}, {0, 1}, {1, 1}, {2, 1},
	{-2, 2}, {-1, 2}, {0, 2}, {1, 2}, {2, 2},
}

// Offsets returns the relative cell offsets checked for this neighborhood.
func (n Neighborhood) Offsets() [][2]int {
	switch n {
	case Moore:
		return mooreOffsets
	case Extended:
		return extendedOffsets
	default:
		return vonNeumannOffsets
	}
}

// MaxNeighbors returns the size of the offset table.
func (n Neighborhood) MaxNeighbors() int { return len(n.Offsets()) }

// Name returns the display name.
func (n Neighborhood) Name() string {
	switch n {
	case Moore:
		return "Moore"
	case Extended:
		return "Extended"
	default:
		return "VonNeumann"
	}
}

// Next cycles to the following neighborhood.
func (n Neighborhood) Next() Neighborhood {
	switch n {
	case VonNeumann:
		return Moore
	case Moore:
		return Extended
	default:
		return VonNeumann
	}
}

// Prev cycles to the preceding neighborhood.
func (n Neighborhood) Prev() Neighborhood {
	switch n {
	case VonNeumann:
		return Extended
	case Moore:
		return VonNeumann
	default:
		return Moore
	}
}

// MarshalText encodes the neighborhood by name for JSON round-trips.
func (n Neighborhood) MarshalText() ([]byte, error) { return []byte(n.Name()), nil }

// UnmarshalText decodes a neighborhood from its name.
func (n *Neighborhood) UnmarshalText(text []byte) error {
	switch string(text) {
	case "VonNeumann":
		*n = VonNeumann
	case "Moore":
		*n = Moore
	case "Extended":
		*n = Extended
	default:
		return fmt.Errorf("unknown neighborhood %q", text)
	}
	return nil
}

// SpawnMode selects where new walkers enter the grid.
type SpawnMode uint8

const (
	// SpawnCircle places walkers on a circle around the structure (classic DLA).
	SpawnCircle SpawnMode = iota
	// SpawnEdges places walkers uniformly on a random grid edge.
	SpawnEdges
	// SpawnCorners places walkers on one of the four corners.
	SpawnCorners
	// SpawnRandom places walkers anywhere sufficiently far from the center.
	SpawnRandom
	// SpawnTop places walkers on the top edge only.
	SpawnTop
	// SpawnBottom places walkers on the bottom edge only.
	SpawnBottom
	// SpawnLeft places walkers on the left edge only.
	SpawnLeft
	// SpawnRight places walkers on the right edge only.
	SpawnRight
)

var spawnModeNames = [...]string{
	SpawnCircle:  "Circle",
	SpawnEdges:   "Edges",
	SpawnCorners: "Corners",
	SpawnRandom:  "Random",
	SpawnTop:     "Top",
	SpawnBottom:  "Bottom",
	SpawnLeft:    "Left",
	SpawnRight:   "Right",
}

// Name returns the display name.
func (m SpawnMode) Name() string {
	if int(m) < len(spawnModeNames) {
		return spawnModeNames[m]
	}
	return "Circle"
}

// Next cycles to the following spawn mode.
func (m SpawnMode) Next() SpawnMode {
	return SpawnMode((int(m) + 1) % len(spawnModeNames))
}

// Prev cycles to the preceding spawn mode.
func (m SpawnMode) Prev() SpawnMode {
	return SpawnMode((int(m) + len(spawnModeNames) - 1) % len(spawnModeNames))
}

// MarshalText encodes the spawn mode by name for JSON round-trips.
func (m SpawnMode) MarshalText() ([]byte, error) { return []byte(m.Name()), nil }

// UnmarshalText decodes a spawn mode from its name.
func (m *SpawnMode) UnmarshalText(text []byte) error {
	for i, name := range spawnModeNames {
		if name == string(text) {
			*m = SpawnMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown spawn mode %q", text)
}

// BoundaryBehavior selects what happens when a walker crosses a grid edge.
type BoundaryBehavior uint8

const (
	// BoundaryClamp stops walkers at the edge.
	BoundaryClamp BoundaryBehavior = iota
	// BoundaryWrap moves walkers to the opposite side (toroidal).
	BoundaryWrap
	// BoundaryBounce reflects walkers off the exceeded edge.
	BoundaryBounce
	// BoundaryStick clamps like BoundaryClamp. Edge sticking is not a
	// distinct transform in the position update; kept as its own variant
	// so configs naming it keep working.
	BoundaryStick
	// BoundaryAbsorb discards walkers that reach the edge so a fresh one
	// respawns (canonical DLA). The discard happens in the walk loop; the
	// position transform clamps like BoundaryClamp.
	BoundaryAbsorb
)

var boundaryNames = [...]string{
	BoundaryClamp:  "Clamp",
	BoundaryWrap:   "Wrap",
	BoundaryBounce: "Bounce",
	BoundaryStick:  "Stick",
	BoundaryAbsorb: "Absorb",
}

// Name returns the display name.
func (b BoundaryBehavior) Name() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return "Clamp"
}

// Next cycles to the following boundary behavior.
func (b BoundaryBehavior) Next() BoundaryBehavior {
	return BoundaryBehavior((int(b) + 1) % len(boundaryNames))
}

// Prev cycles to the preceding boundary behavior.
func (b BoundaryBehavior) Prev() BoundaryBehavior {
	return BoundaryBehavior((int(b) + len(boundaryNames) - 1) % len(boundaryNames))
}

// MarshalText encodes the boundary behavior by name for JSON round-trips.
func (b BoundaryBehavior) MarshalText() ([]byte, error) { return []byte(b.Name()), nil }

// UnmarshalText decodes a boundary behavior from its name.
func (b *BoundaryBehavior) UnmarshalText(text []byte) error {
	for i, name := range boundaryNames {
		if name == string(text) {
			*b = BoundaryBehavior(i)
			return nil
		}
	}
	return fmt.Errorf("unknown boundary behavior %q", text)
}

// ColorMode selects which particle property drives the color gradient.
type ColorMode uint8

const (
	// ColorByAge colors by attachment order.
	ColorByAge ColorMode = iota
	// ColorByDistance colors by distance from the grid center.
	ColorByDistance
	// ColorByDensity colors by neighbor count at stick time.
	ColorByDensity
	// ColorByDirection colors by approach angle.
	ColorByDirection
)

var colorModeNames = [...]string{
	ColorByAge:       "Age",
	ColorByDistance:  "Distance",
	ColorByDensity:   "Density",
	ColorByDirection: "Direction",
}

// Name returns the display name.
func (c ColorMode) Name() string {
	if int(c) < len(colorModeNames) {
		return colorModeNames[c]
	}
	return "Age"
}

// Next cycles to the following color mode.
func (c ColorMode) Next() ColorMode {
	return ColorMode((int(c) + 1) % len(colorModeNames))
}

// Prev cycles to the preceding color mode.
func (c ColorMode) Prev() ColorMode {
	return ColorMode((int(c) + len(colorModeNames) - 1) % len(colorModeNames))
}

// MarshalText encodes the color mode by name for JSON round-trips.
func (c ColorMode) MarshalText() ([]byte, error) { return []byte(c.Name()), nil }

// UnmarshalText decodes a color mode from its name.
func (c *ColorMode) UnmarshalText(text []byte) error {
	for i, name := range colorModeNames {
		if name == string(text) {
			*c = ColorMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color mode %q", text)
}
