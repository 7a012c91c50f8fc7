package sim

// ParticleData records the state of a particle at the moment it stuck.
// Values are immutable once written.
type ParticleData struct {
	// Age is the order in which the particle stuck, 0-based.
	Age int
	// Distance from the grid center when the particle stuck.
	Distance float64
	// Direction is the approach angle in radians when the particle stuck.
	Direction float64
	// NeighborCount is the number of occupied neighbors at stick time,
	// counted with the neighborhood that was active.
	NeighborCount uint8
}

type cell struct {
	data     ParticleData
	occupied bool
}

// Grid stores stuck particles in a dense row-major array. Cells only ever
// transition empty to occupied; the whole grid is replaced on reset or resize.
type Grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]cell, w*h)}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Get returns the particle at (x, y). The second result is false for empty
// cells and for coordinates outside the grid.
func (g *Grid) Get(x, y int) (ParticleData, bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return ParticleData{}, false
	}
	c := g.cells[y*g.w+x]
	return c.data, c.occupied
}

// Occupied reports whether the cell at (x, y) holds a particle.
func (g *Grid) Occupied(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cells[y*g.w+x].occupied
}

func (g *Grid) occupiedIndex(idx int) bool {
	return g.cells[idx].occupied
}

// set writes a particle. Only the seed generator and a successful stick in
// the walk loop reach it.
func (g *Grid) set(x, y int, d ParticleData) {
	g.cells[y*g.w+x] = cell{data: d, occupied: true}
}

// clear empties every cell in place.
func (g *Grid) clear() {
	for i := range g.cells {
		g.cells[i] = cell{}
	}
}

// CountOccupied returns the number of occupied cells.
func (g *Grid) CountOccupied() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].occupied {
			n++
		}
	}
	return n
}
