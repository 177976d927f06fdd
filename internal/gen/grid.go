package gen

// Grid is a width x height occupancy map. A true cell is open (cave air),
// false is solid. Reads outside the grid report solid and writes outside
// it are dropped, so carving near the border never needs its own checks.
type Grid struct {
	width, height int
	cells         []bool
}

// NewGrid returns an all-solid grid.
func NewGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, cells: make([]bool, width*height)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Open reports whether (x, y) is open.
func (g *Grid) Open(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// Set marks (x, y) open or solid.
func (g *Grid) Set(x, y int, open bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = open
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// OpenNeighbors counts open cells in the 8-neighbourhood of (x, y).
func (g *Grid) OpenNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Open(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}
