package tile

// Cell is a column/row position inside a tile-set texture.
type Cell struct {
	X, Y int
}

// EdgeKind is the position of a tile within its block, used to pick the
// matching atlas cell.
type EdgeKind uint8

const (
	CornerTL EdgeKind = iota
	EdgeTop
	CornerTR
	EdgeLeft
	Center
	EdgeRight
	CornerBL
	CornerBR
)

var edgeKindNames = [...]string{
	CornerTL:  "corner_tl",
	EdgeTop:   "edge_top",
	CornerTR:  "corner_tr",
	EdgeLeft:  "edge_left",
	Center:    "center",
	EdgeRight: "edge_right",
	CornerBL:  "corner_bl",
	CornerBR:  "corner_br",
}

func (k EdgeKind) String() string {
	if int(k) >= len(edgeKindNames) {
		return "unknown"
	}
	return edgeKindNames[k]
}

// blockCoords is shared by every block material.
var blockCoords = [...]Cell{
	CornerTL:  {2, 4},
	EdgeTop:   {1, 1},
	CornerTR:  {1, 4},
	EdgeLeft:  {0, 0},
	Center:    {2, 1},
	EdgeRight: {4, 0},
	CornerBL:  {1, 1},
	CornerBR:  {4, 0},
}

var grassCoords = [...]Cell{
	CornerTL:  {2, 3},
	EdgeTop:   {1, 1},
	CornerTR:  {1, 3},
	EdgeLeft:  {0, 1},
	Center:    {1, 1},
	EdgeRight: {4, 0},
	CornerBL:  {0, 1},
	CornerBR:  {4, 0},
}

var mountainCoords = [...]Cell{
	CornerTL:  {0, 0},
	EdgeTop:   {1, 0},
	CornerTR:  {2, 0},
	EdgeLeft:  {0, 1},
	Center:    {1, 1},
	EdgeRight: {2, 1},
	CornerBL:  {0, 2},
	CornerBR:  {2, 2},
}

// Coords returns the atlas cell of a t tile at position k.
func Coords(t Type, k EdgeKind) Cell {
	if t == Grass {
		return grassCoords[k]
	}
	return blockCoords[k]
}

// MountainCoords returns the atlas cell of a mountain dirt tile.
func MountainCoords(k EdgeKind) Cell {
	return mountainCoords[k]
}

// Fixed grass cells.
var (
	GrassTop       = Cell{1, 0}
	GrassSlopeL    = Cell{0, 3}
	GrassSlopeR    = Cell{1, 3}
	GrassSideLeft  = Cell{0, 0}
	GrassSideRight = Cell{4, 0}
)

// Classify positions a tile in a width-wide block whose row 0 is its top.
func Classify(x, y, width int) EdgeKind {
	if y == 0 {
		switch x {
		case 0:
			return CornerTL
		case width - 1:
			return CornerTR
		}
		return EdgeTop
	}
	switch x {
	case 0:
		return EdgeLeft
	case width - 1:
		return EdgeRight
	}
	return Center
}

// ClassifyMountain positions a tile of column x, row y in a mountain whose
// column heights are heights. Row 0 is the base. A side is exposed when it
// is the outermost column or the neighbouring column does not reach row y.
func ClassifyMountain(x, y int, heights []int) EdgeKind {
	w := len(heights)
	if y == 0 {
		switch x {
		case 0:
			return CornerBL
		case w - 1:
			return CornerBR
		}
		return EdgeTop
	}
	if x == 0 || heights[x-1] < y+1 {
		return EdgeLeft
	}
	if x == w-1 || heights[x+1] < y+1 {
		return EdgeRight
	}
	return Center
}

// MountainGrass picks the cap of column x: a slope cell facing away from a
// taller neighbour, or the plain cap otherwise.
func MountainGrass(x int, heights []int) Cell {
	leftHigher := x > 0 && heights[x-1] > heights[x]
	rightHigher := x < len(heights)-1 && heights[x+1] > heights[x]

	if leftHigher && !rightHigher {
		return GrassSlopeR
	}
	return GrassSlopeL
}
