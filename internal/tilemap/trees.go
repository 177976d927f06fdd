package tilemap

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/tile"
)

const (
	trunkSegments = 5
	trunkStep     = 19
	trunkWidth    = 15
	trunkHeight   = 20
	knotSegment   = 3
	knotShift     = 15
	nestWidth     = trunkWidth + 20
	nestHeight    = 15
	nestLift      = trunkSegments * 20
)

var (
	trunkCell = tile.Cell{X: 0, Y: 0}
	knotCell  = tile.Cell{X: 4, Y: 3}
)

// treeSteps moves the planting position after each tree. The first step
// is relative to the map origin.
var treeSteps = []mgl64.Vec3{
	{1250, 890, 0},
	{250, -50, 0},
	{250, 170, 0},
	{140, 100, 0},
	{500, 330, 0},
}

// trees plants the decorative trees along treeSteps.
func (m *Map) trees(origin mgl64.Vec3) {
	pos := origin
	n := 0
	for i := 0; i < m.opts.Trees; i++ {
		n += m.tree(pos)
		if i < len(treeSteps) {
			pos = pos.Add(treeSteps[i])
		}
	}

	m.stats.Trees = n
	m.log.Debug("trees emitted", "trees", m.opts.Trees, "tiles", n)
}

// tree draws a trunk with a knot pushed out to the side on one segment, a
// plain segment filling the slot the knot left, and a crown on top.
func (m *Map) tree(base mgl64.Vec3) int {
	branches := m.sets[tile.TreeBranch]
	nests := m.sets[tile.TreeNest]
	segSize := mgl64.Vec3{trunkWidth, trunkHeight, 1}

	n := 0
	for i := 0; i < trunkSegments; i++ {
		pos := base.Add(mgl64.Vec3{0, float64(i * trunkStep), 0})
		cell := trunkCell
		if i == knotSegment {
			cell = knotCell
			pos[0] += knotShift
		}
		if m.emit(tile.TreeBranch, branches.BranchUV(cell.X, cell.Y, false), pos, segSize) {
			n++
		}
	}

	filler := base.Add(mgl64.Vec3{0, float64(knotSegment * trunkStep), 0})
	if m.emit(tile.TreeBranch, branches.BranchUV(trunkCell.X, trunkCell.Y, false), filler, segSize) {
		n++
	}

	nest := base.Add(mgl64.Vec3{0, nestLift, 0})
	if m.emit(tile.TreeNest, nests.TreeTopUV(0, false), nest, mgl64.Vec3{nestWidth, nestHeight, 1}) {
		n++
	}
	return n
}
