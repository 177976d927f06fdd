package tilemap

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

const (
	maxVariedRange = 5

	valleyOffsetX = 790
	valleyWidth   = 61
	valleyHeight  = 22
)

// mountains lays out the ranges in a row above origin. The first range
// also gets an inverted valley profile with its middle columns cut out.
func (m *Map) mountains(origin mgl64.Vec3) {
	mo := m.opts.Mountains
	pg := gen.NewProfileGenerator(m.rng, mo.Symmetry)
	y := origin[1] + mo.Lift

	n := 0
	for i := 0; i < mo.Count; i++ {
		variation := 0
		if i <= maxVariedRange {
			variation = i
		}

		base := mgl64.Vec3{origin[0] + float64(i)*mo.Spacing, y, origin[2]}
		heights := pg.Profile(mo.Width, mo.Height, variation, i, false)
		n += m.mountainTiles(heights, base, nil)

		if i == 0 {
			valley := pg.Profile(valleyWidth, valleyHeight, variation, i, true)
			gap := func(x int) bool {
				return x >= valleyWidth/2-2 && x <= valleyWidth/2+3
			}
			n += m.mountainTiles(valley, mgl64.Vec3{origin[0] + valleyOffsetX, y, origin[2]}, gap)
		}
	}

	m.stats.Mountains = n
	m.log.Debug("mountains emitted", "ranges", mo.Count, "tiles", n)
}

// mountainTiles stacks heights[x] tiles in each column above base. Columns
// for which skip reports true are left empty. A column's top tile is grass;
// a lower tile facing a shorter right-hand column is grass too; the rest
// is mountain dirt.
func (m *Map) mountainTiles(heights []int, base mgl64.Vec3, skip func(x int) bool) int {
	n := 0
	w := len(heights)
	for x, colHeight := range heights {
		if skip != nil && skip(x) {
			continue
		}
		for y := 0; y < colHeight; y++ {
			var (
				t    tile.Type
				cell tile.Cell
			)
			switch {
			case y == colHeight-1:
				t, cell = tile.Grass, tile.MountainGrass(x, heights)
			case x < w-1 && heights[x+1] <= y:
				t, cell = tile.Grass, tile.MountainGrass(x, heights)
			default:
				t, cell = tile.Dirt, tile.MountainCoords(tile.ClassifyMountain(x, y, heights))
			}

			if m.emitCell(t, cell, base, x, y) {
				n++
			}
		}
	}
	return n
}
