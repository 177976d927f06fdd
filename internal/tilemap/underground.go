package tilemap

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

var oreTiles = map[gen.Ore]tile.Type{
	gen.OreNone:   tile.Stone,
	gen.OreGold:   tile.Gold,
	gen.OreSilver: tile.Silver,
}

// underground fills the stone band with base as its bottom-left corner.
// Ore veins are laid first; the sweep then draws cave boundaries, leaves
// vein cells alone, and rolls every other solid cell for stray ore, with
// cells on a cave wall far more likely to carry some.
func (m *Map) underground(base mgl64.Vec3) {
	band := m.opts.Underground
	caves := gen.NewCaveGenerator(m.rng, m.opts.Field).Generate(band.Width, band.Height, gen.LayerUnderground)
	grid := caves.Open

	n := 0
	veined := make([]bool, band.Width*band.Height)
	for _, v := range gen.PlaceVeins(grid, gen.UndergroundVeins, m.rng) {
		t := oreTiles[v.Ore]
		for _, c := range v.Cells {
			idx := c.Y*band.Width + c.X
			if veined[idx] {
				continue
			}
			veined[idx] = true
			if m.emitCell(t, tile.Coords(t, tile.Classify(c.X, c.Y, band.Width)), base, c.X, c.Y) {
				n++
			}
		}
	}

	for x := 0; x < band.Width; x++ {
		for y := 0; y < band.Height; y++ {
			if grid.Open(x, y) {
				if m.emitCaveEdge(tile.Stone, grid, base, x, y) {
					n++
				}
				continue
			}
			if veined[y*band.Width+x] {
				continue
			}

			t := oreTiles[gen.RollOre(m.rng, gen.NearOpen(grid, x, y))]
			if m.emitCell(t, tile.Coords(t, tile.Classify(x, y, band.Width)), base, x, y) {
				n++
			}
		}
	}

	m.stats.Underground = n
	m.log.Debug("underground band emitted", "tiles", n, "open", grid.OpenCount())
}
