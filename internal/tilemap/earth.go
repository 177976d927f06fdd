package tilemap

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

const (
	earthBaseHeight = 40
	wideGapHeight   = 60
	narrowGapHeight = 80
	// exposedDepth is how far down an exposed column keeps its grass face.
	exposedDepth = 40
)

// earthLayout holds the column ranges where the earth band rises to meet
// the mountains. The narrow gap's edge columns are left exposed.
type earthLayout struct {
	wideStart, wideEnd     int
	narrowStart, narrowEnd int
}

func newEarthLayout(width int) earthLayout {
	half := width / 2
	return earthLayout{
		wideStart:   half + 40 - 200,
		wideEnd:     half + 110 - 200,
		narrowStart: half + 40 - 90,
		narrowEnd:   half + 70 - 90,
	}
}

// columnHeight returns the number of solid-or-cave rows in column x.
func (l earthLayout) columnHeight(x int) int {
	h := earthBaseHeight
	if x >= l.wideStart && x <= l.wideEnd {
		h = max(h, wideGapHeight)
	}
	if x >= l.narrowStart && x <= l.narrowEnd {
		h = max(h, narrowGapHeight)
	}
	return h
}

// earth fills the surface band. Row 0 sits at base and rows grow upward;
// the top row of each column is grass.
func (m *Map) earth(base mgl64.Vec3) {
	band := m.opts.Earth
	caves := gen.NewCaveGenerator(m.rng, m.opts.Field).Generate(band.Width, band.Height, gen.LayerEarth)
	layout := newEarthLayout(band.Width)

	n := 0
	for x := 0; x < band.Width; x++ {
		colHeight := layout.columnHeight(x)
		leftExposed := x == layout.narrowStart
		rightExposed := x == layout.narrowEnd

		for y := 0; y < colHeight; y++ {
			if caves.Open.Open(x, y) {
				if m.emitCaveEdge(tile.Grass, caves.Open, base, x, y) {
					n++
				}
				continue
			}

			t, cell := tile.Dirt, tile.Coords(tile.Dirt, tile.Classify(x, y, band.Width))
			switch {
			case y == colHeight-1:
				t, cell = tile.Grass, tile.GrassTop
				if leftExposed {
					cell = tile.GrassSlopeL
				} else if rightExposed {
					cell = tile.GrassSlopeR
				}
			case leftExposed && y >= colHeight-exposedDepth:
				t, cell = tile.Grass, tile.GrassSideLeft
			case rightExposed && y >= colHeight-exposedDepth:
				t, cell = tile.Grass, tile.GrassSideRight
			}

			if m.emitCell(t, cell, base, x, y) {
				n++
			}
		}
	}

	m.stats.Earth = n
	m.log.Debug("earth band emitted", "tiles", n, "open", caves.Open.OpenCount())
}
