package gen

import "math"

// Ore identifies a vein mineral.
type Ore int

const (
	OreNone Ore = iota
	OreGold
	OreSilver
)

func (o Ore) String() string {
	switch o {
	case OreGold:
		return "gold"
	case OreSilver:
		return "silver"
	default:
		return "none"
	}
}

// VeinConfig describes how many veins of an ore to scatter and where.
// Depths are fractions of the region height.
type VeinConfig struct {
	Ore       Ore
	Count     int
	MinDepth  float64
	DepthSpan float64
	MinRadius int
	RadiusN   int // radius = MinRadius + IntN(RadiusN)
}

// UndergroundVeins are placed before the underground sweep.
var UndergroundVeins = []VeinConfig{
	{Ore: OreGold, Count: 10, MinDepth: 0.6, DepthSpan: 0.4, MinRadius: 2, RadiusN: 3},
	{Ore: OreSilver, Count: 20, MinDepth: 0.4, DepthSpan: 0.4, MinRadius: 2, RadiusN: 4},
}

// Vein is a placed ore vein and the cells it covers.
type Vein struct {
	Ore   Ore
	Cells []Cell
}

// PlaceVeins scatters the configured veins over g and returns them in
// placement order.
func PlaceVeins(g *Grid, configs []VeinConfig, rng Source) []Vein {
	w, h := g.width, float64(g.height)
	var veins []Vein
	for _, vc := range configs {
		for range vc.Count {
			x := rng.IntN(w)
			y := int(math.Floor(h*vc.MinDepth + rng.Float64()*h*vc.DepthSpan))
			r := vc.MinRadius + rng.IntN(vc.RadiusN)
			veins = append(veins, Vein{Ore: vc.Ore, Cells: VeinCells(g, x, y, r, rng)})
		}
	}
	return veins
}

// VeinCells returns the solid in-bounds cells within radius of (cx, cy),
// each kept with 80% probability.
func VeinCells(g *Grid, cx, cy, radius int, rng Source) []Cell {
	var cells []Cell
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) || g.Open(x, y) {
				continue
			}
			if math.Sqrt(float64(dx*dx+dy*dy)) > float64(radius) {
				continue
			}
			if rng.Float64() < 0.8 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// RollOre picks the mineral of a stone cell. Cells touching a cave wall
// are far more likely to carry ore.
func RollOre(rng Source, nearCave bool) Ore {
	r := rng.Float64()
	if nearCave {
		switch {
		case r < 0.10:
			return OreGold
		case r < 0.40:
			return OreSilver
		}
		return OreNone
	}
	switch {
	case r < 0.005:
		return OreGold
	case r < 0.02:
		return OreSilver
	}
	return OreNone
}
