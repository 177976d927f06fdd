package gen

import "math"

// Layer selects the parameter set of a cave generation run.
type Layer int

const (
	// LayerEarth is the shallow band under the surface.
	LayerEarth Layer = iota
	// LayerUnderground is the deep stone stratum.
	LayerUnderground
)

func (l Layer) String() string {
	if l == LayerUnderground {
		return "underground"
	}
	return "earth"
}

// CaveSystem is the result of one cave generation run.
type CaveSystem struct {
	Open  *Grid
	Noise *NoiseGrid
}

// caveParams holds the per-layer tuning of the cave passes.
type caveParams struct {
	tunnels        int
	tunnelLength   float64
	tunnelJitter   float64
	tunnelRadius   float64
	caverns        int
	cavernRadius   float64
	cavernJitter   float64
	connect        bool
	surfaceShafts  bool
	automataPasses int
}

var layerParams = map[Layer]caveParams{
	LayerEarth: {
		tunnels: 5, tunnelLength: 150, tunnelJitter: 200, tunnelRadius: 3,
		caverns: 3, cavernRadius: 10, cavernJitter: 15,
		surfaceShafts: true, automataPasses: 2,
	},
	LayerUnderground: {
		tunnels: 8, tunnelLength: 300, tunnelJitter: 400, tunnelRadius: 4,
		caverns: 15, cavernRadius: 15, cavernJitter: 20,
		connect: true, automataPasses: 4,
	},
}

const (
	tunnelMargin     = 10
	minRegionArea    = 50
	maxConnectLength = 80
)

// CaveGenerator carves worm tunnels, caverns and shafts into a grid and
// smooths the result with cellular automata and noise erosion.
type CaveGenerator struct {
	rng   Source
	field Field
}

// NewCaveGenerator creates a CaveGenerator drawing from rng and eroding with field.
func NewCaveGenerator(rng Source, field Field) *CaveGenerator {
	return &CaveGenerator{rng: rng, field: field}
}

// Generate builds a fresh cave system for a width x height region.
func (cg *CaveGenerator) Generate(width, height int, layer Layer) *CaveSystem {
	p := layerParams[layer]
	cs := &CaveSystem{
		Open:  NewGrid(width, height),
		Noise: NewNoiseGrid(width, height, cg.field),
	}

	cg.wormTunnels(cs.Open, p, layer)
	cg.caverns(cs.Open, p, layer)
	if p.connect {
		cg.connectRegions(cs.Open)
	}
	if p.surfaceShafts {
		cg.surfaceShafts(cs.Open)
	}
	for range p.automataPasses {
		cs.Open = Automata(cs.Open)
	}
	Erode(cs.Open, cs.Noise)

	return cs
}

func (cg *CaveGenerator) wormTunnels(g *Grid, p caveParams, layer Layer) {
	w, h := float64(g.width), float64(g.height)
	for range p.tunnels {
		x := cg.rng.Float64() * w
		var y float64
		if layer == LayerUnderground {
			y = 20 + cg.rng.Float64()*(h-40)
		} else {
			y = 30 + cg.rng.Float64()*(h-50)
		}
		cg.wormTunnel(g, x, y, p)
	}
}

func (cg *CaveGenerator) wormTunnel(g *Grid, x, y float64, p caveParams) {
	w, h := float64(g.width), float64(g.height)
	dirX := (cg.rng.Float64() - 0.5) * 2
	dirY := (cg.rng.Float64() - 0.5) * 2
	length := int(p.tunnelLength + cg.rng.Float64()*p.tunnelJitter)

	for step := 0; step < length; step++ {
		radius := p.tunnelRadius + math.Sin(float64(step)*0.1)*2 + cg.rng.Float64()*1.5
		cg.carveCircle(g, math.Floor(x), math.Floor(y), radius)

		dirX += (cg.rng.Float64() - 0.5) * 0.4
		dirY += (cg.rng.Float64() - 0.5) * 0.3
		dirX = clamp(dirX, -1.5, 1.5)
		dirY = clamp(dirY, -1, 1)
		dirY += 0.02

		x += dirX
		y += dirY
		if x < tunnelMargin || x > w-tunnelMargin || y < tunnelMargin || y > h-tunnelMargin {
			return
		}
	}
}

func (cg *CaveGenerator) caverns(g *Grid, p caveParams, layer Layer) {
	w, h := float64(g.width), float64(g.height)
	for range p.caverns {
		x := 50 + cg.rng.Float64()*(w-100)
		var y float64
		if layer == LayerUnderground {
			y = 40 + cg.rng.Float64()*(h-80)
		} else {
			y = 50 + cg.rng.Float64()*(h-100)
		}
		radius := p.cavernRadius + cg.rng.Float64()*p.cavernJitter
		cg.cavern(g, x, y, radius)
	}
}

// cavern carves rays out from the centre at evenly spaced angles, then
// fills the core.
func (cg *CaveGenerator) cavern(g *Grid, cx, cy, radius float64) {
	rays := 8 + cg.rng.IntN(8)
	for i := range rays {
		angle := float64(i) * 2 * math.Pi / float64(rays)
		length := radius * (0.6 + cg.rng.Float64()*0.8)
		ex := cx + math.Cos(angle)*length
		ey := cy + math.Sin(angle)*length*0.7
		cg.carveLine(g, cx, cy, ex, ey, 3+cg.rng.Float64()*4)
	}
	cg.carveCircle(g, cx, cy, radius*0.5)
}

func (cg *CaveGenerator) connectRegions(g *Grid) {
	centers := Regions(g, minRegionArea)
	for i := 0; i+1 < len(centers); i++ {
		a, b := centers[i], centers[i+1]
		dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
		if math.Sqrt(dx*dx+dy*dy) >= maxConnectLength {
			continue
		}
		cg.carveLine(g, float64(a.X), float64(a.Y), float64(b.X), float64(b.Y), 2+cg.rng.Float64()*2)
	}
}

func (cg *CaveGenerator) surfaceShafts(g *Grid) {
	w := float64(g.width)
	count := 3 + cg.rng.IntN(3)
	for range count {
		x := 50 + cg.rng.Float64()*(w-100)
		y := 10 + cg.rng.Float64()*30
		depth := 15 + cg.rng.Float64()*25
		cg.shaft(g, x, y, depth)
	}
}

func (cg *CaveGenerator) shaft(g *Grid, x, startY, depth float64) {
	h := float64(g.height)
	radius := 3 + cg.rng.Float64()*2

	for y := startY; y < startY+depth && y < h; y++ {
		x += (cg.rng.Float64() - 0.5) * 1.5
		radius = math.Max(2, radius+(cg.rng.Float64()-0.5))
		cg.carveCircle(g, x, y, radius)

		if cg.rng.Float64() < 0.1 {
			length := 10 + cg.rng.Float64()*20
			dir := 1.0
			if cg.rng.Float64() < 0.5 {
				dir = -1
			}
			cg.carveLine(g, x, y, x+dir*length, y+length*0.3, 2+cg.rng.Float64()*2)
		}
	}
}

// carveCircle opens cells within radius of (cx, cy). Cells near the rim are
// kept only part of the time so walls come out ragged.
func (cg *CaveGenerator) carveCircle(g *Grid, cx, cy, radius float64) {
	r2 := radius * radius
	x0 := max(0, int(math.Floor(cx-radius)))
	x1 := min(g.width-1, int(math.Ceil(cx+radius)))
	y0 := max(0, int(math.Floor(cy-radius)))
	y1 := min(g.height-1, int(math.Ceil(cy+radius)))

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			if d2/r2 < 0.8+cg.rng.Float64()*0.3 {
				g.Set(x, y, true)
			}
		}
	}
}

func (cg *CaveGenerator) carveLine(g *Grid, x1, y1, x2, y2, radius float64) {
	steps := int(math.Ceil(math.Hypot(x2-x1, y2-y1)))
	if steps == 0 {
		cg.carveCircle(g, x1, y1, radius*(0.7+cg.rng.Float64()*0.6))
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + (x2-x1)*t
		y := y1 + (y2-y1)*t
		cg.carveCircle(g, x, y, radius*(0.7+cg.rng.Float64()*0.6))
	}
}

// Automata runs one smoothing iteration into a new grid: a solid cell opens
// with five or more open neighbours, an open cell stays open with four or
// more. Cells outside the grid count as solid.
func Automata(g *Grid) *Grid {
	next := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.OpenNeighbors(x, y)
			if g.Open(x, y) {
				next.Set(x, y, n >= 4)
			} else {
				next.Set(x, y, n >= 5)
			}
		}
	}
	return next
}

// Erode opens solid cells whose noise exceeds a threshold that rises with depth.
func Erode(g *Grid, noise *NoiseGrid) {
	h := float64(g.height)
	for y := 0; y < g.height; y++ {
		threshold := 0.6 + float64(y)/h*0.2
		for x := 0; x < g.width; x++ {
			if !g.Open(x, y) && noise.At(x, y) > threshold {
				g.Set(x, y, true)
			}
		}
	}
}

// Regions flood-fills 4-connected open regions, scanning column by column,
// and returns the floored centroid of every region larger than minArea.
func Regions(g *Grid, minArea int) []Cell {
	seen := make([]bool, len(g.cells))
	var centers []Cell
	var stack []Cell

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if !g.Open(x, y) || seen[y*g.width+x] {
				continue
			}

			size, sumX, sumY := 0, 0, 0
			stack = append(stack[:0], Cell{x, y})
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !g.Open(c.X, c.Y) || seen[c.Y*g.width+c.X] {
					continue
				}
				seen[c.Y*g.width+c.X] = true
				size++
				sumX += c.X
				sumY += c.Y
				stack = append(stack,
					Cell{c.X + 1, c.Y}, Cell{c.X - 1, c.Y},
					Cell{c.X, c.Y + 1}, Cell{c.X, c.Y - 1})
			}

			if size > minArea {
				centers = append(centers, Cell{sumX / size, sumY / size})
			}
		}
	}
	return centers
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
