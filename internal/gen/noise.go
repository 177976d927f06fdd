package gen

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic scalar field sampled at integer grid coordinates.
type Field interface {
	At(x, y int) float64
}

// Field kinds accepted by NewField.
const (
	FieldSine    = "sine"
	FieldSimplex = "simplex"
	FieldPerlin  = "perlin"
)

// SineField is the fixed three-frequency sine/cosine sum used for cave
// erosion. It ignores the seed and ranges over [-1, 1].
type SineField struct{}

func (SineField) At(x, y int) float64 {
	fx, fy := float64(x), float64(y)
	return math.Sin(fx*0.02)*math.Cos(fy*0.02)*0.5 +
		math.Sin(fx*0.05)*math.Cos(fy*0.05)*0.3 +
		math.Sin(fx*0.1)*math.Cos(fy*0.1)*0.2
}

// SimplexField samples OpenSimplex noise.
type SimplexField struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewSimplexField creates a seeded SimplexField.
func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{noise: opensimplex.New(seed), frequency: 0.05}
}

func (f *SimplexField) At(x, y int) float64 {
	return f.noise.Eval2(float64(x)*f.frequency, float64(y)*f.frequency)
}

// PerlinField samples classic Perlin noise.
type PerlinField struct {
	noise     *perlin.Perlin
	frequency float64
}

// NewPerlinField creates a seeded PerlinField.
func NewPerlinField(seed int64) *PerlinField {
	return &PerlinField{noise: perlin.NewPerlin(2, 2, 3, seed), frequency: 0.05}
}

func (f *PerlinField) At(x, y int) float64 {
	return f.noise.Noise2D(float64(x)*f.frequency, float64(y)*f.frequency)
}

// NewField returns the field named by kind. An empty kind selects the sine field.
func NewField(kind string, seed int64) (Field, error) {
	switch kind {
	case "", FieldSine:
		return SineField{}, nil
	case FieldSimplex:
		return NewSimplexField(seed), nil
	case FieldPerlin:
		return NewPerlinField(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise field %q", kind)
	}
}

// NoiseGrid is a precomputed width x height sample of a Field.
type NoiseGrid struct {
	width, height int
	values        []float64
}

// NewNoiseGrid samples f at every cell of a width x height region.
func NewNoiseGrid(width, height int, f Field) *NoiseGrid {
	g := &NoiseGrid{width: width, height: height, values: make([]float64, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.values[y*width+x] = f.At(x, y)
		}
	}
	return g
}

// At returns the sample at (x, y), or 0 outside the grid.
func (g *NoiseGrid) At(x, y int) float64 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.values[y*g.width+x]
}
