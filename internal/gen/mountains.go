package gen

import (
	"fmt"
	"math"
)

// SymmetryMode decides which normal mountain passes are mirrored.
type SymmetryMode string

const (
	// SymmetryAll mirrors every normal profile.
	SymmetryAll SymmetryMode = "all"
	// SymmetryMiddle mirrors only pass 2.
	SymmetryMiddle SymmetryMode = "middle"
)

// ParseSymmetryMode validates s. An empty string selects SymmetryAll.
func ParseSymmetryMode(s string) (SymmetryMode, error) {
	switch SymmetryMode(s) {
	case "", SymmetryAll:
		return SymmetryAll, nil
	case SymmetryMiddle:
		return SymmetryMiddle, nil
	default:
		return "", fmt.Errorf("unknown symmetry mode %q", s)
	}
}

func (m SymmetryMode) mirrors(pass int) bool {
	if m == SymmetryMiddle {
		return pass > 1 && pass < 3
	}
	return true
}

const (
	maxHeightStep  = 15
	smoothPasses   = 2
	smoothMaxDelta = 2
)

// ProfileGenerator produces column height profiles for mountains.
type ProfileGenerator struct {
	rng      Source
	symmetry SymmetryMode
}

// NewProfileGenerator creates a ProfileGenerator.
func NewProfileGenerator(rng Source, symmetry SymmetryMode) *ProfileGenerator {
	if symmetry == "" {
		symmetry = SymmetryAll
	}
	return &ProfileGenerator{rng: rng, symmetry: symmetry}
}

// Profile returns width column heights, each at least 1.
//
// variation 0 yields a centred peak with a linear falloff; any other value
// offsets the peak, varies the slope and jitters columns. Passes 1 and 2
// are scaled down to 60% height. An inverted profile is lowest at the peak
// position and rises toward the edges.
func (pg *ProfileGenerator) Profile(width, height, variation, pass int, inverted bool) []int {
	half := float64(width) / 2

	offset := 0.0
	slope := 1.0
	if variation != 0 {
		offset = math.Floor((pg.rng.Float64() - 0.5) * float64(width) * 0.4)
		slope = 0.8 + pg.rng.Float64()*0.4
	}
	center := half + offset

	scale := 1.0
	if !inverted && (pass == 1 || pass == 2) {
		scale = 0.6
	}

	heights := make([]int, width)
	for x := range width {
		dist := math.Abs(center - float64(x))

		base := dist / half
		if !inverted {
			base = 1.4 - base
		}
		ratio := math.Pow(math.Max(0, base), slope)

		h := max(1, int(math.Floor(ratio*float64(height)*scale)))

		if variation > 0 && x > 2 && x < width-2 {
			h = max(1, h+pg.rng.IntN(7)-3)
		}

		if x > 0 {
			prev := heights[x-1]
			if h-prev > maxHeightStep {
				h = prev + maxHeightStep
			} else if prev-h > maxHeightStep {
				h = prev - maxHeightStep
			}
		}
		heights[x] = h
	}

	if !inverted && pg.symmetry.mirrors(pass) {
		Mirror(heights)
	}
	Smooth(heights)

	return heights
}

// Mirror copies the left half of heights onto the right half.
func Mirror(heights []int) {
	n := len(heights)
	for x := 0; x < n/2; x++ {
		heights[n-1-x] = heights[x]
	}
}

// Smooth pulls interior columns that stand out from their neighbours'
// average by more than 2 toward it. Updates are applied in place, left to
// right, so each column sees its already smoothed left neighbour.
func Smooth(heights []int) {
	for range smoothPasses {
		for x := 1; x < len(heights)-1; x++ {
			avg := float64(heights[x-1]+heights[x+1]) / 2
			h := float64(heights[x])
			if math.Abs(h-avg) > smoothMaxDelta {
				heights[x] = max(1, int(math.Round(h*0.7+avg*0.3)))
			}
		}
	}
}
