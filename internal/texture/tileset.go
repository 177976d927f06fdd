package texture

const (
	// SourceTileSize is the pixel size of one cell in a tile-set image.
	SourceTileSize = 16

	tileGap   = 2
	tileInset = 0.25

	branchCols     = 8
	branchRows     = 12
	treeTopsPerRow = 3
)

// TileSet maps atlas cells of a texture to UVs. Cells are laid out on a
// grid with a 2 pixel gap between them.
type TileSet struct {
	tex          *Texture
	tileW, tileH int
}

// NewTileSet creates a TileSet over tex with tileW x tileH pixel cells.
func NewTileSet(tex *Texture, tileW, tileH int) *TileSet {
	return &TileSet{tex: tex, tileW: tileW, tileH: tileH}
}

// Texture returns the texture this set reads from.
func (ts *TileSet) Texture() *Texture { return ts.tex }

// Bounds returns the left, bottom, right and top texture coordinates of
// cell (tx, ty), inset by a quarter pixel to avoid bleeding. V is flipped
// so that row 0 is at the top of the image. flipX swaps left and right.
func (ts *TileSet) Bounds(tx, ty int, flipX bool) (left, bottom, right, top float64) {
	px := 1 / float64(ts.tex.Width)
	py := 1 / float64(ts.tex.Height)

	beginX := float64(tx * (ts.tileW + tileGap))
	beginY := float64(ty * (ts.tileH + tileGap))
	endX := beginX + float64(ts.tileW)
	endY := beginY + float64(ts.tileH)

	left = beginX*px + tileInset*px
	right = endX*px - tileInset*px
	top = 1 - beginY*py - tileInset*py
	bottom = 1 - endY*py + tileInset*py

	if flipX {
		left, right = right, left
	}
	return left, bottom, right, top
}

// UV returns the corner UVs of cell (tx, ty).
func (ts *TileSet) UV(tx, ty int, flipX bool) UV {
	return quad(ts.Bounds(tx, ty, flipX))
}

// BranchUV returns the UVs of cell (tx, ty) on the 8 x 12 tree branch atlas.
func (ts *TileSet) BranchUV(tx, ty int, flipX bool) UV {
	w := 1.0 / branchCols
	h := 1.0 / branchRows

	left := float64(tx) * w
	bottom := 1 - float64(ty+1)*h
	right := left + w
	top := bottom + h
	if flipX {
		left, right = right, left
	}
	return quad(left, bottom, right, top)
}

// TreeTopUV returns the UVs of the index-th crown on a tree-top strip
// holding three crowns side by side.
func (ts *TileSet) TreeTopUV(index int, flipX bool) UV {
	w := 1.0 / treeTopsPerRow

	left := float64(index) * w
	right := left + w
	if flipX {
		left, right = right, left
	}
	return quad(left, 0, right, 1)
}

func quad(left, bottom, right, top float64) UV {
	l, b, r, t := float32(left), float32(bottom), float32(right), float32(top)
	return UV{
		l, b,
		r, b,
		r, t,
		l, t,
	}
}
