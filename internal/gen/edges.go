package gen

// EdgeType is the boundary category of an open cell, chosen from which of
// its neighbours are solid.
type EdgeType int

const (
	EdgeNone EdgeType = iota
	EdgeCornerTopLeft
	EdgeCornerTopRight
	EdgeCornerBottomLeft
	EdgeCornerBottomRight
	EdgeInnerTopLeft
	EdgeInnerTopRight
	EdgeInnerBottomLeft
	EdgeInnerBottomRight
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edgeNames = [...]string{
	EdgeNone:              "none",
	EdgeCornerTopLeft:     "top-left-corner",
	EdgeCornerTopRight:    "top-right-corner",
	EdgeCornerBottomLeft:  "bottom-left-corner",
	EdgeCornerBottomRight: "bottom-right-corner",
	EdgeInnerTopLeft:      "inner-top-left",
	EdgeInnerTopRight:     "inner-top-right",
	EdgeInnerBottomLeft:   "inner-bottom-left",
	EdgeInnerBottomRight:  "inner-bottom-right",
	EdgeTop:               "top-edge",
	EdgeBottom:            "bottom-edge",
	EdgeLeft:              "left-edge",
	EdgeRight:             "right-edge",
}

func (e EdgeType) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "unknown"
	}
	return edgeNames[e]
}

// ClassifyEdge returns the boundary category of the open cell (x, y).
// Solid cells report EdgeNone. Row y-1 is "top".
//
// Outer corners win over inner corners, which win over straight edges.
func ClassifyEdge(g *Grid, x, y int) EdgeType {
	if !g.Open(x, y) {
		return EdgeNone
	}

	top := !g.Open(x, y-1)
	bottom := !g.Open(x, y+1)
	left := !g.Open(x-1, y)
	right := !g.Open(x+1, y)

	topLeft := !g.Open(x-1, y-1)
	topRight := !g.Open(x+1, y-1)
	bottomLeft := !g.Open(x-1, y+1)
	bottomRight := !g.Open(x+1, y+1)

	switch {
	case top && left:
		return EdgeCornerTopLeft
	case top && right:
		return EdgeCornerTopRight
	case bottom && left:
		return EdgeCornerBottomLeft
	case bottom && right:
		return EdgeCornerBottomRight
	case !top && !left && topLeft:
		return EdgeInnerTopLeft
	case !top && !right && topRight:
		return EdgeInnerTopRight
	case !bottom && !left && bottomLeft:
		return EdgeInnerBottomLeft
	case !bottom && !right && bottomRight:
		return EdgeInnerBottomRight
	case top:
		return EdgeTop
	case bottom:
		return EdgeBottom
	case left:
		return EdgeLeft
	case right:
		return EdgeRight
	}
	return EdgeNone
}

// NearOpen reports whether any 4-neighbour of (x, y) is open.
func NearOpen(g *Grid, x, y int) bool {
	return g.Open(x-1, y) || g.Open(x+1, y) || g.Open(x, y-1) || g.Open(x, y+1)
}
