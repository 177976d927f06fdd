package tilemap

import (
	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

var caveEdgeCells = map[gen.EdgeType]tile.Cell{
	gen.EdgeCornerTopLeft:     {X: 1, Y: 3},
	gen.EdgeCornerTopRight:    {X: 1, Y: 3},
	gen.EdgeCornerBottomLeft:  {X: 0, Y: 4},
	gen.EdgeCornerBottomRight: {X: 1, Y: 4},
	gen.EdgeTop:               {X: 6, Y: 5},
	gen.EdgeBottom:            {X: 6, Y: 8},
	gen.EdgeLeft:              {X: 4, Y: 0},
	gen.EdgeRight:             {X: 0, Y: 0},
	gen.EdgeInnerTopLeft:      {X: 2, Y: 3},
	gen.EdgeInnerTopRight:     {X: 3, Y: 3},
	gen.EdgeInnerBottomLeft:   {X: 2, Y: 4},
	gen.EdgeInnerBottomRight:  {X: 6, Y: 8},
}

var defaultCaveEdgeCell = tile.Cell{X: 1, Y: 0}

// CaveEdgeCell returns the atlas cell drawn for a cave boundary of type e.
func CaveEdgeCell(e gen.EdgeType) tile.Cell {
	if c, ok := caveEdgeCells[e]; ok {
		return c
	}
	return defaultCaveEdgeCell
}
