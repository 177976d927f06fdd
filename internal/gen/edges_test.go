package gen

import "testing"

func openGrid(w, h int) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, true)
		}
	}
	return g
}

func TestClassifyEdge(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Grid
		x, y  int
		want  EdgeType
	}{
		{
			name:  "solid cell",
			build: func() *Grid { return NewGrid(3, 3) },
			x:     1, y: 1,
			want: EdgeNone,
		},
		{
			name: "isolated open cell",
			build: func() *Grid {
				g := NewGrid(3, 3)
				g.Set(1, 1, true)
				return g
			},
			x: 1, y: 1,
			want: EdgeCornerTopLeft,
		},
		{
			name:  "fully surrounded",
			build: func() *Grid { return openGrid(5, 5) },
			x:     2, y: 2,
			want: EdgeNone,
		},
		{
			name:  "grid corner counts out-of-bounds as solid",
			build: func() *Grid { return openGrid(5, 5) },
			x:     4, y: 4,
			want: EdgeCornerBottomRight,
		},
		{
			name: "top edge",
			build: func() *Grid {
				g := openGrid(5, 5)
				for x := 0; x < 5; x++ {
					g.Set(x, 0, false)
				}
				return g
			},
			x: 2, y: 1,
			want: EdgeTop,
		},
		{
			name: "bottom edge",
			build: func() *Grid {
				g := openGrid(5, 5)
				for x := 0; x < 5; x++ {
					g.Set(x, 4, false)
				}
				return g
			},
			x: 2, y: 3,
			want: EdgeBottom,
		},
		{
			name: "left edge",
			build: func() *Grid {
				g := openGrid(5, 5)
				for y := 0; y < 5; y++ {
					g.Set(0, y, false)
				}
				return g
			},
			x: 1, y: 2,
			want: EdgeLeft,
		},
		{
			name: "right edge",
			build: func() *Grid {
				g := openGrid(5, 5)
				for y := 0; y < 5; y++ {
					g.Set(4, y, false)
				}
				return g
			},
			x: 3, y: 2,
			want: EdgeRight,
		},
		{
			name: "inner top-left",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(1, 1, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeInnerTopLeft,
		},
		{
			name: "inner top-right",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(3, 1, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeInnerTopRight,
		},
		{
			name: "inner bottom-left",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(1, 3, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeInnerBottomLeft,
		},
		{
			name: "inner bottom-right",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(3, 3, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeInnerBottomRight,
		},
		{
			name: "top-right corner",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(2, 1, false)
				g.Set(3, 2, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeCornerTopRight,
		},
		{
			name: "bottom-left corner",
			build: func() *Grid {
				g := openGrid(5, 5)
				g.Set(2, 3, false)
				g.Set(1, 2, false)
				return g
			},
			x: 2, y: 2,
			want: EdgeCornerBottomLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyEdge(tt.build(), tt.x, tt.y); got != tt.want {
				t.Errorf("ClassifyEdge(%d,%d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNearOpen(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, true)

	if !NearOpen(g, 1, 1) {
		t.Error("NearOpen(1,1) = false, want true")
	}
	if NearOpen(g, 0, 2) {
		t.Error("NearOpen(0,2) = true, want false")
	}
	// Diagonal neighbours do not count.
	if NearOpen(g, 0, 1) != false {
		t.Error("NearOpen(0,1) = true, want false for diagonal")
	}
}
