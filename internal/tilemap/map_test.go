package tilemap

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/texture"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

type fakeTextures map[tile.Type]*texture.Texture

func (f fakeTextures) Get(t tile.Type) (*texture.Texture, bool) {
	tex, ok := f[t]
	return tex, ok
}

func allTextures() fakeTextures {
	out := make(fakeTextures)
	for _, t := range tile.Types {
		out[t] = &texture.Texture{Key: t.String(), Width: 256, Height: 256}
	}
	return out
}

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Earth = Band{Width: 60, Height: 20}
	opts.Underground = Band{Width: 60, Height: 40}
	opts.Mountains.Count = 2
	opts.Mountains.Width = 12
	opts.Mountains.Height = 10
	return opts
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func build(t *testing.T, store scene.Store, textures Textures, opts Options, seed int64) *Map {
	t.Helper()
	m := New(store, textures, opts, gen.NewSource(seed), testLogger())
	if err := m.Build(mgl64.Vec3{}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestBuildMissingTextures(t *testing.T) {
	textures := allTextures()
	delete(textures, tile.Stone)
	store := scene.NewMemoryStore(0)

	m := New(store, textures, smallOptions(), gen.NewSource(1), testLogger())
	err := m.Build(mgl64.Vec3{})
	if !errors.Is(err, ErrTexturesMissing) {
		t.Fatalf("Build() error = %v, want ErrTexturesMissing", err)
	}
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d, want 0", store.Len())
	}
	if len(m.Tiles()) != 0 {
		t.Errorf("len(Tiles()) = %d, want 0", len(m.Tiles()))
	}
}

func TestBuildDeterministic(t *testing.T) {
	s1, s2 := scene.NewMemoryStore(0), scene.NewMemoryStore(0)
	m1 := build(t, s1, allTextures(), smallOptions(), 99)
	m2 := build(t, s2, allTextures(), smallOptions(), 99)

	if m1.Stats() != m2.Stats() {
		t.Fatalf("Stats() = %+v and %+v, want equal", m1.Stats(), m2.Stats())
	}
	a, b := m1.Tiles(), m2.Tiles()
	for i := range a {
		sa, sb := s1.Sprite(a[i]), s2.Sprite(b[i])
		if sa.Position != sb.Position || sa.Tile != sb.Tile || sa.UV != sb.UV {
			t.Fatalf("tile %d differs: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestBuildTilesAreTyped(t *testing.T) {
	store := scene.NewMemoryStore(0)
	m := build(t, store, allTextures(), smallOptions(), 5)

	if got, want := len(m.Tiles()), m.Stats().Total(); got != want {
		t.Fatalf("len(Tiles()) = %d, want %d", got, want)
	}
	seen := make(map[tile.Type]int)
	for _, h := range m.Tiles() {
		sp := store.Sprite(h)
		if sp == nil {
			t.Fatalf("tile %d has no sprite", h)
		}
		if sp.Tile == tile.None {
			t.Errorf("tile %d has type None", h)
		}
		if sp.Texture == nil {
			t.Errorf("tile %d has no texture", h)
		}
		if kind, _ := store.Kind(h); kind != scene.KindTile {
			t.Errorf("tile %d kind = %v, want KindTile", h, kind)
		}
		seen[sp.Tile]++
	}

	for _, want := range []tile.Type{tile.Grass, tile.Dirt, tile.Stone, tile.TreeBranch, tile.TreeNest} {
		if seen[want] == 0 {
			t.Errorf("no %v tiles emitted", want)
		}
	}
}

func TestBuildTerrainSize(t *testing.T) {
	store := scene.NewMemoryStore(0)
	m := build(t, store, allTextures(), smallOptions(), 3)

	want := mgl64.Vec3{22, 22, 1}
	for _, h := range m.Tiles() {
		sp := store.Sprite(h)
		if tile.IsTreePart(sp.Tile) {
			continue
		}
		if sp.Size != want {
			t.Fatalf("terrain tile size = %v, want %v", sp.Size, want)
		}
	}
}

func TestBuildTrees(t *testing.T) {
	store := scene.NewMemoryStore(0)
	m := build(t, store, allTextures(), smallOptions(), 11)

	if got, want := m.Stats().Trees, 6*7; got != want {
		t.Errorf("Stats().Trees = %d, want %d", got, want)
	}

	var nests []mgl64.Vec3
	for _, h := range m.Tiles() {
		sp := store.Sprite(h)
		if sp.Tile != tile.TreeNest {
			continue
		}
		if sp.Size != (mgl64.Vec3{35, 15, 1}) {
			t.Errorf("nest size = %v, want [35 15 1]", sp.Size)
		}
		nests = append(nests, sp.Position)
	}
	if len(nests) != 6 {
		t.Fatalf("nests = %d, want 6", len(nests))
	}
	if nests[0] != (mgl64.Vec3{0, 100, 0}) {
		t.Errorf("first nest at %v, want [0 100 0]", nests[0])
	}
	if nests[1] != (mgl64.Vec3{1250, 990, 0}) {
		t.Errorf("second nest at %v, want [1250 990 0]", nests[1])
	}
	if nests[5] != (mgl64.Vec3{2390, 1540, 0}) {
		t.Errorf("last nest at %v, want [2390 1540 0]", nests[5])
	}
}

func TestBuildSkipsWithoutSprite(t *testing.T) {
	store := scene.NewMemoryStore(25)
	m := build(t, store, allTextures(), smallOptions(), 2)

	if got := len(m.Tiles()); got != 25 {
		t.Errorf("len(Tiles()) = %d, want 25", got)
	}
	if m.Stats().Skipped == 0 {
		t.Error("Stats().Skipped = 0, want > 0")
	}
	for _, h := range m.Tiles() {
		if store.Sprite(h) == nil {
			t.Fatalf("tile %d listed without sprite", h)
		}
	}
}

func TestUndergroundBelowOrigin(t *testing.T) {
	store := scene.NewMemoryStore(0)
	opts := smallOptions()
	opts.Mountains.Count = 0
	opts.Trees = 0
	m := build(t, store, allTextures(), opts, 8)

	bottom := -float64(opts.Underground.Height) * opts.TileSize
	for _, h := range m.Tiles() {
		p := store.Sprite(h).Position
		if p[1] < bottom {
			t.Fatalf("tile at y=%v, below band bottom %v", p[1], bottom)
		}
	}
	if m.Stats().Underground == 0 {
		t.Error("Stats().Underground = 0, want > 0")
	}
}

func TestEarthLayout(t *testing.T) {
	l := newEarthLayout(600)

	tests := []struct {
		x    int
		want int
	}{
		{0, 40},
		{139, 40},
		{140, 60},
		{210, 60},
		{211, 40},
		{250, 80},
		{280, 80},
		{281, 40},
		{599, 40},
	}
	for _, tt := range tests {
		if got := l.columnHeight(tt.x); got != tt.want {
			t.Errorf("columnHeight(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestEarthGapColumnTop(t *testing.T) {
	store := scene.NewMemoryStore(0)
	opts := smallOptions()
	opts.Earth = Band{Width: 600, Height: 20}
	opts.Mountains.Count = 0
	opts.Trees = 0
	m := build(t, store, allTextures(), opts, 4)

	byPos := make(map[mgl64.Vec2]*scene.Sprite)
	for _, h := range m.Tiles() {
		sp := store.Sprite(h)
		if sp.Position[1] >= 0 {
			byPos[mgl64.Vec2{sp.Position[0], sp.Position[1]}] = sp
		}
	}

	tests := []struct {
		x, y int
		want tile.Type
	}{
		{10, 39, tile.Grass},
		{10, 38, tile.Dirt},
		{150, 59, tile.Grass},
		{150, 39, tile.Dirt},
		{265, 79, tile.Grass},
		{265, 39, tile.Dirt},
	}
	for _, tt := range tests {
		sp, ok := byPos[mgl64.Vec2{float64(tt.x) * opts.TileSize, float64(tt.y) * opts.TileSize}]
		if !ok {
			t.Errorf("no tile at column %d row %d", tt.x, tt.y)
			continue
		}
		if sp.Tile != tt.want {
			t.Errorf("column %d row %d = %s, want %s", tt.x, tt.y, sp.Tile, tt.want)
		}
	}
	if _, ok := byPos[mgl64.Vec2{150 * opts.TileSize, 60 * opts.TileSize}]; ok {
		t.Error("tile above the wide gap column top")
	}
}

func TestCaveEdgeCell(t *testing.T) {
	tests := []struct {
		edge gen.EdgeType
		want tile.Cell
	}{
		{gen.EdgeTop, tile.Cell{X: 6, Y: 5}},
		{gen.EdgeInnerBottomRight, tile.Cell{X: 6, Y: 8}},
		{gen.EdgeRight, tile.Cell{X: 0, Y: 0}},
		{gen.EdgeNone, tile.Cell{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		if got := CaveEdgeCell(tt.edge); got != tt.want {
			t.Errorf("CaveEdgeCell(%v) = %v, want %v", tt.edge, got, tt.want)
		}
	}
}
