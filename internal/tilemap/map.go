// Package tilemap assembles generated terrain into positioned, textured
// tile entities.
package tilemap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/texture"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

// ErrTexturesMissing is returned by Build when a tile texture is not loaded.
var ErrTexturesMissing = errors.New("tile textures missing")

// Textures looks up the texture of a tile type.
type Textures interface {
	Get(t tile.Type) (*texture.Texture, bool)
}

// Band is the size of a terrain region in tiles.
type Band struct {
	Width  int
	Height int
}

// MountainOptions places the mountain ranges.
type MountainOptions struct {
	Count    int
	Spacing  float64 // world units between range origins
	Width    int
	Height   int
	Lift     float64 // world units above the map origin
	Symmetry gen.SymmetryMode
}

// Options configures a Map.
type Options struct {
	TileSize    float64
	Earth       Band
	Underground Band
	Mountains   MountainOptions
	Trees       int
	// Field drives cave erosion. Nil selects gen.SineField.
	Field gen.Field
}

// DefaultOptions returns the standard world layout.
func DefaultOptions() Options {
	return Options{
		TileSize:    20,
		Earth:       Band{Width: 600, Height: 60},
		Underground: Band{Width: 600, Height: 200},
		Mountains: MountainOptions{
			Count:    10,
			Spacing:  2000,
			Width:    40,
			Height:   50,
			Lift:     780,
			Symmetry: gen.SymmetryAll,
		},
		Trees: 6,
	}
}

// Stats counts emitted tiles per pass.
type Stats struct {
	Earth       int
	Underground int
	Mountains   int
	Trees       int
	// Skipped counts entities whose sprite could not be attached.
	Skipped int
}

// Total returns the number of emitted tiles.
func (s Stats) Total() int {
	return s.Earth + s.Underground + s.Mountains + s.Trees
}

// Map builds the world into a scene store. A Map is used for a single Build.
type Map struct {
	store    scene.Store
	textures Textures
	opts     Options
	rng      gen.Source
	log      *slog.Logger

	sets  map[tile.Type]*texture.TileSet
	tiles []scene.Handle
	stats Stats
}

// New creates a Map drawing all randomness from rng.
func New(store scene.Store, textures Textures, opts Options, rng gen.Source, log *slog.Logger) *Map {
	if opts.Field == nil {
		opts.Field = gen.SineField{}
	}
	return &Map{
		store:    store,
		textures: textures,
		opts:     opts,
		rng:      rng,
		log:      log,
	}
}

// Build generates the earth band at origin, the underground band below
// it, the mountain ranges and the trees, in that order. When any tile
// texture is missing nothing is emitted and ErrTexturesMissing is returned.
func (m *Map) Build(origin mgl64.Vec3) error {
	if err := m.loadTileSets(); err != nil {
		m.log.Error("textures not loaded", "error", err)
		return err
	}

	m.earth(origin)
	m.underground(origin.Sub(mgl64.Vec3{0, float64(m.opts.Underground.Height) * m.opts.TileSize, 0}))
	m.mountains(origin)
	m.trees(origin)

	m.log.Info("tile map built",
		"tiles", m.stats.Total(),
		"earth", m.stats.Earth,
		"underground", m.stats.Underground,
		"mountains", m.stats.Mountains,
		"trees", m.stats.Trees,
		"skipped", m.stats.Skipped,
	)
	return nil
}

// Tiles returns the emitted tile entities in creation order.
func (m *Map) Tiles() []scene.Handle {
	return m.tiles
}

// Stats returns the per-pass tile counts.
func (m *Map) Stats() Stats {
	return m.stats
}

func (m *Map) loadTileSets() error {
	sets := make(map[tile.Type]*texture.TileSet, len(tile.Types))
	var missing []tile.Type
	for _, t := range tile.Types {
		tex, ok := m.textures.Get(t)
		if !ok || tex == nil {
			missing = append(missing, t)
			continue
		}
		sets[t] = texture.NewTileSet(tex, texture.SourceTileSize, texture.SourceTileSize)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrTexturesMissing, missing)
	}
	m.sets = sets
	return nil
}

// emit creates one tile entity and returns false when it had to be skipped.
func (m *Map) emit(t tile.Type, uv texture.UV, pos, size mgl64.Vec3) bool {
	h := m.store.CreateEntity(scene.KindTile)
	sp := m.store.AttachSprite(h)
	if sp == nil {
		m.stats.Skipped++
		return false
	}

	sp.Texture = m.sets[t].Texture()
	sp.UV = uv
	sp.Position = pos
	sp.Size = size
	sp.Tile = t

	m.tiles = append(m.tiles, h)
	return true
}

// emitCell places a terrain tile at grid cell (x, y) of a band whose
// bottom-left corner is base.
func (m *Map) emitCell(t tile.Type, cell tile.Cell, base mgl64.Vec3, x, y int) bool {
	ts := m.opts.TileSize
	pos := mgl64.Vec3{base[0] + float64(x)*ts, base[1] + float64(y)*ts, base[2]}
	size := mgl64.Vec3{ts + 2, ts + 2, 1}
	return m.emit(t, m.sets[t].UV(cell.X, cell.Y, false), pos, size)
}

// emitCaveEdge draws the boundary tile of open cell (x, y), if it has one.
func (m *Map) emitCaveEdge(t tile.Type, g *gen.Grid, base mgl64.Vec3, x, y int) bool {
	e := gen.ClassifyEdge(g, x, y)
	if e == gen.EdgeNone {
		return false
	}
	return m.emitCell(t, CaveEdgeCell(e), base, x, y)
}
