package texture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/tileworld/internal/tile"
)

// DefaultPaths maps each tile type to its image below the asset root.
var DefaultPaths = map[tile.Type]string{
	tile.Grass:      "Tiles/grass.png",
	tile.Dirt:       "Tiles/dirt.png",
	tile.Stone:      "Tiles/stone.png",
	tile.Gold:       "Tiles/gold.png",
	tile.Silver:     "Tiles/silver.png",
	tile.TreeBranch: "Tiles/Tree branch.png",
	tile.TreeNest:   "Tiles/Tree_Tops_0.png",
}

const maxParallelLoads = 4

// Manager owns the per-tile-type textures.
type Manager struct {
	loader Loader
	paths  map[tile.Type]string
	log    *slog.Logger

	mu       sync.RWMutex
	textures map[tile.Type]*Texture
}

// NewManager creates a Manager loading DefaultPaths through loader.
func NewManager(loader Loader, log *slog.Logger) *Manager {
	return &Manager{
		loader:   loader,
		paths:    DefaultPaths,
		log:      log,
		textures: make(map[tile.Type]*Texture),
	}
}

// LoadAll loads every tile texture concurrently and waits for all of them.
// A texture that fails is logged and left missing; the returned error
// wraps ErrNotLoaded and names how many failed.
func (m *Manager) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	var (
		failMu sync.Mutex
		failed []tile.Type
	)

	for _, t := range tile.Types {
		path, ok := m.paths[t]
		if !ok {
			continue
		}
		g.Go(func() error {
			tex, err := m.loader.Load(ctx, fmt.Sprintf("tile_%d", t), path)
			if err != nil {
				m.log.Error("load texture", "tile", t, "path", path, "error", err)
				failMu.Lock()
				failed = append(failed, t)
				failMu.Unlock()
				return nil
			}

			m.mu.Lock()
			m.textures[t] = tex
			m.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d failed", ErrNotLoaded, len(failed), len(m.paths))
	}
	m.log.Debug("textures loaded", "count", len(m.paths))
	return nil
}

// Get returns the texture of t.
func (m *Manager) Get(t tile.Type) (*Texture, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tex, ok := m.textures[t]
	return tex, ok
}

// Missing lists the tile types in tile.Types that have no texture.
func (m *Manager) Missing() []tile.Type {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []tile.Type
	for _, t := range tile.Types {
		if _, ok := m.textures[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
