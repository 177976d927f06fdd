// Package game wires textures, world generation and the player into a
// headless simulation.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/assets"
	"github.com/OCharnyshevich/tileworld/internal/config"
	"github.com/OCharnyshevich/tileworld/internal/gen"
	"github.com/OCharnyshevich/tileworld/internal/physics"
	"github.com/OCharnyshevich/tileworld/internal/player"
	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/texture"
	"github.com/OCharnyshevich/tileworld/internal/tilemap"
)

// ErrNotBuilt is returned by Run before a successful Build.
var ErrNotBuilt = errors.New("world not built")

type tickerFactory func(time.Duration) (<-chan time.Time, func())

type timeSource func() time.Time

func defaultTickerFactory() tickerFactory {
	return func(d time.Duration) (<-chan time.Time, func()) {
		ticker := time.NewTicker(d)
		return ticker.C, ticker.Stop
	}
}

// Game owns one generated world and the player moving through it.
type Game struct {
	cfg  *config.Config
	log  *slog.Logger
	seed int64

	store    *scene.MemoryStore
	textures *texture.Manager
	world    *tilemap.Map

	player    *player.Player
	colliders []physics.Collider
	ticks     int

	fetch     func(ctx context.Context, src, dst string) error
	newTicker tickerFactory
	now       timeSource
}

// New creates a Game. A nil loader reads textures from cfg.Assets.Dir.
// A zero seed is replaced with one taken from the clock.
func New(cfg *config.Config, log *slog.Logger, loader texture.Loader) *Game {
	if loader == nil {
		loader = texture.FileLoader{Root: cfg.Assets.Dir}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.Info("seed derived from clock", "seed", seed)
	}

	return &Game{
		cfg:       cfg,
		log:       log,
		seed:      seed,
		store:     scene.NewMemoryStore(cfg.SpriteLimit),
		textures:  texture.NewManager(loader, log),
		fetch:     assets.Fetch,
		newTicker: defaultTickerFactory(),
		now:       time.Now,
	}
}

// Build fetches assets when configured, loads every texture, generates the
// world and spawns the player. Texture failures abort before any tile is
// emitted.
func (g *Game) Build(ctx context.Context) error {
	start := g.now()

	if src := g.cfg.Assets.Source; src != "" && !assets.Present(g.cfg.Assets.Dir) {
		g.log.Info("fetching assets", "source", src, "dir", g.cfg.Assets.Dir)
		if err := g.fetch(ctx, src, g.cfg.Assets.Dir); err != nil {
			return fmt.Errorf("fetch assets: %w", err)
		}
	}

	if err := g.textures.LoadAll(ctx); err != nil {
		g.log.Error("textures not loaded", "missing", g.textures.Missing())
		return fmt.Errorf("%w: %w", tilemap.ErrTexturesMissing, err)
	}

	opts, err := g.mapOptions()
	if err != nil {
		return err
	}

	origin := mgl64.Vec3(g.cfg.Origin)
	world := tilemap.New(g.store, g.textures, opts, gen.NewSource(g.seed), g.log)
	if err := world.Build(origin); err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	g.world = world

	g.player = player.New(g.store, player.DefaultSpawn)
	g.colliders = player.Colliders(g.store, world.Tiles())

	g.log.Info("world built",
		"seed", g.seed,
		"tiles", len(world.Tiles()),
		"colliders", len(g.colliders),
		"elapsed", g.now().Sub(start),
	)
	return nil
}

func (g *Game) mapOptions() (tilemap.Options, error) {
	field, err := gen.NewField(g.cfg.Noise, g.seed)
	if err != nil {
		return tilemap.Options{}, fmt.Errorf("noise field: %w", err)
	}
	symmetry, err := gen.ParseSymmetryMode(g.cfg.Mountains.Symmetry)
	if err != nil {
		return tilemap.Options{}, fmt.Errorf("mountain symmetry: %w", err)
	}

	m := g.cfg.Mountains
	return tilemap.Options{
		TileSize:    g.cfg.TileSize,
		Earth:       tilemap.Band{Width: g.cfg.Earth.Width, Height: g.cfg.Earth.Height},
		Underground: tilemap.Band{Width: g.cfg.Underground.Width, Height: g.cfg.Underground.Height},
		Mountains: tilemap.MountainOptions{
			Count:    m.Count,
			Spacing:  m.Spacing,
			Width:    m.Width,
			Height:   m.Height,
			Lift:     m.Lift,
			Symmetry: symmetry,
		},
		Trees: g.cfg.Trees,
		Field: field,
	}, nil
}

// advancer is implemented by inputs that change from one step to the next.
type advancer interface {
	Advance()
}

// Run steps the simulation on every tick until ctx is cancelled or the
// configured duration of simulated time has passed.
func (g *Game) Run(ctx context.Context, in player.Input) error {
	if g.player == nil {
		return ErrNotBuilt
	}

	tick := g.cfg.Sim.Tick
	tickerC, stop := g.newTicker(tick)
	defer stop()

	var simulated time.Duration
	last := g.now()
	for {
		select {
		case <-ctx.Done():
			g.finish(simulated)
			return nil
		case now := <-tickerC:
			delta := now.Sub(last)
			if delta <= 0 {
				delta = tick
			} else if delta > 10*tick {
				delta = tick
			}
			last = now

			g.Step(delta.Seconds(), in)
			if a, ok := in.(advancer); ok {
				a.Advance()
			}

			simulated += delta
			if d := g.cfg.Sim.Duration; d > 0 && simulated >= d {
				g.finish(simulated)
				return nil
			}
		}
	}
}

// Step advances the player by dt seconds against the world's tiles.
func (g *Game) Step(dt float64, in player.Input) {
	g.player.Update(dt, in, g.colliders)
	g.ticks++
}

func (g *Game) finish(simulated time.Duration) {
	pos := g.player.Position()
	g.log.Info("simulation stopped",
		"ticks", g.ticks,
		"simulated", simulated,
		"x", pos[0],
		"y", pos[1],
		"grounded", g.player.Grounded(),
		"on_ground", physics.GroundBelow(pos, g.player.Size, g.colliders, g.player.Body.GroundCheckDistance),
	)
}

// Seed returns the seed the world was generated from.
func (g *Game) Seed() int64 { return g.seed }

// Store returns the entity store holding the world.
func (g *Game) Store() scene.Store { return g.store }

// Tiles returns the emitted tile entities, or nil before Build.
func (g *Game) Tiles() []scene.Handle {
	if g.world == nil {
		return nil
	}
	return g.world.Tiles()
}

// Player returns the player, or nil before Build.
func (g *Game) Player() *player.Player { return g.player }

// Ticks returns the number of steps simulated so far.
func (g *Game) Ticks() int { return g.ticks }
