package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/physics"
	"github.com/OCharnyshevich/tileworld/internal/scene"
	"github.com/OCharnyshevich/tileworld/internal/tile"
)

type keys map[Key]bool

func (k keys) IsKeyPressed(key Key) bool { return k[key] }

const dt = 1.0 / 60

func floor() []physics.Collider {
	var cs []physics.Collider
	for x := -100.0; x <= 400; x += 20 {
		cs = append(cs, physics.Collider{Position: mgl64.Vec3{x, 0, 0}, Size: physics.TileSize, Tile: tile.Dirt})
	}
	return cs
}

func settled(t *testing.T) (*Player, []physics.Collider) {
	t.Helper()
	p := New(scene.NewMemoryStore(0), mgl64.Vec3{0, 30, -5})
	tiles := floor()
	for range 60 {
		p.Update(dt, keys{}, tiles)
	}
	if !p.Grounded() {
		t.Fatal("player did not land on the floor")
	}
	return p, tiles
}

func TestNewPlayerSprite(t *testing.T) {
	store := scene.NewMemoryStore(0)
	p := New(store, DefaultSpawn)

	sp := store.Sprite(p.Handle)
	if sp == nil {
		t.Fatal("player has no sprite")
	}
	if sp.Position != DefaultSpawn || sp.Size != DefaultSize {
		t.Errorf("sprite at %v size %v, want %v size %v", sp.Position, sp.Size, DefaultSpawn, DefaultSize)
	}
	if k, _ := store.Kind(p.Handle); k != scene.KindPlayer {
		t.Errorf("kind = %d, want player", k)
	}
}

func TestNewPlayerWithoutSprite(t *testing.T) {
	store := scene.NewMemoryStore(1)
	store.AttachSprite(store.CreateEntity(scene.KindTile))

	p := New(store, DefaultSpawn)
	p.Update(dt, keys{KeyRight: true}, nil)

	if p.Position()[0] <= 0 {
		t.Errorf("x = %f, want the player to move without a sprite", p.Position()[0])
	}
}

func TestWalkRight(t *testing.T) {
	p, tiles := settled(t)
	start := p.Position()

	for range 30 {
		p.Update(dt, keys{KeyRight: true}, tiles)
	}

	end := p.Position()
	if end[0] <= start[0] {
		t.Errorf("x = %f, want > %f", end[0], start[0])
	}
	if !p.Grounded() {
		t.Error("player left the floor while walking")
	}
}

func TestJumpFromGround(t *testing.T) {
	p, tiles := settled(t)
	start := p.Position()

	p.Update(dt, keys{KeyJump: true}, tiles)

	if p.Position()[1] <= start[1] {
		t.Errorf("y = %f, want above %f after jump", p.Position()[1], start[1])
	}
	if p.Grounded() {
		t.Error("player still grounded after jumping")
	}
}

func TestNoJumpInAir(t *testing.T) {
	p := New(scene.NewMemoryStore(0), mgl64.Vec3{0, 500, -5})
	p.Update(dt, keys{}, nil)
	p.Update(dt, keys{KeyJump: true}, nil)

	if p.Body.Velocity[1] >= 0 {
		t.Errorf("vy = %f, want falling", p.Body.Velocity[1])
	}
}

func TestIdleDeceleration(t *testing.T) {
	p := New(scene.NewMemoryStore(0), DefaultSpawn)

	p.Body.Velocity[0] = 100
	p.handleInput(keys{})
	if p.Body.Velocity[0] != 85 {
		t.Errorf("vx = %f, want 85", p.Body.Velocity[0])
	}

	p.Body.Velocity[0] = 9
	p.handleInput(keys{})
	if p.Body.Velocity[0] != 0 {
		t.Errorf("vx = %f, want 0 below the snap threshold", p.Body.Velocity[0])
	}
}

func TestFacing(t *testing.T) {
	store := scene.NewMemoryStore(0)
	p := New(store, DefaultSpawn)

	p.handleInput(keys{KeyRight: true})
	if !store.Sprite(p.Handle).FlipX {
		t.Error("FlipX = false facing right")
	}
	p.handleInput(keys{KeyLeft: true})
	if store.Sprite(p.Handle).FlipX {
		t.Error("FlipX = true facing left")
	}
}

func TestColliders(t *testing.T) {
	store := scene.NewMemoryStore(0)

	a := store.CreateEntity(scene.KindTile)
	sp := store.AttachSprite(a)
	sp.Position = mgl64.Vec3{20, 40, 0}
	sp.Tile = tile.Stone

	b := store.CreateEntity(scene.KindTile) // no sprite

	got := Colliders(store, []scene.Handle{a, b})
	if len(got) != 1 {
		t.Fatalf("len(Colliders) = %d, want 1", len(got))
	}
	if got[0].Tile != tile.Stone || got[0].Position != sp.Position || got[0].Size != physics.TileSize {
		t.Errorf("collider = %+v", got[0])
	}
}
