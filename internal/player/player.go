package player

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/physics"
	"github.com/OCharnyshevich/tileworld/internal/scene"
)

// Key is a control the player reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

// Input reports which controls are held this step.
type Input interface {
	IsKeyPressed(k Key) bool
}

var (
	// DefaultSpawn is where a new player appears.
	DefaultSpawn = mgl64.Vec3{0, 200, -5}
	// DefaultSize is the player's collision and sprite size.
	DefaultSize = mgl64.Vec3{50, 50, 1}
)

const (
	moveSpeed       = 300.0
	jumpForce       = 800.0
	idleDecel       = 0.85
	idleSnap        = 10.0
	defaultMass     = 1.0
	defaultFriction = 0.8
)

// Player is the controlled character.
type Player struct {
	mu     sync.RWMutex
	Handle scene.Handle
	Size   mgl64.Vec3
	Body   *physics.Body

	pos         mgl64.Vec3
	wasGrounded bool
	sprite      *scene.Sprite
}

// New registers a player entity in store at spawn. The player still
// simulates when the store cannot give it a sprite.
func New(store scene.Store, spawn mgl64.Vec3) *Player {
	h := store.CreateEntity(scene.KindPlayer)
	p := &Player{
		Handle: h,
		Size:   DefaultSize,
		Body:   physics.NewBody(defaultMass, defaultFriction),
		pos:    spawn,
		sprite: store.AttachSprite(h),
	}
	if p.sprite != nil {
		p.sprite.Size = p.Size
		p.sprite.Position = spawn
	}
	return p
}

// Position returns the player's current position.
func (p *Player) Position() mgl64.Vec3 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos
}

// Grounded reports whether the last step ended standing on a tile.
func (p *Player) Grounded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Body.Grounded
}

// Update advances the player by dt seconds: read input, apply physics, and
// resolve collisions against tiles in order.
func (p *Player) Update(dt float64, in Input, tiles []physics.Collider) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.wasGrounded = p.Body.Grounded
	p.Body.BeginStep()

	p.handleInput(in)

	p.pos = p.Body.Step(p.pos, p.Size, dt, tiles)
	if p.sprite != nil {
		p.sprite.Position = p.pos
	}
}

func (p *Player) handleInput(in Input) {
	v := &p.Body.Velocity

	switch {
	case in.IsKeyPressed(KeyLeft):
		v[0] = -moveSpeed
		p.face(false)
	case in.IsKeyPressed(KeyRight):
		v[0] = moveSpeed
		p.face(true)
	default:
		v[0] *= idleDecel
		if math.Abs(v[0]) < idleSnap {
			v[0] = 0
		}
	}

	// Grounded was cleared for this step, so the previous step's result
	// decides whether a jump is allowed.
	if in.IsKeyPressed(KeyJump) && (p.Body.Grounded || p.wasGrounded) {
		v[1] = jumpForce
		p.Body.Grounded = false
	}
}

func (p *Player) face(right bool) {
	if p.sprite != nil {
		p.sprite.FlipX = right
	}
}

// Colliders snapshots the tiles behind handles. Entities without a sprite
// are skipped. Every tile uses the shared physics.TileSize box and the
// tile type stored on its sprite.
func Colliders(store scene.Store, handles []scene.Handle) []physics.Collider {
	out := make([]physics.Collider, 0, len(handles))
	for _, h := range handles {
		sp := store.Sprite(h)
		if sp == nil {
			continue
		}
		out = append(out, physics.Collider{
			Position: sp.Position,
			Size:     physics.TileSize,
			Tile:     sp.Tile,
		})
	}
	return out
}
