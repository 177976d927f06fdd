package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/tileworld/internal/tile"
)

// TileSize is the collision box of every tile. It is slightly larger than
// the 20 unit placement grid so neighbouring tiles overlap.
var TileSize = mgl64.Vec3{22, 22, 1}

const groundProbeInset = 2.0

// AABB is an axis-aligned box in the XY plane.
type AABB struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoxOf returns the box with its minimum corner at pos.
func BoxOf(pos, size mgl64.Vec3) AABB {
	return AABB{
		MinX: pos[0],
		MaxX: pos[0] + size[0],
		MinY: pos[1],
		MaxY: pos[1] + size[1],
	}
}

// Overlaps reports strict overlap; touching edges do not count.
func (a AABB) Overlaps(b AABB) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX &&
		a.MinY < b.MaxY && a.MaxY > b.MinY
}

// Collider is a static tile the body can hit.
type Collider struct {
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Tile     tile.Type
}

// Resolve pushes a body at pos out of c along the axis of least
// penetration and returns the corrected position.
//
// Each direction only applies while the body moves into it: a ceiling hit
// needs vy >= 0, a landing vy <= 0, a left wall vx >= 0, a right wall
// vx <= 0. Landing marks the body grounded.
func (b *Body) Resolve(pos, size mgl64.Vec3, c Collider) mgl64.Vec3 {
	if !tile.Collides(c.Tile) {
		return pos
	}

	e := BoxOf(pos, size)
	t := BoxOf(c.Position, c.Size)
	if !e.Overlaps(t) {
		return pos
	}

	left := e.MaxX - t.MinX + CollisionEpsilon
	right := t.MaxX - e.MinX + CollisionEpsilon
	top := e.MaxY - t.MinY + CollisionEpsilon
	bottom := t.MaxY - e.MinY + CollisionEpsilon
	least := min(left, right, top, bottom)

	out := pos
	switch {
	case least == top && b.Velocity[1] >= 0:
		out[1] = t.MinY - size[1] - CollisionEpsilon
		b.Velocity[1] = min(b.Velocity[1], 0)
	case least == bottom && b.Velocity[1] <= 0:
		out[1] = t.MaxY + CollisionEpsilon
		b.Velocity[1] = max(b.Velocity[1], 0)
		b.Grounded = true
	case least == left && b.Velocity[0] >= 0:
		out[0] = t.MinX - size[0] - CollisionEpsilon
		b.Velocity[0] = min(b.Velocity[0], 0)
	case least == right && b.Velocity[0] <= 0:
		out[0] = t.MaxX + CollisionEpsilon
		b.Velocity[0] = max(b.Velocity[0], 0)
	}
	return out
}

// GroundBelow reports whether any collider touches a thin probe of height
// distance under the body's feet. The probe is inset 2 units on each side
// so a body brushing a wall does not count as standing on it.
func GroundBelow(pos, size mgl64.Vec3, colliders []Collider, distance float64) bool {
	probe := AABB{
		MinX: pos[0] + groundProbeInset,
		MaxX: pos[0] + size[0] - groundProbeInset,
		MinY: pos[1] - distance,
		MaxY: pos[1],
	}
	for _, c := range colliders {
		if !tile.Collides(c.Tile) {
			continue
		}
		if probe.Overlaps(BoxOf(c.Position, c.Size)) {
			return true
		}
	}
	return false
}
