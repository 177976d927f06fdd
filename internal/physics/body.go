// Package physics moves bodies under gravity and resolves their collisions
// against axis-aligned tiles.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	Gravity          = -1200.0
	TerminalVelocity = -1500.0
	GroundFriction   = 0.85
	AirResistance    = 0.98
	VelocityDeadband = 5.0
	CollisionEpsilon = 0.1
)

// DefaultMaxVelocity caps horizontal and vertical speed.
var DefaultMaxVelocity = mgl64.Vec3{600, 1500, 0}

// Body is the dynamic state of a moving entity.
type Body struct {
	Velocity            mgl64.Vec3
	Acceleration        mgl64.Vec3
	Grounded            bool
	Mass                float64
	Friction            float64
	MaxVelocity         mgl64.Vec3
	CanCollide          bool
	GroundCheckDistance float64
}

// NewBody returns an airborne body at rest.
func NewBody(mass, friction float64) *Body {
	return &Body{
		Mass:                mass,
		Friction:            friction,
		MaxVelocity:         DefaultMaxVelocity,
		CanCollide:          true,
		GroundCheckDistance: 5,
	}
}

// BeginStep clears the grounded flag; a collision this step sets it again.
func (b *Body) BeginStep() {
	b.Grounded = false
}

// ApplyGravity accelerates an airborne body downward, capped at terminal velocity.
func (b *Body) ApplyGravity(dt float64) {
	if b.Grounded {
		return
	}
	b.Velocity[1] += Gravity * dt
	if b.Velocity[1] < TerminalVelocity {
		b.Velocity[1] = TerminalVelocity
	}
}

// ApplyFriction damps horizontal velocity on the ground and both axes in
// the air, then zeroes a horizontal speed below the deadband.
func (b *Body) ApplyFriction() {
	if b.Grounded {
		b.Velocity[0] *= GroundFriction
	} else {
		b.Velocity[0] *= AirResistance
		b.Velocity[1] *= AirResistance
	}
	if math.Abs(b.Velocity[0]) < VelocityDeadband {
		b.Velocity[0] = 0
	}
}

// Integrate clamps velocity to MaxVelocity and returns pos advanced by dt.
// Z is left untouched.
func (b *Body) Integrate(pos mgl64.Vec3, dt float64) mgl64.Vec3 {
	b.Velocity[0] = mgl64.Clamp(b.Velocity[0], -b.MaxVelocity[0], b.MaxVelocity[0])
	b.Velocity[1] = mgl64.Clamp(b.Velocity[1], -b.MaxVelocity[1], b.MaxVelocity[1])

	return mgl64.Vec3{
		pos[0] + b.Velocity[0]*dt,
		pos[1] + b.Velocity[1]*dt,
		pos[2],
	}
}

// Step runs gravity, friction and integration, then resolves the result
// against colliders in order. It does not clear Grounded; call BeginStep
// first.
func (b *Body) Step(pos, size mgl64.Vec3, dt float64, colliders []Collider) mgl64.Vec3 {
	b.ApplyGravity(dt)
	b.ApplyFriction()
	pos = b.Integrate(pos, dt)

	if !b.CanCollide {
		return pos
	}
	for _, c := range colliders {
		pos = b.Resolve(pos, size, c)
	}
	return pos
}
