package physics

import (
	"math"

	"github.com/lixenwraith/hydra/vmath"
)

// Accelerate applies thrust against quadratic drag along the current heading
// speed += (accel - drag*speed*|speed|) * dt
// Speed is signed: negative speed is reverse motion at the same heading
func Accelerate(speed, accel, drag, dt float64) float64 {
	friction := drag * speed * speed * vmath.Sign(speed)
	return speed + (accel-friction)*dt
}

// Damp is the simple thrust model without a speed feedback term
// speed = (speed + accel*dt) * factor
func Damp(speed, accel, factor, dt float64) float64 {
	return (speed + accel*dt) * factor
}

// CapSpeed limits speed to maxSpeed; reverse speed is never clamped
func CapSpeed(speed, maxSpeed float64) float64 {
	return math.Min(speed, maxSpeed)
}

// Velocity returns the world-space velocity of a polar (speed, angle) pair
func Velocity(speed, angle float64) vmath.Vec2 {
	return vmath.Polar(speed, angle)
}

// FromVelocity decomposes a world-space velocity back into non-negative speed and heading
func FromVelocity(v vmath.Vec2) (speed, angle float64) {
	return v.Mag(), v.Angle()
}
