package component

import "github.com/lixenwraith/hydra/vmath"

// PositionComponent is the world-space location of an entity
type PositionComponent struct {
	P vmath.Vec2
}

// VelocityComponent is a signed scalar speed along AngleComponent
// Negative speed moves backwards at the same heading
type VelocityComponent struct {
	Speed float64
}

// AngleComponent is the physical heading in radians
type AngleComponent struct {
	Radians float64
}

// AccelerationComponent is thrust along the heading
type AccelerationComponent struct {
	Accel float64
}

// RotationComponent turns the heading at a fixed rate
type RotationComponent struct {
	Rate float64
}

// SpinComponent rotates the drawn and collision shape without changing heading
type SpinComponent struct {
	Rate   float64
	Offset float64
}

// TargetDirComponent is the desired heading; steering slews Angle toward it
type TargetDirComponent struct {
	Heading float64
}

// MaxVelocityComponent caps forward speed
type MaxVelocityComponent struct {
	Cap float64
}

// BumpComponent is a decaying knockback displacement applied every frame
type BumpComponent struct {
	Dir   float64
	Speed float64
}
