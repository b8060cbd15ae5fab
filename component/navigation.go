package component

// PlayerControlledComponent marks the entity driven by input
type PlayerControlledComponent struct{}

// ScreenWrapComponent wraps position toroidally at the field edges
type ScreenWrapComponent struct{}

// BounceWallsComponent reflects velocity at the field edges
type BounceWallsComponent struct{}

// ReturnToFieldComponent steers back toward the field center when outside
type ReturnToFieldComponent struct{}

// StayInBoundsComponent reflects velocity inside a buffered field
// Takes precedence over BounceWallsComponent
type StayInBoundsComponent struct{}

// FlockingComponent enables boid steering among flock mates
type FlockingComponent struct{}

// SeekPlayerComponent steers toward a player within Range
type SeekPlayerComponent struct {
	Range float64
}

// KillOffScreenComponent destroys the entity once it leaves the field
type KillOffScreenComponent struct{}
