package engine

import "github.com/lixenwraith/hydra/component"

// ComponentStore provides cached pointers to typed component stores
// Pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Kinematics
	Position     *Store[component.PositionComponent]
	Velocity     *Store[component.VelocityComponent]
	Angle        *Store[component.AngleComponent]
	Acceleration *Store[component.AccelerationComponent]
	Rotation     *Store[component.RotationComponent]
	Spin         *Store[component.SpinComponent]
	TargetDir    *Store[component.TargetDirComponent]
	MaxVelocity  *Store[component.MaxVelocityComponent]
	Bump         *Store[component.BumpComponent]

	// Navigation
	PlayerControlled *Store[component.PlayerControlledComponent]
	ScreenWrap       *Store[component.ScreenWrapComponent]
	BounceWalls      *Store[component.BounceWallsComponent]
	ReturnToField    *Store[component.ReturnToFieldComponent]
	StayInBounds     *Store[component.StayInBoundsComponent]
	Flocking         *Store[component.FlockingComponent]
	SeekPlayer       *Store[component.SeekPlayerComponent]
	KillOffScreen    *Store[component.KillOffScreenComponent]

	// Combat
	Health         *Store[component.HealthComponent]
	Collidable     *Store[component.CollidableComponent]
	KilledByPlayer *Store[component.KilledByPlayerComponent]
	Crumble        *Store[component.CrumbleComponent]
	Firing         *Store[component.FiringComponent]
	Bullet         *Store[component.BulletComponent]
	Bomb           *Store[component.BombComponent]
	BlastWave      *Store[component.BlastWaveComponent]

	// Visuals
	Shape        *Store[component.ShapeComponent]
	Color        *Store[component.ColorComponent]
	Size         *Store[component.SizeComponent]
	Particle     *Store[component.ParticleComponent]
	FadeOverlay  *Store[component.FadeOverlayComponent]
	FlashOverlay *Store[component.FlashOverlayComponent]

	// Lifecycle
	Timer *Store[component.TimerComponent]
}

// GetComponentStore populates ComponentStore from world
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Position:     GetStore[component.PositionComponent](w),
		Velocity:     GetStore[component.VelocityComponent](w),
		Angle:        GetStore[component.AngleComponent](w),
		Acceleration: GetStore[component.AccelerationComponent](w),
		Rotation:     GetStore[component.RotationComponent](w),
		Spin:         GetStore[component.SpinComponent](w),
		TargetDir:    GetStore[component.TargetDirComponent](w),
		MaxVelocity:  GetStore[component.MaxVelocityComponent](w),
		Bump:         GetStore[component.BumpComponent](w),

		PlayerControlled: GetStore[component.PlayerControlledComponent](w),
		ScreenWrap:       GetStore[component.ScreenWrapComponent](w),
		BounceWalls:      GetStore[component.BounceWallsComponent](w),
		ReturnToField:    GetStore[component.ReturnToFieldComponent](w),
		StayInBounds:     GetStore[component.StayInBoundsComponent](w),
		Flocking:         GetStore[component.FlockingComponent](w),
		SeekPlayer:       GetStore[component.SeekPlayerComponent](w),
		KillOffScreen:    GetStore[component.KillOffScreenComponent](w),

		Health:         GetStore[component.HealthComponent](w),
		Collidable:     GetStore[component.CollidableComponent](w),
		KilledByPlayer: GetStore[component.KilledByPlayerComponent](w),
		Crumble:        GetStore[component.CrumbleComponent](w),
		Firing:         GetStore[component.FiringComponent](w),
		Bullet:         GetStore[component.BulletComponent](w),
		Bomb:           GetStore[component.BombComponent](w),
		BlastWave:      GetStore[component.BlastWaveComponent](w),

		Shape:        GetStore[component.ShapeComponent](w),
		Color:        GetStore[component.ColorComponent](w),
		Size:         GetStore[component.SizeComponent](w),
		Particle:     GetStore[component.ParticleComponent](w),
		FadeOverlay:  GetStore[component.FadeOverlayComponent](w),
		FlashOverlay: GetStore[component.FlashOverlayComponent](w),

		Timer: GetStore[component.TimerComponent](w),
	}
}

// initComponentStores registers every store up front so destruction order is fixed
func initComponentStores(w *World) {
	w.Components = GetComponentStore(w)
}
