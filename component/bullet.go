package component

import "github.com/lixenwraith/hydra/core"

// BulletComponent marks a point projectile
// Shooter is a weak reference and may be dead
type BulletComponent struct {
	Shooter core.Entity
}

// BombComponent is a drifting charge that detonates when Fuse runs out
// Owner is a weak reference and may be dead
type BombComponent struct {
	Fuse  float64
	Owner core.Entity
}
