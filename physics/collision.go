package physics

import "github.com/lixenwraith/hydra/vmath"

// KnockbackDirs returns the push-apart headings for two bodies: a is pushed away from b and b away from a
func KnockbackDirs(a, b vmath.Vec2) (dirA, dirB float64) {
	return a.Sub(b).Angle(), b.Sub(a).Angle()
}

// DecayBump applies one frame of knockback and returns the displacement and the decayed speed
// The displacement is per frame, not scaled by dt; decay is per second
// alive is false once the speed reaches zero
func DecayBump(dir, speed, decay, dt float64) (offset vmath.Vec2, next float64, alive bool) {
	offset = vmath.Polar(speed, dir)
	next = speed - decay*dt
	return offset, next, next > 0
}
