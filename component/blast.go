package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/hydra/core"
)

// BlastWaveComponent is an expanding ring that damages everything inside its radius
// Damage applies only while expanding; the spent ring then fades out
type BlastWaveComponent struct {
	Radius    float64
	MaxRadius float64
	Alpha     float64
	Owner     core.Entity

	// OncePerTarget limits damage to one hit per entity for this blast
	OncePerTarget bool

	hit    map[core.Entity]struct{}
	radius *gween.Tween
	fade   *gween.Tween
	done   bool
}

// NewBlastWave creates a blast that grows to maxRadius over expand seconds then fades over fade seconds
func NewBlastWave(owner core.Entity, maxRadius, expand, fade float64, oncePerTarget bool) BlastWaveComponent {
	return BlastWaveComponent{
		MaxRadius:     maxRadius,
		Alpha:         1,
		Owner:         owner,
		OncePerTarget: oncePerTarget,
		hit:           make(map[core.Entity]struct{}),
		radius:        gween.New(0, float32(maxRadius), float32(expand), ease.OutCubic),
		fade:          gween.New(1, 0, float32(fade), ease.InQuad),
	}
}

// Expanding reports whether the ring is still growing and dealing damage
func (b *BlastWaveComponent) Expanding() bool {
	return b.radius != nil && b.Radius < b.MaxRadius
}

// Advance steps the tweens by dt; returns true once the blast has fully faded
func (b *BlastWaveComponent) Advance(dt float64) bool {
	if b.done || b.radius == nil {
		return true
	}
	if b.Expanding() {
		r, finished := b.radius.Update(float32(dt))
		b.Radius = float64(r)
		if finished {
			b.Radius = b.MaxRadius
		}
		return false
	}
	a, finished := b.fade.Update(float32(dt))
	b.Alpha = float64(a)
	if finished {
		b.Alpha = 0
		b.done = true
	}
	return b.done
}

// MarkHit records a damaged target; returns false when OncePerTarget already saw it
func (b *BlastWaveComponent) MarkHit(e core.Entity) bool {
	if !b.OncePerTarget {
		return true
	}
	if _, ok := b.hit[e]; ok {
		return false
	}
	b.hit[e] = struct{}{}
	return true
}
