package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
	"github.com/lixenwraith/hydra/status"
	"github.com/lixenwraith/hydra/vmath"
)

// CollisionSystem resolves ship-vs-shape contact and bullet hits
// Detection is discrete; fast bullets may tunnel through thin targets
type CollisionSystem struct {
	engine.SystemBase

	statHits *atomic.Int64
}

type shapedEntity struct {
	entity core.Entity
	shape  vmath.Polygon
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statHits = s.Resource.Status.Counters.Get(status.CollisionHits)
	return s
}

func (s *CollisionSystem) Init()         {}
func (s *CollisionSystem) Name() string  { return "collision" }
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

// Update runs the shape pass then the bullet pass
func (s *CollisionSystem) Update() {
	if s.Halted() {
		return
	}
	s.shapes()
	s.bullets()
}

// shapes damages every player/collidable pair whose world polygons cross
// Each pair applies independently, so overlapping several bodies costs several health
func (s *CollisionSystem) shapes() {
	c := s.Component
	audio := s.Resource.Audio.Player

	objects := s.collect(s.World.Query().
		With(c.PlayerControlled).
		With(c.Position).
		With(c.Angle).
		With(c.Shape).
		With(c.Health).
		Execute())
	targets := s.collect(s.World.Query().
		With(c.Collidable).
		With(c.Position).
		With(c.Angle).
		With(c.Shape).
		With(c.Health).
		Execute())

	for _, o := range objects {
		for _, t := range targets {
			if o.entity == t.entity || !t.shape.Intersect(o.shape) {
				continue
			}

			c.Health.MustGet(o.entity).Value--
			c.Health.MustGet(t.entity).Value--
			s.Resource.Game.BreakCombo()

			op := c.Position.MustGet(o.entity).P
			tp := c.Position.MustGet(t.entity).P
			dirO, dirT := physics.KnockbackDirs(op, tp)
			c.Bump.Add(o.entity, component.BumpComponent{Dir: dirO, Speed: parameter.BumpSpeed})
			c.Bump.Add(t.entity, component.BumpComponent{Dir: dirT, Speed: parameter.BumpSpeed})

			SpawnFlash(s.World)
			audio.PlayRandomSample(core.SoundHurt, core.SoundHurtVariants)
			s.statHits.Add(1)
		}
	}
}

// bullets tests every bullet point against target shapes
// The first containing target in iteration order takes the hit
func (s *CollisionSystem) bullets() {
	c := s.Component
	audio := s.Resource.Audio.Player

	targets := s.collect(s.World.Query().
		With(c.Collidable).
		With(c.Position).
		With(c.Angle).
		With(c.Shape).
		With(c.Health).
		Execute())
	for _, p := range s.World.Query().
		With(c.PlayerControlled).
		With(c.Position).
		With(c.Angle).
		With(c.Shape).
		With(c.Health).
		Execute() {
		if c.Collidable.Has(p) {
			continue
		}
		if shape, ok := worldShape(&c, p); ok {
			targets = append(targets, shapedEntity{entity: p, shape: shape})
		}
	}

	for _, b := range s.World.Query().With(c.Bullet).With(c.Position).Execute() {
		shooter := c.Bullet.MustGet(b).Shooter
		p := c.Position.MustGet(b).P

		for _, t := range targets {
			if t.entity == shooter || !t.shape.Contains(p) {
				continue
			}

			health := c.Health.MustGet(t.entity)
			health.Value--
			if health.Value == 0 && s.World.Alive(shooter) && c.PlayerControlled.Has(shooter) {
				c.KilledByPlayer.Add(t.entity, component.KilledByPlayerComponent{})
			}
			if c.PlayerControlled.Has(t.entity) {
				s.Resource.Game.BreakCombo()
				SpawnFlash(s.World)
			}

			audio.PlayRandomSample(core.SoundHit, core.SoundHitVariants)
			s.statHits.Add(1)
			s.World.DestroyEntity(b)
			break
		}
	}
}

func (s *CollisionSystem) collect(entities []core.Entity) []shapedEntity {
	out := make([]shapedEntity, 0, len(entities))
	for _, e := range entities {
		if shape, ok := worldShape(&s.Component, e); ok {
			out = append(out, shapedEntity{entity: e, shape: shape})
		}
	}
	return out
}
