package system

import (
	"math"

	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/vmath"
)

// ShipShape returns the arrowhead used by the player and drones, pointing along +X
func ShipShape(size float64) vmath.Polygon {
	return vmath.NewPolygon(
		vmath.Polar(size, 0),
		vmath.Polar(size/3, math.Pi/2),
		vmath.Polar(size/3, -math.Pi/2),
	)
}

// SaucerShape returns a flattened hexagon
func SaucerShape(size float64) vmath.Polygon {
	return vmath.NewPolygon(
		vmath.Vec2{X: size, Y: 0},
		vmath.Vec2{X: size / 2, Y: size / 3},
		vmath.Vec2{X: -size / 2, Y: size / 3},
		vmath.Vec2{X: -size, Y: 0},
		vmath.Vec2{X: -size / 2, Y: -size / 3},
		vmath.Vec2{X: size / 2, Y: -size / 3},
	)
}

// AsteroidShape builds a jittered polygon of 5 to 11 sides around radius size
func AsteroidShape(gs *engine.GameState, size float64) vmath.Polygon {
	sides := parameter.AsteroidMinSides + gs.Rand.IntN(parameter.AsteroidMaxSides-parameter.AsteroidMinSides+1)
	jitter := size / 4

	points := make([]vmath.Vec2, sides)
	for i := range points {
		w := vmath.Vec2{X: gs.RandRange(-jitter, jitter), Y: gs.RandRange(-jitter, jitter)}
		points[i] = vmath.Polar(size, 2*math.Pi*float64(i)/float64(sides)).Add(w)
	}
	return vmath.NewPolygon(points...)
}

// SpawnPlayer creates the player ship at the field center
func SpawnPlayer(w *engine.World) core.Entity {
	c := w.Components
	center := w.Resource.Config.Center()

	e := w.CreateEntity()
	c.Color.Add(e, component.ColorComponent{Color: core.ColorPlayer})
	c.Shape.Add(e, component.ShapeComponent{Polygon: ShipShape(parameter.PlayerSize)})
	c.Position.Add(e, component.PositionComponent{P: center})
	c.PlayerControlled.Add(e, component.PlayerControlledComponent{})
	c.ScreenWrap.Add(e, component.ScreenWrapComponent{})
	c.Acceleration.Add(e, component.AccelerationComponent{})
	c.Velocity.Add(e, component.VelocityComponent{})
	c.Angle.Add(e, component.AngleComponent{})
	c.Rotation.Add(e, component.RotationComponent{})
	c.Health.Add(e, component.HealthComponent{Value: parameter.PlayerHealth})

	w.Resource.Game.Player = e
	return e
}

// SpawnDrones creates a flock of count drones sharing one spawn point and hue at distance from the field center
func SpawnDrones(w *engine.World, count int, distance float64) []core.Entity {
	c := w.Components
	gs := w.Resource.Game

	p := w.Resource.Config.Center().Add(vmath.Polar(distance, gs.RandAngle()))
	color := core.HSL(gs.RandRange(parameter.DroneHueMin, parameter.DroneHueMax), 1, 0.5)

	drones := make([]core.Entity, 0, count)
	for i := 0; i < count; i++ {
		e := w.CreateEntity()
		c.Health.Add(e, component.HealthComponent{Value: parameter.DroneHealth})
		c.Color.Add(e, component.ColorComponent{Color: color})
		c.Shape.Add(e, component.ShapeComponent{Polygon: ShipShape(parameter.DroneSize)})
		c.Position.Add(e, component.PositionComponent{P: p})
		c.Collidable.Add(e, component.CollidableComponent{})
		c.Velocity.Add(e, component.VelocityComponent{Speed: parameter.DroneSpeed})
		c.Angle.Add(e, component.AngleComponent{Radians: gs.RandAngle()})
		c.MaxVelocity.Add(e, component.MaxVelocityComponent{Cap: parameter.DroneMaxVelocity})
		c.StayInBounds.Add(e, component.StayInBoundsComponent{})
		c.Flocking.Add(e, component.FlockingComponent{})
		drones = append(drones, e)
	}
	return drones
}

// SpawnSaucer creates a gunship that hunts the player from outside the field
func SpawnSaucer(w *engine.World) core.Entity {
	c := w.Components
	gs := w.Resource.Game

	center := w.Resource.Config.Center()
	p := center.Add(vmath.Polar(parameter.SaucerSpawnDistance, gs.RandAngle()))
	heading := center.Sub(p).Angle()

	e := w.CreateEntity()
	c.Health.Add(e, component.HealthComponent{Value: parameter.SaucerHealth})
	c.Color.Add(e, component.ColorComponent{Color: core.HSL(parameter.SaucerHue, 0.9, 0.6)})
	c.Shape.Add(e, component.ShapeComponent{Polygon: SaucerShape(parameter.SaucerSize)})
	c.Position.Add(e, component.PositionComponent{P: p})
	c.Collidable.Add(e, component.CollidableComponent{})
	c.Velocity.Add(e, component.VelocityComponent{Speed: parameter.SaucerSpeed})
	c.Angle.Add(e, component.AngleComponent{Radians: heading})
	c.TargetDir.Add(e, component.TargetDirComponent{Heading: heading})
	c.MaxVelocity.Add(e, component.MaxVelocityComponent{Cap: parameter.SaucerMaxVelocity})
	c.BounceWalls.Add(e, component.BounceWallsComponent{})
	c.ReturnToField.Add(e, component.ReturnToFieldComponent{})
	c.SeekPlayer.Add(e, component.SeekPlayerComponent{Range: parameter.SaucerSeekRange})
	c.Firing.Add(e, component.FiringComponent{
		Rate:   parameter.SaucerFireRate,
		Spread: parameter.SaucerFireSpread,
	})
	return e
}

// SpawnAsteroidAt creates an asteroid of size exactly at p with a random heading
func SpawnAsteroidAt(w *engine.World, p vmath.Vec2, size float64) core.Entity {
	c := w.Components
	gs := w.Resource.Game

	e := w.CreateEntity()
	c.Color.Add(e, component.ColorComponent{
		Color: core.HSL(parameter.AsteroidHue, gs.RandRange(0, parameter.AsteroidMaxSat), parameter.AsteroidLight),
	})
	c.Shape.Add(e, component.ShapeComponent{Polygon: AsteroidShape(gs, size)})
	c.Size.Add(e, component.SizeComponent{Value: size})
	c.Position.Add(e, component.PositionComponent{P: p})
	c.ScreenWrap.Add(e, component.ScreenWrapComponent{})
	c.Collidable.Add(e, component.CollidableComponent{})
	c.Velocity.Add(e, component.VelocityComponent{
		Speed: gs.RandRange(parameter.AsteroidMinSpeed, parameter.AsteroidMaxSpeed) / size,
	})
	c.Angle.Add(e, component.AngleComponent{Radians: gs.RandAngle()})
	c.Spin.Add(e, component.SpinComponent{Rate: gs.RandRange(-parameter.AsteroidSpin, parameter.AsteroidSpin)})
	c.Health.Add(e, component.HealthComponent{Value: int(size / parameter.AsteroidHealthDivisor)})
	if size > parameter.CrumbleThreshold {
		c.Crumble.Add(e, component.CrumbleComponent{Size: size / 2})
	}
	return e
}

// SpawnAsteroid creates a full-size asteroid near distance from the field center, aimed at a random field point
func SpawnAsteroid(w *engine.World, distance float64) core.Entity {
	gs := w.Resource.Game
	cfg := w.Resource.Config
	size := parameter.HeavyAsteroidSize

	p := cfg.Center().Add(vmath.Polar(distance, gs.RandAngle()))
	aim := vmath.Vec2{X: gs.RandRange(0, cfg.FieldWidth), Y: gs.RandRange(0, cfg.FieldHeight)}
	offset := vmath.Vec2{X: gs.RandRange(-size, size), Y: gs.RandRange(-size, size)}

	e := SpawnAsteroidAt(w, p.Add(offset), size)
	w.Components.Angle.MustGet(e).Radians = aim.Sub(p).Angle()
	return e
}

// SpawnBullet fires from the shooter's muzzle along its heading with optional spread
func SpawnBullet(w *engine.World, shooter core.Entity, spread float64) core.Entity {
	c := w.Components
	gs := w.Resource.Game

	p := c.Position.MustGet(shooter).P
	a := c.Angle.MustGet(shooter).Radians
	speed := 0.0
	if v, ok := c.Velocity.Get(shooter); ok {
		speed = v.Speed
	}
	if spread > 0 {
		a += gs.RandRange(-spread, spread)
	}

	e := w.CreateEntity()
	c.Bullet.Add(e, component.BulletComponent{Shooter: shooter})
	c.Collidable.Add(e, component.CollidableComponent{})
	c.Position.Add(e, component.PositionComponent{P: p.Add(vmath.Polar(parameter.MuzzleOffset, a))})
	c.Angle.Add(e, component.AngleComponent{Radians: a})
	c.Velocity.Add(e, component.VelocityComponent{Speed: speed + parameter.MuzzleSpeed})
	c.MaxVelocity.Add(e, component.MaxVelocityComponent{Cap: parameter.BulletMaxVelocity})
	c.KillOffScreen.Add(e, component.KillOffScreenComponent{})
	c.Color.Add(e, component.ColorComponent{Color: core.ColorWhite})
	return e
}

// SpawnBomb drops a fused charge drifting with the owner's velocity
func SpawnBomb(w *engine.World, owner core.Entity) core.Entity {
	c := w.Components

	e := w.CreateEntity()
	c.Bomb.Add(e, component.BombComponent{Fuse: parameter.BombFuse, Owner: owner})
	c.Position.Add(e, component.PositionComponent{P: c.Position.MustGet(owner).P})
	c.Angle.Add(e, component.AngleComponent{Radians: c.Angle.MustGet(owner).Radians})
	speed := 0.0
	if v, ok := c.Velocity.Get(owner); ok {
		speed = v.Speed
	}
	c.Velocity.Add(e, component.VelocityComponent{Speed: speed})
	c.ScreenWrap.Add(e, component.ScreenWrapComponent{})
	c.Color.Add(e, component.ColorComponent{Color: core.ColorBomb})
	return e
}

// SpawnBlast creates an expanding blast wave at p
func SpawnBlast(w *engine.World, p vmath.Vec2, owner core.Entity) core.Entity {
	c := w.Components

	e := w.CreateEntity()
	c.Position.Add(e, component.PositionComponent{P: p})
	c.BlastWave.Add(e, component.NewBlastWave(
		owner,
		parameter.BlastMaxRadius,
		parameter.BlastExpand,
		parameter.BlastFade,
		parameter.BlastOncePerTarget,
	))
	c.Color.Add(e, component.ColorComponent{Color: core.ColorBlast})
	return e
}

// SpawnExplosion bursts particles of color outward from p
func SpawnExplosion(w *engine.World, p vmath.Vec2, color core.Color) {
	c := w.Components
	gs := w.Resource.Game

	for i := 0; i < parameter.ExplosionParticles; i++ {
		e := w.CreateEntity()
		c.Particle.Add(e, component.ParticleComponent{})
		c.Timer.Add(e, component.TimerComponent{
			Lifetime: gs.RandRange(parameter.ExplosionMinLifetime, parameter.ExplosionMaxLifetime),
			Expire:   true,
		})
		c.Position.Add(e, component.PositionComponent{P: p})
		c.Color.Add(e, component.ColorComponent{Color: color})
		c.Velocity.Add(e, component.VelocityComponent{
			Speed: gs.RandRange(parameter.ExplosionMinSpeed, parameter.ExplosionMaxSpeed),
		})
		c.Angle.Add(e, component.AngleComponent{Radians: gs.RandAngle()})
		c.StayInBounds.Add(e, component.StayInBoundsComponent{})
	}
}

// SpawnFlash creates the full-field hurt tint
func SpawnFlash(w *engine.World) core.Entity {
	return engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.FlashOverlay, component.FlashOverlayComponent{}),
		w.Components.Timer, component.TimerComponent{Lifetime: parameter.FlashLifetime, Expire: true}),
		w.Components.Color, component.ColorComponent{Color: core.ColorHurt}).
		Build()
}

// SpawnFade creates a full-field overlay that darkens over lifetime and stays
func SpawnFade(w *engine.World, lifetime float64, color core.Color) core.Entity {
	return engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.FadeOverlay, component.FadeOverlayComponent{}),
		w.Components.Timer, component.TimerComponent{Lifetime: lifetime}),
		w.Components.Color, component.ColorComponent{Color: color}).
		Build()
}

// worldShape maps an entity's local shape into field coordinates including spin
func worldShape(c *engine.ComponentStore, e core.Entity) (vmath.Polygon, bool) {
	shape, ok := c.Shape.Get(e)
	if !ok {
		return vmath.Polygon{}, false
	}
	pos, ok := c.Position.Get(e)
	if !ok {
		return vmath.Polygon{}, false
	}
	angle, ok := c.Angle.Get(e)
	if !ok {
		return vmath.Polygon{}, false
	}
	rotation := angle.Radians
	if spin, ok := c.Spin.Get(e); ok {
		rotation += spin.Offset
	}
	return shape.Polygon.Translate(pos.P, rotation), true
}

// WorldShape is worldShape for renderers
func WorldShape(w *engine.World, e core.Entity) (vmath.Polygon, bool) {
	return worldShape(&w.Components, e)
}

// firstPlayer returns the first player in store order
func firstPlayer(c *engine.ComponentStore) (core.Entity, vmath.Vec2, bool) {
	for _, p := range c.PlayerControlled.All() {
		if pos, ok := c.Position.Get(p); ok {
			return p, pos.P, true
		}
	}
	return 0, vmath.Vec2{}, false
}
