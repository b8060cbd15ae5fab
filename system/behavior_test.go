package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
	"github.com/lixenwraith/hydra/vmath"
)

func TestPauseHaltsSimulation(t *testing.T) {
	w := newTestWorld(NewPhaseSystem, NewMovementSystem)
	gs := w.Resource.Game
	in := scripted(w)

	SpawnPlayer(w)
	mover := addMover(w, vmath.Vec2{X: 100, Y: 100}, 100, 0)
	x := func() float64 { return w.Components.Position.MustGet(mover).P.X }

	in.Press(engine.ButtonStart)
	w.Update(0.1)
	in.Step()
	if gs.Phase != engine.PhasePaused || !gs.Halted {
		t.Fatalf("Expected paused and halted, got %v halted=%t", gs.Phase, gs.Halted)
	}
	if x() != 100 {
		t.Error("The pausing frame must not move entities")
	}
	if recorder(w).Volume != parameter.MusicPausedVolume {
		t.Errorf("Expected paused music volume, got %v", recorder(w).Volume)
	}

	w.Update(0.1)
	if x() != 100 {
		t.Error("Paused frames must not move entities")
	}

	in.Press(engine.ButtonStart)
	w.Update(0.1)
	in.Step()
	if gs.Phase != engine.PhasePlaying {
		t.Fatalf("Expected playing after resume, got %v", gs.Phase)
	}
	if x() != 100 {
		t.Error("The resuming frame must still be halted")
	}
	if recorder(w).Volume != parameter.MusicVolume {
		t.Errorf("Expected music volume restored, got %v", recorder(w).Volume)
	}

	w.Update(0.1)
	if math.Abs(x()-110) > 1e-9 {
		t.Errorf("Expected movement after resume, got x=%v", x())
	}
	if got := w.Resource.Status.Labels.Get(status.GamePhase).Load(); got != "playing" {
		t.Errorf("Expected phase label playing, got %q", got)
	}
}

func TestGameOverWhenPlayerGone(t *testing.T) {
	w := newTestWorld(NewPhaseSystem)
	gs := w.Resource.Game

	player := SpawnPlayer(w)
	w.Update(0.1)
	if gs.Phase != engine.PhasePlaying {
		t.Fatal("Game should continue while a player lives")
	}

	w.DestroyEntity(player)
	w.Update(0.1)
	w.Update(0.1)

	if gs.Phase != engine.PhaseLost {
		t.Fatalf("Expected lost, got %v", gs.Phase)
	}
	if n := recorder(w).Count(core.SoundDead); n != 1 {
		t.Errorf("Expected one dead sample, got %d", n)
	}
	if n := w.Components.FadeOverlay.Count(); n != 1 {
		t.Errorf("Expected one fade overlay, got %d", n)
	}
	if got := w.Resource.Status.Labels.Get(status.GamePhase).Load(); got != "lost" {
		t.Errorf("Expected phase label lost, got %q", got)
	}
}

func TestPlayerInputControls(t *testing.T) {
	w := newTestWorld(NewPlayerInputSystem)
	c := w.Components
	in := scripted(w)
	player := SpawnPlayer(w)

	in.Hold(engine.ButtonUp, true)
	in.Hold(engine.ButtonLeft, true)
	in.Hold(engine.ButtonFire, true)
	w.Update(0.1)

	if got := c.Acceleration.MustGet(player).Accel; got != parameter.PlayerThrust {
		t.Errorf("Expected thrust %v, got %v", parameter.PlayerThrust, got)
	}
	if got := c.Rotation.MustGet(player).Rate; got != -parameter.PlayerTurnRate {
		t.Errorf("Expected left turn %v, got %v", -parameter.PlayerTurnRate, got)
	}
	if !c.Firing.Has(player) {
		t.Fatal("Holding fire should arm the player")
	}

	c.Firing.MustGet(player).Time = 0.05
	w.Update(0.1)
	if c.Firing.MustGet(player).Time != 0.05 {
		t.Error("Holding fire must not reset the weapon clock")
	}

	in.Hold(engine.ButtonUp, false)
	in.Hold(engine.ButtonLeft, false)
	in.Hold(engine.ButtonFire, false)
	in.Hold(engine.ButtonDown, true)
	w.Update(0.1)

	if got := c.Acceleration.MustGet(player).Accel; got != parameter.PlayerReverse {
		t.Errorf("Expected reverse thrust, got %v", got)
	}
	if c.Rotation.MustGet(player).Rate != 0 {
		t.Error("Released turn keys should stop rotation")
	}
	if c.Firing.Has(player) {
		t.Error("Releasing fire should disarm the player")
	}
}

func TestFiringRateAndMuzzle(t *testing.T) {
	w := newTestWorld(NewFiringSystem)
	c := w.Components

	shooter := addMover(w, vmath.Vec2{X: 100, Y: 100}, 50, 0)
	c.Firing.Add(shooter, component.FiringComponent{Rate: 0.1})

	w.Update(0.05)
	if c.Bullet.Count() != 0 {
		t.Fatal("Fired before the rate elapsed")
	}

	w.Update(0.06)
	bullets := c.Bullet.All()
	if len(bullets) != 1 {
		t.Fatalf("Expected one bullet, got %d", len(bullets))
	}
	b := bullets[0]

	if got := c.Position.MustGet(b).P; !near(got, vmath.Vec2{X: 100 + parameter.MuzzleOffset, Y: 100}) {
		t.Errorf("Unexpected muzzle position %v", got)
	}
	if got := c.Velocity.MustGet(b).Speed; got != 50+parameter.MuzzleSpeed {
		t.Errorf("Expected bullet speed %v, got %v", 50+parameter.MuzzleSpeed, got)
	}
	if c.Bullet.MustGet(b).Shooter != shooter {
		t.Error("Bullet should remember its shooter")
	}
	if !c.KillOffScreen.Has(b) || !c.Collidable.Has(b) {
		t.Error("Bullets must be collidable and culled off screen")
	}
	if recorder(w).Count(core.SoundShot) != 1 {
		t.Error("Expected a shot sample")
	}
	if got := w.Resource.Status.Counters.Get(status.BulletFired).Load(); got != 1 {
		t.Errorf("Expected fired counter 1, got %d", got)
	}
}

func TestFiringOnlyWhilePlaying(t *testing.T) {
	w := newTestWorld(NewFiringSystem)
	c := w.Components
	w.Resource.Game.Phase = engine.PhaseLost

	shooter := addMover(w, vmath.Vec2{X: 100, Y: 100}, 0, 0)
	c.Firing.Add(shooter, component.FiringComponent{Rate: 0.01})
	w.Update(0.1)

	if c.Bullet.Count() != 0 {
		t.Error("No shots after the game is lost")
	}
}

func TestBombCooldown(t *testing.T) {
	w := newTestWorld(NewFiringSystem)
	c := w.Components
	gs := w.Resource.Game
	in := scripted(w)
	player := SpawnPlayer(w)

	in.Press(engine.ButtonBomb)
	w.Update(0.01)
	in.Step()

	bombs := c.Bomb.All()
	if len(bombs) != 1 {
		t.Fatalf("Expected one bomb, got %d", len(bombs))
	}
	if c.Bomb.MustGet(bombs[0]).Owner != player {
		t.Error("Bomb owner should be the player")
	}
	if gs.BombCooldown != parameter.BombCooldown {
		t.Errorf("Expected cooldown %v, got %v", parameter.BombCooldown, gs.BombCooldown)
	}

	in.Press(engine.ButtonBomb)
	w.Update(0.01)
	in.Step()
	if c.Bomb.Count() != 1 {
		t.Error("Bomb dropped during cooldown")
	}

	gs.BombCooldown = 0.005
	in.Press(engine.ButtonBomb)
	w.Update(0.01)
	if c.Bomb.Count() != 2 {
		t.Error("Bomb should be ready once the cooldown runs out")
	}
	if recorder(w).Count(core.SoundBomb) != 2 {
		t.Errorf("Expected two bomb samples, got %d", recorder(w).Count(core.SoundBomb))
	}
}

func TestOrdnanceDetonates(t *testing.T) {
	w := newTestWorld(NewOrdnanceSystem)
	c := w.Components

	owner := w.CreateEntity()
	bomb := w.CreateEntity()
	c.Bomb.Add(bomb, component.BombComponent{Fuse: 0.15, Owner: owner})
	c.Position.Add(bomb, component.PositionComponent{P: vmath.Vec2{X: 200, Y: 300}})

	w.Update(0.1)
	if !w.Alive(bomb) {
		t.Fatal("Bomb detonated before its fuse ran out")
	}

	w.Update(0.1)
	if w.Alive(bomb) {
		t.Error("Spent bomb should be removed")
	}
	blasts := c.BlastWave.All()
	if len(blasts) != 1 {
		t.Fatalf("Expected one blast, got %d", len(blasts))
	}
	if got := c.Position.MustGet(blasts[0]).P; got != (vmath.Vec2{X: 200, Y: 300}) {
		t.Errorf("Blast should start at the bomb, got %v", got)
	}
	if c.BlastWave.MustGet(blasts[0]).Owner != owner {
		t.Error("Blast should carry the bomb owner")
	}
	if recorder(w).Count(core.SoundBoom) != 1 {
		t.Error("Expected a boom sample")
	}
}

func addBlast(w *engine.World, p vmath.Vec2, owner core.Entity, once bool) core.Entity {
	c := w.Components
	e := w.CreateEntity()
	c.Position.Add(e, component.PositionComponent{P: p})
	c.BlastWave.Add(e, component.NewBlastWave(owner, 160, 0.6, 0.6, once))
	return e
}

func addTarget(w *engine.World, p vmath.Vec2, health int) core.Entity {
	c := w.Components
	e := w.CreateEntity()
	c.Position.Add(e, component.PositionComponent{P: p})
	c.Health.Add(e, component.HealthComponent{Value: health})
	return e
}

func TestBlastDamage(t *testing.T) {
	tests := []struct {
		name string
		once bool
		want int
	}{
		{"per frame", false, 7},
		{"once per target", true, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(NewBlastSystem)
			c := w.Components

			addBlast(w, vmath.Vec2{X: 500, Y: 500}, 0, tt.once)
			target := addTarget(w, vmath.Vec2{X: 510, Y: 500}, 10)
			outside := addTarget(w, vmath.Vec2{X: 900, Y: 500}, 10)

			for i := 0; i < 3; i++ {
				w.Update(0.1)
			}

			if got := c.Health.MustGet(target).Value; got != tt.want {
				t.Errorf("Expected health %d, got %d", tt.want, got)
			}
			if got := c.Health.MustGet(outside).Value; got != 10 {
				t.Errorf("Target outside the ring took damage, health %d", got)
			}
		})
	}
}

func TestBlastDamagesPlayersAndCredits(t *testing.T) {
	w := newTestWorld(NewBlastSystem)
	c := w.Components

	player := addTarget(w, vmath.Vec2{X: 500, Y: 500}, 5)
	c.PlayerControlled.Add(player, component.PlayerControlledComponent{})
	drone := addTarget(w, vmath.Vec2{X: 505, Y: 500}, 1)

	addBlast(w, vmath.Vec2{X: 500, Y: 500}, player, false)
	w.Update(0.1)

	if got := c.Health.MustGet(player).Value; got != 4 {
		t.Errorf("Expected the player inside the blast to drop to 4, got %d", got)
	}
	if !c.KilledByPlayer.Has(drone) {
		t.Error("Blast kill by a living player should be credited")
	}
}

func TestBlastOwnerDeathNotCredited(t *testing.T) {
	w := newTestWorld(NewBlastSystem)
	c := w.Components

	player := addTarget(w, vmath.Vec2{X: 500, Y: 500}, 1)
	c.PlayerControlled.Add(player, component.PlayerControlledComponent{})

	addBlast(w, vmath.Vec2{X: 500, Y: 500}, player, false)
	w.Update(0.1)

	if got := c.Health.MustGet(player).Value; got != 0 {
		t.Errorf("Expected the owner to be killed by its own blast, got health %d", got)
	}
	if c.KilledByPlayer.Has(player) {
		t.Error("Owner's own death should not score a kill")
	}
}

func TestBlastExpiresAfterFade(t *testing.T) {
	w := newTestWorld(NewBlastSystem)
	c := w.Components

	blast := addBlast(w, vmath.Vec2{X: 500, Y: 500}, 0, false)
	for i := 0; i < 8; i++ {
		w.Update(0.1)
	}
	if !w.Alive(blast) {
		t.Fatal("Blast removed before fading out")
	}
	b := c.BlastWave.MustGet(blast)
	if b.Radius != b.MaxRadius || b.Expanding() {
		t.Errorf("Expected full radius after expansion, got %v", b.Radius)
	}
	if b.Alpha >= 1 {
		t.Errorf("Expected fading alpha, got %v", b.Alpha)
	}

	target := addTarget(w, vmath.Vec2{X: 500, Y: 500}, 3)
	for i := 0; i < 12; i++ {
		w.Update(0.1)
	}
	if w.Alive(blast) {
		t.Error("Faded blast should be removed")
	}
	if c.Health.MustGet(target).Value != 3 {
		t.Error("Fading blasts must not deal damage")
	}
}

func TestWaveDelay(t *testing.T) {
	tests := []struct {
		playTime float64
		want     float64
	}{
		{0, 10},
		{100, 8},
		{350, 3},
		{1000, 3},
	}
	for _, tt := range tests {
		if got := WaveDelay(tt.playTime); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WaveDelay(%v) = %v, want %v", tt.playTime, got, tt.want)
		}
	}
}

func TestDirectorTrickle(t *testing.T) {
	w := newTestWorld(NewDirectorSystem)
	gs := w.Resource.Game

	w.Update(1)

	want := parameter.SpawnCreditTrickle + parameter.SpawnCreditTrickleGrowth
	if math.Abs(gs.SpawnCredit-want) > 1e-12 {
		t.Errorf("Expected credit %v, got %v", want, gs.SpawnCredit)
	}
	if gs.PlayTime != 1 || gs.WaveTimer != 1 {
		t.Errorf("Expected play time and wave timer 1, got %v and %v", gs.PlayTime, gs.WaveTimer)
	}
	if gs.WaveCount != 0 {
		t.Error("No wave without enough credit")
	}
	if got := w.Resource.Status.Gauges.Get(status.DirectorCredit).Get(); got != gs.SpawnCredit {
		t.Errorf("Credit gauge %v does not match %v", got, gs.SpawnCredit)
	}
}

func TestDirectorSpawnsWave(t *testing.T) {
	w := newTestWorld(NewDirectorSystem)
	c := w.Components
	gs := w.Resource.Game

	gs.SpawnCredit = 2
	gs.WaveTimer = 100
	w.Update(0.01)

	if n := c.Flocking.Count(); n != 2 {
		t.Fatalf("Expected two drones, got %d", n)
	}
	if gs.SpawnCredit >= 1 {
		t.Errorf("Wave should spend whole credits, left %v", gs.SpawnCredit)
	}
	if gs.WaveTimer != 0 || gs.WaveCount != 1 {
		t.Errorf("Expected reset timer and one wave, got %v and %d", gs.WaveTimer, gs.WaveCount)
	}
	if c.SeekPlayer.Count() != 0 {
		t.Error("Saucer spawned on the first wave")
	}

	drones := c.Flocking.All()
	if c.Position.MustGet(drones[0]).P != c.Position.MustGet(drones[1]).P {
		t.Error("Drones of one wave should share a spawn point")
	}
	if c.Color.MustGet(drones[0]).Color != c.Color.MustGet(drones[1]).Color {
		t.Error("Drones of one wave should share a color")
	}
	if got := w.Resource.Status.Counters.Get(status.DirectorWaves).Load(); got != 1 {
		t.Errorf("Expected wave counter 1, got %d", got)
	}
}

func TestDirectorWaveLimits(t *testing.T) {
	w := newTestWorld(NewDirectorSystem)
	c := w.Components
	gs := w.Resource.Game

	gs.SpawnCredit = 40
	gs.WaveTimer = 100
	gs.WaveCount = parameter.SaucerEveryWaves - 1
	w.Update(0.01)

	if n := c.Flocking.Count(); n != parameter.MaxWaveSize {
		t.Errorf("Expected a capped wave of %d, got %d", parameter.MaxWaveSize, n)
	}
	if n := c.SeekPlayer.Count(); n != 1 {
		t.Errorf("Expected a saucer on wave %d, got %d", parameter.SaucerEveryWaves, n)
	}

	gs.WaveTimer = 1
	w.Update(0.01)
	if gs.WaveCount != parameter.SaucerEveryWaves {
		t.Error("Wave spawned before the delay elapsed")
	}
}

func TestDirectorHeavyAsteroid(t *testing.T) {
	w := newTestWorld(NewDirectorSystem)
	c := w.Components
	gs := w.Resource.Game

	gs.HeavyTimer = parameter.HeavyAsteroidPeriod - 0.01
	w.Update(0.02)

	sizes := c.Size.All()
	if len(sizes) != 1 {
		t.Fatalf("Expected one heavy asteroid, got %d", len(sizes))
	}
	if got := c.Size.MustGet(sizes[0]).Value; got != parameter.HeavyAsteroidSize {
		t.Errorf("Expected size %v, got %v", parameter.HeavyAsteroidSize, got)
	}
	if gs.HeavyTimer >= 1 {
		t.Errorf("Heavy timer should wrap, got %v", gs.HeavyTimer)
	}
}

func TestDirectorIdleWhenNotPlaying(t *testing.T) {
	w := newTestWorld(NewDirectorSystem)
	gs := w.Resource.Game

	gs.Phase = engine.PhaseLost
	gs.SpawnCredit = 5
	gs.WaveTimer = 100
	w.Update(1)

	if gs.WaveCount != 0 || gs.PlayTime != 0 {
		t.Error("Director must not run after the game is lost")
	}
}

func TestDiagnosticsAlwaysRuns(t *testing.T) {
	w := newTestWorld(NewDiagnosticsSystem)
	w.Resource.Game.Phase = engine.PhasePaused
	w.Resource.Game.Halted = true

	for i := 0; i < 3; i++ {
		w.CreateEntity()
	}
	w.Update(0.1)
	w.Update(0.1)

	counters := w.Resource.Status.Counters
	if got := counters.Get(status.FrameCount).Load(); got != 2 {
		t.Errorf("Expected 2 frames, got %d", got)
	}
	if got := counters.Get(status.EntityAlive).Load(); got != 3 {
		t.Errorf("Expected 3 entities, got %d", got)
	}
}

func TestRegisterAllAndPopulate(t *testing.T) {
	w := engine.NewTestWorld()
	RegisterAll(w)

	systems := w.Systems()
	if len(systems) != 21 {
		t.Fatalf("Expected 21 systems, got %d", len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("%s runs before %s", systems[i-1].Name(), systems[i].Name())
		}
	}
	if systems[0].Name() != "timer" || systems[len(systems)-1].Name() != "diagnostics" {
		t.Errorf("Unexpected order: first %s, last %s", systems[0].Name(), systems[len(systems)-1].Name())
	}

	Populate(w)
	c := w.Components

	if c.PlayerControlled.Count() != 1 {
		t.Fatal("Expected one player")
	}
	if w.Resource.Game.Player != c.PlayerControlled.All()[0] {
		t.Error("Game state should track the player entity")
	}
	if n := c.Flocking.Count(); n != parameter.InitialDrones {
		t.Errorf("Expected %d drones, got %d", parameter.InitialDrones, n)
	}
	if n := c.Size.Count(); n != parameter.InitialAsteroids {
		t.Errorf("Expected %d asteroids, got %d", parameter.InitialAsteroids, n)
	}

	for i := 0; i < 10; i++ {
		w.Update(1.0 / 60)
	}
	if w.Resource.Game.Phase != engine.PhasePlaying {
		t.Errorf("Expected to still be playing, got %v", w.Resource.Game.Phase)
	}
}
