package game

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/system"
	"github.com/lixenwraith/hydra/vmath"
)

// drawScene renders the world back to front: flashes, shapes, ordnance, particles, then fade overlays
func drawScene(w *engine.World, r engine.Renderer) {
	drawFlashes(w, r)
	drawShapes(w, r)
	drawBullets(w, r)
	drawBombs(w, r)
	drawBlasts(w, r)
	drawParticles(w, r)
	drawFades(w, r)
}

func fillField(r engine.Renderer, color core.Color) {
	r.DrawRect(vmath.Vec2{}, vmath.Vec2{X: r.FieldWidth(), Y: r.FieldHeight()}, color, true)
}

// drawFlashes tints the field, fading out over the flash lifetime
func drawFlashes(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.FlashOverlay).With(c.Timer).With(c.Color).Execute() {
		ratio := c.Timer.MustGet(e).Ratio()
		fillField(r, c.Color.MustGet(e).Color.WithOpacity(1-ratio))
	}
}

// drawShapes outlines every polygon entity including its spin
func drawShapes(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.Shape).With(c.Position).With(c.Angle).With(c.Color).Execute() {
		shape, ok := system.WorldShape(w, e)
		if !ok {
			continue
		}
		color := c.Color.MustGet(e).Color
		for i := 1; i < len(shape.Points); i++ {
			r.DrawLine(shape.Points[i-1], shape.Points[i], color)
		}
	}
}

func drawBullets(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.Bullet).With(c.Position).Execute() {
		r.DrawCircle(c.Position.MustGet(e).P, parameter.BulletRadius, core.ColorWhite, true)
	}
}

// drawBombs blinks faster as the fuse burns down
func drawBombs(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.Bomb).With(c.Position).Execute() {
		bomb := c.Bomb.MustGet(e)
		color := core.ColorBomb
		if col, ok := c.Color.Get(e); ok {
			color = col.Color
		}
		p := c.Position.MustGet(e).P
		r.DrawCircle(p, parameter.BombRadius, color, true)
		if int(bomb.Fuse*8)%2 == 0 {
			r.DrawCircle(p, parameter.BombRadius*2, color, false)
		}
	}
}

func drawBlasts(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.BlastWave).With(c.Position).Execute() {
		blast := c.BlastWave.MustGet(e)
		color := core.ColorBlast
		if col, ok := c.Color.Get(e); ok {
			color = col.Color
		}
		r.DrawCircle(c.Position.MustGet(e).P, blast.Radius, color.WithOpacity(blast.Alpha), false)
	}
}

// drawParticles plots one pixel per particle, fading with age
func drawParticles(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.Particle).With(c.Timer).With(c.Position).With(c.Color).Execute() {
		ratio := c.Timer.MustGet(e).Ratio()
		r.DrawPixel(c.Position.MustGet(e).P, c.Color.MustGet(e).Color.WithOpacity(1-ratio))
	}
}

// drawFades darkens the field as the fade timer grows
func drawFades(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.FadeOverlay).With(c.Timer).With(c.Color).Execute() {
		ratio := c.Timer.MustGet(e).Ratio()
		fillField(r, c.Color.MustGet(e).Color.WithOpacity(ratio))
	}
}
