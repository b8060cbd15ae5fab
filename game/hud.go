package game

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
	"github.com/lixenwraith/hydra/vmath"
)

// drawOverlay renders phase dialogs and the HUD above the scene
func drawOverlay(w *engine.World, r engine.Renderer) {
	gs := w.Resource.Game

	switch gs.Phase {
	case engine.PhasePaused:
		fillField(r, core.ColorPauseBg)
		textBox(r, "Paused")
	case engine.PhaseLost:
		textBox(r, "Game Over")
	}

	drawScore(gs, r)
	drawHealth(w, r)
	drawBombReadiness(gs, r)
}

// textBox draws a framed message centered on the field
func textBox(r engine.Renderer, msg string) {
	cx, cy := r.FieldWidth()/2, r.FieldHeight()/2
	p1 := vmath.Vec2{X: cx - parameter.TextBoxWidth, Y: cy - parameter.TextBoxHeight}
	p2 := vmath.Vec2{X: cx + parameter.TextBoxWidth, Y: cy + parameter.TextBoxHeight}

	r.DrawRect(p1, p2, core.ColorBlack, true)
	r.DrawRect(p1, p2, core.ColorWhite, false)
	r.DrawText(msg, cx, cy-parameter.TextLineHeight/2, engine.AlignCenter, core.ColorWhite)
}

// drawScore shows the score top-right and the combo top-left
func drawScore(gs *engine.GameState, r engine.Renderer) {
	r.DrawText(strconv.Itoa(gs.Score), r.FieldWidth(), 0, engine.AlignRight, core.ColorWhite)

	combo := fmt.Sprintf("combo %d  best %d", gs.Combo, gs.BestCombo)
	r.DrawText(combo, 0, 0, engine.AlignLeft, core.ColorWhite)
}

// drawHealth fills a bar along the bottom edge for every player
func drawHealth(w *engine.World, r engine.Renderer) {
	c := w.Components
	for _, e := range w.Query().With(c.PlayerControlled).With(c.Health).With(c.Color).Execute() {
		fullness := vmath.Clamp(float64(c.Health.MustGet(e).Value)/parameter.PlayerHealth, 0, 1)
		healthBox(r, c.Color.MustGet(e).Color, fullness)
	}
}

func healthBox(r engine.Renderer, color core.Color, fullness float64) {
	p1 := vmath.Vec2{X: 0, Y: r.FieldHeight() - parameter.HealthBarHeight}
	p2 := vmath.Vec2{X: r.FieldWidth(), Y: r.FieldHeight()}

	r.DrawRect(p1, p2, core.ColorBlack, true)
	r.DrawRect(p1, vmath.Vec2{X: p1.X + (p2.X-p1.X)*fullness, Y: p2.Y}, color, true)
	r.DrawRect(p1, p2, color, false)
}

// drawBombReadiness shows the bomb cooldown above the health bar
func drawBombReadiness(gs *engine.GameState, r engine.Renderer) {
	y := r.FieldHeight() - parameter.HealthBarHeight - parameter.TextLineHeight - parameter.HUDMargin
	if gs.BombCooldown > 0 {
		r.DrawText(fmt.Sprintf("bomb %.1f", gs.BombCooldown), r.FieldWidth(), y, engine.AlignRight, core.ColorWhite.WithOpacity(0.5))
		return
	}
	r.DrawText("bomb ready", r.FieldWidth(), y, engine.AlignRight, core.ColorBomb)
}

// drawDiagnostics lists the status registry down the left edge
func drawDiagnostics(reg *status.Registry, r engine.Renderer) {
	y := parameter.TextLineHeight + parameter.HUDMargin
	for _, line := range reg.Lines() {
		r.DrawText(line, parameter.HUDMargin, y, engine.AlignLeft, core.ColorWhite.WithOpacity(0.75))
		y += parameter.TextLineHeight
	}
}
