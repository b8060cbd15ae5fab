package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hydra/engine"
)

// bindings lists the keys that drive each button
var bindings = [engine.ButtonCount][]ebiten.Key{
	engine.ButtonUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	engine.ButtonDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	engine.ButtonLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	engine.ButtonRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	engine.ButtonFire:  {ebiten.KeySpace, ebiten.KeyZ},
	engine.ButtonBomb:  {ebiten.KeyB, ebiten.KeyX},
	engine.ButtonStart: {ebiten.KeyEnter, ebiten.KeyP},
}

// KeyboardInput reads ebiten's keyboard state, which tracks real key releases
type KeyboardInput struct{}

func (KeyboardInput) Held(b engine.Button) bool {
	if b < 0 || b >= engine.ButtonCount {
		return false
	}
	for _, k := range bindings[b] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (KeyboardInput) Pressed(b engine.Button) bool {
	if b < 0 || b >= engine.ButtonCount {
		return false
	}
	for _, k := range bindings[b] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
