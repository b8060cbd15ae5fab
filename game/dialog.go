package game

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// Dialog types a message out one rune at a time
type Dialog struct {
	message []rune
	index   int
	timer   float64
}

// SetMessage restarts typing with a new message
func (d *Dialog) SetMessage(msg string) {
	d.message = []rune(msg)
	d.index = 0
	d.timer = 0
}

// Update reveals at most one rune per call once DialogRate has elapsed
func (d *Dialog) Update(dt float64) {
	if d.Done() {
		return
	}
	d.timer += dt
	if d.timer > parameter.DialogRate {
		d.index++
		d.timer -= parameter.DialogRate
	}
}

// Done reports whether the whole message is visible
func (d *Dialog) Done() bool { return d.index >= len(d.message) }

// Dismiss clears the message
func (d *Dialog) Dismiss() { d.SetMessage("") }

// Active reports whether a message is set
func (d *Dialog) Active() bool { return len(d.message) > 0 }

// Text returns the revealed part of the message
func (d *Dialog) Text() string { return string(d.message[:d.index]) }

// Draw writes the revealed text centered at y
func (d *Dialog) Draw(r engine.Renderer, y float64) {
	if !d.Active() {
		return
	}
	r.DrawText(d.Text(), r.FieldWidth()/2, y, engine.AlignCenter, core.ColorWhite)
}
