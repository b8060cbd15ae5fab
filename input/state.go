package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// TerminalInput turns tcell key events into per-frame button state
//
// Terminals only deliver presses and auto-repeats, so a button counts as held
// until the next repeat is overdue. The first press holds for KeyHoldInitial to
// bridge the repeat delay; each repeat extends the hold by KeyHoldRepeat
type TerminalInput struct {
	table *KeyTable

	heldUntil [engine.ButtonCount]time.Time
	pending   [engine.ButtonCount]bool
	pressed   [engine.ButtonCount]bool
	now       time.Time
}

// NewTerminalInput creates input state over a key table
func NewTerminalInput(table *KeyTable) *TerminalInput {
	return &TerminalInput{table: table}
}

// HandleKey records a key event received at now and returns its intent
func (in *TerminalInput) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	entry := in.table.Lookup(ev)
	if entry.Intent != IntentButton {
		return entry.Intent
	}

	b := entry.Button
	if now.Before(in.heldUntil[b]) {
		in.heldUntil[b] = now.Add(parameter.KeyHoldRepeat)
	} else {
		in.pending[b] = true
		in.heldUntil[b] = now.Add(parameter.KeyHoldInitial)
	}
	return IntentButton
}

// Frame latches presses received since the previous frame
// Call once per frame before the simulation update
func (in *TerminalInput) Frame(now time.Time) {
	in.now = now
	in.pressed = in.pending
	in.pending = [engine.ButtonCount]bool{}
}

// Release drops every held button, e.g. after the terminal loses focus
func (in *TerminalInput) Release() {
	in.heldUntil = [engine.ButtonCount]time.Time{}
}

// Held reports whether the button is down as of the last Frame
func (in *TerminalInput) Held(b engine.Button) bool {
	if b < 0 || b >= engine.ButtonCount {
		return false
	}
	return in.pressed[b] || in.now.Before(in.heldUntil[b])
}

// Pressed reports whether the button went down since the previous Frame
func (in *TerminalInput) Pressed(b engine.Button) bool {
	if b < 0 || b >= engine.ButtonCount {
		return false
	}
	return in.pressed[b]
}
