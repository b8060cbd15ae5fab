package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hydra/engine"
)

// Intent is what a key asks the program to do
type Intent uint8

const (
	IntentNone Intent = iota
	IntentButton
	IntentQuit
	IntentToggleMute
	IntentToggleDebug
)

// KeyEntry binds a key to an intent; Button is meaningful for IntentButton only
type KeyEntry struct {
	Intent Intent
	Button engine.Button
}

func button(b engine.Button) KeyEntry { return KeyEntry{Intent: IntentButton, Button: b} }

// KeyTable maps terminal keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyCtrlD:  {Intent: IntentToggleDebug},
			tcell.KeyUp:     button(engine.ButtonUp),
			tcell.KeyDown:   button(engine.ButtonDown),
			tcell.KeyLeft:   button(engine.ButtonLeft),
			tcell.KeyRight:  button(engine.ButtonRight),
			tcell.KeyEnter:  button(engine.ButtonStart),
		},

		Runes: map[rune]KeyEntry{
			'w': button(engine.ButtonUp),
			's': button(engine.ButtonDown),
			'a': button(engine.ButtonLeft),
			'd': button(engine.ButtonRight),
			' ': button(engine.ButtonFire),
			'b': button(engine.ButtonBomb),
			'x': button(engine.ButtonBomb),
			'p': button(engine.ButtonStart),
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
