package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

var _ engine.InputProvider = (*TerminalInput)(nil)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		intent Intent
		button engine.Button
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentButton, engine.ButtonUp},
		{"wasd", runeKey('a'), IntentButton, engine.ButtonLeft},
		{"shifted wasd", runeKey('D'), IntentButton, engine.ButtonRight},
		{"space fires", runeKey(' '), IntentButton, engine.ButtonFire},
		{"bomb", runeKey('x'), IntentButton, engine.ButtonBomb},
		{"enter starts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentButton, engine.ButtonStart},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0},
		{"q quits", runeKey('q'), IntentQuit, 0},
		{"ctrl-s mutes", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), IntentToggleMute, 0},
		{"unbound", runeKey('z'), IntentNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kt.Lookup(tt.ev)
			if got.Intent != tt.intent {
				t.Fatalf("Expected intent %d, got %d", tt.intent, got.Intent)
			}
			if tt.intent == IntentButton && got.Button != tt.button {
				t.Errorf("Expected %v, got %v", tt.button, got.Button)
			}
		})
	}
}

func TestPressLatchesForOneFrame(t *testing.T) {
	in := NewTerminalInput(DefaultKeyTable())
	t0 := time.Unix(1000, 0)

	if got := in.HandleKey(runeKey(' '), t0); got != IntentButton {
		t.Fatalf("Expected button intent, got %d", got)
	}
	if in.Pressed(engine.ButtonFire) {
		t.Error("Press should not show before the frame latches it")
	}

	in.Frame(t0.Add(time.Millisecond))
	if !in.Pressed(engine.ButtonFire) || !in.Held(engine.ButtonFire) {
		t.Error("Expected fire pressed and held")
	}

	in.Frame(t0.Add(20 * time.Millisecond))
	if in.Pressed(engine.ButtonFire) {
		t.Error("Press should last one frame")
	}
	if !in.Held(engine.ButtonFire) {
		t.Error("Fire should stay held until the repeat delay passes")
	}

	in.Frame(t0.Add(parameter.KeyHoldInitial + time.Millisecond))
	if in.Held(engine.ButtonFire) {
		t.Error("Fire should release without repeats")
	}
}

func TestRepeatsExtendHold(t *testing.T) {
	in := NewTerminalInput(DefaultKeyTable())
	t0 := time.Unix(1000, 0)

	in.HandleKey(runeKey('w'), t0)
	in.Frame(t0)

	// Auto-repeat arrives while still held: no new press
	repeat := t0.Add(500 * time.Millisecond)
	in.HandleKey(runeKey('w'), repeat)
	in.Frame(repeat)
	if in.Pressed(engine.ButtonUp) {
		t.Error("Repeat should not register as a new press")
	}

	in.Frame(repeat.Add(parameter.KeyHoldRepeat - time.Millisecond))
	if !in.Held(engine.ButtonUp) {
		t.Error("Repeat should extend the hold")
	}

	in.Frame(repeat.Add(parameter.KeyHoldRepeat + time.Millisecond))
	if in.Held(engine.ButtonUp) {
		t.Error("Hold should lapse once repeats stop")
	}
}

func TestReleaseAndBounds(t *testing.T) {
	in := NewTerminalInput(DefaultKeyTable())
	t0 := time.Unix(1000, 0)

	in.HandleKey(runeKey('a'), t0)
	in.Frame(t0)
	in.Frame(t0.Add(time.Millisecond))
	in.Release()
	if in.Held(engine.ButtonLeft) {
		t.Error("Release should drop held buttons")
	}

	if in.Held(engine.ButtonCount) || in.Pressed(-1) {
		t.Error("Out of range buttons are never down")
	}
	if got := in.HandleKey(runeKey('q'), t0); got != IntentQuit {
		t.Errorf("Expected quit intent, got %d", got)
	}
}
