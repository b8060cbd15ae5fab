package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

var storyLines = []string{
	"The hive followed us out past the belt.",
	"Every drone you drop, two more answer the call.",
	"Hold the line as long as you can, pilot.",
}

// bob swings between -1 and 1, easing at both ends
type bob struct {
	tween  *gween.Tween
	rising bool
	value  float64
}

func newBob() *bob {
	return &bob{
		tween:  gween.New(-1, 1, parameter.TitleBobHalfPeriod, ease.InOutSine),
		rising: true,
		value:  -1,
	}
}

func (b *bob) Update(dt float64) float64 {
	v, finished := b.tween.Update(float32(dt))
	b.value = float64(v)
	if finished {
		b.rising = !b.rising
		if b.rising {
			b.tween = gween.New(-1, 1, parameter.TitleBobHalfPeriod, ease.InOutSine)
		} else {
			b.tween = gween.New(1, -1, parameter.TitleBobHalfPeriod, ease.InOutSine)
		}
	}
	return b.value
}

// TitleScreen shows the starfield and bobbing title until any button is pressed
type TitleScreen struct {
	res   *engine.Resource
	stars *Starfield
	bob   *bob

	dialog     Dialog
	story      int
	storyTimer float64

	counter float64
}

// NewTitleScreen creates the title screen for the configured field
func NewTitleScreen(res *engine.Resource) *TitleScreen {
	t := &TitleScreen{
		res:   res,
		stars: NewStarfield(parameter.StarSeed, parameter.StarCount, res.Config.FieldWidth, res.Config.FieldHeight),
		bob:   newBob(),
	}
	t.dialog.SetMessage(storyLines[0])
	return t
}

func (t *TitleScreen) Name() string       { return "title" }
func (t *TitleScreen) MusicTrack() string { return core.MusicTitle }

// Update animates the backdrop; returns false once a button is pressed
func (t *TitleScreen) Update(dt float64) bool {
	t.counter += dt
	t.stars.Update(dt)
	t.bob.Update(dt)

	t.dialog.Update(dt)
	if t.dialog.Done() {
		t.storyTimer += dt
		if t.storyTimer > parameter.StoryTimeout {
			t.storyTimer = 0
			t.story = (t.story + 1) % len(storyLines)
			t.dialog.SetMessage(storyLines[t.story])
		}
	}

	return !anyPressed(t.res.Input.Provider)
}

// Draw renders stars, title letters, the story line, and the blinking prompt
func (t *TitleScreen) Draw(r engine.Renderer) {
	t.stars.Draw(r)

	w, h := r.FieldWidth(), r.FieldHeight()
	letters := []rune(parameter.TitleText)
	left := w/2 - parameter.TitleLetterSpacing*float64(len(letters)-1)/2
	for i, letter := range letters {
		// Neighboring letters swing in opposite directions
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		x := left + parameter.TitleLetterSpacing*float64(i)
		y := parameter.TitleLetterY + parameter.TitleBobSize*t.bob.value*dir
		r.DrawText(string(letter), x, y, engine.AlignCenter, core.ColorPlayer)
	}

	t.dialog.Draw(r, h/2)

	if blinkOn(t.counter) {
		r.DrawText("Press any key", w/2, h-parameter.TitlePromptLift, engine.AlignCenter, core.ColorWhite)
	}
}

// Next starts a new battle
func (t *TitleScreen) Next() Screen {
	return NewBattleScreen(t.res)
}

// blinkOn is true for the first half of every TitleBlink*2 second cycle
func blinkOn(counter float64) bool {
	return int(math.Floor(counter/parameter.TitleBlink))%2 == 0
}

func anyPressed(in engine.InputProvider) bool {
	for b := engine.Button(0); b < engine.ButtonCount; b++ {
		if in.Pressed(b) {
			return true
		}
	}
	return false
}
