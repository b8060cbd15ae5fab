// Package window runs the game in a desktop window through ebiten
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/game"
	"github.com/lixenwraith/hydra/parameter"
)

// Game adapts the screen manager to ebiten's fixed-tick loop
type Game struct {
	manager *game.Manager
	res     *engine.Resource
}

// NewGame starts the screen manager; res should read input from KeyboardInput
func NewGame(res *engine.Resource, debug bool) *Game {
	return &Game{manager: game.NewManager(res, debug), res: res}
}

// Update advances one tick; Escape ends the run
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := min(1/float64(ebiten.TPS()), parameter.MaxFrameDelta)
	g.manager.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorBlack))
	g.manager.Draw(&Renderer{
		dst:    screen,
		width:  g.res.Config.FieldWidth,
		height: g.res.Config.FieldHeight,
	})
}

// Layout keeps one field unit per logical pixel regardless of window size
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.res.Config.FieldWidth), int(g.res.Config.FieldHeight)
}

// Run opens the window and blocks until it closes
func Run(res *engine.Resource, debug bool) error {
	g := NewGame(res, debug)

	ebiten.SetWindowTitle("Hydra")
	ebiten.SetWindowSize(int(res.Config.FieldWidth), int(res.Config.FieldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "window")
	}
	return nil
}
