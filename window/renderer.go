package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/vmath"
)

// debugGlyphWidth is the advance of ebitenutil's debug font in pixels
const debugGlyphWidth = 6

// Renderer draws on an ebiten image whose pixels are field units
type Renderer struct {
	dst           *ebiten.Image
	width, height float64
}

func (r *Renderer) FieldWidth() float64  { return r.width }
func (r *Renderer) FieldHeight() float64 { return r.height }

func rgba(c core.Color) color.Color {
	// ebiten expects premultiplied alpha
	a := uint32(c.A())
	return color.RGBA{
		R: uint8(uint32(c.R()) * a / 255),
		G: uint8(uint32(c.G()) * a / 255),
		B: uint8(uint32(c.B()) * a / 255),
		A: c.A(),
	}
}

func (r *Renderer) DrawRect(p1, p2 vmath.Vec2, c core.Color, filled bool) {
	x, y := float32(min(p1.X, p2.X)), float32(min(p1.Y, p2.Y))
	w, h := float32(abs(p2.X-p1.X)), float32(abs(p2.Y-p1.Y))
	if filled {
		vector.DrawFilledRect(r.dst, x, y, w, h, rgba(c), false)
		return
	}
	vector.StrokeRect(r.dst, x, y, w, h, 1, rgba(c), false)
}

func (r *Renderer) DrawLine(p1, p2 vmath.Vec2, c core.Color) {
	vector.StrokeLine(r.dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, rgba(c), true)
}

func (r *Renderer) DrawCircle(center vmath.Vec2, radius float64, c core.Color, filled bool) {
	if filled {
		vector.DrawFilledCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), rgba(c), true)
		return
	}
	vector.StrokeCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), 1, rgba(c), true)
}

func (r *Renderer) DrawPixel(p vmath.Vec2, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(p.X), float32(p.Y), 1, 1, rgba(c), false)
}

// DrawText uses the built-in debug font, which has a fixed color
func (r *Renderer) DrawText(msg string, x, y float64, align engine.Alignment, _ core.Color) {
	ebitenutil.DebugPrintAt(r.dst, msg, textLeft(msg, x, align), int(y))
}

// textLeft returns the left edge of msg anchored at x
func textLeft(msg string, x float64, align engine.Alignment) int {
	width := len([]rune(msg)) * debugGlyphWidth
	switch align {
	case engine.AlignCenter:
		return int(x) - width/2
	case engine.AlignRight:
		return int(x) - width
	}
	return int(x)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
