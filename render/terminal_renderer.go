package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/terminal"
	"github.com/lixenwraith/hydra/vmath"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

type textOp struct {
	msg   string
	x, y  float64
	align engine.Alignment
	color core.Color
}

// TerminalRenderer rasterizes the field into a half-block pixel grid on a tcell screen
// Each cell holds two vertically stacked pixels; text is overlaid in cell units
type TerminalRenderer struct {
	screen tcell.Screen
	mode   terminal.ColorMode
	buf    *FrameBuffer
	texts  []textOp

	fieldW, fieldH float64
	sx, sy         float64
}

// NewTerminalRenderer creates a renderer mapping a fieldW x fieldH field onto the screen
func NewTerminalRenderer(screen tcell.Screen, mode terminal.ColorMode, fieldW, fieldH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		mode:   mode,
		buf:    NewFrameBuffer(0, 0),
		fieldW: fieldW,
		fieldH: fieldH,
	}
	r.Begin()
	return r
}

// Begin starts a frame, following any terminal resize
func (r *TerminalRenderer) Begin() {
	cols, rows := r.screen.Size()
	if cols != r.buf.Width() || rows*2 != r.buf.Height() {
		r.buf.Resize(cols, rows*2)
		r.sx = float64(cols) / r.fieldW
		r.sy = float64(rows*2) / r.fieldH
	} else {
		r.buf.Clear()
	}
	r.texts = r.texts[:0]
}

// Present writes the frame to the screen and shows it
func (r *TerminalRenderer) Present() {
	cols, rows := r.buf.Width(), r.buf.Height()/2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := r.buf.At(col, row*2)
			bottom := r.buf.At(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(terminal.ToTcell(top, r.mode)).
				Background(terminal.ToTcell(bottom, r.mode))
			r.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	for _, t := range r.texts {
		r.presentText(t)
	}
	r.screen.Show()
}

func (r *TerminalRenderer) presentText(t textOp) {
	width := runewidth.StringWidth(t.msg)
	col := int(math.Floor(t.x * r.sx))
	row := int(math.Floor(t.y * r.sy / 2))
	switch t.align {
	case engine.AlignCenter:
		col -= width / 2
	case engine.AlignRight:
		col -= width
	}

	for _, ch := range t.msg {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		bg := r.buf.At(col, row*2)
		style := tcell.StyleDefault.
			Foreground(terminal.ToTcell(t.color.Blend(bg), r.mode)).
			Background(terminal.ToTcell(bg, r.mode))
		r.screen.SetContent(col, row, ch, nil, style)
		col += w
	}
}

func (r *TerminalRenderer) FieldWidth() float64  { return r.fieldW }
func (r *TerminalRenderer) FieldHeight() float64 { return r.fieldH }

// px converts a field position to pixel coordinates
func (r *TerminalRenderer) px(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

func (r *TerminalRenderer) DrawRect(p1, p2 vmath.Vec2, color core.Color, filled bool) {
	x0, y0 := r.px(p1)
	x1, y1 := r.px(p2)
	// p2 is an exclusive corner
	x1, y1 = max(x1-1, x0), max(y1-1, y0)
	if filled {
		r.buf.FillRect(x0, y0, x1, y1, color)
		return
	}
	r.buf.StrokeRect(x0, y0, x1, y1, color)
}

func (r *TerminalRenderer) DrawLine(p1, p2 vmath.Vec2, color core.Color) {
	x0, y0 := r.px(p1)
	x1, y1 := r.px(p2)
	r.buf.Line(x0, y0, x1, y1, color)
}

func (r *TerminalRenderer) DrawCircle(center vmath.Vec2, radius float64, color core.Color, filled bool) {
	cx, cy := r.px(center)
	rx := int(math.Round(radius * r.sx))
	ry := int(math.Round(radius * r.sy))
	r.buf.Circle(cx, cy, rx, ry, color, filled)
}

func (r *TerminalRenderer) DrawPixel(p vmath.Vec2, color core.Color) {
	x, y := r.px(p)
	r.buf.Set(x, y, color)
}

// DrawText queues text for Present; text always lands on top of pixels
func (r *TerminalRenderer) DrawText(msg string, x, y float64, align engine.Alignment, color core.Color) {
	r.texts = append(r.texts, textOp{msg: msg, x: x, y: y, align: align, color: color})
}
