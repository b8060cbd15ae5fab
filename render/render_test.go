package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/terminal"
	"github.com/lixenwraith/hydra/vmath"
)

var _ engine.Renderer = (*TerminalRenderer)(nil)

func countLit(b *FrameBuffer) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != core.ColorBlack {
				n++
			}
		}
	}
	return n
}

func TestFrameBufferBlend(t *testing.T) {
	b := NewFrameBuffer(4, 4)
	b.Set(1, 1, core.ColorWhite.WithOpacity(0.5))

	got := b.At(1, 1)
	if got.R() < 126 || got.R() > 129 || got.A() != 0xff {
		t.Errorf("Expected opaque mid gray, got %08x", uint32(got))
	}

	b.Set(-1, 0, core.ColorWhite)
	b.Set(4, 4, core.ColorWhite)
	if countLit(b) != 1 {
		t.Error("Out of bounds writes should be dropped")
	}

	b.Clear()
	if countLit(b) != 0 {
		t.Error("Clear should reset every pixel")
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 0, 0, 9, 0, 10},
		{"vertical reversed", 3, 9, 3, 0, 10},
		{"diagonal", 0, 0, 5, 5, 6},
		{"single point", 2, 2, 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFrameBuffer(10, 10)
			b.Line(tt.x0, tt.y0, tt.x1, tt.y1, core.ColorWhite)
			if got := countLit(b); got != tt.want {
				t.Errorf("Expected %d pixels, got %d", tt.want, got)
			}
			if b.At(tt.x0, tt.y0) != core.ColorWhite || b.At(tt.x1, tt.y1) != core.ColorWhite {
				t.Error("Endpoints should be drawn")
			}
		})
	}
}

func TestStrokeRectBlendsOnce(t *testing.T) {
	b := NewFrameBuffer(10, 10)
	half := core.ColorWhite.WithOpacity(0.5)
	b.StrokeRect(1, 1, 5, 4, half)

	if got := countLit(b); got != 2*5+2*2 {
		t.Errorf("Expected 14 outline pixels, got %d", got)
	}
	if b.At(1, 1) != b.At(3, 1) || b.At(1, 1) != b.At(5, 4) {
		t.Error("Corners should blend exactly once")
	}
	if b.At(3, 2) != core.ColorBlack {
		t.Error("Interior should stay empty")
	}
}

func TestCircle(t *testing.T) {
	filled := NewFrameBuffer(21, 21)
	filled.Circle(10, 10, 5, 5, core.ColorWhite, true)

	outline := NewFrameBuffer(21, 21)
	outline.Circle(10, 10, 5, 5, core.ColorWhite, false)

	if filled.At(10, 10) != core.ColorWhite {
		t.Error("Filled circle should cover its center")
	}
	if outline.At(10, 10) != core.ColorBlack {
		t.Error("Outline should leave the center empty")
	}
	for _, p := range [][2]int{{5, 10}, {15, 10}, {10, 5}, {10, 15}} {
		if outline.At(p[0], p[1]) != core.ColorWhite {
			t.Errorf("Outline should pass through %v", p)
		}
	}
	if filled.At(16, 10) != core.ColorBlack || filled.At(10, 16) != core.ColorBlack {
		t.Error("Circle should stay inside its radius")
	}
	if countLit(outline) >= countLit(filled) {
		t.Error("Outline should light fewer pixels than the disc")
	}
}

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalRendererHalfBlocks(t *testing.T) {
	s := newScreen(t, 64, 18)
	r := NewTerminalRenderer(s, terminal.ColorModeTrueColor, 1280, 720)

	// Top half of the field: 18 pixel rows, 9 cell rows
	r.DrawRect(vmath.Vec2{}, vmath.Vec2{X: 1280, Y: 360}, core.ColorWhite, true)
	r.Present()

	white := tcell.NewRGBColor(255, 255, 255)
	black := tcell.NewRGBColor(0, 0, 0)

	tests := []struct {
		col, row int
		fg, bg   tcell.Color
	}{
		{0, 0, white, white},
		{63, 8, white, white},
		{0, 9, black, black},
	}
	for _, tt := range tests {
		ch, _, style, _ := s.GetContent(tt.col, tt.row)
		fg, bg, _ := style.Decompose()
		if ch != halfBlock || fg != tt.fg || bg != tt.bg {
			t.Errorf("Cell (%d,%d) = %q fg %v bg %v", tt.col, tt.row, ch, fg, bg)
		}
	}
}

func TestTerminalRendererSplitsCell(t *testing.T) {
	s := newScreen(t, 64, 18)
	r := NewTerminalRenderer(s, terminal.ColorModeTrueColor, 1280, 720)

	// Field y=20 is pixel row 1: the bottom half of cell row 0
	r.DrawPixel(vmath.Vec2{X: 0, Y: 20}, core.ColorWhite)
	r.Present()

	_, _, style, _ := s.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) || bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("Expected black top and white bottom, got fg %v bg %v", fg, bg)
	}
}

func TestTerminalRendererText(t *testing.T) {
	s := newScreen(t, 64, 18)
	r := NewTerminalRenderer(s, terminal.ColorModeTrueColor, 1280, 720)

	r.DrawText("Hi", 640, 360, engine.AlignCenter, core.ColorWhite)
	r.DrawText("end", 1280, 0, engine.AlignRight, core.ColorWhite)
	r.Present()

	tests := []struct {
		col, row int
		want     rune
	}{
		{31, 9, 'H'},
		{32, 9, 'i'},
		{61, 0, 'e'},
		{63, 0, 'd'},
	}
	for _, tt := range tests {
		if ch, _, _, _ := s.GetContent(tt.col, tt.row); ch != tt.want {
			t.Errorf("Cell (%d,%d) = %q, want %q", tt.col, tt.row, ch, tt.want)
		}
	}
}

func TestTerminalRendererFollowsResize(t *testing.T) {
	s := newScreen(t, 64, 18)
	r := NewTerminalRenderer(s, terminal.ColorMode256, 1280, 720)

	s.SetSize(32, 9)
	r.Begin()
	if r.buf.Width() != 32 || r.buf.Height() != 18 {
		t.Fatalf("Expected 32x18 pixels, got %dx%d", r.buf.Width(), r.buf.Height())
	}

	r.DrawRect(vmath.Vec2{}, vmath.Vec2{X: 1280, Y: 720}, core.ColorWhite, true)
	if got := countLit(r.buf); got != 32*18 {
		t.Errorf("Full-field rect should cover every pixel, got %d", got)
	}
}
