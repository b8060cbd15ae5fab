package render

import "github.com/lixenwraith/hydra/core"

// FrameBuffer is an opaque pixel grid; drawing blends source alpha over what is there
type FrameBuffer struct {
	pixels []core.Color
	width  int
	height int
}

// NewFrameBuffer creates a black buffer with the specified dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.pixels) < size {
		b.pixels = make([]core.Color, size)
	} else {
		b.pixels = b.pixels[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every pixel to black using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = core.ColorBlack
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

func (b *FrameBuffer) Width() int  { return b.width }
func (b *FrameBuffer) Height() int { return b.height }

func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y); out of bounds reads black
func (b *FrameBuffer) At(x, y int) core.Color {
	if !b.inBounds(x, y) {
		return core.ColorBlack
	}
	return b.pixels[y*b.width+x]
}

// Set blends c over the pixel at (x, y); out of bounds writes are dropped
func (b *FrameBuffer) Set(x, y int, c core.Color) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	b.pixels[i] = c.Blend(b.pixels[i])
}
