package render

import (
	"math"

	"github.com/lixenwraith/hydra/core"
)

// FillRect blends c over the inclusive rectangle spanned by two corners
func (b *FrameBuffer) FillRect(x0, y0, x1, y1 int, c core.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.Set(x, y, c)
		}
	}
}

// StrokeRect outlines the rectangle without blending any pixel twice
func (b *FrameBuffer) StrokeRect(x0, y0, x1, y1 int, c core.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		b.Set(x, y0, c)
		if y1 != y0 {
			b.Set(x, y1, c)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		b.Set(x0, y, c)
		if x1 != x0 {
			b.Set(x1, y, c)
		}
	}
}

// Line draws a Bresenham line including both endpoints
func (b *FrameBuffer) Line(x0, y0, x1, y1 int, c core.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws an ellipse with radii rx, ry around (cx, cy)
// Radii differ when field units are not square in pixels
func (b *FrameBuffer) Circle(cx, cy, rx, ry int, c core.Color, filled bool) {
	if rx <= 0 || ry <= 0 {
		b.Set(cx, cy, c)
		return
	}

	// Per-row half widths of the ellipse
	rx2, ry2 := float64(rx*rx), float64(ry*ry)
	prev := -1
	for dy := -ry; dy <= ry; dy++ {
		t := 1 - float64(dy*dy)/ry2
		half := int(math.Sqrt(t*rx2) + 0.5)
		y := cy + dy

		if filled {
			for x := cx - half; x <= cx+half; x++ {
				b.Set(x, y, c)
			}
			continue
		}

		// Outline: span between this row's edge and the neighbor rows' edges
		next := 0
		if dy < ry {
			nt := 1 - float64((dy+1)*(dy+1))/ry2
			next = int(math.Sqrt(nt*rx2) + 0.5)
		}
		inner := half
		if prev >= 0 {
			inner = min(inner, prev+1)
		}
		if dy < ry {
			inner = min(inner, next+1)
		}
		inner = max(inner, 0)
		for x := inner; x <= half; x++ {
			b.Set(cx-x, y, c)
			if x != 0 {
				b.Set(cx+x, y, c)
			}
		}
		prev = half
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
