package core

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is packed 8-bit-per-channel RGBA: 0xRRGGBBAA
type Color uint32

// Predefined colors
const (
	ColorBlack   Color = 0x000000ff
	ColorWhite   Color = 0xffffffff
	ColorPlayer  Color = 0xd8ff00ff
	ColorHurt    Color = 0x77000033
	ColorPauseBg Color = 0x00000099
	ColorBomb    Color = 0xff8800ff
	ColorBlast   Color = 0xffcc66ff
	ColorFade    Color = 0x000000cc
)

// RGBA builds a packed color from channels
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// HSL converts hue [0,360), saturation and lightness [0,1] to an opaque color
func HSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s, l).Clamped()
	r, g, b := c.RGB255()
	return RGBA(r, g, b, 0xff)
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel
func (c Color) A() uint8 { return uint8(c) }

// WithOpacity scales the alpha channel by opacity, clamped to [0,1]
func (c Color) WithOpacity(opacity float64) Color {
	opacity = math.Max(0, math.Min(1, opacity))
	a := uint32(float64(c.A()) * opacity)
	return Color(uint32(c)&0xffffff00 | a)
}

// Blend composites c over dst using c's alpha: result = c*alpha + dst*(1-alpha)
// The result is opaque
func (c Color) Blend(dst Color) Color {
	alpha := float64(c.A()) / 255
	if alpha <= 0 {
		return dst | 0xff
	}
	if alpha >= 1 {
		return c
	}
	src := colorful.Color{R: float64(c.R()) / 255, G: float64(c.G()) / 255, B: float64(c.B()) / 255}
	under := colorful.Color{R: float64(dst.R()) / 255, G: float64(dst.G()) / 255, B: float64(dst.B()) / 255}
	r, g, b := under.BlendRgb(src, alpha).Clamped().RGB255()
	return RGBA(r, g, b, 0xff)
}
