package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hydra/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a -color flag value; "auto" defers to DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	}
	return ColorMode256, errors.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

const grayscaleStart = 232

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate
// Coordinates above 5 are clamped
func Cube256(r, g, b uint8) uint8 {
	return 16 + 36*min(r, 5) + 6*min(g, 5) + min(b, 5)
}

func cubeLevel(v uint8) uint8 {
	best := 0
	for j := 1; j < len(cubeValues); j++ {
		if abs(int(v)-cubeValues[j]) < abs(int(v)-cubeValues[best]) {
			best = j
		}
	}
	return uint8(best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Nearest256 finds the closest palette index, preferring the gray ramp for near-neutral colors
func Nearest256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)
	cube := Cube256(cr, cg, cb)

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 || gray < 4 || gray > 243 {
		return cube
	}

	// Ramp levels are 8, 18, ..., 238
	step := min(max((gray-3)/10, 0), 23)
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-cubeValues[cr]) + abs(int(g)-cubeValues[cg]) + abs(int(b)-cubeValues[cb])
	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}

// ToTcell converts a packed color for the given mode, ignoring alpha
func ToTcell(c core.Color, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
	}
	return tcell.PaletteColor(int(Nearest256(c.R(), c.G(), c.B())))
}
