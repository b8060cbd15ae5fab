package component

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/vmath"
)

// ShapeComponent is a closed polygon in entity-local, unrotated coordinates
type ShapeComponent struct {
	Polygon vmath.Polygon
}

// ColorComponent is the draw color
type ColorComponent struct {
	Color core.Color
}

// SizeComponent is the asteroid base radius
type SizeComponent struct {
	Value float64
}

// ParticleComponent marks a single-pixel explosion fragment
type ParticleComponent struct{}

// FadeOverlayComponent draws a full-field tint whose opacity grows with timer ratio
type FadeOverlayComponent struct{}

// FlashOverlayComponent draws a full-field tint whose opacity shrinks with timer ratio
type FlashOverlayComponent struct{}
