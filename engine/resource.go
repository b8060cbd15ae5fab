package engine

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/status"
	"github.com/lixenwraith/hydra/vmath"
)

// Resource holds singleton simulation resources, shared by all systems through World.Resource
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Game   *GameState

	// Telemetry
	Status *status.Registry

	// Collaborators
	Audio *AudioResource
	Input *InputResource
}

// NewResource bundles a fresh run for the given field and collaborators
func NewResource(cfg ConfigResource, audio AudioPlayer, input InputProvider) *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Config: &cfg,
		Game:   NewGameState(cfg.Seed),
		Status: status.NewRegistry(),
		Audio:  &AudioResource{Player: audio},
		Input:  &InputResource{Provider: input},
	}
}

// === World Resources ===

// TimeResource holds the frame clock in seconds
type TimeResource struct {
	// Delta is the duration of the current frame
	Delta float64

	// Elapsed is the total simulated time, including paused frames
	Elapsed float64

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Advance moves the clock to the next frame
func (tr *TimeResource) Advance(dt float64) {
	tr.Delta = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// ConfigResource holds the read-only field configuration
type ConfigResource struct {
	FieldWidth  float64
	FieldHeight float64

	// Seed for the simulation RNG; zero draws one from the runtime
	Seed uint64
}

// Field returns the visible field box
func (cr *ConfigResource) Field() vmath.Rect {
	return vmath.FieldRect(cr.FieldWidth, cr.FieldHeight)
}

// Center returns the middle of the field
func (cr *ConfigResource) Center() vmath.Vec2 {
	return vmath.Vec2{X: cr.FieldWidth / 2, Y: cr.FieldHeight / 2}
}

// === Collaborator Resources ===

// AudioPlayer is the fire-and-forget audio interface used by systems
type AudioPlayer interface {
	PlaySample(name string)
	PlayRandomSample(name string, variants int)
	PlayMusic(track string)
	SetMusicVolume(volume float64)
	StopMusic()
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// Button is one of the fixed input buttons
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonFire
	ButtonBomb
	ButtonStart

	ButtonCount
)

var buttonNames = [ButtonCount]string{"up", "down", "left", "right", "fire", "bomb", "start"}

// String returns the button name
func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// InputProvider exposes the button state polled once per frame
type InputProvider interface {
	// Held reports whether the button is currently down
	Held(b Button) bool
	// Pressed reports whether the button went down this frame
	Pressed(b Button) bool
}

// InputResource wraps the input provider interface
type InputResource struct {
	Provider InputProvider
}

// Alignment positions text relative to its anchor
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Renderer accepts draw requests in field coordinates with 0xRRGGBBAA colors, alpha blended
type Renderer interface {
	FieldWidth() float64
	FieldHeight() float64
	DrawRect(p1, p2 vmath.Vec2, color core.Color, filled bool)
	DrawLine(p1, p2 vmath.Vec2, color core.Color)
	DrawCircle(center vmath.Vec2, radius float64, color core.Color, filled bool)
	DrawPixel(p vmath.Vec2, color core.Color)
	DrawText(msg string, x, y float64, align Alignment, color core.Color)
}
