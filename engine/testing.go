package engine

import "github.com/lixenwraith/hydra/parameter"

// NewTestWorld creates a world with a fixed seed, default field, and silent collaborators
// This is a test helper shared by system and game package tests
func NewTestWorld() *World {
	return NewWorld(NewTestResource())
}

// NewTestResource creates resources for a 1280x720 field with a fixed seed
func NewTestResource() *Resource {
	return NewResource(ConfigResource{
		FieldWidth:  parameter.DefaultFieldWidth,
		FieldHeight: parameter.DefaultFieldHeight,
		Seed:        1,
	}, &RecordingAudio{}, &ScriptedInput{})
}

// RecordingAudio records every sample and music request
type RecordingAudio struct {
	Samples []string
	Music   []string
	Volume  float64
	Stopped bool
}

func (a *RecordingAudio) PlaySample(name string) { a.Samples = append(a.Samples, name) }

func (a *RecordingAudio) PlayRandomSample(name string, variants int) {
	a.Samples = append(a.Samples, name)
}

func (a *RecordingAudio) PlayMusic(track string) {
	a.Music = append(a.Music, track)
	a.Stopped = false
}

func (a *RecordingAudio) SetMusicVolume(volume float64) { a.Volume = volume }

func (a *RecordingAudio) StopMusic() { a.Stopped = true }

// Count returns how many times a sample was requested
func (a *RecordingAudio) Count(name string) int {
	n := 0
	for _, s := range a.Samples {
		if s == name {
			n++
		}
	}
	return n
}

// ScriptedInput serves button state set directly by tests
// Pressed entries are cleared by Step
type ScriptedInput struct {
	held    [ButtonCount]bool
	pressed [ButtonCount]bool
}

func (in *ScriptedInput) Held(b Button) bool    { return in.held[b] }
func (in *ScriptedInput) Pressed(b Button) bool { return in.pressed[b] }

// Hold sets the held state of a button
func (in *ScriptedInput) Hold(b Button, down bool) { in.held[b] = down }

// Press marks a button as pressed and held for the next frame
func (in *ScriptedInput) Press(b Button) {
	in.pressed[b] = true
	in.held[b] = true
}

// Step clears one-frame presses
func (in *ScriptedInput) Step() {
	in.pressed = [ButtonCount]bool{}
}
