package engine

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: w.Components,
	}
}

// Halted reports whether gameplay systems should skip this frame
func (b *SystemBase) Halted() bool {
	return b.Resource.Game.Halted
}

// Delta returns the frame delta in seconds
func (b *SystemBase) Delta() float64 {
	return b.Resource.Time.Delta
}
