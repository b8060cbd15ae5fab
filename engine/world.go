package engine

import (
	"reflect"

	"github.com/lixenwraith/hydra/core"
)

// System is a per-frame behavior over the world
type System interface {
	// Init resets session state for a new game
	Init()
	// Name identifies the system in logs and the debug overlay
	Name() string
	// Priority orders execution; lower values run first
	Priority() int
	// Update runs one frame using Resource.Time.Delta
	Update()
}

// World contains all entities, their typed component stores, and the frame's systems
// It is single-threaded: Update runs every system to completion before returning
type World struct {
	generations []uint32 // current generation per slot
	alive       []bool
	free        []uint32
	count       int

	stores    map[reflect.Type]AnyStore
	storeList []AnyStore // registration order, used for destruction

	Resource   *Resource
	Components ComponentStore

	systems []System
}

// NewWorld creates a world with all known component stores and the given resources
func NewWorld(res *Resource) *World {
	w := &World{
		stores:   make(map[reflect.Type]AnyStore),
		Resource: res,
		systems:  make([]System, 0),
	}
	initComponentStores(w)
	return w
}

// CreateEntity allocates an entity, reusing a freed slot under its bumped generation
func (w *World) CreateEntity() core.Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.count++
	return core.NewEntity(idx, w.generations[idx])
}

// Alive reports whether e refers to a live entity of the current generation
func (w *World) Alive(e core.Entity) bool {
	if e.IsNull() {
		return false
	}
	idx := e.Index()
	return int(idx) < len(w.generations) && w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes every component of e and frees its slot under a new generation
// Destroying a stale or dead handle is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	for _, s := range w.storeList {
		s.Remove(e)
	}
	idx := e.Index()
	w.alive[idx] = false
	w.generations[idx]++
	if w.generations[idx] == 0 {
		w.generations[idx] = 1
	}
	w.free = append(w.free, idx)
	w.count--
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.count
}

// Clear destroys all entities and components; generations are kept so old handles stay stale
func (w *World) Clear() {
	for _, s := range w.storeList {
		s.Clear()
	}
	for idx, live := range w.alive {
		if live {
			w.alive[idx] = false
			w.generations[idx]++
			if w.generations[idx] == 0 {
				w.generations[idx] = 1
			}
			w.free = append(w.free, uint32(idx))
		}
	}
	w.count = 0
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N, stable)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Init resets every system for a new game
func (w *World) Init() {
	for _, s := range w.systems {
		s.Init()
	}
}

// Update advances the frame clock by dt seconds and runs all systems sequentially
func (w *World) Update(dt float64) {
	w.Resource.Time.Advance(dt)
	for _, s := range w.systems {
		s.Update()
	}
}

// GetStore returns the store for T, registering it on first use
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.storeList = append(w.storeList, s)
	return s
}
