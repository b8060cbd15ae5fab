package engine

import "github.com/lixenwraith/hydra/core"

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip every component on destruction without knowing concrete types
type AnyStore interface {
	// Remove deletes the component from an entity
	Remove(e core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}

// QueryableStore extends AnyStore with the enumeration needed by QueryBuilder
type QueryableStore interface {
	AnyStore

	// All returns a snapshot of entities holding this component, in insertion order
	All() []core.Entity
}
