package engine

import "github.com/lixenwraith/hydra/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
//
// Example:
//
//	e := engine.With(engine.With(w.NewEntity(),
//	    w.Components.Position, component.PositionComponent{P: p}),
//	    w.Components.Particle, component.ParticleComponent{}).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder around a freshly created entity
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Add(eb.entity, component)
	return eb
}

// Entity returns the entity under construction
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
