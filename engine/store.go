package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/hydra/core"
)

// Store is a sparse set container for component type T
// Components are heap allocated so pointers stay valid until removal
type Store[T any] struct {
	sparse   []int32 // entity index -> dense position + 1, 0 when absent
	dense    []*T
	entities []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		dense:    make([]*T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// lookup returns the dense position of e, validating generation
func (s *Store[T]) lookup(e core.Entity) (int, bool) {
	idx := e.Index()
	if e.IsNull() || int(idx) >= len(s.sparse) {
		return 0, false
	}
	pos := int(s.sparse[idx]) - 1
	if pos < 0 || s.entities[pos] != e {
		return 0, false
	}
	return pos, true
}

// Add inserts or replaces the component for an entity and returns a stable pointer to it
func (s *Store[T]) Add(e core.Entity, val T) *T {
	if pos, ok := s.lookup(e); ok {
		*s.dense[pos] = val
		return s.dense[pos]
	}

	idx := int(e.Index())
	if idx >= len(s.sparse) {
		grown := make([]int32, idx+1, max(idx+1, 2*len(s.sparse)))
		copy(grown, s.sparse)
		s.sparse = grown[:cap(grown)]
	}

	// A stale generation still occupying the slot is replaced
	if pos := int(s.sparse[idx]) - 1; pos >= 0 {
		s.removeAt(pos)
	}

	ptr := new(T)
	*ptr = val
	s.dense = append(s.dense, ptr)
	s.entities = append(s.entities, e)
	s.sparse[idx] = int32(len(s.dense))
	return ptr
}

// Get retrieves a pointer to the component for an entity
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	pos, ok := s.lookup(e)
	if !ok {
		return nil, false
	}
	return s.dense[pos], true
}

// MustGet retrieves the component or panics with ErrMissingComponent
func (s *Store[T]) MustGet(e core.Entity) *T {
	if ptr, ok := s.Get(e); ok {
		return ptr
	}
	panic(errors.Wrapf(ErrMissingComponent, "%T on entity %d:%d", *new(T), e.Index(), e.Generation()))
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.lookup(e)
	return ok
}

// Remove deletes the component from an entity, keeping insertion order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	if pos, ok := s.lookup(e); ok {
		s.removeAt(pos)
	}
}

func (s *Store[T]) removeAt(pos int) {
	s.sparse[s.entities[pos].Index()] = 0

	copy(s.dense[pos:], s.dense[pos+1:])
	s.dense[len(s.dense)-1] = nil
	s.dense = s.dense[:len(s.dense)-1]

	copy(s.entities[pos:], s.entities[pos+1:])
	s.entities = s.entities[:len(s.entities)-1]

	for i := pos; i < len(s.entities); i++ {
		s.sparse[s.entities[i].Index()] = int32(i + 1)
	}
}

// All returns a snapshot of entities with this component in insertion order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.sparse)
	clear(s.dense)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
}
