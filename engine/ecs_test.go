package engine

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/core"
)

func TestEntityGenerations(t *testing.T) {
	w := NewTestWorld()

	e1 := w.CreateEntity()
	if e1.IsNull() {
		t.Fatal("Created entity must not be null")
	}
	if e1.Generation() != 1 {
		t.Errorf("Expected generation 1, got %d", e1.Generation())
	}

	w.DestroyEntity(e1)
	if w.Alive(e1) {
		t.Error("Destroyed entity should not be alive")
	}

	e2 := w.CreateEntity()
	if e2.Index() != e1.Index() {
		t.Errorf("Expected slot reuse, got index %d", e2.Index())
	}
	if e2.Generation() != 2 {
		t.Errorf("Expected generation 2, got %d", e2.Generation())
	}
	if e2 == e1 {
		t.Error("Reused slot must yield a distinct handle")
	}
	if w.Alive(e1) || !w.Alive(e2) {
		t.Error("Only the new generation should be alive")
	}
	if w.Alive(core.Entity(0)) {
		t.Error("Null entity should never be alive")
	}
}

func TestDestroyRemovesAllComponents(t *testing.T) {
	w := NewTestWorld()
	c := w.Components

	e := w.CreateEntity()
	c.Position.Add(e, component.PositionComponent{})
	c.Health.Add(e, component.HealthComponent{Value: 3})
	c.Collidable.Add(e, component.CollidableComponent{})

	w.DestroyEntity(e)
	if c.Position.Has(e) || c.Health.Has(e) || c.Collidable.Has(e) {
		t.Error("Destroy should strip every component")
	}
	if w.Count() != 0 {
		t.Errorf("Expected 0 live entities, got %d", w.Count())
	}

	// Double destroy is a no-op
	w.DestroyEntity(e)
	if w.Count() != 0 {
		t.Errorf("Double destroy changed count to %d", w.Count())
	}
}

func TestStaleHandleLookup(t *testing.T) {
	w := NewTestWorld()
	c := w.Components

	old := w.CreateEntity()
	c.Health.Add(old, component.HealthComponent{Value: 1})
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	c.Health.Add(fresh, component.HealthComponent{Value: 9})

	if _, ok := c.Health.Get(old); ok {
		t.Error("Stale handle must not resolve to the new occupant")
	}
	if h, ok := c.Health.Get(fresh); !ok || h.Value != 9 {
		t.Errorf("Expected fresh health 9, got %v %v", h, ok)
	}
}

func TestStorePointerStability(t *testing.T) {
	w := NewTestWorld()
	s := w.Components.Health

	first := w.CreateEntity()
	ptr := s.Add(first, component.HealthComponent{Value: 5})

	for i := 0; i < 200; i++ {
		s.Add(w.CreateEntity(), component.HealthComponent{Value: i})
	}
	ptr.Value--

	got, _ := s.Get(first)
	if got != ptr || got.Value != 4 {
		t.Errorf("Pointer moved or lost write: %p vs %p value %d", got, ptr, got.Value)
	}

	// Replace keeps the same pointer
	replaced := s.Add(first, component.HealthComponent{Value: 7})
	if replaced != ptr || ptr.Value != 7 {
		t.Error("Add on an existing entity should replace in place")
	}
}

func TestStoreRemoveKeepsOrder(t *testing.T) {
	w := NewTestWorld()
	s := w.Components.Particle

	ents := make([]core.Entity, 5)
	for i := range ents {
		ents[i] = w.CreateEntity()
		s.Add(ents[i], component.ParticleComponent{})
	}
	s.Remove(ents[1])
	s.Remove(ents[3])

	all := s.All()
	want := []core.Entity{ents[0], ents[2], ents[4]}
	if len(all) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], all[i])
		}
		if !s.Has(want[i]) {
			t.Errorf("Entity %v lost after reindex", want[i])
		}
	}

	s.Clear()
	if s.Count() != 0 || s.Has(ents[0]) {
		t.Error("Clear should empty the store")
	}
}

func TestMustGetPanics(t *testing.T) {
	w := NewTestWorld()
	e := w.CreateEntity()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic on missing component")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected error panic, got %T", r)
		}
		if errors.Cause(err) != ErrMissingComponent {
			t.Errorf("Expected ErrMissingComponent, got %v", err)
		}
	}()

	w.Components.Health.MustGet(e)
}

func TestGetStoreAdHoc(t *testing.T) {
	type marker struct{ N int }
	w := NewTestWorld()

	s1 := GetStore[marker](w)
	s2 := GetStore[marker](w)
	if s1 != s2 {
		t.Fatal("GetStore should return the registered store")
	}

	e := w.CreateEntity()
	s1.Add(e, marker{N: 1})
	w.DestroyEntity(e)
	if s1.Has(e) {
		t.Error("Ad-hoc stores should be stripped on destroy")
	}
}

type orderSystem struct {
	name     string
	priority int
	log      *[]string
	inits    int
}

func (s *orderSystem) Init()         { s.inits++ }
func (s *orderSystem) Name() string  { return s.name }
func (s *orderSystem) Priority() int { return s.priority }
func (s *orderSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestSystemOrder(t *testing.T) {
	w := NewTestWorld()
	var log []string

	w.AddSystem(&orderSystem{name: "c", priority: 30, log: &log})
	w.AddSystem(&orderSystem{name: "a", priority: 10, log: &log})
	w.AddSystem(&orderSystem{name: "b", priority: 20, log: &log})

	w.Update(0.5)

	want := []string{"a", "b", "c"}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, log)
			break
		}
	}
	if w.Resource.Time.Delta != 0.5 || w.Resource.Time.FrameNumber != 1 {
		t.Errorf("Clock not advanced: %+v", w.Resource.Time)
	}

	w.Init()
	for _, s := range w.Systems() {
		if s.(*orderSystem).inits != 1 {
			t.Errorf("System %s not initialized", s.Name())
		}
	}
}

func TestClearInvalidatesHandles(t *testing.T) {
	w := NewTestWorld()
	e := w.CreateEntity()
	w.Components.Position.Add(e, component.PositionComponent{})

	w.Clear()
	if w.Alive(e) || w.Count() != 0 {
		t.Error("Clear should kill every entity")
	}
	e2 := w.CreateEntity()
	if e2 == e {
		t.Error("Handles from before Clear must not be reissued")
	}
}
