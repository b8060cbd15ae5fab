package engine

import (
	"testing"

	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/vmath"
)

func TestEntityBuilder(t *testing.T) {
	w := NewTestWorld()
	c := w.Components

	e := With(With(w.NewEntity(),
		c.Position, component.PositionComponent{P: vmath.Vec2{X: 3, Y: 4}}),
		c.Health, component.HealthComponent{Value: 2}).
		Build()

	if !w.Alive(e) {
		t.Fatal("Built entity should be alive")
	}
	if pos := c.Position.MustGet(e); pos.P.X != 3 || pos.P.Y != 4 {
		t.Errorf("Unexpected position %v", pos.P)
	}
	if c.Health.MustGet(e).Value != 2 {
		t.Error("Health not attached")
	}
}

func TestEntityBuilder_PanicAfterBuild(t *testing.T) {
	w := NewTestWorld()
	eb := w.NewEntity()
	eb.Build()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when adding after Build()")
		}
	}()
	With(eb, w.Components.Particle, component.ParticleComponent{})
}
