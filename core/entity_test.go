package core

import "testing"

func TestEntityPacking(t *testing.T) {
	tests := []struct {
		index, generation uint32
	}{
		{0, 1},
		{1, 1},
		{42, 7},
		{0xffffffff, 0xffffffff},
	}

	for _, tt := range tests {
		e := NewEntity(tt.index, tt.generation)
		if e.Index() != tt.index {
			t.Errorf("Expected index %d, got %d", tt.index, e.Index())
		}
		if e.Generation() != tt.generation {
			t.Errorf("Expected generation %d, got %d", tt.generation, e.Generation())
		}
		if e.IsNull() {
			t.Errorf("Entity %d/%d should not be null", tt.index, tt.generation)
		}
	}

	var zero Entity
	if !zero.IsNull() {
		t.Error("Zero entity should be null")
	}
}
