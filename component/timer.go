package component

// TimerComponent counts elapsed seconds toward Lifetime
// When Expire is set the entity is destroyed once Elapsed exceeds Lifetime
type TimerComponent struct {
	Lifetime float64
	Elapsed  float64
	Expire   bool
}

// Ratio returns progress through the lifetime, unclamped
func (t *TimerComponent) Ratio() float64 {
	if t.Lifetime <= 0 {
		return 1
	}
	return t.Elapsed / t.Lifetime
}

// Expired reports whether the timer should destroy its entity
func (t *TimerComponent) Expired() bool {
	return t.Expire && t.Elapsed > t.Lifetime
}
