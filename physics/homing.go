package physics

import "github.com/lixenwraith/hydra/vmath"

// Slew turns angle toward target by at most rate*dt radians
// There is no shortest-path wrap: a target just past pi away turns the long way
func Slew(angle, target, rate, dt float64) float64 {
	step := rate * dt
	return angle + vmath.Clamp(target-angle, -step, step)
}

// Bearing returns the heading from one point toward another
func Bearing(from, to vmath.Vec2) float64 {
	return to.Sub(from).Angle()
}

// FlockWeights holds the boid rule coefficients
type FlockWeights struct {
	Cohesion  float64
	Avoidance float64
	Alignment float64
}

// Flock tracks neighbor sums for one boid during a scan
type Flock struct {
	Count  int
	Center vmath.Vec2
	Align  vmath.Vec2
	Avoid  vmath.Vec2
}

// AddNeighbor accumulates a visible flock mate
func (f *Flock) AddNeighbor(pos, vel vmath.Vec2) {
	f.Count++
	f.Center = f.Center.Add(pos)
	f.Align = f.Align.Add(vel)
}

// AddObstacle accumulates repulsion away from an obstacle
func (f *Flock) AddObstacle(self, obstacle vmath.Vec2) {
	f.Avoid = f.Avoid.Add(self.Sub(obstacle))
}

// Heading combines the rules into a desired heading for a boid at self moving with vel
// ok is false when no neighbors were seen and the caller should fall back to another target
func (f *Flock) Heading(self, vel vmath.Vec2, w FlockWeights) (heading float64, ok bool) {
	if f.Count == 0 {
		return 0, false
	}
	center := f.Center.Div(float64(f.Count))
	align := f.Align.Div(float64(f.Count))

	delta := center.Sub(self).Scale(w.Cohesion).
		Add(f.Avoid.Scale(w.Avoidance)).
		Add(align.Scale(w.Alignment))
	return vel.Add(delta).Angle(), true
}
