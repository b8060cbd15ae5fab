package vmath

// RayLength is the x-offset of the far end of the containment ray
const RayLength = 100000.0

// orientation returns the turn direction of the ordered triple (p, q, r): -1, 0 (collinear) or 1
func orientation(p, q, r Vec2) int {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if v == 0 {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}

// SegmentsIntersect reports a proper crossing of segments pq and rs
// Any collinear triple (orientation 0) counts as non-crossing, so touching
// endpoints, overlapping collinear edges and zero-length edges never intersect
func SegmentsIntersect(p, q, r, s Vec2) bool {
	o1 := orientation(p, q, r)
	o2 := orientation(p, q, s)
	o3 := orientation(r, s, p)
	o4 := orientation(r, s, q)
	if o1 == 0 || o2 == 0 || o3 == 0 || o4 == 0 {
		return false
	}
	return o1 != o2 && o3 != o4
}

// RayCrosses reports whether the ray from p to p + (RayLength, 0) crosses edge ab
// The edge owns its lower endpoint only; horizontal edges never cross
func RayCrosses(p, a, b Vec2) bool {
	if (a.Y > p.Y) == (b.Y > p.Y) {
		return false
	}
	x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
	return x > p.X && x <= p.X+RayLength
}
