package vmath

// Polygon is an ordered, closed loop of points: the last point equals the first
// Shapes attached to entities hold entity-local, un-rotated points
type Polygon struct {
	Points []Vec2
}

// NewPolygon builds a closed polygon, appending the first point if the loop is open
func NewPolygon(points ...Vec2) Polygon {
	if len(points) == 0 {
		return Polygon{}
	}
	pts := make([]Vec2, len(points), len(points)+1)
	copy(pts, points)
	if pts[len(pts)-1] != pts[0] {
		pts = append(pts, pts[0])
	}
	return Polygon{Points: pts}
}

// Edges returns the number of edge segments
func (p Polygon) Edges() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// Translate rotates every local point by rotation around the local origin and re-centers it at offset
// Each point is re-expressed as radius and angle so that rotation preserves its distance from the origin
func (p Polygon) Translate(offset Vec2, rotation float64) Polygon {
	if len(p.Points) == 0 {
		return Polygon{}
	}
	pts := make([]Vec2, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = Polar(pt.Mag(), pt.Angle()+rotation).Add(offset)
	}
	// keep the loop closed
	pts[len(pts)-1] = pts[0]
	return Polygon{Points: pts}
}

// Intersect reports whether any edge of p crosses any edge of other
// Cost is O(edges(p) * edges(other)); there is no bounding-box pre-filter
func (p Polygon) Intersect(other Polygon) bool {
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		for j := 1; j < len(other.Points); j++ {
			if SegmentsIntersect(a, b, other.Points[j-1], other.Points[j]) {
				return true
			}
		}
	}
	return false
}

// Contains tests pt by casting a ray RayLength units to the right and counting edge crossings
// An odd count means inside. Edges are half-open in y, so a ray through a vertex counts once
func (p Polygon) Contains(pt Vec2) bool {
	crossings := 0
	for i := 1; i < len(p.Points); i++ {
		if RayCrosses(pt, p.Points[i-1], p.Points[i]) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Bounds returns the axis-aligned box enclosing all points
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{Left: p.Points[0].X, Right: p.Points[0].X, Top: p.Points[0].Y, Bottom: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		r.Left = min(r.Left, pt.X)
		r.Right = max(r.Right, pt.X)
		r.Top = min(r.Top, pt.Y)
		r.Bottom = max(r.Bottom, pt.Y)
	}
	return r
}
