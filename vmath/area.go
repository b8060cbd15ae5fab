package vmath

// Rect is an axis-aligned box; edges are exclusive for containment and overlap
type Rect struct {
	Left, Top, Right, Bottom float64
}

// FieldRect returns the box spanning (0,0) to (width,height)
func FieldRect(width, height float64) Rect {
	return Rect{Right: width, Bottom: height}
}

func (r Rect) X() float64      { return r.Left }
func (r Rect) Y() float64      { return r.Top }
func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Center returns the midpoint of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Intersects reports strict overlap with other
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left && r.Top < other.Bottom && r.Bottom > other.Top
}

// Contains reports whether p lies strictly inside the box
func (r Rect) Contains(p Vec2) bool {
	return r.Left < p.X && r.Right > p.X && r.Top < p.Y && r.Bottom > p.Y
}

// Outside reports whether p lies beyond the box edges; points on an edge are inside
func (r Rect) Outside(p Vec2) bool {
	return p.X < r.Left || p.X > r.Right || p.Y < r.Top || p.Y > r.Bottom
}
