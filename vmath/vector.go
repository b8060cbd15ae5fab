package vmath

import "math"

// Vec2 is a 2D float vector in field units
type Vec2 struct {
	X, Y float64
}

// Polar returns the vector of length r at angle theta (radians)
func Polar(r, theta float64) Vec2 {
	return Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Div divides both components by n, zero-safe (returns zero vector)
func (a Vec2) Div(n float64) Vec2 {
	if n == 0 {
		return Vec2{}
	}
	return Vec2{a.X / n, a.Y / n}
}

func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Dist2 returns squared distance to b without sqrt
func (a Vec2) Dist2(b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Angle returns atan2(y, x)
func (a Vec2) Angle() float64 { return math.Atan2(a.Y, a.X) }

// Mag returns Euclidean length
func (a Vec2) Mag() float64 { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// Rotate returns the vector rotated by theta radians around the origin
func (a Vec2) Rotate(theta float64) Vec2 {
	return Polar(a.Mag(), a.Angle()+theta)
}
