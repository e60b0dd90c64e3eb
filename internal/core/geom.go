// Package core holds the small shared types of the runner: screen buffer,
// input actions, events and geometry. It has no terminal dependencies so game
// logic built on it stays pure and testable.
package core

import "math"

// Rect is an integer screen-space rectangle, used for HUD boxes.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec3 is a world-space position or offset. X is lateral, Y is up and Z
// grows toward the camera.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dist returns the distance between two points.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Box3 is an axis-aligned bounding box in world space.
type Box3 struct {
	Min, Max Vec3
}

// BoxAround builds a box centred on c with the given full extents.
func BoxAround(c Vec3, w, h, d float64) Box3 {
	half := Vec3{w / 2, h / 2, d / 2}
	return Box3{Min: c.Sub(half), Max: c.Add(half)}
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Intersects reports whether two boxes overlap. Touching faces count as
// overlap, matching the inclusive test of scene-graph bounding boxes.
func (b Box3) Intersects(o Box3) bool {
	if b.Max.X < o.Min.X || b.Min.X > o.Max.X {
		return false
	}
	if b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y {
		return false
	}
	if b.Max.Z < o.Min.Z || b.Min.Z > o.Max.Z {
		return false
	}
	return true
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Approach moves cur a fraction of the way toward target.
// Repeated calls converge exponentially and never overshoot for 0 < f <= 1.
func Approach(cur, target, f float64) float64 {
	return cur + (target-cur)*f
}
