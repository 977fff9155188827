// Package vmath holds the float geometry shared by simulation and rendering
package vmath

import "math"

// Vec2 is a 2D point or extent in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul scales each axis independently
func (v Vec2) Mul(s Vec2) Vec2 {
	return Vec2{X: v.X * s.X, Y: v.Y * s.Y}
}

// Clamp limits val to [lo, hi]; a NaN collapses to lo
func Clamp(val, lo, hi float64) float64 {
	if math.IsNaN(val) {
		return lo
	}
	return math.Max(lo, math.Min(val, hi))
}
