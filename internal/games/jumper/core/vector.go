// Package core implements the Pixel Jumper simulation: the static level grid,
// the actors that move through it, and the level runtime that steps them.
//
// The package is pure: it performs no I/O, never logs, and depends only on the
// platform's input type. Rendering layers read Snapshot values and never touch
// a Level directly.
package core

// Vec is a 2D point or displacement in grid units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and o.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns v scaled by f.
func (v Vec) Times(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}
