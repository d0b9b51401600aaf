// Package geom holds the geometry value types threaded through the render
// tree. The reconciler stores and passes them along without interpreting them;
// layout and painting code gives them meaning.
package geom

import "math"

// Size is a width and height.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in the parent's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Insets describe how far painting may extend beyond a node's layout rect.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// IsZero reports whether all insets are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Constraints are the min and max sizes a parent allows a child to take.
type Constraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that only allow size.
func Tight(size Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to max.
func Loose(max Size) Constraints {
	return Constraints{Max: max}
}

// Unbounded returns constraints without an upper limit.
func Unbounded() Constraints {
	return Constraints{Max: Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// Constrain clamps size into c.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  math.Min(math.Max(size.Width, c.Min.Width), c.Max.Width),
		Height: math.Min(math.Max(size.Height, c.Min.Height), c.Max.Height),
	}
}
