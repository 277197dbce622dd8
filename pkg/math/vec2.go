// Package math provides the small geometry value types shared by the scene
// builder and the exporters.
package math

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Map returns the {"x","y"} form used in exported documents.
func (v Vec2) Map() map[string]any {
	return map[string]any{"x": v.X, "y": v.Y}
}
