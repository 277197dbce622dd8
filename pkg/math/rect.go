package math

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Vec2 returns the size as a vector, for anchor arithmetic.
func (s Size) Vec2() Vec2 {
	return Vec2{s.Width, s.Height}
}

// Map returns the {"w","h"} form used in exported documents.
func (s Size) Map() map[string]any {
	return map[string]any{"w": s.Width, "h": s.Height}
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Map returns the {"x","y","w","h"} form used in exported documents.
func (r Rect) Map() map[string]any {
	return map[string]any{"x": r.X, "y": r.Y, "w": r.W, "h": r.H}
}

// Insets are 9-slice border widths.
type Insets struct {
	Top, Bottom, Left, Right float64
}

// IsZero reports whether all four borders are zero.
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Bottom == 0 && in.Left == 0 && in.Right == 0
}

// CenterRect returns the stretchable center of a width x height frame:
// (left, top, width-right-left, height-bottom-top).
func (in Insets) CenterRect(width, height float64) Rect {
	return Rect{
		X: in.Left,
		Y: in.Top,
		W: width - in.Right - in.Left,
		H: height - in.Bottom - in.Top,
	}
}

// Color3 is an 8-bit RGB color.
type Color3 struct {
	R, G, B int
}

// Map returns the {"r","g","b"} form used in exported documents.
func (c Color3) Map() map[string]any {
	return map[string]any{"r": c.R, "g": c.G, "b": c.B}
}
