// pattern: Functional Core

// Package geometry holds the pure arithmetic behind panel placement:
// rectangles, candidate anchors, overflow tests and clamping.
package geometry

// Rect is an axis-aligned box in viewport-relative coordinates.
// Values are snapshots; callers re-query them on every positioning pass.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	Width  float64
	Height float64
}

// RectFromXYWH builds a Rect from its top-left corner and size.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Top:    y,
		Bottom: y + height,
		Left:   x,
		Right:  x + width,
		Width:  width,
		Height: height,
	}
}

// Size returns a Rect with only Width and Height set.
func Size(width, height float64) Rect {
	return RectFromXYWH(0, 0, width, height)
}

// SameSize reports whether two rectangles have identical dimensions.
func (r Rect) SameSize(o Rect) bool {
	return r.Width == o.Width && r.Height == o.Height
}

// Viewport is the visible area. It is always queried fresh.
type Viewport struct {
	Width  float64
	Height float64
}

// Bounds returns the viewport as a Rect anchored at the origin.
func (v Viewport) Bounds() Rect {
	return RectFromXYWH(0, 0, v.Width, v.Height)
}

// Contains reports whether r lies fully inside the viewport.
func (v Viewport) Contains(r Rect) bool {
	return r.Top >= 0 && r.Left >= 0 && r.Bottom <= v.Height && r.Right <= v.Width
}

// VisibleRatio returns the fraction of r's area that intersects the viewport,
// in [0, 1]. Empty rectangles are visible only if their origin is inside.
func (v Viewport) VisibleRatio(r Rect) float64 {
	if r.Width <= 0 || r.Height <= 0 {
		if r.Top >= 0 && r.Top < v.Height && r.Left >= 0 && r.Left < v.Width {
			return 1
		}
		return 0
	}

	w := min(r.Right, v.Width) - max(r.Left, 0)
	h := min(r.Bottom, v.Height) - max(r.Top, 0)
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w * h) / (r.Width * r.Height)
}
