// pattern: Functional Core

package geometry

// Vertical selects which viewport edge the vertical distance is measured from.
type Vertical int

const (
	FromTop Vertical = iota
	FromBottom
)

// Horizontal selects which viewport edge the horizontal distance is measured from.
type Horizontal int

const (
	FromLeft Horizontal = iota
	FromRight
)

// Corner names a candidate anchor strategy.
type Corner int

const (
	BelowRight Corner = iota
	AboveRight
	BelowLeft
	AboveLeft
	Clamped
)

func (c Corner) String() string {
	switch c {
	case BelowRight:
		return "belowRight"
	case AboveRight:
		return "aboveRight"
	case BelowLeft:
		return "belowLeft"
	case AboveLeft:
		return "aboveLeft"
	case Clamped:
		return "clamped"
	default:
		return "unknown"
	}
}

// Placement pins a panel with exactly one vertical and one horizontal
// distance. Y is measured from the edge named by V, X from the edge named by H.
type Placement struct {
	Corner Corner
	V      Vertical
	Y      float64
	H      Horizontal
	X      float64
}

// Candidates returns the four anchor strategies in priority order:
// belowRight, aboveRight, belowLeft, aboveLeft.
func Candidates(trigger Rect, gap float64, vp Viewport) [4]Placement {
	below := trigger.Bottom + gap
	above := vp.Height - trigger.Top + gap
	right := vp.Width - trigger.Right
	left := trigger.Left

	return [4]Placement{
		{Corner: BelowRight, V: FromTop, Y: below, H: FromRight, X: right},
		{Corner: AboveRight, V: FromBottom, Y: above, H: FromRight, X: right},
		{Corner: BelowLeft, V: FromTop, Y: below, H: FromLeft, X: left},
		{Corner: AboveLeft, V: FromBottom, Y: above, H: FromLeft, X: left},
	}
}

// Overflows reports whether a panel-sized box placed at p would cross any
// viewport edge. Each axis is tested on its own and the results are OR-ed.
func Overflows(p Placement, panel Rect, vp Viewport) bool {
	return overflowsVertically(p, panel, vp) || overflowsHorizontally(p, panel, vp)
}

func overflowsVertically(p Placement, panel Rect, vp Viewport) bool {
	// Both anchors reduce to the same test: distance from its edge plus the
	// panel height must stay within the viewport.
	return p.Y < 0 || p.Y+panel.Height > vp.Height
}

func overflowsHorizontally(p Placement, panel Rect, vp Viewport) bool {
	if p.H == FromLeft {
		return p.X < 0 || p.X+panel.Width > vp.Width
	}
	impliedLeft := vp.Width - p.X - panel.Width
	return impliedLeft < 0 || impliedLeft+panel.Width > vp.Width
}

// Clamp forces p inside the viewport, keeping at least minMargin from every
// edge. When the panel is larger than the viewport minus margins the result
// pins to minMargin.
func Clamp(p Placement, panel Rect, vp Viewport, minMargin float64) Placement {
	p.Corner = Clamped
	p.Y = clampRange(p.Y, minMargin, vp.Height-panel.Height-minMargin)
	p.X = clampRange(p.X, minMargin, vp.Width-panel.Width-minMargin)
	return p
}

func clampRange(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Box returns the on-screen rectangle a panel of the given size occupies
// when placed at p.
func (p Placement) Box(panel Rect, vp Viewport) Rect {
	var x, y float64
	if p.V == FromTop {
		y = p.Y
	} else {
		y = vp.Height - p.Y - panel.Height
	}
	if p.H == FromLeft {
		x = p.X
	} else {
		x = vp.Width - p.X - panel.Width
	}
	return RectFromXYWH(x, y, panel.Width, panel.Height)
}

// Offsets converts p to the four style values applied to the panel.
func (p Placement) Offsets() Offsets {
	o := Offsets{Top: Auto, Bottom: Auto, Left: Auto, Right: Auto}
	if p.V == FromTop {
		o.Top = Px(p.Y)
	} else {
		o.Bottom = Px(p.Y)
	}
	if p.H == FromLeft {
		o.Left = Px(p.X)
	} else {
		o.Right = Px(p.X)
	}
	return o
}
