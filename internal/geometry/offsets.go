// pattern: Functional Core

package geometry

import "strconv"

// Length is a single positional style value: cleared, "auto", or pixels.
// The zero value is cleared.
type Length struct {
	kind  lengthKind
	value float64
}

type lengthKind int

const (
	lengthUnset lengthKind = iota
	lengthAuto
	lengthPx
)

// Auto is the "auto" sentinel.
var Auto = Length{kind: lengthAuto}

// Px returns a pixel length.
func Px(v float64) Length {
	return Length{kind: lengthPx, value: v}
}

// IsSet reports whether the length carries a value (auto or pixels).
func (l Length) IsSet() bool { return l.kind != lengthUnset }

// IsAuto reports whether the length is the "auto" sentinel.
func (l Length) IsAuto() bool { return l.kind == lengthAuto }

// Pixels returns the pixel value and whether the length is concrete.
func (l Length) Pixels() (float64, bool) {
	return l.value, l.kind == lengthPx
}

// String renders the length the way a style attribute would hold it.
func (l Length) String() string {
	switch l.kind {
	case lengthAuto:
		return "auto"
	case lengthPx:
		return strconv.FormatFloat(l.value, 'f', -1, 64) + "px"
	default:
		return ""
	}
}

// Offsets are the four positional values applied to a panel.
type Offsets struct {
	Top    Length
	Bottom Length
	Left   Length
	Right  Length
}

// Cleared reports whether none of the four values is set.
func (o Offsets) Cleared() bool {
	return !o.Top.IsSet() && !o.Bottom.IsSet() && !o.Left.IsSet() && !o.Right.IsSet()
}

// Placement recovers the anchors from concrete offsets. It returns false
// when the offsets do not describe exactly one vertical and one horizontal
// distance.
func (o Offsets) Placement() (Placement, bool) {
	var p Placement
	top, hasTop := o.Top.Pixels()
	bottom, hasBottom := o.Bottom.Pixels()
	left, hasLeft := o.Left.Pixels()
	right, hasRight := o.Right.Pixels()

	switch {
	case hasTop && !hasBottom:
		p.V, p.Y = FromTop, top
	case hasBottom && !hasTop:
		p.V, p.Y = FromBottom, bottom
	default:
		return Placement{}, false
	}
	switch {
	case hasLeft && !hasRight:
		p.H, p.X = FromLeft, left
	case hasRight && !hasLeft:
		p.H, p.X = FromRight, right
	default:
		return Placement{}, false
	}
	p.Corner = cornerOf(p.V, p.H)
	return p, true
}

func cornerOf(v Vertical, h Horizontal) Corner {
	switch {
	case v == FromTop && h == FromRight:
		return BelowRight
	case v == FromBottom && h == FromRight:
		return AboveRight
	case v == FromTop:
		return BelowLeft
	default:
		return AboveLeft
	}
}
