// pattern: Functional Core

package placement

// DefaultBreakpoint is the viewport width, in pixels, at which the anchored
// layout gives way to the sheet layout.
const DefaultBreakpoint = 768

// Mode is the layout the panel uses for the current viewport width.
type Mode int

const (
	// Desktop anchors the panel to its trigger.
	Desktop Mode = iota
	// Mobile clears positioning; the panel becomes a fixed sheet.
	Mobile
)

func (m Mode) String() string {
	switch m {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// ModeFor reports the layout for a viewport width. Widths at or above the
// breakpoint are desktop.
func ModeFor(width, breakpoint float64) Mode {
	if width >= breakpoint {
		return Desktop
	}
	return Mobile
}
