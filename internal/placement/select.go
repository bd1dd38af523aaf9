// pattern: Functional Core

// Package placement picks where a floating panel goes relative to its trigger.
package placement

import "popover/internal/geometry"

// Selector chooses among the four fixed candidates. Its spacing table
// supplies the clamp margin.
type Selector struct {
	Spacing geometry.Spacing
}

// DefaultSelector uses the pixel spacing table.
var DefaultSelector = Selector{Spacing: geometry.DefaultSpacing}

// Select returns the first candidate, in priority order, that keeps the
// panel inside the viewport. If none does, belowRight is clamped.
// Axes are never mixed across candidates.
func (s Selector) Select(trigger, panel geometry.Rect, vp geometry.Viewport, gap float64) geometry.Placement {
	candidates := geometry.Candidates(trigger, gap, vp)
	for _, c := range candidates {
		if !geometry.Overflows(c, panel, vp) {
			return c
		}
	}
	return geometry.Clamp(candidates[0], panel, vp, s.Spacing.MinMargin())
}

// Select runs DefaultSelector.
func Select(trigger, panel geometry.Rect, vp geometry.Viewport, gap float64) geometry.Placement {
	return DefaultSelector.Select(trigger, panel, vp, gap)
}
