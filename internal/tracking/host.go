// pattern: Functional Core

// Package tracking keeps an open panel anchored to its trigger as the
// viewport, the page scroll and the element sizes change.
package tracking

import "popover/internal/geometry"

// Release undoes one registration. Calling it more than once is allowed.
type Release func()

// Element is anything whose box can be queried on demand.
type Element interface {
	Rect() geometry.Rect
}

// Host is the environment a Controller observes. All callbacks are invoked
// on the host's single event loop; none may block.
type Host interface {
	// Viewport returns the current visible area.
	Viewport() geometry.Viewport
	// Lookup finds an element by its declared id, or nil.
	Lookup(id string) Element

	ObserveResize(el Element, fn func()) Release
	// ObserveVisibility reports the visible ratio of el each time it
	// crosses the fully-hidden threshold.
	ObserveVisibility(el Element, fn func(ratio float64)) Release
	OnScroll(fn func()) Release
	OnResize(fn func()) Release

	// RequestFrame runs fn on the next frame tick. Release cancels it.
	RequestFrame(fn func()) Release
}

// Panel is the positioned element a Controller drives.
type Panel interface {
	Element
	// TriggerID is the id of the element the panel is anchored to.
	TriggerID() string
	// GapAttr is the declared spacing-step key, unparsed.
	GapAttr() string
	ApplyOffsets(geometry.Offsets)
	// Close asks the panel to close itself, as if the user dismissed it.
	Close()
}
