// pattern: Imperative Shell

// Package termhost runs the positioning engine inside a terminal program.
// The terminal is the viewport, the page scrolls under it, and frames are
// ticks delivered by the program loop. Everything here is driven from a
// single goroutine.
package termhost

import (
	"popover/internal/geometry"
	"popover/internal/tracking"
)

// Box is a named element whose rectangle the application updates each
// layout pass.
type Box struct {
	id   string
	rect geometry.Rect
}

func (b *Box) ID() string              { return b.id }
func (b *Box) Rect() geometry.Rect     { return b.rect }
func (b *Box) SetRect(r geometry.Rect) { b.rect = r }

type resizeWatch struct {
	el     tracking.Element
	last   geometry.Rect
	fn     func()
	active bool
}

type visibilityWatch struct {
	el     tracking.Element
	last   float64
	fn     func(float64)
	active bool
}

type callback struct {
	fn     func()
	active bool
}

// Host implements tracking.Host.
type Host struct {
	vp    geometry.Viewport
	boxes map[string]*Box

	resizeWatches     []*resizeWatch
	visibilityWatches []*visibilityWatch
	scrollListeners   []*callback
	resizeListeners   []*callback
	frames            []*callback
}

var _ tracking.Host = (*Host)(nil)

// New returns a host with the given initial viewport size.
func New(width, height float64) *Host {
	return &Host{
		vp:    geometry.Viewport{Width: width, Height: height},
		boxes: make(map[string]*Box),
	}
}

func (h *Host) Viewport() geometry.Viewport {
	return h.vp
}

// Place creates or moves the box registered under id.
func (h *Host) Place(id string, r geometry.Rect) *Box {
	b, ok := h.boxes[id]
	if !ok {
		b = &Box{id: id}
		h.boxes[id] = b
	}
	b.rect = r
	return b
}

// Remove forgets the box registered under id.
func (h *Host) Remove(id string) {
	delete(h.boxes, id)
}

func (h *Host) Lookup(id string) tracking.Element {
	b, ok := h.boxes[id]
	if !ok {
		return nil
	}
	return b
}

func (h *Host) ObserveResize(el tracking.Element, fn func()) tracking.Release {
	w := &resizeWatch{el: el, last: el.Rect(), fn: fn, active: true}
	h.resizeWatches = append(h.resizeWatches, w)
	return func() {
		w.active = false
		h.resizeWatches = without(h.resizeWatches, w)
	}
}

func (h *Host) ObserveVisibility(el tracking.Element, fn func(float64)) tracking.Release {
	w := &visibilityWatch{el: el, last: h.vp.VisibleRatio(el.Rect()), fn: fn, active: true}
	h.visibilityWatches = append(h.visibilityWatches, w)
	return func() {
		w.active = false
		h.visibilityWatches = without(h.visibilityWatches, w)
	}
}

func (h *Host) OnScroll(fn func()) tracking.Release {
	return subscribe(&h.scrollListeners, fn)
}

func (h *Host) OnResize(fn func()) tracking.Release {
	return subscribe(&h.resizeListeners, fn)
}

func (h *Host) RequestFrame(fn func()) tracking.Release {
	return subscribe(&h.frames, fn)
}

// SetViewport records a new terminal size and notifies resize listeners
// when it changed.
func (h *Host) SetViewport(width, height float64) {
	next := geometry.Viewport{Width: width, Height: height}
	if next == h.vp {
		return
	}
	h.vp = next
	dispatch(h.resizeListeners)
}

// Scroll notifies scroll listeners that the page moved.
func (h *Host) Scroll() {
	dispatch(h.scrollListeners)
}

// Layout compares observed elements against their last known state and
// fires resize and visibility observers for whatever changed. Call it after
// every pass that may have moved or resized boxes.
func (h *Host) Layout() {
	for _, w := range append([]*resizeWatch(nil), h.resizeWatches...) {
		if !w.active {
			continue
		}
		r := w.el.Rect()
		if r.SameSize(w.last) {
			continue
		}
		w.last = r
		w.fn()
	}

	for _, w := range append([]*visibilityWatch(nil), h.visibilityWatches...) {
		if !w.active {
			continue
		}
		ratio := h.vp.VisibleRatio(w.el.Rect())
		crossed := (ratio == 0) != (w.last == 0)
		w.last = ratio
		if crossed {
			w.fn(ratio)
		}
	}
}

// FramePending reports whether a frame callback is queued.
func (h *Host) FramePending() bool {
	return len(h.frames) > 0
}

// Frame runs the callbacks queued before this tick. Callbacks queued while
// it runs wait for the next tick.
func (h *Host) Frame() {
	queued := h.frames
	h.frames = nil
	for _, c := range queued {
		if c.active {
			c.active = false
			c.fn()
		}
	}
}

// Listeners counts live registrations of every kind.
func (h *Host) Listeners() int {
	return len(h.resizeWatches) + len(h.visibilityWatches) +
		len(h.scrollListeners) + len(h.resizeListeners) + len(h.frames)
}

func subscribe(list *[]*callback, fn func()) tracking.Release {
	c := &callback{fn: fn, active: true}
	*list = append(*list, c)
	return func() {
		c.active = false
		*list = without(*list, c)
	}
}

// dispatch calls a snapshot of list so callbacks may subscribe or release.
func dispatch(list []*callback) {
	for _, c := range append([]*callback(nil), list...) {
		if c.active {
			c.fn()
		}
	}
}

func without[T comparable](list []T, item T) []T {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
