// pattern: Imperative Shell

package tracking

import (
	"popover/internal/geometry"
	"popover/internal/logging"
	"popover/internal/placement"
)

// Phase identifies the controller state.
type Phase int

const (
	Closed Phase = iota
	OpenDesktop
	OpenMobile
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case OpenDesktop:
		return "open-desktop"
	case OpenMobile:
		return "open-mobile"
	default:
		return "unknown"
	}
}

// state is one of closedState, mobileState or desktopState. Each open state
// owns the registrations it needs, so leaving it releases exactly those.
type state interface {
	phase() Phase
	release()
}

type closedState struct{}

func (closedState) phase() Phase { return Closed }
func (closedState) release()     {}

// mobileState watches window resize only, to notice a switch back to desktop.
type mobileState struct {
	scope *Scope
}

func (s *mobileState) phase() Phase { return OpenMobile }
func (s *mobileState) release()     { s.scope.Close() }

// desktopState watches trigger and panel size, trigger visibility, scroll
// and resize. The trigger watches are taken the first time the trigger is
// found, which may be after open. At most one frame callback is pending at
// a time.
type desktopState struct {
	scope        *Scope
	trigger      Element
	framePending bool
	cancelFrame  Release
}

func (s *desktopState) phase() Phase { return OpenDesktop }
func (s *desktopState) release()     { s.scope.Close() }

// Options tune a Controller.
type Options struct {
	// Spacing resolves the panel's gap attribute and supplies the clamp margin.
	Spacing geometry.Spacing
	// Breakpoint is the viewport width at or above which the panel is anchored.
	Breakpoint float64
}

// DefaultOptions uses the pixel spacing table and the 768px breakpoint.
func DefaultOptions() Options {
	return Options{
		Spacing:    geometry.DefaultSpacing,
		Breakpoint: placement.DefaultBreakpoint,
	}
}

// Controller drives one panel. It is not safe for concurrent use; every
// method and callback runs on the host's event loop.
type Controller struct {
	host     Host
	panel    Panel
	opts     Options
	selector placement.Selector
	logger   *logging.ScopedLogger

	state state
	last  geometry.Placement
	has   bool
}

// NewController creates a closed controller for panel.
func NewController(host Host, panel Panel, opts Options, logger *logging.ScopedLogger) *Controller {
	if !opts.Spacing.Valid() {
		opts.Spacing = geometry.DefaultSpacing
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = placement.DefaultBreakpoint
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Controller{
		host:     host,
		panel:    panel,
		opts:     opts,
		selector: placement.Selector{Spacing: opts.Spacing},
		logger:   logger,
		state:    closedState{},
	}
}

// Phase returns the current state.
func (c *Controller) Phase() Phase {
	return c.state.phase()
}

// Mode evaluates the view mode for the current viewport.
func (c *Controller) Mode() placement.Mode {
	return placement.ModeFor(c.host.Viewport().Width, c.opts.Breakpoint)
}

// LastPlacement returns the most recently applied placement, if any.
func (c *Controller) LastPlacement() (geometry.Placement, bool) {
	return c.last, c.has
}

// Open starts tracking. Opening an open controller does nothing.
func (c *Controller) Open() {
	if c.state.phase() != Closed {
		return
	}
	mode := c.Mode()
	c.logger.Debug("panel opened", "mode", mode.String())
	c.enter(mode)
}

// Close stops tracking and releases every registration. Applied offsets
// are left in place.
func (c *Controller) Close() {
	if c.state.phase() == Closed {
		return
	}
	c.logger.Debug("panel closed", "from", c.state.phase().String())
	c.state.release()
	c.state = closedState{}
}

// Reposition re-runs placement when anchored. Otherwise it does nothing.
func (c *Controller) Reposition() {
	if c.state.phase() == OpenDesktop {
		c.reposition()
	}
}

func (c *Controller) enter(mode placement.Mode) {
	if mode == placement.Mobile {
		c.enterMobile()
		return
	}
	c.enterDesktop()
}

func (c *Controller) enterMobile() {
	s := &mobileState{scope: NewScope()}
	c.state = s
	c.has = false
	c.panel.ApplyOffsets(geometry.Offsets{})
	s.scope.Add(c.host.OnResize(c.onResize))
}

func (c *Controller) enterDesktop() {
	s := &desktopState{scope: NewScope()}
	c.state = s

	s.scope.Add(c.host.ObserveResize(c.panel, c.reposition))
	s.scope.Add(c.host.OnScroll(func() { c.onScroll(s) }))
	s.scope.Add(c.host.OnResize(c.onResize))
	s.scope.Add(func() {
		if s.cancelFrame != nil {
			s.cancelFrame()
			s.cancelFrame = nil
		}
		s.framePending = false
	})
	c.reposition()
}

func (c *Controller) reposition() {
	trigger := c.host.Lookup(c.panel.TriggerID())
	if trigger == nil {
		return
	}

	gap := c.opts.Spacing.Resolve(c.panel.GapAttr())
	p := c.selector.Select(trigger.Rect(), c.panel.Rect(), c.host.Viewport(), gap)
	c.panel.ApplyOffsets(p.Offsets())

	if !c.has || c.last != p {
		c.logger.Debug("panel positioned", "corner", p.Corner.String(), "y", p.Y, "x", p.X)
	}
	c.last, c.has = p, true

	if s, ok := c.state.(*desktopState); ok && s.trigger == nil {
		c.watchTrigger(s, trigger)
	}
}

// watchTrigger starts observing the trigger. Visibility observers only
// report changes, so a trigger that is already out of view closes the
// panel here.
func (c *Controller) watchTrigger(s *desktopState, trigger Element) {
	s.trigger = trigger
	s.scope.Add(c.host.ObserveResize(trigger, c.reposition))
	s.scope.Add(c.host.ObserveVisibility(trigger, c.onVisibility))
	if c.host.Viewport().VisibleRatio(trigger.Rect()) <= 0 {
		c.onVisibility(0)
	}
}

// onScroll coalesces scroll bursts into one reposition per frame. The
// pending flag is cleared when the frame runs, whatever it computes.
func (c *Controller) onScroll(s *desktopState) {
	if s.framePending {
		return
	}
	s.framePending = true
	s.cancelFrame = c.host.RequestFrame(func() {
		s.framePending = false
		s.cancelFrame = nil
		c.reposition()
	})
}

func (c *Controller) onVisibility(ratio float64) {
	if ratio > 0 {
		return
	}
	c.logger.Debug("trigger left the viewport, closing panel")
	c.Close()
	c.panel.Close()
}

func (c *Controller) onResize() {
	mode := c.Mode()
	switch c.state.phase() {
	case OpenDesktop:
		if mode == placement.Desktop {
			c.reposition()
			return
		}
	case OpenMobile:
		if mode == placement.Mobile {
			return
		}
	default:
		return
	}

	c.logger.Debug("view mode changed", "mode", mode.String())
	c.state.release()
	c.enter(mode)
}
