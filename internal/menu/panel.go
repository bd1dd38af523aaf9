// pattern: Imperative Shell

// Package menu is the floating panel surface. It owns the open/closed
// signal and the applied offsets, and leaves all positioning to a
// tracking.Controller.
package menu

import (
	"popover/internal/geometry"
	"popover/internal/logging"
	"popover/internal/placement"
	"popover/internal/tracking"
)

// Options configure a Panel.
type Options struct {
	// Gap is the declared spacing-step key. Invalid keys use the default step.
	Gap      string
	Items    []string
	Tracking tracking.Options
	Logger   *logging.ScopedLogger
}

// Panel is a menu anchored to the element whose id is its anchor.
type Panel struct {
	id     string
	anchor string
	gap    string
	items  []string

	host     tracking.Host
	ctrl     *tracking.Controller
	size     geometry.Rect
	style    geometry.Offsets
	open     bool
	detached bool
	onClose  []func()
}

var _ tracking.Panel = (*Panel)(nil)

// New creates a closed panel linked to the trigger registered as anchor.
func New(host tracking.Host, id, anchor string, opts Options) *Panel {
	p := &Panel{
		id:     id,
		anchor: anchor,
		gap:    opts.Gap,
		items:  append([]string(nil), opts.Items...),
		host:   host,
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	p.ctrl = tracking.NewController(host, p, opts.Tracking, logger.With("panel", id))
	return p
}

func (p *Panel) ID() string        { return p.id }
func (p *Panel) TriggerID() string { return p.anchor }
func (p *Panel) GapAttr() string   { return p.gap }
func (p *Panel) Items() []string   { return p.items }
func (p *Panel) IsOpen() bool      { return p.open }

// Style returns the currently applied offsets.
func (p *Panel) Style() geometry.Offsets { return p.style }

// Phase exposes the tracking state.
func (p *Panel) Phase() tracking.Phase { return p.ctrl.Phase() }

// Mode evaluates the view mode for the current viewport.
func (p *Panel) Mode() placement.Mode { return p.ctrl.Mode() }

// Placement returns the last placement chosen while anchored.
func (p *Panel) Placement() (geometry.Placement, bool) { return p.ctrl.LastPlacement() }

// SetGap changes the declared gap. It takes effect on the next positioning pass.
func (p *Panel) SetGap(attr string) {
	p.gap = attr
	p.ctrl.Reposition()
}

// Reposition re-runs placement now, for changes no observer reports
// (the trigger moved without resizing).
func (p *Panel) Reposition() {
	p.ctrl.Reposition()
}

// SetSize records the measured panel size. Observers pick up the change on
// the host's next layout pass.
func (p *Panel) SetSize(width, height float64) {
	p.size = geometry.Size(width, height)
}

// Rect is the panel's on-screen box: where the applied offsets put it, or
// the origin when nothing is applied.
func (p *Panel) Rect() geometry.Rect {
	if pl, ok := p.style.Placement(); ok {
		return pl.Box(p.size, p.host.Viewport())
	}
	return p.size
}

// ApplyOffsets is called by the controller.
func (p *Panel) ApplyOffsets(o geometry.Offsets) {
	p.style = o
}

// OnClose registers fn to run every time the panel closes.
func (p *Panel) OnClose(fn func()) {
	p.onClose = append(p.onClose, fn)
}

// Open shows the panel and starts tracking its trigger.
func (p *Panel) Open() {
	if p.open || p.detached {
		return
	}
	p.open = true
	p.ctrl.Open()
}

// Close hides the panel and stops tracking. Applied offsets stay.
func (p *Panel) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.ctrl.Close()
	for _, fn := range p.onClose {
		fn()
	}
}

// Toggle flips between open and closed.
func (p *Panel) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// Teardown closes the panel and refuses further opens.
func (p *Panel) Teardown() {
	p.Close()
	p.detached = true
}
