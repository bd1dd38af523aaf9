package menu

import (
	"testing"

	"popover/internal/geometry"
	"popover/internal/logging"
	"popover/internal/termhost"
	"popover/internal/tracking"
)

var triggerRect = geometry.Rect{Top: 50, Bottom: 90, Left: 50, Right: 150, Width: 100, Height: 40}

func newTestPanel(t *testing.T, width, height float64) (*termhost.Host, *Panel) {
	t.Helper()
	host := termhost.New(width, height)
	host.Place("menu-button", triggerRect)

	lm := logging.NewTestLogManager(100)
	t.Cleanup(func() { _ = lm.Close() })

	p := New(host, "main-menu", "menu-button", Options{
		Items:    []string{"One", "Two"},
		Tracking: tracking.DefaultOptions(),
		Logger:   lm.For("tracking"),
	})
	p.SetSize(150, 150)
	return host, p
}

func TestPanel_EndToEndPlacement(t *testing.T) {
	_, p := newTestPanel(t, 1024, 768)
	p.Open()

	s := p.Style()
	if s.Top.String() != "99px" || s.Right.String() != "874px" {
		t.Errorf("top/right = %q/%q, want 99px/874px", s.Top, s.Right)
	}
	if s.Bottom.String() != "auto" || s.Left.String() != "auto" {
		t.Errorf("bottom/left = %q/%q, want auto/auto", s.Bottom, s.Left)
	}
	if got := p.Rect(); got != geometry.RectFromXYWH(0, 99, 150, 150) {
		t.Errorf("Rect() = %+v, want box at (0,99)", got)
	}
}

func TestPanel_NearBottomFlipsAbove(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	host.Place("menu-button", geometry.RectFromXYWH(400, 700, 100, 40))
	p.SetSize(200, 150)
	p.Open()

	s := p.Style()
	if !s.Top.IsAuto() {
		t.Errorf("top = %q, want auto", s.Top)
	}
	if _, ok := s.Bottom.Pixels(); !ok {
		t.Errorf("bottom = %q, want a pixel value", s.Bottom)
	}
}

func TestPanel_ModeSwitchClears(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	p.Open()

	if _, ok := p.Style().Top.Pixels(); !ok {
		t.Fatalf("top = %q, want a pixel value", p.Style().Top)
	}

	host.SetViewport(500, 768)

	s := p.Style()
	for name, l := range map[string]geometry.Length{"top": s.Top, "bottom": s.Bottom, "left": s.Left, "right": s.Right} {
		if l.String() != "" {
			t.Errorf("%s = %q, want empty", name, l)
		}
	}
	if p.Phase() != tracking.OpenMobile {
		t.Errorf("Phase = %v, want %v", p.Phase(), tracking.OpenMobile)
	}
	if !p.IsOpen() {
		t.Error("panel should stay open across a mode switch")
	}
}

func TestPanel_ScrollSchedulesOneFrame(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	p.Open()
	base := host.Listeners()

	host.Scroll()
	host.Scroll()
	host.Scroll()

	if got := host.Listeners() - base; got != 1 {
		t.Errorf("frames scheduled = %d, want 1", got)
	}

	host.Place("menu-button", geometry.RectFromXYWH(50, 20, 100, 40))
	host.Frame()

	if p.Style().Top.String() != "69px" {
		t.Errorf("top = %q, want 69px", p.Style().Top)
	}
	if host.FramePending() {
		t.Error("no frame should be pending after the tick")
	}
}

func TestPanel_StaleStateIsolation(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	p.Open()
	p.Close()

	if p.Style().Cleared() {
		t.Fatal("offsets should persist after close")
	}

	host.SetViewport(600, 768)
	p.Open()

	if !p.Style().Cleared() {
		t.Errorf("style = %+v, want all offsets cleared", p.Style())
	}
}

func TestPanel_TriggerScrolledAwayCloses(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	closes := 0
	p.OnClose(func() { closes++ })
	p.Open()

	host.Place("menu-button", geometry.RectFromXYWH(50, -100, 100, 40))
	host.Scroll()
	host.Layout()

	if p.IsOpen() {
		t.Error("panel should close when the trigger leaves the viewport")
	}
	if closes != 1 {
		t.Errorf("closes = %d, want 1", closes)
	}
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}

	host.Frame()
	host.Layout()
	if closes != 1 {
		t.Errorf("closes = %d after further ticks, want 1", closes)
	}
}

func TestPanel_OpenWithHiddenTriggerClosesOnce(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	host.Place("menu-button", geometry.RectFromXYWH(50, -100, 100, 40))
	closes := 0
	p.OnClose(func() { closes++ })

	p.Open()
	host.Layout()

	if p.IsOpen() {
		t.Error("panel should not stay open over a hidden trigger")
	}
	if p.Phase() != tracking.Closed {
		t.Errorf("Phase = %v, want %v", p.Phase(), tracking.Closed)
	}
	if closes != 1 {
		t.Errorf("closes = %d, want 1", closes)
	}
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}

	host.Scroll()
	host.Frame()
	host.Layout()
	if closes != 1 {
		t.Errorf("closes = %d after further ticks, want 1", closes)
	}
}

func TestPanel_LateTriggerIsWatched(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	host.Remove("menu-button")
	p.Open()

	if !p.Style().Cleared() {
		t.Fatalf("style = %+v, want untouched without a trigger", p.Style())
	}

	host.Place("menu-button", triggerRect)
	host.Scroll()
	host.Frame()
	if got := p.Style().Top.String(); got != "99px" {
		t.Fatalf("top = %q, want 99px once the trigger appears", got)
	}

	host.Place("menu-button", geometry.RectFromXYWH(50, -100, 100, 40))
	host.Scroll()
	host.Frame()
	host.Layout()

	if p.IsOpen() {
		t.Error("panel should close when the late trigger leaves the viewport")
	}
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
}

func TestPanel_PanelResizeRepositions(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)
	p.Open()

	p.SetSize(150, 700)
	host.Layout()

	pl, ok := p.Placement()
	if !ok || pl.Corner != geometry.Clamped {
		t.Errorf("placement = %+v (%v), want clamped", pl, ok)
	}
}

func TestPanel_MissingTrigger(t *testing.T) {
	host := termhost.New(1024, 768)
	p := New(host, "orphan", "nowhere", Options{})
	p.SetSize(10, 10)

	p.Open()
	host.Scroll()
	host.Frame()

	if !p.Style().Cleared() {
		t.Errorf("style = %+v, want untouched", p.Style())
	}
	p.Close()
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
}

func TestPanel_SetGap(t *testing.T) {
	_, p := newTestPanel(t, 1024, 768)
	p.Open()

	p.SetGap("4")
	if p.Style().Top.String() != "102px" {
		t.Errorf("top = %q, want 102px", p.Style().Top)
	}
	p.SetGap("nonsense")
	if p.Style().Top.String() != "99px" {
		t.Errorf("top = %q, want 99px", p.Style().Top)
	}
}

func TestPanel_ToggleAndTeardown(t *testing.T) {
	host, p := newTestPanel(t, 1024, 768)

	p.Toggle()
	if !p.IsOpen() {
		t.Fatal("Toggle should open")
	}
	p.Toggle()
	if p.IsOpen() {
		t.Fatal("Toggle should close")
	}

	p.Open()
	p.Teardown()
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
	p.Open()
	if p.IsOpen() {
		t.Error("Open after Teardown should do nothing")
	}
}

func TestPanel_TwoPanelsShareHost(t *testing.T) {
	host, a := newTestPanel(t, 1024, 768)
	host.Place("other-button", geometry.RectFromXYWH(600, 300, 80, 20))
	b := New(host, "other-menu", "other-button", Options{})
	b.SetSize(100, 100)

	a.Open()
	b.Open()
	a.Close()

	if got := host.Listeners(); got != 5 {
		t.Errorf("listeners = %d, want 5", got)
	}
	if b.Phase() != tracking.OpenDesktop {
		t.Errorf("b Phase = %v, want %v", b.Phase(), tracking.OpenDesktop)
	}
	b.Close()
	if got := host.Listeners(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
}
