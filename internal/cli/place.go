// pattern: Imperative Shell
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"popover/internal/geometry"
	"popover/internal/placement"
)

const placeUsage = `Usage: popover place --trigger X,Y,W,H --panel WxH [options]

Runs the placement selector once, the way an open menu would be positioned,
and prints the resulting offsets.

Options:
  --trigger X,Y,W,H   trigger box in viewport coordinates (required)
  --panel WxH         panel size (required)
  --viewport WxH      viewport size (default 1024x768)
  --gap KEY           spacing step key 1-8 (default 3)
  --breakpoint N      desktop/mobile breakpoint (default 768)
  --json              print JSON instead of text`

// placeResult is what `place` prints.
type placeResult struct {
	Mode   string `json:"mode"`
	Corner string `json:"corner,omitempty"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

// RunPlace parses args, computes the placement and writes it to w.
func RunPlace(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("place", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	triggerArg := fs.String("trigger", "", "")
	panelArg := fs.String("panel", "", "")
	viewportArg := fs.String("viewport", "1024x768", "")
	gap := fs.String("gap", "", "")
	breakpoint := fs.Float64("breakpoint", placement.DefaultBreakpoint, "")
	asJSON := fs.Bool("json", false, "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *triggerArg == "" || *panelArg == "" {
		return fmt.Errorf("--trigger and --panel are required")
	}
	trigger, err := parseBox(*triggerArg)
	if err != nil {
		return fmt.Errorf("--trigger: %w", err)
	}
	pw, ph, err := parseSize(*panelArg)
	if err != nil {
		return fmt.Errorf("--panel: %w", err)
	}
	vw, vh, err := parseSize(*viewportArg)
	if err != nil {
		return fmt.Errorf("--viewport: %w", err)
	}

	vp := geometry.Viewport{Width: vw, Height: vh}
	result := computePlacement(trigger, geometry.Size(pw, ph), vp, *gap, *breakpoint)

	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, err = fmt.Fprintf(w, "mode=%s corner=%s top=%s bottom=%s left=%s right=%s\n",
		result.Mode, orDash(result.Corner), orDash(result.Top), orDash(result.Bottom), orDash(result.Left), orDash(result.Right))
	return err
}

// computePlacement mirrors what an opening controller does: mobile clears
// the offsets, desktop selects and applies a placement.
func computePlacement(trigger, panel geometry.Rect, vp geometry.Viewport, gapAttr string, breakpoint float64) placeResult {
	mode := placement.ModeFor(vp.Width, breakpoint)
	if mode == placement.Mobile {
		return placeResult{Mode: mode.String()}
	}

	spacing := geometry.DefaultSpacing
	p := placement.DefaultSelector.Select(trigger, panel, vp, spacing.Resolve(gapAttr))
	o := p.Offsets()
	return placeResult{
		Mode:   mode.String(),
		Corner: p.Corner.String(),
		Top:    o.Top.String(),
		Bottom: o.Bottom.String(),
		Left:   o.Left.String(),
		Right:  o.Right.String(),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func parseBox(s string) (geometry.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("want X,Y,W,H, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("bad number %q", p)
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return geometry.Rect{}, fmt.Errorf("negative size in %q", s)
	}
	return geometry.RectFromXYWH(v[0], v[1], v[2], v[3]), nil
}

func parseSize(s string) (float64, float64, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	wf, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || wf < 0 {
		return 0, 0, fmt.Errorf("bad width %q", w)
	}
	hf, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil || hf < 0 {
		return 0, 0, fmt.Errorf("bad height %q", h)
	}
	return wf, hf, nil
}
