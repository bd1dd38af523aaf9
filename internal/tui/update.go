// pattern: Imperative Shell

package tui

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"popover/internal/config"
	"popover/internal/logging"
	"popover/internal/placement"
)

// frameMsg is one animation frame. It is only scheduled while the host has
// frame callbacks queued.
type frameMsg struct{}

// logEntriesMsg delivers log entries from the logging channel.
type logEntriesMsg struct {
	entries []logging.LogEntry
}

// ConfigReloadedMsg carries a config that changed on disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, m.requestFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.frameScheduled = false
		m.host.Frame()
		m.host.Layout()
		return m, m.requestFrame()

	case logEntriesMsg:
		m.logEntries = append(m.logEntries, msg.entries...)
		if n := len(m.logEntries); n > maxLogs {
			m.logEntries = m.logEntries[n-maxLogs:]
		}
		if m.logs != nil {
			return m, consumeLogEntries(m.logs)
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.notice = "config reloaded"
		return m, m.requestFrame()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.panel.Teardown()
		return m, tea.Quit

	case "enter", " ", "m":
		m.panel.Toggle()
		m.refreshPage()
		return m, m.requestFrame()

	case "esc":
		m.panel.Close()
		m.refreshPage()
		return m, nil

	case "g":
		m.cycleGap()
		return m, nil

	case "l", "L":
		m.logPanelOpen = !m.logPanelOpen
		m.relayout()
		return m, m.requestFrame()

	case "left", "right":
		step := columnStep
		if msg.String() == "left" {
			step = -columnStep
		}
		m.moveTrigger(step)
		return m, nil
	}

	if m.panel.IsOpen() {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.panel.Items()) {
			m.choose(n - 1)
			return m, nil
		}
	}

	return m.scrollPage(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		return m.scrollPage(msg)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)
	if !layout.Page.Contains(msg.X, msg.Y) {
		return m, nil
	}
	x, y := msg.X-layout.Page.X, msg.Y-layout.Page.Y

	if m.panel.IsOpen() {
		if r := m.panelRegion(layout); r.Contains(x, y) {
			// Row 0 is the border (desktop) or the sheet's top rule.
			if i := y - r.Y - 1; i >= 0 && i < len(m.panel.Items()) {
				m.choose(i)
			}
			return m, nil
		}
	}

	t := m.triggerRect()
	if float64(x) >= t.Left && float64(x) < t.Right && float64(y) >= t.Top && float64(y) < t.Bottom {
		m.panel.Toggle()
		m.refreshPage()
		return m, m.requestFrame()
	}

	// Clicking anywhere else dismisses the menu.
	if m.panel.IsOpen() {
		m.panel.Close()
		m.refreshPage()
	}
	return m, nil
}

// scrollPage forwards msg to the page viewport and tells the host when the
// page moved.
func (m Model) scrollPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.page.YOffset
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	if m.page.YOffset == before {
		return m, cmd
	}

	wasOpen := m.panel.IsOpen()
	m.placeTrigger()
	m.host.Scroll()
	m.host.Layout()
	if wasOpen && !m.panel.IsOpen() {
		m.notice = "menu closed: button scrolled out of view"
		m.refreshPage()
	}
	return m, tea.Batch(cmd, m.requestFrame())
}

func (m *Model) choose(i int) {
	item := m.panel.Items()[i]
	m.logger.Info("menu item chosen", "item", item)
	m.notice = fmt.Sprintf("chose %q", item)
	m.panel.Close()
	m.refreshPage()
}

func (m *Model) cycleGap() {
	steps := len(m.cfg.Spacing.Steps)
	if steps == 0 {
		return
	}
	m.gapKey = m.gapKey%steps + 1
	m.panel.SetGap(strconv.Itoa(m.gapKey))
	m.logger.Debug("gap changed", "key", m.gapKey)
}

func (m *Model) moveTrigger(delta int) {
	width := int(m.triggerRect().Width)
	m.triggerCol = max(0, min(m.triggerCol+delta, m.width-width))
	m.refreshPage()
	m.placeTrigger()
	m.panel.Reposition()
	m.host.Layout()
}

// relayout pushes the current terminal size, trigger box and panel size to
// the host and lets its observers react.
func (m *Model) relayout() {
	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)
	m.page.Width = layout.Page.Width
	m.page.Height = layout.Page.Height
	m.refreshPage()

	m.placeTrigger()
	m.measurePanel()
	m.host.SetViewport(float64(layout.Page.Width), float64(layout.Page.Height))
	m.host.Layout()
}

func (m *Model) placeTrigger() {
	m.host.Place(triggerID, m.triggerRect())
}

func (m *Model) measurePanel() {
	box := m.renderPanelBox()
	m.panel.SetSize(float64(lipgloss.Width(box)), float64(lipgloss.Height(box)))
}

func (m *Model) requestFrame() tea.Cmd {
	if m.frameScheduled || !m.host.FramePending() {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// applyConfig swaps in a reloaded config. Spacing, breakpoint and item
// changes need a fresh panel; the open state carries over.
func (m *Model) applyConfig(cfg config.Config) {
	rebuild := cfg.Breakpoint != m.cfg.Breakpoint ||
		cfg.Spacing.DefaultKey != m.cfg.Spacing.DefaultKey ||
		!slices.Equal(cfg.Spacing.Steps, m.cfg.Spacing.Steps) ||
		!slices.Equal(cfg.Menu.Items, m.cfg.Menu.Items)

	m.cfg = &cfg
	m.styles = NewStyles(cfg.Theme)
	m.gapKey = parseGapKey(cfg.Gap)

	if rebuild {
		wasOpen := m.panel.IsOpen()
		m.panel.Teardown()
		if m.logs != nil {
			m.logs.Forget("tracking." + panelID)
		}
		m.panel = m.newPanel()
		m.measurePanel()
		if wasOpen {
			m.panel.Open()
		}
	} else {
		m.panel.SetGap(cfg.Gap)
	}
	m.relayout()
}

// panelRegion is where the open menu is drawn, in page cells.
func (m Model) panelRegion(layout Layout) Region {
	if m.panel.Mode() == placement.Mobile {
		sheet := m.renderSheet(layout.Page.Width)
		h := lipgloss.Height(sheet)
		return Region{X: 0, Y: layout.Page.Height - h, Width: layout.Page.Width, Height: h}
	}
	box := m.panel.Rect()
	return Region{
		X:      roundCell(box.Left),
		Y:      roundCell(box.Top),
		Width:  roundCell(box.Width),
		Height: roundCell(box.Height),
	}
}

func roundCell(v float64) int {
	return int(math.Round(v))
}
