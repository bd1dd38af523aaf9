// pattern: Imperative Shell

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"popover/internal/config"
	"popover/internal/geometry"
	"popover/internal/logging"
	"popover/internal/menu"
	"popover/internal/termhost"
	"popover/internal/tracking"
)

const (
	triggerID  = "menu-button"
	panelID    = "main-menu"
	pageLines  = 80
	maxLogs    = 200
	columnStep = 4
)

// Model is the demo application: a scrolling page with one menu button.
type Model struct {
	width  int
	height int

	cfg    *config.Config
	styles *Styles
	logs   *logging.Manager
	logger *logging.ScopedLogger

	host  *termhost.Host
	panel *menu.Panel
	page  viewport.Model

	triggerLine int
	triggerCol  int
	gapKey      int

	frameScheduled bool
	logPanelOpen   bool
	logEntries     []logging.LogEntry
	notice         string
	quitting       bool
}

// NewModel creates the model. logs may be nil.
func NewModel(cfg *config.Config, logs *logging.Manager) Model {
	logger := logging.NopLogger()
	if logs != nil {
		logger = logs.For("tui")
	}

	m := Model{
		cfg:         cfg,
		styles:      NewStyles(cfg.Theme),
		logs:        logs,
		logger:      logger,
		host:        termhost.New(0, 0),
		page:        viewport.New(0, 0),
		triggerLine: 6,
		triggerCol:  4,
		gapKey:      parseGapKey(cfg.Gap),
	}
	m.panel = m.newPanel()
	m.refreshPage()
	return m
}

func (m *Model) newPanel() *menu.Panel {
	var tracker *logging.ScopedLogger
	if m.logs != nil {
		tracker = m.logs.For("tracking." + panelID)
	}
	p := menu.New(m.host, panelID, triggerID, menu.Options{
		Gap:   m.cfg.Gap,
		Items: m.cfg.Menu.Items,
		Tracking: tracking.Options{
			Spacing:    m.cfg.SpacingTable(),
			Breakpoint: float64(m.cfg.Breakpoint),
		},
		Logger: tracker,
	})
	logger := m.logger
	p.OnClose(func() { logger.Debug("menu closed") })
	return p
}

// Init starts draining the log channel.
func (m Model) Init() tea.Cmd {
	if m.logs == nil {
		return nil
	}
	return consumeLogEntries(m.logs)
}

// consumeLogEntries waits for one entry, then takes whatever else is queued.
func consumeLogEntries(logs *logging.Manager) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-logs.Entries()
		if !ok {
			return nil
		}
		entries := append([]logging.LogEntry{entry}, logs.Sink().Drain(maxLogs)...)
		return logEntriesMsg{entries: entries}
	}
}

func parseGapKey(attr string) int {
	var key int
	if _, err := fmt.Sscanf(attr, "%d", &key); err != nil {
		return 0
	}
	return key
}

// triggerRect is the button's box in page-viewport coordinates.
func (m Model) triggerRect() geometry.Rect {
	w := lipgloss.Width(m.cfg.Menu.Label) + 2
	return geometry.RectFromXYWH(
		float64(m.triggerCol),
		float64(m.triggerLine-m.page.YOffset),
		float64(w),
		1,
	)
}
