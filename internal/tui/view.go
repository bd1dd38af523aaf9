// pattern: Functional Core

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"popover/internal/geometry"
	"popover/internal/placement"
	"popover/internal/tracking"
)

func (m Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}
	layout := ComputeLayout(m.width, m.height, m.logPanelOpen)

	parts := []string{m.renderHeader(layout.Header.Width)}

	page := padLines(m.page.View(), layout.Page.Width, layout.Page.Height)
	if m.panel.IsOpen() {
		r := m.panelRegion(layout)
		overlay := m.renderPanelBox()
		if m.panel.Mode() == placement.Mobile {
			overlay = m.renderSheet(layout.Page.Width)
		}
		page = overlayAt(page, overlay, layout.Page.Width, r.X, r.Y)
	}
	parts = append(parts, strings.Join(page, "\n"))

	if m.logPanelOpen {
		parts = append(parts,
			m.styles.SeparatorStyle().Render(strings.Repeat("─", layout.Separator.Width)),
			m.renderLogPanel(layout),
		)
	}

	parts = append(parts, m.renderStatusBar(layout.StatusBar.Width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(width int) string {
	title := m.styles.TitleStyle().Render("popover")
	subtitle := m.styles.SubtitleStyle().Render("anchored menu demo · scroll the page, resize the terminal")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(width).Render(title),
		lipgloss.NewStyle().MaxWidth(width).Render(subtitle),
	)
}

// refreshPage rebuilds the page content: filler text with the menu button
// on triggerLine.
func (m *Model) refreshPage() {
	filler := m.styles.PageStyle()
	lines := make([]string, pageLines)
	for i := range lines {
		if i == m.triggerLine {
			button := m.styles.TriggerStyle(m.panel.IsOpen()).Render(m.cfg.Menu.Label)
			lines[i] = strings.Repeat(" ", m.triggerCol) + button
			continue
		}
		lines[i] = filler.Render(fmt.Sprintf("%3d │ %s", i+1, fillerText(i)))
	}
	m.page.SetContent(strings.Join(lines, "\n"))
}

var fillerWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
}

func fillerText(line int) string {
	n := 4 + line%7
	words := make([]string, n)
	for i := range words {
		words[i] = fillerWords[(line*3+i)%len(fillerWords)]
	}
	return strings.Join(words, " ")
}

func (m Model) menuLines() []string {
	items := m.panel.Items()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d  %s", i+1, item)
	}
	return lines
}

// renderPanelBox renders the anchored menu. Its size is what the engine
// positions.
func (m Model) renderPanelBox() string {
	return m.styles.PanelStyle().Render(strings.Join(m.menuLines(), "\n"))
}

// renderSheet renders the menu as a full-width sheet for narrow terminals.
func (m Model) renderSheet(width int) string {
	return m.styles.SheetStyle(width).Render(strings.Join(m.menuLines(), "\n"))
}

func (m Model) renderStatusBar(width int) string {
	key := m.styles.StatusKeyStyle()
	val := m.styles.StatusValueStyle()

	fields := []string{
		key.Render("mode ") + val.Render(m.panel.Mode().String()),
		key.Render("state ") + val.Render(m.panel.Phase().String()),
	}
	if p, ok := m.panel.Placement(); ok && m.panel.Phase() == tracking.OpenDesktop {
		fields = append(fields, key.Render("at ")+val.Render(p.Corner.String()))
	}
	if s := formatOffsets(m.panel.Style()); s != "" {
		fields = append(fields, val.Render(s))
	}
	fields = append(fields, key.Render("gap ")+val.Render(fmt.Sprintf("%d", m.gapKey)))

	left := strings.Join(fields, "  ")
	if m.notice != "" {
		left += "  " + m.styles.NoticeStyle().Render(m.notice)
	}
	help := m.styles.HelpStyle().Render("m menu · ←/→ move · g gap · l logs · q quit")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + help
}

// formatOffsets lists the sides that carry a value, CSS style.
func formatOffsets(o geometry.Offsets) string {
	var parts []string
	for _, side := range []struct {
		name string
		v    geometry.Length
	}{
		{"top", o.Top},
		{"bottom", o.Bottom},
		{"left", o.Left},
		{"right", o.Right},
	} {
		if side.v.IsSet() {
			parts = append(parts, side.name+":"+side.v.String())
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderLogEntry(width, i int) string {
	e := m.logEntries[i]
	ts := m.styles.HelpStyle().Render(e.Timestamp.Format("15:04:05"))
	level := m.styles.LogLevelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level))
	scope := m.styles.LogScopeStyle().Render("[" + e.Scope + "]")
	line := fmt.Sprintf("%s %s %s %s", ts, level, scope, e.Message)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// renderLogPanel shows the newest entries that fit.
func (m Model) renderLogPanel(layout Layout) string {
	height := layout.Logs.Height
	if len(m.logEntries) == 0 {
		return strings.Join(padLines(m.styles.HelpStyle().Render("No log entries"), layout.Logs.Width, height), "\n")
	}

	start := max(0, len(m.logEntries)-height)
	lines := make([]string, 0, height)
	for i := start; i < len(m.logEntries); i++ {
		lines = append(lines, m.renderLogEntry(layout.Logs.Width, i))
	}
	return strings.Join(padLines(strings.Join(lines, "\n"), layout.Logs.Width, height), "\n")
}
