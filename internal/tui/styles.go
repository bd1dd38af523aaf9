package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	return &Styles{flavor: flavorFromName(themeName)}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) color(c catppuccin.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(s.color(s.flavor.Mauve()))
}

func (s *Styles) SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Subtext0()))
}

func (s *Styles) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Overlay0()))
}

func (s *Styles) PageStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Overlay1()))
}

// TriggerStyle renders the menu button; active marks it while the menu is open.
func (s *Styles) TriggerStyle(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if active {
		return st.Foreground(s.color(s.flavor.Base())).Background(s.color(s.flavor.Mauve()))
	}
	return st.Foreground(s.color(s.flavor.Text())).Background(s.color(s.flavor.Surface1()))
}

// PanelStyle is the anchored menu box.
func (s *Styles) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.color(s.flavor.Lavender())).
		Background(s.color(s.flavor.Mantle())).
		Foreground(s.color(s.flavor.Text())).
		Padding(0, 1)
}

// SheetStyle is the full-width menu used below the breakpoint.
func (s *Styles) SheetStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(s.color(s.flavor.Lavender())).
		Background(s.color(s.flavor.Mantle())).
		Foreground(s.color(s.flavor.Text())).
		Padding(0, 2)
}

func (s *Styles) StatusKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Teal())).Bold(true)
}

func (s *Styles) StatusValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Text()))
}

func (s *Styles) NoticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Yellow()))
}

func (s *Styles) SeparatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Surface1()))
}

func (s *Styles) LogLevelStyle(level string) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch level {
	case "DEBUG":
		return st.Foreground(s.color(s.flavor.Overlay1()))
	case "WARN":
		return st.Foreground(s.color(s.flavor.Yellow()))
	case "ERROR":
		return st.Foreground(s.color(s.flavor.Red()))
	default:
		return st.Foreground(s.color(s.flavor.Blue()))
	}
}

func (s *Styles) LogScopeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.color(s.flavor.Subtext0()))
}
