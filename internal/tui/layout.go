// pattern: Functional Core

package tui

// Region defines a rectangular area within the terminal.
type Region struct {
	X      int // Left position (0-indexed)
	Y      int // Top position (0-indexed)
	Width  int // Width in cells
	Height int // Height in lines
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout holds computed regions for all UI components.
type Layout struct {
	Header    Region // Title and subtitle
	Page      Region // Scrolling page; this is the positioning viewport
	Separator Region // Rule above the log panel (1 line when logs open)
	Logs      Region // Log panel when open
	StatusBar Region // Mode, placement and help (1 line)
}

// Fixed heights for chrome elements
const (
	headerHeight    = 2
	statusBarHeight = 1
	separatorHeight = 1
	minPageHeight   = 3
)

// ComputeLayout calculates regions based on terminal dimensions.
// When logPanelOpen is true the space under the header splits 60/40
// between the page and the log panel.
func ComputeLayout(width, height int, logPanelOpen bool) Layout {
	available := height - headerHeight - statusBarHeight
	if available < minPageHeight {
		available = minPageHeight
	}

	pageHeight := available
	logsHeight := 0
	if logPanelOpen {
		pageHeight = int(float64(available) * 0.6)
		if pageHeight < minPageHeight {
			pageHeight = minPageHeight
		}
		logsHeight = available - pageHeight - separatorHeight
		if logsHeight < 1 {
			logsHeight = 1
		}
	}

	y := 0
	header := Region{X: 0, Y: y, Width: width, Height: headerHeight}
	y += headerHeight

	page := Region{X: 0, Y: y, Width: width, Height: pageHeight}
	y += pageHeight

	var separator, logs Region
	if logPanelOpen {
		separator = Region{X: 0, Y: y, Width: width, Height: separatorHeight}
		y += separatorHeight
		logs = Region{X: 0, Y: y, Width: width, Height: logsHeight}
		y += logsHeight
	}

	return Layout{
		Header:    header,
		Page:      page,
		Separator: separator,
		Logs:      logs,
		StatusBar: Region{X: 0, Y: y, Width: width, Height: statusBarHeight},
	}
}
