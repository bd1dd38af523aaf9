package tui

import "testing"

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		logPanelOpen bool
		wantPage     int
		wantLogs     int
	}{
		{"standard terminal no logs", 80, 24, false, 21, 0},
		{"large terminal no logs", 120, 40, false, 37, 0},
		{"standard terminal with logs", 80, 24, true, 12, 8}, // 60% of 21 = 12, 21-12-1 = 8
		{"tiny terminal", 80, 4, false, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ComputeLayout(tt.width, tt.height, tt.logPanelOpen)

			if layout.Header.Height != 2 {
				t.Errorf("Header.Height = %d, want 2", layout.Header.Height)
			}
			if layout.Page.Y != 2 {
				t.Errorf("Page.Y = %d, want 2", layout.Page.Y)
			}
			if layout.Page.Height != tt.wantPage {
				t.Errorf("Page.Height = %d, want %d", layout.Page.Height, tt.wantPage)
			}
			if layout.Logs.Height != tt.wantLogs {
				t.Errorf("Logs.Height = %d, want %d", layout.Logs.Height, tt.wantLogs)
			}
			if layout.Page.Width != tt.width {
				t.Errorf("Page.Width = %d, want %d", layout.Page.Width, tt.width)
			}
		})
	}
}

func TestLayout_TotalHeight(t *testing.T) {
	for _, logs := range []bool{false, true} {
		layout := ComputeLayout(100, 30, logs)
		total := layout.Header.Height + layout.Page.Height + layout.Separator.Height +
			layout.Logs.Height + layout.StatusBar.Height
		if total != 30 {
			t.Errorf("logs=%v: total height = %d, want 30", logs, total)
		}
		if layout.StatusBar.Y != 29 {
			t.Errorf("logs=%v: StatusBar.Y = %d, want 29", logs, layout.StatusBar.Y)
		}
	}
}

func TestRegion_Contains(t *testing.T) {
	r := Region{X: 2, Y: 3, Width: 4, Height: 1}
	if !r.Contains(2, 3) || !r.Contains(5, 3) {
		t.Error("corners should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 4) || r.Contains(1, 3) {
		t.Error("points past the edges should be outside")
	}
}
