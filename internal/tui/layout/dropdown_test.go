package layout

import "testing"

func TestCalculateDropdownWidth(t *testing.T) {
	cfg := DefaultConfig().Dropdown

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"standard terminal", 80, 48},            // 80*60/100
		{"wide terminal clamps to max", 200, 72}, // 120 > 72
		{"narrow uses min", 50, 40},              // 30 < 40
		{"very narrow limited by width", 30, 26}, // 40 > 30-4
		{"tiny clamps to 1", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDropdownWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateDropdownWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateDropdownRows(t *testing.T) {
	cfg := DefaultConfig().Dropdown

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 18, 8}, // 18 - 10
		{"tall terminal caps at max", 50, 10},
		{"short terminal enforces min", 11, 3}, // 1 < 3
		{"smaller than reduction", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDropdownRows(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateDropdownRows(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateItemWidth(t *testing.T) {
	cfg := DefaultConfig().Dropdown

	if got := CalculateItemWidth(48, cfg); got != 44 {
		t.Errorf("CalculateItemWidth(48) = %d, want 44", got)
	}
	if got := CalculateItemWidth(2, cfg); got != 1 {
		t.Errorf("CalculateItemWidth(2) = %d, want 1", got)
	}
}

func TestSplitRowWidth(t *testing.T) {
	cfg := DefaultConfig().Dropdown

	tests := []struct {
		name       string
		itemWidth  int
		wantURL    int
		wantStatus int
	}{
		{"room for full status column", 68, 44, 24},
		{"status shrinks to half", 30, 15, 15},
		{"odd width", 31, 16, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, status := SplitRowWidth(tt.itemWidth, cfg)
			if url != tt.wantURL || status != tt.wantStatus {
				t.Errorf("SplitRowWidth(%d) = (%d, %d), want (%d, %d)",
					tt.itemWidth, url, status, tt.wantURL, tt.wantStatus)
			}
		})
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		total     int
		rows      int
		wantStart int
		wantEnd   int
	}{
		{"fewer than rows", 2, 3, 5, 0, 3},
		{"exact rows", 4, 5, 5, 0, 5},
		{"cursor at start", 0, 10, 5, 0, 5},
		{"cursor inside first window", 4, 10, 5, 0, 5},
		{"cursor scrolls window", 7, 10, 5, 3, 8},
		{"cursor at end", 9, 10, 5, 5, 10},
		{"cursor past end clamps", 15, 10, 5, 5, 10},
		{"no rows", 0, 10, 0, 0, 0},
		{"empty list", 0, 0, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleWindow(tt.cursor, tt.total, tt.rows)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.cursor, tt.total, tt.rows, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
