package layout

// CalculateDropdownWidth computes the selector box width.
// Uses WidthPercent of terminal width, clamped between MinWidth and MaxWidth,
// and never wider than the terminal minus app padding.
func CalculateDropdownWidth(terminalWidth int, cfg DropdownConfig) int {
	return clampWidth(terminalWidth, cfg.WidthPercent, cfg.MinWidth, cfg.MaxWidth)
}

// CalculateDropdownRows computes how many list rows fit below the header.
// Returns a value in [MinRows, MaxRows].
func CalculateDropdownRows(terminalHeight int, cfg DropdownConfig) int {
	rows := terminalHeight - cfg.HeightReduction
	if rows > cfg.MaxRows {
		rows = cfg.MaxRows
	}
	if rows < cfg.MinRows {
		return cfg.MinRows
	}
	return rows
}

// CalculateItemWidth computes the width available for row content.
func CalculateItemWidth(boxWidth int, cfg DropdownConfig) int {
	width := boxWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// SplitRowWidth divides a row into URL and status columns.
// The status column shrinks first on narrow boxes so the URL stays readable.
func SplitRowWidth(itemWidth int, cfg DropdownConfig) (urlWidth, statusWidth int) {
	statusWidth = cfg.StatusColumnWidth
	if statusWidth > itemWidth/2 {
		statusWidth = itemWidth / 2
	}
	return itemWidth - statusWidth, statusWidth
}

// VisibleWindow returns the half-open row range [start, end) to draw so that
// the cursor stays in view. The window scrolls only when the cursor would
// leave it.
func VisibleWindow(cursor, total, rows int) (start, end int) {
	if rows <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}

	if cursor >= rows {
		start = cursor - rows + 1
	}
	if start > total-rows {
		start = total - rows
	}
	if start < 0 {
		start = 0
	}
	return start, start + rows
}
