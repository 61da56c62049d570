package layout

// CalculateModalWidth computes responsive modal width based on percentage of terminal width.
// Uses widthPercent of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	return clampWidth(terminalWidth, widthPercent, cfg.MinWidth, cfg.MaxWidth)
}

// clampWidth takes percent of the terminal width, clamps it to [minWidth, maxWidth]
// and keeps it inside the terminal minus app padding. Never below 1.
func clampWidth(terminalWidth, percent, minWidth, maxWidth int) int {
	width := terminalWidth * percent / 100

	if width < minWidth {
		width = minWidth
	}
	if width > maxWidth {
		width = maxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}
