package selector

import (
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/search"
)

// ClearRow is the index of the "no URL selected" row at the top of the list.
const ClearRow = 0

// Widget is the open/closed dropdown with its search filter and cursor.
// Row 0 is the clear-selection row, rows 1..n are the visible entries.
type Widget struct {
	open   bool
	query  string
	cursor int
}

// IsOpen returns true while the dropdown list is shown.
func (w *Widget) IsOpen() bool {
	return w.open
}

// Query returns the active search text.
func (w *Widget) Query() string {
	return w.query
}

// Cursor returns the highlighted row.
func (w *Widget) Cursor() int {
	return w.cursor
}

// openList shows the list with a fresh filter.
func (w *Widget) openList() {
	w.open = true
	w.query = ""
	w.cursor = ClearRow
}

// Close hides the list. Closing a closed widget is a no-op.
func (w *Widget) Close() {
	w.open = false
}

// setSearch replaces the filter text and resets the cursor.
func (w *Widget) setSearch(text string) {
	w.query = text
	w.cursor = ClearRow
}

// Visible returns the entries matching the current filter.
func (w *Widget) Visible(entries []model.Entry) []model.Entry {
	return search.FilterEntries(entries, w.query)
}

// moveCursor shifts the cursor by delta, clamped to [0, rows-1].
func (w *Widget) moveCursor(delta, rows int) {
	w.cursor += delta
	if w.cursor > rows-1 {
		w.cursor = rows - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
}
