package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/domsel/internal/tui"
	"github.com/nikbrunner/domsel/internal/tui/layout"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func view(app tui.App) string {
	return layout.StripANSI(app.View())
}

func TestView_Closed(t *testing.T) {
	app := newApp(tui.AppParams{})

	output := view(app)
	assert.Assert(t, is.Contains(output, "▾ www.rappi.com"))
	assert.Assert(t, is.Contains(output, "Processed · 2 days ago"))
	assert.Assert(t, !strings.Contains(output, "www.google.com"), "closed selector hides the list")
}

func TestView_NothingSelected(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, runes("x"))

	assert.Assert(t, is.Contains(view(app), "▾ No URL selected"))
}

func TestView_Open(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, keyType(tea.KeyEnter))

	output := view(app)
	assert.Assert(t, is.Contains(output, "▴ www.rappi.com"))
	assert.Assert(t, is.Contains(output, "No URL selected"))
	assert.Assert(t, is.Contains(output, "● www.rappi.com"))
	assert.Assert(t, is.Contains(output, "www.google.com"))
	assert.Assert(t, is.Contains(output, "Pending · 1 hour ago"))
	assert.Assert(t, is.Contains(output, "Error · 5 days ago"))
}

func TestView_NoMatches(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, keyType(tea.KeyEnter), runes("zzz"))

	output := view(app)
	assert.Assert(t, is.Contains(output, "No matching URLs"))
	assert.Assert(t, !strings.Contains(output, "www.github.com"))
}

func TestView_Syncing(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, runes("s"))

	output := view(app)
	assert.Assert(t, is.Contains(output, "Syncing..."))
	assert.Assert(t, is.Contains(output, "Syncing www.rappi.com"))
}

func TestView_AddDialog(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, runes("a"))
	assert.Assert(t, is.Contains(view(app), "Add URL"))

	app, _ = press(t, app, keyType(tea.KeyEnter))
	assert.Assert(t, is.Contains(view(app), "Please enter a URL"))

	app, _ = press(t, app, runes("x"))
	assert.Assert(t, !strings.Contains(view(app), "Please enter a URL"), "typing clears the validation message")
}

func TestView_DeleteDialog(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, runes("d"))

	output := view(app)
	assert.Assert(t, is.Contains(output, "Delete URL?"))
	assert.Assert(t, is.Contains(output, `"www.rappi.com"`))
	assert.Assert(t, is.Contains(output, "This action cannot be undone."))
}

func TestView_Help(t *testing.T) {
	app := newApp(tui.AppParams{})
	app, _ = press(t, app, runes("?"))

	output := view(app)
	assert.Assert(t, is.Contains(output, "cancel sync"))
	assert.Assert(t, is.Contains(output, "ctrl+x  delete row"))
}

func TestView_FitsTerminal(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"80x24", 80, 24},
		{"120x30", 120, 30},
		{"narrow", 72, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := tui.NewApp(tui.AppParams{}).WithDimensions(tt.width, tt.height)
			app, _ = press(t, app, keyType(tea.KeyEnter))

			for _, line := range strings.Split(view(app), "\n") {
				assert.Assert(t, layout.VisibleLength(line) <= tt.width, "line too wide: %q", line)
			}
		})
	}
}
