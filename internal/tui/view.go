package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/selector"
	"github.com/nikbrunner/domsel/internal/tui/layout"
)

const clearRowLabel = "No URL selected"

// renderView creates the complete selector view.
func (a App) renderView() string {
	switch a.mode() {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeAdd, ModeConfirmDelete:
		return a.renderModal()
	}

	parts := []string{a.renderHeader()}
	if a.ctrl.Widget().IsOpen() {
		parts = append(parts, a.renderDropdown())
	}
	parts = append(parts, a.renderHelpBar())

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the selector box showing the current selection.
func (a App) renderHeader() string {
	width := layout.CalculateDropdownWidth(a.width, a.layoutConfig.Dropdown)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Dropdown)

	caret := "▾ "
	if a.ctrl.Widget().IsOpen() {
		caret = "▴ "
	}

	var lines []string
	if e, ok := a.ctrl.Selected(); ok {
		url, _ := layout.TruncateWithPrefix(e.URL, itemWidth, caret, a.layoutConfig.Text)
		lines = append(lines, a.styles.Title.Render(url))
		lines = append(lines, "  "+a.renderStatus(e))
	} else {
		label, _ := layout.TruncateWithPrefix(clearRowLabel, itemWidth, caret, a.layoutConfig.Text)
		lines = append(lines, a.styles.Empty.Render(label), "")
	}

	style := a.styles.Box
	if a.ctrl.Widget().IsOpen() {
		style = a.styles.BoxActive
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatus renders "Status · timestamp", or the spinner while syncing.
func (a App) renderStatus(e model.Entry) string {
	if a.ctrl.IsSyncing(e.ID) {
		return a.spinner.View() + " " + a.styles.Date.Render("Syncing...")
	}
	return a.styles.Status(e.Status).Render(e.Status.Label()) +
		a.styles.Date.Render(" · "+e.Timestamp)
}

// renderDropdown renders the search input and the row list.
func (a App) renderDropdown() string {
	width := layout.CalculateDropdownWidth(a.width, a.layoutConfig.Dropdown)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Dropdown)
	rows := layout.CalculateDropdownRows(a.height, a.layoutConfig.Dropdown)

	visible := a.ctrl.Visible()
	cursor := a.ctrl.Widget().Cursor()
	total := len(visible) + 1

	var content strings.Builder
	content.WriteString(a.search.Input.View())
	content.WriteString("\n")

	start, end := layout.VisibleWindow(cursor, total, rows)
	for row := start; row < end; row++ {
		isCursor := row == cursor
		if row == selector.ClearRow {
			content.WriteString(a.renderClearRow(isCursor, itemWidth))
		} else {
			content.WriteString(a.renderRow(visible[row-1], isCursor, itemWidth))
		}
		content.WriteString("\n")
	}

	if len(visible) == 0 {
		content.WriteString(a.styles.Empty.Render("No matching URLs"))
	}

	return a.styles.BoxActive.
		Width(width).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderClearRow(isCursor bool, maxWidth int) string {
	if isCursor {
		return a.styles.ItemSelected.Render(layout.PadRight("  "+clearRowLabel, maxWidth))
	}
	return a.styles.Empty.Render("  " + clearRowLabel)
}

// renderRow renders one entry: marker, URL column, then status column.
func (a App) renderRow(e model.Entry, isCursor bool, maxWidth int) string {
	urlWidth, statusWidth := layout.SplitRowWidth(maxWidth, a.layoutConfig.Dropdown)

	marker := "  "
	if sel, ok := a.ctrl.Selected(); ok && sel.ID == e.ID {
		marker = "● "
	}
	url, _ := layout.TruncateWithPrefix(e.URL, urlWidth, marker, a.layoutConfig.Text)
	url = layout.PadRight(url, urlWidth)

	if isCursor {
		// Plain status text so the highlight spans the whole row.
		status := e.Status.Label() + " · " + e.Timestamp
		if a.ctrl.IsSyncing(e.ID) {
			status = a.spinner.View() + " Syncing..."
		}
		status, _ = layout.TruncateText(layout.StripANSI(status), statusWidth, a.layoutConfig.Text)
		return a.styles.ItemSelected.Render(layout.PadRight(url+status, maxWidth))
	}

	return a.styles.Item.Render(url) + a.renderStatus(e)
}

// renderModal renders the add or confirm-delete dialog.
func (a App) renderModal() string {
	var title, content strings.Builder

	// Industrial style: thick borders, teal accent
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	switch a.mode() {
	case ModeAdd:
		title.WriteString("Add URL\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.add.Input.View())
		if a.add.Err != nil {
			content.WriteString("\n" + a.styles.Validation.Render("✗ Please enter a URL"))
		}

	case ModeConfirmDelete:
		target := a.ctrl.DeleteTarget()
		title.WriteString("Delete URL?\n\n")
		content.WriteString("\"" + target.URL + "\"\n\n")
		content.WriteString(a.styles.Help.Render("This action cannot be undone.") + "\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter/y", Desc: "confirm"},
			{Key: "Esc/n", Desc: "cancel"},
		}))
	}

	modalContent := a.styles.Title.Render(title.String()) + content.String()

	// Place modal in center, then add help bar at bottom
	modal := lipgloss.Place(
		a.width,
		a.height-3, // Leave room for help bar
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(modalContent),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = a.styles.StatusError.Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = a.styles.StatusPending.Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = a.styles.StatusProcessed.Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = a.styles.Title
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderHelpOverlay renders the help overlay.
func (a App) renderHelpOverlay() string {
	// Brutalist style: no border, just raw columns
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("closed") + "\n")
	left.WriteString("enter  open list\n")
	left.WriteString("a      add url\n")
	left.WriteString("d      delete\n")
	left.WriteString("s      sync\n")
	left.WriteString("c      cancel sync\n")
	left.WriteString("x      clear\n")
	left.WriteString("y      yank url\n")
	left.WriteString("E      export html\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("open") + "\n")
	right.WriteString("type    filter\n")
	right.WriteString("↑/↓     move\n")
	right.WriteString("enter   select\n")
	right.WriteString("ctrl+s  sync row\n")
	right.WriteString("ctrl+x  delete row\n")
	right.WriteString("ctrl+o  add url\n")
	right.WriteString("esc     close\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/q/esc] close"))

	leftCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpLeftColumnWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpRightColumnWidth).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}
