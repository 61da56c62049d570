package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/domsel/internal/model"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Box          lipgloss.Style // selector header when closed
	BoxActive    lipgloss.Style // selector header and list when open
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	URL          lipgloss.Style
	Date         lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	Spinner      lipgloss.Style
	Validation   lipgloss.Style // inline error under the add dialog input

	StatusProcessed lipgloss.Style
	StatusPending   lipgloss.Style
	StatusError     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent,
// status colours are the only other hues.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders

	green := lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}
	amber := lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}
	red := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Box: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		BoxActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		URL: lipgloss.NewStyle().
			Foreground(primary),

		Date: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Spinner: lipgloss.NewStyle().
			Foreground(accent),

		Validation: lipgloss.NewStyle().
			Foreground(red),

		StatusProcessed: lipgloss.NewStyle().Foreground(green),
		StatusPending:   lipgloss.NewStyle().Foreground(amber),
		StatusError:     lipgloss.NewStyle().Foreground(red),
	}
}

// Status returns the style for a status badge.
func (s Styles) Status(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusProcessed:
		return s.StatusProcessed
	case model.StatusError:
		return s.StatusError
	default:
		return s.StatusPending
	}
}
