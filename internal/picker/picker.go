package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F8787")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F8787")).
			Bold(true).
			MarginBottom(1)
)

// Picker is a simple TUI for choosing one entry from fuzzy search results.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			p.cancelled = true
			return p, tea.Quit
		case "enter":
			p.selected = true
			return p, tea.Quit
		case "down", "j", "ctrl+n":
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
		case "up", "k", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Pick: %s (%d matches)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for i, result := range p.results {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		url := highlight(result.Entry.URL, result.MatchedIndexes, style)
		status := statusStyle.Render(result.Entry.Status.Label() + " - " + result.Entry.Timestamp)

		b.WriteString(cursor + url + "\n")
		b.WriteString("   " + status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("j/k: move  Enter: pick  q/Esc: cancel"))

	return b.String()
}

// highlight renders s with the matched rune positions underlined.
func highlight(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}

	hits := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hits[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if hits[i] {
			b.WriteString(matchStyle.Inherit(base).Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedEntry returns the chosen entry, or false if cancelled.
func (p Picker) SelectedEntry() (model.Entry, bool) {
	if p.cancelled || !p.selected {
		return model.Entry{}, false
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Entry, true
	}
	return model.Entry{}, false
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
