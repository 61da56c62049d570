package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "a:add d:del q:quit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints
	Edit   []Hint // Edit hints (add, delete)
	Action []Hint // Action hints (select, sync)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode() {
	case ModeClosed:
		return a.getClosedHints()
	case ModeOpen:
		return getOpenHints()
	case ModeAdd:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "add"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeConfirmDelete:
		// Shown inside the modal itself.
		return HintSet{}
	case ModeHelp:
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getClosedHints returns hints for the closed selector.
// Sync hints follow the sync state so "c" only shows while it does something.
func (a App) getClosedHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "Enter", Desc: "open"},
		},
		Action: []Hint{
			{Key: "s", Desc: "sync"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "d", Desc: "del"},
			{Key: "x", Desc: "clear"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
	if _, ok := a.ctrl.ActiveJob(); ok {
		hints.Action = append(hints.Action, Hint{Key: "c", Desc: "cancel sync"})
	}
	if a.ctrl.SelectionLocked() {
		hints.Nav = nil
	}
	return hints
}

func getOpenHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "type", Desc: "filter"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "select"},
			{Key: "^s", Desc: "sync"},
		},
		Edit: []Hint{
			{Key: "^o", Desc: "add"},
			{Key: "^x", Desc: "del"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "close"},
		},
	}
}
