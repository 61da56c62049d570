package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/domsel/internal/tui/layout"
)

// Mode is the input context the App dispatches keys to.
// It is derived from controller state, never stored.
type Mode int

const (
	ModeClosed Mode = iota
	ModeOpen
	ModeAdd
	ModeConfirmDelete
	ModeHelp
)

// MessageType categorizes transient notices on the message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// SearchState holds the dropdown's filter input.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.Prompt = "/ "
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth

	return SearchState{Input: input}
}

// Reset clears the filter text.
func (s *SearchState) Reset() {
	s.Input.Reset()
}

// AddState holds the add dialog's URL input and its last validation error.
type AddState struct {
	Input textinput.Model
	Err   error
}

// NewAddState creates a new AddState with initialized input.
func NewAddState(cfg layout.LayoutConfig) AddState {
	input := textinput.New()
	input.Placeholder = "www.example.com"
	input.CharLimit = cfg.Input.URLCharLimit
	input.Width = cfg.Input.StandardWidth

	return AddState{Input: input}
}

// Reset clears the dialog for a new session.
func (s *AddState) Reset() {
	s.Input.Reset()
	s.Err = nil
}
