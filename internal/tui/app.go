package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/nikbrunner/domsel/internal/exporter"
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/selector"
	"github.com/nikbrunner/domsel/internal/syncsim"
	"github.com/nikbrunner/domsel/internal/tui/layout"
)

// syncDoneMsg is delivered when a sync job's timer fires.
type syncDoneMsg struct {
	token string
}

// App is the main bubbletea model for the domain selector.
type App struct {
	ctrl         *selector.Controller
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	logger       *log.Logger

	search  SearchState
	add     AddState
	spinner spinner.Model

	showHelp      bool
	confirmDelete bool

	copyToClipboard func(string) error
	exportPath      string
	now             func() time.Time

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Controller   *selector.Controller
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       *log.Logger          // optional, discards if nil

	// ConfirmDelete shows the confirmation dialog before deleting (default true).
	ConfirmDelete *bool

	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error

	// ExportPath is where E writes the session; empty uses exporter.DefaultExportPath.
	ExportPath string

	// Now defaults to time.Now; used for export timestamps.
	Now func() time.Time
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl := params.Controller
	if ctrl == nil {
		ctrl = selector.New(selector.Params{Seed: model.DefaultSeed(), Logger: logger})
	}

	confirmDelete := true
	if params.ConfirmDelete != nil {
		confirmDelete = *params.ConfirmDelete
	}

	copyFn := params.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = styles.Spinner

	return App{
		ctrl:            ctrl,
		keys:            keys,
		styles:          styles,
		layoutConfig:    layoutCfg,
		logger:          logger,
		search:          NewSearchState(layoutCfg),
		add:             NewAddState(layoutCfg),
		spinner:         spin,
		confirmDelete:   confirmDelete,
		copyToClipboard: copyFn,
		exportPath:      params.ExportPath,
		now:             now,
		width:           80,
		height:          24,
	}
}

// WithDimensions returns a copy of the App sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Controller exposes the underlying controller.
func (a App) Controller() *selector.Controller {
	return a.ctrl
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode()
}

// Message returns the current notice text, if any.
func (a App) Message() string {
	return a.messageText
}

// FinalSelection returns the selected entry, used after the program exits.
func (a App) FinalSelection() (model.Entry, bool) {
	return a.ctrl.Selected()
}

func (a App) mode() Mode {
	if a.showHelp {
		return ModeHelp
	}
	switch a.ctrl.Modal() {
	case selector.ModalAdd:
		return ModeAdd
	case selector.ModalDelete:
		return ModeConfirmDelete
	}
	if a.ctrl.Widget().IsOpen() {
		return ModeOpen
	}
	return ModeClosed
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.BlurMsg:
		a.closeDropdown()
		return a, nil

	case syncDoneMsg:
		return a.handleSyncDone(msg)

	case spinner.TickMsg:
		// Stop ticking once nothing is syncing.
		if _, ok := a.ctrl.ActiveJob(); !ok {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		a.clearMessage()
		switch a.mode() {
		case ModeHelp:
			return a.handleHelpKey(msg)
		case ModeAdd:
			return a.handleAddKey(msg)
		case ModeConfirmDelete:
			return a.handleConfirmDeleteKey(msg)
		case ModeOpen:
			return a.handleOpenKey(msg)
		default:
			return a.handleClosedKey(msg)
		}
	}

	// Forward anything else (cursor blink) to the focused input.
	var cmd tea.Cmd
	switch a.mode() {
	case ModeOpen:
		a.search.Input, cmd = a.search.Input.Update(msg)
	case ModeAdd:
		a.add.Input, cmd = a.add.Input.Update(msg)
	}
	return a, cmd
}

func (a App) handleClosedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Toggle):
		return a.openDropdown()

	case key.Matches(msg, a.keys.Add):
		return a.requestAdd()

	case key.Matches(msg, a.keys.Delete):
		if e, ok := a.ctrl.Selected(); ok {
			return a.requestDelete(e.ID)
		}
		a.setMessage(MessageWarning, "No URL selected")

	case key.Matches(msg, a.keys.Sync):
		if e, ok := a.ctrl.Selected(); ok {
			if a.ctrl.IsSyncing(e.ID) {
				a.setMessage(MessageInfo, "Already syncing "+e.URL)
				return a, nil
			}
			return a.startSync(e.ID)
		}
		a.setMessage(MessageWarning, "No URL selected")

	case key.Matches(msg, a.keys.CancelSync):
		if job, ok := a.ctrl.CancelSync(); ok {
			a.setMessage(MessageInfo, "Sync cancelled for "+a.entryURL(job.EntryID))
		} else {
			a.setMessage(MessageInfo, "No sync in progress")
		}

	case key.Matches(msg, a.keys.Clear):
		a.ctrl.ClearSelection()

	case key.Matches(msg, a.keys.YankURL):
		a.yankSelected()

	case key.Matches(msg, a.keys.Export):
		a.exportSession()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	}

	return a, nil
}

func (a App) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Close):
		a.closeDropdown()

	case key.Matches(msg, a.keys.Up):
		a.ctrl.CursorUp()

	case key.Matches(msg, a.keys.Down):
		a.ctrl.CursorDown()

	case key.Matches(msg, a.keys.Activate):
		a.ctrl.ActivateRow()
		a.search.Input.Blur()

	case key.Matches(msg, a.keys.DeleteRow):
		if e, ok := a.ctrl.CursorEntry(); ok {
			a.search.Input.Blur()
			return a.requestDelete(e.ID)
		}

	case key.Matches(msg, a.keys.SyncRow):
		if e, ok := a.ctrl.CursorEntry(); ok {
			// The syncing row shows a spinner instead of accepting a new request.
			if a.ctrl.IsSyncing(e.ID) {
				a.setMessage(MessageInfo, "Already syncing "+e.URL)
				return a, nil
			}
			a.search.Input.Blur()
			return a.startSync(e.ID)
		}

	case key.Matches(msg, a.keys.AddRow):
		a.search.Input.Blur()
		return a.requestAdd()

	default:
		var cmd tea.Cmd
		a.search.Input, cmd = a.search.Input.Update(msg)
		a.ctrl.SetSearch(a.search.Input.Value())
		return a, cmd
	}

	return a, nil
}

func (a App) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Submit):
		e, err := a.ctrl.ConfirmAdd(a.add.Input.Value())
		if err != nil {
			a.add.Err = err
			return a, nil
		}
		a.add.Input.Blur()
		a.setMessage(MessageSuccess, "Added "+e.URL)

	case key.Matches(msg, a.keys.Back):
		a.ctrl.CancelAdd()
		a.add.Input.Blur()

	default:
		var cmd tea.Cmd
		a.add.Input, cmd = a.add.Input.Update(msg)
		a.add.Err = nil
		return a, cmd
	}

	return a, nil
}

func (a App) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Submit), key.Matches(msg, a.keys.Yes):
		if e, ok := a.ctrl.ConfirmDelete(); ok {
			a.setMessage(MessageSuccess, "Deleted "+e.URL)
		}

	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.No):
		a.ctrl.CancelDelete()
	}

	return a, nil
}

func (a App) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ForceQuit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Quit):
		a.showHelp = false
	}
	return a, nil
}

func (a App) handleSyncDone(msg syncDoneMsg) (tea.Model, tea.Cmd) {
	e, ok := a.ctrl.CompleteSync(msg.token)
	if !ok {
		return a, nil
	}
	if e.Status == model.StatusError {
		a.setMessage(MessageError, "Sync failed for "+e.URL)
	} else {
		a.setMessage(MessageSuccess, "Synced "+e.URL)
	}
	return a, nil
}

func (a App) openDropdown() (tea.Model, tea.Cmd) {
	if !a.ctrl.ToggleOpen() {
		a.setMessage(MessageWarning, "Selected URL is syncing")
		return a, nil
	}
	a.search.Reset()
	return a, a.search.Input.Focus()
}

func (a *App) closeDropdown() {
	a.ctrl.Close()
	a.search.Input.Blur()
}

func (a App) requestAdd() (tea.Model, tea.Cmd) {
	a.ctrl.RequestAdd()
	a.add.Reset()
	return a, a.add.Input.Focus()
}

func (a App) requestDelete(id int64) (tea.Model, tea.Cmd) {
	if !a.ctrl.RequestDelete(id) {
		return a, nil
	}
	if !a.confirmDelete {
		if e, ok := a.ctrl.ConfirmDelete(); ok {
			a.setMessage(MessageSuccess, "Deleted "+e.URL)
		}
	}
	return a, nil
}

func (a App) startSync(id int64) (tea.Model, tea.Cmd) {
	job, ok := a.ctrl.RequestSync(id)
	if !ok {
		return a, nil
	}
	a.setMessage(MessageInfo, "Syncing "+a.entryURL(id))
	return a, tea.Batch(a.syncCmd(job), a.spinner.Tick)
}

// syncCmd schedules completion of job after the simulator's delay.
func (a App) syncCmd(job syncsim.Job) tea.Cmd {
	token := job.Token
	return tea.Tick(a.ctrl.SyncDelay(), func(time.Time) tea.Msg {
		return syncDoneMsg{token: token}
	})
}

func (a *App) yankSelected() {
	e, ok := a.ctrl.Selected()
	if !ok {
		a.setMessage(MessageWarning, "No URL selected")
		return
	}
	if err := a.copyToClipboard(e.URL); err != nil {
		a.logger.Error("clipboard write failed", "err", err)
		a.setMessage(MessageError, "Could not copy to clipboard")
		return
	}
	a.setMessage(MessageSuccess, "Copied "+e.URL)
}

func (a *App) exportSession() {
	path := a.exportPath
	if path == "" {
		var err error
		path, err = exporter.DefaultExportPath()
		if err != nil {
			a.logger.Error("resolve export path", "err", err)
			a.setMessage(MessageError, "Export failed")
			return
		}
	}

	entries := a.ctrl.Entries()
	if err := exporter.WriteFile(path, entries, a.now()); err != nil {
		a.logger.Error("export failed", "path", path, "err", err)
		a.setMessage(MessageError, "Export failed")
		return
	}
	a.logger.Info("exported session", "path", path, "entries", len(entries))
	a.setMessage(MessageSuccess, fmt.Sprintf("Exported %d URLs to %s", len(entries), path))
}

func (a App) entryURL(id int64) string {
	if e, ok := a.ctrl.Entry(id); ok {
		return e.URL
	}
	return "removed URL"
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
