// Package selector is the root controller of the domain selector. It owns
// the entry store, the sync simulator, the dropdown widget and the two modal
// dialogs, and applies user intents to them. It is not safe for concurrent
// use: every call is expected to come from the same event loop.
package selector

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/syncsim"
)

// Modal identifies the dialog currently shown, if any.
type Modal int

const (
	ModalNone Modal = iota
	ModalAdd
	ModalDelete
)

// DeleteTarget is the entry captured when the delete dialog opened.
type DeleteTarget struct {
	ID  int64
	URL string
}

// Params holds parameters for creating a Controller.
type Params struct {
	Seed   []model.Entry
	Sync   *syncsim.Simulator // optional, uses syncsim defaults if nil
	Logger *log.Logger        // optional, discards if nil
}

// Controller applies intents to the selector state.
type Controller struct {
	store  *model.Store
	sync   *syncsim.Simulator
	widget Widget
	log    *log.Logger

	modal        Modal
	deleteTarget DeleteTarget
}

// New creates a Controller. The first seed entry starts selected.
func New(params Params) *Controller {
	sim := params.Sync
	if sim == nil {
		sim = syncsim.New(syncsim.Params{})
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		store: model.NewStore(params.Seed),
		sync:  sim,
		log:   logger,
	}

	if len(params.Seed) > 0 {
		_ = c.store.Select(params.Seed[0].ID)
	}
	return c
}

// Entries returns all entries in order.
func (c *Controller) Entries() []model.Entry {
	return c.store.Entries()
}

// Entry finds an entry by id.
func (c *Controller) Entry(id int64) (model.Entry, bool) {
	return c.store.Get(id)
}

// Selected returns the selected entry, if any.
func (c *Controller) Selected() (model.Entry, bool) {
	return c.store.Selected()
}

// Widget returns the dropdown state.
func (c *Controller) Widget() *Widget {
	return &c.widget
}

// Visible returns the entries the open dropdown shows.
func (c *Controller) Visible() []model.Entry {
	return c.widget.Visible(c.store.Entries())
}

// Rows returns the number of rows in the open dropdown, including the clear row.
func (c *Controller) Rows() int {
	return len(c.Visible()) + 1
}

// ActiveJob returns the in-flight sync, if any.
func (c *Controller) ActiveJob() (syncsim.Job, bool) {
	return c.sync.Active()
}

// IsSyncing reports whether entryID is being synced.
func (c *Controller) IsSyncing(entryID int64) bool {
	return c.sync.IsSyncing(entryID)
}

// SyncDelay returns how long a sync takes.
func (c *Controller) SyncDelay() time.Duration {
	return c.sync.Delay()
}

// Modal returns the dialog currently shown.
func (c *Controller) Modal() Modal {
	return c.modal
}

// DeleteTarget returns the entry the delete dialog is asking about.
func (c *Controller) DeleteTarget() DeleteTarget {
	return c.deleteTarget
}

// SelectionLocked reports whether the selected entry is mid-sync, which
// keeps the dropdown from opening.
func (c *Controller) SelectionLocked() bool {
	id, ok := c.store.SelectedID()
	return ok && c.sync.IsSyncing(id)
}

// ToggleOpen flips the dropdown. Opening is refused while the selected entry
// is syncing. Returns whether the state changed.
func (c *Controller) ToggleOpen() bool {
	if c.widget.IsOpen() {
		c.widget.Close()
		return true
	}
	if c.SelectionLocked() {
		c.log.Debug("toggle ignored, selection is syncing")
		return false
	}
	c.widget.openList()
	return true
}

// Close hides the dropdown (focus lost, Esc).
func (c *Controller) Close() {
	c.widget.Close()
}

// SetSearch updates the filter. Ignored while the dropdown is closed or
// when the text is unchanged, so the cursor only resets on real edits.
func (c *Controller) SetSearch(text string) {
	if !c.widget.IsOpen() || text == c.widget.Query() {
		return
	}
	c.widget.setSearch(text)
}

// CursorUp moves the highlighted row up.
func (c *Controller) CursorUp() {
	c.widget.moveCursor(-1, c.Rows())
}

// CursorDown moves the highlighted row down.
func (c *Controller) CursorDown() {
	c.widget.moveCursor(1, c.Rows())
}

// CursorEntry returns the entry under the cursor; false on the clear row.
func (c *Controller) CursorEntry() (model.Entry, bool) {
	cur := c.widget.Cursor()
	visible := c.Visible()
	if cur == ClearRow || cur > len(visible) {
		return model.Entry{}, false
	}
	return visible[cur-1], true
}

// ActivateRow selects the highlighted row: the clear row clears the selection.
func (c *Controller) ActivateRow() {
	if e, ok := c.CursorEntry(); ok {
		c.SelectEntry(e.ID)
		return
	}
	c.ClearSelection()
}

// SelectEntry selects an entry and closes the dropdown.
func (c *Controller) SelectEntry(id int64) {
	if err := c.store.Select(id); err != nil {
		c.log.Debug("select ignored", "id", id, "err", err)
	}
	c.widget.Close()
}

// ClearSelection deselects and closes the dropdown.
func (c *Controller) ClearSelection() {
	c.store.ClearSelection()
	c.widget.Close()
}

// RequestAdd opens the add dialog.
func (c *Controller) RequestAdd() {
	c.widget.Close()
	c.modal = ModalAdd
}

// ConfirmAdd adds the url and selects it. On ErrEmptyURL the dialog stays open.
func (c *Controller) ConfirmAdd(raw string) (model.Entry, error) {
	e, err := c.store.Add(raw)
	if err != nil {
		return model.Entry{}, err
	}
	c.log.Info("entry added", "id", e.ID, "url", e.URL)
	c.modal = ModalNone
	return e, nil
}

// CancelAdd closes the add dialog without effect.
func (c *Controller) CancelAdd() {
	if c.modal == ModalAdd {
		c.modal = ModalNone
	}
}

// RequestDelete opens the delete dialog for id. Returns false if id is unknown.
func (c *Controller) RequestDelete(id int64) bool {
	c.widget.Close()
	e, ok := c.store.Get(id)
	if !ok {
		return false
	}
	c.deleteTarget = DeleteTarget{ID: e.ID, URL: e.URL}
	c.modal = ModalDelete
	return true
}

// ConfirmDelete removes the captured entry, cancelling a sync that targets it.
// A target deleted in the meantime is a silent no-op.
func (c *Controller) ConfirmDelete() (model.Entry, bool) {
	if c.modal != ModalDelete {
		return model.Entry{}, false
	}
	target := c.deleteTarget
	c.modal = ModalNone
	c.deleteTarget = DeleteTarget{}

	removed, err := c.store.Remove(target.ID)
	if err != nil {
		c.log.Debug("delete ignored", "id", target.ID, "err", err)
		return model.Entry{}, false
	}
	if c.sync.CancelFor(removed.ID) {
		c.log.Info("sync cancelled by delete", "id", removed.ID)
	}
	c.log.Info("entry deleted", "id", removed.ID, "url", removed.URL)
	return removed, true
}

// CancelDelete closes the delete dialog without effect.
func (c *Controller) CancelDelete() {
	if c.modal == ModalDelete {
		c.modal = ModalNone
		c.deleteTarget = DeleteTarget{}
	}
}

// RequestSync starts a sync for id, superseding any active one, and selects
// id immediately. The caller schedules CompleteSync(job.Token) after the delay.
func (c *Controller) RequestSync(id int64) (syncsim.Job, bool) {
	c.widget.Close()
	if _, ok := c.store.Get(id); !ok {
		return syncsim.Job{}, false
	}

	job, superseded := c.sync.Start(id)
	if superseded != nil {
		c.log.Info("sync superseded", "id", superseded.EntryID, "by", id)
	}
	_ = c.store.Select(id)
	c.log.Info("sync started", "id", id, "token", job.Token)
	return job, true
}

// CancelSync drops the active sync without touching the entry's status.
func (c *Controller) CancelSync() (syncsim.Job, bool) {
	job, ok := c.sync.Cancel()
	if ok {
		c.log.Info("sync cancelled", "id", job.EntryID)
	}
	return job, ok
}

// CompleteSync applies the outcome of the job identified by token. Stale
// tokens and entries deleted in the meantime are ignored.
func (c *Controller) CompleteSync(token string) (model.Entry, bool) {
	job, status, ok := c.sync.Finish(token)
	if !ok {
		c.log.Debug("stale sync completion ignored", "token", token)
		return model.Entry{}, false
	}

	if err := c.store.UpdateStatus(job.EntryID, status, model.JustNow); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			c.log.Error("sync update failed", "id", job.EntryID, "err", err)
		}
		return model.Entry{}, false
	}

	e, _ := c.store.Get(job.EntryID)
	c.log.Info("sync completed", "id", e.ID, "status", e.Status)
	return e, true
}
