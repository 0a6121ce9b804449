// Package editor owns the detail view of one user book: the draft buffer,
// the view/edit/confirm-delete state machine, and the save and delete flows.
package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/athenaeumapp/athenaeum/internal/api"
	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// State is the presentation state of the detail view.
type State string

const (
	// StateViewing shows the persisted values read-only.
	StateViewing State = "viewing"
	// StateEditing makes the buffer fields mutable.
	StateEditing State = "editing"
	// StateConfirmingDelete gates deletion behind an explicit confirm.
	StateConfirmingDelete State = "confirming_delete"
)

var (
	// ErrBusy means a save or delete is already in flight; the second
	// invocation is rejected rather than queued.
	ErrBusy = errors.New("operation already in flight")

	// ErrClosed means the detail view was closed.
	ErrClosed = errors.New("detail view closed")

	// ErrNotEditing means Save was invoked outside edit mode.
	ErrNotEditing = errors.New("not in edit mode")

	// ErrNotConfirming means a confirm/cancel arrived without a pending
	// delete request.
	ErrNotConfirming = errors.New("no delete pending confirmation")
)

// BooksAPI is the slice of the API client the controller needs.
type BooksAPI interface {
	UpdateBook(ctx context.Context, userBookID string, req api.UpdateBookRequest) error
	DeleteBooks(ctx context.Context, userBookIDs []string) error
	RemoveFromLibrary(ctx context.Context, libraryID string, userBookIDs []string) error
}

// ListView is the owning list collaborator. After a successful mutation the
// controller evicts locally and asks the list to invalidate and refetch.
type ListView interface {
	Evict(userBookID string)
	Refresh()
}

// StatusNotifier surfaces operation outcomes to the user.
type StatusNotifier interface {
	Success(message string)
	Error(message string)
}

// Controller presents one user book and orchestrates editing, saving,
// deletion with confirmation, and the refresh contract with its parent list.
// Each open detail view owns exactly one Controller; controllers for sibling
// books are fully independent.
type Controller struct {
	mu sync.Mutex

	book      entities.UserBook
	buf       *Buffer
	libraryID string

	state     State
	prevState State
	inFlight  bool
	closed    bool

	api      BooksAPI
	notifier StatusNotifier
	list     ListView
}

// NewController opens a detail view for one book. libraryID is empty when
// the view was opened from the account-wide list; when present, delete means
// "remove from this library" instead of "delete from account".
func NewController(book entities.UserBook, libraryID string, booksAPI BooksAPI, notifier StatusNotifier, list ListView) *Controller {
	return &Controller{
		book:      book,
		buf:       NewBuffer(book),
		libraryID: libraryID,
		state:     StateViewing,
		api:       booksAPI,
		notifier:  notifier,
		list:      list,
	}
}

// Book returns the persisted record the view was opened with.
func (c *Controller) Book() entities.UserBook {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.book
}

// Buffer exposes the draft for display. Mutations should go through the
// controller methods.
func (c *Controller) Buffer() *Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf
}

// State returns the current presentation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InFlight reports whether a save or delete is pending. The UI must disable
// the triggering controls while true.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// IsInLibrary reports whether the view was opened in a library context.
func (c *Controller) IsInLibrary() bool {
	return c.libraryID != ""
}

// ToggleEdit flips Viewing and Editing. Leaving edit mode does not discard
// in-progress edits: the buffer keeps the draft and re-entering resumes it.
// A no-op while a save or delete is in flight or a delete awaits confirmation.
func (c *Controller) ToggleEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight || c.closed || c.state == StateConfirmingDelete {
		return
	}

	if c.state == StateEditing {
		c.state = StateViewing
	} else {
		c.state = StateEditing
	}
}

// SetRating updates the draft rating. 0 means "not rated".
func (c *Controller) SetRating(rating int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Rating = rating
}

// SetReadStatus updates the draft reading status.
func (c *Controller) SetReadStatus(status entities.ReadStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.ReadStatus = status
}

// SetNotes updates the draft personal notes.
func (c *Controller) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.PersonalNotes = notes
}

// AddGenre adds a genre to the draft set; duplicates and blank input are
// silent no-ops.
func (c *Controller) AddGenre(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.AddGenre(text)
}

// RemoveGenre removes an exact match from the draft set.
func (c *Controller) RemoveGenre(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.RemoveGenre(text)
}

// AddTag adds a tag to the draft set; duplicates and blank input are silent
// no-ops.
func (c *Controller) AddTag(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.AddTag(text)
}

// RemoveTag removes an exact match from the draft set.
func (c *Controller) RemoveTag(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.RemoveTag(text)
}

// Save persists the full draft as a partial update keyed by the record id.
// On success it emits a success notification, exits edit mode, and asks the
// parent list to refresh; on failure it emits an error notification and
// stays in edit mode with the buffer intact. A missing token aborts before
// any network I/O, without a notification, so the caller can redirect to
// login. An unchanged draft skips the network call but still completes.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state != StateEditing {
		c.mu.Unlock()
		return ErrNotEditing
	}
	if err := c.buf.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}

	if !c.buf.Changed(c.book) {
		c.state = StateViewing
		c.mu.Unlock()
		c.notifier.Success("Book updated successfully!")
		c.list.Refresh()
		return nil
	}

	req := c.buf.UpdateRequest()
	id := c.book.ID
	c.inFlight = true
	c.mu.Unlock()

	err := c.api.UpdateBook(ctx, id, req)

	c.mu.Lock()
	c.inFlight = false
	if c.closed {
		// Late response after the view closed: discard the effect.
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, api.ErrNoToken) {
			return err
		}
		c.notifier.Error("Failed to update book")
		return err
	}

	c.state = StateViewing
	c.mu.Unlock()

	c.notifier.Success("Book updated successfully!")
	c.list.Refresh()
	return nil
}

// RequestDelete enters the confirmation state. No network call is made; the
// only exits are CancelDelete and ConfirmDelete.
func (c *Controller) RequestDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight || c.closed || c.state == StateConfirmingDelete {
		return
	}

	c.prevState = c.state
	c.state = StateConfirmingDelete
}

// CancelDelete returns to the state held before RequestDelete, buffer
// untouched. A no-op once ConfirmDelete is in flight.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight || c.state != StateConfirmingDelete {
		return
	}
	c.state = c.prevState
}

// ConfirmDelete executes the pending deletion: against the library's
// membership endpoint when the view is library-scoped, otherwise against the
// account-wide endpoint. On success the owning list evicts the record and
// refreshes, and the view closes. On failure the record stays intact and the
// view returns to the state it was in before the delete request.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != StateConfirmingDelete {
		c.mu.Unlock()
		return ErrNotConfirming
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}

	id := c.book.ID
	libraryID := c.libraryID
	c.inFlight = true
	c.mu.Unlock()

	var err error
	if libraryID != "" {
		err = c.api.RemoveFromLibrary(ctx, libraryID, []string{id})
	} else {
		err = c.api.DeleteBooks(ctx, []string{id})
	}

	c.mu.Lock()
	c.inFlight = false
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.state = c.prevState
		c.mu.Unlock()
		if errors.Is(err, api.ErrNoToken) {
			return err
		}
		c.notifier.Error("Failed to delete book")
		return err
	}

	c.closed = true
	c.mu.Unlock()

	c.list.Evict(id)
	c.list.Refresh()
	return nil
}

// Close abandons the detail view. Unsaved edits are discarded; a response
// from a still-pending save or delete will be dropped when it arrives.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether the view has been closed.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
