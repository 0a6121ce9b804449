// Package membership copies an existing user book into other libraries
// without repeating the bibliographic lookup.
package membership

import (
	"context"
	"errors"
	"sync"

	"github.com/athenaeumapp/athenaeum/internal/api"
	"github.com/athenaeumapp/athenaeum/internal/entities"
)

var (
	// ErrNoSelection means CopyTo was invoked with nothing selected; no
	// network call is made.
	ErrNoSelection = errors.New("no libraries selected")

	// ErrBusy means a fetch or copy is already in flight.
	ErrBusy = errors.New("operation already in flight")
)

// API is the slice of the API client the picker needs.
type API interface {
	MissingLibraries(ctx context.Context, userBookID string) ([]entities.LibraryRef, error)
	AddToLibrary(ctx context.Context, libraryID string, userBookIDs []string) error
}

// StatusNotifier surfaces operation outcomes to the user.
type StatusNotifier interface {
	Success(message string)
	Error(message string)
}

// Picker is the selection dialog for copying one book into other libraries.
// The server decides which libraries are offered; the client never computes
// membership locally.
type Picker struct {
	mu sync.Mutex

	api      API
	notifier StatusNotifier
	bookID   string

	open      bool
	inFlight  bool
	available []entities.LibraryRef
	selected  map[string]bool
}

// NewPicker creates a picker for one user book.
func NewPicker(membershipAPI API, notifier StatusNotifier, userBookID string) *Picker {
	return &Picker{
		api:      membershipAPI,
		notifier: notifier,
		bookID:   userBookID,
		selected: make(map[string]bool),
	}
}

// Open fetches the libraries the book is missing from and opens the dialog.
// On failure the dialog does not open and a single error notification is
// shown; a missing token aborts silently so the caller can redirect to login.
func (p *Picker) Open(ctx context.Context) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return ErrBusy
	}
	p.inFlight = true
	bookID := p.bookID
	p.mu.Unlock()

	libs, err := p.api.MissingLibraries(ctx, bookID)

	p.mu.Lock()
	p.inFlight = false
	if err != nil {
		p.mu.Unlock()
		if errors.Is(err, api.ErrNoToken) {
			return err
		}
		p.notifier.Error("Failed to load libraries")
		return err
	}

	p.available = libs
	p.open = true
	p.mu.Unlock()
	return nil
}

// IsOpen reports whether the dialog is visible.
func (p *Picker) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Available returns the offered libraries in the server's order.
func (p *Picker) Available() []entities.LibraryRef {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entities.LibraryRef(nil), p.available...)
}

// Toggle flips the selection of one offered library. Unknown ids are
// ignored. Reports whether the library is selected afterwards.
func (p *Picker) Toggle(libraryID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	known := false
	for _, lib := range p.available {
		if lib.ID == libraryID {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	p.selected[libraryID] = !p.selected[libraryID]
	return p.selected[libraryID]
}

// Selected returns the selected library ids in the offered order.
func (p *Picker) Selected() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectedLocked()
}

func (p *Picker) selectedLocked() []string {
	ids := make([]string, 0, len(p.selected))
	for _, lib := range p.available {
		if p.selected[lib.ID] {
			ids = append(ids, lib.ID)
		}
	}
	return ids
}

// Cancel closes the dialog without copying.
func (p *Picker) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// CopyTo issues one membership-creation call per selected library. Every
// call is attempted even if some fail; there is no rollback. The outcome is
// reported as a single aggregate: on success the dialog closes and the
// selection resets, on any failure the dialog stays open with the selection
// preserved. An empty selection is a no-op that never reaches the network.
func (p *Picker) CopyTo(ctx context.Context) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return ErrBusy
	}
	targets := p.selectedLocked()
	if len(targets) == 0 {
		p.mu.Unlock()
		return ErrNoSelection
	}
	bookID := p.bookID
	p.inFlight = true
	p.mu.Unlock()

	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, libraryID := range targets {
		wg.Add(1)
		go func(i int, libraryID string) {
			defer wg.Done()
			errs[i] = p.api.AddToLibrary(ctx, libraryID, []string{bookID})
		}(i, libraryID)
	}
	wg.Wait()

	aggregate := errors.Join(errs...)

	p.mu.Lock()
	p.inFlight = false
	if aggregate != nil {
		p.mu.Unlock()
		if errors.Is(aggregate, api.ErrNoToken) {
			return aggregate
		}
		p.notifier.Error("Failed to copy book")
		return aggregate
	}

	p.open = false
	p.selected = make(map[string]bool)
	p.mu.Unlock()

	p.notifier.Success("Book copied successfully!")
	return nil
}
