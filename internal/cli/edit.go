package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/athenaeumapp/athenaeum/internal/editor"
	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// listView is the list collaborator the detail controller reports to. The
// CLI shows a single row, so Refresh refetches the authoritative list and
// re-renders the watched book with the server's values.
type listView struct {
	e          *env
	libraryID  string
	userBookID string

	evicted bool
}

func (l *listView) Evict(userBookID string) {
	if userBookID == l.userBookID {
		l.evicted = true
	}
}

func (l *listView) Refresh() {
	if l.evicted {
		return
	}
	book, err := fetchBook(context.Background(), l.e, l.userBookID, l.libraryID)
	if err != nil {
		log.Printf("WARNING: refresh after mutation failed: %v", err)
		return
	}
	printBook(book)
}

// fetchBook resolves a user book by id, within a library when scoped.
func fetchBook(ctx context.Context, e *env, userBookID, libraryID string) (entities.UserBook, error) {
	var books []entities.UserBook
	if libraryID != "" {
		resp, err := e.client.LibraryBooks(ctx, libraryID)
		if err != nil {
			return entities.UserBook{}, fmt.Errorf("failed to fetch library: %w", err)
		}
		books = resp.Books
	} else {
		resp, err := e.client.ListBooks(ctx, "")
		if err != nil {
			return entities.UserBook{}, fmt.Errorf("failed to fetch books: %w", err)
		}
		books = resp.Items
	}

	for _, b := range books {
		if b.ID == userBookID {
			return b, nil
		}
	}
	return entities.UserBook{}, fmt.Errorf("book %s not found", userBookID)
}

// EditCommand edits one book's annotations and saves them.
type EditCommand struct {
	ID           string
	LibraryID    string
	Rating       int
	Status       string
	Notes        string
	AddGenres    string
	RemoveGenres string
	AddTags      string
	RemoveTags   string

	ratingSet bool
	notesSet  bool
}

// NewEditCommand creates a new EditCommand
func NewEditCommand() *EditCommand {
	return &EditCommand{}
}

// ParseFlags parses command line flags
func (cmd *EditCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)

	fs.StringVar(&cmd.ID, "id", "", "User book id (required)")
	fs.StringVar(&cmd.LibraryID, "library", "", "Library context the book was opened from")
	fs.IntVar(&cmd.Rating, "rating", 0, "Rating 1-5, or 0 to clear")
	fs.StringVar(&cmd.Status, "status", "", "Reading status: unread, reading or completed")
	fs.StringVar(&cmd.Notes, "notes", "", "Personal notes")
	fs.StringVar(&cmd.AddGenres, "add-genres", "", "Comma-separated genres to add")
	fs.StringVar(&cmd.RemoveGenres, "remove-genres", "", "Comma-separated genres to remove")
	fs.StringVar(&cmd.AddTags, "add-tags", "", "Comma-separated tags to add")
	fs.StringVar(&cmd.RemoveTags, "remove-tags", "", "Comma-separated tags to remove")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s edit -id <user-book-id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Edit a book's rating, status, notes, genres and tags.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s edit -id 665f... -rating 5 -status completed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s edit -id 665f... -add-tags noir,mystery\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rating":
			cmd.ratingSet = true
		case "notes":
			cmd.notesSet = true
		}
	})

	return nil
}

// Run executes the edit command
func (cmd *EditCommand) Run() error {
	if cmd.ID == "" {
		return fmt.Errorf("-id is required")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	book, err := fetchBook(ctx, e, cmd.ID, cmd.LibraryID)
	if err != nil {
		return err
	}

	ctrl := editor.NewController(book, cmd.LibraryID, e.client, e.notifier,
		&listView{e: e, libraryID: cmd.LibraryID, userBookID: cmd.ID})
	ctrl.ToggleEdit()

	if cmd.ratingSet {
		ctrl.SetRating(cmd.Rating)
	}
	if cmd.Status != "" {
		status := entities.ReadStatus(cmd.Status)
		if !status.Valid() {
			return fmt.Errorf("invalid status %q", cmd.Status)
		}
		ctrl.SetReadStatus(status)
	}
	if cmd.notesSet {
		ctrl.SetNotes(cmd.Notes)
	}
	for _, g := range splitList(cmd.AddGenres) {
		ctrl.AddGenre(g)
	}
	for _, g := range splitList(cmd.RemoveGenres) {
		ctrl.RemoveGenre(g)
	}
	for _, t := range splitList(cmd.AddTags) {
		ctrl.AddTag(t)
	}
	for _, t := range splitList(cmd.RemoveTags) {
		ctrl.RemoveTag(t)
	}

	return ctrl.Save(ctx)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
