package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/athenaeumapp/athenaeum/internal/editor"
)

// DeleteCommand deletes a book from the account, or removes it from one
// library when a library context is given.
type DeleteCommand struct {
	ID        string
	LibraryID string
	Yes       bool
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{}
}

// ParseFlags parses command line flags
func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	fs.StringVar(&cmd.ID, "id", "", "User book id (required)")
	fs.StringVar(&cmd.LibraryID, "library", "", "Remove only from this library instead of deleting account-wide")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <user-book-id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a book from your account, or remove it from one library.\n")
		fmt.Fprintf(os.Stderr, "Removing from a library keeps the book in the account and in\n")
		fmt.Fprintf(os.Stderr, "every other library it belongs to.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the delete command
func (cmd *DeleteCommand) Run() error {
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
	ctrl.RequestDelete()

	if !cmd.Yes {
		verb := "delete"
		if ctrl.IsInLibrary() {
			verb = "remove"
		}
		fmt.Printf("Are you sure you want to %s %q? [y/N] ", verb, book.Book.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			ctrl.CancelDelete()
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctrl.ConfirmDelete(ctx); err != nil {
		return err
	}

	if ctrl.IsInLibrary() {
		fmt.Println("Book removed from library.")
	} else {
		fmt.Println("Book deleted.")
	}
	return nil
}
