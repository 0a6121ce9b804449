package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/athenaeumapp/athenaeum/internal/api"
	"github.com/athenaeumapp/athenaeum/internal/entities"
	"github.com/athenaeumapp/athenaeum/internal/isbn"
)

// AddCommand looks up an ISBN and adds the book to the account.
type AddCommand struct {
	ISBN string
}

// NewAddCommand creates a new AddCommand
func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

// ParseFlags parses command line flags
func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.ISBN, "isbn", "", "ISBN, 10 or 13 digits (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -isbn <isbn>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Look up a book by ISBN and add it to your account with default\n")
		fmt.Fprintf(os.Stderr, "annotations (unread, unrated).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the add command
func (cmd *AddCommand) Run() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	// Malformed ISBNs never reach the network. ISBN-10 input is converted
	// to its 13-digit form before lookup.
	normalized, err := isbn.Normalize(cmd.ISBN)
	if err != nil {
		e.notifier.Error("ISBN must be exactly 10 or 13 digits.")
		return err
	}

	ctx := context.Background()

	book, err := e.client.LookupISBN(ctx, normalized)
	if err != nil {
		e.notifier.Error("Book not found.")
		return err
	}

	fmt.Printf("%s\n", book.Title)
	if len(book.Authors) > 0 {
		fmt.Printf("  by %s\n", strings.Join(book.Authors, ", "))
	}
	if book.Publisher != "" {
		fmt.Printf("  %s", book.Publisher)
		if book.PublishedYear != 0 {
			fmt.Printf(", %d", book.PublishedYear)
		}
		fmt.Println()
	}

	req := api.UpdateBookRequest{
		Rating:        nil,
		ReadStatus:    string(entities.ReadStatusUnread),
		PersonalNotes: "",
		Genres:        []string{},
		Tags:          []string{},
	}
	if err := e.client.AddBook(ctx, normalized, req); err != nil {
		e.notifier.Error("Failed to add book.")
		return err
	}

	fmt.Println("Added to your account.")
	return nil
}
