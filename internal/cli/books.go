package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/athenaeumapp/athenaeum/internal/entities"
)

// BooksCommand lists the books of the account or of one library.
type BooksCommand struct {
	Query     string
	LibraryID string
}

// NewBooksCommand creates a new BooksCommand
func NewBooksCommand() *BooksCommand {
	return &BooksCommand{}
}

// ParseFlags parses command line flags
func (cmd *BooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("books", flag.ExitOnError)

	fs.StringVar(&cmd.Query, "q", "", "Free-text search query")
	fs.StringVar(&cmd.LibraryID, "library", "", "List one library instead of the whole account")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List your books with ratings, status, genres and tags.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the books command
func (cmd *BooksCommand) Run() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	var books []entities.UserBook
	if cmd.LibraryID != "" {
		resp, err := e.client.LibraryBooks(ctx, cmd.LibraryID)
		if err != nil {
			return fmt.Errorf("failed to list library books: %w", err)
		}
		fmt.Printf("Library: %s\n\n", resp.Library.Name)
		books = resp.Books
	} else {
		resp, err := e.client.ListBooks(ctx, cmd.Query)
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}
		books = resp.Items
	}

	if len(books) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	for _, b := range books {
		printBook(b)
	}
	return nil
}

func printBook(b entities.UserBook) {
	rating := "unrated"
	if b.Rated() {
		rating = strings.Repeat("★", b.Rating) + strings.Repeat("☆", 5-b.Rating)
	}

	fmt.Printf("%s  %s\n", b.ID, b.Book.Title)
	if len(b.Book.Authors) > 0 {
		fmt.Printf("    by %s\n", strings.Join(b.Book.Authors, ", "))
	}
	fmt.Printf("    %s | %s\n", b.ReadStatus, rating)
	if len(b.Genres) > 0 {
		fmt.Printf("    genres: %s\n", strings.Join(b.Genres, ", "))
	}
	if len(b.Tags) > 0 {
		fmt.Printf("    tags: #%s\n", strings.Join(b.Tags, " #"))
	}
	if b.PersonalNotes != "" {
		fmt.Printf("    notes: %s\n", b.PersonalNotes)
	}
	fmt.Println()
}
