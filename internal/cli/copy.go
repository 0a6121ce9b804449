package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/athenaeumapp/athenaeum/internal/membership"
)

// CopyCommand copies a book into one or more other libraries.
type CopyCommand struct {
	ID        string
	Libraries string
}

// NewCopyCommand creates a new CopyCommand
func NewCopyCommand() *CopyCommand {
	return &CopyCommand{}
}

// ParseFlags parses command line flags
func (cmd *CopyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)

	fs.StringVar(&cmd.ID, "id", "", "User book id (required)")
	fs.StringVar(&cmd.Libraries, "libraries", "", "Comma-separated target library ids or names")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s copy -id <user-book-id> -libraries <targets>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Copy a book into other libraries. Without -libraries, lists the\n")
		fmt.Fprintf(os.Stderr, "libraries the book is not in yet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the copy command
func (cmd *CopyCommand) Run() error {
	if cmd.ID == "" {
		return fmt.Errorf("-id is required")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	picker := membership.NewPicker(e.client, e.notifier, cmd.ID)
	if err := picker.Open(ctx); err != nil {
		return err
	}

	available := picker.Available()
	if len(available) == 0 {
		fmt.Println("No available libraries.")
		return nil
	}

	targets := splitList(cmd.Libraries)
	if len(targets) == 0 {
		fmt.Println("Libraries this book is not in yet:")
		for _, lib := range available {
			fmt.Printf("  %s  %s\n", lib.ID, lib.Name)
		}
		return nil
	}

	for _, target := range targets {
		matched := false
		for _, lib := range available {
			if lib.ID == target || lib.Name == target {
				picker.Toggle(lib.ID)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("library %q is not available for this book", target)
		}
	}

	return picker.CopyTo(ctx)
}
