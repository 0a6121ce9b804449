package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/athenaeumapp/athenaeum/internal/api"
)

// LibrariesCommand manages the account's libraries.
type LibrariesCommand struct {
	Create    string
	Public    bool
	Rename    string
	Name      string
	Delete    string
	Publish   string
	Unpublish string
}

// NewLibrariesCommand creates a new LibrariesCommand
func NewLibrariesCommand() *LibrariesCommand {
	return &LibrariesCommand{}
}

// ParseFlags parses command line flags
func (cmd *LibrariesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("libraries", flag.ExitOnError)

	fs.StringVar(&cmd.Create, "create", "", "Create a library with this name")
	fs.BoolVar(&cmd.Public, "public", false, "Make the created library public")
	fs.StringVar(&cmd.Rename, "rename", "", "Library id to rename (use with -name)")
	fs.StringVar(&cmd.Name, "name", "", "New name for -rename")
	fs.StringVar(&cmd.Delete, "delete", "", "Library id to delete")
	fs.StringVar(&cmd.Publish, "publish", "", "Library id to make public")
	fs.StringVar(&cmd.Unpublish, "unpublish", "", "Library id to make private")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s libraries [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Without options, lists your libraries and their sharing URLs.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the libraries command
func (cmd *LibrariesCommand) Run() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	switch {
	case cmd.Create != "":
		resp, err := e.client.CreateLibrary(ctx, api.CreateLibraryRequest{
			Name:     cmd.Create,
			IsPublic: cmd.Public,
		})
		if err != nil {
			return fmt.Errorf("failed to create library: %w", err)
		}
		fmt.Printf("Library created. Slug: %s\n", resp.Slug)
		return nil

	case cmd.Rename != "":
		if cmd.Name == "" {
			return fmt.Errorf("-name is required with -rename")
		}
		req := api.UpdateLibraryRequest{Name: &cmd.Name}
		if err := e.client.UpdateLibrary(ctx, cmd.Rename, req); err != nil {
			return fmt.Errorf("failed to rename library: %w", err)
		}
		fmt.Println("Library renamed.")
		return nil

	case cmd.Delete != "":
		if err := e.client.DeleteLibrary(ctx, cmd.Delete); err != nil {
			return fmt.Errorf("failed to delete library: %w", err)
		}
		fmt.Println("Library deleted.")
		return nil

	case cmd.Publish != "" || cmd.Unpublish != "":
		id := cmd.Publish
		isPublic := true
		if id == "" {
			id = cmd.Unpublish
			isPublic = false
		}
		req := api.UpdateLibraryRequest{IsPublic: &isPublic}
		if err := e.client.UpdateLibrary(ctx, id, req); err != nil {
			return fmt.Errorf("failed to update library: %w", err)
		}
		if isPublic {
			fmt.Println("Library is now public.")
		} else {
			fmt.Println("Library made private.")
		}
		return nil
	}

	libs, err := e.client.ListLibraries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list libraries: %w", err)
	}

	if len(libs) == 0 {
		fmt.Println("No libraries yet.")
		return nil
	}

	for _, lib := range libs {
		marker := ""
		if lib.IsDefault {
			marker = " (default)"
		}
		fmt.Printf("%s  %s%s\n", lib.ID, lib.Name, marker)
		if lib.IsPublic && lib.Slug != "" {
			fmt.Printf("    public: %s\n", e.client.PublicLibraryURL(lib.Slug))
		}
	}
	return nil
}
