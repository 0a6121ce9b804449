package main

import (
	"fmt"
	"os"

	"github.com/athenaeumapp/athenaeum/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "login":
		runCommand(cli.NewLoginCommand(), args)

	case "logout":
		runCommand(cli.NewLogoutCommand(), args)

	case "books":
		runCommand(cli.NewBooksCommand(), args)

	case "add":
		runCommand(cli.NewAddCommand(), args)

	case "edit":
		runCommand(cli.NewEditCommand(), args)

	case "delete":
		runCommand(cli.NewDeleteCommand(), args)

	case "copy":
		runCommand(cli.NewCopyCommand(), args)

	case "libraries":
		runCommand(cli.NewLibrariesCommand(), args)

	case "version":
		fmt.Printf("athenaeum %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// command is the shape every CLI subcommand shares.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func runCommand(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  login      Sign in and store the session token\n")
	fmt.Fprintf(os.Stderr, "  logout     Clear the stored session\n")
	fmt.Fprintf(os.Stderr, "  books      List your books\n")
	fmt.Fprintf(os.Stderr, "  add        Look up an ISBN and add the book\n")
	fmt.Fprintf(os.Stderr, "  edit       Edit a book's annotations\n")
	fmt.Fprintf(os.Stderr, "  delete     Delete a book, or remove it from a library\n")
	fmt.Fprintf(os.Stderr, "  copy       Copy a book into other libraries\n")
	fmt.Fprintf(os.Stderr, "  libraries  Manage libraries and sharing\n")
	fmt.Fprintf(os.Stderr, "  version    Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
