package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

// LoginCommand signs in and stores the bearer token.
type LoginCommand struct {
	Email    string
	Password string
	Register bool
}

// NewLoginCommand creates a new LoginCommand
func NewLoginCommand() *LoginCommand {
	return &LoginCommand{}
}

// ParseFlags parses command line flags
func (cmd *LoginCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)

	fs.StringVar(&cmd.Email, "email", "", "Account email")
	fs.StringVar(&cmd.Password, "password", "", "Password (prompted if omitted)")
	fs.BoolVar(&cmd.Register, "register", false, "Create the account first")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s login [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Sign in to Athenaeum and store the session token locally.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s login -email reader@example.com\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s login -register -email reader@example.com\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the login command
func (cmd *LoginCommand) Run() error {
	if cmd.Email == "" {
		return errors.New("email is required")
	}

	if cmd.Password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		cmd.Password = string(raw)
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	if cmd.Register {
		if err := e.client.Register(ctx, cmd.Email, cmd.Password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		fmt.Println("Account created.")
	}

	resp, err := e.client.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := e.sessions.Save(cmd.Email, resp.AccessToken, resp.TokenType); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Printf("Signed in as %s\n", cmd.Email)
	return nil
}

// LogoutCommand clears the stored session.
type LogoutCommand struct{}

// NewLogoutCommand creates a new LogoutCommand
func NewLogoutCommand() *LogoutCommand {
	return &LogoutCommand{}
}

// ParseFlags parses command line flags
func (cmd *LogoutCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	return fs.Parse(args)
}

// Run executes the logout command
func (cmd *LogoutCommand) Run() error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
