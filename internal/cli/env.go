// Package cli implements the athenaeum command line interface.
package cli

import (
	"fmt"
	"log"

	"github.com/athenaeumapp/athenaeum/internal/api"
	"github.com/athenaeumapp/athenaeum/internal/config"
	"github.com/athenaeumapp/athenaeum/internal/notify"
	"github.com/athenaeumapp/athenaeum/internal/session"
)

// env bundles the collaborators every command needs: config, the session
// store, the API client, and the notification channel printing to stdout.
type env struct {
	cfg      *config.Config
	sessions *session.Store
	client   *api.Client
	notifier *notify.Notifier
}

func newEnv() (*env, error) {
	cfg := config.NewConfig()

	sessions, err := session.New(session.Config{
		DatabasePath: cfg.Session.DatabasePath,
		Secret:       cfg.Session.Secret,
		KeyFilePath:  cfg.Session.KeyFilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	notifier := notify.New(
		notify.WithDuration(cfg.Notifications.DisplayDuration),
		notify.WithListener(printNotification),
	)

	return &env{
		cfg:      cfg,
		sessions: sessions,
		client:   api.NewClient(cfg.API.BaseURL, sessions, api.WithTimeout(cfg.API.Timeout)),
		notifier: notifier,
	}, nil
}

func (e *env) close() {
	e.notifier.Close()
	if err := e.sessions.Close(); err != nil {
		log.Printf("WARNING: failed to close session store: %v", err)
	}
}

func printNotification(n *notify.Notification) {
	if n == nil {
		return
	}
	switch n.Kind {
	case notify.KindError:
		fmt.Printf("✗ %s\n", n.Message)
	default:
		fmt.Printf("✓ %s\n", n.Message)
	}
}
