// Package notify holds the single-slot transient status message shown after
// async operations.
package notify

import (
	"sync"
	"time"
)

// DefaultDisplayDuration is how long a notification stays visible.
const DefaultDisplayDuration = 4 * time.Second

// Kind is the notification severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one transient status message.
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier keeps at most one visible notification. A new Show replaces the
// current one and restarts the dismiss timer; there is no queue.
type Notifier struct {
	mu       sync.Mutex
	current  *Notification
	timer    *time.Timer
	gen      uint64
	duration time.Duration
	onChange func(*Notification)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDuration overrides the display duration.
func WithDuration(d time.Duration) Option {
	return func(n *Notifier) { n.duration = d }
}

// WithListener registers a callback invoked with the new notification on
// Show and with nil on dismissal.
func WithListener(fn func(*Notification)) Option {
	return func(n *Notifier) { n.onChange = fn }
}

// New creates a Notifier with the default display duration.
func New(opts ...Option) *Notifier {
	n := &Notifier{duration: DefaultDisplayDuration}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces any visible notification and (re)starts the dismiss timer.
func (n *Notifier) Show(kind Kind, message string) {
	n.mu.Lock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.gen++
	gen := n.gen
	n.current = &Notification{Kind: kind, Message: message}
	notif := n.current
	n.timer = time.AfterFunc(n.duration, func() {
		n.dismiss(gen)
	})

	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(notif)
	}
}

// Success is shorthand for Show(KindSuccess, message).
func (n *Notifier) Success(message string) {
	n.Show(KindSuccess, message)
}

// Error is shorthand for Show(KindError, message).
func (n *Notifier) Error(message string) {
	n.Show(KindError, message)
}

// Current returns the visible notification, or nil once dismissed.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// dismiss clears the slot unless a newer Show already replaced it.
func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	if n.gen != gen {
		n.mu.Unlock()
		return
	}
	n.current = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}

// Close stops the pending dismiss timer.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
}
