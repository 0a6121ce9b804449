package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_ShowAndCurrent(t *testing.T) {
	n := New(WithDuration(time.Hour))
	defer n.Close()

	n.Success("Book updated successfully!")

	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, KindSuccess, current.Kind)
	assert.Equal(t, "Book updated successfully!", current.Message)
}

func TestNotifier_AutoDismiss(t *testing.T) {
	n := New(WithDuration(20 * time.Millisecond))
	defer n.Close()

	n.Error("Failed to update book")
	require.NotNil(t, n.Current())

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 5*time.Millisecond, "notification must disappear after the display window")
}

func TestNotifier_NewestWins(t *testing.T) {
	n := New(WithDuration(time.Hour))
	defer n.Close()

	n.Error("first")
	n.Success("second")

	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, KindSuccess, current.Kind)
}

func TestNotifier_ReplaceRestartsTimer(t *testing.T) {
	n := New(WithDuration(60 * time.Millisecond))
	defer n.Close()

	n.Success("first")
	time.Sleep(40 * time.Millisecond)
	n.Success("second")

	// The first timer would have fired by now; the slot must still show
	// the replacement.
	time.Sleep(30 * time.Millisecond)
	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_ListenerObservesShowAndDismiss(t *testing.T) {
	var mu sync.Mutex
	var events []string

	n := New(
		WithDuration(20*time.Millisecond),
		WithListener(func(notif *Notification) {
			mu.Lock()
			defer mu.Unlock()
			if notif == nil {
				events = append(events, "dismissed")
			} else {
				events = append(events, notif.Message)
			}
		}),
	)
	defer n.Close()

	n.Success("saved")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"saved", "dismissed"}, events)
}
