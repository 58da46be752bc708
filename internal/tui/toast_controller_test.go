package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/tubenotes/internal/core/notify"
)

// newTestController returns a controller driven by a fake clock.
func newTestController() (*ToastController, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewToastController()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestToastController_Push(t *testing.T) {
	c, now := newTestController()

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "hello"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, now.Add(defaultToastTTL), c.Toasts()[0].expiresAt)
}

func TestToastController_Push_errors_live_longer(t *testing.T) {
	c, now := newTestController()

	c.Push(notify.Notification{Level: notify.LevelError, Message: "boom"})

	assert.Equal(t, now.Add(errorToastTTL), c.Toasts()[0].expiresAt)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c, _ := newTestController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{Level: notify.LevelInfo, Message: fmt.Sprint(i)})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c, now := newTestController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "expires"})

	*now = now.Add(time.Second)
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "survives"})

	*now = now.Add(defaultToastTTL - time.Second)
	c.Tick()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_is_idempotent(t *testing.T) {
	c, _ := newTestController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "stay"})

	c.Tick()
	c.Tick()

	assert.Len(t, c.Toasts(), 1)
}

func TestToastController_Dismiss(t *testing.T) {
	c, _ := newTestController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})

	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
}

func TestToastController_Dismiss_empty(t *testing.T) {
	c, _ := newTestController()
	c.Dismiss()
	assert.False(t, c.HasToasts())
}
