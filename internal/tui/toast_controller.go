package tui

import (
	"time"

	"github.com/hay-kot/tubenotes/internal/core/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	errorToastTTL     = 8 * time.Second
	defaultMaxToasts  = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 48
)

type toast struct {
	notification notify.Notification
	expiresAt    time.Time
}

// ToastController manages the lifecycle of active toast notifications.
// Expiry is computed from absolute time, so extra ticks are harmless.
type ToastController struct {
	toasts []toast
	now    func() time.Time
}

func NewToastController() *ToastController {
	return &ToastController{now: time.Now}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted. Errors stay up longer.
func (c *ToastController) Push(n notify.Notification) {
	ttl := defaultToastTTL
	if n.Level == notify.LevelError {
		ttl = errorToastTTL
	}

	c.toasts = append(c.toasts, toast{
		notification: n,
		expiresAt:    c.now().Add(ttl),
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick removes every toast whose TTL has elapsed.
func (c *ToastController) Tick() {
	now := c.now()
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.expiresAt) {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

func (c *ToastController) Toasts() []toast {
	return c.toasts
}
