// Package notify routes user-facing notifications from the TUI to the toast
// stack and the notification history.
package notify

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It persists each
// notification to a Store and then dispatches it to subscribers inline, so it
// is safe to call from the Bubble Tea Update loop.
type Bus struct {
	store       notify.Store
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given store.
// If store is nil, notifications are dispatched to subscribers but not kept.
func NewBus(store notify.Store) *Bus {
	return &Bus{store: store}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish stores n and hands it to every subscriber. A missing timestamp is
// set to now and a missing VideoRef is taken from ctx.
func (b *Bus) Publish(ctx context.Context, n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.VideoRef == "" {
		n.VideoRef, _ = logging.VideoRef(ctx)
	}

	if b.store != nil {
		id, err := b.store.Save(ctx, n)
		if err != nil {
			log := logging.Component("notify")
			log.Error().Ctx(ctx).Err(err).Str("message", n.Message).Msg("failed to persist notification")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := slices.Clone(b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(ctx context.Context, format string, args ...any) {
	b.publishf(ctx, notify.LevelError, format, args...)
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(ctx context.Context, format string, args ...any) {
	b.publishf(ctx, notify.LevelWarning, format, args...)
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(ctx context.Context, format string, args ...any) {
	b.publishf(ctx, notify.LevelInfo, format, args...)
}

func (b *Bus) publishf(ctx context.Context, level notify.Level, format string, args ...any) {
	b.Publish(ctx, notify.Notification{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// Store returns the backing store, which may be nil.
func (b *Bus) Store() notify.Store {
	return b.store
}

// History returns all stored notifications (newest first).
// Returns nil if no store is configured.
func (b *Bus) History(ctx context.Context) ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(ctx)
}

// Count returns the number of stored notifications, or 0 without a store.
func (b *Bus) Count(ctx context.Context) (int64, error) {
	if b.store == nil {
		return 0, nil
	}
	return b.store.Count(ctx)
}

// Clear deletes all stored notifications.
func (b *Bus) Clear(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(ctx)
}
