package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies video_ref and comment_id from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if ref, ok := VideoRef(ctx); ok {
		e.Str("video_ref", ref)
	}

	if id := CommentID(ctx); id != "" {
		e.Str("comment_id", id)
	}
}
