package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier ("cmp" key)
// derived from the global logger. Events logged with .Ctx(ctx) pick up the
// video_ref and comment_id carried by ctx.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
