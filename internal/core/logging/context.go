package logging

import "context"

type contextKey string

const (
	videoRefKey  contextKey = "video_ref"
	commentIDKey contextKey = "comment_id"
)

// WithVideoRef adds the video reference an operation is scoped to.
func WithVideoRef(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, videoRefKey, ref)
}

// WithCommentID adds the comment an operation is scoped to.
func WithCommentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commentIDKey, id)
}

// VideoRef retrieves the video reference from the context.
// Returns false if none was set; an empty reference is a valid value.
func VideoRef(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(videoRefKey).(string)
	return ref, ok
}

// CommentID retrieves the comment id from the context.
// Returns empty string if not present.
func CommentID(ctx context.Context) string {
	if id, ok := ctx.Value(commentIDKey).(string); ok {
		return id
	}
	return ""
}
