package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Count is a view count. The backend may send it as a JSON number or, when it
// passes YouTube statistics through untouched, as a decimal string.
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*c = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse view count %q: %w", s, err)
		}
		*c = Count(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse view count: %w", err)
	}
	*c = Count(n)
	return nil
}

// Video is the body of GET /video.
type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	Views        Count  `json:"views"`
}

// Snippet carries the display text of a comment or reply.
type Snippet struct {
	TextDisplay string `json:"textDisplay"`
}

// Comment is a top-level comment as returned by the comments endpoints.
// Backends may omit Replies or send null; it is always encoded as a list.
type Comment struct {
	ID      string    `json:"id"`
	Snippet Snippet   `json:"snippet"`
	Replies []Snippet `json:"replies"`
}

// ReplyResponse is the body of POST /video/{id}/comment/{commentId}/reply.
type ReplyResponse struct {
	Snippet Snippet `json:"snippet"`
}

// Note is a note as stored by the backend.
type Note struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// TextRequest is the body of the comment and reply create calls.
type TextRequest struct {
	Text string `json:"text"`
}

// NoteRequest is the body of POST /notes. Tags is always sent as an array.
type NoteRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
