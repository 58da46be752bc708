// Package viewstate holds the client-side model of the video page: the loaded
// video, its comment tree, the note list, the input drafts and the loading flag.
//
// State is a plain value. Every transition is a function that takes a State and
// returns the next one; nothing in this package performs I/O.
package viewstate

// Video is the metadata of the currently loaded video.
type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	ViewCount    int64  `json:"views"`
}

// Reply is a single reply to a comment. Replies have no identity of their own;
// they are addressed by position within their parent comment.
type Reply struct {
	Text string `json:"text"`
}

// Comment is a top-level comment and its replies.
type Comment struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Replies []Reply `json:"replies"`
}

// Note is a user-authored note. Tags is nil when the server sent none.
type Note struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// Drafts holds input that has not been submitted yet. A single reply draft is
// shared by every comment: whichever comment is replied to last consumes it.
type Drafts struct {
	VideoRef    string
	Comment     string
	Reply       string
	NoteContent string
	NoteTags    []string
}

// State is the complete view state of the page.
type State struct {
	Video    *Video
	Comments []Comment
	Notes    []Note
	Drafts   Drafts
	Loading  bool
}

// CommentIndex returns the index of the comment with the given id, or -1.
func (s State) CommentIndex(id string) int {
	for i, c := range s.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Submittable reports whether a draft may be sent. Only the empty string is
// rejected; whitespace is passed through untouched.
func Submittable(draft string) bool {
	return draft != ""
}
