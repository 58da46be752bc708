package viewstate

import "slices"

// Draft setters.

func SetVideoRef(s State, ref string) State {
	s.Drafts.VideoRef = ref
	return s
}

func SetCommentDraft(s State, text string) State {
	s.Drafts.Comment = text
	return s
}

func SetReplyDraft(s State, text string) State {
	s.Drafts.Reply = text
	return s
}

func SetNoteContentDraft(s State, content string) State {
	s.Drafts.NoteContent = content
	return s
}

func SetNoteTagsDraft(s State, tags []string) State {
	s.Drafts.NoteTags = slices.Clone(tags)
	return s
}

// BeginLoad marks the start of a combined video and comments fetch.
func BeginLoad(s State) State {
	s.Loading = true
	return s
}

// EndLoad clears the loading flag. It is applied whether the load succeeded or not.
func EndLoad(s State) State {
	s.Loading = false
	return s
}

// VideoLoaded replaces the current video wholesale.
func VideoLoaded(s State, v Video) State {
	s.Video = &v
	return s
}

// CommentsLoaded replaces the comment list with the server's, in server order.
func CommentsLoaded(s State, comments []Comment) State {
	next := make([]Comment, len(comments))
	for i, c := range comments {
		next[i] = cloneComment(c)
	}
	s.Comments = next
	return s
}

// CommentPosted puts a freshly created comment at the front of the list and
// clears the comment draft.
func CommentPosted(s State, c Comment) State {
	c = cloneComment(c)
	next := make([]Comment, 0, len(s.Comments)+1)
	next = append(next, c)
	next = append(next, s.Comments...)
	s.Comments = next
	s.Drafts.Comment = ""
	return s
}

// ReplyPosted appends r to the replies of the comment with commentID and
// clears the shared reply draft. If no comment matches, the comment list is
// left as is; the draft is still cleared because the server accepted it.
func ReplyPosted(s State, commentID string, r Reply) State {
	if i := s.CommentIndex(commentID); i >= 0 {
		next := slices.Clone(s.Comments)
		target := cloneComment(next[i])
		target.Replies = append(target.Replies, r)
		next[i] = target
		s.Comments = next
	}
	s.Drafts.Reply = ""
	return s
}

// NoteCreated appends n to the note list and clears both note drafts.
func NoteCreated(s State, n Note) State {
	next := make([]Note, 0, len(s.Notes)+1)
	next = append(next, s.Notes...)
	next = append(next, cloneNote(n))
	s.Notes = next
	s.Drafts.NoteContent = ""
	s.Drafts.NoteTags = nil
	return s
}

// NotesSearched replaces the note list with a search result. Notes created
// earlier in the session are discarded unless the result contains them.
func NotesSearched(s State, notes []Note) State {
	next := make([]Note, len(notes))
	for i, n := range notes {
		next[i] = cloneNote(n)
	}
	s.Notes = next
	return s
}

func cloneComment(c Comment) Comment {
	replies := make([]Reply, len(c.Replies))
	copy(replies, c.Replies)
	c.Replies = replies
	return c
}

func cloneNote(n Note) Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}
