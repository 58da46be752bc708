package devserver

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hay-kot/tubenotes/internal/core/api"
)

// ErrNotFound is returned when a video or comment does not exist.
var ErrNotFound = errors.New("not found")

// DemoVideoID is the video every new Store starts with.
const DemoVideoID = "abc123"

type videoRecord struct {
	video    api.Video
	comments []api.Comment // newest first
}

// Store is an in-memory backend for videos, comments and notes. It is safe
// for concurrent use.
type Store struct {
	mu     sync.RWMutex
	videos map[string]*videoRecord
	notes  []api.Note
	newID  func() string
}

// NewStore returns a store seeded with the demo video.
func NewStore() *Store {
	s := &Store{
		videos: make(map[string]*videoRecord),
		newID:  uuid.NewString,
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.AddVideo(DemoVideoID, api.Video{
		Title:        "Building a terminal UI in Go",
		Description:  "A walkthrough of structuring a bubbletea application with pure reducers.",
		ThumbnailURL: "https://i.ytimg.com/vi/abc123/hqdefault.jpg",
		Views:        1234,
	})

	first := s.newID()
	s.videos[DemoVideoID].comments = []api.Comment{
		{
			ID:      first,
			Snippet: api.Snippet{TextDisplay: "Great explanation of the update loop."},
			Replies: []api.Snippet{{TextDisplay: "Agreed, the diagrams helped."}},
		},
		{
			ID:      s.newID(),
			Snippet: api.Snippet{TextDisplay: "Could you cover testing next?"},
			Replies: []api.Snippet{},
		},
	}
}

// AddVideo registers or replaces a video with no comments.
func (s *Store) AddVideo(id string, v api.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[id] = &videoRecord{video: v}
}

func (s *Store) Video(id string) (api.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.videos[id]
	if !ok {
		return api.Video{}, ErrNotFound
	}
	return rec.video, nil
}

// Comments returns a copy of the video's comments, newest first.
func (s *Store) Comments(videoID string) ([]api.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.videos[videoID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]api.Comment, len(rec.comments))
	for i, c := range rec.comments {
		c.Replies = append([]api.Snippet{}, c.Replies...)
		out[i] = c
	}
	return out, nil
}

// AddComment prepends a comment with no replies.
func (s *Store) AddComment(videoID, text string) (api.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.videos[videoID]
	if !ok {
		return api.Comment{}, ErrNotFound
	}

	c := api.Comment{ID: s.newID(), Snippet: api.Snippet{TextDisplay: text}, Replies: []api.Snippet{}}
	rec.comments = append([]api.Comment{c}, rec.comments...)
	return c, nil
}

func (s *Store) AddReply(videoID, commentID, text string) (api.Snippet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.videos[videoID]
	if !ok {
		return api.Snippet{}, ErrNotFound
	}

	idx := slices.IndexFunc(rec.comments, func(c api.Comment) bool { return c.ID == commentID })
	if idx < 0 {
		return api.Snippet{}, ErrNotFound
	}

	reply := api.Snippet{TextDisplay: text}
	rec.comments[idx].Replies = append(rec.comments[idx].Replies, reply)
	return reply, nil
}

func (s *Store) AddNote(content string, tags []string) api.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tags == nil {
		tags = []string{}
	}
	n := api.Note{ID: s.newID(), Content: content, Tags: slices.Clone(tags)}
	s.notes = append(s.notes, n)
	return n
}

// SearchNotes returns notes whose content or any tag contains term, ignoring
// case. An empty term matches every note.
func (s *Store) SearchNotes(term string) []api.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	out := []api.Note{}
	for _, n := range s.notes {
		if matchesNote(n, term) {
			n.Tags = slices.Clone(n.Tags)
			out = append(out, n)
		}
	}
	return out
}

func matchesNote(n api.Note, term string) bool {
	if term == "" || strings.Contains(strings.ToLower(n.Content), term) {
		return true
	}
	return slices.ContainsFunc(n.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}
