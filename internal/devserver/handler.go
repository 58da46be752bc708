package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hay-kot/tubenotes/internal/core/logging"
)

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

type noteRequest struct {
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// Handler serves the backend routes from a Store.
type Handler struct {
	store *Store
	log   zerolog.Logger
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store, log: logging.Component("devserver")}
}

// GetVideo handles GET /video?videoId=.
func (h *Handler) GetVideo(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		h.log.Warn().Msg("missing videoId parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoId is required"})
		return
	}

	video, err := h.store.Video(videoID)
	if err != nil {
		h.abort(c, err, videoID)
		return
	}

	c.JSON(http.StatusOK, video)
}

// GetComments handles GET /video/:id/comments.
func (h *Handler) GetComments(c *gin.Context) {
	videoID := c.Param("id")

	comments, err := h.store.Comments(videoID)
	if err != nil {
		h.abort(c, err, videoID)
		return
	}

	h.log.Debug().Str("video_ref", videoID).Int("count", len(comments)).Msg("fetched comments")
	c.JSON(http.StatusOK, comments)
}

// PostComment handles POST /video/:id/comment.
func (h *Handler) PostComment(c *gin.Context) {
	videoID := c.Param("id")

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.store.AddComment(videoID, req.Text)
	if err != nil {
		h.abort(c, err, videoID)
		return
	}

	h.log.Info().Str("video_ref", videoID).Str("comment_id", comment.ID).Msg("comment created")
	c.JSON(http.StatusCreated, comment)
}

// PostReply handles POST /video/:id/comment/:commentId/reply.
func (h *Handler) PostReply(c *gin.Context) {
	videoID := c.Param("id")
	commentID := c.Param("commentId")

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.store.AddReply(videoID, commentID, req.Text)
	if err != nil {
		h.abort(c, err, videoID)
		return
	}

	h.log.Info().Str("video_ref", videoID).Str("comment_id", commentID).Msg("reply created")
	c.JSON(http.StatusCreated, gin.H{"snippet": reply})
}

// PostNote handles POST /notes.
func (h *Handler) PostNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := h.store.AddNote(req.Content, req.Tags)
	h.log.Info().Str("note_id", note.ID).Strs("tags", note.Tags).Msg("note created")
	c.JSON(http.StatusCreated, note)
}

// SearchNotes handles GET /notes?search=.
func (h *Handler) SearchNotes(c *gin.Context) {
	term := c.Query("search")
	notes := h.store.SearchNotes(term)

	h.log.Debug().Str("term", term).Int("count", len(notes)).Msg("searched notes")
	c.JSON(http.StatusOK, notes)
}

func (h *Handler) abort(c *gin.Context, err error, videoID string) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.log.Error().Err(err).Str("video_ref", videoID).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
