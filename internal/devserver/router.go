// Package devserver is an in-memory implementation of the comment and note
// backend for local development and contract tests.
package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultPrefix is the route prefix the client expects by default.
const DefaultPrefix = "/api"

// Setup builds the gin engine serving store under prefix (e.g. "/api").
func Setup(store *Store, prefix string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	h := NewHandler(store)

	api := r.Group("/" + strings.Trim(prefix, "/"))
	api.GET("/video", h.GetVideo)
	api.GET("/video/:id/comments", h.GetComments)
	api.POST("/video/:id/comment", h.PostComment)
	api.POST("/video/:id/comment/:commentId/reply", h.PostReply)
	api.POST("/notes", h.PostNote)
	api.GET("/notes", h.SearchNotes)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "tubenotes-devserver"})
	})

	return r
}
