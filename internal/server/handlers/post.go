// internal/server/handlers/post.go

package handlers

import (
	"net/http"

	"trendscope/internal/domain/content"
)

// PostRepository serves stored posts and analytics.
type PostRepository interface {
	ListPosts() []content.Post
	Analytics() content.AnalyticsSummary
}

// PostHandler handles post and analytics HTTP requests.
type PostHandler struct {
	posts PostRepository
}

// NewPostHandler creates a new post handler.
func NewPostHandler(posts PostRepository) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts returns the account's posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.posts.ListPosts())
}

// GetAnalytics returns the account analytics summary.
func (h *PostHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.posts.Analytics())
}
