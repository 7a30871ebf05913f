// internal/server/handlers/content.go

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"trendscope/internal/domain/content"
	"trendscope/internal/service/generate"
)

// DraftGenerator drafts social posts through a generative model.
type DraftGenerator interface {
	Draft(ctx context.Context, req content.DraftRequest) (*content.Draft, error)
}

// ContentHandler handles content generation HTTP requests.
type ContentHandler struct {
	generator DraftGenerator
}

// NewContentHandler creates a new content handler.
func NewContentHandler(generator DraftGenerator) *ContentHandler {
	return &ContentHandler{generator: generator}
}

// Generate drafts a social post for the requested topic.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req content.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Topic == "" {
		respondWithError(w, http.StatusBadRequest, "Topic is required", nil)
		return
	}

	draft, err := h.generator.Draft(r.Context(), req)
	if err != nil {
		if errors.Is(err, generate.ErrNoAPIKey) {
			respondWithError(w, http.StatusServiceUnavailable, "Content generation is not configured", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "Content generation failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, draft)
}
