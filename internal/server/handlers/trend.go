// internal/server/handlers/trend.go

package handlers

import (
	"net/http"
	"strconv"

	"trendscope/internal/domain/trend"
)

// TrendHandler handles trend-related HTTP requests.
type TrendHandler struct {
	fetcher      trend.Fetcher
	defaultLimit int
}

// NewTrendHandler creates a new trend handler.
func NewTrendHandler(fetcher trend.Fetcher, defaultLimit int) *TrendHandler {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}

	return &TrendHandler{
		fetcher:      fetcher,
		defaultLimit: defaultLimit,
	}
}

// GetTrends runs a trend acquisition for the requested platform and returns
// the normalized records. Acquisition failures degrade to an empty list with
// 200: the route never surfaces provider trouble as a 5xx.
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	platform := trend.Platform(r.URL.Query().Get("platform"))
	if platform == "" {
		platform = trend.PlatformTwitter
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result := h.fetcher.Fetch(r.Context(), platform)

	records := result.Records
	if records == nil {
		records = []trend.Record{}
	}
	if len(records) > limit {
		records = records[:limit]
	}

	respondWithJSON(w, http.StatusOK, records)
}
