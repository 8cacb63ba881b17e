package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/arenahub/internal/api/response"
	"github.com/mcoot/arenahub/internal/storage"
)

// ScoreboardHandler serves accumulated kill/death tallies
type ScoreboardHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewScoreboardHandler creates a ScoreboardHandler
func NewScoreboardHandler(store storage.Storage, logger *slog.Logger) *ScoreboardHandler {
	return &ScoreboardHandler{storage: store, logger: logger}
}

// Get returns all known player stats ranked by kills
func (h *ScoreboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.storage.ListStats(r.Context())
	if err != nil {
		h.logger.Error("failed to list player stats", slog.String("error", err.Error()))
		response.JSON(w, http.StatusInternalServerError, response.Error{Message: "failed to load scoreboard"})
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreboardFromStats(stats))
}
