package handler

import (
	"net/http"

	"github.com/mcoot/arenahub/internal/api/response"
	"github.com/mcoot/arenahub/internal/hub"
)

// MatchHandler serves a read-only view of the live match
type MatchHandler struct {
	hub *hub.Hub
}

// NewMatchHandler creates a MatchHandler
func NewMatchHandler(h *hub.Hub) *MatchHandler {
	return &MatchHandler{hub: h}
}

// Get returns the current match snapshot
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	players := h.hub.Snapshot()
	response.JSON(w, http.StatusOK, response.MatchFromSnapshot(players))
}
