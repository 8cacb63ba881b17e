package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/arenahub/internal/api/handler"
	"github.com/mcoot/arenahub/internal/hub"
	"github.com/mcoot/arenahub/internal/middleware"
	"github.com/mcoot/arenahub/internal/storage"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger  *slog.Logger
	Hub     *hub.Hub
	Storage storage.Storage
}

// NewRouter creates the router for the hub's HTTP surface: the
// websocket gateway plus the read-only match and scoreboard APIs.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// The gateway sits outside the middleware chain: the upgrade
	// hijacks the connection, which the logging response wrapper
	// cannot follow.
	r.HandleFunc("/ws", hub.ServeWS(cfg.Hub, cfg.Logger)).Methods(http.MethodGet)

	matchHandler := handler.NewMatchHandler(cfg.Hub)
	scoreboardHandler := handler.NewScoreboardHandler(cfg.Storage, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/match", matchHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/scoreboard", scoreboardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
