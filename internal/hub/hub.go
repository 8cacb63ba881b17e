package hub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/arenahub/internal/dependencies/clock"
	"github.com/mcoot/arenahub/internal/dependencies/random"
	"github.com/mcoot/arenahub/internal/game"
	"github.com/mcoot/arenahub/internal/model"
	"github.com/mcoot/arenahub/internal/protocol"
	"github.com/mcoot/arenahub/internal/storage"
)

const (
	idLength   = 21
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// statsWriteTimeout bounds best-effort scoreboard writes so a
	// slow store can never stall frame handling for long.
	statsWriteTimeout = 2 * time.Second
)

// Hub is the authoritative coordinator for one match. It owns the
// session registry and the match state; every mutation crosses the
// single mutex, so frames are applied one at a time in arrival order.
// Exactly one hub owns a match's state at a time — scaling out means
// one hub process per match, never sharding one match.
type Hub struct {
	mu       sync.Mutex
	sessions map[*Client]model.PlayerID
	byID     map[model.PlayerID]*Client
	state    *game.MatchState

	resolver *game.Resolver
	random   random.Random
	clock    clock.Clock
	storage  storage.Storage
	logger   *slog.Logger
}

// New creates a hub with empty match state
func New(rnd random.Random, clk clock.Clock, store storage.Storage, logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[*Client]model.PlayerID),
		byID:     make(map[model.PlayerID]*Client),
		state:    game.NewMatchState(),
		resolver: game.NewResolver(rnd, logger),
		random:   rnd,
		clock:    clk,
		storage:  store,
		logger:   logger.With(slog.String("component", "hub")),
	}
}

// Join registers a connected client, seeds its player record at a
// randomized spawn, announces the join to everyone else and sends the
// full state snapshot privately to the joiner. The assigned id is
// fresh and never reused.
func (h *Hub) Join(c *Client) model.PlayerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	playerID := model.PlayerID(h.random.String(idLength, idAlphabet))

	player := &model.Player{
		ID:       playerID,
		Name:     fmt.Sprintf("Player %d", h.state.Count()+1),
		Position: game.SpawnPosition(h.random),
		Rotation: model.Vector3{},
		Health:   model.MaxHealth,
	}

	h.sessions[c] = playerID
	h.byID[playerID] = c
	h.state.Add(player)

	h.broadcastLocked(protocol.TypePlayerJoin, player, playerID)

	// Assignment precedes the snapshot: the private game-state frame
	// carries the joiner's own id and every registered player,
	// including itself.
	h.sendLocked(c, protocol.TypeGameState, protocol.GameStatePayload{
		Players:     h.state.Players(),
		Projectiles: h.state.Projectiles(),
		PlayerID:    playerID,
	})

	now := h.clock.Now()
	h.saveStats(&model.PlayerStats{
		PlayerID:   playerID,
		Name:       player.Name,
		JoinedAt:   now,
		LastSeenAt: now,
	})

	h.logger.Info("player joined",
		slog.String("player_id", string(playerID)),
		slog.String("name", player.Name),
		slog.Int("player_count", h.state.Count()),
	)

	return playerID
}

// Leave deregisters a client, removes its player record and announces
// the departure to all remaining sessions. Registry and state are
// updated under one lock hold, so no observer can see a half-removed
// player. Calling Leave for an unknown client is a no-op.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	playerID, ok := h.sessions[c]
	if !ok {
		return
	}

	delete(h.sessions, c)
	delete(h.byID, playerID)
	h.state.Remove(playerID)
	close(c.send)

	h.broadcastLocked(protocol.TypePlayerLeave, protocol.LeavePayload{PlayerID: playerID}, "")

	h.touchStats(playerID)

	h.logger.Info("player left",
		slog.String("player_id", string(playerID)),
		slog.Int("player_count", h.state.Count()),
	)
}

// HandleFrame routes one inbound frame from a client. Malformed frames
// and unknown types are logged and dropped; they never mutate state.
// Frames from a session that has already been deregistered are a
// silent no-op.
func (h *Hub) HandleFrame(c *Client, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		h.logger.Warn("dropping bad frame", slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	playerID, ok := h.sessions[c]
	if !ok {
		return
	}

	switch msg.Type {
	case protocol.TypePlayerUpdate:
		h.handleUpdate(playerID, msg.Update)
	case protocol.TypePlayerShoot:
		h.handleShoot(playerID, msg.Shoot)
	case protocol.TypePlayerHit:
		h.handleHit(playerID, msg.Hit)
	}
}

func (h *Hub) handleUpdate(playerID model.PlayerID, payload *protocol.UpdatePayload) {
	player := h.state.ApplyUpdate(playerID, payload.Position, payload.Rotation)
	if player == nil {
		return
	}
	h.broadcastLocked(protocol.TypePlayerUpdate, player, playerID)
}

func (h *Hub) handleShoot(playerID model.PlayerID, payload *protocol.ShootPayload) {
	// The shooter's identity comes from the session, never the frame
	payload.PlayerID = playerID
	h.broadcastLocked(protocol.TypePlayerShoot, payload, playerID)
}

func (h *Hub) handleHit(attackerID model.PlayerID, payload *protocol.HitRequestPayload) {
	result, ok := h.resolver.ResolveHit(h.state, attackerID, payload.TargetID)
	if !ok {
		return
	}

	// The target must learn its own new health and position, so the
	// result goes to every session with no exclusion.
	h.broadcastLocked(protocol.TypePlayerHit, protocol.HitResultPayload{
		TargetID: result.TargetID,
		Health:   result.Health,
		Kills:    result.Kills,
		Deaths:   result.Deaths,
	}, "")

	if result.Killed {
		h.mirrorCombatStats(attackerID, result.TargetID)
	}
}

// broadcastLocked fans a message out to every session except exclude
// (all sessions when exclude is empty). Sends are best-effort: a full
// send buffer drops that client's copy and never blocks the others.
// Callers must hold h.mu.
func (h *Hub) broadcastLocked(msgType protocol.MessageType, payload any, exclude model.PlayerID) {
	data, err := protocol.Encode(msgType, payload)
	if err != nil {
		h.logger.Error("failed to encode broadcast",
			slog.String("type", string(msgType)),
			slog.String("error", err.Error()))
		return
	}

	for c, playerID := range h.sessions {
		if exclude != "" && playerID == exclude {
			continue
		}
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping frame - client buffer full",
				slog.String("type", string(msgType)),
				slog.String("player_id", string(playerID)))
		}
	}
}

// sendLocked delivers a message to a single session. Callers must hold h.mu.
func (h *Hub) sendLocked(c *Client, msgType protocol.MessageType, payload any) {
	data, err := protocol.Encode(msgType, payload)
	if err != nil {
		h.logger.Error("failed to encode message",
			slog.String("type", string(msgType)),
			slog.String("error", err.Error()))
		return
	}
	select {
	case c.send <- data:
	default:
		h.logger.Warn("dropping frame - client buffer full",
			slog.String("type", string(msgType)))
	}
}

// Snapshot returns a copy of the current match state for read-only
// surfaces like the match API.
func (h *Hub) Snapshot() []model.Player {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Players()
}

// PlayerCount returns the number of connected players
func (h *Hub) PlayerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Count()
}

// saveStats writes a scoreboard record best-effort. Storage failures
// are logged and never affect match flow. Callers must hold h.mu.
func (h *Hub) saveStats(stats *model.PlayerStats) {
	ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
	defer cancel()

	if err := h.storage.SaveStats(ctx, stats); err != nil {
		h.logger.Warn("failed to save player stats",
			slog.String("player_id", string(stats.PlayerID)),
			slog.String("error", err.Error()))
	}
}

// mirrorCombatStats syncs both participants' tallies after a kill.
// Callers must hold h.mu.
func (h *Hub) mirrorCombatStats(attackerID, targetID model.PlayerID) {
	now := h.clock.Now()
	for _, id := range []model.PlayerID{attackerID, targetID} {
		player := h.state.Get(id)
		if player == nil {
			continue
		}
		h.saveStats(&model.PlayerStats{
			PlayerID:   id,
			Name:       player.Name,
			Kills:      player.Kills,
			Deaths:     player.Deaths,
			JoinedAt:   h.statsJoinedAt(id, now),
			LastSeenAt: now,
		})
	}
}

// touchStats refreshes LastSeenAt for a departing player. Callers must
// hold h.mu.
func (h *Hub) touchStats(playerID model.PlayerID) {
	ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
	defer cancel()

	stats, err := h.storage.GetStats(ctx, playerID)
	if err != nil {
		return
	}
	stats.LastSeenAt = h.clock.Now()
	h.saveStats(stats)
}

func (h *Hub) statsJoinedAt(playerID model.PlayerID, fallback time.Time) time.Time {
	ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
	defer cancel()

	stats, err := h.storage.GetStats(ctx, playerID)
	if err != nil {
		return fallback
	}
	return stats.JoinedAt
}
