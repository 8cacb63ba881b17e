package game

import (
	"github.com/mcoot/arenahub/internal/model"
)

// MatchState is the authoritative set of player records for one match.
// It is not safe for concurrent use; the owning hub serializes every
// mutation behind its own lock and never hands out the maps.
type MatchState struct {
	players     map[model.PlayerID]*model.Player
	projectiles []any // reserved for server-tracked projectiles
}

// NewMatchState creates an empty match state
func NewMatchState() *MatchState {
	return &MatchState{
		players:     make(map[model.PlayerID]*model.Player),
		projectiles: []any{},
	}
}

// Add inserts a player record. The id must not already be present.
func (s *MatchState) Add(p *model.Player) {
	s.players[p.ID] = p
}

// Remove deletes a player record. Removing an absent id is a no-op.
func (s *MatchState) Remove(id model.PlayerID) {
	delete(s.players, id)
}

// Get returns the player record for id, or nil if absent
func (s *MatchState) Get(id model.PlayerID) *model.Player {
	return s.players[id]
}

// Count returns the number of players in the match
func (s *MatchState) Count() int {
	return len(s.players)
}

// ApplyUpdate overwrites a player's position and rotation from a
// client-reported update. Health, kills and deaths are never written
// here: clients self-report movement but never combat outcome. Absent
// ids are a silent no-op (the player may have left mid-flight).
func (s *MatchState) ApplyUpdate(id model.PlayerID, position, rotation *model.Vector3) *model.Player {
	p, ok := s.players[id]
	if !ok {
		return nil
	}
	if position != nil {
		p.Position = *position
	}
	if rotation != nil {
		p.Rotation = *rotation
	}
	return p
}

// Players returns the player records as a slice in no particular order
func (s *MatchState) Players() []model.Player {
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	return out
}

// Projectiles returns the in-flight projectile collection
func (s *MatchState) Projectiles() []any {
	return s.projectiles
}
