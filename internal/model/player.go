package model

import "time"

// PlayerID uniquely identifies a player for the lifetime of its session.
// IDs are never reused, even after the player leaves.
type PlayerID string

// MaxHealth is the health every player spawns and respawns with.
const MaxHealth = 100

// Vector3 is a position or Euler rotation in world space
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Player is the authoritative record for one connected participant.
// Position and rotation are client-reported; health, kills and deaths
// are only ever mutated by the hub.
type Player struct {
	ID       PlayerID `json:"id"`
	Name     string   `json:"name"`
	Position Vector3  `json:"position"`
	Rotation Vector3  `json:"rotation"`
	Health   int      `json:"health"`
	Kills    int      `json:"kills"`
	Deaths   int      `json:"deaths"`
}

// PlayerStats is the scoreboard mirror of a player's combat tallies.
// Unlike the match state it survives the player leaving, for as long
// as the backing store keeps it.
type PlayerStats struct {
	PlayerID   PlayerID  `json:"player_id"`
	Name       string    `json:"name"`
	Kills      int       `json:"kills"`
	Deaths     int       `json:"deaths"`
	JoinedAt   time.Time `json:"joined_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
