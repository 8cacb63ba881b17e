package response

import (
	"sort"

	"github.com/mcoot/arenahub/internal/model"
)

// Error is a minimal error body
type Error struct {
	Message string `json:"message"`
}

// Match is the read-only view of the live match
type Match struct {
	PlayerCount int            `json:"player_count"`
	Players     []model.Player `json:"players"`
}

// MatchFromSnapshot builds a Match response with players in a stable order
func MatchFromSnapshot(players []model.Player) Match {
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return Match{
		PlayerCount: len(players),
		Players:     players,
	}
}

// ScoreboardEntry is one ranked row of the scoreboard
type ScoreboardEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
}

// Scoreboard ranks players by kills, then fewest deaths
type Scoreboard struct {
	Entries []ScoreboardEntry `json:"entries"`
}

// ScoreboardFromStats converts stored stats into a ranked scoreboard
func ScoreboardFromStats(stats []*model.PlayerStats) Scoreboard {
	entries := make([]ScoreboardEntry, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, ScoreboardEntry{
			PlayerID: string(s.PlayerID),
			Name:     s.Name,
			Kills:    s.Kills,
			Deaths:   s.Deaths,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kills != entries[j].Kills {
			return entries[i].Kills > entries[j].Kills
		}
		if entries[i].Deaths != entries[j].Deaths {
			return entries[i].Deaths < entries[j].Deaths
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	return Scoreboard{Entries: entries}
}
