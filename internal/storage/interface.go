package storage

import (
	"context"

	"github.com/mcoot/arenahub/internal/model"
)

// Storage defines the interface for the scoreboard stats store. The
// hub mirrors kill/death tallies here best-effort; match state itself
// is never persisted.
type Storage interface {
	SaveStats(ctx context.Context, stats *model.PlayerStats) error
	GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error)
	ListStats(ctx context.Context) ([]*model.PlayerStats, error)
	DeleteStats(ctx context.Context, id model.PlayerID) error
}
