package memory

import (
	"context"
	"sync"

	"github.com/mcoot/arenahub/internal/model"
	"github.com/mcoot/arenahub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	stats map[model.PlayerID]*model.PlayerStats
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		stats: make(map[model.PlayerID]*model.PlayerStats),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *stats
	s.stats[stats.PlayerID] = &copied
	return nil
}

func (s *Storage) GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[id]
	if !ok {
		return nil, model.ErrStatsNotFound
	}
	copied := *stats
	return &copied, nil
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.PlayerStats, 0, len(s.stats))
	for _, stats := range s.stats {
		copied := *stats
		out = append(out, &copied)
	}
	return out, nil
}

func (s *Storage) DeleteStats(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stats, id)
	return nil
}
