package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arenahub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.StatsTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetStats() {
	stats := &model.PlayerStats{
		PlayerID: "p1",
		Name:     "Player 1",
		Kills:    3,
		Deaths:   1,
		JoinedAt: time.Now().UTC(),
	}

	err := s.storage.SaveStats(s.ctx, stats)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetStats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(stats.PlayerID, retrieved.PlayerID)
	s.Equal(3, retrieved.Kills)
	s.Equal(1, retrieved.Deaths)
}

func (s *StorageSuite) TestGetStatsNotFound() {
	_, err := s.storage.GetStats(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrStatsNotFound)
}

func (s *StorageSuite) TestSaveOverwrites() {
	stats := &model.PlayerStats{PlayerID: "p1", Name: "Player 1", Kills: 1}
	s.Require().NoError(s.storage.SaveStats(s.ctx, stats))

	stats.Kills = 2
	s.Require().NoError(s.storage.SaveStats(s.ctx, stats))

	retrieved, err := s.storage.GetStats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(2, retrieved.Kills)
}

func (s *StorageSuite) TestListStats() {
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p1", Name: "Player 1"}))
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p2", Name: "Player 2"}))

	all, err := s.storage.ListStats(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	ids := map[model.PlayerID]bool{}
	for _, stats := range all {
		ids[stats.PlayerID] = true
	}
	s.True(ids["p1"])
	s.True(ids["p2"])
}

func (s *StorageSuite) TestListStatsSkipsExpiredRecords() {
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p1", Name: "Player 1"}))
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p2", Name: "Player 2"}))

	// Expire p1's record while its index entry remains
	s.mini.FastForward(2 * time.Hour)
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p2", Name: "Player 2"}))

	all, err := s.storage.ListStats(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(model.PlayerID("p2"), all[0].PlayerID)
}

func (s *StorageSuite) TestDeleteStats() {
	s.Require().NoError(s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "p1", Name: "Player 1"}))

	err := s.storage.DeleteStats(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.storage.GetStats(s.ctx, "p1")
	s.ErrorIs(err, model.ErrStatsNotFound)

	all, err := s.storage.ListStats(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}
