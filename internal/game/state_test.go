package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arenahub/internal/model"
)

type StateSuite struct {
	suite.Suite
	state *MatchState
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func (s *StateSuite) SetupTest() {
	s.state = NewMatchState()
}

func (s *StateSuite) addPlayer(id model.PlayerID) *model.Player {
	p := &model.Player{
		ID:       id,
		Name:     "Player",
		Position: model.Vector3{X: 0, Y: 1, Z: 0},
		Health:   model.MaxHealth,
	}
	s.state.Add(p)
	return p
}

func (s *StateSuite) TestAddAndGet() {
	s.addPlayer("p1")

	p := s.state.Get("p1")
	s.Require().NotNil(p)
	s.Equal(model.PlayerID("p1"), p.ID)
	s.Equal(1, s.state.Count())
}

func (s *StateSuite) TestRemove() {
	s.addPlayer("p1")
	s.state.Remove("p1")

	s.Nil(s.state.Get("p1"))
	s.Zero(s.state.Count())
}

func (s *StateSuite) TestRemoveAbsentIsNoop() {
	s.addPlayer("p1")
	s.state.Remove("ghost")
	s.Equal(1, s.state.Count())
}

func (s *StateSuite) TestApplyUpdateOverwritesMovementOnly() {
	p := s.addPlayer("p1")
	p.Health = 60
	p.Kills = 2
	p.Deaths = 1

	pos := &model.Vector3{X: 5, Y: 1, Z: -3}
	rot := &model.Vector3{Y: 1.57}

	updated := s.state.ApplyUpdate("p1", pos, rot)
	s.Require().NotNil(updated)

	s.Equal(*pos, updated.Position)
	s.Equal(*rot, updated.Rotation)

	// Combat fields are untouched by client-reported updates
	s.Equal(60, updated.Health)
	s.Equal(2, updated.Kills)
	s.Equal(1, updated.Deaths)
}

func (s *StateSuite) TestApplyUpdateReflectsLatest() {
	s.addPlayer("p1")

	s.state.ApplyUpdate("p1", &model.Vector3{X: 1}, nil)
	s.state.ApplyUpdate("p1", &model.Vector3{X: 2}, nil)
	s.state.ApplyUpdate("p1", &model.Vector3{X: 3}, nil)

	s.Equal(3.0, s.state.Get("p1").Position.X)
}

func (s *StateSuite) TestApplyUpdateUnknownIDIsNoop() {
	s.Nil(s.state.ApplyUpdate("ghost", &model.Vector3{X: 1}, nil))
}

func (s *StateSuite) TestApplyUpdatePartialFrame() {
	p := s.addPlayer("p1")
	p.Rotation = model.Vector3{Y: 2}

	// A frame with no rotation leaves the stored rotation alone
	s.state.ApplyUpdate("p1", &model.Vector3{X: 9}, nil)
	s.Equal(9.0, p.Position.X)
	s.Equal(2.0, p.Rotation.Y)
}

func (s *StateSuite) TestPlayersSnapshotIsCopy() {
	s.addPlayer("p1")

	players := s.state.Players()
	s.Require().Len(players, 1)

	// Mutating the snapshot must not leak back into the store
	players[0].Health = 1
	s.Equal(model.MaxHealth, s.state.Get("p1").Health)
}

func (s *StateSuite) TestProjectilesStartEmpty() {
	s.NotNil(s.state.Projectiles())
	s.Empty(s.state.Projectiles())
}
