package factory

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arenahub/internal/api"
	"github.com/mcoot/arenahub/internal/model"
	"github.com/mcoot/arenahub/internal/protocol"
	"github.com/mcoot/arenahub/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app    *TestApp
	server *httptest.Server
	wsURL  string
	ctx    context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:  testutil.NopLogger(),
		Hub:     s.app.Hub,
		Storage: s.app.Storage,
	}))
	s.wsURL = "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.server.Close()
}

// dial connects a client after queueing its identity and spawn draws
func (s *IntegrationSuite) dial(id string) *websocket.Conn {
	s.app.MockRandom.QueueString(id)
	s.app.MockRandom.QueueFloat64(0.5, 0.5)

	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *IntegrationSuite) readFrame(conn *websocket.Conn, want protocol.MessageType) json.RawMessage {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		s.Require().NoError(err)
		var env protocol.Envelope
		s.Require().NoError(json.Unmarshal(data, &env))
		if env.Type == want {
			return env.Payload
		}
	}
}

// Test: a full wired-app session, deterministic via the mocked
// clock and randomness.
func (s *IntegrationSuite) TestWiredAppSession() {
	connA := s.dial("player-aaaa")
	payload := s.readFrame(connA, protocol.TypeGameState)

	var snapshot protocol.GameStatePayload
	s.Require().NoError(json.Unmarshal(payload, &snapshot))
	s.Equal(model.PlayerID("player-aaaa"), snapshot.PlayerID)
	s.Require().Len(snapshot.Players, 1)
	s.Equal(model.Vector3{X: 0, Y: 1, Z: 0}, snapshot.Players[0].Position)

	connB := s.dial("player-bbbb")
	s.readFrame(connB, protocol.TypeGameState)

	// Kill B in five hits; stats land in the wired storage
	hit, err := protocol.Encode(protocol.TypePlayerHit, protocol.HitRequestPayload{TargetID: "player-bbbb"})
	s.Require().NoError(err)
	s.app.MockRandom.QueueFloat64(0.5, 0.5) // respawn draw
	for i := 0; i < 5; i++ {
		s.Require().NoError(connA.WriteMessage(websocket.TextMessage, hit))
		s.readFrame(connA, protocol.TypePlayerHit)
	}

	s.Require().Eventually(func() bool {
		stats, err := s.app.Storage.GetStats(s.ctx, "player-aaaa")
		return err == nil && stats.Kills == 1
	}, 2*time.Second, 10*time.Millisecond)

	targetStats, err := s.app.Storage.GetStats(s.ctx, "player-bbbb")
	s.Require().NoError(err)
	s.Equal(1, targetStats.Deaths)
	s.Equal(s.app.MockClock.Now(), targetStats.LastSeenAt)
}

func (s *IntegrationSuite) TestFactoryRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "cloud"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryDefaultsToMemoryStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.Hub)
}
