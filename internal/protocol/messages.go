package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/mcoot/arenahub/internal/model"
)

// MessageType identifies the kind of a wire frame
type MessageType string

// The closed set of frame types. Anything else is a protocol error.
const (
	TypeGameState    MessageType = "game-state"
	TypePlayerJoin   MessageType = "player-join"
	TypePlayerLeave  MessageType = "player-leave"
	TypePlayerUpdate MessageType = "player-update"
	TypePlayerShoot  MessageType = "player-shoot"
	TypePlayerHit    MessageType = "player-hit"
)

// Envelope is the raw form of every frame on the wire
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GameStatePayload is the private snapshot sent to a joining client.
// Projectiles is reserved; it always serializes as an empty array.
type GameStatePayload struct {
	Players     []model.Player `json:"players"`
	Projectiles []any          `json:"projectiles"`
	PlayerID    model.PlayerID `json:"playerId,omitempty"`
}

// LeavePayload announces a departed player
type LeavePayload struct {
	PlayerID model.PlayerID `json:"playerId"`
}

// UpdatePayload carries a client's self-reported movement. Only the
// position and rotation fields are honored by the hub; everything else
// in the frame is ignored.
type UpdatePayload struct {
	Position *model.Vector3 `json:"position"`
	Rotation *model.Vector3 `json:"rotation"`
}

// ShootPayload carries a fired shot. The playerId is stamped by the hub
// on the way out and never trusted from the client.
type ShootPayload struct {
	PlayerID  model.PlayerID `json:"playerId,omitempty"`
	Position  model.Vector3  `json:"position"`
	Direction model.Vector3  `json:"direction"`
}

// HitRequestPayload is a client's claim that it hit a target
type HitRequestPayload struct {
	TargetID model.PlayerID `json:"targetId"`
}

// HitResultPayload is the resolved outcome of a hit, broadcast to all
// sessions. Health and deaths belong to the target; kills belong to
// the attacker.
type HitResultPayload struct {
	TargetID model.PlayerID `json:"targetId"`
	Health   int            `json:"health"`
	Kills    int            `json:"kills"`
	Deaths   int            `json:"deaths"`
}

// Inbound is a decoded client frame. Exactly one payload field is set,
// matching Type.
type Inbound struct {
	Type   MessageType
	Update *UpdatePayload
	Shoot  *ShootPayload
	Hit    *HitRequestPayload
}

// Decode parses a raw client frame into an Inbound message. It returns
// an error for malformed JSON, types outside the client-to-hub set,
// and payloads that do not match their type's shape.
func Decode(data []byte) (*Inbound, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch env.Type {
	case TypePlayerUpdate:
		var p UpdatePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("malformed %s payload: %w", env.Type, err)
		}
		return &Inbound{Type: env.Type, Update: &p}, nil

	case TypePlayerShoot:
		var p ShootPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("malformed %s payload: %w", env.Type, err)
		}
		return &Inbound{Type: env.Type, Shoot: &p}, nil

	case TypePlayerHit:
		var p HitRequestPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("malformed %s payload: %w", env.Type, err)
		}
		if p.TargetID == "" {
			return nil, fmt.Errorf("%s payload missing targetId", env.Type)
		}
		return &Inbound{Type: env.Type, Hit: &p}, nil

	default:
		return nil, fmt.Errorf("unknown message type %q", env.Type)
	}
}

// Encode serializes an outbound frame
func Encode(msgType MessageType, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", msgType, err)
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
