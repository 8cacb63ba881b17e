package redis

import (
	"fmt"

	"github.com/mcoot/arenahub/internal/model"
)

// Key prefix for all hub-related data
const keyPrefix = "arena"

// statsKey returns the Redis key for a player's stats record
func statsKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, id)
}

// statsIndexKey returns the Redis key for the SET of known player ids
func statsIndexKey() string {
	return fmt.Sprintf("%s:idx:stats", keyPrefix)
}
