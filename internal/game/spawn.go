package game

import (
	"github.com/mcoot/arenahub/internal/dependencies/random"
	"github.com/mcoot/arenahub/internal/model"
)

// Spawn placement constants. These match the launch client's arena
// dimensions and are deliberately not configurable.
const (
	// SpawnExtent bounds spawn x and z to [-SpawnExtent, SpawnExtent)
	SpawnExtent = 10.0

	// SpawnHeight is the fixed ground offset players spawn at
	SpawnHeight = 1.0
)

// SpawnPosition picks a randomized spawn point inside the arena,
// used both for initial placement and for respawn after death.
func SpawnPosition(rnd random.Random) model.Vector3 {
	return model.Vector3{
		X: rnd.Float64()*2*SpawnExtent - SpawnExtent,
		Y: SpawnHeight,
		Z: rnd.Float64()*2*SpawnExtent - SpawnExtent,
	}
}
