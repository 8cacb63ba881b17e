package game

import (
	"log/slog"

	"github.com/mcoot/arenahub/internal/dependencies/random"
	"github.com/mcoot/arenahub/internal/model"
)

// HitDamage is the fixed damage applied per resolved hit
const HitDamage = 20

// HitResult is the outcome of one resolved hit. Health and Deaths are
// the target's; Kills is the attacker's running total.
type HitResult struct {
	TargetID model.PlayerID
	Health   int
	Kills    int
	Deaths   int

	// Killed reports whether this hit caused a death/respawn cycle
	Killed bool
}

// Resolver applies damage, death and respawn rules to match state
type Resolver struct {
	random random.Random
	logger *slog.Logger
}

// NewResolver creates a combat resolver
func NewResolver(rnd random.Random, logger *slog.Logger) *Resolver {
	return &Resolver{
		random: rnd,
		logger: logger.With(slog.String("component", "combat")),
	}
}

// ResolveHit applies one hit from attacker to target. If either player
// is no longer in the match the hit is a silent no-op and ok is false.
// A hit that takes health to zero or below triggers exactly one
// death/respawn cycle: attacker kills +1, target deaths +1, target
// health back to full at a fresh spawn point. Excess damage never
// carries over.
func (r *Resolver) ResolveHit(state *MatchState, attackerID, targetID model.PlayerID) (HitResult, bool) {
	attacker := state.Get(attackerID)
	target := state.Get(targetID)
	if attacker == nil || target == nil {
		return HitResult{}, false
	}

	target.Health -= HitDamage

	killed := target.Health <= 0
	if killed {
		attacker.Kills++
		target.Deaths++
		target.Health = model.MaxHealth
		target.Position = SpawnPosition(r.random)

		r.logger.Info("player killed",
			slog.String("attacker_id", string(attackerID)),
			slog.String("target_id", string(targetID)),
			slog.Int("attacker_kills", attacker.Kills),
			slog.Int("target_deaths", target.Deaths),
		)
	}

	return HitResult{
		TargetID: target.ID,
		Health:   target.Health,
		Kills:    attacker.Kills,
		Deaths:   target.Deaths,
		Killed:   killed,
	}, true
}
