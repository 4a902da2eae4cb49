// Package battle resolves single attacks between armies. Resolution is a pure
// function of the two armies and an explicit seed: the generator is built
// fresh from the seed on every call, so the same inputs always produce the
// same report.
package battle

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"golang.org/x/exp/rand"

	"frontier/game"
)

// Config holds the tunable combat constants.
type Config struct {
	// ModifierMin and ModifierMax bound the pseudo-random strength modifier
	// each side draws.
	ModifierMin float64
	ModifierMax float64
	// WinnerLossScale shrinks the winning side's casualty fraction relative
	// to the loser's.
	WinnerLossScale float64
}

func DefaultConfig() Config {
	return Config{
		ModifierMin:     0.85,
		ModifierMax:     1.15,
		WinnerLossScale: 0.5,
	}
}

// Report is the outcome of one resolved attack.
type Report struct {
	AttackerWon    bool
	AttackerPower  float64 // effective power after the modifier draw
	DefenderPower  float64
	AttackerLosses map[game.UnitType]int
	DefenderLosses map[game.UnitType]int
}

// Resolver computes battle outcomes against a fixed stat table.
type Resolver struct {
	table game.StatTable
	cfg   Config
}

func NewResolver(table game.StatTable, cfg Config) Resolver {
	return Resolver{table: table, cfg: cfg}
}

// Resolve computes the outcome of one attack. The draw order is fixed:
// attacker modifier first, defender second. The attacker wins only on
// strictly greater effective power; ties hold for the defender. The report
// describes casualties but mutates neither army; applying losses is the
// caller's job.
func (r Resolver) Resolve(attacker, defender *game.Army, seed uint64) Report {
	rng := rand.New(rand.NewSource(seed))
	modA := r.drawModifier(rng)
	modD := r.drawModifier(rng)

	powerA := float64(attacker.AttackStrength(r.table)) * modA
	powerD := float64(defender.DefenseStrength(r.table)) * modD

	report := Report{
		AttackerWon:    powerA > powerD,
		AttackerPower:  powerA,
		DefenderPower:  powerD,
		AttackerLosses: map[game.UnitType]int{},
		DefenderLosses: map[game.UnitType]int{},
	}

	total := powerA + powerD
	if total == 0 {
		// Two empty armies; nobody to lose.
		return report
	}

	// The loser bleeds in proportion to the winner's share of the total
	// power, the winner in proportion to the loser's share, scaled down.
	winner, loser := powerA, powerD
	if !report.AttackerWon {
		winner, loser = powerD, powerA
	}
	loserFrac := winner / total
	winnerFrac := loser / total * r.cfg.WinnerLossScale

	if report.AttackerWon {
		report.AttackerLosses = casualties(attacker, winnerFrac)
		report.DefenderLosses = casualties(defender, loserFrac)
	} else {
		report.AttackerLosses = casualties(attacker, loserFrac)
		report.DefenderLosses = casualties(defender, winnerFrac)
	}
	return report
}

// casualties applies a loss fraction per unit type, rounding down with a
// floor of zero.
func casualties(a *game.Army, frac float64) map[game.UnitType]int {
	losses := map[game.UnitType]int{}
	for t, n := range a.Counts {
		lost := int(math.Floor(float64(n) * frac))
		if lost > 0 {
			losses[t] = lost
		}
	}
	return losses
}

func (r Resolver) drawModifier(rng *rand.Rand) float64 {
	return r.cfg.ModifierMin + rng.Float64()*(r.cfg.ModifierMax-r.cfg.ModifierMin)
}

// DeriveSeed hashes a turn number and the two settlement identities into a
// battle seed. Replaying a campaign with the same turn sequence reproduces
// every resolution.
func DeriveSeed(turn int, fromID, toID string) uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(turn))
	hasher.Write([]byte(fromID))
	hasher.Write([]byte{0})
	hasher.Write([]byte(toID))
	return hasher.Sum64()
}
