// Package ai decides one turn's worth of economic and military actions for a
// non-player faction. Controllers only read public world state, so they get
// no information the player can't see, and every order they emit is already
// validated by their own gating, so the engine treats a rejected order as a
// programming fault rather than a recoverable error.
package ai

import (
	"frontier/battle"
	"frontier/game"
)

// Config holds the heuristic tuning knobs.
type Config struct {
	// InvestAmount is spent on the poorest owned settlement whenever the
	// treasury covers it.
	InvestAmount int
	// MaxRecruit caps units recruited per turn.
	MaxRecruit int
	// SafetyMargin gates invasions: attack only when the chosen garrison's
	// attack strength exceeds the target's defense strength by this factor.
	SafetyMargin float64
}

func DefaultConfig() Config {
	return Config{
		InvestAmount: 50,
		MaxRecruit:   3,
		SafetyMargin: 1.5,
	}
}

// Plan is one faction's decisions for a turn. Any order may be nil; a turn
// with no military action is an empty decision, not an error.
type Plan struct {
	Invest  *InvestOrder
	Recruit *RecruitOrder
	Attack  *AttackOrder
}

type InvestOrder struct {
	SettlementID string
	Amount       int
}

type RecruitOrder struct {
	SettlementID string
	UnitType     game.UnitType
	Count        int
	TotalCost    int
}

type AttackOrder struct {
	FromID string
	ToID   string
	Seed   uint64
}

// Controller plans turns for AI factions. One controller serves every AI
// faction; it holds no per-faction state between turns.
type Controller struct {
	cfg Config
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// PlanTurn evaluates the fixed policy order: invest in the poorest
// settlement, reinforce the most exposed frontier garrison, then invade the
// weakest adjacent enemy garrison if the safety margin allows. Income has
// already been collected by the time the controller runs.
func (c *Controller) PlanTurn(w *game.World, f *game.Faction, turn int) Plan {
	plan := Plan{}
	if f.Eliminated {
		return plan
	}

	treasury := f.Treasury
	owned := ownedInOrder(w, f)

	if target := poorestSettlement(owned); target != nil && treasury >= c.cfg.InvestAmount {
		plan.Invest = &InvestOrder{SettlementID: target.ID, Amount: c.cfg.InvestAmount}
		treasury -= c.cfg.InvestAmount
	}

	if target := mostExposedSettlement(w, owned); target != nil {
		cost := w.Table[game.Militia].Cost
		count := treasury / cost
		if count > c.cfg.MaxRecruit {
			count = c.cfg.MaxRecruit
		}
		if count > 0 {
			plan.Recruit = &RecruitOrder{
				SettlementID: target.ID,
				UnitType:     game.Militia,
				Count:        count,
				TotalCost:    count * cost,
			}
		}
	}

	if from, to := c.pickInvasion(w, f, owned); from != nil {
		plan.Attack = &AttackOrder{
			FromID: from.ID,
			ToID:   to.ID,
			Seed:   battle.DeriveSeed(turn, from.ID, to.ID),
		}
	}
	return plan
}

// ownedInOrder filters the world's load-ordered settlement list down to the
// faction's holdings, keeping iteration deterministic.
func ownedInOrder(w *game.World, f *game.Faction) []*game.Settlement {
	var owned []*game.Settlement
	for _, s := range w.Settlements() {
		if s.Owner == f {
			owned = append(owned, s)
		}
	}
	return owned
}

func poorestSettlement(owned []*game.Settlement) *game.Settlement {
	var best *game.Settlement
	for _, s := range owned {
		if best == nil || s.Prosperity < best.Prosperity {
			best = s
		}
	}
	return best
}

// mostExposedSettlement returns the frontier settlement with the weakest
// garrison-defense to enemy-adjacency ratio. Settlements with no enemy
// neighbors are not exposed and never win.
func mostExposedSettlement(w *game.World, owned []*game.Settlement) *game.Settlement {
	var best *game.Settlement
	bestRatio := 0.0
	for _, s := range owned {
		exposure := 0
		for _, n := range w.Adjacent(s) {
			if n.Owner != s.Owner {
				exposure++
			}
		}
		if exposure == 0 {
			continue
		}
		ratio := float64(s.Garrison.DefenseStrength(w.Table)) / float64(exposure)
		if best == nil || ratio < bestRatio {
			best = s
			bestRatio = ratio
		}
	}
	return best
}

// pickInvasion selects the weakest enemy garrison bordering the faction and
// the strongest own garrison next to it. Both are nil when no target clears
// the safety margin.
func (c *Controller) pickInvasion(w *game.World, f *game.Faction, owned []*game.Settlement) (from, to *game.Settlement) {
	var target *game.Settlement
	targetDefense := 0
	for _, s := range owned {
		for _, n := range w.Adjacent(s) {
			if n.Owner == f {
				continue
			}
			defense := n.Garrison.DefenseStrength(w.Table)
			if target == nil || defense < targetDefense {
				target = n
				targetDefense = defense
			}
		}
	}
	if target == nil {
		return nil, nil
	}

	var origin *game.Settlement
	originAttack := 0
	for _, s := range owned {
		if !w.IsAdjacent(s.ID, target.ID) {
			continue
		}
		attack := s.Garrison.AttackStrength(w.Table)
		if origin == nil || attack > originAttack {
			origin = s
			originAttack = attack
		}
	}
	if origin == nil || float64(originAttack) <= c.cfg.SafetyMargin*float64(targetDefense) {
		return nil, nil
	}
	return origin, target
}
