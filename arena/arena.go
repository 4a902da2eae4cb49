// Package arena pits heuristic tunings against each other by driving the
// player faction through the same intent API a human would use. Campaigns are
// fully deterministic (battle seeds derive from turn numbers and settlement
// identities), so one game per matchup is a complete comparison.
package arena

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"frontier/ai"
	"frontier/battle"
	"frontier/engine"
	"frontier/game"
)

// Matchup assigns one controller tuning to the player seat and another to
// every rival faction.
type Matchup struct {
	Name   string
	Player ai.Config
	Rival  ai.Config
}

// DefaultMatchups compares the default tuning against more aggressive and
// more cautious invasion margins, and against an economy-first variant.
func DefaultMatchups() []Matchup {
	base := ai.DefaultConfig()

	aggressive := base
	aggressive.SafetyMargin = 1.1

	cautious := base
	cautious.SafetyMargin = 2.0

	economist := base
	economist.InvestAmount = 100
	economist.MaxRecruit = 1

	return []Matchup{
		{Name: "baseline", Player: base, Rival: base},
		{Name: "aggressive", Player: aggressive, Rival: base},
		{Name: "cautious", Player: cautious, Rival: base},
		{Name: "economist", Player: economist, Rival: base},
	}
}

// Result records one finished campaign.
type Result struct {
	Matchup string
	Winner  string // empty on a draw
	Outcome engine.Outcome
	Turns   int
	Battles int
}

// Run plays every matchup on the default scenario and collects results.
func Run(matchups []Matchup) ([]Result, error) {
	results := make([]Result, 0, len(matchups))
	for _, m := range matchups {
		log.Info().Str("matchup", m.Name).Msg("arena campaign starting")
		summary, err := playCampaign(m)
		if err != nil {
			return nil, fmt.Errorf("matchup %s: %w", m.Name, err)
		}
		results = append(results, Result{
			Matchup: m.Name,
			Winner:  summary.Winner,
			Outcome: summary.Outcome,
			Turns:   summary.TurnsPlayed,
			Battles: summary.BattlesFought,
		})
		log.Info().
			Str("matchup", m.Name).
			Str("winner", summary.Winner).
			Int("turns", summary.TurnsPlayed).
			Msg("arena campaign finished")
	}
	return results, nil
}

// playCampaign runs one campaign, planning the player's turns with the
// matchup's player tuning and submitting them as ordinary intents.
func playCampaign(m Matchup) (engine.Summary, error) {
	world := game.DefaultScenario()
	eng := engine.New(world,
		battle.NewResolver(world.Table, battle.DefaultConfig()),
		ai.NewController(m.Rival))
	seat := ai.NewController(m.Player)
	player := world.PlayerFaction()

	for eng.Phase() != engine.Terminal {
		if err := eng.Submit(engine.Intent{Type: engine.CollectIncome}); err != nil {
			return engine.Summary{}, err
		}
		plan := seat.PlanTurn(world, player, eng.Turn())
		for _, intent := range planIntents(plan) {
			if err := eng.Submit(intent); err != nil {
				return engine.Summary{}, err
			}
		}
		if err := eng.Submit(engine.Intent{Type: engine.EndTurn}); err != nil {
			return engine.Summary{}, err
		}
		eng.DrainEvents()
	}
	return eng.Summary(), nil
}

// planIntents converts an AI plan into the player intent sequence. The engine
// derives attack seeds from the turn and settlement identities, matching the
// plan's own derivation.
func planIntents(plan ai.Plan) []engine.Intent {
	var intents []engine.Intent
	if plan.Invest != nil {
		intents = append(intents, engine.Intent{
			Type:         engine.Invest,
			SettlementID: plan.Invest.SettlementID,
			Amount:       plan.Invest.Amount,
		})
	}
	if plan.Recruit != nil {
		intents = append(intents, engine.Intent{
			Type:         engine.Recruit,
			SettlementID: plan.Recruit.SettlementID,
			UnitName:     plan.Recruit.UnitType.String(),
			Count:        plan.Recruit.Count,
		})
	}
	if plan.Attack != nil {
		intents = append(intents, engine.Intent{
			Type:         engine.Attack,
			SettlementID: plan.Attack.FromID,
			TargetID:     plan.Attack.ToID,
		})
	}
	return intents
}
