// Package engine orchestrates the per-turn phase sequence: player intents,
// AI resolution, battle application, victory checks, and the turn counter.
// The engine owns the world exclusively for the campaign's lifetime; the
// resolver and controller only ever touch it through engine-mediated calls.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"frontier/ai"
	"frontier/battle"
	"frontier/game"
)

// Phase is the engine's position in the turn state machine.
type Phase int

const (
	AwaitingPlayerAction Phase = iota
	EndTurnRequested
	AIResolution
	VictoryCheck
	Terminal
)

// Outcome is the campaign result.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerVictory
	PlayerDefeat
	TurnLimitResolved
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in-progress"
	case PlayerVictory:
		return "player-victory"
	case PlayerDefeat:
		return "player-defeat"
	case TurnLimitResolved:
		return "turn-limit-resolved"
	default:
		return "unknown"
	}
}

// Engine runs one campaign over a world snapshot. It is single-threaded and
// turn-synchronous: intents apply strictly one at a time, AI factions resolve
// strictly in creation order.
type Engine struct {
	world      *game.World
	resolver   battle.Resolver
	controller *ai.Controller

	turn    int
	phase   Phase
	outcome Outcome
	winner  *game.Faction // set on victory or turn-limit resolution; nil on draw or defeat

	events  []Event
	battles int
}

// New wires an engine over a loaded world. The world must not be mutated by
// anyone else afterwards.
func New(w *game.World, resolver battle.Resolver, controller *ai.Controller) *Engine {
	return &Engine{
		world:      w,
		resolver:   resolver,
		controller: controller,
	}
}

func (e *Engine) World() *game.World { return e.world }
func (e *Engine) Turn() int          { return e.turn }
func (e *Engine) Phase() Phase       { return e.phase }
func (e *Engine) Outcome() Outcome   { return e.outcome }

// Winner returns the winning faction once the campaign ends, or nil on a
// draw or while play continues.
func (e *Engine) Winner() *game.Faction { return e.winner }

// Submit validates and applies one player intent. A typed failure leaves the
// world and the phase untouched.
func (e *Engine) Submit(intent Intent) error {
	if e.phase == Terminal {
		return &game.GameAlreadyEndedError{Turn: e.turn}
	}
	player := e.world.PlayerFaction()

	switch intent.Type {
	case CollectIncome:
		income := e.world.CollectIncome(player)
		e.emit(Event{Type: IncomeCollected, Faction: player.Name, Amount: income})
		return nil

	case Invest:
		s, err := e.ownedSettlement(player, intent.SettlementID)
		if err != nil {
			return err
		}
		if intent.Amount <= 0 {
			return &game.InvalidTargetError{Settlement: s.ID, Reason: "investment must be positive"}
		}
		gained, err := e.world.Invest(s, intent.Amount)
		if err != nil {
			return err
		}
		e.emit(Event{Type: SettlementUpgraded, Faction: player.Name, Settlement: s.ID, Amount: gained})
		return nil

	case Recruit:
		s, err := e.ownedSettlement(player, intent.SettlementID)
		if err != nil {
			return err
		}
		unit, err := game.ParseUnitType(intent.UnitName)
		if err != nil {
			return err
		}
		if intent.Count <= 0 {
			return &game.InvalidTargetError{Settlement: s.ID, Reason: "recruit count must be positive"}
		}
		cost := e.world.Table[unit].Cost * intent.Count
		if err := e.world.Recruit(s, unit, intent.Count, cost); err != nil {
			return err
		}
		e.emit(Event{Type: UnitsRecruited, Faction: player.Name, Settlement: s.ID, UnitType: unit, Count: intent.Count, Amount: cost})
		return nil

	case Attack:
		from, err := e.ownedSettlement(player, intent.SettlementID)
		if err != nil {
			return err
		}
		to, err := e.world.Settlement(intent.TargetID)
		if err != nil {
			return err
		}
		if to.Owner == player {
			return &game.InvalidTargetError{Settlement: from.ID, Target: to.ID, Reason: "settlement is already yours"}
		}
		if !e.world.IsAdjacent(from.ID, to.ID) {
			return &game.InvalidTargetError{Settlement: from.ID, Target: to.ID, Reason: "settlements are not adjacent"}
		}
		e.applyBattle(player, from, to, battle.DeriveSeed(e.turn, from.ID, to.ID))
		return nil

	case EndTurn:
		e.endTurn()
		return nil

	case Quit:
		// Conceding the campaign counts as a defeat.
		log.Info().Int("turn", e.turn).Msg("player conceded")
		e.finish(PlayerDefeat, nil)
		return nil

	default:
		return &game.InvalidTargetError{Reason: fmt.Sprintf("unknown intent %d", intent.Type)}
	}
}

// ownedSettlement resolves an identity and checks player ownership.
func (e *Engine) ownedSettlement(player *game.Faction, id string) (*game.Settlement, error) {
	s, err := e.world.Settlement(id)
	if err != nil {
		return nil, err
	}
	if s.Owner != player {
		return nil, &game.InvalidTargetError{Settlement: id, Reason: "not controlled by " + player.Name}
	}
	return s, nil
}

// applyBattle resolves one attack and applies its consequences: attacker
// casualties always land; a win transfers control (which installs the fresh
// capture garrison), a loss bleeds the defender too.
func (e *Engine) applyBattle(attacker *game.Faction, from, to *game.Settlement, seed uint64) {
	report := e.resolver.Resolve(from.Garrison, to.Garrison, seed)
	e.battles++

	applyLosses(from.Garrison, report.AttackerLosses)
	e.emit(Event{Type: BattleResolved, Faction: attacker.Name, Settlement: from.ID, Target: to.ID, Report: &report})
	log.Debug().
		Str("attacker", attacker.Name).
		Str("from", from.ID).Str("to", to.ID).
		Bool("won", report.AttackerWon).
		Float64("attackerPower", report.AttackerPower).
		Float64("defenderPower", report.DefenderPower).
		Msg("battle resolved")

	if !report.AttackerWon {
		applyLosses(to.Garrison, report.DefenderLosses)
		return
	}

	old := to.Owner
	eliminated := e.world.TransferControl(to, attacker)
	e.emit(Event{Type: SettlementCaptured, Faction: attacker.Name, Settlement: to.ID, Target: old.Name})
	if eliminated {
		e.emit(Event{Type: FactionEliminated, Faction: old.Name})
		log.Info().Str("faction", old.Name).Msg("faction eliminated")
	}
}

func applyLosses(a *game.Army, losses map[game.UnitType]int) {
	for t, n := range losses {
		a.Remove(t, n)
	}
}

// endTurn walks the EndTurnRequested → AIResolution → VictoryCheck sequence
// and either advances the turn counter or lands in Terminal.
func (e *Engine) endTurn() {
	e.phase = EndTurnRequested

	e.phase = AIResolution
	for _, f := range e.world.Factions() {
		if f.IsPlayer || f.Eliminated {
			continue
		}
		income := e.world.CollectIncome(f)
		e.emit(Event{Type: IncomeCollected, Faction: f.Name, Amount: income})

		e.applyPlan(f, e.controller.PlanTurn(e.world, f, e.turn))
	}

	e.phase = VictoryCheck
	e.checkVictory()
}

// applyPlan executes an AI plan. The controller gates its own orders against
// public state, so a rejected order here is a programming fault, not a
// recoverable condition.
func (e *Engine) applyPlan(f *game.Faction, plan ai.Plan) {
	if plan.Invest != nil {
		s := e.mustSettlement(plan.Invest.SettlementID)
		gained, err := e.world.Invest(s, plan.Invest.Amount)
		if err != nil {
			panic(fmt.Sprintf("ai plan violated invariants: %v", err))
		}
		e.emit(Event{Type: SettlementUpgraded, Faction: f.Name, Settlement: s.ID, Amount: gained})
	}
	if plan.Recruit != nil {
		s := e.mustSettlement(plan.Recruit.SettlementID)
		if err := e.world.Recruit(s, plan.Recruit.UnitType, plan.Recruit.Count, plan.Recruit.TotalCost); err != nil {
			panic(fmt.Sprintf("ai plan violated invariants: %v", err))
		}
		e.emit(Event{Type: UnitsRecruited, Faction: f.Name, Settlement: s.ID, UnitType: plan.Recruit.UnitType, Count: plan.Recruit.Count, Amount: plan.Recruit.TotalCost})
	}
	if plan.Attack != nil {
		from := e.mustSettlement(plan.Attack.FromID)
		to := e.mustSettlement(plan.Attack.ToID)
		if from.Owner != f || to.Owner == f || !e.world.IsAdjacent(from.ID, to.ID) {
			panic(fmt.Sprintf("ai plan violated invariants: illegal attack %s -> %s", from.ID, to.ID))
		}
		e.applyBattle(f, from, to, plan.Attack.Seed)
	}
}

func (e *Engine) mustSettlement(id string) *game.Settlement {
	s, err := e.world.Settlement(id)
	if err != nil {
		panic(fmt.Sprintf("ai plan violated invariants: %v", err))
	}
	return s
}

// checkVictory applies the victory conditions in priority order, then either
// finishes the campaign or advances to the next turn.
func (e *Engine) checkVictory() {
	player := e.world.PlayerFaction()

	rivalsAlive := false
	for _, f := range e.world.Factions() {
		if !f.IsPlayer && !f.Eliminated {
			rivalsAlive = true
			break
		}
	}
	if !rivalsAlive {
		e.finish(PlayerVictory, player)
		return
	}
	if player.Eliminated {
		e.finish(PlayerDefeat, nil)
		return
	}

	e.turn++
	e.emit(Event{Type: TurnAdvanced})
	if e.turn >= e.world.Cfg.TurnLimit {
		e.finish(TurnLimitResolved, e.leader())
		return
	}
	e.phase = AwaitingPlayerAction
}

// leader returns the faction holding the most settlements, or nil on an
// exact tie for first place, which resolves as a draw.
func (e *Engine) leader() *game.Faction {
	var best *game.Faction
	tied := false
	for _, f := range e.world.Factions() {
		switch {
		case best == nil || f.SettlementCount() > best.SettlementCount():
			best = f
			tied = false
		case f.SettlementCount() == best.SettlementCount():
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}

func (e *Engine) finish(outcome Outcome, winner *game.Faction) {
	e.phase = Terminal
	e.outcome = outcome
	e.winner = winner

	name := ""
	if winner != nil {
		name = winner.Name
	}
	e.emit(Event{Type: GameEnded, Outcome: outcome, Winner: name})
	log.Info().
		Int("turn", e.turn).
		Stringer("outcome", outcome).
		Str("winner", name).
		Int("battles", e.battles).
		Msg("campaign ended")
}

// Summary describes a finished (or running) campaign for reporting.
type Summary struct {
	TurnsPlayed   int
	BattlesFought int
	Outcome       Outcome
	Winner        string         // empty on a draw or before the end
	Territories   map[string]int // faction name -> settlement count
}

func (e *Engine) Summary() Summary {
	s := Summary{
		TurnsPlayed:   e.turn,
		BattlesFought: e.battles,
		Outcome:       e.outcome,
		Territories:   make(map[string]int),
	}
	if e.winner != nil {
		s.Winner = e.winner.Name
	}
	for _, f := range e.world.Factions() {
		s.Territories[f.Name] = f.SettlementCount()
	}
	return s
}
