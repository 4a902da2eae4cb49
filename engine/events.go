package engine

import (
	"frontier/battle"
	"frontier/game"
)

// EventType tags the structured turn-result events the engine emits for the
// presentation layer.
type EventType int

const (
	IncomeCollected EventType = iota
	SettlementUpgraded
	UnitsRecruited
	BattleResolved
	SettlementCaptured
	FactionEliminated
	TurnAdvanced
	GameEnded
)

func (t EventType) String() string {
	switch t {
	case IncomeCollected:
		return "IncomeCollected"
	case SettlementUpgraded:
		return "SettlementUpgraded"
	case UnitsRecruited:
		return "UnitsRecruited"
	case BattleResolved:
		return "BattleResolved"
	case SettlementCaptured:
		return "SettlementCaptured"
	case FactionEliminated:
		return "FactionEliminated"
	case TurnAdvanced:
		return "TurnAdvanced"
	case GameEnded:
		return "GameEnded"
	default:
		return "Unknown"
	}
}

// Event is one entry of the ordered turn-result stream. Fields beyond Type
// and Turn are filled per event type; Report is set only on BattleResolved.
type Event struct {
	Type       EventType
	Turn       int
	Faction    string // acting faction
	Settlement string // primary settlement
	Target     string // attack target / previous owner on capture
	Amount     int    // income collected or prosperity gained
	UnitType   game.UnitType
	Count      int
	Report     *battle.Report
	Outcome    Outcome
	Winner     string // final winner name, empty on a draw
}

func (e *Engine) emit(ev Event) {
	ev.Turn = e.turn
	e.events = append(e.events, ev)
}

// DrainEvents returns the events emitted since the last drain, in order of
// occurrence, and clears the internal buffer.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}
