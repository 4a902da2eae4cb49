package game

import "fmt"

// InsufficientFundsError reports a spend that would push a treasury negative.
// The spend is rejected outright; treasuries are never clamped.
type InsufficientFundsError struct {
	Faction   string
	Needed    int
	Available int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s cannot afford %d (treasury %d)", e.Faction, e.Needed, e.Available)
}

// InvalidTargetError reports an intent the territory graph or ownership
// rules forbid, such as a non-adjacent attack or attacking one's own
// settlement.
type InvalidTargetError struct {
	Settlement string
	Target     string
	Reason     string
}

func (e *InvalidTargetError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("invalid target %s: %s", e.Settlement, e.Reason)
	}
	return fmt.Sprintf("cannot attack %s from %s: %s", e.Target, e.Settlement, e.Reason)
}

// InvalidUnitTypeError reports a recruit request for an unknown unit name.
type InvalidUnitTypeError struct {
	Name string
}

func (e *InvalidUnitTypeError) Error() string {
	return fmt.Sprintf("unknown unit type %q", e.Name)
}

// SettlementNotFoundError reports an intent referencing an identity missing
// from the scenario.
type SettlementNotFoundError struct {
	ID string
}

func (e *SettlementNotFoundError) Error() string {
	return fmt.Sprintf("no settlement %q", e.ID)
}

// GameAlreadyEndedError reports an intent submitted after the engine reached
// its terminal state.
type GameAlreadyEndedError struct {
	Turn int
}

func (e *GameAlreadyEndedError) Error() string {
	return fmt.Sprintf("campaign already ended on turn %d", e.Turn)
}
