package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"frontier/ai"
	"frontier/battle"
	"frontier/game"
)

var testTable = game.StatTable{
	game.Militia:   {Attack: 1, Defense: 1, Cost: 10},
	game.Cavalry:   {Attack: 2, Defense: 1, Cost: 20},
	game.Artillery: {Attack: 3, Defense: 1, Cost: 30},
}

func testConfig() game.Config {
	return game.Config{
		TurnLimit:       25,
		InvestCost:      25,
		CaptureGarrison: map[game.UnitType]int{game.Militia: 1},
	}
}

func newEngine(w *game.World) *Engine {
	return New(w,
		battle.NewResolver(w.Table, battle.DefaultConfig()),
		ai.NewController(ai.DefaultConfig()))
}

// borderedWorld is the minimal contested map: the player's S1 (5 militia) borders
// faction B's S2 (2 militia).
func borderedWorld(t *testing.T) (*game.World, *game.Faction, *game.Faction) {
	t.Helper()
	w := game.NewWorld(testTable, testConfig())
	a := w.AddFaction("a", "Faction A", 100, true)
	b := w.AddFaction("b", "Faction B", 0, false)
	w.AddSettlement("s1", "S1", a, 3, game.ArmyOf(map[game.UnitType]int{game.Militia: 5}))
	w.AddSettlement("s2", "S2", b, 2, game.ArmyOf(map[game.UnitType]int{game.Militia: 2}))
	w.AddBorder("s1", "s2")
	return w, a, b
}

// islandWorld has no borders between factions, so no battles can ever occur.
// extraPlayerTowns breaks the settlement-count tie at the turn limit.
func islandWorld(t *testing.T, extraPlayerTowns int) *game.World {
	t.Helper()
	w := game.NewWorld(testTable, testConfig())
	a := w.AddFaction("a", "Faction A", 0, true)
	b := w.AddFaction("b", "Faction B", 0, false)
	w.AddSettlement("a0", "A0", a, 1, game.NewArmy())
	for i := 0; i < extraPlayerTowns; i++ {
		w.AddSettlement("ax"+string(rune('0'+i)), "AX", a, 1, game.NewArmy())
	}
	w.AddSettlement("b0", "B0", b, 1, game.NewArmy())
	return w
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func TestAttackCapturesSettlement(t *testing.T) {
	w, a, b := borderedWorld(t)
	e := newEngine(w)

	err := e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s2"})
	require.NoError(t, err)

	events := e.DrainEvents()
	require.Equal(t, []EventType{BattleResolved, SettlementCaptured, FactionEliminated}, eventTypes(events))

	battleEv := events[0]
	require.True(t, battleEv.Report.AttackerWon,
		"five militia against two cannot lose within the modifier range")
	require.Greater(t, battleEv.Report.AttackerPower, battleEv.Report.DefenderPower)

	captured := events[1]
	require.Equal(t, "s2", captured.Settlement)
	require.Equal(t, "Faction A", captured.Faction)
	require.Equal(t, "Faction B", captured.Target, "capture reports the previous owner")

	s2, _ := w.Settlement("s2")
	require.Same(t, a, s2.Owner)
	require.True(t, b.Eliminated)
}

func TestAttackIsReproducible(t *testing.T) {
	run := func() Summary {
		w, _, _ := borderedWorld(t)
		e := newEngine(w)
		require.NoError(t, e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s2"}))
		require.NoError(t, e.Submit(Intent{Type: EndTurn}))
		return e.Summary()
	}

	require.Equal(t, run(), run(), "identical campaigns must produce identical summaries")
}

func TestVictoryAfterLastRivalFalls(t *testing.T) {
	w, _, _ := borderedWorld(t)
	e := newEngine(w)

	require.NoError(t, e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s2"}))
	require.NoError(t, e.Submit(Intent{Type: EndTurn}))

	require.Equal(t, Terminal, e.Phase())
	require.Equal(t, PlayerVictory, e.Outcome())
	require.Equal(t, "Faction A", e.Winner().Name)

	events := e.DrainEvents()
	last := events[len(events)-1]
	require.Equal(t, GameEnded, last.Type)
	require.Equal(t, PlayerVictory, last.Outcome)
}

func TestInvalidIntentsLeaveStateUnchanged(t *testing.T) {
	w, a, _ := borderedWorld(t)
	e := newEngine(w)
	s1, _ := w.Settlement("s1")

	t.Run("insufficient funds", func(t *testing.T) {
		err := e.Submit(Intent{Type: Invest, SettlementID: "s1", Amount: 1000})
		var insufficient *game.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 100, a.Treasury)
		require.Equal(t, 3, s1.Prosperity)
	})

	t.Run("attacking own settlement", func(t *testing.T) {
		err := e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s1"})
		var invalid *game.InvalidTargetError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("non-adjacent attack", func(t *testing.T) {
		wi := islandWorld(t, 0)
		ei := newEngine(wi)
		err := ei.Submit(Intent{Type: Attack, SettlementID: "a0", TargetID: "b0"})
		var invalid *game.InvalidTargetError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "settlements are not adjacent", invalid.Reason)
	})

	t.Run("unknown settlement", func(t *testing.T) {
		err := e.Submit(Intent{Type: Invest, SettlementID: "nowhere", Amount: 10})
		var notFound *game.SettlementNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("unknown unit type", func(t *testing.T) {
		err := e.Submit(Intent{Type: Recruit, SettlementID: "s1", UnitName: "dragoons", Count: 1})
		var invalid *game.InvalidUnitTypeError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("enemy settlement", func(t *testing.T) {
		err := e.Submit(Intent{Type: Invest, SettlementID: "s2", Amount: 10})
		var invalid *game.InvalidTargetError
		require.ErrorAs(t, err, &invalid)
	})

	require.Equal(t, AwaitingPlayerAction, e.Phase(), "failed intents never advance the phase")
	require.Equal(t, 0, e.Turn())
}

func TestPlayerIntentsApply(t *testing.T) {
	w, a, _ := borderedWorld(t)
	e := newEngine(w)
	s1, _ := w.Settlement("s1")

	require.NoError(t, e.Submit(Intent{Type: CollectIncome}))
	require.Equal(t, 103, a.Treasury, "income is the prosperity sum")

	require.NoError(t, e.Submit(Intent{Type: Invest, SettlementID: "s1", Amount: 50}))
	require.Equal(t, 5, s1.Prosperity)
	require.Equal(t, 53, a.Treasury)

	require.NoError(t, e.Submit(Intent{Type: Recruit, SettlementID: "s1", UnitName: "cavalry", Count: 2}))
	require.Equal(t, 2, s1.Garrison.Counts[game.Cavalry])
	require.Equal(t, 13, a.Treasury)

	types := eventTypes(e.DrainEvents())
	require.Equal(t, []EventType{IncomeCollected, SettlementUpgraded, UnitsRecruited}, types)
}

func TestTurnLimitResolvesBySettlementCount(t *testing.T) {
	w := islandWorld(t, 1) // player holds two towns, rival one
	e := newEngine(w)

	for i := 0; i < 25; i++ {
		require.Equal(t, i, e.Turn(), "turn counter must be strictly monotonic")
		require.NoError(t, e.Submit(Intent{Type: EndTurn}))
	}

	require.Equal(t, Terminal, e.Phase())
	require.Equal(t, TurnLimitResolved, e.Outcome())
	require.Equal(t, 25, e.Turn(), "turn counter never exceeds the limit")
	require.Equal(t, "Faction A", e.Winner().Name, "most settlements wins at the limit")

	err := e.Submit(Intent{Type: EndTurn})
	var ended *game.GameAlreadyEndedError
	require.ErrorAs(t, err, &ended)
}

func TestTurnLimitTieIsADraw(t *testing.T) {
	w := islandWorld(t, 0) // one town each
	e := newEngine(w)

	for i := 0; i < 25; i++ {
		require.NoError(t, e.Submit(Intent{Type: EndTurn}))
	}

	require.Equal(t, TurnLimitResolved, e.Outcome())
	require.Nil(t, e.Winner(), "an exact tie is the documented draw outcome")
	require.Empty(t, e.Summary().Winner)
}

func TestQuitConcedes(t *testing.T) {
	w, _, _ := borderedWorld(t)
	e := newEngine(w)

	require.NoError(t, e.Submit(Intent{Type: Quit}))

	require.Equal(t, Terminal, e.Phase())
	require.Equal(t, PlayerDefeat, e.Outcome())
}

func TestEliminatedFactionTakesNoActions(t *testing.T) {
	w, _, b := borderedWorld(t)
	e := newEngine(w)

	require.NoError(t, e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s2"}))
	require.True(t, b.Eliminated)
	e.DrainEvents()

	// The engine ends on the EndTurn victory check, but until then the
	// eliminated faction must never act.
	require.NoError(t, e.Submit(Intent{Type: EndTurn}))
	for _, ev := range e.DrainEvents() {
		require.NotEqual(t, "Faction B", ev.Faction, "eliminated factions take no actions")
	}
}

func TestAIResolutionRunsInCreationOrder(t *testing.T) {
	w := game.NewWorld(testTable, testConfig())
	w.AddFaction("a", "Faction A", 0, true)
	w.AddFaction("b", "Faction B", 100, false)
	w.AddFaction("c", "Faction C", 100, false)
	w.AddSettlement("a0", "A0", w.Factions()[0], 1, game.NewArmy())
	w.AddSettlement("b0", "B0", w.Factions()[1], 1, game.NewArmy())
	w.AddSettlement("c0", "C0", w.Factions()[2], 1, game.NewArmy())
	e := newEngine(w)

	require.NoError(t, e.Submit(Intent{Type: EndTurn}))

	var acting []string
	for _, ev := range e.DrainEvents() {
		if ev.Type == IncomeCollected {
			acting = append(acting, ev.Faction)
		}
	}
	require.Equal(t, []string{"Faction B", "Faction C"}, acting,
		"AI factions resolve in faction creation order")
}

func TestSummary(t *testing.T) {
	w, _, _ := borderedWorld(t)
	e := newEngine(w)

	require.NoError(t, e.Submit(Intent{Type: Attack, SettlementID: "s1", TargetID: "s2"}))
	require.NoError(t, e.Submit(Intent{Type: EndTurn}))

	s := e.Summary()
	require.Equal(t, PlayerVictory, s.Outcome)
	require.Equal(t, "Faction A", s.Winner)
	require.Equal(t, 1, s.BattlesFought)
	require.Equal(t, map[string]int{"Faction A": 2, "Faction B": 0}, s.Territories)
}
