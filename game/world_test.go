package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testWorld(t *testing.T) (*World, *Faction, *Faction) {
	t.Helper()
	table := StatTable{
		Militia:   {Attack: 1, Defense: 1, Cost: 10},
		Cavalry:   {Attack: 2, Defense: 1, Cost: 20},
		Artillery: {Attack: 3, Defense: 1, Cost: 30},
	}
	cfg := Config{
		TurnLimit:       25,
		InvestCost:      25,
		CaptureGarrison: map[UnitType]int{Militia: 1},
	}
	w := NewWorld(table, cfg)
	a := w.AddFaction("a", "Faction A", 100, true)
	b := w.AddFaction("b", "Faction B", 100, false)
	w.AddSettlement("s1", "S1", a, 3, ArmyOf(map[UnitType]int{Militia: 5}))
	w.AddSettlement("s2", "S2", b, 2, ArmyOf(map[UnitType]int{Militia: 2}))
	w.AddSettlement("s3", "S3", a, 1, NewArmy())
	w.AddBorder("s1", "s2")
	w.AddBorder("s1", "s3")
	return w, a, b
}

func TestCollectIncome(t *testing.T) {
	w, a, _ := testWorld(t)

	income := w.CollectIncome(a)

	require.Equal(t, 4, income, "income should be the prosperity sum of owned settlements")
	require.Equal(t, 104, a.Treasury)
}

func TestCollectIncomeEliminatedFaction(t *testing.T) {
	w, _, b := testWorld(t)
	b.Eliminated = true

	income := w.CollectIncome(b)

	require.Zero(t, income, "eliminated factions earn nothing")
	require.Equal(t, 100, b.Treasury, "treasury should be untouched")
}

func TestInvestConvertsAtConfiguredRate(t *testing.T) {
	w, a, _ := testWorld(t)
	s1, _ := w.Settlement("s1")

	gained, err := w.Invest(s1, 50)

	require.NoError(t, err)
	require.Equal(t, 2, gained, "50 treasury at 25 per point buys 2 prosperity")
	require.Equal(t, 5, s1.Prosperity)
	require.Equal(t, 50, a.Treasury)
}

func TestInvestInsufficientFunds(t *testing.T) {
	w, a, _ := testWorld(t)
	s1, _ := w.Settlement("s1")

	_, err := w.Invest(s1, a.Treasury+1)

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 101, insufficient.Needed)
	require.Equal(t, 100, insufficient.Available)
	require.Equal(t, 100, a.Treasury, "failed spend must not touch the treasury")
	require.Equal(t, 3, s1.Prosperity, "failed spend must not touch prosperity")
}

func TestRecruitAddsUnitsAndCharges(t *testing.T) {
	w, a, _ := testWorld(t)
	s1, _ := w.Settlement("s1")

	err := w.Recruit(s1, Cavalry, 2, 40)

	require.NoError(t, err)
	require.Equal(t, 60, a.Treasury)
	require.Equal(t, 2, s1.Garrison.Counts[Cavalry])
}

func TestRecruitInsufficientFunds(t *testing.T) {
	w, a, _ := testWorld(t)
	s1, _ := w.Settlement("s1")

	err := w.Recruit(s1, Militia, 20, 200)

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 100, a.Treasury, "failed spend must not touch the treasury")
	require.Equal(t, 5, s1.Garrison.Counts[Militia], "failed recruit must not add units")
}

func TestTransferControl(t *testing.T) {
	w, a, b := testWorld(t)
	s2, _ := w.Settlement("s2")

	eliminated := w.TransferControl(s2, a)

	require.True(t, eliminated, "losing the last settlement eliminates the owner")
	require.True(t, b.Eliminated)
	require.Same(t, a, s2.Owner)
	require.Contains(t, a.Owned, "s2")
	require.NotContains(t, b.Owned, "s2")
	require.Equal(t, map[UnitType]int{Militia: 1}, s2.Garrison.Counts,
		"capture installs the configured fresh garrison")
}

func TestTransferControlKeepsOwnerWithRemainingSettlements(t *testing.T) {
	w, _, b := testWorld(t)
	s3, _ := w.Settlement("s3")

	eliminated := w.TransferControl(s3, b)

	require.False(t, eliminated)
	a := w.PlayerFaction()
	require.False(t, a.Eliminated, "faction still holding settlements stays alive")
	require.Equal(t, 1, a.SettlementCount())
}

func TestIsAdjacentSymmetric(t *testing.T) {
	w, _, _ := testWorld(t)

	require.True(t, w.IsAdjacent("s1", "s2"))
	require.True(t, w.IsAdjacent("s2", "s1"), "borders are symmetric")
	require.False(t, w.IsAdjacent("s2", "s3"))
	require.False(t, w.IsAdjacent("s1", "nowhere"))
}

func TestSettlementNotFound(t *testing.T) {
	w, _, _ := testWorld(t)

	_, err := w.Settlement("nowhere")

	var notFound *SettlementNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "nowhere", notFound.ID)
}

func TestDefaultScenario(t *testing.T) {
	w := DefaultScenario()

	require.Len(t, w.Factions(), 3)
	require.Len(t, w.Settlements(), 6)
	require.NotNil(t, w.PlayerFaction())
	require.Equal(t, "Frontier League", w.PlayerFaction().Name)

	// Every border must be symmetric and every settlement owned.
	for _, s := range w.Settlements() {
		require.NotNil(t, s.Owner, "settlement %s must have an owner", s.ID)
		require.Contains(t, s.Owner.Owned, s.ID)
		for _, n := range s.AdjacentIDs() {
			require.True(t, w.IsAdjacent(n, s.ID), "border %s-%s must be symmetric", s.ID, n)
		}
	}
}
