// Package ui renders world state and engine events for the terminal. It is a
// pure consumer of the core: nothing in game, battle, or engine imports it.
package ui

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"frontier/engine"
	"frontier/game"
)

var factionSymbols = map[string]string{
	"frontier-league":  "★",
	"desert-union":     "♞",
	"canyon-syndicate": "♠",
}

func symbol(f *game.Faction) string {
	if s, ok := factionSymbols[f.ID]; ok {
		return s
	}
	return "✦"
}

// Badge is a settlement label with its owner's faction symbol.
func Badge(s *game.Settlement) string {
	return fmt.Sprintf("%s %s", s.Name, symbol(s.Owner))
}

// RenderMap draws the frontier as an adjacency sketch: one line per
// settlement with its badge, garrison headcount, and neighbors.
func RenderMap(w *game.World) string {
	var b strings.Builder
	for _, s := range w.Settlements() {
		neighbors := make([]string, 0, len(s.AdjacentIDs()))
		for _, n := range w.Adjacent(s) {
			neighbors = append(neighbors, Badge(n))
		}
		fmt.Fprintf(&b, "%-18s garrison %2d ── %s\n",
			Badge(s), s.Garrison.TotalUnits(), strings.Join(neighbors, ", "))
	}
	b.WriteString("\nLegend:")
	for _, f := range w.Factions() {
		fmt.Fprintf(&b, " %s %s |", symbol(f), f.Name)
	}
	return strings.TrimSuffix(b.String(), "|") + "\n"
}

// RenderStatus returns the per-turn status panel: the player's holdings and
// the faction standings sorted by territory count, then treasury.
func RenderStatus(w *game.World, turn int) string {
	player := w.PlayerFaction()
	var b bytes.Buffer

	fmt.Fprintf(&b, "=== Turn %d/%d | %s | Treasury $%d ===\n",
		turn, w.Cfg.TurnLimit, player.Name, player.Treasury)

	holdings := tablewriter.NewTable(&b,
		tablewriter.WithHeader([]string{"Settlement", "Owner", "Prosperity", "Garrison", "Defense"}),
	)
	for _, s := range w.Settlements() {
		if s.Owner != player {
			continue
		}
		holdings.Append([]string{
			s.Name,
			s.Owner.Name,
			strconv.Itoa(s.Prosperity),
			garrisonLine(s.Garrison),
			strconv.Itoa(s.Garrison.DefenseStrength(w.Table)),
		})
	}
	holdings.Render()

	factions := append([]*game.Faction(nil), w.Factions()...)
	sort.SliceStable(factions, func(i, j int) bool {
		if factions[i].SettlementCount() != factions[j].SettlementCount() {
			return factions[i].SettlementCount() > factions[j].SettlementCount()
		}
		return factions[i].Treasury > factions[j].Treasury
	})

	standings := tablewriter.NewTable(&b,
		tablewriter.WithHeader([]string{"Faction", "Territories", "Treasury", "Status"}),
	)
	for _, f := range factions {
		status := "active"
		if f.Eliminated {
			status = "eliminated"
		}
		standings.Append([]string{
			f.Name,
			strconv.Itoa(f.SettlementCount()),
			strconv.Itoa(f.Treasury),
			status,
		})
	}
	standings.Render()

	return b.String()
}

func garrisonLine(a *game.Army) string {
	parts := make([]string, 0, len(a.Counts))
	for _, t := range game.UnitTypes() {
		if n := a.Counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, t))
		}
	}
	if len(parts) == 0 {
		return "undefended"
	}
	return strings.Join(parts, ", ")
}

// FormatEvent renders one engine event as an event-log line.
func FormatEvent(ev engine.Event) string {
	switch ev.Type {
	case engine.IncomeCollected:
		return fmt.Sprintf("%s collected $%d in taxes and trade.", ev.Faction, ev.Amount)
	case engine.SettlementUpgraded:
		return fmt.Sprintf("%s developed %s (+%d prosperity).", ev.Faction, ev.Settlement, ev.Amount)
	case engine.UnitsRecruited:
		return fmt.Sprintf("%s recruited %d %s at %s for $%d.", ev.Faction, ev.Count, ev.UnitType, ev.Settlement, ev.Amount)
	case engine.BattleResolved:
		outcome := "was repelled at"
		if ev.Report.AttackerWon {
			outcome = "overran"
		}
		return fmt.Sprintf("%s attacked from %s and %s %s (%.0f vs %.0f).",
			ev.Faction, ev.Settlement, outcome, ev.Target, ev.Report.AttackerPower, ev.Report.DefenderPower)
	case engine.SettlementCaptured:
		return fmt.Sprintf("%s seized %s from %s.", ev.Faction, ev.Settlement, ev.Target)
	case engine.FactionEliminated:
		return fmt.Sprintf("%s has been driven from the frontier!", ev.Faction)
	case engine.TurnAdvanced:
		return fmt.Sprintf("Turn %d begins.", ev.Turn)
	case engine.GameEnded:
		if ev.Winner == "" {
			return fmt.Sprintf("The campaign ends in a draw (%s).", ev.Outcome)
		}
		return fmt.Sprintf("The campaign ends: %s prevails (%s).", ev.Winner, ev.Outcome)
	default:
		return ev.Type.String()
	}
}

// RenderSummary formats the final campaign report.
func RenderSummary(s engine.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Campaign over after %d turns and %d battles: %s", s.TurnsPlayed, s.BattlesFought, s.Outcome)
	if s.Winner != "" {
		fmt.Fprintf(&b, " — %s prevails", s.Winner)
	}
	b.WriteString("\n")

	names := make([]string, 0, len(s.Territories))
	for name := range s.Territories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %d territories\n", name, s.Territories[name])
	}
	return b.String()
}
