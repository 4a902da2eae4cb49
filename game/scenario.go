package game

// Default frontier scenario: six towns, three factions. The data lives here
// as plain tables so a different scenario only has to swap these out.

type settlementData struct {
	ID         string
	Name       string
	Faction    string
	Prosperity int
	Garrison   map[UnitType]int
}

type factionData struct {
	ID       string
	Name     string
	Treasury int
	IsPlayer bool
}

var defaultFactions = []factionData{
	{ID: "frontier-league", Name: "Frontier League", Treasury: 500, IsPlayer: true},
	{ID: "desert-union", Name: "Desert Union", Treasury: 450},
	{ID: "canyon-syndicate", Name: "Canyon Syndicate", Treasury: 400},
}

var defaultSettlements = []settlementData{
	{ID: "dry-gulch", Name: "Dry Gulch", Faction: "frontier-league", Prosperity: 3,
		Garrison: map[UnitType]int{Militia: 4, Cavalry: 1}},
	{ID: "copper-ridge", Name: "Copper Ridge", Faction: "frontier-league", Prosperity: 2,
		Garrison: map[UnitType]int{Militia: 3}},
	{ID: "riverbend", Name: "Riverbend", Faction: "desert-union", Prosperity: 4,
		Garrison: map[UnitType]int{Militia: 3, Cavalry: 1}},
	{ID: "silver-springs", Name: "Silver Springs", Faction: "desert-union", Prosperity: 3,
		Garrison: map[UnitType]int{Militia: 2, Artillery: 1}},
	{ID: "mesa-verde", Name: "Mesa Verde", Faction: "canyon-syndicate", Prosperity: 2,
		Garrison: map[UnitType]int{Militia: 3}},
	{ID: "lost-canyon", Name: "Lost Canyon", Faction: "canyon-syndicate", Prosperity: 1,
		Garrison: map[UnitType]int{Militia: 2, Cavalry: 1}},
}

// Borders of the frontier map, one entry per undirected edge.
var defaultBorders = [][2]string{
	{"dry-gulch", "copper-ridge"},
	{"copper-ridge", "riverbend"},
	{"dry-gulch", "mesa-verde"},
	{"riverbend", "silver-springs"},
	{"mesa-verde", "silver-springs"},
	{"silver-springs", "lost-canyon"},
}

// DefaultScenario builds the default campaign world with the default stat
// table and configuration.
func DefaultScenario() *World {
	w := NewWorld(DefaultStatTable(), DefaultConfig())

	factions := make(map[string]*Faction, len(defaultFactions))
	for _, fd := range defaultFactions {
		factions[fd.ID] = w.AddFaction(fd.ID, fd.Name, fd.Treasury, fd.IsPlayer)
	}
	for _, sd := range defaultSettlements {
		w.AddSettlement(sd.ID, sd.Name, factions[sd.Faction], sd.Prosperity, ArmyOf(sd.Garrison))
	}
	for _, b := range defaultBorders {
		w.AddBorder(b[0], b[1])
	}
	return w
}
