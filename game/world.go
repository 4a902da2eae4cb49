package game

// Faction is a political entity owning zero or more settlements and a
// treasury. Factions are never destroyed; losing the last settlement sets the
// eliminated flag so historical references stay valid for reporting.
type Faction struct {
	ID         string
	Name       string
	Treasury   int
	Owned      map[string]*Settlement
	IsPlayer   bool
	Eliminated bool
}

// SettlementCount returns the number of settlements the faction holds.
func (f *Faction) SettlementCount() int {
	return len(f.Owned)
}

// Settlement is a territorial node: an owner, a prosperity level driving
// income, a defending garrison, and a fixed set of neighbors.
type Settlement struct {
	ID         string
	Name       string
	Owner      *Faction
	Prosperity int
	Garrison   *Army

	adjacent []string
}

// AdjacentIDs returns the settlement's neighbors on the territory graph.
// The slice is owned by the world; callers must not modify it.
func (s *Settlement) AdjacentIDs() []string {
	return s.adjacent
}

// World is the single source of truth for factions, settlements, and the
// territory adjacency graph. All mutation goes through its invariant
// preserving operations; the graph itself is fixed once scenario load ends.
type World struct {
	Table StatTable
	Cfg   Config

	factions    []*Faction
	settlements map[string]*Settlement
	order       []string
}

func NewWorld(table StatTable, cfg Config) *World {
	return &World{
		Table:       table,
		Cfg:         cfg,
		settlements: make(map[string]*Settlement),
	}
}

// AddFaction registers a faction. Factions resolve in registration order, so
// scenario load order is the deterministic AI order for the whole campaign.
func (w *World) AddFaction(id, name string, treasury int, isPlayer bool) *Faction {
	f := &Faction{
		ID:       id,
		Name:     name,
		Treasury: treasury,
		Owned:    make(map[string]*Settlement),
		IsPlayer: isPlayer,
	}
	w.factions = append(w.factions, f)
	return f
}

// AddSettlement registers a settlement under its initial owner.
func (w *World) AddSettlement(id, name string, owner *Faction, prosperity int, garrison *Army) *Settlement {
	if garrison == nil {
		garrison = NewArmy()
	}
	s := &Settlement{
		ID:         id,
		Name:       name,
		Owner:      owner,
		Prosperity: prosperity,
		Garrison:   garrison,
	}
	w.settlements[id] = s
	w.order = append(w.order, id)
	owner.Owned[id] = s
	return s
}

// AddBorder records a symmetric edge between two settlements. Only scenario
// load may call this; the graph is immutable during play.
func (w *World) AddBorder(id1, id2 string) {
	s1, s2 := w.settlements[id1], w.settlements[id2]
	if s1 == nil || s2 == nil {
		panic("border references unknown settlement: " + id1 + "-" + id2)
	}
	if !contains(s1.adjacent, id2) {
		s1.adjacent = append(s1.adjacent, id2)
	}
	if !contains(s2.adjacent, id1) {
		s2.adjacent = append(s2.adjacent, id1)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Settlement looks up a settlement by identity.
func (w *World) Settlement(id string) (*Settlement, error) {
	s, ok := w.settlements[id]
	if !ok {
		return nil, &SettlementNotFoundError{ID: id}
	}
	return s, nil
}

// Settlements returns all settlements in scenario load order.
func (w *World) Settlements() []*Settlement {
	out := make([]*Settlement, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.settlements[id])
	}
	return out
}

// Factions returns all factions in registration order.
func (w *World) Factions() []*Faction {
	return w.factions
}

// PlayerFaction returns the faction flagged as player controlled.
func (w *World) PlayerFaction() *Faction {
	for _, f := range w.factions {
		if f.IsPlayer {
			return f
		}
	}
	return nil
}

// IsAdjacent reports whether two settlements share a border.
func (w *World) IsAdjacent(id1, id2 string) bool {
	s, ok := w.settlements[id1]
	if !ok {
		return false
	}
	return contains(s.adjacent, id2)
}

// Adjacent returns the neighbor settlements of s in graph load order.
func (w *World) Adjacent(s *Settlement) []*Settlement {
	out := make([]*Settlement, 0, len(s.adjacent))
	for _, id := range s.adjacent {
		out = append(out, w.settlements[id])
	}
	return out
}

// CollectIncome adds the prosperity sum of all owned settlements to the
// faction treasury and returns the amount. Eliminated factions earn nothing.
func (w *World) CollectIncome(f *Faction) int {
	if f.Eliminated {
		return 0
	}
	income := 0
	for _, s := range f.Owned {
		income += s.Prosperity
	}
	f.Treasury += income
	return income
}

// Invest converts treasury into prosperity at the configured rate. It returns
// the prosperity gained, or InsufficientFunds without touching either value.
func (w *World) Invest(s *Settlement, amount int) (int, error) {
	owner := s.Owner
	if owner.Treasury < amount {
		return 0, &InsufficientFundsError{Faction: owner.Name, Needed: amount, Available: owner.Treasury}
	}
	gained := amount / w.Cfg.InvestCost
	owner.Treasury -= amount
	s.Prosperity += gained
	return gained, nil
}

// Recruit adds count units of the given type to the settlement garrison,
// charging the owner totalCost. InsufficientFunds leaves everything intact.
func (w *World) Recruit(s *Settlement, t UnitType, count, totalCost int) error {
	owner := s.Owner
	if owner.Treasury < totalCost {
		return &InsufficientFundsError{Faction: owner.Name, Needed: totalCost, Available: owner.Treasury}
	}
	owner.Treasury -= totalCost
	s.Garrison.Add(t, count)
	return nil
}

// TransferControl moves a settlement to a new owner atomically: it leaves the
// old owner's set, joins the new one, and its garrison is replaced with the
// configured fresh capture garrison. It reports whether the old owner was
// eliminated by the loss.
func (w *World) TransferControl(s *Settlement, to *Faction) bool {
	old := s.Owner
	delete(old.Owned, s.ID)
	to.Owned[s.ID] = s
	s.Owner = to
	s.Garrison = ArmyOf(w.Cfg.CaptureGarrison)

	if len(old.Owned) == 0 && !old.Eliminated {
		old.Eliminated = true
		return true
	}
	return false
}
