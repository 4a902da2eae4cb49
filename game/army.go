package game

// Army is a garrison's composition: a count per unit type. Strength is
// recomputed from the stat table on every call so it can never go stale.
type Army struct {
	Counts map[UnitType]int
}

// NewArmy returns an empty army. An empty garrison is a valid, undefended
// state.
func NewArmy() *Army {
	return &Army{Counts: make(map[UnitType]int)}
}

// ArmyOf builds an army from explicit counts, for scenario data and tests.
func ArmyOf(counts map[UnitType]int) *Army {
	a := NewArmy()
	for t, n := range counts {
		if n > 0 {
			a.Counts[t] = n
		}
	}
	return a
}

func (a *Army) Add(t UnitType, count int) {
	if count <= 0 {
		return
	}
	a.Counts[t] += count
}

// Remove takes up to count units of the given type, flooring at zero.
func (a *Army) Remove(t UnitType, count int) {
	if count <= 0 {
		return
	}
	remaining := a.Counts[t] - count
	if remaining <= 0 {
		delete(a.Counts, t)
		return
	}
	a.Counts[t] = remaining
}

// AttackStrength is the weighted sum of unit counts by attack weight.
func (a *Army) AttackStrength(table StatTable) int {
	total := 0
	for t, n := range a.Counts {
		total += n * table[t].Attack
	}
	return total
}

// DefenseStrength is the weighted sum of unit counts by defense weight.
func (a *Army) DefenseStrength(table StatTable) int {
	total := 0
	for t, n := range a.Counts {
		total += n * table[t].Defense
	}
	return total
}

// TotalUnits returns the headcount across all unit types.
func (a *Army) TotalUnits() int {
	total := 0
	for _, n := range a.Counts {
		total += n
	}
	return total
}

func (a *Army) Empty() bool {
	return a.TotalUnits() == 0
}

func (a *Army) Copy() *Army {
	c := NewArmy()
	for t, n := range a.Counts {
		c.Counts[t] = n
	}
	return c
}
