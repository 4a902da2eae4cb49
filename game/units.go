package game

import "fmt"

// UnitType identifies one of the fixed recruitable unit categories.
type UnitType int

const (
	Militia UnitType = iota
	Cavalry
	Artillery
)

var unitNames = map[UnitType]string{
	Militia:   "militia",
	Cavalry:   "cavalry",
	Artillery: "artillery",
}

func (t UnitType) String() string {
	if name, ok := unitNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(t))
}

// UnitTypes returns all unit types in declaration order.
func UnitTypes() []UnitType {
	return []UnitType{Militia, Cavalry, Artillery}
}

// ParseUnitType resolves a unit name from player input.
func ParseUnitType(name string) (UnitType, error) {
	for t, n := range unitNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &InvalidUnitTypeError{Name: name}
}

// UnitStats holds the fixed combat weights and recruitment cost of a unit type.
type UnitStats struct {
	Attack  int
	Defense int
	Cost    int
}

// StatTable maps every unit type to its stats. It is part of the scenario
// configuration and never changes during a campaign.
type StatTable map[UnitType]UnitStats

// DefaultStatTable returns the frontier-era unit roster.
func DefaultStatTable() StatTable {
	return StatTable{
		Militia:   {Attack: 12, Defense: 10, Cost: 40},
		Cavalry:   {Attack: 18, Defense: 12, Cost: 70},
		Artillery: {Attack: 25, Defense: 8, Cost: 120},
	}
}
