package game

// Config collects the tunable campaign constants. DefaultConfig documents
// the values the default scenario plays with; alternate scenarios pass their
// own Config at world construction. There is no process-wide registry.
type Config struct {
	// TurnLimit caps the campaign length. Reaching it forces resolution by
	// settlement count.
	TurnLimit int
	// InvestCost is the treasury price of one prosperity point. Invest
	// converts the spent amount at this rate, flooring the remainder.
	InvestCost int
	// CaptureGarrison is the fresh garrison installed in a settlement the
	// moment it changes hands.
	CaptureGarrison map[UnitType]int
}

func DefaultConfig() Config {
	return Config{
		TurnLimit:       25,
		InvestCost:      25,
		CaptureGarrison: map[UnitType]int{Militia: 1},
	}
}
