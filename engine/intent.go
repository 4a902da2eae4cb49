package engine

// IntentType enumerates the closed set of player commands.
type IntentType int

const (
	CollectIncome IntentType = iota
	Invest
	Recruit
	Attack
	EndTurn
	Quit
)

func (t IntentType) String() string {
	switch t {
	case CollectIncome:
		return "CollectIncome"
	case Invest:
		return "Invest"
	case Recruit:
		return "Recruit"
	case Attack:
		return "Attack"
	case EndTurn:
		return "EndTurn"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is one player command. Unused fields are ignored per intent type:
// Invest reads SettlementID and Amount; Recruit reads SettlementID, UnitName
// and Count; Attack reads SettlementID (origin) and TargetID.
type Intent struct {
	Type         IntentType
	SettlementID string
	TargetID     string
	UnitName     string
	Amount       int
	Count        int
}
