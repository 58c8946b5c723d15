package models

// InstrumentType is the kind of instrument a strategy leg holds.
type InstrumentType string

// Instrument types
const (
	InstrumentCall  InstrumentType = "call"
	InstrumentPut   InstrumentType = "put"
	InstrumentStock InstrumentType = "stock"
)

// IsOption returns true for call and put legs.
func (t InstrumentType) IsOption() bool {
	return t == InstrumentCall || t == InstrumentPut
}

// IsValid returns true if the instrument type is known.
func (t InstrumentType) IsValid() bool {
	return t.IsOption() || t == InstrumentStock
}

// Action is the position direction of a strategy leg.
type Action string

// Leg actions
const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionOwn  Action = "own"
)

// IsValid returns true if the action is known.
func (a Action) IsValid() bool {
	return a == ActionBuy || a == ActionSell || a == ActionOwn
}

// ContractMultiplier is the number of shares covered by one option contract.
const ContractMultiplier = 100

// LegTemplate describes one leg of a catalog strategy.
type LegTemplate struct {
	Action       Action         `json:"action" yaml:"action"`
	Type         InstrumentType `json:"type" yaml:"type"`
	Quantity     int            `json:"quantity" yaml:"quantity"`
	StrikeOffset int            `json:"strike_offset,omitempty" yaml:"strike_offset"`
}

// StrategyDefinition is a static catalog entry. Legs are ordered: leg
// instance i always corresponds to template i.
type StrategyDefinition struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Complexity  string        `json:"complexity" yaml:"complexity"`
	Risk        string        `json:"risk" yaml:"risk"`
	Legs        []LegTemplate `json:"legs" yaml:"legs"`
}

// LegInstance is the concrete, caller-editable counterpart of a LegTemplate.
// Option legs use Strike, Premium, Volatility and RiskFreeRate; stock legs
// use CostBasis only.
type LegInstance struct {
	Type         InstrumentType `json:"type"`
	Strike       float64        `json:"strike,omitempty"`
	Premium      float64        `json:"premium,omitempty"`
	Volatility   float64        `json:"volatility,omitempty"`
	RiskFreeRate float64        `json:"risk_free_rate,omitempty"`
	CostBasis    float64        `json:"cost_basis,omitempty"`
}

// ValidationResult holds every violation found in a leg set.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
