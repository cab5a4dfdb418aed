package types

// ActionType is the verb of the single line the bot answers each turn with.
type ActionType string

const (
	// ActionTypeBuy converts quote currency into the base asset
	ActionTypeBuy ActionType = "buy"
	// ActionTypeSell converts the base asset back into quote currency
	ActionTypeSell ActionType = "sell"
	// ActionTypeNoMoves leaves the balances untouched
	ActionTypeNoMoves ActionType = "no_moves"
)

// Action is the decision produced for one turn.
type Action struct {
	// Type is the kind of action
	Type ActionType
	// Pair is the traded pair, empty for no_moves
	Pair string
	// Amount is the base asset quantity bought or sold
	Amount float64
	// Reason explains the decision in diagnostics only, never on the protocol
	Reason string
}

// NoMoves returns the no-op action.
func NoMoves(reason string) Action {
	return Action{
		Type:   ActionTypeNoMoves,
		Reason: reason,
	}
}

// IsTrade returns true for buy and sell actions.
func (a Action) IsTrade() bool {
	return a.Type == ActionTypeBuy || a.Type == ActionTypeSell
}
