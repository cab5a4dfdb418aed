package codec

import (
	"fmt"

	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a quantity in plain decimal notation.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// EncodeAction renders the protocol line for an action, without newline.
func EncodeAction(action types.Action) string {
	if !action.IsTrade() {
		return string(types.ActionTypeNoMoves)
	}

	return fmt.Sprintf("%s %s %s", action.Type, action.Pair, FormatAmount(action.Amount))
}
