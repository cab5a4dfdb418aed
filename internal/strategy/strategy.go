// Package strategy holds the decision engines that answer the action request.
package strategy

import (
	"github.com/rxtech-lab/argo-crypto-trader/internal/market"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

// Strategy produces exactly one action per turn.
//
// Decide may mutate the balances and trade history of state to reflect the
// trade it assumes filled. It never returns an error for missing history;
// that yields a no_moves action instead.
type Strategy interface {
	// Name returns the registry name of the strategy
	Name() string
	// Decide computes this turn's action from state
	Decide(state *market.State) (types.Action, error)
}
