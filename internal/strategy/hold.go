package strategy

import (
	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/internal/market"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

const HoldName = "hold"

// HoldStrategy never trades. Useful to dry-run a game feed.
type HoldStrategy struct{}

func NewHoldStrategy(_ Config, _ *logger.Logger) Strategy {
	return &HoldStrategy{}
}

func (s *HoldStrategy) Name() string {
	return HoldName
}

func (s *HoldStrategy) Decide(_ *market.State) (types.Action, error) {
	return types.NoMoves("hold strategy never trades"), nil
}
