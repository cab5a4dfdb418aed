package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TradeTestSuite struct {
	suite.Suite
}

func TestTradeSuite(t *testing.T) {
	suite.Run(t, new(TradeTestSuite))
}

func (suite *TradeTestSuite) TestQuoteAmount() {
	tests := []struct {
		name     string
		trade    Trade
		expected float64
	}{
		{"buy", Trade{Side: ActionTypeBuy, Quantity: 0.5, Price: 20000}, 10000},
		{"sell", Trade{Side: ActionTypeSell, Quantity: 2, Price: 1.25}, 2.5},
		{"empty", Trade{}, 0},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.InDelta(tc.expected, tc.trade.QuoteAmount(), 1e-9)
		})
	}
}
