package market

import (
	"testing"

	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type StateTestSuite struct {
	suite.Suite
	state *State
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (suite *StateTestSuite) SetupTest() {
	suite.state = NewState()
}

func (suite *StateTestSuite) TestDefaults() {
	settings := suite.state.Settings()
	suite.Equal(1, settings.TimePerMove)
	suite.Equal(1, settings.CandleInterval)
	suite.Equal(0.1, settings.TransactionFeePercent)
	suite.Equal(types.DefaultCandleFormat, settings.CandleFormat)
	suite.Zero(suite.state.Date())
	suite.Empty(suite.state.Pairs())
	suite.Empty(suite.state.Balances())
	suite.Empty(suite.state.Trades())
}

func (suite *StateTestSuite) TestApplySettings() {
	tests := []struct {
		key   string
		value string
		check func(Settings)
	}{
		{SettingTimeBank, "10000", func(s Settings) {
			suite.Equal(10000, s.TimeBank)
			suite.Equal(10000, s.MaxTimeBank)
		}},
		{SettingTimePerMove, "100", func(s Settings) { suite.Equal(100, s.TimePerMove) }},
		{SettingCandleInterval, "1800", func(s Settings) { suite.Equal(1800, s.CandleInterval) }},
		{SettingCandlesTotal, "720", func(s Settings) { suite.Equal(720, s.CandlesTotal) }},
		{SettingCandlesGiven, "336", func(s Settings) { suite.Equal(336, s.CandlesGiven) }},
		{SettingInitialStack, "1000", func(s Settings) { suite.Equal(1000, s.InitialStack) }},
		{SettingTransactionFeePercent, "0.2", func(s Settings) { suite.Equal(0.2, s.TransactionFeePercent) }},
		{SettingCandleFormat, "pair,date,open,high,low,close,volume", func(s Settings) {
			suite.Equal("pair,date,open,high,low,close,volume", s.CandleFormat.String())
		}},
	}

	for _, tc := range tests {
		suite.Run(tc.key, func() {
			applied, err := suite.state.ApplySettings(tc.key, tc.value)
			suite.NoError(err)
			suite.True(applied)
			tc.check(suite.state.Settings())
		})
	}
}

func (suite *StateTestSuite) TestApplySettingsUnknownKeyIgnored() {
	before := suite.state.Settings()

	applied, err := suite.state.ApplySettings("your_bot", "player0")
	suite.NoError(err)
	suite.False(applied)
	suite.Equal(before, suite.state.Settings())
}

func (suite *StateTestSuite) TestApplySettingsMalformed() {
	tests := []struct {
		key   string
		value string
		code  errors.ErrorCode
	}{
		{SettingTimeBank, "ten", errors.ErrCodeMalformedNumber},
		{SettingInitialStack, "1000.5", errors.ErrCodeMalformedNumber},
		{SettingTransactionFeePercent, "cheap", errors.ErrCodeMalformedNumber},
		{SettingCandleFormat, "pair,date,close,vwap", errors.ErrCodeUnknownCandleField},
	}

	for _, tc := range tests {
		suite.Run(tc.key, func() {
			before := suite.state.Settings()

			_, err := suite.state.ApplySettings(tc.key, tc.value)
			suite.True(errors.HasCode(err, tc.code), "got %v", err)
			suite.True(errors.IsMalformedInput(err))
			suite.Equal(before, suite.state.Settings())
		})
	}
}

func (suite *StateTestSuite) TestApplyCandleBatch() {
	_, err := suite.state.ApplySettings(SettingCandleFormat, "pair,date,open,high,low,close,volume")
	suite.Require().NoError(err)

	candles, err := suite.state.ApplyCandleBatch("BTC_ETH,1800,0.1,0.2,0.05,0.15,5;USDT_BTC,1800,9000,9100,8900,9050,30")
	suite.NoError(err)
	suite.Len(candles, 2)
	suite.Equal(int64(1800), suite.state.Date())
	suite.Equal([]string{"BTC_ETH", "USDT_BTC"}, suite.state.Pairs())

	_, err = suite.state.ApplyCandleBatch("USDT_BTC,3600,9050,9200,9000,9150,31")
	suite.NoError(err)
	suite.Equal(int64(3600), suite.state.Date())

	chart := suite.state.Chart("USDT_BTC").Unwrap()
	suite.Equal([]float64{9050, 9150}, chart.Closes())
	suite.Equal(1, suite.state.Chart("BTC_ETH").Unwrap().Len())
	suite.True(suite.state.Chart("USDT_ETH").IsNone())
}

func (suite *StateTestSuite) TestApplyCandleBatchMalformedLeavesStateUntouched() {
	_, err := suite.state.ApplyCandleBatch("USDT_BTC,1800,9000,9100,8900,9050,30")
	suite.Require().NoError(err)

	_, err = suite.state.ApplyCandleBatch("USDT_BTC,3600,9000,9100,8900,9050,30;USDT_ETH,3600,1,2,x,4,5")
	suite.True(errors.IsMalformedInput(err))
	suite.Equal(int64(1800), suite.state.Date())
	suite.Equal(1, suite.state.Chart("USDT_BTC").Unwrap().Len())
	suite.True(suite.state.Chart("USDT_ETH").IsNone())
}

func (suite *StateTestSuite) TestApplyBalanceBatchOverwrites() {
	_, err := suite.state.ApplyBalanceBatch("BTC:0.00000000,ETH:0.00000000,USDT:1000.00")
	suite.NoError(err)
	suite.Equal(1000.0, suite.state.Balance("USDT").Unwrap())
	suite.Equal(0.0, suite.state.Balance("BTC").Unwrap())

	suite.state.SetBalance("BTC", 3)

	_, err = suite.state.ApplyBalanceBatch("BTC:0.5")
	suite.NoError(err)
	suite.Equal(0.5, suite.state.Balance("BTC").Unwrap())
	suite.Equal(1000.0, suite.state.Balance("USDT").Unwrap())
	suite.True(suite.state.Balance("DOGE").IsNone())
}

func (suite *StateTestSuite) TestApplyBalanceBatchMalformed() {
	suite.state.SetBalance("USDT", 5)

	_, err := suite.state.ApplyBalanceBatch("USDT:100,BTC")
	suite.True(errors.IsMalformedInput(err))
	suite.Equal(5.0, suite.state.Balance("USDT").Unwrap())
}

func (suite *StateTestSuite) TestRecordTrade() {
	_, err := suite.state.ApplyCandleBatch("USDT_BTC,7200,1,1,1,1,1")
	suite.Require().NoError(err)

	trade := suite.state.RecordTrade(types.Trade{Pair: "USDT_BTC", Side: types.ActionTypeBuy, Quantity: 0.1, Price: 100})
	suite.NotEmpty(trade.ID)
	suite.Equal(int64(7200), trade.Date)

	trades := suite.state.Trades()
	suite.Equal([]types.Trade{trade}, trades)

	trades[0].Quantity = 42
	suite.Equal(0.1, suite.state.Trades()[0].Quantity)
}

func (suite *StateTestSuite) TestClone() {
	_, err := suite.state.ApplyCandleBatch("USDT_BTC,1800,1,2,0.5,1.5,3")
	suite.Require().NoError(err)
	suite.state.SetBalance("USDT", 100)

	cloned := suite.state.Clone()

	_, err = suite.state.ApplyCandleBatch("USDT_BTC,3600,1,2,0.5,1.7,3")
	suite.Require().NoError(err)
	suite.state.SetBalance("USDT", 1)
	_, err = suite.state.ApplySettings(SettingCandleFormat, "date,pair,close")
	suite.Require().NoError(err)

	suite.Equal(int64(1800), cloned.Date())
	suite.Equal(1, cloned.Chart("USDT_BTC").Unwrap().Len())
	suite.Equal(100.0, cloned.Balance("USDT").Unwrap())
	suite.Equal(types.DefaultCandleFormat, cloned.Settings().CandleFormat)
}
