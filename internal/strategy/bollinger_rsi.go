package strategy

import (
	"github.com/rxtech-lab/argo-crypto-trader/internal/logger"
	"github.com/rxtech-lab/argo-crypto-trader/internal/market"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/internal/utils"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
	"go.uber.org/zap"
)

const BollingerRSIName = "bollinger_rsi"

// BollingerRSIStrategy buys small slices of the base asset into oversold
// downtrends and liquidates the whole position into overbought rallies.
//
// Buy requires every one of:
//   - the previous DowntrendLookback closes are all above the latest close
//   - close below the lower band pulled up by SafetyMargin
//   - RSI below RSIBuyThreshold
//   - quote balance above MinQuoteBalance
//   - close below the trend EMA
//   - MD- above MD+
//
// Sell is the mirror image without the trend filter and requires a non-zero
// base balance. Close against the trend EMA keeps the two rules exclusive.
type BollingerRSIStrategy struct {
	config Config
	logger *logger.Logger
}

// signals is everything the rules look at for one turn.
type signals struct {
	indicators types.IndicatorSnapshot
	upperBand  float64
	lowerBand  float64
	trendEMA   float64
	downtrend  bool
	quote      float64
	base       float64
}

func NewBollingerRSIStrategy(config Config, log *logger.Logger) Strategy {
	return newBollingerRSIStrategy(config, log)
}

func newBollingerRSIStrategy(config Config, log *logger.Logger) *BollingerRSIStrategy {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &BollingerRSIStrategy{
		config: config,
		logger: log,
	}
}

func (s *BollingerRSIStrategy) Name() string {
	return BollingerRSIName
}

func (s *BollingerRSIStrategy) Decide(state *market.State) (types.Action, error) {
	chartOption := state.Chart(s.config.Pair)
	if chartOption.IsNone() {
		return types.NoMoves("no chart for " + s.config.Pair), nil
	}

	sig, err := s.evaluate(chartOption.Unwrap())
	if err != nil {
		if errors.IsInsufficientDataError(err) {
			s.logger.Debug("Indicator unavailable", zap.Error(err))

			return types.NoMoves(err.Error()), nil
		}

		return types.Action{}, err
	}

	sig.quote = balanceOf(state, s.config.QuoteCurrency)
	sig.base = balanceOf(state, s.config.BaseAsset)

	s.logger.Debug("Indicators",
		zap.String("pair", s.config.Pair),
		zap.Float64("close", sig.indicators.Close),
		zap.Any("ema", sig.indicators.EMA),
		zap.Float64("upper_band", sig.indicators.UpperBand),
		zap.Float64("lower_band", sig.indicators.LowerBand),
		zap.Float64("rsi", sig.indicators.RSI),
		zap.Float64("md_plus", sig.indicators.MDPlus),
		zap.Float64("md_minus", sig.indicators.MDMinus),
		zap.Float64(s.config.QuoteCurrency, sig.quote),
		zap.Float64(s.config.BaseAsset, sig.base),
	)

	switch {
	case s.shouldBuy(sig):
		price := sig.indicators.Close
		quantity := utils.QuantityByFraction(sig.quote, price, s.config.BuyFraction)

		return s.execute(state, types.ActionTypeBuy, quantity, price, "oversold downtrend"), nil
	case s.shouldSell(sig):
		return s.execute(state, types.ActionTypeSell, sig.base, sig.indicators.Close, "overbought rally"), nil
	default:
		return types.NoMoves("no signal"), nil
	}
}

// evaluate computes the indicators and derived thresholds from chart.
// Balances are left zero.
func (s *BollingerRSIStrategy) evaluate(chart *market.Chart) (signals, error) {
	snapshot := types.IndicatorSnapshot{
		EMA: make(map[int]float64, len(s.config.EMAPeriods)),
	}

	for _, period := range s.config.EMAPeriods {
		ema, err := chart.EMA(period)
		if err != nil {
			return signals{}, err
		}

		snapshot.EMA[period] = ema
	}

	var err error

	snapshot.UpperBand, snapshot.LowerBand, err = chart.BollingerBands(s.config.BollingerPeriod)
	if err != nil {
		return signals{}, err
	}

	snapshot.RSI, err = chart.RSI(s.config.RSIPeriod)
	if err != nil {
		return signals{}, err
	}

	snapshot.MDPlus, snapshot.MDMinus, err = chart.MomentumDivergence(s.config.MomentumPeriod)
	if err != nil {
		return signals{}, err
	}

	// every indicator succeeded so the chart is not empty
	snapshot.Close = chart.LatestClose().Unwrap()

	return signals{
		indicators: snapshot,
		upperBand:  snapshot.UpperBand * (1 - s.config.SafetyMargin),
		lowerBand:  snapshot.LowerBand * (1 + s.config.SafetyMargin),
		trendEMA:   snapshot.EMA[s.config.TrendEMAPeriod],
		downtrend:  isDowntrend(chart.Closes(), s.config.DowntrendLookback),
	}, nil
}

func (s *BollingerRSIStrategy) shouldBuy(sig signals) bool {
	closePrice := sig.indicators.Close

	return sig.downtrend &&
		closePrice < sig.lowerBand &&
		sig.indicators.RSI < s.config.RSIBuyThreshold &&
		sig.quote > s.config.MinQuoteBalance &&
		closePrice < sig.trendEMA &&
		sig.indicators.MDMinus > sig.indicators.MDPlus
}

func (s *BollingerRSIStrategy) shouldSell(sig signals) bool {
	closePrice := sig.indicators.Close

	return closePrice > sig.upperBand &&
		sig.indicators.RSI > s.config.RSISellThreshold &&
		sig.base > 0 &&
		closePrice > sig.trendEMA &&
		sig.indicators.MDPlus > sig.indicators.MDMinus
}

// execute applies the trade to the balances and records it.
func (s *BollingerRSIStrategy) execute(state *market.State, side types.ActionType, quantity, price float64, reason string) types.Action {
	quote := balanceOf(state, s.config.QuoteCurrency)
	base := balanceOf(state, s.config.BaseAsset)

	if side == types.ActionTypeBuy {
		state.SetBalance(s.config.BaseAsset, base+quantity)
		state.SetBalance(s.config.QuoteCurrency, quote-quantity*price)
	} else {
		state.SetBalance(s.config.BaseAsset, base-quantity)
		state.SetBalance(s.config.QuoteCurrency, quote+quantity*price)
	}

	trade := state.RecordTrade(types.Trade{
		Pair:     s.config.Pair,
		Side:     side,
		Quantity: quantity,
		Price:    price,
	})

	s.logger.Info("Trade executed",
		zap.String("id", trade.ID),
		zap.Int64("date", trade.Date),
		zap.String("pair", trade.Pair),
		zap.String("side", string(trade.Side)),
		zap.Float64("quantity", trade.Quantity),
		zap.Float64("price", trade.Price),
		zap.String("reason", reason),
	)

	return types.Action{
		Type:   side,
		Pair:   s.config.Pair,
		Amount: quantity,
		Reason: reason,
	}
}

// isDowntrend reports whether each of the lookback closes before the latest
// one is strictly above it. A shorter history is never a downtrend.
func isDowntrend(closes []float64, lookback int) bool {
	if len(closes) < lookback+1 {
		return false
	}

	latest := closes[len(closes)-1]
	for _, previous := range closes[len(closes)-1-lookback : len(closes)-1] {
		if previous <= latest {
			return false
		}
	}

	return true
}

func balanceOf(state *market.State, symbol string) float64 {
	balance := state.Balance(symbol)
	if balance.IsNone() {
		return 0
	}

	return balance.Unwrap()
}
