package indicator

import "github.com/rxtech-lab/argo-crypto-trader/internal/types"

// ExponentialMovingAverage seeds with the mean of the first period closes and
// applies EMA = (price - EMA_prev) * multiplier + EMA_prev forward over every
// remaining close, where multiplier = 2 / (period + 1).
//
// The seed comes from the oldest window, not the most recent one, so results
// on a long history differ from a trailing-window EMA.
func ExponentialMovingAverage(series []float64, period int) (float64, error) {
	if err := checkPeriod(types.IndicatorTypeEMA, series, period); err != nil {
		return 0, err
	}

	multiplier := 2.0 / float64(period+1)
	ema := mean(series[:period])

	for _, price := range series[period:] {
		ema = (price-ema)*multiplier + ema
	}

	return ema, nil
}
