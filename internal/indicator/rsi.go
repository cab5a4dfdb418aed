package indicator

import "github.com/rxtech-lab/argo-crypto-trader/internal/types"

// RelativeStrengthIndex computes RSI with Wilder's smoothing over the whole series.
//
// Step i has gain = max(close[i]-close[i-1], 0) and loss = max(close[i-1]-close[i], 0);
// step 0 has neither. The averages start as the mean of the first period steps
// (step 0 included) and every later step is folded in with
// avg = (avg*(period-1) + value) / period.
//
// RSI is 100 when the average loss is exactly zero.
func RelativeStrengthIndex(series []float64, period int) (float64, error) {
	if err := checkPeriod(types.IndicatorTypeRSI, series, period); err != nil {
		return 0, err
	}

	gains := make([]float64, len(series))
	losses := make([]float64, len(series))

	for i := 1; i < len(series); i++ {
		change := series[i] - series[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain := mean(gains[:period])
	avgLoss := mean(losses[:period])

	p := float64(period)
	for i := period; i < len(series); i++ {
		avgGain = (avgGain*(p-1) + gains[i]) / p
		avgLoss = (avgLoss*(p-1) + losses[i]) / p
	}

	if avgLoss == 0 {
		return 100, nil
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs)), nil
}
