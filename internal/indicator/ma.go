package indicator

import "github.com/rxtech-lab/argo-crypto-trader/internal/types"

// MovingAverage returns the arithmetic mean of the last window closes.
func MovingAverage(series []float64, window int) (float64, error) {
	if err := checkPeriod(types.IndicatorTypeMA, series, window); err != nil {
		return 0, err
	}

	return mean(series[len(series)-window:]), nil
}
