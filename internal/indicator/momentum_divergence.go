package indicator

import "github.com/rxtech-lab/argo-crypto-trader/internal/types"

// MomentumDivergence sums the positive (plus) and negated negative (minus)
// close-to-close deltas of the last period steps ending at the latest close.
//
// With exactly period closes only period-1 deltas exist and only those are summed.
func MomentumDivergence(series []float64, period int) (plus, minus float64, err error) {
	if err := checkPeriod(types.IndicatorTypeMomentumDivergence, series, period); err != nil {
		return 0, 0, err
	}

	start := max(len(series)-period, 1)
	for i := start; i < len(series); i++ {
		delta := series[i] - series[i-1]
		if delta > 0 {
			plus += delta
		} else {
			minus -= delta
		}
	}

	return plus, minus, nil
}
