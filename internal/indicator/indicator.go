// Package indicator computes technical indicators over an ordered series of
// closing prices (oldest first, newest last).
//
// Every function is pure. When the series is shorter than the requested
// period the function returns an *errors.InsufficientDataError, which callers
// treat as "indicator unavailable this turn".
//
// EMA and RSI walk the entire series each call: the period only sets the seed
// window and the smoothing constant, not a trailing window.
package indicator

import (
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

func checkPeriod(name types.IndicatorType, series []float64, period int) error {
	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	if len(series) < period {
		return errors.NewInsufficientDataErrorf(period, len(series), string(name),
			"insufficient data points for %s: required %d, got %d", name, period, len(series))
	}

	return nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
