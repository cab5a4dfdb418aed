package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

// DefaultBollingerConfidence is accepted by BollingerBands for compatibility.
const DefaultBollingerConfidence = 0.85

// BollingerBands returns the upper and lower band around the mean of the last
// period closes. The half-width is sqrt(2) times the population standard
// deviation.
//
// confidence does not affect the width. Callers pass DefaultBollingerConfidence.
func BollingerBands(series []float64, period int, confidence float64) (upper, lower float64, err error) {
	_ = confidence

	if err := checkPeriod(types.IndicatorTypeBollingerBands, series, period); err != nil {
		return 0, 0, err
	}

	window := series[len(series)-period:]
	middle := mean(window)

	var squaredDiffSum float64
	for _, price := range window {
		diff := price - middle
		squaredDiffSum += diff * diff
	}

	stdDev := math.Sqrt(squaredDiffSum / float64(period))
	halfWidth := math.Sqrt2 * stdDev

	return middle + halfWidth, middle - halfWidth, nil
}
