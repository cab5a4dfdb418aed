package types

type IndicatorType string

const (
	IndicatorTypeMA                 IndicatorType = "ma"
	IndicatorTypeEMA                IndicatorType = "ema"
	IndicatorTypeBollingerBands     IndicatorType = "bollinger_bands"
	IndicatorTypeRSI                IndicatorType = "rsi"
	IndicatorTypeMomentumDivergence IndicatorType = "momentum_divergence"
)

// IndicatorSnapshot holds the indicator values a strategy computed for one turn.
type IndicatorSnapshot struct {
	// Close is the latest close price
	Close float64 `json:"close"`
	// EMA maps each computed period to its exponential moving average
	EMA map[int]float64 `json:"ema"`
	// UpperBand and LowerBand are the Bollinger bands before any safety margin
	UpperBand float64 `json:"upper_band"`
	LowerBand float64 `json:"lower_band"`
	RSI       float64 `json:"rsi"`
	// MDPlus and MDMinus are the momentum divergence sums
	MDPlus  float64 `json:"md_plus"`
	MDMinus float64 `json:"md_minus"`
}
