package market

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-crypto-trader/internal/indicator"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

// Chart is the ordered candle history of one pair, kept as parallel columns.
// All columns always have the same length and the last index is the latest
// observation. History is never evicted.
type Chart struct {
	pair    string
	dates   []int64
	opens   []float64
	highs   []float64
	lows    []float64
	closes  []float64
	volumes []float64
}

// NewChart creates an empty chart for pair.
func NewChart(pair string) *Chart {
	return &Chart{pair: pair}
}

// Pair returns the pair this chart tracks.
func (c *Chart) Pair() string {
	return c.pair
}

// Append pushes a new observation onto every column.
func (c *Chart) Append(candle types.Candle) {
	c.dates = append(c.dates, candle.Date)
	c.opens = append(c.opens, candle.Open)
	c.highs = append(c.highs, candle.High)
	c.lows = append(c.lows, candle.Low)
	c.closes = append(c.closes, candle.Close)
	c.volumes = append(c.volumes, candle.Volume)
}

// Len returns the number of observations.
func (c *Chart) Len() int {
	return len(c.closes)
}

// Closes returns the closing prices, oldest first. The slice is capped so an
// append by the caller cannot write into the chart.
func (c *Chart) Closes() []float64 {
	return c.closes[:len(c.closes):len(c.closes)]
}

// Dates returns the observation dates, oldest first.
func (c *Chart) Dates() []int64 {
	return c.dates[:len(c.dates):len(c.dates)]
}

// Candle returns the observation at index i, or None when out of range.
func (c *Chart) Candle(i int) optional.Option[types.Candle] {
	if i < 0 || i >= c.Len() {
		return optional.None[types.Candle]()
	}

	return optional.Some(types.Candle{
		Pair:   c.pair,
		Date:   c.dates[i],
		Open:   c.opens[i],
		High:   c.highs[i],
		Low:    c.lows[i],
		Close:  c.closes[i],
		Volume: c.volumes[i],
	})
}

// Latest returns the most recent observation.
func (c *Chart) Latest() optional.Option[types.Candle] {
	return c.Candle(c.Len() - 1)
}

// LatestClose returns the most recent closing price.
func (c *Chart) LatestClose() optional.Option[float64] {
	if c.Len() == 0 {
		return optional.None[float64]()
	}

	return optional.Some(c.closes[c.Len()-1])
}

// MovingAverage delegates to indicator.MovingAverage over the closes.
func (c *Chart) MovingAverage(window int) (float64, error) {
	return indicator.MovingAverage(c.closes, window)
}

// EMA delegates to indicator.ExponentialMovingAverage over the closes.
func (c *Chart) EMA(period int) (float64, error) {
	return indicator.ExponentialMovingAverage(c.closes, period)
}

// BollingerBands delegates to indicator.BollingerBands over the closes.
func (c *Chart) BollingerBands(period int) (upper, lower float64, err error) {
	return indicator.BollingerBands(c.closes, period, indicator.DefaultBollingerConfidence)
}

// RSI delegates to indicator.RelativeStrengthIndex over the closes.
func (c *Chart) RSI(period int) (float64, error) {
	return indicator.RelativeStrengthIndex(c.closes, period)
}

// MomentumDivergence delegates to indicator.MomentumDivergence over the closes.
func (c *Chart) MomentumDivergence(period int) (plus, minus float64, err error) {
	return indicator.MomentumDivergence(c.closes, period)
}

func (c *Chart) clone() *Chart {
	return &Chart{
		pair:    c.pair,
		dates:   append([]int64(nil), c.dates...),
		opens:   append([]float64(nil), c.opens...),
		highs:   append([]float64(nil), c.highs...),
		lows:    append([]float64(nil), c.lows...),
		closes:  append([]float64(nil), c.closes...),
		volumes: append([]float64(nil), c.volumes...),
	}
}
