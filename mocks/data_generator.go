package mocks

import (
	"math"
	"math/rand"

	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

// DataGenerator generates realistic candle feeds for testing and benchmarking.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how candles are generated.
type GeneratorConfig struct {
	// Pair is the traded pair (e.g., "USDT_BTC")
	Pair string
	// StartDate is the unix date of the first candle
	StartDate int64
	// Interval is the number of seconds between candles
	Interval int64
	// Count is the number of candles to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical move per candle)
	Volatility float64
	// Trend is the drift factor (-0.01 to 0.01 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per candle
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Pair:           "USDT_BTC",
		StartDate:      1516147200,
		Interval:       1800,
		Count:          10000,
		InitialPrice:   11000.0,
		Volatility:     0.01,
		Trend:          0.0,
		VolumeBase:     500,
		VolumeVariance: 0.3,
	}
}

// Generate creates candles for one pair.
// Prices follow a geometric Brownian motion model.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.Candle {
	candles := make([]types.Candle, config.Count)
	currentPrice := config.InitialPrice
	currentDate := config.StartDate

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for normal distribution
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count)

		close := open * (1 + priceChange + drift)
		if close <= 0 {
			close = open * 0.99
		}

		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		candles[i] = types.Candle{
			Pair:   config.Pair,
			Date:   currentDate,
			Open:   roundToDecimals(open, 8),
			High:   roundToDecimals(high, 8),
			Low:    roundToDecimals(low, 8),
			Close:  roundToDecimals(close, 8),
			Volume: roundToDecimals(volume, 4),
		}

		currentPrice = close
		currentDate += config.Interval
	}

	return candles
}

// GenerateTurns generates one candle per pair for every turn. All candles of
// a turn share the same date, like a next_candles batch.
func (g *DataGenerator) GenerateTurns(pairs []string, baseConfig GeneratorConfig) [][]types.Candle {
	series := make([][]types.Candle, len(pairs))

	for i, pair := range pairs {
		config := baseConfig
		config.Pair = pair
		// Vary initial price and volatility slightly per pair
		config.InitialPrice = baseConfig.InitialPrice * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = baseConfig.Volatility * (0.8 + g.rng.Float64()*0.4)

		series[i] = g.Generate(config)
	}

	turns := make([][]types.Candle, baseConfig.Count)
	for turn := range turns {
		turns[turn] = make([]types.Candle, len(pairs))
		for i := range pairs {
			turns[turn][i] = series[i][turn]
		}
	}

	return turns
}

// Generate10K is a convenience function to generate 10,000 candles
// with default settings for benchmarking.
func Generate10K(pair string) []types.Candle {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Pair = pair
	config.Count = 10000

	return gen.Generate(config)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
