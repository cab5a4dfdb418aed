package strategy

import (
	"fmt"
	"strconv"

	"github.com/rxtech-lab/argo-crypto-trader/internal/market"
)

const testPair = "USDT_BTC"

// newTestState feeds closes one turn at a time using the default candle
// format and sets the given balances.
func newTestState(closes []float64, balances map[string]float64) *market.State {
	state := market.NewState()

	for i, c := range closes {
		price := strconv.FormatFloat(c, 'f', -1, 64)

		batch := fmt.Sprintf("%s,%d,%s,%s,%s,%s,1", testPair, 1516147200+i*1800, price, price, price, price)
		if _, err := state.ApplyCandleBatch(batch); err != nil {
			panic(err)
		}
	}

	for symbol, amount := range balances {
		state.SetBalance(symbol, amount)
	}

	return state
}

// flatThen returns flat closes at 100 followed by steps closes moving by delta.
func flatThen(flat, steps int, delta float64) []float64 {
	closes := make([]float64, 0, flat+steps)
	for range flat {
		closes = append(closes, 100)
	}

	for i := 1; i <= steps; i++ {
		closes = append(closes, 100+float64(i)*delta)
	}

	return closes
}

// shortEMAConfig drops the 200 period EMA so 60 candles are enough to trade.
func shortEMAConfig() Config {
	config := DefaultConfig()
	config.EMAPeriods = []int{7, 14, 21, 50}

	return config
}
