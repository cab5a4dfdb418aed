// Package market holds the authoritative game state: settings, the turn
// clock, per-pair charts, balances and the bot's own trade history.
//
// State is owned by the single control loop and is not safe for concurrent use.
package market

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-crypto-trader/internal/codec"
	"github.com/rxtech-lab/argo-crypto-trader/internal/types"
)

type State struct {
	settings Settings
	date     int64
	charts   map[string]*Chart
	balances map[string]float64
	trades   []types.Trade
}

// NewState creates an empty state with default settings.
func NewState() *State {
	return &State{
		settings: DefaultSettings(),
		charts:   make(map[string]*Chart),
		balances: make(map[string]float64),
	}
}

// Settings returns a copy of the current settings.
func (s *State) Settings() Settings {
	settings := s.settings
	settings.CandleFormat = append(types.CandleFormat(nil), s.settings.CandleFormat...)

	return settings
}

// Date returns the current turn date set by the latest candle batch.
func (s *State) Date() int64 {
	return s.date
}

// ApplySettings updates one setting. Unknown keys are ignored and reported
// as not applied. A value that does not parse leaves settings unchanged.
func (s *State) ApplySettings(key, value string) (bool, error) {
	updated := s.settings
	applied, err := updated.apply(key, value)
	if err != nil {
		return applied, err
	}

	s.settings = updated

	return applied, nil
}

// ApplyCandleBatch decodes a next_candles payload with the configured candle
// format and appends each candle to its pair's chart, creating charts for new
// pairs. The turn date comes from the first record. Nothing is applied when
// any record is malformed.
func (s *State) ApplyCandleBatch(batch string) ([]types.Candle, error) {
	candles, err := codec.DecodeCandleBatch(s.settings.CandleFormat, batch)
	if err != nil {
		return nil, err
	}

	s.date = candles[0].Date

	for _, candle := range candles {
		chart, ok := s.charts[candle.Pair]
		if !ok {
			chart = NewChart(candle.Pair)
			s.charts[candle.Pair] = chart
		}

		chart.Append(candle)
	}

	return candles, nil
}

// ApplyBalanceBatch overwrites the balance of every symbol in a stacks payload.
// Nothing is applied when any entry is malformed.
func (s *State) ApplyBalanceBatch(batch string) ([]codec.Stack, error) {
	stacks, err := codec.DecodeStacks(batch)
	if err != nil {
		return nil, err
	}

	for _, stack := range stacks {
		s.balances[stack.Symbol] = stack.Amount
	}

	return stacks, nil
}

// Chart returns the chart for pair.
func (s *State) Chart(pair string) optional.Option[*Chart] {
	chart, ok := s.charts[pair]
	if !ok {
		return optional.None[*Chart]()
	}

	return optional.Some(chart)
}

// Pairs returns the known pairs in sorted order.
func (s *State) Pairs() []string {
	return slices.Sorted(maps.Keys(s.charts))
}

// Balance returns the held amount of symbol.
func (s *State) Balance(symbol string) optional.Option[float64] {
	amount, ok := s.balances[symbol]
	if !ok {
		return optional.None[float64]()
	}

	return optional.Some(amount)
}

// SetBalance overwrites the held amount of symbol.
func (s *State) SetBalance(symbol string, amount float64) {
	s.balances[symbol] = amount
}

// Balances returns a copy of every balance.
func (s *State) Balances() map[string]float64 {
	return maps.Clone(s.balances)
}

// RecordTrade stamps trade with an ID and the current turn date and appends it
// to the trade history.
func (s *State) RecordTrade(trade types.Trade) types.Trade {
	trade.ID = uuid.New().String()
	trade.Date = s.date
	s.trades = append(s.trades, trade)

	return trade
}

// Trades returns a copy of the trade history, oldest first.
func (s *State) Trades() []types.Trade {
	return slices.Clone(s.trades)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	charts := make(map[string]*Chart, len(s.charts))
	for pair, chart := range s.charts {
		charts[pair] = chart.clone()
	}

	return &State{
		settings: s.Settings(),
		date:     s.date,
		charts:   charts,
		balances: maps.Clone(s.balances),
		trades:   slices.Clone(s.trades),
	}
}
