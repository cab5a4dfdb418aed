package types

import "strings"

// CandleField names one column of a candle record as announced by the
// candle_format setting.
type CandleField string

const (
	CandleFieldPair   CandleField = "pair"
	CandleFieldDate   CandleField = "date"
	CandleFieldHigh   CandleField = "high"
	CandleFieldLow    CandleField = "low"
	CandleFieldOpen   CandleField = "open"
	CandleFieldClose  CandleField = "close"
	CandleFieldVolume CandleField = "volume"
)

// AllCandleFields lists every field name the game may announce.
var AllCandleFields = []CandleField{
	CandleFieldPair,
	CandleFieldDate,
	CandleFieldHigh,
	CandleFieldLow,
	CandleFieldOpen,
	CandleFieldClose,
	CandleFieldVolume,
}

// IsValid returns true if f is one of AllCandleFields.
func (f CandleField) IsValid() bool {
	for _, field := range AllCandleFields {
		if f == field {
			return true
		}
	}

	return false
}

// CandleFormat is the positional field order of a candle record.
type CandleFormat []CandleField

// DefaultCandleFormat is the order the game uses when no candle_format was sent.
var DefaultCandleFormat = CandleFormat{
	CandleFieldPair,
	CandleFieldDate,
	CandleFieldHigh,
	CandleFieldLow,
	CandleFieldOpen,
	CandleFieldClose,
	CandleFieldVolume,
}

// IndexOf returns the position of field in the format, or -1.
func (f CandleFormat) IndexOf(field CandleField) int {
	for i, current := range f {
		if current == field {
			return i
		}
	}

	return -1
}

// String renders the format the way the game sends it.
func (f CandleFormat) String() string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = string(field)
	}

	return strings.Join(names, ",")
}

// Candle is one OHLCV observation for a pair at a given turn date.
type Candle struct {
	Pair   string  `json:"pair" validate:"required"`
	Date   int64   `json:"date" validate:"gte=0"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume" validate:"gte=0"`
}
