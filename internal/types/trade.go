package types

// Trade is a buy or sell the bot assumed filled at the turn's close price.
// The protocol has no confirmation round-trip, so trades are optimistic.
type Trade struct {
	// ID is a uuid assigned when the trade is recorded
	ID string `json:"id"`
	// Date is the turn date the trade was decided on
	Date int64 `json:"date"`
	// Pair is the traded pair, e.g. USDT_BTC
	Pair string `json:"pair"`
	// Side is either ActionTypeBuy or ActionTypeSell
	Side ActionType `json:"side"`
	// Quantity is the base asset amount
	Quantity float64 `json:"quantity"`
	// Price is the close price used for the conversion
	Price float64 `json:"price"`
}

// QuoteAmount returns the quote currency value of the trade.
func (t Trade) QuoteAmount() float64 {
	return t.Quantity * t.Price
}
